package recommend

import (
	"context"
	"fmt"

	"github.com/aulanova/aulanova-backend/internal/data/repos"
	"github.com/aulanova/aulanova-backend/internal/domain"
	"github.com/aulanova/aulanova-backend/internal/pkg/apperr"
	"github.com/aulanova/aulanova-backend/internal/pkg/logger"
)

// Retriever is the pipeline's only road into the content table. Both modes
// are bounded to RetrievalLimit rows and preserve store order; an empty
// result is a valid answer, not an error.
type Retriever struct {
	content repos.ContentRepo
	log     *logger.Logger
}

func NewRetriever(content repos.ContentRepo, baseLog *logger.Logger) *Retriever {
	return &Retriever{content: content, log: baseLog.With("component", "Retriever")}
}

// SearchByCategories matches each name against the delimited categories
// column, ORed together.
func (r *Retriever) SearchByCategories(ctx context.Context, names []string) ([]domain.ContentItem, error) {
	items, err := r.content.SearchByCategories(ctx, nil, names, RetrievalLimit)
	if err != nil {
		return nil, fmt.Errorf("%w: category search: %w", apperr.ErrUpstreamUnavailable, err)
	}
	return items, nil
}

// SearchFuzzy does case-insensitive substring matching across title,
// description, topic and content type.
func (r *Retriever) SearchFuzzy(ctx context.Context, term string) ([]domain.ContentItem, error) {
	items, err := r.content.SearchFuzzy(ctx, nil, term, RetrievalLimit)
	if err != nil {
		return nil, fmt.Errorf("%w: fuzzy search: %w", apperr.ErrUpstreamUnavailable, err)
	}
	return items, nil
}
