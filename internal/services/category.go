package services

import (
	"context"
	"sync"
	"time"

	"golang.org/x/sync/singleflight"

	"github.com/aulanova/aulanova-backend/internal/data/repos"
	"github.com/aulanova/aulanova-backend/internal/domain"
	"github.com/aulanova/aulanova-backend/internal/pkg/envutil"
	"github.com/aulanova/aulanova-backend/internal/pkg/logger"
)

type CategoryService interface {
	// Vocabulary returns the active categories, served from a short-lived
	// cache so concurrent assistant requests share one query.
	Vocabulary(ctx context.Context) ([]domain.Category, error)
}

type categoryService struct {
	categories repos.CategoryRepo
	log        *logger.Logger
	ttl        time.Duration

	group singleflight.Group

	mu       sync.RWMutex
	cached   []domain.Category
	cachedAt time.Time
}

func NewCategoryService(categories repos.CategoryRepo, baseLog *logger.Logger) CategoryService {
	return &categoryService{
		categories: categories,
		log:        baseLog.With("service", "CategoryService"),
		ttl:        envutil.Seconds("CATEGORY_CACHE_TTL_SECONDS", 5*time.Minute),
	}
}

func (cs *categoryService) Vocabulary(ctx context.Context) ([]domain.Category, error) {
	cs.mu.RLock()
	if cs.cached != nil && time.Since(cs.cachedAt) < cs.ttl {
		out := cs.cached
		cs.mu.RUnlock()
		return out, nil
	}
	cs.mu.RUnlock()

	v, err, _ := cs.group.Do("vocabulary", func() (any, error) {
		// The leader's ctx must not cancel the query out from under the
		// followers sharing this flight.
		qctx := context.WithoutCancel(ctx)
		rows, err := cs.categories.ListActive(qctx, nil)
		if err != nil {
			return nil, err
		}
		cs.mu.Lock()
		cs.cached = rows
		cs.cachedAt = time.Now()
		cs.mu.Unlock()
		cs.log.Debug("Category vocabulary refreshed", "count", len(rows))
		return rows, nil
	})
	if err != nil {
		return nil, err
	}
	return v.([]domain.Category), nil
}
