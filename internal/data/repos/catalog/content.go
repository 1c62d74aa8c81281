package catalog

import (
	"context"
	"strings"

	"gorm.io/gorm"

	"github.com/aulanova/aulanova-backend/internal/domain"
	"github.com/aulanova/aulanova-backend/internal/pkg/logger"
)

type ContentRepo interface {
	Create(ctx context.Context, tx *gorm.DB, items []*domain.ContentItem) ([]*domain.ContentItem, error)
	// SearchByCategories matches the delimited categories column against
	// ",name," so that "Sports" never matches "eSports".
	SearchByCategories(ctx context.Context, tx *gorm.DB, names []string, limit int) ([]domain.ContentItem, error)
	// SearchFuzzy matches the term case-insensitively as a substring of
	// title, description, topic or content type, in store order.
	SearchFuzzy(ctx context.Context, tx *gorm.DB, term string, limit int) ([]domain.ContentItem, error)
}

type contentRepo struct {
	db  *gorm.DB
	log *logger.Logger
}

func NewContentRepo(db *gorm.DB, baseLog *logger.Logger) ContentRepo {
	repoLog := baseLog.With("repo", "ContentRepo")
	return &contentRepo{db: db, log: repoLog}
}

func (cr *contentRepo) Create(ctx context.Context, tx *gorm.DB, items []*domain.ContentItem) ([]*domain.ContentItem, error) {
	transaction := tx
	if transaction == nil {
		transaction = cr.db
	}

	if len(items) == 0 {
		return []*domain.ContentItem{}, nil
	}

	if err := transaction.WithContext(ctx).Create(&items).Error; err != nil {
		return nil, err
	}

	return items, nil
}

func (cr *contentRepo) SearchByCategories(ctx context.Context, tx *gorm.DB, names []string, limit int) ([]domain.ContentItem, error) {
	transaction := tx
	if transaction == nil {
		transaction = cr.db
	}

	results := []domain.ContentItem{}

	clean := make([]string, 0, len(names))
	for _, n := range names {
		n = strings.TrimSpace(n)
		if n != "" {
			clean = append(clean, n)
		}
	}
	if len(clean) == 0 {
		return results, nil
	}

	q := transaction.WithContext(ctx).Model(&domain.ContentItem{})
	cond := transaction.Session(&gorm.Session{NewDB: true})
	for _, n := range clean {
		cond = cond.Or("categories LIKE ?", "%,"+n+",%")
	}
	q = q.Where(cond)
	if limit > 0 {
		q = q.Limit(limit)
	}

	if err := q.Find(&results).Error; err != nil {
		return nil, err
	}
	return results, nil
}

func (cr *contentRepo) SearchFuzzy(ctx context.Context, tx *gorm.DB, term string, limit int) ([]domain.ContentItem, error) {
	transaction := tx
	if transaction == nil {
		transaction = cr.db
	}

	results := []domain.ContentItem{}

	term = strings.TrimSpace(term)
	if term == "" {
		return results, nil
	}
	pattern := "%" + strings.ToLower(term) + "%"

	q := transaction.WithContext(ctx).
		Model(&domain.ContentItem{}).
		Where(
			"LOWER(title) LIKE ? OR LOWER(description) LIKE ? OR LOWER(topic) LIKE ? OR LOWER(content_type) LIKE ?",
			pattern, pattern, pattern, pattern,
		)
	if limit > 0 {
		q = q.Limit(limit)
	}

	if err := q.Find(&results).Error; err != nil {
		return nil, err
	}
	return results, nil
}
