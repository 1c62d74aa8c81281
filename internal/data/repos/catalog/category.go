package catalog

import (
	"context"

	"gorm.io/gorm"

	"github.com/aulanova/aulanova-backend/internal/domain"
	"github.com/aulanova/aulanova-backend/internal/pkg/logger"
)

type CategoryRepo interface {
	Create(ctx context.Context, tx *gorm.DB, categories []*domain.Category) ([]*domain.Category, error)
	ListActive(ctx context.Context, tx *gorm.DB) ([]domain.Category, error)
}

type categoryRepo struct {
	db  *gorm.DB
	log *logger.Logger
}

func NewCategoryRepo(db *gorm.DB, baseLog *logger.Logger) CategoryRepo {
	repoLog := baseLog.With("repo", "CategoryRepo")
	return &categoryRepo{db: db, log: repoLog}
}

func (cr *categoryRepo) Create(ctx context.Context, tx *gorm.DB, categories []*domain.Category) ([]*domain.Category, error) {
	transaction := tx
	if transaction == nil {
		transaction = cr.db
	}

	if len(categories) == 0 {
		return []*domain.Category{}, nil
	}

	if err := transaction.WithContext(ctx).Create(&categories).Error; err != nil {
		return nil, err
	}

	return categories, nil
}

func (cr *categoryRepo) ListActive(ctx context.Context, tx *gorm.DB) ([]domain.Category, error) {
	transaction := tx
	if transaction == nil {
		transaction = cr.db
	}

	results := []domain.Category{}
	if err := transaction.WithContext(ctx).
		Where("active = ?", true).
		Order("name").
		Find(&results).Error; err != nil {
		return nil, err
	}
	return results, nil
}
