package user

import (
	"context"
	"errors"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/aulanova/aulanova-backend/internal/domain"
	"github.com/aulanova/aulanova-backend/internal/pkg/apperr"
	"github.com/aulanova/aulanova-backend/internal/pkg/logger"
)

type ProfileRepo interface {
	Create(ctx context.Context, tx *gorm.DB, profiles []*domain.Profile) ([]*domain.Profile, error)
	GetByUserID(ctx context.Context, tx *gorm.DB, userID uuid.UUID) (*domain.Profile, error)
}

type profileRepo struct {
	db  *gorm.DB
	log *logger.Logger
}

func NewProfileRepo(db *gorm.DB, baseLog *logger.Logger) ProfileRepo {
	repoLog := baseLog.With("repo", "ProfileRepo")
	return &profileRepo{db: db, log: repoLog}
}

func (pr *profileRepo) Create(ctx context.Context, tx *gorm.DB, profiles []*domain.Profile) ([]*domain.Profile, error) {
	transaction := tx
	if transaction == nil {
		transaction = pr.db
	}

	if len(profiles) == 0 {
		return []*domain.Profile{}, nil
	}

	if err := transaction.WithContext(ctx).Create(&profiles).Error; err != nil {
		return nil, err
	}

	return profiles, nil
}

func (pr *profileRepo) GetByUserID(ctx context.Context, tx *gorm.DB, userID uuid.UUID) (*domain.Profile, error) {
	transaction := tx
	if transaction == nil {
		transaction = pr.db
	}

	var result domain.Profile
	if err := transaction.WithContext(ctx).
		Where("user_id = ?", userID).
		First(&result).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperr.ErrNotFound
		}
		return nil, err
	}
	return &result, nil
}
