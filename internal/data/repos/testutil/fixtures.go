package testutil

import (
	"context"
	"testing"

	"github.com/google/uuid"
	"gorm.io/datatypes"
	"gorm.io/gorm"

	"github.com/aulanova/aulanova-backend/internal/domain"
)

func SeedUser(tb testing.TB, ctx context.Context, tx *gorm.DB, email string) *domain.User {
	tb.Helper()
	u := &domain.User{
		ID:       uuid.New(),
		Email:    email,
		Password: "pw",
		Name:     "Test User",
		Status:   domain.UserStatusActive,
	}
	if err := tx.WithContext(ctx).Create(u).Error; err != nil {
		tb.Fatalf("seed user: %v", err)
	}
	return u
}

func SeedProfile(tb testing.TB, ctx context.Context, tx *gorm.DB, userID uuid.UUID, interests []string) *domain.Profile {
	tb.Helper()
	p := &domain.Profile{
		ID:             uuid.New(),
		UserID:         userID,
		UserType:       "student",
		InterestAreas:  datatypes.NewJSONSlice(interests),
		EducationLevel: domain.LevelIntermediate,
	}
	if err := tx.WithContext(ctx).Create(p).Error; err != nil {
		tb.Fatalf("seed profile: %v", err)
	}
	return p
}

func SeedContentItem(tb testing.TB, ctx context.Context, tx *gorm.DB, title string, categories []string) *domain.ContentItem {
	tb.Helper()
	item := &domain.ContentItem{
		ID:          uuid.New(),
		Title:       title,
		Description: "seeded activity",
		ContentType: domain.ContentTypeCourse,
		Modality:    domain.ModalityOnline,
		Status:      domain.ContentStatusActive,
		Categories:  domain.JoinCategories(categories),
	}
	if err := tx.WithContext(ctx).Create(item).Error; err != nil {
		tb.Fatalf("seed content item: %v", err)
	}
	return item
}

func SeedCategory(tb testing.TB, ctx context.Context, tx *gorm.DB, name string) *domain.Category {
	tb.Helper()
	c := &domain.Category{
		ID:     uuid.New(),
		Name:   name,
		Kind:   domain.CategoryKindArea,
		Active: true,
	}
	if err := tx.WithContext(ctx).Create(c).Error; err != nil {
		tb.Fatalf("seed category: %v", err)
	}
	return c
}
