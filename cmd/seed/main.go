package main

import (
	"context"
	"fmt"
	"os"

	"github.com/google/uuid"
	"golang.org/x/crypto/bcrypt"
	"gopkg.in/yaml.v3"
	"gorm.io/gorm"

	"github.com/aulanova/aulanova-backend/internal/data/db"
	"github.com/aulanova/aulanova-backend/internal/data/repos"
	"github.com/aulanova/aulanova-backend/internal/domain"
	"github.com/aulanova/aulanova-backend/internal/pkg/envutil"
	"github.com/aulanova/aulanova-backend/internal/pkg/logger"
)

type seedFile struct {
	Categories []struct {
		Name        string `yaml:"name"`
		Description string `yaml:"description"`
		Kind        string `yaml:"kind"`
	} `yaml:"categories"`
	Content []struct {
		Title         string   `yaml:"title"`
		Description   string   `yaml:"description"`
		ContentType   string   `yaml:"content_type"`
		Modality      string   `yaml:"modality"`
		Level         string   `yaml:"level"`
		Topic         string   `yaml:"topic"`
		Location      string   `yaml:"location"`
		StartsAt      string   `yaml:"starts_at"`
		StartsTime    string   `yaml:"starts_time"`
		Seats         int      `yaml:"seats"`
		DurationHours int      `yaml:"duration_hours"`
		Rating        *float64 `yaml:"rating"`
		Price         *float64 `yaml:"price"`
		Categories    []string `yaml:"categories"`
	} `yaml:"content"`
	Users []struct {
		Email    string `yaml:"email"`
		Password string `yaml:"password"`
		Name     string `yaml:"name"`
		Profile  struct {
			UserType         string   `yaml:"user_type"`
			InterestAreas    []string `yaml:"interest_areas"`
			EducationLevel   string   `yaml:"education_level"`
			EmploymentStatus string   `yaml:"employment_status"`
			Goals            []string `yaml:"goals"`
		} `yaml:"profile"`
	} `yaml:"users"`
}

func main() {
	log, err := logger.New(envutil.String("LOG_MODE", "development"))
	if err != nil {
		fmt.Printf("Failed to init logger: %v\n", err)
		os.Exit(1)
	}
	defer log.Sync()

	path := envutil.String("SEED_FILE", "scripts/seed.yaml")
	raw, err := os.ReadFile(path)
	if err != nil {
		log.Error("Could not read seed file", "path", path, "error", err)
		os.Exit(1)
	}
	var seed seedFile
	if err := yaml.Unmarshal(raw, &seed); err != nil {
		log.Error("Could not parse seed file", "path", path, "error", err)
		os.Exit(1)
	}

	gdb, err := db.Open(log)
	if err != nil {
		log.Error("Could not open database", "error", err)
		os.Exit(1)
	}
	if err := db.AutoMigrateAll(gdb); err != nil {
		log.Error("Auto migration failed", "error", err)
		os.Exit(1)
	}

	userRepo := repos.NewUserRepo(gdb, log)
	profileRepo := repos.NewProfileRepo(gdb, log)
	contentRepo := repos.NewContentRepo(gdb, log)
	categoryRepo := repos.NewCategoryRepo(gdb, log)

	ctx := context.Background()
	err = gdb.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		categories := make([]*domain.Category, 0, len(seed.Categories))
		for _, c := range seed.Categories {
			categories = append(categories, &domain.Category{
				ID:          uuid.New(),
				Name:        c.Name,
				Description: c.Description,
				Kind:        c.Kind,
				Active:      true,
			})
		}
		if _, err := categoryRepo.Create(ctx, tx, categories); err != nil {
			return fmt.Errorf("seed categories: %w", err)
		}

		items := make([]*domain.ContentItem, 0, len(seed.Content))
		for _, c := range seed.Content {
			items = append(items, &domain.ContentItem{
				ID:            uuid.New(),
				Title:         c.Title,
				Description:   c.Description,
				ContentType:   c.ContentType,
				Modality:      c.Modality,
				Level:         c.Level,
				Topic:         c.Topic,
				Location:      c.Location,
				StartsAt:      c.StartsAt,
				StartsTime:    c.StartsTime,
				Seats:         c.Seats,
				DurationHours: c.DurationHours,
				Rating:        c.Rating,
				Price:         c.Price,
				Status:        domain.ContentStatusActive,
				Categories:    domain.JoinCategories(c.Categories),
			})
		}
		if _, err := contentRepo.Create(ctx, tx, items); err != nil {
			return fmt.Errorf("seed content: %w", err)
		}

		for _, u := range seed.Users {
			hashed, err := bcrypt.GenerateFromPassword([]byte(u.Password), bcrypt.DefaultCost)
			if err != nil {
				return fmt.Errorf("hash password for %s: %w", u.Email, err)
			}
			user := &domain.User{
				ID:       uuid.New(),
				Email:    u.Email,
				Password: string(hashed),
				Name:     u.Name,
				Status:   domain.UserStatusActive,
			}
			if _, err := userRepo.Create(ctx, tx, []*domain.User{user}); err != nil {
				return fmt.Errorf("seed user %s: %w", u.Email, err)
			}
			profile := &domain.Profile{
				ID:               uuid.New(),
				UserID:           user.ID,
				UserType:         u.Profile.UserType,
				InterestAreas:    u.Profile.InterestAreas,
				EducationLevel:   u.Profile.EducationLevel,
				EmploymentStatus: u.Profile.EmploymentStatus,
				Goals:            u.Profile.Goals,
			}
			if _, err := profileRepo.Create(ctx, tx, []*domain.Profile{profile}); err != nil {
				return fmt.Errorf("seed profile for %s: %w", u.Email, err)
			}
			log.Info("Seeded user", "email", u.Email, "user_id", user.ID)
		}
		return nil
	})
	if err != nil {
		log.Error("Seeding failed", "error", err)
		os.Exit(1)
	}
	log.Info("Seeding complete",
		"categories", len(seed.Categories),
		"content", len(seed.Content),
		"users", len(seed.Users),
	)
}
