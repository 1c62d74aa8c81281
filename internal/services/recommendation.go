package services

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/aulanova/aulanova-backend/internal/data/repos"
	"github.com/aulanova/aulanova-backend/internal/modules/recommend"
	"github.com/aulanova/aulanova-backend/internal/pkg/apperr"
	"github.com/aulanova/aulanova-backend/internal/pkg/envutil"
	"github.com/aulanova/aulanova-backend/internal/pkg/logger"
	"github.com/aulanova/aulanova-backend/internal/platform/openai"
)

type RecommendationService interface {
	// Generate runs the full pipeline for one user. The returned result is
	// always well formed; err is apperr.ErrNotFound when the user or profile
	// is missing (the one condition the caller must surface distinctly).
	Generate(ctx context.Context, userID uuid.UUID) (recommend.PipelineResult, error)
}

type recommendationService struct {
	db  *gorm.DB
	log *logger.Logger

	users    repos.UserRepo
	profiles repos.ProfileRepo

	ai        openai.Client
	intr      *recommend.Introspector
	retriever *recommend.Retriever
	validator *recommend.Validator

	stepTimeout    time.Duration
	pathDesignStep bool
}

func NewRecommendationService(
	db *gorm.DB,
	baseLog *logger.Logger,
	users repos.UserRepo,
	profiles repos.ProfileRepo,
	content repos.ContentRepo,
	ai openai.Client,
) RecommendationService {
	serviceLog := baseLog.With("service", "RecommendationService")
	return &recommendationService{
		db:             db,
		log:            serviceLog,
		users:          users,
		profiles:       profiles,
		ai:             ai,
		intr:           recommend.NewIntrospector(db, serviceLog),
		retriever:      recommend.NewRetriever(content, serviceLog),
		validator:      recommend.NewValidator(serviceLog),
		stepTimeout:    envutil.Seconds("PIPELINE_STEP_TIMEOUT_SECONDS", 60*time.Second),
		pathDesignStep: envutil.Bool("PIPELINE_PATH_DESIGN", false),
	}
}

func (rs *recommendationService) Generate(ctx context.Context, userID uuid.UUID) (recommend.PipelineResult, error) {
	rs.log.Info("Generating recommendations", "user_id", userID)

	if _, err := rs.users.GetByID(ctx, nil, userID); err != nil {
		if errors.Is(err, apperr.ErrNotFound) {
			msg := fmt.Sprintf("user %s not found", userID)
			rs.log.Warn(msg)
			return recommend.NewErrorResult(userID, msg), apperr.ErrNotFound
		}
		return recommend.NewErrorResult(userID, err.Error()), fmt.Errorf("%w: load user: %w", apperr.ErrUpstreamUnavailable, err)
	}

	profile, err := rs.profiles.GetByUserID(ctx, nil, userID)
	if err != nil {
		if errors.Is(err, apperr.ErrNotFound) {
			msg := fmt.Sprintf("profile not found for user %s", userID)
			rs.log.Warn(msg)
			return recommend.NewErrorResult(userID, msg), apperr.ErrNotFound
		}
		return recommend.NewErrorResult(userID, err.Error()), fmt.Errorf("%w: load profile: %w", apperr.ErrUpstreamUnavailable, err)
	}
	if !profile.HasInterests() {
		msg := fmt.Sprintf("profile for user %s has no interest areas", userID)
		rs.log.Warn(msg)
		return recommend.NewErrorResult(userID, msg), apperr.ErrNotFound
	}

	schemaTool := recommend.NewSchemaTool(rs.intr)
	searchTool := recommend.NewSearchTool(rs.retriever, rs.log)
	categoryTool := recommend.NewCategoryTool(rs.retriever, rs.log)

	steps := []recommend.Step{
		recommend.SchemaAnalysisStep(schemaTool),
		recommend.ContentAnalysisStep(profile, searchTool, categoryTool),
	}
	if rs.pathDesignStep {
		steps = append(steps, recommend.PathDesignStep())
	}

	orch := recommend.NewOrchestrator(rs.ai, rs.log, rs.stepTimeout, steps)
	raw, err := orch.Run(ctx)
	if err != nil {
		rs.log.Error("Recommendation pipeline failed", "user_id", userID, "error", err)
		return recommend.NewErrorResult(userID, "recommendation pipeline failed: "+err.Error()), nil
	}

	result := rs.validator.Validate(raw, profile, userID)
	rs.log.Info("Recommendations generated",
		"user_id", userID,
		"status", result.Status,
		"total", result.TotalCount,
	)
	return result, nil
}
