package main

import (
	"fmt"
	"os"
	"strings"
	"time"

	"github.com/aulanova/aulanova-backend/internal/data/db"
	"github.com/aulanova/aulanova-backend/internal/data/repos"
	"github.com/aulanova/aulanova-backend/internal/handlers"
	"github.com/aulanova/aulanova-backend/internal/middleware"
	"github.com/aulanova/aulanova-backend/internal/pkg/envutil"
	"github.com/aulanova/aulanova-backend/internal/pkg/logger"
	"github.com/aulanova/aulanova-backend/internal/platform/openai"
	"github.com/aulanova/aulanova-backend/internal/server"
	"github.com/aulanova/aulanova-backend/internal/services"
)

func main() {
	// Logger
	logMode := envutil.String("LOG_MODE", "development")
	log, err := logger.New(logMode)
	if err != nil {
		fmt.Printf("Failed to init logger: %v\n", err)
		os.Exit(1)
	}
	defer log.Sync()

	// Env
	log.Info("Loading environment variables from main...")
	jwtSecretKey := envutil.String("JWT_SECRET_KEY", "defaultsecret")
	accessTokenTTL := envutil.Seconds("ACCESS_TOKEN_TTL", 30*time.Minute)

	// Database
	gdb, err := db.Open(log)
	if err != nil {
		log.Error("Could not open database", "error", err)
		os.Exit(1)
	}
	if err := db.AutoMigrateAll(gdb); err != nil {
		log.Error("Auto migration failed", "error", err)
		os.Exit(1)
	}

	// Repos
	log.Info("Setting up repos from main...")
	userRepo := repos.NewUserRepo(gdb, log)
	profileRepo := repos.NewProfileRepo(gdb, log)
	contentRepo := repos.NewContentRepo(gdb, log)
	categoryRepo := repos.NewCategoryRepo(gdb, log)

	// Services
	log.Info("Setting up services from main...")
	aiClient, err := openai.NewClient(log)
	if err != nil {
		log.Error("Could not init OpenAI client", "error", err)
		os.Exit(1)
	}
	authService := services.NewAuthService(gdb, log, userRepo, jwtSecretKey, accessTokenTTL)
	categoryService := services.NewCategoryService(categoryRepo, log)
	recommendationService := services.NewRecommendationService(gdb, log, userRepo, profileRepo, contentRepo, aiClient)
	assistantService := services.NewAssistantService(log, categoryService, contentRepo, aiClient)

	// Handlers
	log.Info("Setting up handlers from main...")
	authHandler := handlers.NewAuthHandler(authService)
	recommendationHandler := handlers.NewRecommendationHandler(recommendationService)
	assistantHandler := handlers.NewAssistantHandler(assistantService)

	// Middleware
	authMiddleware := middleware.NewAuthMiddleware(log, authService)

	// Router
	log.Info("Setting up router from main...")
	var origins []string
	if raw := envutil.String("CORS_ALLOW_ORIGINS", ""); raw != "" {
		for _, o := range strings.Split(raw, ",") {
			if o = strings.TrimSpace(o); o != "" {
				origins = append(origins, o)
			}
		}
	}
	router := server.NewRouter(server.RouterConfig{
		AuthHandler:           authHandler,
		AuthMiddleware:        authMiddleware,
		RecommendationHandler: recommendationHandler,
		AssistantHandler:      assistantHandler,
		AllowOrigins:          origins,
	})

	port := envutil.String("PORT", "8080")
	log.Info("Server listening", "port", port)
	if err := router.Run(":" + port); err != nil {
		log.Error("Server failed", "error", err)
		os.Exit(1)
	}
}
