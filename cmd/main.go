package main

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"golang.org/x/sync/errgroup"

	"github.com/yungbote/linguabridge-backend/internal/app"
	"github.com/yungbote/linguabridge-backend/internal/clients/redis"
	"github.com/yungbote/linguabridge-backend/internal/db"
	"github.com/yungbote/linguabridge-backend/internal/generation"
	"github.com/yungbote/linguabridge-backend/internal/handlers"
	"github.com/yungbote/linguabridge-backend/internal/middleware"
	"github.com/yungbote/linguabridge-backend/internal/observability"
	"github.com/yungbote/linguabridge-backend/internal/platform/gemini"
	"github.com/yungbote/linguabridge-backend/internal/platform/logger"
	"github.com/yungbote/linguabridge-backend/internal/repos"
	"github.com/yungbote/linguabridge-backend/internal/server"
	"github.com/yungbote/linguabridge-backend/internal/services"
)

func main() {
	// Logger
	logMode := os.Getenv("LOG_MODE")
	if logMode == "" {
		logMode = "development"
	}
	log, err := logger.New(logMode)
	if err != nil {
		fmt.Printf("Failed to init logger: %v\n", err)
		os.Exit(1)
	}
	defer log.Sync()

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	cfg := app.Load(log)

	// Tracing
	otelShutdown := observability.InitOTel(ctx, log, observability.OtelConfig{
		ServiceName: "linguabridge-backend",
		Environment: cfg.Environment,
	})

	// Postgres
	postgresService, err := db.NewPostgresService(log)
	if err != nil {
		log.Fatal("Postgres init failed", "error", err)
	}
	if err := postgresService.AutoMigrateAll(); err != nil {
		log.Fatal("Postgres auto migration failed", "error", err)
	}
	thePG := postgresService.DB()

	// Redis is optional; leaderboard reads fall back to postgres.
	rdb, err := redis.NewClient(ctx, log)
	if err != nil {
		log.Warn("Redis init failed, leaderboard will read from postgres", "error", err)
		rdb = nil
	}

	// Repos
	log.Info("Setting up Repos from main...")
	userRepo := repos.NewUserRepo(thePG, log)
	userTokenRepo := repos.NewUserTokenRepo(thePG, log)
	languageRepo := repos.NewLanguageRepo(thePG, log)
	lessonRepo := repos.NewLessonRepo(thePG, log)
	quizRepo := repos.NewQuizRepo(thePG, log)
	conversationRepo := repos.NewConversationRepo(thePG, log)
	pronunciationRepo := repos.NewPronunciationRepo(thePG, log)
	progressRepo := repos.NewProgressRepo(thePG, log)

	if err := postgresService.SeedLanguages(ctx, languageRepo); err != nil {
		log.Warn("Language seed failed", "error", err)
	}

	// Model client
	geminiClient, err := gemini.NewClient(ctx, log, gemini.Config{
		APIKey:      cfg.GeminiAPIKey,
		Model:       cfg.GeminiModel,
		Temperature: cfg.GeminiTemperature,
	})
	if err != nil {
		log.Fatal("Could not init Gemini client", "error", err)
	}
	generator := generation.NewGenerator(geminiClient, log)

	// Services
	log.Info("Setting up Services from main...")
	authService := services.NewAuthService(thePG, log, userRepo, userTokenRepo, cfg.JWTSecretKey, cfg.AccessTTL, cfg.RefreshTTL)
	progressService := services.NewProgressService(thePG, log, progressRepo, userRepo, rdb)
	quizService := services.NewQuizService(thePG, log, generator, lessonRepo, quizRepo, languageRepo)
	lessonService := services.NewLessonService(thePG, log, generator, lessonRepo, quizRepo, languageRepo, quizService, progressService)
	conversationService := services.NewConversationService(thePG, log, generator, conversationRepo, languageRepo)
	pronunciationService := services.NewPronunciationService(thePG, log, generator, pronunciationRepo, languageRepo)

	// Handlers
	log.Info("Setting up handlers from main...")
	authHandler := handlers.NewAuthHandler(authService)
	aiHandler := handlers.NewAIHandler(lessonService, quizService, conversationService, pronunciationService)
	languageHandler := handlers.NewLanguageHandler(languageRepo)
	progressHandler := handlers.NewProgressHandler(progressService)

	// Middleware
	authMiddleware := middleware.NewAuthMiddleware(log, authService)

	// Router
	log.Info("Setting up router from main...")
	router := server.NewRouter(server.RouterConfig{
		AuthHandler:     authHandler,
		AuthMiddleware:  authMiddleware,
		AIHandler:       aiHandler,
		LanguageHandler: languageHandler,
		ProgressHandler: progressHandler,
		AllowOrigins:    cfg.AllowOrigins,
	})

	srv := &http.Server{
		Addr:    ":" + cfg.Port,
		Handler: router,
	}

	group, groupCtx := errgroup.WithContext(ctx)
	group.Go(func() error {
		log.Info("Server listening", "port", cfg.Port)
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			return err
		}
		return nil
	})
	group.Go(func() error {
		<-groupCtx.Done()
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
		defer cancel()
		if otelShutdown != nil {
			if err := otelShutdown(shutdownCtx); err != nil {
				log.Warn("Tracer shutdown failed", "error", err)
			}
		}
		return srv.Shutdown(shutdownCtx)
	})
	if err := group.Wait(); err != nil {
		log.Error("Server failed", "error", err)
		os.Exit(1)
	}
}
