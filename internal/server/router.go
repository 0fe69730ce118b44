package server

import (
	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"go.opentelemetry.io/contrib/instrumentation/github.com/gin-gonic/gin/otelgin"

	"github.com/yungbote/linguabridge-backend/internal/handlers"
	"github.com/yungbote/linguabridge-backend/internal/middleware"
)

type RouterConfig struct {
	AuthHandler     *handlers.AuthHandler
	AuthMiddleware  *middleware.AuthMiddleware
	AIHandler       *handlers.AIHandler
	LanguageHandler *handlers.LanguageHandler
	ProgressHandler *handlers.ProgressHandler
	AllowOrigins    []string
}

func NewRouter(cfg RouterConfig) *gin.Engine {
	router := gin.New()
	router.Use(gin.Logger(), gin.Recovery())
	router.Use(otelgin.Middleware("linguabridge-backend"))

	origins := cfg.AllowOrigins
	if len(origins) == 0 {
		origins = []string{"http://localhost:3000", "http://localhost:5173"}
	}
	router.Use(cors.New(cors.Config{
		AllowOrigins:     origins,
		AllowMethods:     []string{"GET", "POST", "PUT", "DELETE", "PATCH", "OPTIONS"},
		AllowHeaders:     []string{"Authorization", "Content-Type", "X-Requested-With"},
		AllowCredentials: true,
	}))

	// ===============
	// || Public    ||
	// ===============
	router.GET("/healthcheck", handlers.HealthCheck)
	api := router.Group("/api")
	{
		api.POST("/auth/register", cfg.AuthHandler.Register)
		api.POST("/auth/login", cfg.AuthHandler.Login)
		api.GET("/languages", cfg.LanguageHandler.List)
	}

	// ===============
	// || Protected ||
	// ===============
	protected := router.Group("/api")
	protected.Use(cfg.AuthMiddleware.RequireAuth())
	// Auth
	protected.POST("/auth/refresh", cfg.AuthHandler.Refresh)
	protected.POST("/auth/logout", cfg.AuthHandler.Logout)
	// Generation
	protected.POST("/ai/generate-lesson", cfg.AIHandler.GenerateLesson)
	protected.POST("/ai/generate-quiz", cfg.AIHandler.GenerateQuiz)
	protected.POST("/ai/conversation-prompt", cfg.AIHandler.ConversationPrompt)
	protected.POST("/ai/conversation-response", cfg.AIHandler.ConversationResponse)
	protected.POST("/ai/pronunciation-feedback", cfg.AIHandler.PronunciationFeedback)
	protected.GET("/ai/lesson/:lessonId", cfg.AIHandler.GetLesson)
	// Progress
	protected.GET("/progress/:languageId", cfg.ProgressHandler.GetProgress)
	protected.GET("/leaderboard/:languageId", cfg.ProgressHandler.GetLeaderboard)

	return router
}
