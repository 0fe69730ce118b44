package app

import (
	"strings"
	"time"

	"github.com/yungbote/linguabridge-backend/internal/platform/logger"
	"github.com/yungbote/linguabridge-backend/internal/utils"
)

// Config collects the process-level settings read at startup.
type Config struct {
	Port         string
	Environment  string
	AllowOrigins []string

	JWTSecretKey string
	AccessTTL    time.Duration
	RefreshTTL   time.Duration

	GeminiAPIKey string
	GeminiModel  string
	// GeminiTemperature, when > 0, overrides the per-kind request
	// temperatures. Zero leaves them untouched.
	GeminiTemperature float64
}

func Load(log *logger.Logger) Config {
	accessTTL := utils.GetEnvAsInt("ACCESS_TOKEN_TTL", 3600, log)
	refreshTTL := utils.GetEnvAsInt("REFRESH_TOKEN_TTL", 604800, log)

	var origins []string
	for _, origin := range strings.Split(utils.GetEnv("CORS_ALLOW_ORIGINS", "", log), ",") {
		origin = strings.TrimSpace(origin)
		if origin != "" {
			origins = append(origins, origin)
		}
	}

	return Config{
		Port:              utils.GetEnv("PORT", "8080", log),
		Environment:       utils.GetEnv("APP_ENV", "development", log),
		AllowOrigins:      origins,
		JWTSecretKey:      utils.GetEnv("JWT_SECRET_KEY", "defaultsecret", log),
		AccessTTL:         time.Duration(accessTTL) * time.Second,
		RefreshTTL:        time.Duration(refreshTTL) * time.Second,
		GeminiAPIKey:      utils.GetEnv("GEMINI_API_KEY", "", log),
		GeminiModel:       utils.GetEnv("GEMINI_MODEL", "", log),
		GeminiTemperature: utils.GetEnvAsFloat("GEMINI_TEMPERATURE", 0, log),
	}
}
