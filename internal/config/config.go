package config

import (
	"os"
	"strconv"
	"time"

	"github.com/joho/godotenv"
	"github.com/sirupsen/logrus"
)

type Config struct {
	Port        string
	DatabaseURL string
	CorsOrigin  string

	// Create-endpoint rate limit.
	CreateRateMax    int
	CreateRateWindow time.Duration
}

// Load reads configuration from the environment, with .env as a fallback
// for local development.
func Load() Config {
	if err := godotenv.Load(); err != nil {
		logrus.Debugf("no .env file loaded, using environment: %v", err)
	}

	return Config{
		Port:             getEnv("PORT", "8080"),
		DatabaseURL:      getEnv("DATABASE_URL", ""),
		CorsOrigin:       getEnv("CORS_ORIGIN", "*"),
		CreateRateMax:    getEnvInt("RATE_LIMIT_TX_MAX", 60),
		CreateRateWindow: time.Duration(getEnvInt("RATE_LIMIT_TX_WINDOW_SECONDS", 60)) * time.Second,
	}
}

func getEnv(key, defaultVal string) string {
	if value, exists := os.LookupEnv(key); exists && value != "" {
		return value
	}
	return defaultVal
}

func getEnvInt(key string, defaultVal int) int {
	if value, exists := os.LookupEnv(key); exists {
		if parsed, err := strconv.Atoi(value); err == nil && parsed > 0 {
			return parsed
		}
	}
	return defaultVal
}
