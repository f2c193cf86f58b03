package config

import (
	"fmt"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/joho/godotenv"
)

type Config struct {
	Port        string
	GinMode     string
	CORSOrigins []string

	// Generative provider
	GeminiAPIKey    string
	GeminiModel     string
	ProviderTimeout time.Duration

	// Image search provider
	UnsplashAccessKey string
	MoodboardCacheTTL time.Duration

	// Optional Redis backing for rate limiting and the moodboard cache.
	// When empty, in-process stores are used.
	RedisURL      string
	RedisPassword string
	RedisDB       int

	// Per-endpoint rate limits, all sharing one window
	RateLimitWindow    time.Duration
	BrandRateLimit     int
	ReportRateLimit    int
	EmailRateLimit     int
	MoodboardRateLimit int
}

func LoadConfig() (*Config, error) {
	// Load .env file if it exists
	if _, err := os.Stat(".env"); err == nil {
		if err := godotenv.Load(); err != nil {
			return nil, fmt.Errorf("error loading .env file: %v", err)
		}
	}

	cfg := &Config{
		Port:        getEnv("PORT", "8080"),
		GinMode:     getEnv("GIN_MODE", "debug"),
		CORSOrigins: strings.Split(getEnv("CORS_ORIGINS", "http://localhost:3000,http://localhost:8080"), ","),

		GeminiAPIKey:    getEnv("GOOGLE_GEMINI_API_KEY", ""),
		GeminiModel:     getEnv("GEMINI_MODEL", "gemini-2.0-flash-exp"),
		ProviderTimeout: getEnvDuration("PROVIDER_TIMEOUT", 30*time.Second),

		UnsplashAccessKey: getEnv("UNSPLASH_ACCESS_KEY", ""),
		MoodboardCacheTTL: getEnvDuration("MOODBOARD_CACHE_TTL", 5*time.Minute),

		RedisURL:      getEnv("REDIS_URL", ""),
		RedisPassword: getEnv("REDIS_PASSWORD", ""),
		RedisDB:       getEnvInt("REDIS_DB", 0),

		RateLimitWindow:    getEnvDuration("RATE_LIMIT_WINDOW", time.Minute),
		BrandRateLimit:     getEnvInt("BRAND_RATE_LIMIT", 20),
		ReportRateLimit:    getEnvInt("REPORT_RATE_LIMIT", 5),
		EmailRateLimit:     getEnvInt("EMAIL_RATE_LIMIT", 5),
		MoodboardRateLimit: getEnvInt("MOODBOARD_RATE_LIMIT", 10),
	}

	// Provider keys are optional: without them the deterministic fallback
	// generators serve every request, which is the intended demo mode.
	return cfg, nil
}

func getEnv(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}

func getEnvInt(key string, defaultValue int) int {
	if value := os.Getenv(key); value != "" {
		if intValue, err := strconv.Atoi(value); err == nil {
			return intValue
		}
	}
	return defaultValue
}

func getEnvDuration(key string, defaultValue time.Duration) time.Duration {
	if value := os.Getenv(key); value != "" {
		if d, err := time.ParseDuration(value); err == nil {
			return d
		}
	}
	return defaultValue
}
