package config

import (
	"os"
	"strconv"

	"github.com/joho/godotenv"
)

// Config holds all configuration for the application
type Config struct {
	// App
	AppEnv string

	// Database
	DatabasePath string

	// Cache
	CacheTTLSeconds     int
	CacheCleanupSeconds int
}

// Load reads configuration from environment variables, with a .env file as
// an optional source.
func Load() *Config {
	godotenv.Load()

	return &Config{
		AppEnv:              getEnv("APP_ENV", "development"),
		DatabasePath:        getEnv("FLIGHTDECK_DB", "flight.db"),
		CacheTTLSeconds:     getEnvAsInt("CACHE_TTL_SECONDS", 300),
		CacheCleanupSeconds: getEnvAsInt("CACHE_CLEANUP_SECONDS", 600),
	}
}

func getEnv(key, fallback string) string {
	if value, ok := os.LookupEnv(key); ok && value != "" {
		return value
	}
	return fallback
}

func getEnvAsInt(key string, fallback int) int {
	valueStr := getEnv(key, "")
	if value, err := strconv.Atoi(valueStr); err == nil {
		return value
	}
	return fallback
}
