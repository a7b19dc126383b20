// internal/infrastructure/config/config.go
package config

import (
	"os"
	"strconv"
	"time"

	"github.com/joho/godotenv"
)

// Config holds all configuration for the application
type Config struct {
	// App
	AppVersion string
	LogLevel   string
	GinMode    string

	// Server
	Port         string
	ReadTimeout  time.Duration
	WriteTimeout time.Duration

	// Document store
	DatabaseURL    string
	DatabaseName   string
	DatabaseDriver string
	ConnectTimeout time.Duration
	StorageTimeout time.Duration
}

// LoadConfig loads configuration from environment variables
func LoadConfig() (*Config, error) {
	// Load .env file if it exists
	godotenv.Load()

	config := &Config{
		AppVersion: getEnv("APP_VERSION", "1.0.0"),
		LogLevel:   getEnv("LOG_LEVEL", "info"),
		GinMode:    getEnv("GIN_MODE", "release"),

		Port:         getEnv("PORT", "8000"),
		ReadTimeout:  time.Duration(getEnvAsInt("READ_TIMEOUT", 30)) * time.Second,
		WriteTimeout: time.Duration(getEnvAsInt("WRITE_TIMEOUT", 30)) * time.Second,

		// No defaults: an unset database leaves the store unavailable.
		DatabaseURL:    getEnv("DATABASE_URL", ""),
		DatabaseName:   getEnv("DATABASE_NAME", ""),
		DatabaseDriver: getEnv("DATABASE_DRIVER", ""),
		ConnectTimeout: time.Duration(getEnvAsInt("CONNECT_TIMEOUT", 10)) * time.Second,
		StorageTimeout: time.Duration(getEnvAsInt("STORAGE_TIMEOUT", 5)) * time.Second,
	}

	return config, nil
}

// DatabaseURLSet reports whether DATABASE_URL was provided.
func (c *Config) DatabaseURLSet() bool {
	return c.DatabaseURL != ""
}

// DatabaseNameSet reports whether DATABASE_NAME was provided.
func (c *Config) DatabaseNameSet() bool {
	return c.DatabaseName != ""
}

// Helper functions to get environment variables
func getEnv(key, defaultValue string) string {
	value := os.Getenv(key)
	if value == "" {
		return defaultValue
	}
	return value
}

func getEnvAsInt(key string, defaultValue int) int {
	valueStr := getEnv(key, "")
	if value, err := strconv.Atoi(valueStr); err == nil && value > 0 {
		return value
	}
	return defaultValue
}
