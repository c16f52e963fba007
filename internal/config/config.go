package config

import (
	"fmt"
	"os"
	"strconv"
	"time"

	"github.com/joho/godotenv"
)

// Config holds the application configuration.
type Config struct {
	ServerAddress string
	DatabaseURL   string
	JWTSecret     string
	TokenValidity time.Duration
	UploadDir     string
}

// Load reads configuration from a .env file (if present) and the environment.
func Load() (*Config, error) {
	// Missing .env is fine; real deployments set the environment directly.
	_ = godotenv.Load()

	databaseURL := os.Getenv("DATABASE_URL")
	if databaseURL == "" {
		return nil, fmt.Errorf("DATABASE_URL is not set")
	}

	validityHours, err := strconv.Atoi(getEnv("TOKEN_VALIDITY_HOURS", "100"))
	if err != nil {
		return nil, fmt.Errorf("invalid TOKEN_VALIDITY_HOURS: %w", err)
	}

	return &Config{
		ServerAddress: getEnv("SERVER_ADDRESS", "localhost:3000"),
		DatabaseURL:   databaseURL,
		JWTSecret:     getEnv("JWT_SECRET", "a3budrspk2m"),
		TokenValidity: time.Duration(validityHours) * time.Hour,
		UploadDir:     getEnv("UPLOAD_DIR", "./uploads"),
	}, nil
}

// Helper to get an environment variable with a default value.
func getEnv(key, fallback string) string {
	if value, exists := os.LookupEnv(key); exists {
		return value
	}
	return fallback
}
