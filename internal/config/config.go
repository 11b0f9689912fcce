package config

import (
	"fmt"
	"os"
	"strconv"
	"time"
)

// Config holds every runtime setting, loaded once at startup from the
// environment.
type Config struct {
	Port string

	DBHost     string
	DBPort     string
	DBUser     string
	DBPassword string
	DBName     string

	CloudinaryCloudName string
	CloudinaryAPIKey    string
	CloudinaryAPISecret string

	// Leaderboard maintenance schedule
	RecalcInterval     time.Duration // full points/rank sweep
	ExpiryScanInterval time.Duration // stale mentorship request scan
	RequestMaxAgeDays  int           // pending requests older than this expire
}

func LoadConfig() (*Config, error) {
	cfg := &Config{
		Port: getEnv("PORT", "8080"),

		DBHost:     getEnv("DB_HOST", "localhost"),
		DBPort:     getEnv("DB_PORT", "5432"),
		DBUser:     getEnv("DB_USER", "postgres"),
		DBPassword: os.Getenv("DB_PASSWORD"),
		DBName:     getEnv("DB_NAME", "connectedu"),

		CloudinaryCloudName: os.Getenv("CLOUDINARY_CLOUD_NAME"),
		CloudinaryAPIKey:    os.Getenv("CLOUDINARY_API_KEY"),
		CloudinaryAPISecret: os.Getenv("CLOUDINARY_API_SECRET"),

		RecalcInterval:     getEnvDuration("LEADERBOARD_RECALC_INTERVAL", time.Hour),
		ExpiryScanInterval: getEnvDuration("REQUEST_EXPIRY_SCAN_INTERVAL", 6*time.Hour),
		RequestMaxAgeDays:  getEnvInt("REQUEST_MAX_AGE_DAYS", 3),
	}

	if cfg.DBPassword == "" {
		return nil, fmt.Errorf("DB_PASSWORD is required")
	}

	return cfg, nil
}

func getEnv(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}

func getEnvInt(key string, fallback int) int {
	if v := os.Getenv(key); v != "" {
		if i, err := strconv.Atoi(v); err == nil {
			return i
		}
	}
	return fallback
}

func getEnvDuration(key string, fallback time.Duration) time.Duration {
	if v := os.Getenv(key); v != "" {
		if d, err := time.ParseDuration(v); err == nil {
			return d
		}
	}
	return fallback
}
