// Package config handles tool configuration from environment variables.
package config

import (
	"os"
	"strconv"
)

// Config holds all leadctl configuration.
type Config struct {
	// Database
	DatabaseURL string // DSN for the leads database

	// Export
	ExportLimit int // max leads per export run

	// Initial admin user created by `leadctl init` on an empty database
	AdminUsername string
	AdminEmail    string
	AdminPassword string
}

// Load reads configuration from environment variables.
// The default DSN targets leads.db in the working directory, matching where
// the application keeps its database.
func Load() *Config {
	return &Config{
		DatabaseURL: getEnv("LEADCTL_DATABASE_URL", "file:leads.db"),
		ExportLimit: getEnvInt("LEADCTL_EXPORT_LIMIT", 50),

		AdminUsername: getEnv("LEADCTL_ADMIN_USERNAME", "admin"),
		AdminEmail:    getEnv("LEADCTL_ADMIN_EMAIL", "admin@example.com"),
		AdminPassword: getEnv("LEADCTL_ADMIN_PASSWORD", "admin123"),
	}
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
