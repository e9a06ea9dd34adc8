package config

import (
	"os"
	"strconv"
)

// Config holds the service configuration, loaded from environment
// variables with sensible defaults for local development
type Config struct {
	Port        string
	DBPath      string
	UploadDir   string
	MaxUploadMB int64
	CleanupAge  string // e.g. "1h", parsed by the cleanup handler
}

// Load reads configuration from environment variables
func Load() *Config {
	return &Config{
		Port:        getEnv("PORT", "8080"),
		DBPath:      getEnv("DB_PATH", "segmentation.db"),
		UploadDir:   getEnv("UPLOAD_DIR", "uploads"),
		MaxUploadMB: int64(getEnvAsInt("MAX_UPLOAD_MB", 100)),
		CleanupAge:  getEnv("CLEANUP_AGE", "1h"),
	}
}

// MaxUploadBytes returns the upload size limit in bytes
func (c *Config) MaxUploadBytes() int64 {
	return c.MaxUploadMB * 1024 * 1024
}

func getEnv(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}

func getEnvAsInt(key string, defaultValue int) int {
	if value := os.Getenv(key); value != "" {
		if intValue, err := strconv.Atoi(value); err == nil {
			return intValue
		}
	}
	return defaultValue
}
