package common

import (
	"os"
	"time"
)

// Config holds all application configuration
type Config struct {
	Backend BackendConfig
	Storage StorageConfig
}

// BackendConfig holds remote extraction backend configuration
type BackendConfig struct {
	URL     string
	Timeout time.Duration
}

// StorageConfig holds local storage configuration
type StorageConfig struct {
	DataDir string
}

// LoadConfig loads configuration from environment variables
func LoadConfig() *Config {
	return &Config{
		Backend: BackendConfig{
			URL:     getEnv("BACKEND_URL", "https://invoice-extractor-app.onrender.com/extract"),
			Timeout: getEnvAsDuration("BACKEND_TIMEOUT", 45*time.Second),
		},
		Storage: StorageConfig{
			DataDir: getEnv("DATA_DIR", defaultDataDir()),
		},
	}
}

func defaultDataDir() string {
	if home, err := os.UserHomeDir(); err == nil {
		return home + "/.invoice-extractor"
	}
	return "./.invoice-extractor"
}

// Helper functions for environment variable parsing
func getEnv(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}

func getEnvAsDuration(key string, defaultValue time.Duration) time.Duration {
	if value := os.Getenv(key); value != "" {
		if duration, err := time.ParseDuration(value); err == nil {
			return duration
		}
	}
	return defaultValue
}

// ValidateForRemote checks the settings the remote extraction path needs.
// Local-only commands never call this.
func (c *Config) ValidateForRemote() error {
	if c.Backend.URL == "" {
		return NewAppError("CONFIG_ERROR", "BACKEND_URL is required", ErrInvalidInput)
	}
	if c.Backend.Timeout <= 0 {
		return NewAppError("CONFIG_ERROR", "BACKEND_TIMEOUT must be positive", ErrInvalidInput)
	}
	return nil
}
