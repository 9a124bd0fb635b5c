package config

import (
	"os"
	"strconv"
	"time"
)

// Config holds webhook receiver configuration.
type Config struct {
	Port           string
	Env            string
	LogLevel       string
	APIBaseURL     string
	APIKey         string
	WebhookSecret  string
	RequestTimeout time.Duration
	FetchMessages  bool
}

// Load reads configuration from environment variables.
func Load() *Config {
	return &Config{
		Port:           getEnv("PORT", "3010"),
		Env:            getEnv("ENV", "development"),
		LogLevel:       getEnv("LOG_LEVEL", "info"),
		APIBaseURL:     getEnv("SIMPLEMSG_BASE_URL", "http://localhost:3000"),
		APIKey:         getEnv("SIMPLEMSG_API_KEY", ""),
		WebhookSecret:  getEnv("SIMPLEMSG_WEBHOOK_SECRET", ""),
		RequestTimeout: getEnvAsDuration("SIMPLEMSG_HTTP_TIMEOUT", 10*time.Second),
		FetchMessages:  getEnvAsBool("SIMPLEMSG_FETCH_MESSAGES", false),
	}
}

// getEnv retrieves an environment variable or returns a default value
func getEnv(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}

func getEnvAsBool(key string, defaultValue bool) bool {
	if value, err := strconv.ParseBool(getEnv(key, "")); err == nil {
		return value
	}
	return defaultValue
}

func getEnvAsDuration(key string, defaultValue time.Duration) time.Duration {
	valueStr := getEnv(key, "")
	if valueStr == "" {
		return defaultValue
	}
	if value, err := time.ParseDuration(valueStr); err == nil {
		return value
	}
	return defaultValue
}
