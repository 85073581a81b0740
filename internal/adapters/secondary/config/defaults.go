package config

import (
	"os"
	"strconv"
	"strings"

	"github.com/fredcamaral/decksite/internal/domain/entities"
)

// GetDefaultConfig returns the default configuration with environment overrides
func GetDefaultConfig() *entities.Config {
	return &entities.Config{
		Server: entities.ServerConfig{
			Host:            getEnvOrDefault("DECKSITE_HOST", "localhost"),
			Port:            getEnvIntOrDefault("DECKSITE_PORT", 8080),
			ReadTimeout:     getEnvIntOrDefault("DECKSITE_READ_TIMEOUT", 30),
			WriteTimeout:    getEnvIntOrDefault("DECKSITE_WRITE_TIMEOUT", 30),
			ShutdownTimeout: getEnvIntOrDefault("DECKSITE_SHUTDOWN_TIMEOUT", 5),
			CORSOrigins: getEnvSliceOrDefault("DECKSITE_CORS_ORIGINS", []string{
				"http://localhost:3000",
				"http://127.0.0.1:3000",
				"http://localhost:8080",
				"http://127.0.0.1:8080",
			}),
		},
		Build: entities.BuildConfig{
			OutputDir:    getEnvOrDefault("DECKSITE_OUTPUT_DIR", "site"),
			DefaultTheme: getEnvOrDefault("DECKSITE_THEME", "default"),
			CopyAssets:   getEnvBoolOrDefault("DECKSITE_COPY_ASSETS", true),
		},
		Watcher: entities.WatcherConfig{
			IntervalMs: getEnvIntOrDefault("DECKSITE_WATCH_INTERVAL", 200),
			DebounceMs: getEnvIntOrDefault("DECKSITE_WATCH_DEBOUNCE", 500),
		},
		Logging: entities.LoggingConfig{
			Level:   getEnvOrDefault("DECKSITE_LOG_LEVEL", "info"),
			Verbose: getEnvBoolOrDefault("DECKSITE_LOG_VERBOSE", false),
		},
	}
}

// getEnvOrDefault returns environment variable value or default
func getEnvOrDefault(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}

// getEnvIntOrDefault returns environment variable as int or default
func getEnvIntOrDefault(key string, defaultValue int) int {
	if value := os.Getenv(key); value != "" {
		if intValue, err := strconv.Atoi(value); err == nil {
			return intValue
		}
	}
	return defaultValue
}

// getEnvBoolOrDefault returns environment variable as bool or default
func getEnvBoolOrDefault(key string, defaultValue bool) bool {
	if value := os.Getenv(key); value != "" {
		if boolValue, err := strconv.ParseBool(value); err == nil {
			return boolValue
		}
	}
	return defaultValue
}

// getEnvSliceOrDefault returns environment variable as slice or default
func getEnvSliceOrDefault(key string, defaultValue []string) []string {
	if value := os.Getenv(key); value != "" {
		parts := strings.Split(value, ",")
		result := make([]string, 0, len(parts))
		for _, part := range parts {
			if trimmed := strings.TrimSpace(part); trimmed != "" {
				result = append(result, trimmed)
			}
		}
		if len(result) > 0 {
			return result
		}
	}
	return defaultValue
}
