package app

import (
	"os"
	"strconv"
	"strings"
	"time"
)

type Config struct {
	DatabaseFile        string        // Optional: path to SQLite database file (default: ./tally.db)
	PepperFile          string        // Optional: path to file containing pepper for password hashing (default: ./pepper)
	Env                 string        // Environment (dev, staging, prod) (default: dev)
	LogLevel            string        // Log level (debug, info, warn, error) (default: info)
	LogFormat           string        // Log format (json, text) (default: json)
	Port                int           // HTTP server port (default: 8080)
	ShutdownGracePeriod time.Duration // Graceful shutdown timeout (default: 10s)

	// Course providers, as comma-separated name=baseURL pairs, e.g.
	// "maktab=https://maktabkhooneh.org/api/v1/courses/category".
	Providers       map[string]string
	ProviderTimeout time.Duration // Upstream request timeout (default: 10s)
}

func LoadConfig() Config {
	cfg := Config{
		DatabaseFile:        getEnvOrDefault("TALLY_DATABASE_FILE", "tally.db"),
		PepperFile:          getEnvOrDefault("TALLY_PEPPER_FILE", "pepper"),
		Env:                 getEnvOrDefault("ENV", "dev"),
		LogLevel:            getEnvOrDefault("LOG_LEVEL", "info"),
		LogFormat:           getEnvOrDefault("LOG_FORMAT", "json"),
		Port:                getEnvIntOrDefault("PORT", 8080),
		ShutdownGracePeriod: getEnvDurationOrDefault("SHUTDOWN_GRACE_PERIOD", 10*time.Second),
		Providers:           parseProviders(os.Getenv("TALLY_PROVIDERS")),
		ProviderTimeout:     getEnvDurationOrDefault("TALLY_PROVIDER_TIMEOUT", 10*time.Second),
	}

	return cfg
}

// parseProviders splits "name=url,name=url". Malformed pairs are skipped.
func parseProviders(raw string) map[string]string {
	providers := make(map[string]string)
	for _, pair := range strings.Split(raw, ",") {
		name, baseURL, found := strings.Cut(strings.TrimSpace(pair), "=")
		if !found || name == "" || baseURL == "" {
			continue
		}
		providers[name] = baseURL
	}
	return providers
}

func getEnvOrDefault(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}

func getEnvIntOrDefault(key string, defaultValue int) int {
	value := os.Getenv(key)
	if value == "" {
		return defaultValue
	}

	if intValue, err := strconv.Atoi(value); err == nil {
		return intValue
	}

	return defaultValue
}

func getEnvDurationOrDefault(key string, defaultValue time.Duration) time.Duration {
	value := os.Getenv(key)
	if value == "" {
		return defaultValue
	}

	if duration, err := time.ParseDuration(value); err == nil {
		return duration
	}

	if seconds, err := strconv.Atoi(value); err == nil {
		return time.Duration(seconds) * time.Second
	}

	return defaultValue
}
