package app

import (
	"os"
	"strconv"
	"time"

	"github.com/andinopay/nomina/pkg/jwtx"
)

type Config struct {
	Issuer string // Optional: issuer claim for session tokens (default: nomina-portal)

	StoreDriver  string // Optional: storage backend (jsondoc, sqlite) (default: jsondoc)
	DataDir      string // Optional: directory for the JSON documents (default: ./data)
	DatabaseFile string // Optional: path to SQLite database file (default: ./portal.db)

	SessionTTL     time.Duration // Optional: session token lifetime (default: 12h)
	MaxUploadBytes int64         // Optional: upload body cap in bytes (default: 50 MiB)

	Env                 string        // Environment (dev, staging, prod) (default: dev)
	LogLevel            string        // Log level (debug, info, warn, error) (default: info)
	LogFormat           string        // Log format (json, text) (default: json)
	Port                int           // HTTP server port (default: 8080)
	ShutdownGracePeriod time.Duration // Graceful shutdown timeout (default: 10s)
}

func LoadConfig() Config {
	cfg := Config{
		Issuer:              getEnvOrDefault("PORTAL_ISSUER", "nomina-portal"),
		StoreDriver:         getEnvOrDefault("PORTAL_STORE_DRIVER", "jsondoc"),
		DataDir:             getEnvOrDefault("PORTAL_DATA_DIR", "data"),
		DatabaseFile:        getEnvOrDefault("PORTAL_DATABASE_FILE", "portal.db"),
		SessionTTL:          getEnvDurationOrDefault("PORTAL_SESSION_TTL", jwtx.DefaultSessionTTL),
		Env:                 getEnvOrDefault("ENV", "dev"),
		LogLevel:            getEnvOrDefault("LOG_LEVEL", "info"),
		LogFormat:           getEnvOrDefault("LOG_FORMAT", "json"),
		Port:                getEnvIntOrDefault("PORT", 8080),
		ShutdownGracePeriod: getEnvDurationOrDefault("SHUTDOWN_GRACE_PERIOD", 10*time.Second),
	}

	cfg.MaxUploadBytes = int64(getEnvIntOrDefault("MAX_UPLOAD_BYTES", 50<<20))

	return cfg
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

	// Try parsing as duration (e.g., "1h", "30m", "90s")
	if duration, err := time.ParseDuration(value); err == nil {
		return duration
	}

	// Try parsing as integer minutes (for backwards compatibility)
	if minutes, err := strconv.Atoi(value); err == nil {
		return time.Duration(minutes) * time.Minute
	}

	return defaultValue
}
