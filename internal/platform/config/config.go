package config

import (
	"log/slog"
	"os"
	"time"

	"github.com/joho/godotenv"
)

// Backend names accepted by ABGS_STORE_BACKEND.
const (
	BackendMemory   = "memory"
	BackendPostgres = "postgres"
	BackendSQLite   = "sqlite"
)

// Server captures process-level configuration.
type Server struct {
	Addr            string
	StoreBackend    string
	DatabaseURL     string
	SQLitePath      string
	LogLevel        string
	ShutdownTimeout time.Duration
}

// FromEnv builds a Server config from environment variables so main stays
// lean. A .env file is honored when present for local development.
func FromEnv() Server {
	_ = godotenv.Load()

	cfg := Server{
		Addr:            getEnv("ABGS_ADDR", ":8080"),
		StoreBackend:    getEnv("ABGS_STORE_BACKEND", BackendMemory),
		DatabaseURL:     os.Getenv("ABGS_DATABASE_URL"),
		SQLitePath:      getEnv("ABGS_SQLITE_PATH", "data/abgs.db"),
		LogLevel:        getEnv("ABGS_LOG_LEVEL", "info"),
		ShutdownTimeout: 10 * time.Second,
	}

	if timeout := os.Getenv("ABGS_SHUTDOWN_TIMEOUT"); timeout != "" {
		d, err := time.ParseDuration(timeout)
		if err != nil {
			slog.Warn("malformed ABGS_SHUTDOWN_TIMEOUT, using default",
				"value", timeout,
				"default", cfg.ShutdownTimeout,
				"error", err,
			)
		} else {
			cfg.ShutdownTimeout = d
		}
	}

	return cfg
}

func getEnv(key, fallback string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return fallback
}
