package config

import (
	"os"
	"strconv"
	"time"
)

// Config holds runtime configuration parsed from environment variables.
type Config struct {
	// APIBaseURL is the root of the remote storefront API.
	APIBaseURL string
	// RequestTimeout bounds every remote call; the backend has no defense
	// against hung requests beyond the transport, so the client adds one.
	RequestTimeout time.Duration
	// RollbackOnFailure restores the pre-mutation cart snapshot when a
	// remote cart sync fails.
	RollbackOnFailure bool
	// StubAddr is the listen address of the local stub backend.
	StubAddr string
	// ShutdownTimeout bounds graceful shutdown of the stub backend.
	ShutdownTimeout time.Duration
}

// FromEnv builds Config with defaults, overridden by environment variables.
func FromEnv() Config {
	return Config{
		APIBaseURL:        envOrDefault("API_BASE_URL", "http://localhost:8080"),
		RequestTimeout:    envDuration("REQUEST_TIMEOUT_SECONDS", 5*time.Second),
		RollbackOnFailure: envBool("CART_ROLLBACK_ON_FAILURE", true),
		StubAddr:          envOrDefault("STUB_ADDR", ":8080"),
		ShutdownTimeout:   envDuration("SHUTDOWN_TIMEOUT_SECONDS", 10*time.Second),
	}
}

func envOrDefault(key, def string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return def
}

func envDuration(key string, def time.Duration) time.Duration {
	if v := os.Getenv(key); v != "" {
		seconds, err := strconv.Atoi(v)
		if err == nil {
			return time.Duration(seconds) * time.Second
		}
	}
	return def
}

func envBool(key string, def bool) bool {
	if v := os.Getenv(key); v != "" {
		parsed, err := strconv.ParseBool(v)
		if err == nil {
			return parsed
		}
	}
	return def
}
