package config

import (
	"os"
	"strings"
	"time"
)

type Config struct {
	HTTPAddr     string
	DatabaseURL  string        // empty means in-memory stores
	KafkaBrokers []string      // empty means events are not published
	JWTSecret    string
	TokenTTL     time.Duration
}

// Load reads configuration from the environment. Callers are expected
// to have loaded any .env file beforehand.
func Load() Config {
	return Config{
		HTTPAddr:     getenv("HTTP_ADDR", ":8080"),
		DatabaseURL:  os.Getenv("DATABASE_URL"),
		KafkaBrokers: splitList(os.Getenv("KAFKA_BROKERS")),
		JWTSecret:    getenv("JWT_SECRET", "dev-insecure-secret-change"),
		TokenTTL:     getduration("JWT_TTL", 24*time.Hour),
	}
}

func getenv(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}

func getduration(key string, fallback time.Duration) time.Duration {
	if v := os.Getenv(key); v != "" {
		if d, err := time.ParseDuration(v); err == nil {
			return d
		}
	}
	return fallback
}

func splitList(v string) []string {
	if v == "" {
		return nil
	}
	parts := strings.Split(v, ",")
	out := make([]string, 0, len(parts))
	for _, p := range parts {
		if p = strings.TrimSpace(p); p != "" {
			out = append(out, p)
		}
	}
	return out
}
