package config

import (
	"fmt"
	"log/slog"
	"os"
	"strconv"

	"github.com/joho/godotenv"
)

// Config holds everything main needs to wire the server.
type Config struct {
	Port         string
	DatabasePath string
	// SessionSecret signs the session tokens. Required, at least 32 bytes.
	SessionSecret string
	BcryptCost    int
	// AdminUserID is the designated administrator. Defaults to 1, the
	// first account ever created.
	AdminUserID  int64
	CookieSecure bool
}

// Load reads configuration from a .env file (if present) and the
// environment.
func Load() (*Config, error) {
	if err := godotenv.Load(); err != nil {
		slog.Debug("no .env file found")
	}

	cfg := &Config{
		Port:          envOrDefault("PORT", "8080"),
		DatabasePath:  envOrDefault("DATABASE_PATH", "inkwell.db"),
		SessionSecret: os.Getenv("SESSION_SECRET"),
		BcryptCost:    12,
		AdminUserID:   1,
		CookieSecure:  os.Getenv("COOKIE_SECURE") != "false",
	}

	if cfg.SessionSecret == "" {
		return nil, fmt.Errorf("SESSION_SECRET environment variable is required")
	}
	if len(cfg.SessionSecret) < 32 {
		return nil, fmt.Errorf("SESSION_SECRET must be at least 32 characters for HMAC-SHA256 security")
	}

	if v := os.Getenv("BCRYPT_COST"); v != "" {
		parsed, err := strconv.Atoi(v)
		if err != nil {
			return nil, fmt.Errorf("invalid BCRYPT_COST: %w", err)
		}
		if parsed < 4 || parsed > 14 {
			return nil, fmt.Errorf("BCRYPT_COST must be between 4 and 14, got %d", parsed)
		}
		cfg.BcryptCost = parsed
	}

	if v := os.Getenv("ADMIN_USER_ID"); v != "" {
		parsed, err := strconv.ParseInt(v, 10, 64)
		if err != nil || parsed < 1 {
			return nil, fmt.Errorf("invalid ADMIN_USER_ID: %q", v)
		}
		cfg.AdminUserID = parsed
	}

	return cfg, nil
}

func envOrDefault(key, defaultVal string) string {
	if val := os.Getenv(key); val != "" {
		return val
	}
	return defaultVal
}
