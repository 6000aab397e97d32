// Copyright (c) 2026 Linkdeck. All rights reserved.
// Author: tai.buivan.jp@gmail.com

/*
Package config reads the server settings from the environment once at
startup using caarlos0/env.

The resulting [Config] is passed by pointer to constructors and never
mutated. [Config.Auth] narrows it to the access-control settings the token
service and the auth gate need.
*/
package config

import (
	"errors"
	"fmt"
	"strings"

	"github.com/caarlos0/env/v11"

	"github.com/taibuivan/linkdeck/internal/platform/sec"
)

// minSecretLength is the shortest AUTH_SECRET accepted when auth is enabled.
const minSecretLength = 32

// # Configuration Schema

// Config is the full set of server settings.
type Config struct {
	// HTTP listener and runtime mode. Development mode accepts any CORS origin.
	ServerPort  string `env:"SERVER_PORT" envDefault:"8080"`
	Environment string `env:"ENVIRONMENT" envDefault:"development"`
	Debug       bool   `env:"DEBUG" envDefault:"false"`

	// TrustProxyHeaders takes the client address from X-Real-IP/X-Forwarded-For.
	// Enable only behind a reverse proxy that overwrites them.
	TrustProxyHeaders bool `env:"TRUST_PROXY_HEADERS" envDefault:"false"`

	// PostgreSQL holds groups and sites. Migrations run at startup and on POST /api/init.
	DatabaseURL   string `env:"DATABASE_URL,required,notEmpty"`
	MigrationPath string `env:"MIGRATION_PATH" envDefault:"./data/migrations"`

	// RedisURL is optional. Empty disables the login throttle and the public board cache.
	RedisURL string `env:"REDIS_URL"`

	// Single-operator access control. Ignored unless AuthEnabled.
	AuthEnabled      bool   `env:"AUTH_ENABLED" envDefault:"false"`
	AuthUsername     string `env:"AUTH_USERNAME"`
	AuthPassword     string `env:"AUTH_PASSWORD"`
	AuthPasswordHash string `env:"AUTH_PASSWORD_HASH"`
	AuthSecret       string `env:"AUTH_SECRET"`

	// AllowedOrigins is the production CORS allow list.
	AllowedOrigins []string `env:"ALLOWED_ORIGINS" envSeparator:","`
}

// # Configuration Loading

// Load parses the environment and rejects inconsistent auth settings.
func Load() (*Config, error) {
	cfg := &Config{}
	if err := env.Parse(cfg); err != nil {
		return nil, fmt.Errorf("config: failed to parse environment variables: %w", err)
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	return cfg, nil
}

// Validate checks cross-field constraints that struct tags cannot express.
func (c *Config) Validate() error {
	if !c.AuthEnabled {
		return nil
	}

	var problems []string
	if strings.TrimSpace(c.AuthUsername) == "" {
		problems = append(problems, "AUTH_USERNAME is required when AUTH_ENABLED=true")
	}
	if c.AuthPassword == "" && c.AuthPasswordHash == "" {
		problems = append(problems, "one of AUTH_PASSWORD or AUTH_PASSWORD_HASH is required when AUTH_ENABLED=true")
	}
	if c.AuthPassword != "" && c.AuthPasswordHash != "" {
		problems = append(problems, "AUTH_PASSWORD and AUTH_PASSWORD_HASH are mutually exclusive")
	}
	if len(c.AuthSecret) < minSecretLength {
		problems = append(problems, fmt.Sprintf("AUTH_SECRET must be at least %d bytes when AUTH_ENABLED=true", minSecretLength))
	}

	if len(problems) > 0 {
		return fmt.Errorf("config: %w", errors.New(strings.Join(problems, "; ")))
	}
	return nil
}

// Auth returns the immutable access-control settings handed to the token
// service and the auth gate.
func (c *Config) Auth() sec.AuthConfig {
	return sec.AuthConfig{
		Enabled:      c.AuthEnabled,
		Username:     c.AuthUsername,
		Password:     c.AuthPassword,
		PasswordHash: c.AuthPasswordHash,
		Secret:       []byte(c.AuthSecret),
	}
}

// IsDevelopment opens CORS to every origin.
func (c *Config) IsDevelopment() bool {
	return c.Environment == "development"
}

// IsOriginAllowed reports whether a production CORS origin is on the allow list.
func (c *Config) IsOriginAllowed(origin string) bool {
	for _, allowed := range c.AllowedOrigins {
		if strings.EqualFold(strings.TrimSpace(allowed), origin) {
			return true
		}
	}
	return false
}
