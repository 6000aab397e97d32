// Copyright (c) 2026 Linkdeck. All rights reserved.
// Author: tai.buivan.jp@gmail.com

package config_test

import (
	"os"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/taibuivan/linkdeck/internal/platform/config"
)

const testSecret = "0123456789abcdef0123456789abcdef"

/*
TestLoad_Defaults verifies that optional settings fall back to their defaults.
*/
func TestLoad_Defaults(t *testing.T) {
	t.Setenv("DATABASE_URL", "postgres://localhost/linkdeck")

	cfg, err := config.Load()
	require.NoError(t, err)

	assert.Equal(t, "8080", cfg.ServerPort)
	assert.True(t, cfg.IsDevelopment())
	assert.False(t, cfg.AuthEnabled)
	assert.Empty(t, cfg.RedisURL)

	auth := cfg.Auth()
	assert.False(t, auth.Enabled)
}

/*
TestLoad_MissingDatabase verifies that DATABASE_URL must be set and non-empty.
*/
func TestLoad_MissingDatabase(t *testing.T) {
	t.Run("empty", func(t *testing.T) {
		t.Setenv("DATABASE_URL", "")

		_, err := config.Load()
		assert.ErrorContains(t, err, "DATABASE_URL")
	})

	t.Run("unset", func(t *testing.T) {
		t.Setenv("DATABASE_URL", "")
		require.NoError(t, os.Unsetenv("DATABASE_URL"))

		_, err := config.Load()
		assert.ErrorContains(t, err, "DATABASE_URL")
	})
}

/*
TestValidate_AuthEnabled checks the cross-field rules for access control.
*/
func TestValidate_AuthEnabled(t *testing.T) {
	tests := []struct {
		name     string
		cfg      config.Config
		hasError bool
	}{
		{"plain_password", config.Config{AuthEnabled: true, AuthUsername: "admin", AuthPassword: "pw", AuthSecret: testSecret}, false},
		{"hashed_password", config.Config{AuthEnabled: true, AuthUsername: "admin", AuthPasswordHash: "$2a$10$x", AuthSecret: testSecret}, false},
		{"missing_username", config.Config{AuthEnabled: true, AuthPassword: "pw", AuthSecret: testSecret}, true},
		{"missing_password", config.Config{AuthEnabled: true, AuthUsername: "admin", AuthSecret: testSecret}, true},
		{"both_passwords", config.Config{AuthEnabled: true, AuthUsername: "admin", AuthPassword: "pw", AuthPasswordHash: "$2a$10$x", AuthSecret: testSecret}, true},
		{"short_secret", config.Config{AuthEnabled: true, AuthUsername: "admin", AuthPassword: "pw", AuthSecret: "short"}, true},
		{"disabled_ignores_rest", config.Config{AuthEnabled: false}, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := tt.cfg.Validate()
			if tt.hasError {
				assert.Error(t, err)
			} else {
				assert.NoError(t, err)
			}
		})
	}
}

/*
TestConfig_IsOriginAllowed verifies the production CORS allow list.
*/
func TestConfig_IsOriginAllowed(t *testing.T) {
	cfg := config.Config{AllowedOrigins: []string{"https://links.example.com", " https://other.example.com"}}

	assert.True(t, cfg.IsOriginAllowed("https://links.example.com"))
	assert.True(t, cfg.IsOriginAllowed("https://other.example.com"))
	assert.False(t, cfg.IsOriginAllowed("https://evil.example.com"))
}
