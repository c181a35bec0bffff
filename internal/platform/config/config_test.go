package config

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoad_Defaults(t *testing.T) {
	cfg, err := Load()
	require.NoError(t, err)

	assert.Equal(t, "8080", cfg.APIPort)
	assert.Equal(t, "defaultsecret", cfg.JWT.Secret)
	assert.Equal(t, "auth_token", cfg.JWT.CookieName)
	assert.Equal(t, 24*time.Hour, cfg.TokenLifetime())
	assert.False(t, cfg.DevUser.Seed)
}

func TestLoad_Overrides(t *testing.T) {
	t.Setenv("API_PORT", "9999")
	t.Setenv("JWT_SECRET", "supersecret")
	t.Setenv("JWT_EXPIRATION_MS", "60000")
	t.Setenv("JWT_COOKIE_NAME", "session")
	t.Setenv("DEV_USER_SEED", "true")
	t.Setenv("DEV_USER_USERNAME", "admin")

	cfg, err := Load()
	require.NoError(t, err)

	assert.Equal(t, "9999", cfg.APIPort)
	assert.Equal(t, "supersecret", cfg.JWT.Secret)
	assert.Equal(t, time.Minute, cfg.TokenLifetime())
	assert.Equal(t, "session", cfg.JWT.CookieName)
	assert.True(t, cfg.DevUser.Seed)
	assert.Equal(t, "admin", cfg.DevUser.Username)
}
