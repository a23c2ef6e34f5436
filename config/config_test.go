package config

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoad_Defaults(t *testing.T) {
	t.Setenv("PORT", "")
	t.Setenv("BACKEND_HOST", "")
	t.Setenv("LOGIN_RATE_LIMIT", "")
	t.Setenv("VIEW_RATE_LIMIT", "")

	cfg, err := Load()
	require.NoError(t, err)

	assert.Equal(t, "8080", cfg.Server.Port)
	assert.Equal(t, "http://localhost:8085", cfg.Backend.Host)
	assert.Equal(t, 30, cfg.Limits.LoginPerMinute)
	assert.Equal(t, 1200, cfg.Limits.ViewPerMinute)
}

func TestLoad_FromEnvironment(t *testing.T) {
	t.Setenv("PORT", "9090")
	t.Setenv("BACKEND_HOST", "https://bank.internal")
	t.Setenv("LOGIN_RATE_LIMIT", "5")
	t.Setenv("VIEW_RATE_LIMIT", "not-a-number")

	cfg, err := Load()
	require.NoError(t, err)

	assert.Equal(t, "9090", cfg.Server.Port)
	assert.Equal(t, "https://bank.internal", cfg.Backend.Host)
	assert.Equal(t, 5, cfg.Limits.LoginPerMinute)
	assert.Equal(t, 1200, cfg.Limits.ViewPerMinute) // falls back to the default
}
