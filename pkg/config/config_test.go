package config

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func clearEnv(t *testing.T) {
	t.Helper()
	for _, env := range envBindings {
		t.Setenv(env, "")
	}
}

func TestLoadDefaults(t *testing.T) {
	clearEnv(t)

	cfg, err := Load()
	require.NoError(t, err)

	assert.Equal(t, DefaultPort, cfg.Server.Port)
	assert.Equal(t, ":8080", cfg.Server.Address())
	assert.Equal(t, DefaultBaseURL, cfg.YouTube.BaseURL)
	assert.Equal(t, DefaultMaxResults, cfg.YouTube.MaxResults)
	assert.Empty(t, cfg.YouTube.APIKey)
}

func TestLoadFromEnv(t *testing.T) {
	clearEnv(t)
	t.Setenv("PORT", "3000")
	t.Setenv("YOUTUBE_API_KEY", "secret")
	t.Setenv("YOUTUBE_API_BASE_URL", "http://localhost:9999")
	t.Setenv("YOUTUBE_MAX_RESULTS", "3")
	t.Setenv("GIN_MODE", "release")

	cfg, err := Load()
	require.NoError(t, err)

	assert.Equal(t, ":3000", cfg.Server.Address())
	assert.Equal(t, "secret", cfg.YouTube.APIKey)
	assert.Equal(t, "http://localhost:9999", cfg.YouTube.BaseURL)
	assert.Equal(t, 3, cfg.YouTube.MaxResults)
	assert.Equal(t, "release", cfg.Server.Mode)
}

func TestLoadRejectsMaxResultsOutOfRange(t *testing.T) {
	clearEnv(t)
	t.Setenv("YOUTUBE_MAX_RESULTS", "6")

	_, err := Load()
	assert.Error(t, err)
}

func TestLoadRejectsUnknownMode(t *testing.T) {
	clearEnv(t)
	t.Setenv("GIN_MODE", "production")

	_, err := Load()
	assert.ErrorContains(t, err, "unknown server mode")
}
