package config

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadDefaults(t *testing.T) {
	cfg, err := Load()
	require.NoError(t, err)

	assert.Equal(t, "http://localhost:8080", cfg.API.BaseURL)
	assert.Equal(t, 10*time.Second, cfg.API.Timeout)
	assert.Equal(t, 15*time.Second, cfg.Sync.RefreshTimeout)
	assert.Equal(t, "credentials", cfg.State.Bucket)
	assert.NotEmpty(t, cfg.State.Path)
	assert.Equal(t, "warn", cfg.Logger.Level)
	assert.Equal(t, "console", cfg.Logger.Encoding)
}

func TestLoadOverrides(t *testing.T) {
	t.Setenv("TASKDECK_API_URL", "https://todo.example.com")
	t.Setenv("TASKDECK_API_TIMEOUT", "3s")
	t.Setenv("TASKDECK_STATE_PATH", "/tmp/deck/state.db")
	t.Setenv("TASKDECK_LOG_LEVEL", "debug")

	cfg, err := Load()
	require.NoError(t, err)

	assert.Equal(t, "https://todo.example.com", cfg.API.BaseURL)
	assert.Equal(t, 3*time.Second, cfg.API.Timeout)
	assert.Equal(t, "/tmp/deck/state.db", cfg.State.Path)
	assert.Equal(t, "debug", cfg.Logger.Level)
}

func TestInvalidDurationFallsBack(t *testing.T) {
	t.Setenv("TASKDECK_API_TIMEOUT", "not-a-duration")

	cfg, err := Load()
	require.NoError(t, err)
	assert.Equal(t, 10*time.Second, cfg.API.Timeout)
}
