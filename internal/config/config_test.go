package config

import (
	"testing"

	"github.com/Slade66/reactive-sheet/internal/observer"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func clearEnv(t *testing.T) {
	t.Helper()
	for _, key := range []string{
		"REDIS_ADDR", "REDIS_PASSWORD", "HTTP_ADDR", "LOG_LEVEL", "NOTIFY_POLICY",
		"OBS_ENDPOINT", "OBS_AK", "OBS_SK", "OBS_BUCKET", "OBS_PREFIX",
	} {
		t.Setenv(key, "")
	}
}

func TestLoad_Defaults(t *testing.T) {
	clearEnv(t)

	cfg := Load()

	assert.Equal(t, "localhost:6379", cfg.RedisAddr)
	assert.Equal(t, ":8080", cfg.HTTPAddr)
	assert.Equal(t, "info", cfg.LogLevel)
	assert.Equal(t, "fail-fast", cfg.NotifyPolicy)
	assert.Equal(t, "sheets", cfg.OBS.Prefix)
	assert.False(t, cfg.OBS.Enabled())
}

func TestLoad_FromEnv(t *testing.T) {
	clearEnv(t)
	t.Setenv("REDIS_ADDR", "redis:6380")
	t.Setenv("NOTIFY_POLICY", "collect")
	t.Setenv("OBS_ENDPOINT", "https://obs.example.com")
	t.Setenv("OBS_AK", "ak")
	t.Setenv("OBS_SK", "sk")
	t.Setenv("OBS_BUCKET", "bucket")

	cfg := Load()

	assert.Equal(t, "redis:6380", cfg.RedisAddr)
	assert.True(t, cfg.OBS.Enabled())

	policy, err := cfg.Policy()
	require.NoError(t, err)
	assert.Equal(t, observer.CollectErrors, policy)
}

func TestPolicy_Unknown(t *testing.T) {
	_, err := Config{NotifyPolicy: "eventually"}.Policy()
	assert.Error(t, err)

	policy, err := Config{}.Policy()
	require.NoError(t, err)
	assert.Equal(t, observer.FailFast, policy)
}
