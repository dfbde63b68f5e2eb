package config

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseEnv_PopulatesNestedFields(t *testing.T) {
	t.Setenv("STORAGE_DB_DSN", "/var/lib/offsync/replica.db")
	t.Setenv("REMOTE_BASE_URL", "https://api.example.com")
	t.Setenv("REMOTE_REQUEST_TIMEOUT", "20s")
	t.Setenv("ENGINE_BATCH_SIZE", "7")
	t.Setenv("MONITOR_PROBE_INTERVAL", "45s")
	t.Setenv("LOCK_TTL", "24h")
	t.Setenv("IDENTITY_TENANT_ID", "tenant-1")
	t.Setenv("IDENTITY_USER_ID", "user-1")

	cfg := &Config{}
	require.NoError(t, parseEnv(cfg))

	assert.Equal(t, "/var/lib/offsync/replica.db", cfg.Storage.DB.DSN)
	assert.Equal(t, "https://api.example.com", cfg.Remote.BaseURL)
	assert.Equal(t, 20*time.Second, cfg.Remote.RequestTimeout)
	assert.Equal(t, 7, cfg.Engine.BatchSize)
	assert.Equal(t, 45*time.Second, cfg.Monitor.ProbeInterval)
	assert.Equal(t, 24*time.Hour, cfg.Lock.TTL)
	assert.Equal(t, "tenant-1", cfg.Identity.TenantID)
	assert.Equal(t, "user-1", cfg.Identity.UserID)
}

func TestParseEnv_EmptyEnvironmentLeavesZeroValues(t *testing.T) {
	cfg := &Config{}
	require.NoError(t, parseEnv(cfg))

	assert.Empty(t, cfg.Storage.DB.DSN)
	assert.Zero(t, cfg.Engine.BatchSize)
	assert.Empty(t, cfg.JSONFilePath)
}

func TestParseEnv_InvalidDuration(t *testing.T) {
	t.Setenv("REMOTE_REQUEST_TIMEOUT", "not-a-duration")

	cfg := &Config{}
	err := parseEnv(cfg)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "env configs")
}
