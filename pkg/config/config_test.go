package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDefault(t *testing.T) {
	cfg := Default()
	assert.Equal(t, "https://api.worldbank.org/v2", cfg.WorldBankURL)
	assert.Equal(t, 15*time.Second, cfg.RequestTimeout)
	assert.Equal(t, 10, cfg.OutboundRPS)
	assert.Empty(t, cfg.Listen)
}

func TestLoadYAML(t *testing.T) {
	path := filepath.Join(t.TempDir(), "databoard.yaml")
	require.NoError(t, os.WriteFile(path, []byte(`
listen: ":8080"
catalog: /data/catalog.json
request_timeout: 5s
metrics: true
`), 0o644))

	cfg, err := Load(path)
	require.NoError(t, err)
	assert.Equal(t, ":8080", cfg.Listen)
	assert.Equal(t, "/data/catalog.json", cfg.CatalogPath)
	assert.Equal(t, 5*time.Second, cfg.RequestTimeout)
	assert.True(t, cfg.MetricsEnabled)
	// Unset keys keep their defaults.
	assert.Equal(t, "https://api.worldbank.org/v2", cfg.WorldBankURL)
}

func TestLoadMissingFile(t *testing.T) {
	_, err := Load(filepath.Join(t.TempDir(), "absent.yaml"))
	require.Error(t, err)
}

func TestEnvOverrides(t *testing.T) {
	t.Setenv("DATABOARD_HTTP_ADDR", ":9999")
	t.Setenv("DATABOARD_WORLDBANK_URL", "http://stub.test")
	t.Setenv("DATABOARD_METRICS", "true")
	t.Setenv("DATABOARD_OUTBOUND_RPS", "3")

	cfg, err := Load("")
	require.NoError(t, err)
	assert.Equal(t, ":9999", cfg.Listen)
	assert.Equal(t, "http://stub.test", cfg.WorldBankURL)
	assert.True(t, cfg.MetricsEnabled)
	assert.Equal(t, 3, cfg.OutboundRPS)
}
