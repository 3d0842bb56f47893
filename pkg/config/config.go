// Package config loads server configuration from an optional YAML file with
// DATABOARD_* environment overrides. Flags win over both; that wiring lives
// in the CLI.
package config

import (
	"fmt"
	"os"
	"strconv"
	"time"

	"gopkg.in/yaml.v3"

	"github.com/databoard/databoard/pkg/defaults"
	"github.com/databoard/databoard/pkg/duration"
)

// Config holds server settings.
type Config struct {
	// Listen is the HTTP listen address. Empty selects stdio transport.
	Listen string `yaml:"listen"`

	// CatalogPath points at the catalog JSON file. Empty uses the
	// embedded catalog.
	CatalogPath string `yaml:"catalog"`

	// WorldBankURL overrides the upstream API root.
	WorldBankURL string `yaml:"worldbank_url"`

	// RequestTimeout bounds each upstream request.
	RequestTimeout time.Duration `yaml:"request_timeout"`

	// OutboundRPS is the upstream requests-per-second budget.
	OutboundRPS int `yaml:"outbound_rps"`

	// MetricsEnabled serves Prometheus metrics at /metrics (HTTP mode only).
	MetricsEnabled bool `yaml:"metrics"`

	// OTLPEndpoint enables trace export when set (e.g. "localhost:4317").
	OTLPEndpoint string `yaml:"otlp_endpoint"`

	// OTLPInsecure uses a plaintext OTLP connection.
	OTLPInsecure bool `yaml:"otlp_insecure"`
}

// Default returns the baseline configuration.
func Default() Config {
	return Config{
		WorldBankURL:   defaults.WorldBankBaseURL,
		RequestTimeout: duration.UpstreamRequest,
		OutboundRPS:    defaults.OutboundRPS,
	}
}

// Load reads path (when non-empty) over the defaults, then applies
// environment overrides.
func Load(path string) (Config, error) {
	cfg := Default()

	if path != "" {
		data, err := os.ReadFile(path)
		if err != nil {
			return cfg, fmt.Errorf("reading config %s: %w", path, err)
		}
		if err := yaml.Unmarshal(data, &cfg); err != nil {
			return cfg, fmt.Errorf("parsing config %s: %w", path, err)
		}
	}

	cfg.applyEnv()
	return cfg, nil
}

func (c *Config) applyEnv() {
	if v := os.Getenv("DATABOARD_HTTP_ADDR"); v != "" {
		c.Listen = v
	}
	if v := os.Getenv("DATABOARD_CATALOG"); v != "" {
		c.CatalogPath = v
	}
	if v := os.Getenv("DATABOARD_WORLDBANK_URL"); v != "" {
		c.WorldBankURL = v
	}
	if v := os.Getenv("DATABOARD_OTLP_ENDPOINT"); v != "" {
		c.OTLPEndpoint = v
	}
	if v := os.Getenv("DATABOARD_METRICS"); v != "" {
		if b, err := strconv.ParseBool(v); err == nil {
			c.MetricsEnabled = b
		}
	}
	if v := os.Getenv("DATABOARD_OUTBOUND_RPS"); v != "" {
		if n, err := strconv.Atoi(v); err == nil && n > 0 {
			c.OutboundRPS = n
		}
	}
}
