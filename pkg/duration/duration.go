// Package duration provides canonical time constants for the entire codebase.
// This is the SINGLE SOURCE OF TRUTH for all time-based configuration.
//
// Usage:
//
//	ctx, cancel := context.WithTimeout(ctx, duration.UpstreamRequest)
//	ReadTimeout: duration.ServerRead,
//
// DO NOT use hardcoded time.Duration values like `15 * time.Second` anywhere.
// Instead, reference the appropriate constant from this package.
package duration

import "time"

// ============================================================================
// OUTBOUND HTTP TIMEOUTS
// ============================================================================

const (
	// UpstreamRequest bounds a single upstream API request (15s).
	UpstreamRequest = 15 * time.Second

	// DialTimeout bounds TCP connection establishment (10s).
	DialTimeout = 10 * time.Second

	// TLSHandshake bounds the TLS handshake (10s).
	TLSHandshake = 10 * time.Second

	// IdleConn is how long idle connections stay pooled (90s).
	IdleConn = 90 * time.Second
)

// ============================================================================
// SERVER TIMEOUTS
// ============================================================================

const (
	// ServerReadHeader protects against slowloris clients (10s).
	ServerReadHeader = 10 * time.Second

	// ServerRead bounds reading a full request (30s).
	ServerRead = 30 * time.Second

	// ServerIdle releases idle TCP connections quickly (30s).
	ServerIdle = 30 * time.Second

	// ServerShutdown is the graceful shutdown drain window (15s).
	ServerShutdown = 15 * time.Second
)

// ============================================================================
// TELEMETRY TIMEOUTS
// ============================================================================

const (
	// TelemetryConnect bounds OTLP exporter connection establishment (10s).
	TelemetryConnect = 10 * time.Second

	// TelemetryShutdown bounds trace provider flush on shutdown (5s).
	TelemetryShutdown = 5 * time.Second
)
