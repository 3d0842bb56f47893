// Package httpclient provides a shared, pre-configured HTTP client factory.
// It enables connection pooling and reuse across all packages that talk to
// upstream APIs.
package httpclient

import (
	"net"
	"net/http"
	"sync"
	"time"

	"github.com/databoard/databoard/pkg/duration"
)

// Config holds HTTP client configuration options.
type Config struct {
	// Timeout is the total request timeout (default: duration.UpstreamRequest)
	Timeout time.Duration

	// MaxIdleConns is the maximum number of idle connections across all hosts (default: 20)
	MaxIdleConns int

	// MaxConnsPerHost is the maximum connections per host (default: 10)
	MaxConnsPerHost int

	// IdleConnTimeout is how long idle connections stay in pool (default: duration.IdleConn)
	IdleConnTimeout time.Duration

	// DialTimeout is the timeout for establishing connections (default: duration.DialTimeout)
	DialTimeout time.Duration

	// TLSHandshakeTimeout is the timeout for TLS handshake (default: duration.TLSHandshake)
	TLSHandshakeTimeout time.Duration
}

// DefaultConfig returns defaults tuned for low-volume public API queries:
// one request per tool call, reused connections between calls.
func DefaultConfig() Config {
	return Config{
		Timeout:             duration.UpstreamRequest,
		MaxIdleConns:        20,
		MaxConnsPerHost:     10,
		IdleConnTimeout:     duration.IdleConn,
		DialTimeout:         duration.DialTimeout,
		TLSHandshakeTimeout: duration.TLSHandshake,
	}
}

var (
	defaultClient *http.Client
	defaultOnce   sync.Once
)

// Default returns a shared, pre-configured HTTP client.
// This client is safe for concurrent use and employs connection pooling.
// All packages should prefer Default() over creating their own clients.
func Default() *http.Client {
	defaultOnce.Do(func() {
		defaultClient = New(DefaultConfig())
	})
	return defaultClient
}

// New creates a new HTTP client with the given configuration.
// Use this when you need a client with non-default settings, e.g. a custom
// timeout for tests. For most cases, prefer Default() for connection reuse.
func New(cfg Config) *http.Client {
	if cfg.Timeout == 0 {
		cfg.Timeout = duration.UpstreamRequest
	}
	if cfg.MaxIdleConns == 0 {
		cfg.MaxIdleConns = 20
	}
	if cfg.MaxConnsPerHost == 0 {
		cfg.MaxConnsPerHost = 10
	}
	if cfg.IdleConnTimeout == 0 {
		cfg.IdleConnTimeout = duration.IdleConn
	}
	if cfg.DialTimeout == 0 {
		cfg.DialTimeout = duration.DialTimeout
	}
	if cfg.TLSHandshakeTimeout == 0 {
		cfg.TLSHandshakeTimeout = duration.TLSHandshake
	}

	transport := &http.Transport{
		Proxy: http.ProxyFromEnvironment,
		DialContext: (&net.Dialer{
			Timeout:   cfg.DialTimeout,
			KeepAlive: 30 * time.Second,
		}).DialContext,
		MaxIdleConns:        cfg.MaxIdleConns,
		MaxConnsPerHost:     cfg.MaxConnsPerHost,
		MaxIdleConnsPerHost: cfg.MaxConnsPerHost,
		IdleConnTimeout:     cfg.IdleConnTimeout,
		TLSHandshakeTimeout: cfg.TLSHandshakeTimeout,
		ForceAttemptHTTP2:   true,
	}

	return &http.Client{
		Timeout:   cfg.Timeout,
		Transport: transport,
	}
}
