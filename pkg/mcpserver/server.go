package mcpserver

import (
	"context"
	"fmt"
	"log"
	"net/http"
	"runtime/debug"
	"strings"
	"sync/atomic"
	"time"

	"github.com/modelcontextprotocol/go-sdk/mcp"
	"go.opentelemetry.io/otel/trace"
	"go.opentelemetry.io/otel/trace/noop"

	"github.com/databoard/databoard/pkg/catalog"
	"github.com/databoard/databoard/pkg/defaults"
	"github.com/databoard/databoard/pkg/duration"
	"github.com/databoard/databoard/pkg/httpclient"
	"github.com/databoard/databoard/pkg/jsonutil"
	"github.com/databoard/databoard/pkg/telemetry"
	"github.com/databoard/databoard/pkg/worldbank"
)

// ---------------------------------------------------------------------------
// Configuration
// ---------------------------------------------------------------------------

// Config holds MCP server configuration.
type Config struct {
	// CatalogPath is the product/discount catalog JSON file.
	// Empty uses the embedded catalog.
	CatalogPath string

	// WorldBankURL overrides the upstream API root (tests point this at a
	// stub).
	WorldBankURL string

	// RequestTimeout bounds each upstream request.
	RequestTimeout time.Duration

	// OutboundRPS is the upstream requests-per-second budget.
	OutboundRPS int

	// Metrics receives tool-call observations. Nil disables metrics.
	Metrics *telemetry.Metrics

	// Tracer traces the query pipeline. Nil disables tracing.
	Tracer trace.Tracer
}

// ---------------------------------------------------------------------------
// Server
// ---------------------------------------------------------------------------

// Server wraps the MCP server with the catalog and open-data query tools.
type Server struct {
	mcp     *mcp.Server
	config  *Config
	wb      *worldbank.Client
	catalog *catalog.Loader
	metrics *telemetry.Metrics
	tracer  trace.Tracer
	ready   atomic.Bool // tracks whether startup validation passed
}

const serverInstructions = `Databoard serves tabular open data and a small product catalog.

Tools:
- query_open_data: fetch a World Bank indicator series for one country and
  render it as Markdown and HTML tables. Read-only, one upstream request per
  call, no caching.
- list_products / list_discounts: browse the local catalog. Zero network
  requests.

Resources expose the catalog and common indicator codes. Start with the
databoard://indicators resource if you need an indicator code.`

// New creates a new MCP server with all tools, resources, and prompts
// registered.
func New(cfg *Config) *Server {
	if cfg == nil {
		cfg = &Config{}
	}
	if cfg.RequestTimeout == 0 {
		cfg.RequestTimeout = duration.UpstreamRequest
	}
	if cfg.OutboundRPS == 0 {
		cfg.OutboundRPS = defaults.OutboundRPS
	}

	wbOpts := []worldbank.Option{
		worldbank.WithHTTPClient(httpclient.New(httpclient.Config{Timeout: cfg.RequestTimeout})),
		worldbank.WithRateLimit(cfg.OutboundRPS),
	}
	if cfg.WorldBankURL != "" {
		wbOpts = append(wbOpts, worldbank.WithBaseURL(cfg.WorldBankURL))
	}

	tracer := cfg.Tracer
	if tracer == nil {
		tracer = noop.NewTracerProvider().Tracer(defaults.ToolName)
	}

	s := &Server{
		config:  cfg,
		wb:      worldbank.NewClient(wbOpts...),
		catalog: catalog.NewLoader(cfg.CatalogPath),
		metrics: cfg.Metrics,
		tracer:  tracer,
	}

	s.mcp = mcp.NewServer(
		&mcp.Implementation{
			Name:    defaults.ToolName,
			Title:   defaults.ToolNameDisplay,
			Version: defaults.Version,
		},
		&mcp.ServerOptions{
			Instructions: serverInstructions,
		},
	)

	s.registerTools()
	s.registerResources()
	s.registerPrompts()

	return s
}

// MCPServer returns the underlying MCP server for direct access (e.g., testing).
func (s *Server) MCPServer() *mcp.Server { return s.mcp }

// MarkReady signals that startup validation (catalog loading, etc.) passed.
// Until MarkReady is called, the /health endpoint returns 503 Service Unavailable.
func (s *Server) MarkReady() { s.ready.Store(true) }

// IsReady returns true if the server has completed startup validation.
func (s *Server) IsReady() bool { return s.ready.Load() }

// RunStdio runs the MCP server over stdio transport.
// This is the primary mode for IDE integrations (VS Code, Claude Desktop, Cursor).
func (s *Server) RunStdio(ctx context.Context) error {
	return s.mcp.Run(ctx, &mcp.StdioTransport{})
}

// HTTPHandler returns an http.Handler for the streamable HTTP transport
// with CORS support and a /health endpoint.
//
// The handler mounts:
//   - /health   → readiness/liveness probe (GET only)
//   - /metrics  → Prometheus metrics (only when metrics are enabled)
//   - /mcp      → streamable HTTP transport
//   - /         → streamable HTTP transport (default mount)
func (s *Server) HTTPHandler() http.Handler {
	streamable := mcp.NewStreamableHTTPHandler(
		func(_ *http.Request) *mcp.Server { return s.mcp },
		&mcp.StreamableHTTPOptions{Stateless: false},
	)

	mux := http.NewServeMux()
	mux.HandleFunc("/health", s.handleHealth)
	if s.metrics != nil {
		mux.Handle("/metrics", s.metrics.Handler())
	}
	mux.Handle("/mcp", streamable)
	mux.Handle("/", streamable)

	return corsMiddleware(recoveryMiddleware(securityHeaders(mux)))
}

// handleHealth serves a readiness/liveness probe.
// Returns 200 when the server is ready (catalog validated), 503 Service
// Unavailable before MarkReady() is called.
func (s *Server) handleHealth(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodGet && r.Method != http.MethodHead {
		w.Header().Set("Allow", "GET, HEAD")
		http.Error(w, "Method Not Allowed", http.StatusMethodNotAllowed)
		return
	}
	w.Header().Set("Content-Type", defaults.ContentTypeJSON)
	if !s.IsReady() {
		w.WriteHeader(http.StatusServiceUnavailable)
		_, _ = w.Write([]byte(`{"status":"starting","service":"databoard"}`))
		return
	}
	w.WriteHeader(http.StatusOK)
	_, _ = w.Write([]byte(`{"status":"ok","service":"databoard"}`))
}

// corsMiddleware wraps an http.Handler with permissive CORS headers required
// by browser-based MCP clients and cross-origin integrations.
func corsMiddleware(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		origin := r.Header.Get("Origin")

		// Always set Vary: Origin so caches don't serve a CORS-enabled
		// response to a non-browser client or vice versa.
		w.Header().Add("Vary", "Origin")

		if origin == "" {
			// No Origin header = non-browser client; skip CORS headers entirely.
			next.ServeHTTP(w, r)
			return
		}

		w.Header().Set("Access-Control-Allow-Origin", origin)
		w.Header().Set("Access-Control-Allow-Methods", "GET, POST, DELETE, OPTIONS")
		w.Header().Set("Access-Control-Allow-Headers",
			strings.Join([]string{
				"Content-Type",
				"Authorization",
				"Mcp-Session-Id",
				"MCP-Protocol-Version",
				"Last-Event-ID",
				"Accept",
			}, ", "))
		w.Header().Set("Access-Control-Expose-Headers", "Mcp-Session-Id, MCP-Protocol-Version")
		w.Header().Set("Access-Control-Allow-Credentials", "true")
		w.Header().Set("Access-Control-Max-Age", "86400")

		if r.Method == http.MethodOptions {
			w.WriteHeader(http.StatusNoContent)
			return
		}

		next.ServeHTTP(w, r)
	})
}

// recoveryMiddleware catches panics in HTTP handlers and returns a 500 error
// instead of killing the connection.
func recoveryMiddleware(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		defer func() {
			if err := recover(); err != nil {
				log.Printf("panic in HTTP handler: %v\n%s", err, debug.Stack())

				// Best-effort error response: if headers were already
				// sent, WriteHeader is a no-op.
				w.Header().Set("Content-Type", defaults.ContentTypeJSON)
				w.WriteHeader(http.StatusInternalServerError)
				_, _ = w.Write([]byte(`{"error":"internal server error"}`))
			}
		}()
		next.ServeHTTP(w, r)
	})
}

// securityHeaders adds standard defense-in-depth headers against
// MIME-sniffing and clickjacking.
func securityHeaders(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("X-Content-Type-Options", "nosniff")
		w.Header().Set("X-Frame-Options", "DENY")
		next.ServeHTTP(w, r)
	})
}

// ---------------------------------------------------------------------------
// Helpers — result builders
// ---------------------------------------------------------------------------

// textResult creates a CallToolResult with a single text content block.
func textResult(text string) *mcp.CallToolResult {
	return &mcp.CallToolResult{
		Content: []mcp.Content{
			&mcp.TextContent{Text: text},
		},
	}
}

// errorResult creates an IsError CallToolResult so the LLM can see the error
// and self-correct rather than raising a protocol-level exception.
func errorResult(msg string) *mcp.CallToolResult {
	return &mcp.CallToolResult{
		Content: []mcp.Content{
			&mcp.TextContent{Text: msg},
		},
		IsError: true,
	}
}

// structuredResult creates a CallToolResult carrying both a human-readable
// text block and a structured payload for programmatic consumers.
func structuredResult(text string, payload any) *mcp.CallToolResult {
	res := textResult(text)
	res.StructuredContent = payload
	return res
}

// boolPtr returns a pointer to b. Used for optional bool fields in the SDK.
func boolPtr(b bool) *bool { return &b }

// parseArgs unmarshals the raw JSON arguments from a tool call into dst.
func parseArgs(req *mcp.CallToolRequest, dst any) error {
	if len(req.Params.Arguments) == 0 {
		return nil
	}
	if err := jsonutil.Unmarshal(req.Params.Arguments, dst); err != nil {
		return fmt.Errorf("parsing tool arguments: %w", err)
	}
	return nil
}
