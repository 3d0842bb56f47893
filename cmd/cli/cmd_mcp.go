package main

import (
	"context"
	"flag"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"

	"github.com/databoard/databoard/pkg/catalog"
	"github.com/databoard/databoard/pkg/config"
	"github.com/databoard/databoard/pkg/defaults"
	"github.com/databoard/databoard/pkg/duration"
	"github.com/databoard/databoard/pkg/mcpserver"
	"github.com/databoard/databoard/pkg/telemetry"
	"github.com/databoard/databoard/pkg/ui"
)

// runMCP starts the MCP (Model Context Protocol) server.
// Supports two transport modes:
//   - --stdio (default): For IDE integrations (VS Code, Claude Desktop, Cursor)
//   - --http <addr>:     For remote/Docker deployments with session management
func runMCP() {
	fs := flag.NewFlagSet("mcp", flag.ExitOnError)

	stdio := fs.Bool("stdio", true, "Use stdio transport (default, for IDE integration)")
	httpAddr := fs.String("http", "", "HTTP address to listen on (e.g. :8080). Disables stdio.")
	configPath := fs.String("config", envOrDefault("DATABOARD_CONFIG", ""), "YAML config file")
	catalogPath := fs.String("catalog", "", "Catalog JSON file (default: embedded catalog)")
	metricsFlag := fs.Bool("metrics", false, "Serve Prometheus metrics at /metrics (HTTP mode only)")
	otlpEndpoint := fs.String("otlp", "", "OTLP gRPC endpoint for trace export (e.g. localhost:4317)")
	otlpInsecure := fs.Bool("otlp-insecure", false, "Use a plaintext OTLP connection")

	fs.Usage = func() {
		fmt.Fprintf(os.Stderr, "Usage: %s mcp [flags]\n\n", defaults.ToolName)
		fmt.Fprintf(os.Stderr, "Start an MCP server exposing open-data and catalog tools.\n\n")
		fmt.Fprintf(os.Stderr, "Transports:\n")
		fmt.Fprintf(os.Stderr, "  --stdio          Stdio transport for IDE integration (default)\n")
		fmt.Fprintf(os.Stderr, "  --http <addr>    Streamable HTTP transport for remote/Docker\n\n")
		fmt.Fprintf(os.Stderr, "Environment variables:\n")
		fmt.Fprintf(os.Stderr, "  DATABOARD_CONFIG         YAML config file (same as --config)\n")
		fmt.Fprintf(os.Stderr, "  DATABOARD_HTTP_ADDR      HTTP listen address (same as --http)\n")
		fmt.Fprintf(os.Stderr, "  DATABOARD_CATALOG        Catalog JSON file (same as --catalog)\n")
		fmt.Fprintf(os.Stderr, "  DATABOARD_WORLDBANK_URL  Upstream API root override\n")
		fmt.Fprintf(os.Stderr, "  DATABOARD_OTLP_ENDPOINT  OTLP endpoint (same as --otlp)\n\n")
		fmt.Fprintf(os.Stderr, "Examples:\n")
		fmt.Fprintf(os.Stderr, "  %s mcp --stdio\n", defaults.ToolName)
		fmt.Fprintf(os.Stderr, "  %s mcp --http :8080 --metrics\n", defaults.ToolName)
		fmt.Fprintf(os.Stderr, "  DATABOARD_CATALOG=/data/catalog.json %s mcp --http :8080\n\n", defaults.ToolName)
		fmt.Fprintf(os.Stderr, "Flags:\n")
		fs.PrintDefaults()
	}

	if err := fs.Parse(os.Args[2:]); err != nil {
		ui.Errorf("error: %v", err)
		os.Exit(defaults.ExitError)
	}

	cfg, err := config.Load(*configPath)
	if err != nil {
		ui.Errorf("error: %v", err)
		os.Exit(defaults.ExitError)
	}

	// Flags win over the config file and environment.
	if *httpAddr != "" {
		cfg.Listen = *httpAddr
	}
	if *catalogPath != "" {
		cfg.CatalogPath = *catalogPath
	}
	if *metricsFlag {
		cfg.MetricsEnabled = true
	}
	if *otlpEndpoint != "" {
		cfg.OTLPEndpoint = *otlpEndpoint
	}
	if *otlpInsecure {
		cfg.OTLPInsecure = true
	}

	// --- Startup validation: catalog must parse before serving tools ---
	cat, err := catalog.NewLoader(cfg.CatalogPath).Load()
	if err != nil {
		ui.Errorf("error: catalog: %v", err)
		ui.Mutedf("hint: set --catalog or DATABOARD_CATALOG to a valid catalog JSON file")
		os.Exit(defaults.ExitError)
	}
	fmt.Fprintln(os.Stderr, ui.Banner())
	ui.Mutedf("catalog loaded: %d products, %d discounts", len(cat.Products), len(cat.Discounts))

	ctx, cancel := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer cancel()

	var metrics *telemetry.Metrics
	if cfg.MetricsEnabled {
		metrics = telemetry.NewMetrics()
	}

	traces, err := telemetry.NewTraceProvider(ctx, telemetry.TraceOptions{
		Endpoint: cfg.OTLPEndpoint,
		Insecure: cfg.OTLPInsecure,
	})
	if err != nil {
		ui.Errorf("error: tracing: %v", err)
		os.Exit(defaults.ExitError)
	}
	defer func() {
		if err := traces.Shutdown(context.Background()); err != nil {
			ui.Errorf("error flushing traces: %v", err)
		}
	}()

	srv := mcpserver.New(&mcpserver.Config{
		CatalogPath:    cfg.CatalogPath,
		WorldBankURL:   cfg.WorldBankURL,
		RequestTimeout: cfg.RequestTimeout,
		OutboundRPS:    cfg.OutboundRPS,
		Metrics:        metrics,
		Tracer:         traces.Tracer(),
	})
	srv.MarkReady() // Signal that startup validation passed

	if cfg.Listen != "" {
		// HTTP transport mode
		*stdio = false

		httpSrv := &http.Server{
			Addr:              cfg.Listen,
			Handler:           srv.HTTPHandler(),
			ReadHeaderTimeout: duration.ServerReadHeader,
			ReadTimeout:       duration.ServerRead,
			// WriteTimeout intentionally 0: streamable HTTP responses are
			// long-lived and an absolute deadline would kill open streams.
			// ReadHeaderTimeout + ReadTimeout protect against slowloris.
			IdleTimeout:    duration.ServerIdle,
			MaxHeaderBytes: 1 << 20, // 1 MB
		}

		go func() {
			<-ctx.Done()
			// Graceful shutdown: drain in-flight requests.
			shutdownCtx, shutdownCancel := context.WithTimeout(context.Background(), duration.ServerShutdown)
			defer shutdownCancel()
			ui.Mutedf("shutting down gracefully...")
			if err := httpSrv.Shutdown(shutdownCtx); err != nil {
				ui.Errorf("error during shutdown: %v", err)
			}
		}()

		ui.Mutedf("MCP server listening on %s (HTTP transport)", cfg.Listen)

		if err := httpSrv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			ui.Errorf("error: %v", err)
			os.Exit(defaults.ExitError)
		}
		return
	}

	// Stdio transport mode (default)
	if *stdio {
		if err := srv.RunStdio(ctx); err != nil {
			ui.Errorf("error: %v", err)
			os.Exit(defaults.ExitError)
		}
		return
	}

	ui.Errorf("error: no transport selected, use --stdio or --http <addr>")
	os.Exit(defaults.ExitError)
}
