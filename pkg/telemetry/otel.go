package telemetry

import (
	"context"
	"fmt"
	"time"

	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/exporters/otlp/otlptrace/otlptracegrpc"
	"go.opentelemetry.io/otel/sdk/resource"
	sdktrace "go.opentelemetry.io/otel/sdk/trace"
	semconv "go.opentelemetry.io/otel/semconv/v1.26.0"
	"go.opentelemetry.io/otel/trace"
	"go.opentelemetry.io/otel/trace/noop"
	"google.golang.org/grpc"
	"google.golang.org/grpc/credentials/insecure"

	"github.com/databoard/databoard/pkg/defaults"
	"github.com/databoard/databoard/pkg/duration"
)

// TraceOptions configures the OTLP trace exporter.
type TraceOptions struct {
	// Endpoint is the OTLP gRPC endpoint (e.g. "localhost:4317").
	// Empty disables tracing entirely.
	Endpoint string

	// ServiceName overrides the reported service name (default: databoard).
	ServiceName string

	// Insecure uses a plaintext connection (no TLS).
	Insecure bool

	// ConnectTimeout bounds exporter connection establishment.
	ConnectTimeout time.Duration

	// ShutdownTimeout bounds the flush on Shutdown.
	ShutdownTimeout time.Duration
}

// TraceProvider owns the tracer lifecycle. The zero value (and nil) is a
// no-op provider.
type TraceProvider struct {
	tp              *sdktrace.TracerProvider
	shutdownTimeout time.Duration
}

// NewTraceProvider connects an OTLP exporter and installs it as the global
// trace provider. With an empty endpoint it returns a no-op provider.
func NewTraceProvider(ctx context.Context, opts TraceOptions) (*TraceProvider, error) {
	if opts.Endpoint == "" {
		return &TraceProvider{}, nil
	}
	if opts.ServiceName == "" {
		opts.ServiceName = defaults.ToolName
	}
	if opts.ConnectTimeout == 0 {
		opts.ConnectTimeout = duration.TelemetryConnect
	}
	if opts.ShutdownTimeout == 0 {
		opts.ShutdownTimeout = duration.TelemetryShutdown
	}

	exporterOpts := []otlptracegrpc.Option{
		otlptracegrpc.WithEndpoint(opts.Endpoint),
	}
	if opts.Insecure {
		exporterOpts = append(exporterOpts,
			otlptracegrpc.WithInsecure(),
			otlptracegrpc.WithDialOption(grpc.WithTransportCredentials(insecure.NewCredentials())),
		)
	}

	connectCtx, cancel := context.WithTimeout(ctx, opts.ConnectTimeout)
	defer cancel()

	exporter, err := otlptracegrpc.New(connectCtx, exporterOpts...)
	if err != nil {
		return nil, fmt.Errorf("creating OTLP exporter: %w", err)
	}

	res := resource.NewWithAttributes(
		semconv.SchemaURL,
		semconv.ServiceName(opts.ServiceName),
		semconv.ServiceVersion(defaults.Version),
	)

	tp := sdktrace.NewTracerProvider(
		sdktrace.WithBatcher(exporter),
		sdktrace.WithResource(res),
		sdktrace.WithSampler(sdktrace.AlwaysSample()),
	)
	otel.SetTracerProvider(tp)

	return &TraceProvider{tp: tp, shutdownTimeout: opts.ShutdownTimeout}, nil
}

// Tracer returns a tracer for the query pipeline. No-op when tracing is
// disabled.
func (t *TraceProvider) Tracer() trace.Tracer {
	if t == nil || t.tp == nil {
		return noop.NewTracerProvider().Tracer(defaults.ToolName)
	}
	return t.tp.Tracer(defaults.ToolName)
}

// Shutdown flushes pending spans. Safe on a no-op provider.
func (t *TraceProvider) Shutdown(ctx context.Context) error {
	if t == nil || t.tp == nil {
		return nil
	}
	shutdownCtx, cancel := context.WithTimeout(ctx, t.shutdownTimeout)
	defer cancel()
	return t.tp.Shutdown(shutdownCtx)
}
