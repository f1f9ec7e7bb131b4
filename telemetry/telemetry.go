// Package telemetry wires OpenTelemetry tracing for the calculator service.
package telemetry

import (
	"context"
	"fmt"
	"io"
	"os"

	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/exporters/otlp/otlptrace/otlptracegrpc"
	"go.opentelemetry.io/otel/exporters/stdout/stdouttrace"
	"go.opentelemetry.io/otel/propagation"
	"go.opentelemetry.io/otel/sdk/resource"
	sdktrace "go.opentelemetry.io/otel/sdk/trace"
	semconv "go.opentelemetry.io/otel/semconv/v1.26.0"
	"go.opentelemetry.io/otel/trace"
	"go.opentelemetry.io/otel/trace/noop"
)

// InstrumentationName identifies spans created by this service.
const InstrumentationName = "calculator-service"

const (
	ExporterStdout = "stdout"
	ExporterOTLP   = "otlp"
)

// Telemetry holds the tracer provider and the tracer handed to middleware.
type Telemetry struct {
	tp     *sdktrace.TracerProvider
	tracer trace.Tracer
}

// Config holds configuration for telemetry setup
type Config struct {
	Enabled        bool
	ServiceName    string
	ServiceVersion string
	Exporter       string
	OTLPEndpoint   string

	// TraceWriter receives spans from the stdout exporter; defaults to os.Stdout.
	TraceWriter io.Writer
}

// New creates a Telemetry instance. When cfg.Enabled is false the returned
// instance hands out a no-op tracer and Shutdown does nothing.
func New(ctx context.Context, cfg Config) (*Telemetry, error) {
	if !cfg.Enabled {
		return &Telemetry{tracer: noop.NewTracerProvider().Tracer(InstrumentationName)}, nil
	}

	res, err := resource.New(ctx,
		resource.WithAttributes(
			semconv.ServiceName(cfg.ServiceName),
			semconv.ServiceVersion(cfg.ServiceVersion),
		),
	)
	if err != nil {
		return nil, fmt.Errorf("failed to create resource: %w", err)
	}

	if cfg.TraceWriter == nil {
		cfg.TraceWriter = os.Stdout
	}

	var exporter sdktrace.SpanExporter
	switch cfg.Exporter {
	case ExporterOTLP:
		exporter, err = otlptracegrpc.New(ctx,
			otlptracegrpc.WithEndpoint(cfg.OTLPEndpoint),
			otlptracegrpc.WithInsecure(),
		)
	case ExporterStdout, "":
		exporter, err = stdouttrace.New(
			stdouttrace.WithWriter(cfg.TraceWriter),
			stdouttrace.WithPrettyPrint(),
		)
	default:
		return nil, fmt.Errorf("unknown trace exporter %q", cfg.Exporter)
	}
	if err != nil {
		return nil, fmt.Errorf("failed to create trace exporter: %w", err)
	}

	tp := sdktrace.NewTracerProvider(
		sdktrace.WithResource(res),
		sdktrace.WithBatcher(exporter),
		sdktrace.WithSampler(sdktrace.AlwaysSample()),
	)
	otel.SetTracerProvider(tp)
	otel.SetTextMapPropagator(propagation.NewCompositeTextMapPropagator(propagation.TraceContext{}, propagation.Baggage{}))

	return &Telemetry{
		tp:     tp,
		tracer: tp.Tracer(InstrumentationName),
	}, nil
}

// Tracer returns the tracer used for request spans.
func (t *Telemetry) Tracer() trace.Tracer {
	return t.tracer
}

// IsEnabled reports whether spans are exported.
func (t *Telemetry) IsEnabled() bool {
	return t.tp != nil
}

// Shutdown flushes pending spans and stops the tracer provider.
func (t *Telemetry) Shutdown(ctx context.Context) error {
	if t.tp == nil {
		return nil
	}
	if err := t.tp.Shutdown(ctx); err != nil {
		return fmt.Errorf("failed to shutdown trace provider: %w", err)
	}
	return nil
}
