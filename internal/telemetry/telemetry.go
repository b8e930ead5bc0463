// Package telemetry configures the OpenTelemetry trace provider.
package telemetry

import (
	"context"
	"io"
	"strings"

	"github.com/rs/zerolog"
	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/exporters/otlp/otlptrace/otlptracehttp"
	"go.opentelemetry.io/otel/exporters/stdout/stdouttrace"
	"go.opentelemetry.io/otel/propagation"
	"go.opentelemetry.io/otel/sdk/resource"
	sdktrace "go.opentelemetry.io/otel/sdk/trace"
	semconv "go.opentelemetry.io/otel/semconv/v1.17.0"
)

type Options struct {
	// Endpoint is an OTLP/HTTP collector, e.g. "localhost:4318" or "https://otel.example.org".
	Endpoint    string
	ServiceName string
	Version     string
	// Stdout writes spans to StdoutWriter when no Endpoint is set.
	Stdout       bool
	StdoutWriter io.Writer
}

// NewProvider installs a global tracer provider and W3C trace-context
// propagation. With neither an endpoint nor stdout selected tracing stays
// disabled. The returned func flushes and shuts the provider down.
func NewProvider(ctx context.Context, opts Options, log zerolog.Logger) (func(context.Context) error, error) {
	otel.SetTextMapPropagator(propagation.TraceContext{})

	var (
		exp sdktrace.SpanExporter
		err error
	)
	switch {
	case opts.Endpoint != "":
		exp, err = newCollectorExporter(ctx, opts.Endpoint)
	case opts.Stdout:
		exp, err = stdouttrace.New(
			stdouttrace.WithWriter(opts.StdoutWriter),
			stdouttrace.WithPrettyPrint(),
		)
	default:
		log.Info().Msg("tracing disabled")
		return func(context.Context) error { return nil }, nil
	}
	if err != nil {
		return nil, err
	}

	tp := sdktrace.NewTracerProvider(
		sdktrace.WithBatcher(exp),
		sdktrace.WithResource(newResource(opts)),
	)
	otel.SetTracerProvider(tp)

	log.Info().Str("endpoint", opts.Endpoint).Bool("stdout", opts.Endpoint == "").Msg("tracing enabled")
	return tp.Shutdown, nil
}

func newCollectorExporter(ctx context.Context, endpoint string) (sdktrace.SpanExporter, error) {
	options := []otlptracehttp.Option{}
	switch {
	case strings.HasPrefix(endpoint, "https://"):
		endpoint = strings.TrimPrefix(endpoint, "https://")
	default:
		endpoint = strings.TrimPrefix(endpoint, "http://")
		options = append(options, otlptracehttp.WithInsecure())
	}
	options = append(options, otlptracehttp.WithEndpoint(endpoint))
	return otlptracehttp.New(ctx, options...)
}

func newResource(opts Options) *resource.Resource {
	name := opts.ServiceName
	if name == "" {
		name = "portal-api"
	}
	attrs := []attribute.KeyValue{semconv.ServiceName(name)}
	if opts.Version != "" {
		attrs = append(attrs, semconv.ServiceVersion(opts.Version))
	}
	return resource.NewWithAttributes(semconv.SchemaURL, attrs...)
}
