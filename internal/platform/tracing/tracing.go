// Copyright (c) 2026 Toolshelf. All rights reserved.
// Author: tai.buivan.jp@gmail.com

// Package tracing installs the process-wide OpenTelemetry tracer provider.
//
// # Architecture
//
// Services obtain their tracers from the global provider (or an injected
// one in tests). With the "none" exporter nothing is installed and every
// span stays a no-op; "stdout" writes finished spans as JSON and "otlp"
// ships them over gRPC to the collector named by OTEL_EXPORTER_OTLP_ENDPOINT.
package tracing

import (
	stdctx "context"
	"errors"
	"fmt"
	"io"
	"os"

	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/exporters/otlp/otlptrace/otlptracegrpc"
	"go.opentelemetry.io/otel/exporters/stdout/stdouttrace"
	"go.opentelemetry.io/otel/sdk/resource"
	sdktrace "go.opentelemetry.io/otel/sdk/trace"
	semconv "go.opentelemetry.io/otel/semconv/v1.26.0"
)

// Exporters accepted by TRACING_EXPORTER.
const (
	ExporterNone   = "none"
	ExporterStdout = "stdout"
	ExporterOTLP   = "otlp"
)

// Options configures [Setup].
type Options struct {
	ServiceName string
	Environment string
	Exporter    string

	// SampleRatio is the share of root spans kept, between 0 and 1.
	SampleRatio float64

	// Writer receives stdout exporter output. Defaults to os.Stdout.
	Writer io.Writer
}

// Shutdown flushes pending spans and releases the exporter.
type Shutdown func(stdctx.Context) error

// ErrUnknownExporter is returned for an exporter name Setup does not know.
var ErrUnknownExporter = errors.New("tracing: unknown exporter")

/*
Setup builds the tracer provider described by options and installs it globally.

Parameters:
  - context: context.Context (bounds exporter connection setup)
  - options: Options

Returns:
  - Shutdown: Flushes and stops the provider; a no-op for ExporterNone
  - error: Unknown exporter or exporter construction failure
*/
func Setup(context stdctx.Context, options Options) (Shutdown, error) {
	if options.Exporter == "" || options.Exporter == ExporterNone {
		return func(stdctx.Context) error { return nil }, nil
	}

	exporter, err := newExporter(context, options)
	if err != nil {
		return nil, err
	}

	res, err := resource.New(context,
		resource.WithAttributes(
			semconv.ServiceName(options.ServiceName),
			attribute.String("deployment.environment", options.Environment),
		),
	)
	if err != nil {
		return nil, fmt.Errorf("tracing: failed to build resource: %w", err)
	}

	provider := sdktrace.NewTracerProvider(
		sdktrace.WithResource(res),
		sdktrace.WithSampler(sampler(options.SampleRatio)),
		sdktrace.WithBatcher(exporter),
	)

	otel.SetTracerProvider(provider)

	return provider.Shutdown, nil
}

// newExporter creates the span exporter named by options.Exporter.
func newExporter(context stdctx.Context, options Options) (sdktrace.SpanExporter, error) {
	switch options.Exporter {
	case ExporterStdout:
		writer := options.Writer
		if writer == nil {
			writer = os.Stdout
		}
		return stdouttrace.New(stdouttrace.WithWriter(writer))

	case ExporterOTLP:
		if os.Getenv("OTEL_EXPORTER_OTLP_ENDPOINT") == "" && os.Getenv("OTEL_EXPORTER_OTLP_TRACES_ENDPOINT") == "" {
			return nil, errors.New("tracing: OTEL_EXPORTER_OTLP_ENDPOINT or OTEL_EXPORTER_OTLP_TRACES_ENDPOINT must be set")
		}
		exporter, err := otlptracegrpc.New(context)
		if err != nil {
			return nil, fmt.Errorf("tracing: failed to create otlp exporter: %w", err)
		}
		return exporter, nil

	default:
		return nil, fmt.Errorf("%w: %q", ErrUnknownExporter, options.Exporter)
	}
}

// sampler keeps the parent decision and samples new roots at ratio.
func sampler(ratio float64) sdktrace.Sampler {
	switch {
	case ratio >= 1:
		return sdktrace.ParentBased(sdktrace.AlwaysSample())
	case ratio <= 0:
		return sdktrace.ParentBased(sdktrace.NeverSample())
	default:
		return sdktrace.ParentBased(sdktrace.TraceIDRatioBased(ratio))
	}
}
