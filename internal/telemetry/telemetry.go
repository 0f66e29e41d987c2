// Package telemetry exports key-press spans to an OTLP endpoint.
package telemetry

import (
	"context"

	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/exporters/otlp/otlptrace/otlptracehttp"
	"go.opentelemetry.io/otel/sdk/resource"
	sdktrace "go.opentelemetry.io/otel/sdk/trace"
	semconv "go.opentelemetry.io/otel/semconv/v1.4.0"
	oteltrace "go.opentelemetry.io/otel/trace"
)

// Recorder batches key-press spans to an OTLP/HTTP endpoint.
// A nil Recorder is valid and records nothing.
type Recorder struct {
	provider *sdktrace.TracerProvider
	tracer   oteltrace.Tracer
}

// New creates a Recorder for the given endpoint.
// Returns nil if endpoint is empty (disabled).
func New(ctx context.Context, endpoint, serviceName string) (*Recorder, error) {
	if endpoint == "" {
		return nil, nil // Disabled
	}

	exporter, err := otlptracehttp.New(ctx,
		otlptracehttp.WithEndpoint(endpoint),
		otlptracehttp.WithInsecure(), // For local dev; make configurable
	)
	if err != nil {
		return nil, err
	}

	res := resource.NewWithAttributes(
		semconv.SchemaURL,
		semconv.ServiceNameKey.String(serviceName),
	)

	provider := sdktrace.NewTracerProvider(
		sdktrace.WithBatcher(exporter),
		sdktrace.WithResource(res),
	)

	return &Recorder{
		provider: provider,
		tracer:   provider.Tracer("bcachefstui/ui"),
	}, nil
}

// RecordKey emits one span per dispatched key press. Recoverable counter
// errors are recorded on the span; they are not failures of the loop.
func (r *Recorder) RecordKey(key string, err error) {
	if r == nil {
		return
	}
	_, span := r.tracer.Start(context.Background(), "key.press",
		oteltrace.WithAttributes(attribute.String("key", key)))
	if err != nil {
		span.RecordError(err)
		span.SetAttributes(attribute.String("outcome", err.Error()))
	} else {
		span.SetAttributes(attribute.String("outcome", "ok"))
	}
	span.End()
}

// Shutdown flushes pending spans.
func (r *Recorder) Shutdown(ctx context.Context) error {
	if r == nil || r.provider == nil {
		return nil
	}
	return r.provider.Shutdown(ctx)
}
