package trace

import (
	"context"
	"os"

	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
	"go.opentelemetry.io/otel/exporters/otlp/otlptrace/otlptracehttp"
	"go.opentelemetry.io/otel/sdk/resource"
	sdktrace "go.opentelemetry.io/otel/sdk/trace"
	semconv "go.opentelemetry.io/otel/semconv/v1.4.0"
	oteltrace "go.opentelemetry.io/otel/trace"

	"welcometour/internal/tour"
)

const tracerName = "welcometour/tour"

// Exporter records tour actions as spans under one session span.
// A nil *Exporter is valid and records nothing.
type Exporter struct {
	provider *sdktrace.TracerProvider
	tracer   oteltrace.Tracer
	session  oteltrace.Span
	ctx      context.Context
}

// NewOTLPExporter creates an OTLP exporter if OTEL_EXPORTER_OTLP_ENDPOINT is set.
// Returns nil if endpoint not configured (disabled).
func NewOTLPExporter(ctx context.Context) (*Exporter, error) {
	endpoint := os.Getenv("OTEL_EXPORTER_OTLP_ENDPOINT")
	if endpoint == "" {
		return nil, nil // Disabled
	}

	exporter, err := otlptracehttp.New(ctx,
		otlptracehttp.WithEndpoint(endpoint),
		otlptracehttp.WithInsecure(),
	)
	if err != nil {
		return nil, err
	}
	return NewExporter(ctx, exporter, sdktrace.WithBatcher(exporter)), nil
}

// NewExporter wires a span exporter into a tracer provider. Extra provider
// options (e.g. a syncer for tests) are appended after the resource.
func NewExporter(ctx context.Context, exporter sdktrace.SpanExporter, opts ...sdktrace.TracerProviderOption) *Exporter {
	serviceName := os.Getenv("OTEL_SERVICE_NAME")
	if serviceName == "" {
		serviceName = "welcometour"
	}

	res := resource.NewWithAttributes(
		semconv.SchemaURL,
		semconv.ServiceNameKey.String(serviceName),
	)
	if len(opts) == 0 {
		opts = []sdktrace.TracerProviderOption{sdktrace.WithBatcher(exporter)}
	}
	provider := sdktrace.NewTracerProvider(append([]sdktrace.TracerProviderOption{sdktrace.WithResource(res)}, opts...)...)

	tracer := provider.Tracer(tracerName)
	sessionCtx, session := tracer.Start(ctx, "tour.session")
	return &Exporter{
		provider: provider,
		tracer:   tracer,
		session:  session,
		ctx:      sessionCtx,
	}
}

// Observe is a tour.Controller observer: each action becomes a child span
// of the session.
func (e *Exporter) Observe(ev tour.Event) {
	if e == nil {
		return
	}
	_, span := e.tracer.Start(e.ctx, "tour."+ev.Action.String())
	span.SetAttributes(
		attribute.String("tour.outcome", ev.Outcome.String()),
		attribute.String("tour.mode", ev.Mode.String()),
		attribute.Int("tour.page.index", ev.Index),
		attribute.String("tour.page.title", ev.Title),
	)
	if ev.Err != nil {
		span.RecordError(ev.Err)
		span.SetStatus(codes.Error, ev.Err.Error())
	}
	span.End()

	switch ev.Outcome {
	case tour.OutcomeCompleted, tour.OutcomeTerminated:
		e.session.SetAttributes(attribute.String("tour.result", ev.Outcome.String()))
	}
}

// Shutdown ends the session span, flushes and closes the exporter.
func (e *Exporter) Shutdown(ctx context.Context) error {
	if e == nil {
		return nil
	}
	e.session.End()
	return e.provider.Shutdown(ctx)
}
