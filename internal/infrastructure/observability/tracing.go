// Package observability wires OpenTelemetry tracing for the navigator service.
package observability

import (
	"context"
	"fmt"

	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
	"go.opentelemetry.io/otel/exporters/otlp/otlptrace/otlptracehttp"
	"go.opentelemetry.io/otel/propagation"
	"go.opentelemetry.io/otel/sdk/resource"
	sdktrace "go.opentelemetry.io/otel/sdk/trace"
	semconv "go.opentelemetry.io/otel/semconv/v1.26.0"
	"go.opentelemetry.io/otel/trace"

	"lifenav-server/navigator-api/internal/config"
)

const tracerName = "lifenav-server/navigator-api"

// Setup initializes the global tracer provider when tracing is enabled.
// The returned function flushes and shuts the provider down; it is a no-op
// when tracing is disabled.
func Setup(ctx context.Context, cfg *config.Config) (func(context.Context) error, error) {
	if !cfg.EnableTracing {
		return func(context.Context) error { return nil }, nil
	}

	res, err := resource.New(ctx,
		resource.WithAttributes(
			semconv.ServiceName(cfg.ServiceName),
			semconv.DeploymentEnvironment(cfg.Environment),
		),
	)
	if err != nil {
		return nil, fmt.Errorf("create resource: %w", err)
	}

	exporter, err := otlptracehttp.New(ctx,
		otlptracehttp.WithEndpoint(cfg.OTLPEndpoint),
		otlptracehttp.WithInsecure(),
	)
	if err != nil {
		return nil, fmt.Errorf("create trace exporter: %w", err)
	}

	tp := sdktrace.NewTracerProvider(
		sdktrace.WithBatcher(exporter),
		sdktrace.WithResource(res),
	)

	otel.SetTracerProvider(tp)
	otel.SetTextMapPropagator(propagation.NewCompositeTextMapPropagator(
		propagation.TraceContext{},
		propagation.Baggage{},
	))

	return tp.Shutdown, nil
}

// GetTracer returns the tracer for the navigator service.
func GetTracer() trace.Tracer {
	return otel.Tracer(tracerName)
}

// StartChatSpan starts a span for one chat exchange.
func StartChatSpan(ctx context.Context, conversationID string, newConversation bool) (context.Context, trace.Span) {
	return GetTracer().Start(ctx, "chat.exchange",
		trace.WithSpanKind(trace.SpanKindInternal),
		trace.WithAttributes(
			attribute.String("conversation.id", conversationID),
			attribute.Bool("conversation.new", newConversation),
		),
	)
}

// StartAnalysisSpan starts a span for one decision analysis.
func StartAnalysisSpan(ctx context.Context, decisionID string) (context.Context, trace.Span) {
	return GetTracer().Start(ctx, "decision.analyze",
		trace.WithSpanKind(trace.SpanKindInternal),
		trace.WithAttributes(
			attribute.String("decision.id", decisionID),
		),
	)
}

// RecordError records an error on a span.
func RecordError(span trace.Span, err error) {
	if err == nil {
		return
	}
	span.RecordError(err)
	span.SetStatus(codes.Error, err.Error())
}

// AddDegradedEvent marks a span as served via a degraded path.
func AddDegradedEvent(span trace.Span, flow string) {
	span.AddEvent("degraded_response",
		trace.WithAttributes(attribute.String("flow", flow)),
	)
}
