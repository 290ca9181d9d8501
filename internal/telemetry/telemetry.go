// Package telemetry bootstraps OpenTelemetry tracing. It is ambient
// infrastructure (spec.md's Non-goals exclude hot-reload and distributed
// registries, not observability), driven by environment variables rather
// than an AppConfig section since no Telemetry domain exists among
// Hydrogen's A–P sections.
package telemetry

import (
	"context"
	"fmt"
	"os"

	"github.com/rs/zerolog/log"
	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/exporters/otlp/otlptrace/otlptracegrpc"
	"go.opentelemetry.io/otel/propagation"
	"go.opentelemetry.io/otel/sdk/resource"
	sdktrace "go.opentelemetry.io/otel/sdk/trace"
)

// Init sets up OpenTelemetry tracing with an OTLP gRPC exporter when
// HYDROGEN_OTLP_ENDPOINT is set, and is a no-op otherwise. serviceName and
// serviceVersion are attached as resource attributes on every span.
// Returns a shutdown function that should be called on graceful shutdown.
func Init(serviceName, serviceVersion string) (func(context.Context) error, error) {
	endpoint := os.Getenv("HYDROGEN_OTLP_ENDPOINT")
	if endpoint == "" {
		log.Info().Msg("opentelemetry tracing disabled (HYDROGEN_OTLP_ENDPOINT unset)")
		return func(context.Context) error { return nil }, nil
	}

	ctx := context.Background()

	exporter, err := otlptracegrpc.New(ctx,
		otlptracegrpc.WithEndpoint(endpoint),
		otlptracegrpc.WithInsecure(),
	)
	if err != nil {
		return nil, fmt.Errorf("failed to create OTLP exporter: %w", err)
	}

	res, err := resource.New(ctx,
		resource.WithAttributes(
			attribute.String("service.name", serviceName),
			attribute.String("service.version", serviceVersion),
		),
		resource.WithHost(),
		resource.WithOS(),
		resource.WithProcess(),
	)
	if err != nil {
		return nil, fmt.Errorf("failed to create resource: %w", err)
	}

	tp := sdktrace.NewTracerProvider(
		sdktrace.WithBatcher(exporter),
		sdktrace.WithResource(res),
		sdktrace.WithSampler(sdktrace.AlwaysSample()),
	)

	otel.SetTracerProvider(tp)
	otel.SetTextMapPropagator(propagation.NewCompositeTextMapPropagator(
		propagation.TraceContext{},
		propagation.Baggage{},
	))

	log.Info().Str("endpoint", endpoint).Str("service", serviceName).
		Msg("opentelemetry tracing initialized")

	return tp.Shutdown, nil
}
