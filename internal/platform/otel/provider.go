// Package otel installs the process tracer provider. Spans from the blog
// API client are exported over OTLP/HTTP when an endpoint is configured.
package otel

import (
	"context"
	"fmt"
	"strings"

	"github.com/louisbranch/beyondui/internal/platform/config"
	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/exporters/otlp/otlptrace/otlptracehttp"
	"go.opentelemetry.io/otel/propagation"
	"go.opentelemetry.io/otel/sdk/resource"
	sdktrace "go.opentelemetry.io/otel/sdk/trace"
	semconv "go.opentelemetry.io/otel/semconv/v1.26.0"
)

// Settings controls trace export.
type Settings struct {
	Endpoint string `env:"BEYONDUI_OTEL_ENDPOINT" validate:"omitempty,url"`
	// Enabled set to "false" turns export off even with an endpoint.
	Enabled     string  `env:"BEYONDUI_OTEL_ENABLED"`
	SampleRatio float64 `env:"BEYONDUI_OTEL_SAMPLE_RATIO" envDefault:"1" validate:"gte=0,lte=1"`
	Release     string  `env:"BEYONDUI_RELEASE"`
}

// LoadSettings reads Settings from the environment.
func LoadSettings() (Settings, error) {
	var settings Settings
	if err := config.ParseEnv(&settings); err != nil {
		return Settings{}, err
	}
	if err := config.Validate(settings); err != nil {
		return Settings{}, fmt.Errorf("otel settings: %w", err)
	}
	return settings, nil
}

// Active reports whether spans will be exported.
func (s Settings) Active() bool {
	return strings.TrimSpace(s.Endpoint) != "" && !strings.EqualFold(strings.TrimSpace(s.Enabled), "false")
}

// Setup registers a global tracer provider for serviceName.
//
// Tracing is opt-in: without an endpoint, or with Enabled "false", Setup
// returns a no-op shutdown and leaves the global provider untouched.
// The returned shutdown flushes pending spans and should be deferred.
func Setup(ctx context.Context, serviceName string, settings Settings) (shutdown func(context.Context) error, err error) {
	noop := func(context.Context) error { return nil }
	if !settings.Active() {
		return noop, nil
	}

	exporter, err := otlptracehttp.New(ctx,
		otlptracehttp.WithEndpointURL(strings.TrimSpace(settings.Endpoint)),
	)
	if err != nil {
		return noop, fmt.Errorf("create otlp exporter: %w", err)
	}

	attrs := []resource.Option{resource.WithAttributes(semconv.ServiceName(serviceName))}
	if release := strings.TrimSpace(settings.Release); release != "" {
		attrs = append(attrs, resource.WithAttributes(semconv.ServiceVersion(release)))
	}
	res, err := resource.New(ctx, attrs...)
	if err != nil {
		return noop, fmt.Errorf("build otel resource: %w", err)
	}

	tp := sdktrace.NewTracerProvider(
		sdktrace.WithBatcher(exporter),
		sdktrace.WithResource(res),
		sdktrace.WithSampler(sdktrace.ParentBased(sdktrace.TraceIDRatioBased(settings.SampleRatio))),
	)

	otel.SetTracerProvider(tp)
	otel.SetTextMapPropagator(propagation.TraceContext{})

	return tp.Shutdown, nil
}
