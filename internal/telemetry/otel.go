package telemetry

import (
	"context"
	"encoding/base64"
	"log"
	"strings"

	"github.com/blaisecz/baby-journal/internal/config"
	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/exporters/otlp/otlptrace/otlptracehttp"
	"go.opentelemetry.io/otel/sdk/resource"
	sdktrace "go.opentelemetry.io/otel/sdk/trace"
)

const otlpTracesPath = "/api/public/otel/v1/traces"

// Enabled reports whether cfg carries everything the Langfuse OTLP exporter needs.
func Enabled(cfg *config.Config) bool {
	return cfg != nil && cfg.LangfuseBaseURL != "" && cfg.LangfusePublicKey != "" && cfg.LangfuseSecretKey != ""
}

// TracesEndpoint is the Langfuse OTLP/HTTP traces URL for baseURL.
func TracesEndpoint(baseURL string) string {
	return strings.TrimRight(baseURL, "/") + otlpTracesPath
}

// AuthHeader builds the Basic auth value from a Langfuse key pair.
func AuthHeader(publicKey, secretKey string) string {
	return "Basic " + base64.StdEncoding.EncodeToString([]byte(publicKey+":"+secretKey))
}

// InitTracer installs a global tracer provider that exports spans to
// Langfuse. Without Langfuse credentials the default noop provider stays
// in place and the returned shutdown does nothing.
func InitTracer(ctx context.Context, cfg *config.Config, serviceName string) (func(context.Context) error, error) {
	if !Enabled(cfg) {
		log.Println("[otel] tracing disabled: Langfuse is not configured")
		return func(context.Context) error { return nil }, nil
	}

	exporter, err := otlptracehttp.New(
		ctx,
		otlptracehttp.WithEndpointURL(TracesEndpoint(cfg.LangfuseBaseURL)),
		otlptracehttp.WithHeaders(map[string]string{
			"Authorization": AuthHeader(cfg.LangfusePublicKey, cfg.LangfuseSecretKey),
		}),
	)
	if err != nil {
		return nil, err
	}

	res, err := resource.New(
		ctx,
		resource.WithAttributes(
			attribute.String("service.name", serviceName),
			attribute.String("langfuse.environment", cfg.LangfuseEnv),
		),
	)
	if err != nil {
		return nil, err
	}

	tp := sdktrace.NewTracerProvider(
		sdktrace.WithBatcher(exporter),
		sdktrace.WithResource(res),
	)
	otel.SetTracerProvider(tp)
	log.Printf("[otel] exporting %s spans to %s", serviceName, TracesEndpoint(cfg.LangfuseBaseURL))

	return tp.Shutdown, nil
}
