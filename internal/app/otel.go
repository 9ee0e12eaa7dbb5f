package app

import (
  "context"
  "time"

  "go.opentelemetry.io/otel"
  "go.opentelemetry.io/otel/attribute"
  "go.opentelemetry.io/otel/exporters/otlp/otlptrace/otlptracehttp"
  "go.opentelemetry.io/otel/sdk/resource"
  sdktrace "go.opentelemetry.io/otel/sdk/trace"
  semconv "go.opentelemetry.io/otel/semconv/v1.26.0"

  "release-status/internal/release"
)

const serviceName = "release-status"

// tracerResource tags every span with the build and the live release so
// traces from two rollouts can be told apart.
func tracerResource(info release.Info) *resource.Resource {
  return resource.NewWithAttributes(
    semconv.SchemaURL,
    semconv.ServiceName(serviceName),
    semconv.ServiceVersion(info.ArtifactVersion()),
    attribute.Int("release.number", info.ReleaseNumber()),
  )
}

// initTracer installs the global provider. Without an endpoint spans are
// recorded but never exported.
func initTracer(ctx context.Context, endpoint string, info release.Info) (func(context.Context) error, error) {
  opts := []sdktrace.TracerProviderOption{sdktrace.WithResource(tracerResource(info))}
  if endpoint != "" {
    exp, err := otlptracehttp.New(ctx, otlptracehttp.WithEndpointURL(endpoint))
    if err != nil {
      return nil, err
    }
    opts = append(opts, sdktrace.WithBatcher(exp, sdktrace.WithBatchTimeout(2*time.Second)))
  }
  tp := sdktrace.NewTracerProvider(opts...)
  otel.SetTracerProvider(tp)
  return tp.Shutdown, nil
}
