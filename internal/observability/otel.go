package observability

import (
	"context"

	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/exporters/otlp/otlptrace/otlptracehttp"
	"go.opentelemetry.io/otel/sdk/resource"
	sdktrace "go.opentelemetry.io/otel/sdk/trace"
	semconv "go.opentelemetry.io/otel/semconv/v1.24.0"
	"go.opentelemetry.io/otel/trace"
)

const tracerName = "github.com/gptpipe/gptpipe"

// Setup installs an OTLP/HTTP tracer provider exporting to url (host:port).
// Callers must Shutdown the returned provider to flush spans.
func Setup(ctx context.Context, url, version string) (*sdktrace.TracerProvider, error) {
	exp, err := otlptracehttp.New(ctx,
		otlptracehttp.WithEndpoint(url),
		otlptracehttp.WithInsecure(),
	)
	if err != nil {
		return nil, err
	}
	tp := sdktrace.NewTracerProvider(
		sdktrace.WithBatcher(exp),
		sdktrace.WithResource(resource.NewWithAttributes(
			semconv.SchemaURL,
			semconv.ServiceName("gptpipe"),
			semconv.ServiceVersion(version),
		)),
	)
	otel.SetTracerProvider(tp)
	return tp, nil
}

// Tracer returns the module tracer from the global provider. Without Setup
// it is a no-op.
func Tracer() trace.Tracer {
	return otel.Tracer(tracerName)
}

func Estimate(n int) attribute.KeyValue { return attribute.Int("gptpipe.token_estimate", n) }

func Model(m string) attribute.KeyValue { return attribute.String("gptpipe.model", m) }

func LargeModel(b bool) attribute.KeyValue { return attribute.Bool("gptpipe.large_model", b) }

func StatusCode(c int) attribute.KeyValue { return attribute.Int("http.response.status_code", c) }
