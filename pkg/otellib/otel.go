package otellib

import (
	"context"
	"time"

	"github.com/QuangTung97/donation-ledger/config"
	"go.opentelemetry.io/contrib/instrumentation/google.golang.org/grpc/otelgrpc"
	"go.opentelemetry.io/otel/exporters/jaeger"
	"go.opentelemetry.io/otel/sdk/resource"
	tracesdk "go.opentelemetry.io/otel/sdk/trace"
	semconv "go.opentelemetry.io/otel/semconv/v1.7.0"
	"google.golang.org/grpc"
)

// InitOtel creates a tracer provider exporting to jaeger, sampling nothing when no url is configured
func InitOtel(serviceName string, env string, conf config.JaegerConfig) (*tracesdk.TracerProvider, func()) {
	res := resource.NewWithAttributes(
		semconv.SchemaURL,
		semconv.ServiceNameKey.String(serviceName),
		semconv.DeploymentEnvironmentKey.String(env),
	)

	if conf.URL == "" {
		tp := tracesdk.NewTracerProvider(
			tracesdk.WithSampler(tracesdk.NeverSample()),
			tracesdk.WithResource(res),
		)
		return tp, func() {}
	}

	exporter, err := jaeger.New(jaeger.WithCollectorEndpoint(jaeger.WithEndpoint(conf.URL)))
	if err != nil {
		panic(err)
	}

	tp := tracesdk.NewTracerProvider(
		tracesdk.WithBatcher(exporter),
		tracesdk.WithResource(res),
	)

	return tp, func() {
		ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()

		err := tp.Shutdown(ctx)
		if err != nil {
			panic(err)
		}
	}
}

// UnaryServerInterceptor ...
func UnaryServerInterceptor(tp *tracesdk.TracerProvider) grpc.UnaryServerInterceptor {
	return otelgrpc.UnaryServerInterceptor(otelgrpc.WithTracerProvider(tp))
}
