package app

import (
	"context"

	"github.com/ayxworxfr/go_admin_client/internal/config"
	"github.com/ayxworxfr/go_admin_client/pkg/logger"
	"github.com/pkg/errors"
	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/exporters/otlp/otlptrace"
	"go.opentelemetry.io/otel/exporters/otlp/otlptrace/otlptracegrpc"
	"go.opentelemetry.io/otel/exporters/otlp/otlptrace/otlptracehttp"
	"go.opentelemetry.io/otel/propagation"
	"go.opentelemetry.io/otel/sdk/resource"
	"go.opentelemetry.io/otel/sdk/trace"
	semconv "go.opentelemetry.io/otel/semconv/v1.21.0"
)

const (
	ProtocolGRPC = "grpc"
	ProtocolHTTP = "http/protobuf"
)

type Shutdownable interface {
	Shutdown(context.Context) error
}

// InitOpenTelemetry 按配置创建 OTLP 导出器并设置全局 TracerProvider，未启用时返回 nil
func InitOpenTelemetry(ctx context.Context, cfg config.OpenTelemetryConfig) (Shutdownable, error) {
	if !cfg.Enable {
		return nil, nil
	}

	var client otlptrace.Client
	protocol := cfg.Protocol
	// 根据配置选择协议
	switch protocol {
	case ProtocolGRPC:
		client = otlptracegrpc.NewClient(
			otlptracegrpc.WithEndpoint(cfg.Endpoint),
			otlptracegrpc.WithInsecure(),
			otlptracegrpc.WithTimeout(cfg.TimeoutDuration()),
		)
	default:
		protocol = ProtocolHTTP
		client = otlptracehttp.NewClient(
			otlptracehttp.WithEndpoint(cfg.Endpoint),
			otlptracehttp.WithInsecure(),
			otlptracehttp.WithTimeout(cfg.TimeoutDuration()),
		)
	}

	exporter, err := otlptrace.New(ctx, client)
	if err != nil {
		return nil, errors.Wrap(err, "failed to create OTLP exporter")
	}

	res, err := resource.New(ctx,
		resource.WithAttributes(
			semconv.ServiceName(cfg.Service),
			semconv.ServiceVersion(Version),
		),
	)
	if err != nil {
		return nil, errors.Wrap(err, "failed to create resource")
	}

	tracerProvider := trace.NewTracerProvider(
		trace.WithBatcher(exporter),
		trace.WithResource(res),
		trace.WithSampler(trace.ParentBased(trace.TraceIDRatioBased(cfg.Sampling))),
	)

	// 设置全局传播器（支持TraceContext和Baggage）
	otel.SetTextMapPropagator(propagation.NewCompositeTextMapPropagator(
		propagation.TraceContext{},
		propagation.Baggage{},
	))
	otel.SetTracerProvider(tracerProvider)

	logger.Infof(ctx, "OpenTelemetry initialized: service=%s, endpoint=%s, protocol=%s, sampling=%.2f",
		cfg.Service, cfg.Endpoint, protocol, cfg.Sampling)

	return tracerProvider, nil
}
