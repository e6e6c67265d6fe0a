package tracing

import (
	"context"
	"testing"

	"github.com/yeisme/tunevault/pkg/configs"
)

func TestInitTracerDisabled(t *testing.T) {
	cfg := configs.TracingConfig{Enabled: false}

	if err := InitTracer(cfg); err != nil {
		t.Fatalf("InitTracer disabled: %v", err)
	}

	// 未启用时 StartSpan 走 noop tracer，仍然可用
	ctx, span := StartSpan(context.Background(), "test.span")
	if ctx == nil || span == nil {
		t.Fatal("StartSpan returned nil")
	}
	span.End()

	if err := ShutdownTracer(context.Background()); err != nil {
		t.Fatalf("ShutdownTracer: %v", err)
	}
}

func TestInitTracerUnsupportedExporter(t *testing.T) {
	cfg := configs.TracingConfig{
		Enabled:      true,
		ServiceName:  "tunevault",
		ExporterType: "jaeger-thrift",
	}

	if err := InitTracer(cfg); err == nil {
		t.Fatal("expected error for unsupported exporter type")
	}
}
