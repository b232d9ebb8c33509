// Copyright 2026 Canonical Ltd.
// SPDX-License-Identifier: AGPL-3.0

package tracing

import (
	"context"
	"testing"

	"go.opentelemetry.io/otel/exporters/stdout/stdouttrace"
	sdktrace "go.opentelemetry.io/otel/sdk/trace"
)

func TestNewTracerDisabled(t *testing.T) {
	tracer := NewTracer(NewNoopConfig())

	ctx, span := tracer.Start(context.Background(), "tracing.Tracer.Start")
	defer span.End()

	if ctx == nil {
		t.Fatal("expected a context from the noop tracer")
	}
	if span.IsRecording() {
		t.Error("expected a non-recording span with tracing disabled")
	}
}

func TestNewExporter(t *testing.T) {
	testCases := []struct {
		name   string
		config *Config
	}{
		{
			name:   "http endpoint",
			config: &Config{OtelHTTPEndpoint: "localhost:4318"},
		},
		{
			name:   "grpc endpoint preferred",
			config: &Config{OtelGRPCEndpoint: "localhost:4317", OtelHTTPEndpoint: "localhost:4318"},
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			exporter, err := newExporter(tc.config)
			if err != nil {
				t.Fatalf("expected no error but got %v", err)
			}
			if exporter == nil {
				t.Fatal("expected an exporter")
			}
			_ = exporter.Shutdown(context.Background())
		})
	}
}

func TestStdoutFallbackIsSpanExporter(t *testing.T) {
	stdout, err := stdouttrace.New()
	if err != nil {
		t.Fatalf("expected no error but got %v", err)
	}

	var exporter sdktrace.SpanExporter = stdout
	if exporter == nil {
		t.Fatal("expected an exporter")
	}
}
