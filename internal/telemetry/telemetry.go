// SPDX-License-Identifier: MIT

// Package telemetry installs the OpenTelemetry tracer provider used by the
// wavefront command when tracing is enabled.
package telemetry

import (
	"context"
	"fmt"
	"io"

	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/exporters/stdout/stdouttrace"
	"go.opentelemetry.io/otel/sdk/resource"
	sdktrace "go.opentelemetry.io/otel/sdk/trace"
)

// ServiceName identifies the command in exported spans.
const ServiceName = "wavefront"

// Init exports spans as JSON to w and installs the provider globally.
// The returned shutdown flushes pending spans and must be called on exit.
// With enabled == false Init installs nothing and shutdown is a no-op.
func Init(ctx context.Context, enabled bool, w io.Writer) (shutdown func(context.Context) error, err error) {
	if !enabled {
		return func(context.Context) error { return nil }, nil
	}

	exporter, err := stdouttrace.New(stdouttrace.WithWriter(w))
	if err != nil {
		return nil, fmt.Errorf("telemetry: create exporter: %w", err)
	}

	res := resource.NewWithAttributes("", attribute.String("service.name", ServiceName))
	tp := sdktrace.NewTracerProvider(
		sdktrace.WithBatcher(exporter),
		sdktrace.WithResource(res),
		sdktrace.WithSampler(sdktrace.AlwaysSample()),
	)
	otel.SetTracerProvider(tp)

	return tp.Shutdown, nil
}
