// Package telemetry wires OpenTelemetry tracing, metrics and instrumented HTTP.
package telemetry

import (
	"context"
	"errors"
	"fmt"
	"log"
	"time"

	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/propagation"
	sdkmetric "go.opentelemetry.io/otel/sdk/metric"
	"go.opentelemetry.io/otel/sdk/resource"
	sdktrace "go.opentelemetry.io/otel/sdk/trace"
	semconv "go.opentelemetry.io/otel/semconv/v1.30.0"
)

// disabled is the endpoint value that turns an exporter off.
const disabled = "-"

const shutdownTimeout = 5 * time.Second

// InitOpenTelemetry installs the global propagator and, for each configured
// endpoint, an OTLP/HTTP trace or metric pipeline.
type InitOpenTelemetry struct {
	Logger          *log.Logger   `resolve:""`
	TracesEndpoint  string        `config:"OTEL_EXPORTER_OTLP_TRACES_ENDPOINT" default:"-"`
	MetricsEndpoint string        `config:"OTEL_EXPORTER_OTLP_METRICS_ENDPOINT" default:"-"`
	MetricsInterval time.Duration `config:"OTEL_METRIC_EXPORT_INTERVAL" default:"5s"`
	ServiceName     string        `config:"OTEL_SERVICE_NAME" default:"teamgo"`
	ServiceVersion  string        `config:"OTEL_SERVICE_VERSION" default:"dev"`

	tp        *sdktrace.TracerProvider
	mp        *sdkmetric.MeterProvider
	shutdowns []func(context.Context) error
}

// Initialize sets up the pipelines and registers their shutdown hooks.
func (o *InitOpenTelemetry) Initialize(ctx context.Context) (context.Context, error) {
	otel.SetTextMapPropagator(propagation.NewCompositeTextMapPropagator(
		propagation.TraceContext{},
		propagation.Baggage{},
	))

	res, err := newAppResource(ctx, o.ServiceName, o.ServiceVersion)
	if err != nil {
		return ctx, err
	}

	if o.TracesEndpoint != disabled {
		tp, exporter, err := newTracerProvider(ctx, res, o.TracesEndpoint)
		if err != nil {
			return ctx, err
		}
		o.tp = tp
		o.shutdowns = append(o.shutdowns, tp.Shutdown, exporter.Shutdown)
		otel.SetTracerProvider(tp)
		o.Logger.Printf("InitOpenTelemetry: exporting traces to %s", o.TracesEndpoint)
	}

	if o.MetricsEndpoint != disabled {
		mp, exporter, err := newMeterProvider(ctx, res, o.MetricsEndpoint, o.MetricsInterval)
		if err != nil {
			return ctx, err
		}
		o.mp = mp
		o.shutdowns = append(o.shutdowns, mp.Shutdown, exporter.Shutdown)
		otel.SetMeterProvider(mp)
		o.Logger.Printf("InitOpenTelemetry: exporting metrics to %s every %s", o.MetricsEndpoint, o.MetricsInterval)
	}

	return ctx, nil
}

// Close flushes and stops every pipeline started by Initialize.
func (o *InitOpenTelemetry) Close() {
	if len(o.shutdowns) == 0 {
		return
	}
	ctx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer cancel()

	var errs []error
	for _, shutdown := range o.shutdowns {
		errs = append(errs, shutdown(ctx))
	}
	o.shutdowns = nil
	if err := errors.Join(errs...); err != nil {
		o.Logger.Printf("InitOpenTelemetry: shutdown: %v", err)
	}
}

func newAppResource(ctx context.Context, name, version string) (*resource.Resource, error) {
	res, err := resource.New(ctx,
		resource.WithAttributes(
			semconv.ServiceName(name),
			semconv.ServiceVersion(version),
		),
	)
	if err != nil {
		return nil, fmt.Errorf("failed to create resource: %w", err)
	}
	return res, nil
}
