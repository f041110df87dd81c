package observability

import (
	"context"
	"log"
	"time"

	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/exporters/prometheus"
	otelmetric "go.opentelemetry.io/otel/metric"
	"go.opentelemetry.io/otel/sdk/metric"
)

type Observability struct {
	meterProvider *metric.MeterProvider
	meter         otelmetric.Meter
	queryCounter  otelmetric.Int64Counter
	queryDuration otelmetric.Float64Histogram
}

func New(serviceName string) *Observability {
	exporter, err := prometheus.New()
	if err != nil {
		log.Printf("Failed to create Prometheus exporter: %v", err)
		return &Observability{}
	}

	provider := metric.NewMeterProvider(metric.WithReader(exporter))
	otel.SetMeterProvider(provider)

	meter := provider.Meter(serviceName)

	queryCounter, _ := meter.Int64Counter(
		"queries.processed",
		otelmetric.WithDescription("Number of user queries processed"),
	)

	queryDuration, _ := meter.Float64Histogram(
		"queries.duration",
		otelmetric.WithDescription("Query processing duration"),
		otelmetric.WithUnit("ms"),
	)

	return &Observability{
		meterProvider: provider,
		meter:         meter,
		queryCounter:  queryCounter,
		queryDuration: queryDuration,
	}
}

func (o *Observability) RecordQueryProcessed(ctx context.Context, intent string) {
	if o.queryCounter != nil {
		o.queryCounter.Add(ctx, 1, otelmetric.WithAttributes(
			attribute.String("intent", intent),
		))
	}
}

func (o *Observability) RecordQueryDuration(ctx context.Context, duration time.Duration, intent string) {
	if o.queryDuration != nil {
		o.queryDuration.Record(ctx, float64(duration.Milliseconds()), otelmetric.WithAttributes(
			attribute.String("intent", intent),
		))
	}
}

func (o *Observability) Shutdown() {
	if o.meterProvider != nil {
		ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		o.meterProvider.Shutdown(ctx)
	}
}
