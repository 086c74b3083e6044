package observability

// https://opentelemetry.io/docs/languages/go/exporters/

import (
	"context"
	"strings"
	"time"

	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/exporters/prometheus"
	"go.opentelemetry.io/otel/exporters/stdout/stdoutmetric"
	"go.opentelemetry.io/otel/sdk/metric"

	"github.com/benz9527/xchain/lib/infra"
)

type MetricsExporterType string

const (
	ConsoleMetricsExporter    MetricsExporterType = "console"
	PrometheusMetricsExporter MetricsExporterType = "prometheus"
	NoneMetricsExporter       MetricsExporterType = "none"
)

// ParseMetricsExporterType falls back to none for an unknown name.
func ParseMetricsExporterType(name string) MetricsExporterType {
	switch typ := MetricsExporterType(strings.ToLower(strings.TrimSpace(name))); typ {
	case ConsoleMetricsExporter, PrometheusMetricsExporter:
		return typ
	default:
	}
	return NoneMetricsExporter
}

// InitMetricsExporter sets the global meter provider and returns its
// shutdown callback. The none exporter leaves the global no-op provider.
func InitMetricsExporter(typ MetricsExporterType, interval, timeout time.Duration) (func(ctx context.Context) error, error) {
	var (
		shutdown func(ctx context.Context) error
		err      error
	)
	switch typ {
	case ConsoleMetricsExporter:
		shutdown, err = newConsoleMetricsExporter(interval, timeout)
	case PrometheusMetricsExporter:
		shutdown, err = newPrometheusMetricsExporter()
	case NoneMetricsExporter:
		return func(ctx context.Context) error { return nil }, nil
	default:
		return nil, infra.NewErrorStack("[observability] unknown metrics exporter " + string(typ))
	}
	if err != nil {
		return nil, infra.WrapErrorStackWithMessage(err, "[observability] unable to init "+string(typ)+" metrics exporter")
	}
	return shutdown, nil
}

// Serves for test/dev environment.
func newConsoleMetricsExporter(interval, timeout time.Duration, opts ...stdoutmetric.Option) (func(ctx context.Context) error, error) {
	exporter, err := stdoutmetric.New(opts...)
	if err != nil {
		return nil, err
	}
	mp := metric.NewMeterProvider(metric.WithReader(metric.NewPeriodicReader(
		exporter,
		metric.WithInterval(interval),
		metric.WithTimeout(timeout),
	)))
	otel.SetMeterProvider(mp)
	return mp.Shutdown, nil
}

// Serves for the product environment and fetch stats metrics by HTTP.
func newPrometheusMetricsExporter() (func(ctx context.Context) error, error) {
	exporter, err := prometheus.New()
	if err != nil {
		return nil, err
	}
	mp := metric.NewMeterProvider(metric.WithReader(exporter))
	otel.SetMeterProvider(mp)
	return mp.Shutdown, nil
}
