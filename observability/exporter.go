package observability

// https://opentelemetry.io/docs/languages/go/exporters/

import (
	"context"
	"time"

	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/exporters/prometheus"
	"go.opentelemetry.io/otel/exporters/stdout/stdoutmetric"
	"go.opentelemetry.io/otel/sdk/metric"

	"github.com/benz9527/xalgo/lib/infra"
)

type ExporterType uint8

const (
	ConsoleExporter ExporterType = iota
	PrometheusExporter
)

// Serves for test/dev environment.
func newConsoleMetricsExporter(interval, timeout time.Duration, opts ...stdoutmetric.Option) (*metric.MeterProvider, error) {
	exporter, err := stdoutmetric.New(opts...)
	if err != nil {
		return nil, err
	}
	return metric.NewMeterProvider(metric.WithReader(metric.NewPeriodicReader(
		exporter,
		metric.WithInterval(interval),
		metric.WithTimeout(timeout),
	))), nil
}

// Serves for the product environment and fetch stats metrics by HTTP.
func newPrometheusMetricsExporter(opts ...prometheus.Option) (*metric.MeterProvider, error) {
	exporter, err := prometheus.New(opts...)
	if err != nil {
		return nil, err
	}
	return metric.NewMeterProvider(metric.WithReader(exporter)), nil
}

// InitMetricsExporter installs the global meter provider. The provider
// is shut down when ctx is done, or earlier through the returned callback.
func InitMetricsExporter(ctx context.Context, typ ExporterType, interval, timeout time.Duration) (func(ctx context.Context) error, error) {
	var (
		mp  *metric.MeterProvider
		err error
	)
	switch typ {
	case ConsoleExporter:
		mp, err = newConsoleMetricsExporter(interval, timeout, stdoutmetric.WithPrettyPrint())
	case PrometheusExporter:
		mp, err = newPrometheusMetricsExporter()
	default:
		return nil, infra.NewErrorStack("[observability] unknown metrics exporter")
	}
	if err != nil {
		return nil, infra.WrapErrorStackWithMessage(err, "[observability] init metrics exporter")
	}
	otel.SetMeterProvider(mp)
	waitForShutdown(ctx, mp.Shutdown)
	return mp.Shutdown, nil
}

func waitForShutdown(ctx context.Context, callback func(ctx context.Context) error) {
	if ctx == nil || callback == nil {
		return
	}
	go func() {
		<-ctx.Done()
		_ = callback(context.Background())
	}()
}
