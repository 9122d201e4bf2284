package observability

import (
	"context"
	"runtime"
	"strings"
	"time"

	"github.com/samber/lo"
	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/metric"
)

const instrumentationVersion = "v0.1.0"

const (
	AttrAlgorithm = attribute.Key("algorithm")
	AttrStrategy  = attribute.Key("strategy")
)

// AlgoStats records every algorithm job run by the batch runner.
type AlgoStats struct {
	jobs       metric.Int64Counter
	failed     metric.Int64Counter
	duration   metric.Float64Histogram
	goroutines metric.Int64ObservableUpDownCounter
}

// NewAlgoStats registers the instruments on mp, the global meter
// provider is used when mp is nil.
func NewAlgoStats(mp metric.MeterProvider, name string) *AlgoStats {
	if mp == nil {
		mp = otel.GetMeterProvider()
	}
	builder := &strings.Builder{}
	builder.WriteString("xalgo/batch")
	builder.WriteString("/")
	if len(strings.TrimSpace(name)) > 0 {
		builder.WriteString(name)
	} else {
		builder.WriteString("default")
	}
	meter := mp.Meter(builder.String(), metric.WithInstrumentationVersion(instrumentationVersion))

	return &AlgoStats{
		jobs: lo.Must[metric.Int64Counter](meter.Int64Counter(
			"xalgo.job.count",
			metric.WithDescription(`The algorithm jobs submitted.`),
		)),
		failed: lo.Must[metric.Int64Counter](meter.Int64Counter(
			"xalgo.job.failed",
			metric.WithDescription(`The algorithm jobs finished with an error.`),
		)),
		duration: lo.Must[metric.Float64Histogram](meter.Float64Histogram(
			"xalgo.job.duration",
			metric.WithDescription(`The algorithm jobs' elapsed time.`),
			metric.WithUnit("ms"),
		)),
		goroutines: lo.Must[metric.Int64ObservableUpDownCounter](meter.Int64ObservableUpDownCounter(
			"xalgo.app.goroutines",
			metric.WithDescription(`The application goroutines' info.`),
			metric.WithInt64Callback(func(ctx context.Context, ob metric.Int64Observer) error {
				ob.Observe(int64(runtime.NumGoroutine()))
				return nil
			}),
		)),
	}
}

// RecordJob counts one finished job. A nil receiver records nothing.
func (stats *AlgoStats) RecordJob(ctx context.Context, algorithm, strategy string, elapsed time.Duration, err error) {
	if stats == nil {
		return
	}
	attrs := metric.WithAttributes(
		AttrAlgorithm.String(algorithm),
		AttrStrategy.String(strategy),
	)
	stats.jobs.Add(ctx, 1, attrs)
	stats.duration.Record(ctx, float64(elapsed.Microseconds())/1e3, attrs)
	if err != nil {
		stats.failed.Add(ctx, 1, attrs)
	}
}
