package batch

import (
	"context"
	randv2 "math/rand/v2"
	"slices"
	"testing"

	"github.com/stretchr/testify/require"
	sdkmetric "go.opentelemetry.io/otel/sdk/metric"
	"go.opentelemetry.io/otel/sdk/metric/metricdata"

	"github.com/benz9527/xalgo/lib/quicksort"
	"github.com/benz9527/xalgo/lib/xlog"
	"github.com/benz9527/xalgo/observability"
)

func TestCompareStrategies(t *testing.T) {
	items := make([]int, 2000)
	for i := range items {
		items[i] = randv2.IntN(500)
	}
	before := slices.Clone(items)
	expected := slices.Clone(items)
	slices.Sort(expected)

	out := &xlog.MemWriter{}
	logger := xlog.NewXLogger(xlog.WithXLoggerLevel(xlog.LogLevelDebug), xlog.WithXLoggerMemWriter(out))
	reader := sdkmetric.NewManualReader()
	mp := sdkmetric.NewMeterProvider(sdkmetric.WithReader(reader))

	results, err := CompareStrategies(context.Background(), items, quicksort.Strategies,
		WithPoolSize(2),
		WithLogger(logger),
		WithStats(observability.NewAlgoStats(mp, "compare")),
		WithName("test"),
	)
	require.NoError(t, err)
	require.Len(t, results, len(quicksort.Strategies))
	for i, res := range results {
		require.Equal(t, quicksort.Strategies[i], res.Strategy)
		require.NoError(t, res.Err)
		require.Equal(t, expected, res.Sorted)
	}
	require.Equal(t, before, items)
	require.Len(t, out.Lines(), len(quicksort.Strategies))
	require.Contains(t, out.Lines()[0], `"component":"batch"`)

	rm := metricdata.ResourceMetrics{}
	require.NoError(t, reader.Collect(context.Background(), &rm))
	found := false
	for _, sm := range rm.ScopeMetrics {
		for _, m := range sm.Metrics {
			if m.Name != "xalgo.job.count" {
				continue
			}
			found = true
			sum := m.Data.(metricdata.Sum[int64])
			total := int64(0)
			for _, dp := range sum.DataPoints {
				total += dp.Value
			}
			require.Equal(t, int64(len(quicksort.Strategies)), total)
		}
	}
	require.True(t, found)
}

func TestCompareStrategiesCollectsErrors(t *testing.T) {
	strategies := []quicksort.PivotStrategy{quicksort.PivotLast, quicksort.PivotStrategy(99), quicksort.PivotStrategy(98)}
	results, err := CompareStrategies(context.Background(), []int{3, 1, 2}, strategies,
		WithLogger(xlog.NewXLogger(xlog.WithXLoggerMemWriter(&xlog.MemWriter{}))),
	)
	require.ErrorIs(t, err, quicksort.ErrUnknownStrategy)
	require.Len(t, results, 3)
	require.NoError(t, results[0].Err)
	require.Equal(t, []int{1, 2, 3}, results[0].Sorted)
	require.ErrorIs(t, results[1].Err, quicksort.ErrUnknownStrategy)
	require.ErrorIs(t, results[2].Err, quicksort.ErrUnknownStrategy)
}

func TestCompareStrategiesCanceled(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	results, err := CompareStrategies(ctx, []int{3, 1, 2}, quicksort.Strategies,
		WithLogger(xlog.NewXLogger(xlog.WithXLoggerMemWriter(&xlog.MemWriter{}))),
	)
	require.ErrorIs(t, err, context.Canceled)
	require.Nil(t, results)
}

func TestAwaitJobsPrefersFinishedRun(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	done := make(chan struct{})
	close(done)
	for i := 0; i < 200; i++ {
		require.NoError(t, awaitJobs(ctx, done))
	}

	pending := make(chan struct{})
	require.ErrorIs(t, awaitJobs(ctx, pending), context.Canceled)
	require.NoError(t, awaitJobs(context.Background(), done))
}

func TestCompareStrategiesEmpty(t *testing.T) {
	results, err := CompareStrategies[int](context.Background(), nil, nil)
	require.NoError(t, err)
	require.Empty(t, results)
}

func TestWorkerPoolSize(t *testing.T) {
	opt := &batchOption{workPoolSize: 8}
	require.Equal(t, 3, opt.getWorkerPoolSize(3))
	require.Equal(t, 8, opt.getWorkerPoolSize(100))
	opt.workPoolSize = 1000
	require.Equal(t, defaultMaxWorkerPoolSize, opt.getWorkerPoolSize(1000))
	opt.workPoolSize = 0
	require.GreaterOrEqual(t, opt.getWorkerPoolSize(4), 1)
	require.Equal(t, defaultMinWorkerPoolSize, opt.getWorkerPoolSize(0))
}
