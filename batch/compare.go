// Package batch runs independent algorithm jobs on a worker pool.
package batch

import (
	"context"
	"fmt"
	"sync"
	"time"

	"github.com/panjf2000/ants/v2"
	"go.uber.org/multierr"
	"go.uber.org/zap"

	"github.com/benz9527/xalgo/lib/infra"
	"github.com/benz9527/xalgo/lib/quicksort"
	"github.com/benz9527/xalgo/lib/xlog"
)

// Comparison is the outcome of sorting the input with one strategy.
type Comparison[T infra.OrderedKey] struct {
	Strategy quicksort.PivotStrategy
	Sorted   []T
	Elapsed  time.Duration
	Err      error
}

// CompareStrategies sorts a private copy of items with every strategy
// concurrently. Results keep the order of strategies, job errors are
// combined by multierr. Waiting stops with ctx, jobs not started yet are
// skipped and reported as canceled.
func CompareStrategies[T infra.OrderedKey](
	ctx context.Context,
	items []T,
	strategies []quicksort.PivotStrategy,
	opts ...Option,
) ([]Comparison[T], error) {
	opt := &batchOption{}
	for _, o := range opts {
		if o != nil {
			o(opt)
		}
	}
	results := make([]Comparison[T], len(strategies))
	if len(strategies) == 0 {
		return results, nil
	}
	if err := ctx.Err(); err != nil {
		return nil, infra.WrapErrorStackWithMessage(err, "[batch] compare strategies")
	}
	logger := opt.getLogger()

	pool, err := ants.NewPool(
		opt.getWorkerPoolSize(len(strategies)),
		ants.WithPreAlloc(true),
		ants.WithLogger(xlog.NewAntsXLogger(logger)),
	)
	if err != nil {
		return nil, infra.WrapErrorStackWithMessage(err, "[batch] create worker pool")
	}
	defer pool.Release()

	wg := &sync.WaitGroup{}
	for i, strategy := range strategies {
		results[i].Strategy = strategy
		job := func() {
			defer wg.Done()
			results[i] = runSort(ctx, opt, logger, items, strategy)
		}
		wg.Add(1)
		if err := pool.Submit(job); err != nil {
			wg.Done()
			results[i].Err = infra.WrapErrorStackWithMessage(err, "[batch] submit "+strategy.String())
		}
	}

	done := make(chan struct{})
	go func() {
		wg.Wait()
		close(done)
	}()
	if err := awaitJobs(ctx, done); err != nil {
		// Jobs may still be writing into results.
		logger.ErrorContext(ctx, err, "strategies comparison canceled")
		return nil, infra.WrapErrorStackWithMessage(err, "[batch] compare strategies")
	}

	var merr error
	for _, res := range results {
		merr = multierr.Append(merr, res.Err)
	}
	return results, merr
}

// awaitJobs blocks until done is closed or ctx ends. A closed done wins
// when both are ready.
func awaitJobs(ctx context.Context, done <-chan struct{}) error {
	select {
	case <-done:
		return nil
	case <-ctx.Done():
	}
	select {
	case <-done:
		return nil
	default:
		return ctx.Err()
	}
}

func runSort[T infra.OrderedKey](
	ctx context.Context,
	opt *batchOption,
	logger xlog.XLogger,
	items []T,
	strategy quicksort.PivotStrategy,
) (res Comparison[T]) {
	res.Strategy = strategy
	if err := ctx.Err(); err != nil {
		res.Err = infra.WrapErrorStackWithMessage(err, "[batch] "+strategy.String()+" skipped")
		return res
	}
	defer func() {
		if r := recover(); r != nil {
			res.Sorted = nil
			res.Err = infra.NewErrorStack(fmt.Sprintf("[batch] %s panicked: %v", strategy, r))
		}
		opt.stats.RecordJob(ctx, "quicksort", strategy.String(), res.Elapsed, res.Err)
		if res.Err != nil {
			logger.ErrorContext(ctx, res.Err, "sort job failed", zap.Stringer("strategy", strategy))
			return
		}
		logger.DebugContext(ctx, "sort job done",
			zap.String("batch", opt.getName()),
			zap.Stringer("strategy", strategy),
			zap.Duration("elapsed", res.Elapsed),
		)
	}()

	private := append(make([]T, 0, len(items)), items...)
	res.Sorted, res.Elapsed, res.Err = quicksort.Measure(private, strategy)
	return res
}
