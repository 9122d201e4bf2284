package batch

import (
	"runtime"

	"github.com/benz9527/xalgo/lib/xlog"
	"github.com/benz9527/xalgo/observability"
)

const (
	defaultMinWorkerPoolSize = 1
	defaultMaxWorkerPoolSize = 64
)

type batchOption struct {
	name         string
	logger       xlog.XLogger
	stats        *observability.AlgoStats
	workPoolSize int
}

func (opt *batchOption) getWorkerPoolSize(jobs int) int {
	size := opt.workPoolSize
	if size <= 0 {
		size = runtime.GOMAXPROCS(0)
	}
	size = min(size, jobs, defaultMaxWorkerPoolSize)
	if size < defaultMinWorkerPoolSize {
		return defaultMinWorkerPoolSize
	}
	return size
}

func (opt *batchOption) getLogger() xlog.XLogger {
	if opt.logger == nil {
		opt.logger = xlog.NewXLogger(xlog.WithXLoggerLevel(xlog.LogLevelInfo))
	}
	return opt.logger.Named("batch")
}

func (opt *batchOption) getName() string {
	if len(opt.name) == 0 {
		return "default"
	}
	return opt.name
}

type Option func(*batchOption)

// WithPoolSize bounds the workers, GOMAXPROCS by default.
func WithPoolSize(size int) Option {
	return func(opt *batchOption) {
		opt.workPoolSize = size
	}
}

func WithLogger(logger xlog.XLogger) Option {
	return func(opt *batchOption) {
		opt.logger = logger
	}
}

// WithStats records every job into stats, nothing is recorded by default.
func WithStats(stats *observability.AlgoStats) Option {
	return func(opt *batchOption) {
		opt.stats = stats
	}
}

func WithName(name string) Option {
	return func(opt *batchOption) {
		opt.name = name
	}
}
