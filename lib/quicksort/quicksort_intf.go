package quicksort

import (
	"errors"
	"math/rand/v2"
	"strings"

	"github.com/benz9527/xalgo/lib/id"
)

var (
	ErrOutOfRangeSelection = errors.New("[quicksort] selection index out of range")
	ErrUnknownStrategy     = errors.New("[quicksort] unknown pivot strategy")
	ErrEmptyInput          = errors.New("[quicksort] empty input")
)

type PivotStrategy uint8

const (
	PivotLast PivotStrategy = iota
	PivotFirst
	PivotRandom
	PivotMedian
)

// Strategies lists every supported pivot strategy.
var Strategies = []PivotStrategy{PivotFirst, PivotLast, PivotRandom, PivotMedian}

func (s PivotStrategy) String() string {
	switch s {
	case PivotFirst:
		return "first"
	case PivotLast:
		return "last"
	case PivotRandom:
		return "random"
	case PivotMedian:
		return "median"
	default:
	}
	return "unknown"
}

func ParsePivotStrategy(name string) (PivotStrategy, error) {
	switch strings.ToLower(strings.TrimSpace(name)) {
	case "first":
		return PivotFirst, nil
	case "last", "":
		return PivotLast, nil
	case "random":
		return PivotRandom, nil
	case "median":
		return PivotMedian, nil
	default:
	}
	return PivotLast, ErrUnknownStrategy
}

type options struct {
	rnd   *rand.Rand
	idGen id.Generator
}

type Option func(*options)

// WithRand fixes the source used by PivotRandom.
func WithRand(rnd *rand.Rand) Option {
	return func(o *options) {
		o.rnd = rnd
	}
}

// WithIDGenerator replaces the generator of decomposition record ids.
// Ids start from 1 by default.
func WithIDGenerator(gen id.Generator) Option {
	return func(o *options) {
		o.idGen = gen
	}
}

func applyOptions(opts ...Option) *options {
	o := &options{}
	for _, opt := range opts {
		if opt != nil {
			opt(o)
		}
	}
	if o.idGen == nil {
		o.idGen = id.MonotonicNonZeroID()
	}
	return o
}

func (o *options) intN(n int) int {
	if o.rnd != nil {
		return o.rnd.IntN(n)
	}
	return rand.IntN(n)
}
