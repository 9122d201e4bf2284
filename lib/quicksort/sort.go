package quicksort

import (
	"fmt"
	"time"

	"github.com/benz9527/xalgo/lib/infra"
)

// ChoosePivot picks the partition pivot of items by strategy.
func ChoosePivot[T infra.OrderedKey](items []T, strategy PivotStrategy, opts ...Option) (T, error) {
	return choosePivot(items, strategy, applyOptions(opts...))
}

func choosePivot[T infra.OrderedKey](items []T, strategy PivotStrategy, o *options) (T, error) {
	var zero T
	if len(items) == 0 {
		return zero, infra.WrapErrorStack(ErrEmptyInput)
	}
	switch strategy {
	case PivotFirst:
		return items[0], nil
	case PivotLast:
		return items[len(items)-1], nil
	case PivotRandom:
		return items[o.intN(len(items))], nil
	case PivotMedian:
		return selectKth(items, len(items)/2), nil
	default:
	}
	return zero, infra.WrapErrorStackWithMessage(ErrUnknownStrategy, fmt.Sprintf("strategy=%d", strategy))
}

func validStrategy(strategy PivotStrategy) error {
	switch strategy {
	case PivotFirst, PivotLast, PivotRandom, PivotMedian:
		return nil
	default:
	}
	return infra.WrapErrorStackWithMessage(ErrUnknownStrategy, fmt.Sprintf("strategy=%d", strategy))
}

// Sort returns a sorted copy of items by three-way partitioning quicksort.
// Elements equal to a pivot are emitted as one block and never revisited.
func Sort[T infra.OrderedKey](items []T, strategy PivotStrategy, opts ...Option) ([]T, error) {
	if err := validStrategy(strategy); err != nil {
		return nil, err
	}
	o := applyOptions(opts...)

	type task struct {
		items []T
		emit  bool
	}
	out := make([]T, 0, len(items))
	// Pending tasks are popped lows first, then the equal block, then highs.
	stack := []task{{items: items}}
	defer func() {
		clear(stack)
	}()
	for size := len(stack); size > 0; size = len(stack) {
		t := stack[size-1]
		stack = stack[:size-1]
		if t.emit || len(t.items) <= 1 {
			out = append(out, t.items...)
			continue
		}
		pivot, err := choosePivot(t.items, strategy, o)
		if err != nil {
			return nil, err
		}
		lows, equal, highs := partition(t.items, pivot)
		stack = append(stack,
			task{items: highs},
			task{items: equal, emit: true},
			task{items: lows},
		)
	}
	return out, nil
}

// Measure sorts items and reports the wall time spent.
func Measure[T infra.OrderedKey](items []T, strategy PivotStrategy, opts ...Option) ([]T, time.Duration, error) {
	start := time.Now()
	sorted, err := Sort(items, strategy, opts...)
	return sorted, time.Since(start), err
}
