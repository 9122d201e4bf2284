package quicksort

import (
	"fmt"
	"slices"

	"github.com/samber/lo"

	"github.com/benz9527/xalgo/lib/infra"
)

const mmGroupSize = 5

// Select returns the k-th smallest element (0-based) in linear time by
// median-of-medians. The input slice is left untouched.
func Select[T infra.OrderedKey](items []T, k int) (T, error) {
	var zero T
	if k < 0 || k >= len(items) {
		return zero, infra.WrapErrorStackWithMessage(
			ErrOutOfRangeSelection,
			fmt.Sprintf("k=%d, length=%d", k, len(items)),
		)
	}
	return selectKth(items, k), nil
}

// selectKth walks down into the partition holding the k-th element.
// The caller guarantees 0 <= k < len(items).
func selectKth[T infra.OrderedKey](items []T, k int) T {
	for {
		if len(items) <= mmGroupSize {
			sorted := slices.Clone(items)
			slices.Sort(sorted)
			return sorted[k]
		}

		medians := lo.Map(lo.Chunk(items, mmGroupSize), func(group []T, _ int) T {
			sorted := slices.Clone(group)
			slices.Sort(sorted)
			return sorted[len(sorted)/2]
		})
		mm := selectKth(medians, len(medians)/2)

		lows, equal, highs := partition(items, mm)
		switch {
		case k < len(lows):
			items = lows
		case k < len(lows)+len(equal):
			return mm
		default:
			k -= len(lows) + len(equal)
			items = highs
		}
	}
}

// partition splits items into {< pivot}, {= pivot}, {> pivot} keeping
// the relative input order inside each part.
func partition[T infra.OrderedKey](items []T, pivot T) (lows, equal, highs []T) {
	lows = make([]T, 0, len(items)/2)
	highs = make([]T, 0, len(items)/2)
	for _, v := range items {
		if v < pivot {
			lows = append(lows, v)
		} else if v > pivot {
			highs = append(highs, v)
		} else {
			equal = append(equal, v)
		}
	}
	return lows, equal, highs
}
