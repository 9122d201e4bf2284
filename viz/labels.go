// Package viz turns engine outputs into render-ready records: tree
// layouts, the quicksort DAG, the coloring legend and the Bellman-Ford
// table. Vertex indexes become letter labels only here.
package viz

import (
	"fmt"
	"math"
	"strconv"
	"strings"
)

// IndexToLabel maps 0..25 to A..Z, then continues with AA, AB, ...
// Negative indexes are printed as numbers.
func IndexToLabel(index int) string {
	if index < 0 {
		return strconv.Itoa(index)
	}
	var buf [16]byte
	pos := len(buf)
	for n := index + 1; n > 0; n = (n - 1) / 26 {
		pos--
		buf[pos] = byte('A' + (n-1)%26)
	}
	return string(buf[pos:])
}

// formatNumber prints integral values without a fraction and +Inf as ∞.
func formatNumber(v float64) string {
	if math.IsInf(v, 1) {
		return "∞"
	}
	if math.IsInf(v, -1) {
		return "-∞"
	}
	return strconv.FormatFloat(v, 'f', -1, 64)
}

func joinValues[T any](values []T) string {
	parts := make([]string, 0, len(values))
	for _, v := range values {
		parts = append(parts, fmt.Sprint(v))
	}
	return "[" + strings.Join(parts, ", ") + "]"
}
