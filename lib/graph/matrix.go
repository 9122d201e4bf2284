// Package graph holds the adjacency-matrix graph engines: Recursive
// Largest First coloring and Bellman-Ford shortest paths.
package graph

import (
	"errors"
	"fmt"
	"math"

	"go.uber.org/multierr"

	"github.com/benz9527/xalgo/lib/infra"
)

var (
	ErrMalformedMatrix   = errors.New("[graph] malformed matrix")
	ErrSourceOutOfRange  = errors.New("[graph] source vertex out of range")
	ErrVertexOutOfRange  = errors.New("[graph] vertex out of range")
	ErrNegativeCycle     = errors.New("[graph] negative cycle reachable from source")
	ErrUnreachableVertex = errors.New("[graph] vertex unreachable from source")
)

// Matrix is an n×n adjacency matrix. Vertices are the indexes 0..n-1,
// m[i][j] is the edge i→j and 0 means no edge.
type Matrix [][]float64

func (m Matrix) Order() int {
	return len(m)
}

// NewMatrix converts parsed integer or float rows into a Matrix.
func NewMatrix[T infra.Number](rows [][]T) Matrix {
	m := make(Matrix, len(rows))
	for i, row := range rows {
		m[i] = make([]float64, len(row))
		for j, v := range row {
			m[i][j] = float64(v)
		}
	}
	return m
}

type Edge struct {
	From   int
	To     int
	Weight float64
}

// Edges lists every non-zero entry in row-major order.
func (m Matrix) Edges() []Edge {
	edges := make([]Edge, 0, len(m))
	for i, row := range m {
		for j, w := range row {
			if w != 0 {
				edges = append(edges, Edge{From: i, To: j, Weight: w})
			}
		}
	}
	return edges
}

func malformed(format string, args ...any) error {
	return infra.WrapErrorStackWithMessage(ErrMalformedMatrix, fmt.Sprintf(format, args...))
}

// ValidateSquare reports every row whose length differs from the row
// count. An empty matrix is malformed.
func ValidateSquare(m Matrix) error {
	if len(m) == 0 {
		return malformed("empty matrix")
	}
	var err error
	for i, row := range m {
		if len(row) != len(m) {
			err = multierr.Append(err, malformed("row %d has %d entries, want %d", i, len(row), len(m)))
		}
	}
	return err
}

// ValidateAdjacency checks a square matrix of 0/1 entries.
func ValidateAdjacency(m Matrix) error {
	if err := ValidateSquare(m); err != nil {
		return err
	}
	var err error
	for i, row := range m {
		for j, v := range row {
			if v != 0 && v != 1 {
				err = multierr.Append(err, malformed("entry (%d,%d)=%v is not 0 or 1", i, j, v))
				break
			}
		}
	}
	return err
}

// ValidateWeighted checks a square matrix of finite weights.
func ValidateWeighted(m Matrix) error {
	if err := ValidateSquare(m); err != nil {
		return err
	}
	var err error
	for i, row := range m {
		for j, v := range row {
			if math.IsNaN(v) || math.IsInf(v, 0) {
				err = multierr.Append(err, malformed("entry (%d,%d) is not finite", i, j))
				break
			}
		}
	}
	return err
}
