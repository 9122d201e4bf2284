package graph

import (
	"fmt"

	"github.com/samber/lo"

	"github.com/benz9527/xalgo/lib/infra"
)

// ColorClass is a set of pairwise non-adjacent vertices sharing Color,
// listed in the order they joined the class.
type ColorClass struct {
	Color    int
	Vertices []int
}

type Coloring struct {
	ColorOf []int
	Classes []ColorClass
}

func (c Coloring) ChromaticNumber() int {
	return len(c.Classes)
}

// Validate checks that every vertex is colored and no edge joins two
// vertices of the same color. Self loops are ignored.
func (c Coloring) Validate(m Matrix) error {
	if err := ValidateSquare(m); err != nil {
		return err
	}
	if len(c.ColorOf) != len(m) {
		return infra.NewErrorStack(fmt.Sprintf("[graph] coloring covers %d of %d vertices", len(c.ColorOf), len(m)))
	}
	for i, row := range m {
		if c.ColorOf[i] < 0 {
			return infra.NewErrorStack(fmt.Sprintf("[graph] vertex %d is uncolored", i))
		}
		for j := range row {
			if adjacent(m, i, j) && c.ColorOf[i] == c.ColorOf[j] {
				return infra.NewErrorStack(fmt.Sprintf("[graph] adjacent vertices %d and %d share color %d", i, j, c.ColorOf[i]))
			}
		}
	}
	return nil
}

// adjacent reads an entry in either direction as an undirected edge.
func adjacent(m Matrix, u, v int) bool {
	return u != v && (m[u][v] == 1 || m[v][u] == 1)
}

// restrictedDegree counts the neighbours of v inside set.
func restrictedDegree(m Matrix, v int, set []bool) int {
	degree := 0
	for u, in := range set {
		if in && adjacent(m, v, u) {
			degree++
		}
	}
	return degree
}

// ColorGraph colors the undirected graph m by Recursive Largest First.
// A one-sided entry m[u][v] == 1 still joins u and v.
// Each class is seeded with the uncolored vertex of largest degree among
// uncolored vertices, then grown with the admissible vertex having the
// most neighbours in the forbidden set. Ties go to the lowest index.
func ColorGraph(m Matrix) (Coloring, error) {
	if err := ValidateAdjacency(m); err != nil {
		return Coloring{}, err
	}

	n := m.Order()
	coloring := Coloring{
		ColorOf: lo.Times(n, func(int) int { return -1 }),
	}
	uncolored := lo.Times(n, func(int) bool { return true })
	remaining := n
	pick := func(candidates []int, set []bool) int {
		best, bestDegree := -1, -1
		for _, v := range candidates {
			if d := restrictedDegree(m, v, set); d > bestDegree {
				best, bestDegree = v, d
			}
		}
		return best
	}

	for color := 0; remaining > 0; color++ {
		class := ColorClass{Color: color}
		forbidden := make([]bool, n)
		assign := func(v int) {
			coloring.ColorOf[v] = color
			class.Vertices = append(class.Vertices, v)
			uncolored[v] = false
			remaining--
			for u := range m[v] {
				if adjacent(m, v, u) {
					forbidden[u] = true
				}
			}
		}

		seeds := lo.Filter(lo.Range(n), func(v int, _ int) bool {
			return uncolored[v]
		})
		assign(pick(seeds, uncolored))
		for {
			admissible := lo.Filter(lo.Range(n), func(v int, _ int) bool {
				return uncolored[v] && !forbidden[v]
			})
			if len(admissible) == 0 {
				break
			}
			assign(pick(admissible, forbidden))
		}
		coloring.Classes = append(coloring.Classes, class)
	}
	return coloring, nil
}
