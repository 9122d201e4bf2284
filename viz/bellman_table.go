package viz

import (
	"math"
	"strconv"
	"strings"

	"github.com/benz9527/xalgo/lib/graph"
)

type TableRow struct {
	Label string
	Cells []string
}

type BellmanTable struct {
	Header        []string
	Rows          []TableRow
	NegativeCycle bool
}

// NewBellmanTable renders the λ^k table of a Bellman-Ford run. The init
// row shows every distance with the source marked "(*)", intermediate
// rows only show the improved distances, and the closing "(fin)" row
// shows the final distances.
func NewBellmanTable(res *graph.Result) BellmanTable {
	table := BellmanTable{}
	if res == nil || len(res.History) == 0 {
		return table
	}
	table.NegativeCycle = res.NegativeCycleDetected

	final := res.Final()
	n := len(final.Dist)
	table.Header = make([]string, 0, n+1)
	table.Header = append(table.Header, "k")
	for i := 0; i < n; i++ {
		table.Header = append(table.Header, "λk("+strings.ToLower(IndexToLabel(i))+")")
	}

	prev := make([]float64, n)
	for i := range prev {
		prev[i] = math.Inf(1)
	}
	for _, snap := range res.History {
		if snap.Pass == final.Pass && snap.Pass != 0 {
			break
		}
		row := TableRow{Cells: make([]string, 0, n)}
		if snap.Pass == 0 {
			row.Label = "0 (init)"
		} else {
			row.Label = strconv.Itoa(snap.Pass)
		}
		for v, d := range snap.Dist {
			cell := ""
			switch {
			case snap.Pass == 0 && d == 0:
				cell = "0 (*)"
			case snap.Pass == 0:
				cell = formatNumber(d)
			case !math.IsInf(d, 1) && d < prev[v]:
				cell = formatNumber(d) + " (*)"
			default:
			}
			row.Cells = append(row.Cells, cell)
		}
		table.Rows = append(table.Rows, row)
		copy(prev, snap.Dist)
	}

	fin := TableRow{
		Label: strconv.Itoa(final.Pass) + " (fin)",
		Cells: make([]string, 0, n),
	}
	for _, d := range final.Dist {
		fin.Cells = append(fin.Cells, formatNumber(d))
	}
	table.Rows = append(table.Rows, fin)
	return table
}
