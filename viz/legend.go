package viz

import (
	"fmt"
	"strings"

	"github.com/samber/lo"

	"github.com/benz9527/xalgo/lib/graph"
)

type LegendEntry struct {
	// Class is 1-based for display.
	Class    int
	Vertices []string
	Text     string
}

func ColorLegend(coloring graph.Coloring) []LegendEntry {
	return lo.Map(coloring.Classes, func(class graph.ColorClass, _ int) LegendEntry {
		labels := lo.Map(class.Vertices, func(v int, _ int) string {
			return IndexToLabel(v)
		})
		return LegendEntry{
			Class:    class.Color + 1,
			Vertices: labels,
			Text:     fmt.Sprintf("Class %d: Vertices %s", class.Color+1, strings.Join(labels, ", ")),
		}
	})
}
