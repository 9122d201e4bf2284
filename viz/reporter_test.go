package viz

import (
	"context"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/benz9527/xalgo/lib/graph"
	"github.com/benz9527/xalgo/lib/quicksort"
	"github.com/benz9527/xalgo/lib/tree"
	"github.com/benz9527/xalgo/lib/xlog"
)

func newTestReporter() (*Reporter, *xlog.MemWriter) {
	out := &xlog.MemWriter{}
	logger := xlog.NewXLogger(
		xlog.WithXLoggerLevel(xlog.LogLevelDebug),
		xlog.WithXLoggerMemWriter(out),
	)
	return NewReporter(logger), out
}

func TestReportRBSteps(t *testing.T) {
	r, out := newTestReporter()
	ctx := context.Background()
	rb := tree.NewRBTree[int]()

	steps := rb.Insert(52)
	ReportRBSteps(ctx, r, "insert", 52, steps)
	lines := out.Lines()
	require.Len(t, lines, len(steps))
	require.Contains(t, lines[0], "Creating new node with value 52")
	require.Contains(t, lines[0], `"component":"viz"`)

	out.Reset()
	steps = rb.Insert(52)
	ReportRBSteps(ctx, r, "insert", 52, steps)
	lines = out.Lines()
	require.Len(t, lines, len(steps))
	last := lines[len(lines)-1]
	require.Contains(t, last, `"lvl":"ERROR"`)
	require.Contains(t, last, "Value 52 already exists in tree")
}

func TestReportQuicksortColoringBellman(t *testing.T) {
	r, out := newTestReporter()
	ctx := context.Background()

	trace, err := quicksort.BuildTrace([]int{3, 1, 2}, quicksort.PivotFirst)
	require.NoError(t, err)
	ReportQuicksort(ctx, r, trace)
	lines := out.Lines()
	require.Len(t, lines, len(trace.Records)+1)
	require.Contains(t, lines[len(lines)-1], "sorted [1, 2, 3]")

	out.Reset()
	coloring, err := graph.ColorGraph(graph.Matrix{{0, 1}, {1, 0}})
	require.NoError(t, err)
	r.ReportColoring(ctx, coloring)
	lines = out.Lines()
	require.Len(t, lines, 3)
	require.Contains(t, lines[2], `"chromaticNumber":2`)

	out.Reset()
	res, err := graph.ShortestPaths(graph.Matrix{{0, 1, 0}, {0, 0, -1}, {-1, 0, 0}}, 0)
	require.NoError(t, err)
	r.ReportBellman(ctx, res)
	lines = out.Lines()
	require.Contains(t, lines[len(lines)-1], "shortest paths are undefined")

	out.Reset()
	layout := LayoutBST(tree.NewAVLTree[int]())
	ReportLayout(ctx, r, layout)
	require.Empty(t, out.Lines())
}
