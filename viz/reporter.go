package viz

import (
	"context"
	"strings"

	"go.uber.org/zap"

	"github.com/benz9527/xalgo/lib/graph"
	"github.com/benz9527/xalgo/lib/infra"
	"github.com/benz9527/xalgo/lib/quicksort"
	"github.com/benz9527/xalgo/lib/tree"
	"github.com/benz9527/xalgo/lib/xlog"
)

// Reporter writes the render records as structured logs, one entry per
// animation step, so a front end can replay them from the log stream.
type Reporter struct {
	logger xlog.XLogger
}

func NewReporter(logger xlog.XLogger) *Reporter {
	if logger == nil {
		logger = xlog.NewXLogger(xlog.WithXLoggerLevel(xlog.LogLevelInfo))
	}
	return &Reporter{
		logger: logger.Named("viz"),
	}
}

// ReportRBSteps logs a red-black tree step trace produced by op on key.
func ReportRBSteps[K infra.OrderedKey](ctx context.Context, r *Reporter, op string, key K, steps []tree.Step[K]) {
	for i, s := range steps {
		fields := []zap.Field{
			zap.String("op", op),
			zap.Any("key", key),
			zap.Int("step", i),
			zap.Stringer("kind", s.Kind()),
		}
		if es, ok := s.(tree.ErrorStep[K]); ok {
			r.logger.ErrorContext(ctx, es.Reason, s.Description(), fields...)
			continue
		}
		r.logger.DebugContext(ctx, s.Description(), fields...)
	}
}

func ReportLayout[K infra.OrderedKey](ctx context.Context, r *Reporter, layout TreeLayout[K]) {
	for _, n := range layout.Nodes {
		r.logger.DebugContext(ctx, n.Label,
			zap.Int("x", n.X),
			zap.Int("y", n.Y),
		)
	}
}

func ReportQuicksort[T infra.OrderedKey](ctx context.Context, r *Reporter, trace *quicksort.Trace[T]) {
	dag := QuicksortGraph(trace)
	for _, n := range dag.Nodes {
		r.logger.DebugContext(ctx, n.Label,
			zap.Uint64("id", n.ID),
			zap.Stringer("phase", n.Phase),
			zap.Int("level", n.Level),
			zap.Stringer("strategy", dag.Strategy),
		)
	}
	if trace != nil && trace.Recomposition != nil {
		r.logger.InfoContext(ctx, "sorted "+joinValues(trace.Recomposition.Sorted),
			zap.Int("records", len(dag.Nodes)),
		)
	}
}

func (r *Reporter) ReportColoring(ctx context.Context, coloring graph.Coloring) {
	for _, entry := range ColorLegend(coloring) {
		r.logger.DebugContext(ctx, entry.Text, zap.Int("class", entry.Class))
	}
	r.logger.InfoContext(ctx, "coloring complete",
		zap.Int("chromaticNumber", coloring.ChromaticNumber()),
	)
}

func (r *Reporter) ReportBellman(ctx context.Context, res *graph.Result) {
	table := NewBellmanTable(res)
	for _, row := range table.Rows {
		r.logger.DebugContext(ctx, row.Label, zap.String("cells", strings.Join(row.Cells, " | ")))
	}
	if table.NegativeCycle {
		r.logger.ErrorContext(ctx, graph.ErrNegativeCycle, "shortest paths are undefined")
		return
	}
	if res != nil {
		r.logger.InfoContext(ctx, "shortest paths from "+IndexToLabel(res.Source)+" calculated",
			zap.Int("lastUpdatingPass", res.LastUpdatingPass),
		)
	}
}
