package barchart

import (
	"golang.org/x/sync/errgroup"
)

// BarResult is the layout output for one bar. An empty Path means the bar
// was skipped for degenerate geometry; a nil Label means no text is shown.
type BarResult struct {
	Path  string
	Label *Label
	Ct    Point
	Style Style
}

// TraceResult groups the bar results of one trace, in bar order.
type TraceResult struct {
	Bars []BarResult
}

// Layout runs one render pass over the traces: pixel geometry with
// crispness fixups, stack adjacency, the pass-wide shared corner radius,
// then per-bar path and label synthesis.
//
// The two cross-bar aggregates are finalized before any per-bar synthesis
// starts; after that each bar is independent, so synthesis fans out across
// traces under an errgroup and results are written into pre-sized slices by
// index. Output is deterministic: running the pass twice on identical input
// produces byte-identical strings.
//
// The measurer may be nil when no trace carries text. It must be safe for
// concurrent use.
func Layout(traces []*Trace, cfg Config, pos, size Mapper, m Measurer) ([]TraceResult, error) {
	cfg = cfg.withDefaults()

	for _, t := range traces {
		computeGeometry(t, cfg, pos, size)
	}
	stacked := cfg.stacked()
	if stacked {
		analyzeStacks(traces)
	}
	r := sharedMaxRadius(traces, stacked)
	Logger().Debug("render pass aggregates", "traces", len(traces), "sharedMaxRadius", r, "stacked", stacked)

	results := make([]TraceResult, len(traces))
	var g errgroup.Group
	for ti, t := range traces {
		t := t
		results[ti].Bars = make([]BarResult, t.Len())
		out := results[ti].Bars
		g.Go(func() error {
			for i := 0; i < t.Len(); i++ {
				if !t.valid[i] {
					continue
				}
				bar := t.bars[i]
				style := resolveStyle(t, i)
				corners := effectiveCorners(t, i, r, stacked)
				res := BarResult{
					Path:  roundedRectPath(bar, corners, t.Orientation),
					Ct:    bar.Ct,
					Style: style,
				}
				if label, ok := placeLabel(t, i, bar, cfg, m, style.FillColor); ok {
					res.Label = &label
				}
				out[i] = res
			}
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}
	return results, nil
}
