package barchart

import (
	"math"
	"sort"
)

// Arrange fills the data-space width, baseline and position offset of every
// trace according to the bar mode, bargap and bargroupgap. Callers that
// compute their own W, B and POffset can skip it and go straight to
// [Layout].
//
// The slot width is the smallest distance between distinct position values
// across all traces (1 when there are fewer than two positions). Group mode
// divides each slot between the traces; stack, relative and overlay modes
// give every trace the full slot. Stack mode accumulates signed sizes into
// baselines per position key; relative mode accumulates positive and
// negative sizes separately so mixed-sign stacks grow both ways.
func Arrange(traces []*Trace, cfg Config) {
	cfg = cfg.withDefaults()
	slot := slotWidth(traces)

	avail := slot * (1 - cfg.BarGap)
	switch cfg.BarMode {
	case ModeGroup:
		n := float64(len(traces))
		span := avail / n
		barw := span * (1 - cfg.BarGroupGap)
		for k, t := range traces {
			fillWidths(t, barw)
			off := -avail/2 + float64(k)*span + (span-barw)/2
			t.POffset = Fixed(off)
			if t.B == nil {
				t.B = make([]float64, t.Len())
			}
		}
	case ModeStack, ModeRelative:
		for _, t := range traces {
			fillWidths(t, avail)
			t.POffset = Fixed(-avail / 2)
		}
		accumulateBaselines(traces, cfg.BarMode)
	default: // ModeOverlay
		for _, t := range traces {
			fillWidths(t, avail)
			t.POffset = Fixed(-avail / 2)
			if t.B == nil {
				t.B = make([]float64, t.Len())
			}
		}
	}
}

// slotWidth finds the minimal spacing between distinct position values.
func slotWidth(traces []*Trace) float64 {
	var ps []float64
	for _, t := range traces {
		ps = append(ps, t.P...)
	}
	sort.Float64s(ps)
	d := math.Inf(1)
	for i := 1; i < len(ps); i++ {
		if gap := ps[i] - ps[i-1]; gap > 0 {
			d = min(d, gap)
		}
	}
	if math.IsInf(d, 1) {
		return 1
	}
	return d
}

func fillWidths(t *Trace, w float64) {
	t.W = make([]float64, t.Len())
	for i := range t.W {
		t.W[i] = w
	}
}

// accumulateBaselines assigns each bar's baseline from the running totals
// of the traces before it at the same position key. Missing values leave
// the totals untouched and keep the current base as their baseline.
func accumulateBaselines(traces []*Trace, mode BarMode) {
	sums := make(map[float64]float64)
	pos := make(map[float64]float64)
	neg := make(map[float64]float64)

	for _, t := range traces {
		t.B = make([]float64, t.Len())
		for i := 0; i < t.Len(); i++ {
			key := t.P[i]
			v := t.value(i)
			if mode == ModeStack {
				t.B[i] = sums[key]
				if !math.IsNaN(v) {
					sums[key] += v
				}
				continue
			}
			// Relative: separate runs per sign.
			if math.IsNaN(v) || v >= 0 {
				t.B[i] = pos[key]
				if !math.IsNaN(v) {
					pos[key] += v
				}
			} else {
				t.B[i] = neg[key]
				neg[key] += v
			}
		}
	}
}
