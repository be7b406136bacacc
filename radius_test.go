package barchart

import (
	"math"
	"testing"
)

func traceWithBars(bars []Bar) *Trace {
	t := &Trace{Orientation: Vertical}
	t.bars = bars
	t.valid = make([]bool, len(bars))
	for i, b := range bars {
		t.P = append(t.P, float64(i))
		t.S = append(t.S, 1)
		t.valid[i] = validGeometry(b)
	}
	return t
}

func TestSharedMaxRadius(t *testing.T) {
	tests := []struct {
		name string
		bars []Bar
		want float64
	}{
		{
			"single bar half of shorter edge",
			[]Bar{{X0: 0, Y0: 40, X1: 20, Y1: 0}},
			10,
		},
		{
			"minimum over all bars",
			[]Bar{
				{X0: 0, Y0: 40, X1: 20, Y1: 0},
				{X0: 30, Y0: 10, X1: 60, Y1: 0},
			},
			5,
		},
		{
			"degenerate bar ignored",
			[]Bar{
				{X0: 0, Y0: 40, X1: 20, Y1: 0},
				{X0: 30, Y0: 0, X1: 30, Y1: 10},
			},
			10,
		},
		{
			"no bars",
			nil,
			0,
		},
		{
			"only degenerate bars",
			[]Bar{{X0: 1, Y0: 0, X1: 1, Y1: 5}},
			0,
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := sharedMaxRadius([]*Trace{traceWithBars(tt.bars)}, false)
			if math.Abs(got-tt.want) > 1e-12 {
				t.Errorf("sharedMaxRadius() = %v, want %v", got, tt.want)
			}
		})
	}
}

// Shrinking any eligible bar's shorter edge can only shrink the shared
// radius, never grow it.
func TestSharedMaxRadiusMonotone(t *testing.T) {
	fixed := Bar{X0: 0, Y0: 40, X1: 20, Y1: 0}
	prev := math.Inf(1)
	for _, w := range []float64{30, 20, 12, 6, 1} {
		tr := traceWithBars([]Bar{fixed, {X0: 50, Y0: 40, X1: 50 + w, Y1: 0}})
		r := sharedMaxRadius([]*Trace{tr}, false)
		if r > prev {
			t.Errorf("sharedMaxRadius grew from %v to %v when edge shrank to %v", prev, r, w)
		}
		prev = r
	}
}

func TestSharedMaxRadiusStackedEligibility(t *testing.T) {
	tr := traceWithBars([]Bar{{X0: 0, Y0: 40, X1: 20, Y1: 0}})
	tr.stack = StackPosition{Bottom: []bool{false}, Top: []bool{false}}
	if got := sharedMaxRadius([]*Trace{tr}, true); got != 0 {
		t.Errorf("sharedMaxRadius() = %v for interior-only stack, want 0", got)
	}
	tr.stack.Top[0] = true
	if got := sharedMaxRadius([]*Trace{tr}, true); got != 10 {
		t.Errorf("sharedMaxRadius() = %v for top-eligible bar, want 10", got)
	}
}

func TestEffectiveCorners(t *testing.T) {
	const r = 10.0
	base := CornerRadii{BottomLeft: 0.2, BottomRight: 0.4, TopLeft: 0.6, TopRight: 0.8}

	tests := []struct {
		name    string
		orient  Orientation
		top     bool
		bottom  bool
		stacked bool
		want    CornerRadii
	}{
		{"non-stacked keeps all", Vertical, false, false, false, CornerRadii{2, 4, 6, 8}},
		{"vertical interior", Vertical, false, false, true, CornerRadii{0, 0, 0, 0}},
		{"vertical top only", Vertical, true, false, true, CornerRadii{0, 0, 6, 8}},
		{"vertical bottom only", Vertical, false, true, true, CornerRadii{2, 4, 0, 0}},
		{"horizontal outward only", Horizontal, true, false, true, CornerRadii{0, 4, 0, 8}},
		{"horizontal inward only", Horizontal, false, true, true, CornerRadii{2, 0, 6, 0}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tr := &Trace{Orientation: tt.orient, Corner: base}
			tr.stack = StackPosition{Bottom: []bool{tt.bottom}, Top: []bool{tt.top}}
			got := effectiveCorners(tr, 0, r, tt.stacked)
			if got != tt.want {
				t.Errorf("effectiveCorners() = %+v, want %+v", got, tt.want)
			}
		})
	}
}

func TestCornerRadiiClamped(t *testing.T) {
	c := CornerRadii{BottomLeft: -1, BottomRight: 2, TopLeft: math.NaN(), TopRight: 0.5}
	got := c.clamped()
	want := CornerRadii{BottomLeft: 0, BottomRight: 1, TopLeft: 0, TopRight: 0.5}
	if got != want {
		t.Errorf("clamped() = %+v, want %+v", got, want)
	}
}
