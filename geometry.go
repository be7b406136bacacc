package barchart

import "math"

var nan = math.NaN()

// Per-bar styling defaults used by geometry fixups and the style applicator.
const (
	defaultOpacity   = 1.0
	defaultLineWidth = 0.0
)

// computeGeometry fills t.bars and t.valid from the trace's data-space
// extents. For vertical bars the position axis maps to pixel X and the size
// axis to pixel Y; horizontal bars swap the roles. Malformed geometry is
// not an error here: the bar is marked invalid and skipped downstream.
func computeGeometry(t *Trace, cfg Config, pos, size Mapper) {
	n := t.Len()
	t.bars = make([]Bar, n)
	t.valid = make([]bool, n)

	for i := 0; i < n; i++ {
		p0 := t.P[i] + Number(t.POffset, i, 0)
		w := 1.0
		if i < len(t.W) {
			w = t.W[i]
		}
		var b float64
		if i < len(t.B) {
			b = t.B[i]
		}
		s := t.value(i)

		a0 := pos.Map(p0)
		a1 := pos.Map(p0 + w)
		v0 := size.Map(b)
		v1 := size.Map(b + s)

		var bar Bar
		if t.Orientation == Horizontal {
			bar = Bar{X0: v0, Y0: a0, X1: v1, Y1: a1}
		} else {
			bar = Bar{X0: a0, Y0: v0, X1: a1, Y1: v1}
		}

		if !cfg.Static {
			lw := Number(t.LineWidth, i, defaultLineWidth)
			op := NumberIn(t.MarkerOpacity, i, 0, 1, defaultOpacity)
			bar.X0, bar.X1, bar.Y0, bar.Y1 = fixPixels(bar.X0, bar.X1, bar.Y0, bar.Y1, lw, op)
		}

		bar.Ct = Pt((bar.X0+bar.X1)/2, (bar.Y0+bar.Y1)/2)
		t.bars[i] = bar
		t.valid[i] = validGeometry(bar)
		if !t.valid[i] {
			Logger().Debug("skipping degenerate bar", "index", i, "x0", bar.X0, "x1", bar.X1, "y0", bar.Y0, "y1", bar.Y1)
		}
	}
}

// validGeometry reports whether the bar has finite, non-degenerate corners.
func validGeometry(b Bar) bool {
	for _, v := range [4]float64{b.X0, b.Y0, b.X1, b.Y1} {
		if math.IsNaN(v) || math.IsInf(v, 0) {
			return false
		}
	}
	return b.X0 != b.X1 && b.Y0 != b.Y1
}

// fixPixels snaps bar corners for crisp interactive rendering. With partial
// opacity or a visible outline every coordinate rounds to the integer grid,
// offset by half a pixel when the line width is odd so strokes stay sharp.
// Fully opaque unstroked bars instead get each coordinate pair expanded
// outward when the bar is thinner than 2px, so it cannot vanish.
func fixPixels(x0, x1, y0, y1, lw, opacity float64) (fx0, fx1, fy0, fy1 float64) {
	roundWithLine := func(v float64) float64 {
		if math.Mod(lw, 2) != 0 {
			return math.Round(v-0.5) + 0.5
		}
		return math.Round(v)
	}
	expandToVisible := func(v, vc float64) float64 {
		if math.Abs(v-vc) >= 2 {
			return roundWithLine(v)
		}
		if v > vc {
			return math.Ceil(v)
		}
		return math.Floor(v)
	}

	if opacity < 1 || lw > 0.01 {
		return roundWithLine(x0), roundWithLine(x1), roundWithLine(y0), roundWithLine(y1)
	}
	return expandToVisible(x0, x1), expandToVisible(x1, x0),
		expandToVisible(y0, y1), expandToVisible(y1, y0)
}
