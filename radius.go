package barchart

import "math"

// sharedMaxRadius computes the one pass-wide upper bound on corner radii:
// the smallest half-extent over every rounding-eligible bar. Using a single
// shared bound keeps the absolute rounding visually consistent across bars
// and guarantees no corner overflows its own bar. Returns 0 when no bar is
// eligible.
func sharedMaxRadius(traces []*Trace, stacked bool) float64 {
	r := math.Inf(1)
	found := false
	for _, t := range traces {
		for i, bar := range t.bars {
			if !t.valid[i] || !outermost(t, i, stacked) {
				continue
			}
			cand := min(math.Abs(bar.X0-bar.X1), math.Abs(bar.Y0-bar.Y1)) / 2
			r = min(r, cand)
			found = true
		}
	}
	if !found {
		return 0
	}
	return r
}

// effectiveCorners scales the trace's roundness fractions by the shared
// radius and forces stack-interior corners to 0 so interior seams render as
// sharp joins. For vertical bars the top/bottom pairs are the outward and
// inward pairs; for horizontal bars the right/left pairs take those roles.
func effectiveCorners(t *Trace, i int, r float64, stacked bool) CornerRadii {
	f := t.Corner.clamped()
	c := CornerRadii{
		BottomLeft:  f.BottomLeft * r,
		BottomRight: f.BottomRight * r,
		TopLeft:     f.TopLeft * r,
		TopRight:    f.TopRight * r,
	}
	if !stacked || i >= len(t.stack.Top) {
		return c
	}
	top, bottom := t.stack.Top[i], t.stack.Bottom[i]
	if t.Orientation == Horizontal {
		if !top {
			c.TopRight, c.BottomRight = 0, 0
		}
		if !bottom {
			c.TopLeft, c.BottomLeft = 0, 0
		}
		return c
	}
	if !top {
		c.TopLeft, c.TopRight = 0, 0
	}
	if !bottom {
		c.BottomLeft, c.BottomRight = 0, 0
	}
	return c
}
