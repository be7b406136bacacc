package barchart

import (
	"strconv"
	"strings"
)

// cornerStep is one entry of the corner traversal table: which pixel corner
// to visit (selecting the x0/x1 and y0/y1 ends) and which configured radius
// applies there.
type cornerStep struct {
	xEnd, yEnd int // 0 selects X0/Y0, 1 selects X1/Y1
	rad        int // index into the [bl, br, tr, tl] radius array
}

const (
	radBL = iota
	radBR
	radTR
	radTL
)

// cornerTable maps orientation to the corner traversal order, always
// bottom-left, bottom-right, top-right, top-left in data-semantic terms.
// For vertical bars Y0 is the baseline (bottom) edge; for horizontal bars
// X0 is the baseline (left) edge and Y0 the position-start (top) edge.
// The sign pattern of (X1-X0, Y1-Y0) is not part of the table: arc sweep
// and edge directions are derived from the actual pixel coordinates, which
// collapses the stacked and non-stacked growth-direction cases into one
// rule while producing identical shapes.
var cornerTable = map[Orientation][4]cornerStep{
	Vertical: {
		{0, 0, radBL},
		{1, 0, radBR},
		{1, 1, radTR},
		{0, 1, radTL},
	},
	Horizontal: {
		{0, 1, radBL},
		{1, 1, radBR},
		{1, 0, radTR},
		{0, 0, radTL},
	},
}

// rectPath emits the minimal sharp-cornered rectangle path: a moveto, three
// sides as V/H line commands and a closepath. The fourth side comes from Z.
func rectPath(b Bar) string {
	var sb strings.Builder
	sb.WriteString("M")
	sb.WriteString(num(b.X0))
	sb.WriteString(",")
	sb.WriteString(num(b.Y0))
	sb.WriteString("V")
	sb.WriteString(num(b.Y1))
	sb.WriteString("H")
	sb.WriteString(num(b.X1))
	sb.WriteString("V")
	sb.WriteString(num(b.Y0))
	sb.WriteString("Z")
	return sb.String()
}

// roundedRectPath synthesizes an SVG path for the bar with the given
// effective per-corner pixel radii. All-zero radii take the plain rectangle
// fast path, which also avoids float artifacts at zero radius. Otherwise
// the path starts at the approach point of the bottom-left corner and walks
// the traversal table: a 90 degree arc into each rounded corner (large-arc
// 0, sweep chosen for convex rounding) and straight H/V edges between
// corners. A zero radius corner degenerates into the shared edge endpoint
// and renders as a sharp join with no gap.
func roundedRectPath(b Bar, rad CornerRadii, orient Orientation) string {
	if rad.allZero() {
		return rectPath(b)
	}

	steps, ok := cornerTable[orient]
	if !ok {
		steps = cornerTable[Vertical]
	}
	xs := [2]float64{b.X0, b.X1}
	ys := [2]float64{b.Y0, b.Y1}
	radii := [4]float64{rad.BottomLeft, rad.BottomRight, rad.TopRight, rad.TopLeft}

	var pts [4]Point
	var rs [4]float64
	for k, st := range steps {
		pts[k] = Pt(xs[st.xEnd], ys[st.yEnd])
		rs[k] = max(radii[st.rad], 0)
	}

	var sb strings.Builder
	dirIn := edgeDir(pts[3], pts[0])
	cur := pts[0].Sub(dirIn.Mul(rs[0]))
	sb.WriteString("M")
	sb.WriteString(num(cur.X))
	sb.WriteString(",")
	sb.WriteString(num(cur.Y))

	for k := 0; k < 4; k++ {
		next := pts[(k+1)%4]
		dIn := edgeDir(pts[(k+3)%4], pts[k])
		dOut := edgeDir(pts[k], next)
		if rs[k] > 0 {
			dep := pts[k].Add(dOut.Mul(rs[k]))
			sweep := 0
			if dIn.Cross(dOut) > 0 {
				sweep = 1
			}
			sb.WriteString("A")
			sb.WriteString(num(rs[k]))
			sb.WriteString(",")
			sb.WriteString(num(rs[k]))
			sb.WriteString(" 0 0 ")
			sb.WriteString(strconv.Itoa(sweep))
			sb.WriteString(" ")
			sb.WriteString(num(dep.X))
			sb.WriteString(",")
			sb.WriteString(num(dep.Y))
			cur = dep
		}
		app := next.Sub(dOut.Mul(rs[(k+1)%4]))
		writeAxisLine(&sb, cur, app)
		cur = app
	}
	sb.WriteString("Z")
	return sb.String()
}

// edgeDir returns the unit axis direction from a to b. Edges are always
// axis-aligned, so exactly one component is nonzero.
func edgeDir(a, b Point) Point {
	return Pt(sign(b.X-a.X), sign(b.Y-a.Y))
}

// writeAxisLine emits an H or V command from cur to app, or nothing when
// the points coincide.
func writeAxisLine(sb *strings.Builder, cur, app Point) {
	switch {
	case app.X != cur.X:
		sb.WriteString("H")
		sb.WriteString(num(app.X))
	case app.Y != cur.Y:
		sb.WriteString("V")
		sb.WriteString(num(app.Y))
	}
}

// num formats a coordinate with the shortest decimal representation that
// round-trips, so integer-snapped coordinates stay integers in the output.
func num(v float64) string {
	return strconv.FormatFloat(v, 'f', -1, 64)
}
