package barchart

import (
	"math"
	"strings"
)

// labelRotation is the fixed label rotation in degrees; rotated labels read
// bottom-up.
const labelRotation = -90.0

// labelTransform assembles the SVG transform that moves a measured label
// box onto its target center:
//
//	translate(tx ty) [scale(s) ] [rotate(-90 cx cy) ]
//
// SVG applies the rightmost transform first, so the label is rotated about
// its own original center, then scaled about the origin, then translated so
// the rotated-and-scaled center lands on the target. The translation must
// therefore be computed from the pre-rotation box center, scaled.
func labelTransform(boxCenter, target Point, scale float64, rotate bool) string {
	scaled := Scale(scale, scale).TransformPoint(boxCenter)
	var sb strings.Builder
	sb.WriteString("translate(")
	sb.WriteString(num(target.X - scaled.X))
	sb.WriteString(" ")
	sb.WriteString(num(target.Y - scaled.Y))
	sb.WriteString(")")
	if scale != 1 {
		sb.WriteString(" scale(")
		sb.WriteString(num(scale))
		sb.WriteString(")")
	}
	if rotate {
		sb.WriteString(" rotate(")
		sb.WriteString(num(labelRotation))
		sb.WriteString(" ")
		sb.WriteString(num(boxCenter.X))
		sb.WriteString(" ")
		sb.WriteString(num(boxCenter.Y))
		sb.WriteString(")")
	}
	return sb.String()
}

// labelMatrix returns the same transform as a Matrix, used by tests to
// check that the composed transform maps the box center onto the target.
func labelMatrix(boxCenter, target Point, scale float64, rotate bool) Matrix {
	m := Translate(target.X-boxCenter.X, target.Y-boxCenter.Y).
		Multiply(ScaleAbout(scale, boxCenter))
	if rotate {
		m = m.Multiply(RotateAbout(labelRotation*math.Pi/180, boxCenter))
	}
	return m
}
