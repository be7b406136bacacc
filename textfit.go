package barchart

import "math"

// textPad is the fixed inset, in pixels, between a bar edge and an inside
// label, applied only when the bar can absorb it on both axes.
const textPad = 3.0

// TextBox is the measured bounding box of a rendered label, produced by a
// [Measurer] and consumed immediately by label placement.
type TextBox struct {
	Left, Right, Top, Bottom float64
	Width, Height            float64
}

// Center returns the box center in its own coordinate space.
func (b TextBox) Center() Point {
	return Pt((b.Left+b.Right)/2, (b.Top+b.Bottom)/2)
}

// Measurer reports the bounding box a label would occupy when rendered
// with the given font. Implementations live outside the layout core; the
// textmeasure subpackage provides one.
type Measurer interface {
	Measure(text string, font Font) TextBox
}

// fitDecision is the outcome of fitting a label into or beside a bar.
type fitDecision struct {
	rotate bool
	scale  float64
	target Point
}

// autoFitsInside decides whether auto-positioned text may stay inside the
// bar: it must fit unrotated, fit rotated 90 degrees, or fit after uniform
// shrink. The shrink test compares the available extent along the bar's
// long axis against the text extent scaled to fill the cross axis, so it
// depends on orientation.
func autoFitsInside(bar Bar, box TextBox, orient Orientation) bool {
	lx := math.Abs(bar.X1 - bar.X0)
	ly := math.Abs(bar.Y1 - bar.Y0)
	w, h := box.Width, box.Height

	fitsInside := w <= lx && h <= ly
	fitsRotated := w <= ly && h <= lx
	var fitsShrunk bool
	if orient == Horizontal {
		fitsShrunk = lx >= w*(ly/h)
	} else {
		fitsShrunk = ly >= h*(lx/w)
	}
	return fitsInside || fitsRotated || fitsShrunk
}

// fitInside computes the rotation, scale and target center for an inside
// label. The usable box is the bar inset by textPad on each side when the
// bar is large enough to absorb the inset. Text that fits unrotated is
// left alone; text that fits only when width and height swap is rotated;
// otherwise the orientation whose aspect ratio matches the bar's wins, and
// constrained styling shrinks uniformly by the minimum ratio needed to fit
// (unconstrained text keeps scale 1 and may overflow).
func fitInside(bar Bar, box TextBox, orient Orientation, constrained bool) fitDecision {
	lx := math.Abs(bar.X1 - bar.X0)
	ly := math.Abs(bar.Y1 - bar.Y0)
	pad := 0.0
	if lx > 2*textPad && ly > 2*textPad {
		pad = textPad
	}
	ax := lx - 2*pad
	ay := ly - 2*pad
	w, h := box.Width, box.Height

	var d fitDecision
	d.scale = 1
	switch {
	case w <= ax && h <= ay:
		// Fits as measured.
	case h <= ax && w <= ay:
		d.rotate = true
	default:
		d.rotate = (ly > lx) == (w > h)
		if constrained {
			tw, th := w, h
			if d.rotate {
				tw, th = h, w
			}
			d.scale = min(1, ax/tw, ay/th)
		}
	}

	pw, ph := d.scale*w, d.scale*h
	if d.rotate {
		pw, ph = ph, pw
	}
	if orient == Horizontal {
		dir := sign(bar.X0 - bar.X1)
		d.target = Pt(bar.X1+dir*(pad+pw/2), (bar.Y0+bar.Y1)/2)
	} else {
		dir := sign(bar.Y0 - bar.Y1)
		d.target = Pt((bar.X0+bar.X1)/2, bar.Y1+dir*(pad+ph/2))
	}
	return d
}

// fitOutside computes the scale and target center for an outside label.
// Outside labels are never rejected or rotated; constrained styling shrinks
// them so the cross-axis extent stays within the bar's cross-axis extent.
// The anchor sits flush against the bar's far edge, offset outward.
func fitOutside(bar Bar, box TextBox, orient Orientation, constrained bool) fitDecision {
	lx := math.Abs(bar.X1 - bar.X0)
	ly := math.Abs(bar.Y1 - bar.Y0)
	w, h := box.Width, box.Height

	d := fitDecision{scale: 1}
	if constrained {
		if orient == Horizontal {
			if h > ly {
				d.scale = ly / h
			}
		} else {
			if w > lx {
				d.scale = lx / w
			}
		}
	}

	pw, ph := d.scale*w, d.scale*h
	if orient == Horizontal {
		dir := sign(bar.X1 - bar.X0)
		d.target = Pt(bar.X1+dir*(textPad+pw/2), (bar.Y0+bar.Y1)/2)
	} else {
		dir := sign(bar.Y1 - bar.Y0)
		d.target = Pt((bar.X0+bar.X1)/2, bar.Y1+dir*(textPad+ph/2))
	}
	return d
}
