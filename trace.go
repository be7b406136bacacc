package barchart

// Orientation selects which axis carries bar positions.
type Orientation string

const (
	// Vertical bars: the position axis is horizontal, bars grow along
	// pixel Y.
	Vertical Orientation = "v"
	// Horizontal bars: the position axis is vertical, bars grow along
	// pixel X.
	Horizontal Orientation = "h"
)

// TextPosition controls where a bar label is placed.
type TextPosition string

const (
	TextInside  TextPosition = "inside"
	TextOutside TextPosition = "outside"
	TextAuto    TextPosition = "auto"
	TextNone    TextPosition = "none"
)

// Font describes a resolved label font.
type Font struct {
	Family string
	Size   float64
	Color  string
}

// DefaultFont is used wherever a trace leaves its fonts unset.
var DefaultFont = Font{Family: "sans-serif", Size: 12, Color: "#444444"}

// merged fills unset fields of f from fallback.
func (f Font) merged(fallback Font) Font {
	if f.Family == "" {
		f.Family = fallback.Family
	}
	if f.Size <= 0 {
		f.Size = fallback.Size
	}
	if f.Color == "" {
		f.Color = fallback.Color
	}
	return f
}

// CornerRadii holds per-corner roundness fractions in [0, 1], named in
// data-semantic terms: for vertical bars "top" is the outward (size) end;
// for horizontal bars "right" is the outward end. The fractions scale the
// pass-wide shared maximum radius.
type CornerRadii struct {
	BottomLeft  float64
	BottomRight float64
	TopLeft     float64
	TopRight    float64
}

// Uniform returns radii with the same fraction on all four corners.
func Uniform(f float64) CornerRadii {
	return CornerRadii{f, f, f, f}
}

// clamped limits every fraction to [0, 1]; invalid values drop to 0.
func (c CornerRadii) clamped() CornerRadii {
	cl := func(v float64) float64 {
		if !(v > 0) { // NaN, zero and negatives
			return 0
		}
		return min(v, 1)
	}
	return CornerRadii{cl(c.BottomLeft), cl(c.BottomRight), cl(c.TopLeft), cl(c.TopRight)}
}

func (c CornerRadii) allZero() bool {
	return c.BottomLeft == 0 && c.BottomRight == 0 && c.TopLeft == 0 && c.TopRight == 0
}

// Bar holds the computed pixel geometry for one datum. All fields are
// recomputed every pass.
type Bar struct {
	// Pixel corners. X0/Y0 is the position-start / baseline corner,
	// X1/Y1 the position-end / outward corner. Either pair may be
	// decreasing when an axis is inverted.
	X0, Y0, X1, Y1 float64

	// Ct is the geometric center, recorded for hit-testing by the caller.
	Ct Point
}

// StackPosition marks, per bar, whether it is the bottom-most or top-most
// occupant of its stack slot. A bar with neither flag set is stack-interior
// and renders with sharp corners.
type StackPosition struct {
	Bottom []bool
	Top    []bool
}

// Trace is one ordered sequence of bars sharing orientation and styling.
type Trace struct {
	Orientation Orientation

	// Per-datum data-space extents. P is the position value, W the slot
	// width, B the baseline and S the signed size. W and B may be left
	// nil and filled in by [Arrange]. A NaN in S marks a missing datum.
	P, W, B, S []float64

	// POffset shifts each bar along the position axis (scalar or
	// per-index), as produced by [Arrange] for grouped layouts.
	POffset Attr[float64]

	// Corner roundness fractions, scaled by the pass-wide shared radius.
	Corner CornerRadii

	// Marker styling.
	MarkerColor   Attr[string]
	MarkerOpacity Attr[float64]
	LineColor     Attr[string]
	LineWidth     Attr[float64]
	LineDash      Attr[string]

	// Labels.
	Text         Attr[string]
	TextPosition Attr[string]
	TextFont     Font
	InsideFont   Font
	OutsideFont  Font

	// Computed per pass.
	bars  []Bar
	valid []bool
	stack StackPosition
}

// Len returns the number of data in the trace.
func (t *Trace) Len() int { return len(t.P) }

// Bars exposes the pixel geometry computed by the last [Layout] call.
func (t *Trace) Bars() []Bar { return t.bars }

// StackPosition exposes the adjacency flags computed by the last [Layout]
// call; both slices are nil for non-stacked passes.
func (t *Trace) StackPosition() StackPosition { return t.stack }

// value returns S[i], treating missing entries as NaN.
func (t *Trace) value(i int) float64 {
	if i < 0 || i >= len(t.S) {
		return nan
	}
	return t.S[i]
}
