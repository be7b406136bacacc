package barchart

import (
	"strings"

	"github.com/lucasb-eyer/go-colorful"
)

// Style holds the resolved visual styling for one bar, ready to be applied
// to an already-built element by the rendering collaborator.
type Style struct {
	FillColor string
	Opacity   float64
	LineColor string
	LineWidth float64
	// DashArray is the SVG stroke-dasharray value; empty means solid.
	DashArray string
}

// Marker styling defaults.
const (
	defaultFillColor = "#636efa"
	defaultLineColor = "#444444"
	defaultDash      = "solid"
)

var dashNames = []string{"solid", "dot", "dash", "longdash", "dashdot", "longdashdot"}

// resolveStyle collects the per-bar marker styling through the attribute
// accessors, so invalid values fall back to their defaults rather than
// failing.
func resolveStyle(t *Trace, i int) Style {
	lw := Number(t.LineWidth, i, defaultLineWidth)
	return Style{
		FillColor: Color(t.MarkerColor, i, defaultFillColor),
		Opacity:   NumberIn(t.MarkerOpacity, i, 0, 1, defaultOpacity),
		LineColor: Color(t.LineColor, i, defaultLineColor),
		LineWidth: lw,
		DashArray: DashArray(Enum(t.LineDash, i, dashNames, defaultDash), lw),
	}
}

// DashArray converts a named dash style to a stroke-dasharray value scaled
// by line width. Dash segments never drop below a 3px base so patterns stay
// legible at thin widths.
func DashArray(dash string, lineWidth float64) string {
	lw := max(lineWidth, 3)
	px := func(f float64) string { return num(f*lw) + "px" }
	switch dash {
	case "dot":
		return px(1) + "," + px(1)
	case "dash":
		return px(3) + "," + px(3)
	case "longdash":
		return px(5) + "," + px(5)
	case "dashdot":
		return px(3) + "," + px(1) + "," + px(1) + "," + px(1)
	case "longdashdot":
		return px(5) + "," + px(2) + "," + px(1) + "," + px(2)
	default:
		return ""
	}
}

// Inside-label contrast colors, picked against the bar fill lightness.
const (
	contrastDark  = "#2a3f5f"
	contrastLight = "#ffffff"
)

// contrastColor picks a label color that reads against the given fill.
// Light fills get dark text and vice versa; unparseable fills get the dark
// default since the default fill palette is light.
func contrastColor(fill string) string {
	if !strings.HasPrefix(fill, "#") {
		return contrastDark
	}
	c, err := colorful.Hex(fill)
	if err != nil {
		return contrastDark
	}
	l, _, _ := c.Lab()
	if l > 0.5 {
		return contrastDark
	}
	return contrastLight
}
