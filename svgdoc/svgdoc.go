// Package svgdoc attaches barchart layout results to an SVG document.
// It is the reference implementation of the rendering collaborator: the
// layout engine hands it path and transform strings and it binds them to
// elements via github.com/ajstarks/svgo.
package svgdoc

import (
	"fmt"
	"io"

	svg "github.com/ajstarks/svgo"

	"github.com/vizkit/barchart"
)

// Document is an open SVG document accepting layout results.
type Document struct {
	canvas *svg.SVG
	closed bool
}

// New starts an SVG document of the given pixel size on w.
func New(w io.Writer, width, height int) *Document {
	c := svg.New(w)
	c.Start(width, height)
	return &Document{canvas: c}
}

// AddTrace appends one trace's bars and labels. Bars skipped by the layout
// engine (empty path) produce no elements.
func (d *Document) AddTrace(res barchart.TraceResult) {
	if d.closed {
		return
	}
	d.canvas.Group(`class="bars"`)
	for _, bar := range res.Bars {
		if bar.Path == "" {
			continue
		}
		d.canvas.Path(bar.Path, barStyle(bar.Style))
		if bar.Label != nil {
			d.canvas.Gtransform(bar.Label.Transform)
			d.canvas.Text(0, 0, bar.Label.Text, labelStyle(bar.Label.Font))
			d.canvas.Gend()
		}
	}
	d.canvas.Gend()
}

// Close ends the document. Further Add calls are ignored after Close.
func (d *Document) Close() {
	if d.closed {
		return
	}
	d.closed = true
	d.canvas.End()
}

func barStyle(s barchart.Style) string {
	style := fmt.Sprintf("fill:%s;fill-opacity:%g", s.FillColor, s.Opacity)
	if s.LineWidth > 0 {
		style += fmt.Sprintf(";stroke:%s;stroke-width:%g", s.LineColor, s.LineWidth)
		if s.DashArray != "" {
			style += ";stroke-dasharray:" + s.DashArray
		}
	}
	return style
}

func labelStyle(f barchart.Font) string {
	return fmt.Sprintf("font-family:%s;font-size:%gpx;fill:%s;text-anchor:start", f.Family, f.Size, f.Color)
}
