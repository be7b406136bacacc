// Package barchart computes pixel-space geometry and styling for bar-chart
// visual elements: bar rectangles, rounded corners, stack adjacency, SVG
// path synthesis, and in/out text label placement.
//
// # Overview
//
// The package is a layout engine, not a renderer. Given an ordered set of
// traces (each an ordered set of bar data), two axis mappers and a text
// measurer, [Layout] produces for every bar an SVG path string, an optional
// label with its 2D transform string, and resolved styling. Attaching those
// strings to a document is the caller's concern; the svgdoc subpackage
// provides a ready-made sink.
//
// # Quick Start
//
//	trace := &barchart.Trace{
//	    Orientation: barchart.Vertical,
//	    P: []float64{0, 1, 2},
//	    S: []float64{3, 1, 2},
//	}
//	barchart.Arrange([]*barchart.Trace{trace}, cfg)
//	out, _ := barchart.Layout([]*barchart.Trace{trace}, cfg, posMap, sizeMap, measurer)
//
// # Architecture
//
// One render pass runs in fixed stages: bar geometry (with pixel-crispness
// fixups), stack adjacency, the pass-wide shared corner radius, then per-bar
// path and label synthesis. The first three stages produce read-only
// aggregates; the last stage is data-parallel and runs under an errgroup
// with results assembled back in bar order, so output is deterministic.
package barchart
