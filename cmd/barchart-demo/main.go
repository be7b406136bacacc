// Command barchart-demo lays out a small stacked bar chart and writes the
// result as an SVG file.
package main

import (
	"flag"
	"log"
	"os"

	"golang.org/x/image/font/gofont/goregular"

	"github.com/vizkit/barchart"
	"github.com/vizkit/barchart/svgdoc"
	"github.com/vizkit/barchart/textmeasure"
)

func main() {
	var (
		width  = flag.Int("width", 640, "image width")
		height = flag.Int("height", 400, "image height")
		output = flag.String("output", "demo.svg", "output file")
		mode   = flag.String("barmode", "relative", "barmode: stack, relative, group or overlay")
		round  = flag.Float64("round", 0.5, "corner roundness fraction (0..1)")
	)
	flag.Parse()

	cfg := barchart.Config{
		BarMode:     barchart.BarMode(*mode),
		BarGap:      0.2,
		BarGroupGap: 0.1,
		Constrained: true,
	}

	traces := []*barchart.Trace{
		{
			Orientation:  barchart.Vertical,
			P:            []float64{0, 1, 2, 3},
			S:            []float64{3, 5, 2, 4},
			Corner:       barchart.Uniform(*round),
			MarkerColor:  barchart.Fixed("#636efa"),
			Text:         barchart.PerIndex([]string{"3", "5", "2", "4"}),
			TextPosition: barchart.Fixed("auto"),
		},
		{
			Orientation:  barchart.Vertical,
			P:            []float64{0, 1, 2, 3},
			S:            []float64{2, -1, 3, 1},
			Corner:       barchart.Uniform(*round),
			MarkerColor:  barchart.Fixed("#ef553b"),
			Text:         barchart.PerIndex([]string{"2", "-1", "3", "1"}),
			TextPosition: barchart.Fixed("auto"),
		},
	}
	barchart.Arrange(traces, cfg)

	pos := barchart.LinearMapper{
		DataMin: -0.5, DataMax: 3.5,
		PixelMin: 40, PixelMax: float64(*width) - 20,
	}
	size := barchart.LinearMapper{
		DataMin: -2, DataMax: 9,
		PixelMin: float64(*height) - 30, PixelMax: 20,
	}

	measurer := textmeasure.New(textmeasure.WithShaping())
	if err := measurer.RegisterFont("Go", goregular.TTF); err != nil {
		log.Fatalf("Failed to load font: %v", err)
	}

	results, err := barchart.Layout(traces, cfg, pos, size, measurer)
	if err != nil {
		log.Fatalf("Layout failed: %v", err)
	}

	f, err := os.Create(*output)
	if err != nil {
		log.Fatalf("Failed to create output: %v", err)
	}
	defer f.Close()

	doc := svgdoc.New(f, *width, *height)
	for _, res := range results {
		doc.AddTrace(res)
	}
	doc.Close()

	log.Printf("Chart saved to %s (%dx%d)\n", *output, *width, *height)
}
