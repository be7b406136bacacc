package svgdoc

import (
	"strings"
	"testing"

	"github.com/vizkit/barchart"
)

func sampleResult() barchart.TraceResult {
	return barchart.TraceResult{
		Bars: []barchart.BarResult{
			{
				Path: "M10,100V40H30V100Z",
				Style: barchart.Style{
					FillColor: "#636efa",
					Opacity:   1,
					LineColor: "#444444",
					LineWidth: 2,
					DashArray: "6px,6px",
				},
				Label: &barchart.Label{
					Text:      "42",
					Position:  barchart.TextInside,
					Font:      barchart.Font{Family: "Go", Size: 12, Color: "#ffffff"},
					Transform: "translate(15 72)",
				},
			},
			{}, // skipped bar
		},
	}
}

func TestDocumentOutput(t *testing.T) {
	var sb strings.Builder
	d := New(&sb, 640, 480)
	d.AddTrace(sampleResult())
	d.Close()
	got := sb.String()

	for _, want := range []string{
		`width="640"`,
		`height="480"`,
		`class="bars"`,
		`d="M10,100V40H30V100Z"`,
		"fill:#636efa",
		"stroke:#444444",
		"stroke-width:2",
		"stroke-dasharray:6px,6px",
		`transform="translate(15 72)"`,
		">42</text>",
		"font-family:Go",
		"</svg>",
	} {
		if !strings.Contains(got, want) {
			t.Errorf("output missing %q:\n%s", want, got)
		}
	}
}

func TestDocumentSkipsEmptyBars(t *testing.T) {
	var sb strings.Builder
	d := New(&sb, 100, 100)
	d.AddTrace(barchart.TraceResult{Bars: []barchart.BarResult{{}, {}}})
	d.Close()

	if got := strings.Count(sb.String(), "<path"); got != 0 {
		t.Errorf("path elements = %d, want 0 for skipped bars", got)
	}
}

func TestDocumentCloseIsFinal(t *testing.T) {
	var sb strings.Builder
	d := New(&sb, 100, 100)
	d.Close()
	d.Close()
	n := len(sb.String())
	d.AddTrace(sampleResult())
	if len(sb.String()) != n {
		t.Error("AddTrace after Close wrote output")
	}
	if got := strings.Count(sb.String(), "</svg>"); got != 1 {
		t.Errorf("closing tags = %d, want 1", got)
	}
}

func TestBarStyleOmitsStroke(t *testing.T) {
	s := barStyle(barchart.Style{FillColor: "#111111", Opacity: 0.5})
	if strings.Contains(s, "stroke") {
		t.Errorf("barStyle() = %q, want no stroke for zero line width", s)
	}
	if !strings.Contains(s, "fill-opacity:0.5") {
		t.Errorf("barStyle() = %q, want fill-opacity", s)
	}
}
