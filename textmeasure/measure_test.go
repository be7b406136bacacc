package textmeasure

import (
	"testing"

	"golang.org/x/image/font/gofont/goregular"

	"github.com/vizkit/barchart"
)

func newTestMeasurer(t *testing.T, opts ...Option) *Measurer {
	t.Helper()
	m := New(opts...)
	if err := m.RegisterFont("Go", goregular.TTF); err != nil {
		t.Fatalf("RegisterFont() error = %v", err)
	}
	return m
}

func TestMeasureBasics(t *testing.T) {
	m := newTestMeasurer(t)
	f := barchart.Font{Family: "Go", Size: 12}

	box := m.Measure("Hello", f)
	if box.Width <= 0 || box.Height <= 0 {
		t.Fatalf("Measure() = %+v, want positive extents", box)
	}
	// The baseline sits at y=0: ascent above, descent below.
	if box.Top >= 0 {
		t.Errorf("Top = %v, want negative ascent", box.Top)
	}
	if box.Bottom <= 0 {
		t.Errorf("Bottom = %v, want positive descent", box.Bottom)
	}
	if got := box.Bottom - box.Top; got != box.Height {
		t.Errorf("Height = %v, want Bottom-Top = %v", box.Height, got)
	}
	if box.Left != 0 || box.Right != box.Width {
		t.Errorf("horizontal extents = (%v, %v), want (0, %v)", box.Left, box.Right, box.Width)
	}
}

func TestMeasureEmptyText(t *testing.T) {
	m := newTestMeasurer(t)
	if box := m.Measure("", barchart.Font{Family: "Go", Size: 12}); box != (barchart.TextBox{}) {
		t.Errorf("Measure(\"\") = %+v, want zero box", box)
	}
}

func TestMeasureNoFontsRegistered(t *testing.T) {
	m := New()
	if box := m.Measure("Hello", barchart.Font{Family: "Go", Size: 12}); box != (barchart.TextBox{}) {
		t.Errorf("Measure() = %+v, want zero box with no fonts", box)
	}
}

func TestMeasureWidthGrowsWithText(t *testing.T) {
	m := newTestMeasurer(t)
	f := barchart.Font{Family: "Go", Size: 12}
	short := m.Measure("ab", f)
	long := m.Measure("abcdef", f)
	if long.Width <= short.Width {
		t.Errorf("width did not grow: %v then %v", short.Width, long.Width)
	}
}

func TestMeasureScalesWithSize(t *testing.T) {
	m := newTestMeasurer(t)
	small := m.Measure("Hello", barchart.Font{Family: "Go", Size: 10})
	large := m.Measure("Hello", barchart.Font{Family: "Go", Size: 20})
	if large.Width <= small.Width {
		t.Errorf("width did not scale: %v at 10px, %v at 20px", small.Width, large.Width)
	}
	if large.Height <= small.Height {
		t.Errorf("height did not scale: %v at 10px, %v at 20px", small.Height, large.Height)
	}
}

func TestMeasureUnknownFamilyFallsBack(t *testing.T) {
	m := newTestMeasurer(t)
	known := m.Measure("Hello", barchart.Font{Family: "Go", Size: 12})
	unknown := m.Measure("Hello", barchart.Font{Family: "sans-serif", Size: 12})
	if unknown != known {
		t.Errorf("fallback box = %+v, want %+v", unknown, known)
	}
}

func TestMeasureDefaultSize(t *testing.T) {
	m := newTestMeasurer(t)
	zero := m.Measure("Hello", barchart.Font{Family: "Go"})
	def := m.Measure("Hello", barchart.Font{Family: "Go", Size: barchart.DefaultFont.Size})
	if zero != def {
		t.Errorf("zero-size box = %+v, want the default-size box %+v", zero, def)
	}
}

func TestMeasureShaped(t *testing.T) {
	m := newTestMeasurer(t, WithShaping())
	box := m.Measure("Hello, World", barchart.Font{Family: "Go", Size: 12})
	if box.Width <= 0 || box.Height <= 0 {
		t.Fatalf("shaped Measure() = %+v, want positive extents", box)
	}

	// Shaped and unshaped widths come from the same font tables; they may
	// differ by kerning but stay in the same ballpark.
	plain := newTestMeasurer(t).Measure("Hello, World", barchart.Font{Family: "Go", Size: 12})
	if box.Width < plain.Width*0.5 || box.Width > plain.Width*2 {
		t.Errorf("shaped width %v far from unshaped %v", box.Width, plain.Width)
	}
}

func TestRegisterFontRejectsGarbage(t *testing.T) {
	m := New()
	if err := m.RegisterFont("bad", []byte("not a font")); err == nil {
		t.Error("RegisterFont() error = nil, want parse failure")
	}
	if err := m.RegisterFont("empty", nil); err == nil {
		t.Error("RegisterFont() error = nil, want failure for empty data")
	}
}
