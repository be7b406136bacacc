package textmeasure

import (
	"fmt"
	"os"
	"sync"

	"golang.org/x/image/font"
	"golang.org/x/image/font/opentype"
	"golang.org/x/image/font/sfnt"
	"golang.org/x/image/math/fixed"

	"github.com/vizkit/barchart"
)

// Measurer measures label bounding boxes against registered font families.
// It implements [barchart.Measurer].
//
// Measurer is safe for concurrent use: parsed fonts are read-only after
// registration and sfnt working buffers are pooled.
type Measurer struct {
	mu    sync.RWMutex
	faces map[string]*parsedFont
	first string

	shaped bool
	shaper *harfbuzzShaper

	bufPool sync.Pool
}

// Option configures a Measurer.
type Option func(*Measurer)

// WithShaping enables HarfBuzz shaping for advance computation, producing
// kerning- and ligature-accurate widths at the cost of a slower measure.
func WithShaping() Option {
	return func(m *Measurer) { m.shaped = true }
}

// New creates an empty Measurer. Register at least one font before
// measuring; an empty Measurer reports zero-size boxes, which makes the
// layout engine drop all labels.
func New(opts ...Option) *Measurer {
	m := &Measurer{
		faces: make(map[string]*parsedFont),
		bufPool: sync.Pool{
			New: func() any { return new(sfnt.Buffer) },
		},
	}
	for _, opt := range opts {
		opt(m)
	}
	if m.shaped {
		m.shaper = newHarfbuzzShaper()
	}
	return m
}

// RegisterFont parses TTF or OTF data and registers it under the family
// name. The first registered family is the fallback for unknown families.
// The data slice must not be modified after the call.
func (m *Measurer) RegisterFont(family string, data []byte) error {
	if len(data) == 0 {
		return fmt.Errorf("textmeasure: empty font data for %q", family)
	}
	f, err := opentype.Parse(data)
	if err != nil {
		return fmt.Errorf("textmeasure: failed to parse font %q: %w", family, err)
	}
	pf := &parsedFont{font: f, data: data}

	m.mu.Lock()
	defer m.mu.Unlock()
	m.faces[family] = pf
	if m.first == "" {
		m.first = family
	}
	return nil
}

// RegisterFontFile loads a font file and registers it under the family name.
func (m *Measurer) RegisterFontFile(family, path string) error {
	data, err := os.ReadFile(path)
	if err != nil {
		return fmt.Errorf("textmeasure: failed to read font file: %w", err)
	}
	return m.RegisterFont(family, data)
}

// Measure implements [barchart.Measurer]. The returned box is relative to
// the text origin with the baseline at y=0: Top is the negative ascent and
// Bottom the descent. Unknown families fall back to the first registered
// family; with no fonts registered the box is zero.
func (m *Measurer) Measure(text string, f barchart.Font) barchart.TextBox {
	if text == "" {
		return barchart.TextBox{}
	}
	pf := m.lookup(f.Family)
	if pf == nil {
		return barchart.TextBox{}
	}
	size := f.Size
	if size <= 0 {
		size = barchart.DefaultFont.Size
	}

	buf := m.bufPool.Get().(*sfnt.Buffer)
	defer m.bufPool.Put(buf)

	ppem := fixed.Int26_6(size * 64)
	metrics, err := pf.font.Metrics(buf, ppem, font.HintingFull)
	if err != nil {
		return barchart.TextBox{}
	}
	ascent := fixedToFloat(metrics.Ascent)
	descent := fixedToFloat(metrics.Descent)

	var width float64
	if m.shaper != nil {
		width, err = m.shaper.advance(pf, text, size)
	}
	if m.shaper == nil || err != nil {
		width = m.advance(pf, buf, text, ppem)
	}

	return barchart.TextBox{
		Left:   0,
		Right:  width,
		Top:    -ascent,
		Bottom: descent,
		Width:  width,
		Height: ascent + descent,
	}
}

// advance sums per-glyph advances without shaping.
func (m *Measurer) advance(pf *parsedFont, buf *sfnt.Buffer, text string, ppem fixed.Int26_6) float64 {
	var total float64
	for _, r := range text {
		gi, err := pf.font.GlyphIndex(buf, r)
		if err != nil {
			continue
		}
		adv, err := pf.font.GlyphAdvance(buf, gi, ppem, font.HintingFull)
		if err != nil {
			continue
		}
		total += fixedToFloat(adv)
	}
	return total
}

func (m *Measurer) lookup(family string) *parsedFont {
	m.mu.RLock()
	defer m.mu.RUnlock()
	if pf, ok := m.faces[family]; ok {
		return pf
	}
	return m.faces[m.first]
}

// parsedFont bundles the sfnt parse with the raw data, which the HarfBuzz
// shaper re-parses lazily on first use.
type parsedFont struct {
	font *opentype.Font
	data []byte
}

// fixedToFloat converts a fixed.Int26_6 value to float64.
func fixedToFloat(v fixed.Int26_6) float64 {
	return float64(v) / 64.0
}

// floatToFixed converts a float64 font size to fixed.Int26_6.
func floatToFixed(v float64) fixed.Int26_6 {
	return fixed.Int26_6(v * 64)
}
