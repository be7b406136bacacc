package textmeasure

import (
	"bytes"
	"sync"

	"github.com/go-text/typesetting/di"
	"github.com/go-text/typesetting/font"
	"github.com/go-text/typesetting/language"
	"github.com/go-text/typesetting/shaping"
	"golang.org/x/text/unicode/bidi"
)

// harfbuzzShaper computes shaped text advances via go-text/typesetting.
// font.Font is read-only and cached per parsed font; HarfbuzzShaper has
// internal mutable state and is pooled.
type harfbuzzShaper struct {
	pool sync.Pool

	mu    sync.RWMutex
	fonts map[*parsedFont]*font.Font
}

func newHarfbuzzShaper() *harfbuzzShaper {
	return &harfbuzzShaper{
		pool: sync.Pool{
			New: func() any { return &shaping.HarfbuzzShaper{} },
		},
		fonts: make(map[*parsedFont]*font.Font),
	}
}

// advance returns the shaped advance of text at the given size in pixels.
func (s *harfbuzzShaper) advance(pf *parsedFont, text string, size float64) (float64, error) {
	gtFont, err := s.getOrParse(pf)
	if err != nil {
		return 0, err
	}

	runes := []rune(text)
	input := shaping.Input{
		Text:      runes,
		RunStart:  0,
		RunEnd:    len(runes),
		Direction: textDirection(text),
		Face:      font.NewFace(gtFont),
		Size:      floatToFixed(size),
		Script:    detectScript(runes),
		Language:  language.NewLanguage("en"),
	}

	shaper := s.pool.Get().(*shaping.HarfbuzzShaper)
	output := shaper.Shape(input)
	s.pool.Put(shaper)

	var total float64
	for _, g := range output.Glyphs {
		total += fixedToFloat(g.XAdvance)
	}
	return total, nil
}

// getOrParse returns the cached go-text Font for pf, parsing on first use.
// The Font (not Face) is cached: Font is safe for concurrent use, Face is
// not and is created per call.
func (s *harfbuzzShaper) getOrParse(pf *parsedFont) (*font.Font, error) {
	s.mu.RLock()
	f, ok := s.fonts[pf]
	s.mu.RUnlock()
	if ok {
		return f, nil
	}

	s.mu.Lock()
	defer s.mu.Unlock()
	if f, ok := s.fonts[pf]; ok {
		return f, nil
	}
	face, err := font.ParseTTF(bytes.NewReader(pf.data))
	if err != nil {
		return nil, err
	}
	s.fonts[pf] = face.Font
	return face.Font, nil
}

// textDirection detects the paragraph direction of a label so RTL text
// shapes correctly.
func textDirection(text string) di.Direction {
	var p bidi.Paragraph
	if _, err := p.SetString(text); err != nil {
		return di.DirectionLTR
	}
	o, err := p.Order()
	if err != nil {
		return di.DirectionLTR
	}
	if o.Direction() == bidi.RightToLeft {
		return di.DirectionRTL
	}
	return di.DirectionLTR
}

// detectScript returns the script of the first non-space rune. Labels are
// short, so a single-run heuristic is enough.
func detectScript(runes []rune) language.Script {
	for _, r := range runes {
		switch r {
		case ' ', '\t', '\n', '\r':
			continue
		}
		return language.LookupScript(r)
	}
	return language.Latin
}
