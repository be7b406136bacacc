// Package textmeasure implements the font-measurement capability consumed
// by the barchart layout engine.
//
// Fonts are parsed once per family with golang.org/x/image/font/opentype
// and measured through sfnt metrics. HarfBuzz shaping via
// github.com/go-text/typesetting can be enabled for kerning-accurate
// advances; label direction for shaping is detected with
// golang.org/x/text/unicode/bidi.
package textmeasure
