package barchart

import (
	"math"
	"strings"

	"github.com/lucasb-eyer/go-colorful"
)

// Attr is a per-trace attribute that is either a single fixed value or a
// per-bar sequence. It replaces dynamic array-or-scalar config fan-out with
// a tagged variant: all indexing, coercion and default-fallback logic lives
// behind the accessor functions below.
//
// The zero Attr is "unset": every lookup falls back to the attribute's
// documented default.
type Attr[T any] struct {
	scalar   T
	seq      []T
	perIndex bool
	set      bool
}

// Fixed creates an attribute holding one value for every bar.
func Fixed[T any](v T) Attr[T] {
	return Attr[T]{scalar: v, set: true}
}

// PerIndex creates an attribute holding one value per bar index.
// Indexes past the end of the sequence fall back to the default.
func PerIndex[T any](vs []T) Attr[T] {
	return Attr[T]{seq: vs, perIndex: true, set: true}
}

// at returns the raw value at index i and whether one was present.
func (a Attr[T]) at(i int) (T, bool) {
	if !a.set {
		var zero T
		return zero, false
	}
	if !a.perIndex {
		return a.scalar, true
	}
	if i < 0 || i >= len(a.seq) {
		var zero T
		return zero, false
	}
	return a.seq[i], true
}

// Number resolves a numeric attribute at index i. Absent or non-finite
// values fall back to def.
func Number(a Attr[float64], i int, def float64) float64 {
	v, ok := a.at(i)
	if !ok || math.IsNaN(v) || math.IsInf(v, 0) {
		return def
	}
	return v
}

// NumberIn resolves a numeric attribute constrained to [lo, hi].
// Out-of-range values fall back to def, never clamp.
func NumberIn(a Attr[float64], i int, lo, hi, def float64) float64 {
	v := Number(a, i, def)
	if v < lo || v > hi {
		Logger().Warn("attribute out of range, using default", "value", v, "min", lo, "max", hi)
		return def
	}
	return v
}

// Enum resolves a string attribute against a closed set of allowed values.
// Anything else falls back to def.
func Enum(a Attr[string], i int, allowed []string, def string) string {
	v, ok := a.at(i)
	if !ok {
		return def
	}
	for _, s := range allowed {
		if v == s {
			return v
		}
	}
	Logger().Warn("invalid enum attribute, using default", "value", v, "default", def)
	return def
}

// Color resolves a color attribute. Hex colors must parse; named colors are
// accepted as-is (validity of names is the renderer's concern). Invalid or
// absent values fall back to def.
func Color(a Attr[string], i int, def string) string {
	v, ok := a.at(i)
	if !ok || v == "" {
		return def
	}
	if strings.HasPrefix(v, "#") {
		if _, err := colorful.Hex(v); err != nil {
			Logger().Warn("invalid hex color, using default", "value", v, "default", def)
			return def
		}
	}
	return v
}

// Str resolves a free-form string attribute with a default.
func Str(a Attr[string], i int, def string) string {
	v, ok := a.at(i)
	if !ok {
		return def
	}
	return v
}
