package barchart

// Mapper converts a data-space value on one axis to a pixel coordinate.
// Axis semantics (log scales, categories, inversion) live entirely behind
// this interface.
type Mapper interface {
	Map(v float64) float64
}

// MapperFunc adapts a plain function to the Mapper interface.
type MapperFunc func(v float64) float64

func (f MapperFunc) Map(v float64) float64 { return f(v) }

// LinearMapper maps [DataMin, DataMax] linearly onto [PixelMin, PixelMax].
// PixelMin > PixelMax yields an inverted axis, which is the normal state of
// affairs for a vertical value axis in screen coordinates.
type LinearMapper struct {
	DataMin, DataMax   float64
	PixelMin, PixelMax float64
}

// Map implements Mapper.
func (m LinearMapper) Map(v float64) float64 {
	span := m.DataMax - m.DataMin
	if span == 0 {
		return m.PixelMin
	}
	t := (v - m.DataMin) / span
	return m.PixelMin + t*(m.PixelMax-m.PixelMin)
}
