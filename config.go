package barchart

// BarMode controls how traces sharing a position axis are arranged.
type BarMode string

const (
	ModeStack    BarMode = "stack"
	ModeRelative BarMode = "relative"
	ModeGroup    BarMode = "group"
	ModeOverlay  BarMode = "overlay"
)

// Config is the render-pass configuration.
type Config struct {
	BarMode BarMode

	// BarGap is the fraction [0, 1) of a position slot left empty between
	// neighboring slots. BarGroupGap is the fraction of the remaining
	// space left empty between bars of the same group.
	BarGap      float64
	BarGroupGap float64

	// Static requests a non-interactive rendering: pixel-crispness
	// rounding fixups are skipped and coordinates stay exact.
	Static bool

	// Constrained requests that labels be uniformly shrunk to fit rather
	// than allowed to overflow.
	Constrained bool
}

// withDefaults returns the config with invalid fields replaced by their
// documented defaults. Invalid values never fail the pass.
func (c Config) withDefaults() Config {
	switch c.BarMode {
	case ModeStack, ModeRelative, ModeGroup, ModeOverlay:
	default:
		if c.BarMode != "" {
			Logger().Warn("invalid barmode, using group", "barmode", string(c.BarMode))
		}
		c.BarMode = ModeGroup
	}
	if !(c.BarGap >= 0 && c.BarGap < 1) {
		c.BarGap = 0
	}
	if !(c.BarGroupGap >= 0 && c.BarGroupGap < 1) {
		c.BarGroupGap = 0
	}
	return c
}

// stacked reports whether the mode builds cumulative stacks.
func (c Config) stacked() bool {
	return c.BarMode == ModeStack || c.BarMode == ModeRelative
}
