package barchart

// Label is a placed bar label: the text itself, the resolved font, and the
// transform that positions the measured text node.
type Label struct {
	Text      string
	Position  TextPosition
	Font      Font
	Transform string
}

var textPositions = []string{
	string(TextInside), string(TextOutside), string(TextAuto), string(TextNone),
}

// placeLabel runs the label state machine for bar i of t and returns the
// placed label, or ok=false when no label is produced.
//
// The outside position demotes to inside for bars that are not at a stack
// edge. Auto tries the inside font first and falls back to outside when the
// measured text cannot fit in any orientation; the inside-rendered
// candidate is discarded in that case and the text is re-measured with the
// outside font. Text that measures to a zero or negative box is dropped
// entirely.
func placeLabel(t *Trace, i int, bar Bar, cfg Config, m Measurer, fill string) (Label, bool) {
	text := Str(t.Text, i, "")
	if text == "" || m == nil {
		return Label{}, false
	}
	pos := TextPosition(Enum(t.TextPosition, i, textPositions, string(TextAuto)))
	if pos == TextNone {
		return Label{}, false
	}

	stacked := cfg.stacked()
	outer := outermost(t, i, stacked)
	if pos == TextOutside && !outer {
		pos = TextInside
	}

	if pos == TextAuto {
		if !outer {
			pos = TextInside
		} else {
			box := m.Measure(text, t.insideFont(fill))
			if box.Width <= 0 || box.Height <= 0 {
				return Label{}, false
			}
			if autoFitsInside(bar, box, t.Orientation) {
				pos = TextInside
			} else {
				Logger().Debug("auto label does not fit inside", "index", i, "w", box.Width, "h", box.Height)
				pos = TextOutside
			}
		}
	}

	var font Font
	var d fitDecision
	switch pos {
	case TextInside:
		font = t.insideFont(fill)
		box := m.Measure(text, font)
		if box.Width <= 0 || box.Height <= 0 {
			return Label{}, false
		}
		d = fitInside(bar, box, t.Orientation, cfg.Constrained)
		return Label{
			Text:      text,
			Position:  TextInside,
			Font:      font,
			Transform: labelTransform(box.Center(), d.target, d.scale, d.rotate),
		}, true
	default: // TextOutside
		font = t.outsideFont()
		box := m.Measure(text, font)
		if box.Width <= 0 || box.Height <= 0 {
			return Label{}, false
		}
		d = fitOutside(bar, box, t.Orientation, cfg.Constrained)
		return Label{
			Text:      text,
			Position:  TextOutside,
			Font:      font,
			Transform: labelTransform(box.Center(), d.target, d.scale, d.rotate),
		}, true
	}
}

// insideFont resolves the font for inside labels. When no explicit color is
// configured the color contrasts with the bar fill.
func (t *Trace) insideFont(fill string) Font {
	f := t.InsideFont.merged(t.TextFont)
	if f.Color == "" {
		f.Color = contrastColor(fill)
	}
	return f.merged(DefaultFont)
}

// outsideFont resolves the font for outside labels.
func (t *Trace) outsideFont() Font {
	return t.OutsideFont.merged(t.TextFont).merged(DefaultFont)
}
