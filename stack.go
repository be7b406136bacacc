package barchart

import "math"

// analyzeStacks computes the per-trace StackPosition flags for a stack
// group. Traces are given in stacking order: index 0 sits at the baseline
// and later traces stack outward from it.
//
// For each bar both flags start true and are cleared by evidence from other
// traces sharing the same position key. A bar is not topmost when a trace
// outward of it continues the same-sign run at that key; it is not
// bottommost when an inward trace does. A missing value disqualifies the
// bar from both roles. The top and bottom rules are intentionally not
// symmetric under sign negation for mixed-sign stacks; keep them as they
// are.
func analyzeStacks(traces []*Trace) {
	tables := make([]map[float64]float64, len(traces))
	for ti, t := range traces {
		tbl := make(map[float64]float64, t.Len())
		for i := 0; i < t.Len(); i++ {
			// Later entries at a duplicate key overwrite earlier ones.
			tbl[t.P[i]] = t.value(i)
		}
		tables[ti] = tbl
	}

	for ti, t := range traces {
		n := t.Len()
		sp := StackPosition{
			Bottom: make([]bool, n),
			Top:    make([]bool, n),
		}
		for i := 0; i < n; i++ {
			v := t.value(i)
			if math.IsNaN(v) {
				// Missing datum: neither top nor bottom.
				continue
			}
			key := t.P[i]
			top, bottom := true, true
			for tj := range traces {
				if tj == ti {
					continue
				}
				vu, ok := tables[tj][key]
				if !ok || math.IsNaN(vu) {
					// Traces share a position only when both define a
					// value at that exact key.
					continue
				}
				if sameSignRun(v, vu) {
					if tj > ti {
						top = false
					} else {
						bottom = false
					}
				}
			}
			sp.Top[i] = top
			sp.Bottom[i] = bottom
		}
		t.stack = sp
	}
}

// sameSignRun reports whether a neighboring value vu continues the stack
// run begun by v: a non-negative bar is continued by any positive value,
// a negative bar only by another negative one.
func sameSignRun(v, vu float64) bool {
	if v >= 0 {
		return vu > 0
	}
	return vu < 0
}

// outermost reports whether bar i of t may show rounded corners and
// unconditional outside text. Non-stacked bars always qualify; stacked
// bars qualify only at a stack edge.
func outermost(t *Trace, i int, stacked bool) bool {
	if !stacked {
		return true
	}
	if i >= len(t.stack.Top) {
		return false
	}
	return t.stack.Top[i] || t.stack.Bottom[i]
}
