package stencil

// pattern is the compiled form of a mask pattern. It is built once at
// configuration time and never mutated.
type pattern struct {
	runes    []rune // full pattern
	slots    []bool // slots[i] reports whether runes[i] is a slot marker
	rules    []Rule // rules[i] is meaningful only when slots[i]
	stripped []rune // slot markers only, in pattern order
	slotRule []Rule // slotRule[i] is the rule for stripped[i]
	carets   []int  // valid caret positions, ascending and duplicate-free
}

// compilePattern classifies each pattern position against the definition
// table and precomputes the valid caret positions.
func compilePattern(raw string, defs Definitions) (*pattern, error) {
	if raw == "" {
		return nil, newConfigError(ErrEmptyPattern, raw, 0)
	}

	runes := []rune(raw)
	p := &pattern{
		runes: runes,
		slots: make([]bool, len(runes)),
		rules: make([]Rule, len(runes)),
	}

	for i, r := range runes {
		rule, ok := defs[r]
		if !ok {
			continue
		}
		p.slots[i] = true
		p.rules[i] = rule
		p.stripped = append(p.stripped, r)
		p.slotRule = append(p.slotRule, rule)
	}

	p.carets = validCaretPositions(p)
	if len(p.carets) == 0 {
		return nil, newConfigError(ErrNoSlots, raw, 0)
	}

	return p, nil
}

// validCaretPositions computes the ordered set of offsets where placing the
// caret lets the next typed character land in a slot without the user
// skipping a literal manually. A position qualifies when the pattern
// character at it, or immediately before it, is a slot: every slot position
// itself, the position after each slot (so a just-typed character can be
// backspaced), and by extension the position after any literal run that
// precedes a slot.
//
// The result is ascending and duplicate-free; empty means the pattern has no
// slots at all.
func validCaretPositions(p *pattern) []int {
	var positions []int
	for i := 0; i <= len(p.runes); i++ {
		before := i > 0 && p.slots[i-1]
		at := i < len(p.runes) && p.slots[i]
		if before || at {
			positions = append(positions, i)
		}
	}
	return positions
}

// slotCount returns the number of editable positions in the pattern.
func (p *pattern) slotCount() int {
	return len(p.stripped)
}

// lastSlot returns the index of the final slot position. Compilation
// guarantees at least one slot exists.
func (p *pattern) lastSlot() int {
	for i := len(p.slots) - 1; i >= 0; i-- {
		if p.slots[i] {
			return i
		}
	}
	return 0
}

// isValidCaret reports whether pos is in the precomputed valid set.
func (p *pattern) isValidCaret(pos int) bool {
	for _, c := range p.carets {
		if c == pos {
			return true
		}
		if c > pos {
			break
		}
	}
	return false
}
