package stencil

// reformat reconciles an edited formatted string against the pattern,
// recovering the raw characters the user intends regardless of where the
// edit occurred.
//
// A naive diff of formatted strings breaks when the user types in the
// middle: literals shift out of place. Because literals are pattern-relative
// rather than position-relative, the edited value is re-read against the
// fixed pattern instead: a character is discarded only when it equals the
// placeholder, or when it sits on a literal position and equals that
// literal. Everything else is a candidate raw character, in order.
//
// Deleting a literal therefore needs no special case: the character shifted
// onto the literal position no longer matches the literal, so it survives
// the strip, and the canonical formatting pass reinstates the literal.
// Inserting into a full mask shifts characters right; the overflow past the
// pattern is kept here and dropped by apply once the slots run out, which
// pushes the trailing character out.
//
// Characters equal to the placeholder are indistinguishable from unfilled
// slots and are discarded; construction already guarantees the placeholder
// can never satisfy a slot predicate, so nothing typed is lost this way.
func (p *pattern) reformat(edited []rune, placeholder rune) []rune {
	raw := make([]rune, 0, len(edited))
	for i, r := range edited {
		if r == placeholder {
			continue
		}
		if i < len(p.runes) && !p.slots[i] && r == p.runes[i] {
			continue
		}
		raw = append(raw, r)
	}
	return raw
}
