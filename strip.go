package stencil

// strip removes placeholders and literal characters from a formatted value,
// yielding the raw slot contents in pattern order.
//
// The comparison is position-relative: a character survives only when its
// pattern position is a slot and it is not the placeholder. Literal
// positions are dropped regardless of content, so a slot character that
// coincidentally equals some literal elsewhere in the pattern is unaffected.
// Characters beyond the pattern length are ignored.
func (p *pattern) strip(formatted []rune, placeholder rune) []rune {
	n := len(formatted)
	if n > len(p.runes) {
		n = len(p.runes)
	}

	stripped := make([]rune, 0, n)
	for i := 0; i < n; i++ {
		if p.slots[i] && formatted[i] != placeholder {
			stripped = append(stripped, formatted[i])
		}
	}
	return stripped
}
