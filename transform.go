package stencil

// transform applies per-slot transforms to the characters of a stripped
// value that changed relative to the previous stripped value.
//
// Transforms must not re-apply to already-accepted characters, so the two
// stripped values are compared positionally: positions beyond the previous
// value's length, or whose character differs, are newly entered and get the
// transform of the corresponding slot (looked up through the slots-only
// pattern). Unchanged positions pass through untouched.
func (p *pattern) transform(next, prev []rune) []rune {
	out := make([]rune, len(next))
	for i, r := range next {
		fresh := i >= len(prev) || prev[i] != r
		if fresh && i < len(p.slotRule) {
			if t := p.slotRule[i].Transform; t != nil {
				r = t(r)
			}
		}
		out[i] = r
	}
	return out
}
