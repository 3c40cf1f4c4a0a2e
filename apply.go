package stencil

// apply walks the pattern left to right with an independent cursor into raw,
// producing the formatted string.
//
// Literal positions emit the literal; if the pending raw character equals the
// literal it is absorbed rather than duplicated, so feeding an already
// formatted value back through apply is idempotent. Slot positions consume
// the next raw character satisfying the slot predicate; characters that fail
// the predicate are dropped, not retried against a later slot. When raw is
// exhausted, guide mode pads the remaining slots with the placeholder and
// keeps the literals; without guide the output truncates at the last
// position emitted while raw characters remained.
//
// An empty raw value formats to the empty string unless allowEmpty is set,
// in which case guide mode produces the full literal/placeholder skeleton.
func (p *pattern) apply(raw []rune, placeholder rune, guide, allowEmpty bool) string {
	if len(raw) == 0 && !allowEmpty {
		return ""
	}

	out := make([]rune, 0, len(p.runes))
	ri := 0

	for pi, pr := range p.runes {
		if !p.slots[pi] {
			if !guide && ri >= len(raw) {
				break
			}
			out = append(out, pr)
			if ri < len(raw) && raw[ri] == pr {
				ri++
			}
			continue
		}

		// Drop raw characters the slot rejects.
		for ri < len(raw) && !p.rules[pi].Match(raw[ri]) {
			ri++
		}

		if ri < len(raw) {
			r := raw[ri]
			if t := p.rules[pi].Transform; t != nil {
				r = t(r)
			}
			out = append(out, r)
			ri++
			continue
		}

		if !guide {
			break
		}
		out = append(out, placeholder)
	}

	return string(out)
}
