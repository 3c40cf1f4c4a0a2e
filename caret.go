package stencil

// Caret management. Each handler is stateless across events: it reads the
// host's current value and selection, consults the precomputed valid caret
// positions, and sets a collapsed selection. Handlers never write the
// host's value; formatting happens in the Normalize path.
//
// Repositioning runs through the Scheduler so the host has already applied
// the triggering edit by the time the controller reads it back.

// OnFocus moves the caret to the first unfilled slot, or past the last slot
// when every slot is filled.
func (m *Mask) OnFocus(input HostInput) {
	m.scheduler.Defer(func() {
		input.SetSelection(m.firstUnfilled([]rune(input.Value())))
	})
}

// OnClick leaves a click that landed exactly on a valid caret position
// alone, and moves any other collapsed click to the first unfilled slot.
// Range selections are not touched.
func (m *Mask) OnClick(input HostInput) {
	m.scheduler.Defer(func() {
		start, end := input.Selection()
		if start != end {
			return
		}
		if m.pattern.isValidCaret(start) {
			return
		}
		input.SetSelection(m.firstUnfilled([]rune(input.Value())))
	})
}

// OnKeyDown handles ArrowLeft and ArrowRight, jumping to the nearest valid
// caret position strictly before or after the current offset. With no valid
// position in the pressed direction the caret falls back to the first
// (left) or last (right) valid position, so it never sticks at an invalid
// offset. Other keys are ignored.
func (m *Mask) OnKeyDown(input HostInput, key Key) {
	if key != KeyArrowLeft && key != KeyArrowRight {
		return
	}
	pos, _ := input.Selection()
	m.scheduler.Defer(func() {
		if key == KeyArrowLeft {
			input.SetSelection(m.nearestLeft(pos))
			return
		}
		input.SetSelection(m.nearestRight(pos))
	})
}

// OnChange repositions the caret after an edit has been normalized. The
// pre-edit value and selection are captured synchronously; the post-edit
// state is read after the update settles.
//
// If the settled value is exactly one character longer than the edited one
// and the pattern character at the old caret offset is a literal that
// formatting reinstated, the edit is taken for a backspace through that
// literal and the caret moves to the nearest valid position before it. The
// inference is best-effort: a paste or composition edit can produce the
// same shape, in which case the caret still lands somewhere valid. Every
// other edit moves the caret to the first unfilled slot.
func (m *Mask) OnChange(input HostInput) {
	prevValue := []rune(input.Value())
	prevCaret, _ := input.Selection()
	m.scheduler.Defer(func() {
		value := []rune(input.Value())
		if m.reinstatedLiteral(value, prevValue, prevCaret) {
			input.SetSelection(m.nearestLeft(prevCaret))
			return
		}
		input.SetSelection(m.firstUnfilled(value))
	})
}

// firstUnfilled returns the earliest slot position holding the placeholder
// or lying past the end of a truncated value. With every slot filled it
// returns the position after the last slot.
func (m *Mask) firstUnfilled(value []rune) int {
	for i, isSlot := range m.pattern.slots {
		if !isSlot {
			continue
		}
		if i >= len(value) || value[i] == m.placeholder {
			return i
		}
	}
	return m.pattern.lastSlot() + 1
}

// nearestLeft returns the largest valid position strictly before pos,
// falling back to the first valid position.
func (m *Mask) nearestLeft(pos int) int {
	carets := m.pattern.carets
	for i := len(carets) - 1; i >= 0; i-- {
		if carets[i] < pos {
			return carets[i]
		}
	}
	return carets[0]
}

// nearestRight returns the smallest valid position strictly after pos,
// falling back to the last valid position.
func (m *Mask) nearestRight(pos int) int {
	carets := m.pattern.carets
	for _, c := range carets {
		if c > pos {
			return c
		}
	}
	return carets[len(carets)-1]
}

// reinstatedLiteral reports whether the settled value looks like formatting
// put back a literal the user just deleted: one character longer than the
// edited value, with the pattern literal at the old caret offset present in
// the settled value.
func (m *Mask) reinstatedLiteral(value, edited []rune, caret int) bool {
	if len(value) != len(edited)+1 {
		return false
	}
	if caret < 0 || caret >= len(m.pattern.runes) || caret >= len(value) {
		return false
	}
	if m.pattern.slots[caret] {
		return false
	}
	return value[caret] == m.pattern.runes[caret]
}
