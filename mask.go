package stencil

import (
	"context"
	"time"
	"unicode/utf8"
)

// DefaultPlaceholder fills unfilled slots when guide mode is on.
const DefaultPlaceholder = "_"

// defaultCompleteDelay spaces the completion callback past any re-render
// triggered by the completing edit, so observers see the final value.
const defaultCompleteDelay = 25 * time.Millisecond

// Mask is a compiled masking configuration. It is immutable after New:
// every Format, Normalize, and event-handler call reads only the compiled
// pattern, so a Mask is safe to share across inputs. The caret handlers are
// not safe to reenter concurrently for the same host input mid-deferral.
type Mask struct {
	pattern     *pattern
	patternStr  string
	defs        Definitions
	placeholder rune
	guide       bool
	stripMask   bool
	allowEmpty  bool

	scheduler     Scheduler
	onChange      func(string)
	onComplete    func(string)
	completeDelay time.Duration

	// pendingPlaceholder holds the raw option value until validation.
	pendingPlaceholder string
}

// Option configures a Mask during construction.
type Option func(*Mask)

// WithPlaceholder sets the character shown in unfilled slots. Must be
// exactly one character and must not satisfy any slot predicate.
func WithPlaceholder(s string) Option {
	return func(m *Mask) { m.pendingPlaceholder = s }
}

// WithDefinitions replaces the built-in definition table.
func WithDefinitions(defs Definitions) Option {
	return func(m *Mask) { m.defs = defs }
}

// WithGuide toggles guide mode. On (the default), unfilled slots render as
// the placeholder and output always spans the full pattern; off, output
// truncates after the last filled slot.
func WithGuide(guide bool) Option {
	return func(m *Mask) { m.guide = guide }
}

// WithStripMask controls the externally visible value. On (the default) the
// stored value is the raw slot content; off, it is the formatted string.
func WithStripMask(strip bool) Option {
	return func(m *Mask) { m.stripMask = strip }
}

// WithAllowEmpty makes an empty input format to the literal/placeholder
// skeleton instead of collapsing to the empty string.
func WithAllowEmpty(allow bool) Option {
	return func(m *Mask) { m.allowEmpty = allow }
}

// WithOnChange registers a hook fired when Normalize produces a value that
// differs from the previous stored value.
func WithOnChange(fn func(value string)) Option {
	return func(m *Mask) { m.onChange = fn }
}

// WithOnComplete registers a hook fired once per completion, when an edit
// that changed the value leaves every slot filled. The call is deferred so
// observers see the settled value.
func WithOnComplete(fn func(value string)) Option {
	return func(m *Mask) { m.onComplete = fn }
}

// WithScheduler replaces the deferral primitive used for caret repositioning
// and the completion callback.
func WithScheduler(s Scheduler) Option {
	return func(m *Mask) { m.scheduler = s }
}

// WithCompleteDelay adjusts the completion callback delay.
func WithCompleteDelay(d time.Duration) Option {
	return func(m *Mask) { m.completeDelay = d }
}

// New compiles a masking configuration. All validation happens here: a
// missing pattern, a pattern without slots, a malformed placeholder, or a
// placeholder colliding with a slot's character class fail with a
// ConfigError. Editing never errors after construction.
func New(patternStr string, opts ...Option) (*Mask, error) {
	m := &Mask{
		patternStr:         patternStr,
		defs:               DefaultDefinitions(),
		guide:              true,
		stripMask:          true,
		scheduler:          TimerScheduler(),
		completeDelay:      defaultCompleteDelay,
		pendingPlaceholder: DefaultPlaceholder,
	}
	for _, opt := range opts {
		opt(m)
	}

	if err := m.defs.validate(); err != nil {
		return nil, err
	}

	if utf8.RuneCountInString(m.pendingPlaceholder) != 1 {
		return nil, newConfigError(ErrInvalidPlaceholder, patternStr, 0)
	}
	m.placeholder, _ = utf8.DecodeRuneInString(m.pendingPlaceholder)

	if marker, ok := matchAny(m.placeholder, m.defs); ok {
		return nil, newConfigError(ErrAmbiguousPlaceholder, patternStr, marker)
	}

	p, err := compilePattern(patternStr, m.defs)
	if err != nil {
		return nil, err
	}
	m.pattern = p

	emitMaskCreated(context.Background(), patternStr, p.slotCount(), len(p.carets))
	return m, nil
}

// Format expands a stored value into its display form. Idempotent: feeding
// the formatted result back through Format reproduces it, because literals
// are absorbed and placeholders stripped on the way in.
func (m *Mask) Format(value string) string {
	raw := []rune(value)
	if !m.stripMask {
		raw = m.pattern.strip(raw, m.placeholder)
	}
	out := m.pattern.apply(raw, m.placeholder, m.guide, m.allowEmpty)
	emitFormatted(context.Background(), m.patternStr, len(raw), m.pattern.slotCount())
	return out
}

// Normalize reconciles an edited display value against the previous stored
// value and returns the new canonical stored value (raw or formatted,
// depending on WithStripMask). When the value changed, the OnChange hook
// fires synchronously; if the change also filled the last open slot, the
// OnComplete hook fires once, deferred.
func (m *Mask) Normalize(edited, previous string) string {
	start := time.Now()

	// Recover raw candidates from the edit, then round-trip them through
	// formatting so characters the mask rejects fall out before the stored
	// value is computed.
	candidates := m.pattern.reformat([]rune(edited), m.placeholder)
	reformatted := m.pattern.apply(candidates, m.placeholder, m.guide, m.allowEmpty)
	stripped := m.pattern.strip([]rune(reformatted), m.placeholder)

	prev := []rune(previous)
	if !m.stripMask {
		prev = m.pattern.strip(prev, m.placeholder)
	}
	transformed := m.pattern.transform(stripped, prev)

	var next string
	if m.stripMask {
		next = string(transformed)
	} else {
		next = m.pattern.apply(transformed, m.placeholder, m.guide, m.allowEmpty)
	}

	if next != previous {
		if m.onChange != nil {
			m.onChange(next)
		}
		if len(transformed) == m.pattern.slotCount() {
			emitPatternComplete(context.Background(), m.patternStr, m.pattern.slotCount())
			if m.onComplete != nil {
				value := next
				m.scheduler.DeferFor(func() { m.onComplete(value) }, m.completeDelay)
			}
		}
	}

	emitNormalized(context.Background(), m.patternStr, len(transformed), m.pattern.slotCount(), time.Since(start))
	return next
}

// Pattern returns the pattern string the mask was compiled from.
func (m *Mask) Pattern() string {
	return m.patternStr
}

// AutoComplete returns the autocomplete directive for the host input.
// Browser-style autofill fights masked entry, so it is always "off".
func (m *Mask) AutoComplete() string {
	return "off"
}
