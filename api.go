// Package stencil provides pattern-driven input masking with caret management.
//
// A mask is built from a literal pattern string containing fixed characters
// and typed slots (digit, letter, alphanumeric). The engine formats arbitrary
// input to conform to the pattern, reconciles edited input while preserving
// user intent, and computes caret placement so editing feels natural: the
// caret skips literals, lands on the first editable slot, and arrow keys jump
// between slot positions.
//
// # Patterns
//
// Each pattern character is either a literal (copied verbatim into output) or
// a slot marker (a key present in the mask definition table). The default
// table defines:
//
//	9 - digit [0-9]
//	a - letter [a-zA-Z]
//	A - letter, uppercased on entry
//	* - alphanumeric [0-9a-zA-Z]
//
// A pattern with no slot markers is invalid and fails at construction.
//
// # Basic Usage
//
//	phone, err := stencil.New("(999) 999-9999")
//	if err != nil {
//	    return err
//	}
//
//	phone.Format("5551234567")              // "(555) 123-4567"
//	phone.Normalize("(555) 1234-567_", old) // reconciles a mid-string edit
//
// Construction validates eagerly: an empty pattern, a pattern without slots,
// a multi-character placeholder, or a placeholder that satisfies any slot
// predicate all fail with a ConfigError. Once New succeeds no operation
// returns an error; characters that do not fit the mask are silently dropped.
//
// # Stored Values
//
// With WithStripMask(true) (the default) the externally visible value is the
// raw slot content ("5551234567"); Format expands it for display. With strip
// disabled the stored value is the fully formatted string. Normalize returns
// the new canonical stored value and fires the optional OnChange and
// OnComplete hooks.
//
// # Caret Management
//
// The four event handlers (OnFocus, OnClick, OnKeyDown, OnChange) reposition
// the caret on a host input. The host is an injected capability:
//
//	type HostInput interface {
//	    Value() string
//	    Selection() (start, end int)
//	    SetSelection(pos int)
//	}
//
// Handlers never mutate the host's value; formatting happens in the
// Normalize path. Repositioning is deferred through a Scheduler so the host
// has applied the edit before the controller reads it.
//
// # Struct Binding
//
// Bind derives per-field masks from struct tags:
//
//	type Contact struct {
//	    Phone string `mask:"(999) 999-9999"`
//	    Code  string `mask:"AAA-9999" mask.placeholder:"#"`
//	}
//
//	masks, _ := stencil.Bind[Contact]()
//	masks["Phone"].Format("5551234567")
//
// # Presets
//
// The preset subpackage loads definition tables and named patterns from YAML,
// with rule predicates and transforms written as expressions.
package stencil

import "time"

// HostInput is the protocol the caret controller speaks to the hosting text
// input. The controller reads the current value and selection and writes a
// collapsed selection; it never writes the value itself.
//
// Implementations report offsets in runes, matching the engine's view of the
// pattern.
type HostInput interface {
	// Value returns the input's current text.
	Value() string

	// Selection returns the current selection range. A collapsed caret has
	// start == end.
	Selection() (start, end int)

	// SetSelection places a collapsed caret at pos.
	SetSelection(pos int)
}

// Scheduler defers work until after the current update settles. The caret
// controller uses it so the host input's value and selection already reflect
// the just-applied edit before they are read back.
//
// No cancellation is defined: a deferred step that fires against a torn-down
// target must be a no-op on the caller's side.
type Scheduler interface {
	// Defer runs fn after the current update cycle.
	Defer(fn func())

	// DeferFor runs fn after at least delay has elapsed.
	DeferFor(fn func(), delay time.Duration)
}

// Key identifies a navigation key reported to OnKeyDown.
type Key int

// Navigation keys handled by the caret controller. Any other key is ignored.
const (
	KeyNone Key = iota
	KeyArrowLeft
	KeyArrowRight
)
