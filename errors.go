package stencil

import (
	"errors"
	"fmt"
)

// Sentinel errors for programmatic error handling.
// Use errors.Is() to check for these error types.
//
// All failures are configuration-time: once New succeeds, formatting,
// normalization, and caret management never return errors. Keystrokes that do
// not fit the mask are dropped, not surfaced.
var (
	// ErrEmptyPattern indicates no pattern was supplied.
	ErrEmptyPattern = errors.New("pattern required")

	// ErrNoSlots indicates the pattern contains no editable slot positions.
	ErrNoSlots = errors.New("pattern has no slots")

	// ErrInvalidPlaceholder indicates the placeholder is not exactly one character.
	ErrInvalidPlaceholder = errors.New("invalid placeholder length")

	// ErrAmbiguousPlaceholder indicates the placeholder satisfies a slot
	// predicate, making filled and unfilled slots indistinguishable.
	ErrAmbiguousPlaceholder = errors.New("placeholder ambiguous with slot")

	// ErrInvalidDefinition indicates a mask definition is malformed
	// (for example a rule with a nil match predicate).
	ErrInvalidDefinition = errors.New("invalid mask definition")

	// ErrInvalidTag indicates a struct tag has an invalid format or value.
	ErrInvalidTag = errors.New("invalid tag")
)

// ConfigError represents a mask configuration error.
// It wraps a sentinel error with context about the pattern and the
// offending character, when one exists.
type ConfigError struct {
	Err     error  // Underlying sentinel error (ErrNoSlots, etc.)
	Pattern string // Pattern that triggered the error
	Char    rune   // Offending character, 0 when not applicable
}

func (e *ConfigError) Error() string {
	if e.Char != 0 && e.Pattern != "" {
		return fmt.Sprintf("%s %q (pattern %q)", e.Err.Error(), e.Char, e.Pattern)
	}
	if e.Pattern != "" {
		return fmt.Sprintf("%s (pattern %q)", e.Err.Error(), e.Pattern)
	}
	return e.Err.Error()
}

func (e *ConfigError) Unwrap() error {
	return e.Err
}

// newConfigError creates a ConfigError for construction failures.
func newConfigError(sentinel error, pattern string, char rune) error {
	return &ConfigError{
		Err:     sentinel,
		Pattern: pattern,
		Char:    char,
	}
}
