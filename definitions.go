package stencil

import "unicode"

// Rule describes how a single slot accepts input.
type Rule struct {
	// Match reports whether a typed character may occupy the slot.
	Match func(r rune) bool

	// Transform optionally rewrites an accepted character (case folding,
	// for example). Applied only to newly entered characters. Nil means
	// characters pass through unchanged.
	Transform func(r rune) rune
}

// Definitions maps a slot-marker character to its rule. Pattern characters
// absent from the table are literals.
type Definitions map[rune]Rule

// DefaultDefinitions returns the built-in definition table:
//
//	9 - digit
//	a - letter
//	A - letter, uppercased on entry
//	* - alphanumeric
func DefaultDefinitions() Definitions {
	return Definitions{
		'9': {Match: isDigit},
		'a': {Match: isLetter},
		'A': {Match: isLetter, Transform: unicode.ToUpper},
		'*': {Match: isAlphanumeric},
	}
}

func isDigit(r rune) bool {
	return r >= '0' && r <= '9'
}

func isLetter(r rune) bool {
	return (r >= 'a' && r <= 'z') || (r >= 'A' && r <= 'Z')
}

func isAlphanumeric(r rune) bool {
	return isDigit(r) || isLetter(r)
}

// matchAny returns the first table key whose predicate matches r. Used to
// reject a placeholder that collides with any slot's character class.
//
// Iteration order over a map is not stable, but callers only care whether
// any rule matched, so the returned key is advisory.
func matchAny(r rune, defs Definitions) (rune, bool) {
	for marker, rule := range defs {
		if rule.Match != nil && rule.Match(r) {
			return marker, true
		}
	}
	return 0, false
}

// validate checks every rule in the table has a match predicate.
func (d Definitions) validate() error {
	for marker, rule := range d {
		if rule.Match == nil {
			return newConfigError(ErrInvalidDefinition, "", marker)
		}
	}
	return nil
}
