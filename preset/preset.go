// Package preset loads mask definition tables and named patterns from YAML.
//
// Rule predicates and transforms are written as expressions over a
// single-character string bound to "char":
//
//	definitions:
//	  "#":
//	    match: char >= "0" && char <= "9"
//	  "U":
//	    match: (char >= "a" && char <= "z") || (char >= "A" && char <= "Z")
//	    transform: upper(char)
//	patterns:
//	  us-phone:
//	    pattern: "(999) 999-9999"
//	  plate:
//	    pattern: "UUU-###"
//	    placeholder: "·"
//
// Expressions are compiled once at load time; evaluating a keystroke is a
// VM run with no recompilation. Declared definitions extend the built-in
// table, overriding markers it already defines.
package preset

import (
	"errors"
	"fmt"
	"os"
	"unicode/utf8"

	"gopkg.in/yaml.v3"

	"github.com/zoobzio/stencil"
)

// Sentinel errors for programmatic error handling.
var (
	// ErrInvalidRule indicates a definition entry that cannot be compiled.
	ErrInvalidRule = errors.New("invalid rule")

	// ErrUnknownPattern indicates a pattern name absent from the set.
	ErrUnknownPattern = errors.New("unknown pattern")
)

// RuleSpec declares a slot rule as expressions.
type RuleSpec struct {
	Match     string `yaml:"match"`
	Transform string `yaml:"transform,omitempty"`
}

// PatternSpec names a reusable pattern.
type PatternSpec struct {
	Pattern     string `yaml:"pattern"`
	Placeholder string `yaml:"placeholder,omitempty"`
}

// File is the on-disk preset layout.
type File struct {
	Definitions map[string]RuleSpec    `yaml:"definitions"`
	Patterns    map[string]PatternSpec `yaml:"patterns"`
}

// Set is a parsed preset: a compiled definition table plus named patterns.
type Set struct {
	defs     stencil.Definitions
	patterns map[string]PatternSpec
}

// Load reads and parses a preset file.
func Load(path string) (*Set, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read preset file: %w", err)
	}
	return Parse(data)
}

// Parse builds a Set from YAML. Declared definitions are compiled eagerly
// so a malformed expression fails at load, not at the first keystroke.
func Parse(data []byte) (*Set, error) {
	var f File
	if err := yaml.Unmarshal(data, &f); err != nil {
		return nil, fmt.Errorf("failed to parse preset YAML: %w", err)
	}

	defs := stencil.DefaultDefinitions()
	for marker, spec := range f.Definitions {
		if utf8.RuneCountInString(marker) != 1 {
			return nil, fmt.Errorf("%w: marker %q is not a single character", ErrInvalidRule, marker)
		}
		r, _ := utf8.DecodeRuneInString(marker)

		rule, err := compileRule(spec)
		if err != nil {
			return nil, fmt.Errorf("marker %q: %w", marker, err)
		}
		defs[r] = rule
	}

	set := &Set{
		defs:     defs,
		patterns: make(map[string]PatternSpec, len(f.Patterns)),
	}
	for name, spec := range f.Patterns {
		if spec.Pattern == "" {
			return nil, fmt.Errorf("%w: pattern %q is empty", ErrUnknownPattern, name)
		}
		set.patterns[name] = spec
	}

	return set, nil
}

// Definitions returns a copy of the set's definition table.
func (s *Set) Definitions() stencil.Definitions {
	defs := make(stencil.Definitions, len(s.defs))
	for marker, rule := range s.defs {
		defs[marker] = rule
	}
	return defs
}

// Patterns returns the names of the patterns in the set.
func (s *Set) Patterns() []string {
	names := make([]string, 0, len(s.patterns))
	for name := range s.patterns {
		names = append(names, name)
	}
	return names
}

// Mask compiles the named pattern with the set's definitions. Options are
// applied after the preset's own placeholder, so callers can override it.
func (s *Set) Mask(name string, opts ...stencil.Option) (*stencil.Mask, error) {
	spec, ok := s.patterns[name]
	if !ok {
		return nil, fmt.Errorf("%w: %s", ErrUnknownPattern, name)
	}

	merged := []stencil.Option{stencil.WithDefinitions(s.Definitions())}
	if spec.Placeholder != "" {
		merged = append(merged, stencil.WithPlaceholder(spec.Placeholder))
	}
	merged = append(merged, opts...)

	return stencil.New(spec.Pattern, merged...)
}
