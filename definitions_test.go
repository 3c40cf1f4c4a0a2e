package stencil

import (
	"errors"
	"testing"
)

func TestDefaultDefinitions(t *testing.T) {
	defs := DefaultDefinitions()

	tests := []struct {
		marker  rune
		accepts []rune
		rejects []rune
	}{
		{'9', []rune{'0', '5', '9'}, []rune{'a', 'Z', '-', '_', ' '}},
		{'a', []rune{'a', 'z', 'A', 'Z'}, []rune{'0', '9', '-', '_'}},
		{'A', []rune{'a', 'z', 'A', 'Z'}, []rune{'0', '9', '-', '_'}},
		{'*', []rune{'0', '9', 'a', 'Z'}, []rune{'-', '_', ' '}},
	}

	for _, tt := range tests {
		rule, ok := defs[tt.marker]
		if !ok {
			t.Fatalf("DefaultDefinitions missing %q", tt.marker)
		}
		for _, r := range tt.accepts {
			if !rule.Match(r) {
				t.Errorf("rule %q rejected %q", tt.marker, r)
			}
		}
		for _, r := range tt.rejects {
			if rule.Match(r) {
				t.Errorf("rule %q accepted %q", tt.marker, r)
			}
		}
	}
}

func TestDefaultDefinitions_UppercaseTransform(t *testing.T) {
	defs := DefaultDefinitions()

	if defs['A'].Transform == nil {
		t.Fatal("rule 'A' has no transform")
	}
	if got := defs['A'].Transform('q'); got != 'Q' {
		t.Errorf("Transform('q') = %q, want 'Q'", got)
	}
	if defs['a'].Transform != nil {
		t.Error("rule 'a' unexpectedly has a transform")
	}
}

func TestDefinitions_Validate(t *testing.T) {
	bad := Definitions{'#': {}}
	if err := bad.validate(); !errors.Is(err, ErrInvalidDefinition) {
		t.Errorf("validate() error = %v, want ErrInvalidDefinition", err)
	}

	if err := DefaultDefinitions().validate(); err != nil {
		t.Errorf("validate() error = %v, want nil", err)
	}
}
