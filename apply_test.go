package stencil

import "testing"

func mustCompile(t *testing.T, raw string) *pattern {
	t.Helper()
	p, err := compilePattern(raw, DefaultDefinitions())
	if err != nil {
		t.Fatalf("compilePattern(%q) error: %v", raw, err)
	}
	return p
}

func TestApply_Guide(t *testing.T) {
	p := mustCompile(t, "(999) 999-9999")

	tests := []struct {
		raw      string
		expected string
	}{
		{"5551234567", "(555) 123-4567"},
		{"555", "(555) ___-____"},
		{"", ""},
		// Characters the slot rejects are dropped, not retried.
		{"55a5123456", "(555) 123-456_"},
		// Literals typed by the user are absorbed rather than duplicated.
		{"(555) 123-4567", "(555) 123-4567"},
		// Overflow past the last slot is ignored.
		{"55512345678901", "(555) 123-4567"},
	}

	for _, tt := range tests {
		got := p.apply([]rune(tt.raw), '_', true, false)
		if got != tt.expected {
			t.Errorf("apply(%q) = %q, want %q", tt.raw, got, tt.expected)
		}
	}
}

func TestApply_NoGuide(t *testing.T) {
	p := mustCompile(t, "(999) 999-9999")

	tests := []struct {
		raw      string
		expected string
	}{
		// Truncated after the last consumed character, no trailing literals.
		{"555", "(555"},
		{"5551", "(555) 1"},
		{"5551234567", "(555) 123-4567"},
		{"", ""},
	}

	for _, tt := range tests {
		got := p.apply([]rune(tt.raw), '_', false, false)
		if got != tt.expected {
			t.Errorf("apply(%q) = %q, want %q", tt.raw, got, tt.expected)
		}
	}
}

func TestApply_NoGuideTruncatesBeforeLiteral(t *testing.T) {
	p := mustCompile(t, "99/99")

	got := p.apply([]rune("12"), '_', false, false)
	if got != "12" {
		t.Errorf("apply(%q) = %q, want %q", "12", got, "12")
	}
}

func TestApply_AllowEmpty(t *testing.T) {
	p := mustCompile(t, "(999) 999-9999")

	// Guide mode produces the full skeleton.
	if got := p.apply(nil, '_', true, true); got != "(___) ___-____" {
		t.Errorf("apply(empty, guide) = %q, want %q", got, "(___) ___-____")
	}

	// Without guide there is nothing to show.
	if got := p.apply(nil, '_', false, true); got != "" {
		t.Errorf("apply(empty, no guide) = %q, want %q", got, "")
	}
}

func TestApply_Transform(t *testing.T) {
	p := mustCompile(t, "AAA-999")

	got := p.apply([]rune("abc123"), '_', true, false)
	if got != "ABC-123" {
		t.Errorf("apply(%q) = %q, want %q", "abc123", got, "ABC-123")
	}
}

// With guide on and a non-empty raw value, output always spans the full
// pattern; output never exceeds the pattern length in any mode.
func TestApply_LengthInvariant(t *testing.T) {
	p := mustCompile(t, "(999) 999-9999")

	raws := []string{"5", "555", "5551234567", "---", "abcdef", "555123456789012345"}
	for _, raw := range raws {
		guided := p.apply([]rune(raw), '_', true, false)
		if len([]rune(guided)) != len(p.runes) {
			t.Errorf("len(apply(%q, guide)) = %d, want %d", raw, len([]rune(guided)), len(p.runes))
		}

		truncated := p.apply([]rune(raw), '_', false, false)
		if len([]rune(truncated)) > len(p.runes) {
			t.Errorf("len(apply(%q, no guide)) = %d, exceeds pattern length %d", raw, len([]rune(truncated)), len(p.runes))
		}
	}
}
