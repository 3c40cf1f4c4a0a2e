package stencil

import (
	"errors"
	"testing"
)

func TestConfigError_Is(t *testing.T) {
	err := newConfigError(ErrNoSlots, "---", 0)

	if !errors.Is(err, ErrNoSlots) {
		t.Error("ConfigError should unwrap to ErrNoSlots")
	}
	if errors.Is(err, ErrEmptyPattern) {
		t.Error("ConfigError should not match ErrEmptyPattern")
	}
}

func TestConfigError_Message(t *testing.T) {
	tests := []struct {
		name string
		err  error
		want string
	}{
		{
			name: "pattern only",
			err:  newConfigError(ErrNoSlots, "---", 0),
			want: `pattern has no slots (pattern "---")`,
		},
		{
			name: "pattern and char",
			err:  newConfigError(ErrAmbiguousPlaceholder, "999", '9'),
			want: `placeholder ambiguous with slot '9' (pattern "999")`,
		},
		{
			name: "bare sentinel",
			err:  &ConfigError{Err: ErrEmptyPattern},
			want: "pattern required",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := tt.err.Error(); got != tt.want {
				t.Errorf("Error() = %q, want %q", got, tt.want)
			}
		})
	}
}

func TestConfigError_Unwrap(t *testing.T) {
	cfgErr := &ConfigError{Err: ErrInvalidPlaceholder, Pattern: "999"}
	if cfgErr.Unwrap() != ErrInvalidPlaceholder {
		t.Error("Unwrap() did not return the sentinel")
	}
}
