package stencil

import (
	"errors"
	"testing"
)

// Contact exercises mask tags on string fields.
type Contact struct {
	Name  string
	Phone string `mask:"(999) 999-9999"`
	Code  string `mask:"AAA-9999" mask.placeholder:"#"`
}

// BadField carries a mask tag on a non-string field.
type BadField struct {
	Count int `mask:"999"`
}

// BadPattern carries a pattern without slots.
type BadPattern struct {
	Sep string `mask:"---"`
}

func TestBind(t *testing.T) {
	masks, err := Bind[Contact]()
	if err != nil {
		t.Fatalf("Bind() error: %v", err)
	}

	if len(masks) != 2 {
		t.Fatalf("Bind() returned %d masks, want 2", len(masks))
	}
	if _, ok := masks["Name"]; ok {
		t.Error("Bind() built a mask for untagged field Name")
	}

	if got := masks["Phone"].Format("5551234567"); got != "(555) 123-4567" {
		t.Errorf("Phone.Format() = %q, want %q", got, "(555) 123-4567")
	}

	// The per-field placeholder tag takes effect.
	if got := masks["Code"].Format("ab"); got != "AB#-####" {
		t.Errorf("Code.Format() = %q, want %q", got, "AB#-####")
	}
}

func TestBind_NonStringField(t *testing.T) {
	_, err := Bind[BadField]()
	if !errors.Is(err, ErrInvalidTag) {
		t.Errorf("Bind() error = %v, want ErrInvalidTag", err)
	}
}

func TestBind_InvalidPattern(t *testing.T) {
	_, err := Bind[BadPattern]()
	if !errors.Is(err, ErrNoSlots) {
		t.Errorf("Bind() error = %v, want ErrNoSlots", err)
	}
}

func TestBind_OptionsApply(t *testing.T) {
	masks, err := Bind[Contact](WithGuide(false))
	if err != nil {
		t.Fatalf("Bind() error: %v", err)
	}

	if got := masks["Phone"].Format("555"); got != "(555" {
		t.Errorf("Phone.Format() = %q, want %q", got, "(555")
	}
}
