package stencil

import (
	"fmt"
	"reflect"

	"github.com/zoobzio/sentinel"
)

func init() {
	// Register mask tags with sentinel
	sentinel.Tag("mask")
	sentinel.Tag("mask.placeholder")
}

// Bind builds a mask for every string field of T that carries a mask tag.
// The tag value is the pattern; an optional mask.placeholder tag overrides
// the placeholder for that field:
//
//	type Contact struct {
//	    Phone string `mask:"(999) 999-9999"`
//	    Code  string `mask:"AAA-9999" mask.placeholder:"#"`
//	}
//
// Options apply to every bound field, with per-field placeholder tags taking
// precedence over WithPlaceholder. A mask tag on a non-string field or a
// pattern that fails compilation returns an error naming the field.
func Bind[T any](opts ...Option) (map[string]*Mask, error) {
	spec := sentinel.Scan[T]()

	masks := make(map[string]*Mask)
	for _, field := range spec.Fields {
		patternStr, ok := field.Tags["mask"]
		if !ok {
			continue
		}

		if field.ReflectType.Kind() != reflect.String {
			return nil, fmt.Errorf("%w: mask tag on non-string field %s", ErrInvalidTag, field.Name)
		}

		fieldOpts := opts
		if ph, ok := field.Tags["mask.placeholder"]; ok {
			fieldOpts = append(append([]Option{}, opts...), WithPlaceholder(ph))
		}

		m, err := New(patternStr, fieldOpts...)
		if err != nil {
			return nil, fmt.Errorf("field %s: %w", field.Name, err)
		}
		masks[field.Name] = m
	}

	return masks, nil
}
