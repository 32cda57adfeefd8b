/*
 * Copyright (c) 2024-present Provgen authors
 */

// Package fieldcheck implements the field constraint primitive used while
// assembling schema declarations: a declarative check that a raw document
// value has an expected shape, falling back to a default when absent and
// optionally restricted to an allowed literal set.
package fieldcheck

import (
	"errors"
	"fmt"
)

// Value shapes checkable by a Spec.
type Kind uint8

const (
	Kind_null Kind = iota
	Kind_Bool
	Kind_Int
	Kind_Float
	Kind_String
	Kind_Slice
	Kind_Map
	Kind_Any
	Kind_count
)

var kindNames = [Kind_count]string{"null", "bool", "int", "float", "string", "slice", "map", "any"}

func (k Kind) String() string {
	if k < Kind_count {
		return kindNames[k]
	}
	return fmt.Sprintf("Kind(%d)", uint8(k))
}

func enrich(err error, msg string, args ...any) error {
	return fmt.Errorf("%w: %s", err, fmt.Sprintf(msg, args...))
}

var ErrMissedError = errors.New("missed")

func ErrMissed(field string) error {
	return enrich(ErrMissedError, "required field «%s»", field)
}

var ErrWrongTypeError = errors.New("wrong type")

func ErrWrongType(field string, want Kind, got any) error {
	return enrich(ErrWrongTypeError, "field «%s» must be %v, got %T", field, want, got)
}

var ErrNotAllowedError = errors.New("value not allowed")

func ErrNotAllowed(field string, got any, allowed []any) error {
	return enrich(ErrNotAllowedError, "field «%s» value «%v» is not one of %v", field, got, allowed)
}

// Spec declares the constraint applied to a single field value.
type Spec struct {
	Field    string
	Kind     Kind
	Item     Kind // element shape when Kind is Kind_Slice
	Required bool
	Default  any
	Allowed  []any
}

// Check verifies v against the spec and returns the effective value.
//
// A nil v yields the default (or ErrMissed when the field is required).
// Numeric values are normalized: ints are widened to int64, Kind_Float
// accepts integral input and returns float64.
func (s Spec) Check(v any) (any, error) {
	if v == nil {
		if s.Required {
			return nil, ErrMissed(s.Field)
		}
		return s.Default, nil
	}

	v, ok := s.conform(s.Kind, v)
	if !ok {
		return nil, ErrWrongType(s.Field, s.Kind, v)
	}

	if len(s.Allowed) > 0 {
		if !allowed(v, s.Allowed) {
			return nil, ErrNotAllowed(s.Field, v, s.Allowed)
		}
	}

	return v, nil
}

func (s Spec) conform(k Kind, v any) (any, bool) {
	switch k {
	case Kind_Bool:
		if b, ok := v.(bool); ok {
			return b, true
		}
		return v, false
	case Kind_Int:
		switch n := v.(type) {
		case int:
			return int64(n), true
		case int64:
			return n, true
		}
		return v, false
	case Kind_Float:
		switch n := v.(type) {
		case float64:
			return n, true
		case int:
			return float64(n), true
		case int64:
			return float64(n), true
		}
		return v, false
	case Kind_String:
		if str, ok := v.(string); ok {
			return str, true
		}
		return v, false
	case Kind_Slice:
		items, ok := v.([]any)
		if !ok {
			return v, false
		}
		item := s.Item
		if item == Kind_null {
			item = Kind_Any
		}
		out := make([]any, len(items))
		for i, it := range items {
			c, ok := s.conform(item, it)
			if !ok {
				return v, false
			}
			out[i] = c
		}
		return out, true
	case Kind_Map:
		if m, ok := v.(map[string]any); ok {
			return m, true
		}
		return v, false
	case Kind_Any:
		return v, true
	}
	return v, false
}

func allowed(v any, set []any) bool {
	for _, a := range set {
		if a == v {
			return true
		}
	}
	return false
}
