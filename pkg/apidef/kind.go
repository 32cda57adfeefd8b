/*
 * Copyright (c) 2024-present Provgen authors
 */

package apidef

import (
	"fmt"
	"strings"

	"golang.org/x/exp/maps"
	"golang.org/x/exp/slices"
)

// Property kinds enumeration
type Kind uint8

const (
	Kind_null Kind = iota

	// Fixed literal value, never sent by the caller
	Kind_Constant

	// Leaf scalar kinds
	Kind_Boolean
	Kind_Integer
	Kind_Double
	Kind_String
	Kind_Path
	Kind_Time

	// Values fetched from the service, never sent on writes
	Kind_Fingerprint
	Kind_SelfLink

	// Ordered set of literal tokens
	Kind_Enum

	// Composite kinds
	Kind_Array
	Kind_NestedObject
	Kind_Map
	Kind_KeyValuePairs

	// Reference to another resource's exported property
	Kind_ResourceRef

	Kind_count
)

var kindNames = [Kind_count]string{
	"Kind_null",
	"Kind_Constant",
	"Kind_Boolean",
	"Kind_Integer",
	"Kind_Double",
	"Kind_String",
	"Kind_Path",
	"Kind_Time",
	"Kind_Fingerprint",
	"Kind_SelfLink",
	"Kind_Enum",
	"Kind_Array",
	"Kind_NestedObject",
	"Kind_Map",
	"Kind_KeyValuePairs",
	"Kind_ResourceRef",
}

func (k Kind) String() string {
	if k < Kind_count {
		return kindNames[k]
	}
	return fmt.Sprintf("Kind(%d)", uint8(k))
}

// Renders a Kind in human-readable form, without the `Kind_` prefix,
// suitable for error messages and serialized output
func (k Kind) TrimString() string {
	const pref = "Kind_"
	return strings.TrimPrefix(k.String(), pref)
}

// Is the kind a leaf scalar sent to and from the service.
func (k Kind) IsPrimitive() bool {
	return kindProps[k].primitive
}

// Is the kind a container recursing into child properties.
func (k Kind) IsComposite() bool {
	return kindProps[k].composite
}

// Is the kind fetched from the service and never sent on writes.
func (k Kind) IsFetched() bool {
	return kindProps[k].fetched
}

// Is the kind legal as an Array element.
func (k Kind) ItemAvailable() bool {
	return kindProps[k].item
}

// defaultOK reports whether v is an acceptable declared default for the kind.
// Kinds without a defaultOK entry accept no default at all.
func (k Kind) defaultOK(v any) bool {
	f := kindProps[k].defaultOK
	return f != nil && f(v)
}

type kindPropsType struct {
	primitive bool
	composite bool
	fetched   bool
	item      bool
	defaultOK func(v any) bool
}

func isString(v any) bool { _, ok := v.(string); return ok }

func isBool(v any) bool { _, ok := v.(bool); return ok }

func isInt(v any) bool {
	switch v.(type) {
	case int, int64:
		return true
	}
	return false
}

func isFloat(v any) bool {
	if _, ok := v.(float64); ok {
		return true
	}
	return isInt(v)
}

// string, or an object of string fields for a cross-resource default
func isStringOrObject(v any) bool {
	switch v.(type) {
	case string, map[string]string:
		return true
	}
	return false
}

func isStringMap(v any) bool { _, ok := v.(map[string]string); return ok }

var kindProps = [Kind_count]kindPropsType{
	Kind_Constant:      {},
	Kind_Boolean:       {primitive: true, item: true, defaultOK: isBool},
	Kind_Integer:       {primitive: true, item: true, defaultOK: isInt},
	Kind_Double:        {primitive: true, item: true, defaultOK: isFloat},
	Kind_String:        {primitive: true, item: true, defaultOK: isString},
	Kind_Path:          {primitive: true, item: true, defaultOK: isString},
	Kind_Time:          {primitive: true, item: true, defaultOK: isString},
	Kind_Fingerprint:   {primitive: true, fetched: true},
	Kind_SelfLink:      {primitive: true, fetched: true},
	Kind_Enum:          {item: true, defaultOK: isString},
	Kind_Array:         {composite: true},
	Kind_NestedObject:  {composite: true, item: true},
	Kind_Map:           {composite: true},
	Kind_KeyValuePairs: {composite: true, defaultOK: isStringMap},
	Kind_ResourceRef:   {item: true, defaultOK: isStringOrObject},
}

// kindRegistry maps declared type names to kinds. Populated at startup and
// checked exhaustive: every kind has a registered name and vice versa.
var kindRegistry = make(map[string]Kind)

func init() {
	for k := Kind(1); k < Kind_count; k++ {
		name := k.TrimString()
		if name == "" || strings.HasPrefix(name, "Kind(") {
			panic(fmt.Errorf("kind %d has no registered name: %w", uint8(k), ErrNameMissedError))
		}
		if _, dup := kindRegistry[name]; dup {
			panic(fmt.Errorf("kind name «%s» registered twice: %w", name, ErrNameUniqueViolationError))
		}
		kindRegistry[name] = k
	}
}

// ParseKind resolves a declared type name ("Boolean", "NestedObject", …)
// to its kind. Returns Kind_null and false for unregistered names.
func ParseKind(name string) (Kind, bool) {
	k, ok := kindRegistry[name]
	return k, ok
}

// KindNames returns the registered type names in alphabetical order.
func KindNames() []string {
	names := maps.Keys(kindRegistry)
	slices.Sort(names)
	return names
}
