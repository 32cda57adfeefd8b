/*
 * Copyright (c) 2024-present Provgen authors
 */

package apidef

// MapSpec is the payload of a Kind_Map property: string keys with a
// NestedObject value type. Kind_KeyValuePairs carries no payload; the
// degenerate string-to-string map stays a distinct kind for simpler
// generation.
type MapSpec struct {
	keyName        string
	keyDescription string
	keyExpander    string
	value          *Property
}

// KeyName is the name generated code exposes the map key under.
func (m *MapSpec) KeyName() string { return m.keyName }

func (m *MapSpec) KeyDescription() string { return m.keyDescription }

// KeyExpander names the expansion hook applied to keys on writes,
// "expandString" when the declaration is silent.
func (m *MapSpec) KeyExpander() string { return m.keyExpander }

// Value returns the map's value type property.
//
// Returns nil when the declaration omitted it; validation fails then.
func (m *MapSpec) Value() *Property { return m.value }
