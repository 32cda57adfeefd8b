/*
 * Copyright (c) 2024-present Provgen authors
 */

package apidef

import (
	"fmt"

	"golang.org/x/exp/slices"
)

// ObjectSpec is the payload of a Kind_NestedObject property: an ordered,
// non-empty sequence of child properties.
type ObjectSpec struct {
	properties []*Property
	byName     map[string]*Property
}

// Property returns the child property by name.
//
// Returns nil if no such child is declared.
func (o *ObjectSpec) Property(name string) *Property {
	if p, ok := o.byName[name]; ok {
		return p
	}
	return nil
}

// Properties enumerates child properties in declaration order.
func (o *ObjectSpec) Properties(cb func(*Property)) {
	for _, p := range o.properties {
		cb(p)
	}
}

func (o *ObjectSpec) PropertyCount() int { return len(o.properties) }

// RootProperties returns the property sequence a generator presents for
// a nested object: children flagged flatten_object are replaced by their
// own root properties, depth first and in declaration order; other
// children pass through unchanged. The underlying tree is not altered.
//
// Panics when called on a property that is not a NestedObject.
func (p *Property) RootProperties() []*Property {
	if p.kind != Kind_NestedObject {
		panic(fmt.Errorf("root properties of «%s»: %w", p.Lineage(),
			ErrInvalidFieldType("%v is not a nested object", p.kind.TrimString())))
	}
	out := make([]*Property, 0, len(p.object.properties))
	for _, child := range p.object.properties {
		if child.flatten && child.kind == Kind_NestedObject {
			out = append(out, child.RootProperties()...)
			continue
		}
		out = append(out, child)
	}
	return slices.Clip(out)
}
