/*
 * Copyright (c) 2024-present Provgen authors
 */

package apidef

import (
	"golang.org/x/exp/slices"
)

// Property is a single declared property: common metadata and flags plus
// exactly one variant payload selected by Kind. Back references to the
// owning resource and the enclosing composite are wired once at build
// time and never change.
type Property struct {
	resource *Resource
	parent   *Property

	name               string
	kind               Kind
	description        string
	deprecationMessage string
	removedMessage     string

	exclude      bool
	output       bool
	required     bool
	immutable    bool
	urlParamOnly bool
	sensitive    bool
	flatten      bool

	defaultValue   any
	defaultFromAPI bool

	minVersion   string
	exactVersion string

	conflicts    []string
	atLeastOneOf []string
	exactlyOneOf []string
	requiredWith []string

	validation *Validation

	constant *ConstantSpec
	enum     *EnumSpec
	array    *ArraySpec
	object   *ObjectSpec
	mapSpec  *MapSpec
	ref      *RefSpec
}

// Validation is a secondary validation hook attached to a property, not
// a property kind of its own: a regex the value must match and/or the
// name of a custom validation function known to the emission stage.
type Validation struct {
	Regex    string
	Function string
}

func (p *Property) Resource() *Resource { return p.resource }

// Parent returns the nearest enclosing composite property.
//
// Returns nil for top-level properties.
func (p *Property) Parent() *Property { return p.parent }

func (p *Property) Name() string { return p.name }

func (p *Property) Kind() Kind { return p.kind }

func (p *Property) Description() string { return p.description }

func (p *Property) DeprecationMessage() string { return p.deprecationMessage }

func (p *Property) RemovedMessage() string { return p.removedMessage }

func (p *Property) Excluded() bool { return p.exclude }

func (p *Property) Output() bool { return p.output }

func (p *Property) Required() bool { return p.required }

func (p *Property) Immutable() bool { return p.immutable }

func (p *Property) URLParamOnly() bool { return p.urlParamOnly }

func (p *Property) Sensitive() bool { return p.sensitive }

// FlattenObject reports whether the property's own properties replace it
// in the sequence presented to generators. See RootProperties.
func (p *Property) FlattenObject() bool { return p.flatten }

// DefaultValue returns the declared default, nil when none is set.
func (p *Property) DefaultValue() any { return p.defaultValue }

// DefaultFromAPI reports whether the service supplies the effective
// default, mutually exclusive with DefaultValue.
func (p *Property) DefaultFromAPI() bool { return p.defaultFromAPI }

func (p *Property) MinVersion() string { return p.minVersion }

func (p *Property) ExactVersion() string { return p.exactVersion }

func (p *Property) Conflicts() []string { return slices.Clone(p.conflicts) }

func (p *Property) AtLeastOneOf() []string { return slices.Clone(p.atLeastOneOf) }

func (p *Property) ExactlyOneOf() []string { return slices.Clone(p.exactlyOneOf) }

func (p *Property) RequiredWith() []string { return slices.Clone(p.requiredWith) }

// ValidationHook returns the attached validation descriptor.
//
// Returns nil when the property declares none.
func (p *Property) ValidationHook() *Validation { return p.validation }

// Variant payload accessors. Each returns nil unless the property is of
// the matching kind.

func (p *Property) Constant() *ConstantSpec { return p.constant }

func (p *Property) Enum() *EnumSpec { return p.enum }

func (p *Property) Array() *ArraySpec { return p.array }

func (p *Property) Object() *ObjectSpec { return p.object }

func (p *Property) Map() *MapSpec { return p.mapSpec }

func (p *Property) Ref() *RefSpec { return p.ref }

// Lineage returns the dot-joined chain of ancestor names from the root
// property down to p, e.g. "boot_disk.initialize_params.image".
// Top-level properties return their own name.
//
// Lineage identifies a node for diagnostics and for constraint group
// members; it is not guaranteed unique once flattening rewrites the
// sequence presented to generators.
func (p *Property) Lineage() string {
	if p.parent == nil {
		return p.name
	}
	return p.parent.Lineage() + "." + p.name
}

// NestedProperties returns the child properties a generator descends
// into: the object's own properties for a NestedObject, the element's
// children for an Array, the value type's children for a Map. Leaf kinds
// return nil.
func (p *Property) NestedProperties() []*Property {
	switch p.kind {
	case Kind_NestedObject:
		return slices.Clone(p.object.properties)
	case Kind_Array:
		if p.array.item != nil {
			return p.array.item.NestedProperties()
		}
	case Kind_Map:
		if p.mapSpec.value != nil {
			return p.mapSpec.value.NestedProperties()
		}
	}
	return nil
}

// ExcludeIfNotInVersion marks the property excluded when it is not part
// of the requested version, and recurses into nested structures: every
// child of a NestedObject, an Array element when it is itself a
// NestedObject, and a Map value type. Exclusion is monotonic and
// idempotent per version.
func (p *Property) ExcludeIfNotInVersion(v *Version) {
	if !p.exclude {
		p.exclude = p.notInVersion(v)
	}
	switch p.kind {
	case Kind_NestedObject:
		for _, child := range p.object.properties {
			child.ExcludeIfNotInVersion(v)
		}
	case Kind_Array:
		if it := p.array.item; it != nil && it.kind == Kind_NestedObject {
			it.ExcludeIfNotInVersion(v)
		}
	case Kind_Map:
		if val := p.mapSpec.value; val != nil {
			val.ExcludeIfNotInVersion(v)
		}
	}
}

func (p *Property) notInVersion(v *Version) bool {
	if p.exactVersion != "" {
		return p.exactVersion != v.Name()
	}
	return v.Older(p.effectiveMinVersion())
}

// effectiveMinVersion resolves the property's minimum version: its own
// declaration, else the owning resource's, else the product's lowest.
func (p *Property) effectiveMinVersion() *Version {
	product := p.resource.product
	if p.minVersion != "" {
		return product.Version(p.minVersion)
	}
	if p.resource.minVersion != "" {
		return product.Version(p.resource.minVersion)
	}
	return product.LowestVersion()
}
