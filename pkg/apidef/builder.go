/*
 * Copyright (c) 2024-present Provgen authors
 */

package apidef

import (
	"fmt"
)

// PropertyBuilder declares one property. Owner and parent references are
// wired at construction and never reassigned; chained setters fill the
// declaration, misuse of a variant setter on the wrong kind panics.
type PropertyBuilder struct {
	property *Property
}

func newPropertyBuilder(resource *Resource, parent *Property, name string, kind Kind) *PropertyBuilder {
	if kind == Kind_null || kind >= Kind_count {
		panic(fmt.Errorf("property «%s» has unusable kind %v: %w", name, kind, ErrUnknownItemTypeError))
	}
	p := &Property{
		resource: resource,
		parent:   parent,
		name:     name,
		kind:     kind,
	}
	switch kind {
	case Kind_Constant:
		p.constant = &ConstantSpec{}
	case Kind_Enum:
		p.enum = &EnumSpec{}
	case Kind_Array:
		p.array = &ArraySpec{}
	case Kind_NestedObject:
		p.object = &ObjectSpec{byName: make(map[string]*Property)}
	case Kind_Map:
		p.mapSpec = &MapSpec{}
	case Kind_ResourceRef:
		p.ref = &RefSpec{}
	}
	return &PropertyBuilder{property: p}
}

// Property returns the node under construction. Loaders use it to
// address built nodes when applying override layers.
func (pb *PropertyBuilder) Property() *Property { return pb.property }

func (pb *PropertyBuilder) SetDescription(d string) *PropertyBuilder {
	pb.property.description = d
	return pb
}

func (pb *PropertyBuilder) SetDeprecationMessage(m string) *PropertyBuilder {
	pb.property.deprecationMessage = m
	return pb
}

func (pb *PropertyBuilder) SetRemovedMessage(m string) *PropertyBuilder {
	pb.property.removedMessage = m
	return pb
}

func (pb *PropertyBuilder) SetExclude(exclude bool) *PropertyBuilder {
	pb.property.exclude = exclude
	return pb
}

func (pb *PropertyBuilder) SetOutput(output bool) *PropertyBuilder {
	pb.property.output = output
	return pb
}

func (pb *PropertyBuilder) SetRequired(required bool) *PropertyBuilder {
	pb.property.required = required
	return pb
}

func (pb *PropertyBuilder) SetImmutable(immutable bool) *PropertyBuilder {
	pb.property.immutable = immutable
	return pb
}

func (pb *PropertyBuilder) SetURLParamOnly(u bool) *PropertyBuilder {
	pb.property.urlParamOnly = u
	return pb
}

func (pb *PropertyBuilder) SetSensitive(sensitive bool) *PropertyBuilder {
	pb.property.sensitive = sensitive
	return pb
}

func (pb *PropertyBuilder) SetFlattenObject(flatten bool) *PropertyBuilder {
	pb.property.flatten = flatten
	return pb
}

func (pb *PropertyBuilder) SetDefaultValue(v any) *PropertyBuilder {
	pb.property.defaultValue = v
	return pb
}

func (pb *PropertyBuilder) SetDefaultFromAPI(d bool) *PropertyBuilder {
	pb.property.defaultFromAPI = d
	return pb
}

func (pb *PropertyBuilder) SetMinVersion(name string) *PropertyBuilder {
	pb.property.minVersion = name
	return pb
}

func (pb *PropertyBuilder) SetExactVersion(name string) *PropertyBuilder {
	pb.property.exactVersion = name
	return pb
}

// Constraint group lists. Members are dotted lineage paths of other
// properties; they are accepted as declared, existence against the tree
// is a generator-time concern.

func (pb *PropertyBuilder) SetConflicts(paths ...string) *PropertyBuilder {
	pb.property.conflicts = paths
	return pb
}

func (pb *PropertyBuilder) SetAtLeastOneOf(paths ...string) *PropertyBuilder {
	pb.property.atLeastOneOf = paths
	return pb
}

func (pb *PropertyBuilder) SetExactlyOneOf(paths ...string) *PropertyBuilder {
	pb.property.exactlyOneOf = paths
	return pb
}

func (pb *PropertyBuilder) SetRequiredWith(paths ...string) *PropertyBuilder {
	pb.property.requiredWith = paths
	return pb
}

// SetValidation attaches the secondary validation hook.
func (pb *PropertyBuilder) SetValidation(regex, function string) *PropertyBuilder {
	pb.property.validation = &Validation{Regex: regex, Function: function}
	return pb
}

// SetConstantValue sets the fixed literal of a Constant property.
func (pb *PropertyBuilder) SetConstantValue(v string) *PropertyBuilder {
	pb.mustBe(Kind_Constant)
	pb.property.constant.value = v
	return pb
}

// AddEnumValue appends literal tokens to an Enum property.
func (pb *PropertyBuilder) AddEnumValue(values ...string) *PropertyBuilder {
	pb.mustBe(Kind_Enum)
	pb.property.enum.values = append(pb.property.enum.values, values...)
	return pb
}

func (pb *PropertyBuilder) SetSkipDocsValues(skip bool) *PropertyBuilder {
	pb.mustBe(Kind_Enum)
	pb.property.enum.skipDocsValues = skip
	return pb
}

// SetItemTypeName declares an Array element by type name. The validator
// resolves the name through the kind registry.
func (pb *PropertyBuilder) SetItemTypeName(name string) *PropertyBuilder {
	pb.mustBe(Kind_Array)
	pb.property.array.itemName = name
	return pb
}

// Item declares an Array element structurally and returns its builder.
// The element shares the array property's name and lineage position.
func (pb *PropertyBuilder) Item(kind Kind) *PropertyBuilder {
	pb.mustBe(Kind_Array)
	p := pb.property
	ib := newPropertyBuilder(p.resource, p.parent, p.name, kind)
	p.array.item = ib.property
	return ib
}

func (pb *PropertyBuilder) SetMinSize(n int64) *PropertyBuilder {
	pb.mustBe(Kind_Array)
	pb.property.array.minSize = n
	return pb
}

func (pb *PropertyBuilder) SetMaxSize(n int64) *PropertyBuilder {
	pb.mustBe(Kind_Array)
	pb.property.array.maxSize = n
	return pb
}

func (pb *PropertyBuilder) SetKeyName(name string) *PropertyBuilder {
	pb.mustBe(Kind_Map)
	pb.property.mapSpec.keyName = name
	return pb
}

func (pb *PropertyBuilder) SetKeyDescription(d string) *PropertyBuilder {
	pb.mustBe(Kind_Map)
	pb.property.mapSpec.keyDescription = d
	return pb
}

func (pb *PropertyBuilder) SetKeyExpander(name string) *PropertyBuilder {
	pb.mustBe(Kind_Map)
	pb.property.mapSpec.keyExpander = name
	return pb
}

// Value declares a Map's value type and returns its builder. Map values
// are always nested objects.
func (pb *PropertyBuilder) Value() *PropertyBuilder {
	pb.mustBe(Kind_Map)
	p := pb.property
	vb := newPropertyBuilder(p.resource, p.parent, p.name, Kind_NestedObject)
	p.mapSpec.value = vb.property
	return vb
}

// SetRefTarget declares the referenced resource and imported property of
// a ResourceRef.
func (pb *PropertyBuilder) SetRefTarget(resource, imports string) *PropertyBuilder {
	pb.mustBe(Kind_ResourceRef)
	pb.property.ref.resource = resource
	pb.property.ref.imports = imports
	return pb
}

// AddProperty declares a child of a NestedObject property.
// Panics on empty or duplicate names.
func (pb *PropertyBuilder) AddProperty(name string, kind Kind) *PropertyBuilder {
	pb.mustBe(Kind_NestedObject)
	p := pb.property
	if name == "" {
		panic(fmt.Errorf("property name cannot be empty in «%s»: %w", p.Lineage(), ErrNameMissedError))
	}
	if p.object.Property(name) != nil {
		panic(fmt.Errorf("property name «%s» already used in «%s»: %w", name, p.Lineage(), ErrNameUniqueViolationError))
	}
	cb := newPropertyBuilder(p.resource, p, name, kind)
	p.object.properties = append(p.object.properties, cb.property)
	p.object.byName[name] = cb.property
	return cb
}

func (pb *PropertyBuilder) mustBe(kind Kind) {
	if pb.property.kind != kind {
		panic(fmt.Errorf("property «%s» is %v, not %v: %w", pb.property.Lineage(),
			pb.property.kind.TrimString(), kind.TrimString(), ErrInvalidFieldTypeError))
	}
}
