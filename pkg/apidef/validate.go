/*
 * Copyright (c) 2024-present Provgen authors
 */

package apidef

import (
	"errors"
	"fmt"
	"regexp"

	"github.com/provgen/provgen/pkg/fieldcheck"
)

// validateResource checks resource-level fields, then every top-level
// property. Properties are independent units: their diagnostics are
// joined so one broken property does not hide a sibling, but each
// property itself fails fast on its first violation.
func validateResource(r *Resource) (err error) {
	verb, verr := fieldcheck.Spec{
		Field:   "update_verb",
		Kind:    fieldcheck.Kind_String,
		Default: UpdateVerb_PUT,
		Allowed: []any{UpdateVerb_PUT, UpdateVerb_PATCH, UpdateVerb_POST},
	}.Check(nilIfEmpty(r.updateVerb))
	if verr != nil {
		err = errors.Join(err, ErrInvalidFieldType("resource «%s»: %s", r.name, verr))
	} else {
		r.updateVerb = verb.(string)
	}

	if r.minVersion != "" && r.product.Version(r.minVersion) == nil {
		err = errors.Join(err, ErrVersionNotFound("resource «%s»: min version «%s» is not registered", r.name, r.minVersion))
	}

	for _, p := range r.properties {
		if perr := validateProperty(p); perr != nil {
			err = errors.Join(err, fmt.Errorf("resource «%s»: %w", r.name, perr))
		}
	}

	return err
}

// validateProperty checks the node itself first, failing fast on its
// first violation, then descends into the children its variant owns.
func validateProperty(p *Property) error {
	if err := p.validate(); err != nil {
		return err
	}

	var err error
	for _, child := range p.validatedChildren() {
		err = errors.Join(err, validateProperty(child))
	}
	return err
}

// validatedChildren lists the nodes the validator descends into. Unlike
// NestedProperties this keeps the Array element and Map value themselves,
// so their own declarations are checked too.
func (p *Property) validatedChildren() []*Property {
	switch p.kind {
	case Kind_NestedObject:
		return p.object.properties
	case Kind_Array:
		if p.array.item != nil {
			return []*Property{p.array.item}
		}
	case Kind_Map:
		if p.mapSpec.value != nil {
			return []*Property{p.mapSpec.value}
		}
	}
	return nil
}

// validate checks the node's own declaration: cross-field invariants
// first, then variant-specific structure. Returns the first violation.
// Side effects assign documented defaults (forced output on fingerprints,
// constant descriptions, map key expanders).
func (p *Property) validate() error {
	if p.kind == Kind_Fingerprint {
		// fingerprints are fetched from the service, never declared
		p.output = true
	}

	if p.output && p.required {
		return ErrMutualExclusion("«%s»: output and required", p.Lineage())
	}
	if p.defaultValue != nil && p.defaultFromAPI {
		return ErrMutualExclusion("«%s»: default_value and default_from_api", p.Lineage())
	}

	if p.defaultValue != nil && !p.kind.defaultOK(p.defaultValue) {
		return ErrInvalidFieldType("«%s»: default value «%v» (%T) is not valid for %v",
			p.Lineage(), p.defaultValue, p.defaultValue, p.kind.TrimString())
	}

	if err := p.validateVersions(); err != nil {
		return err
	}

	if p.flatten {
		if p.kind != Kind_NestedObject {
			return ErrInvalidFieldType("«%s»: flatten_object on %v", p.Lineage(), p.kind.TrimString())
		}
		// flattening must stay contiguous up to the presented boundary
		if p.parent != nil && p.parent.parent != nil && !p.parent.flatten {
			return ErrPartialFlatten("«%s»: enclosing object «%s» is not flattened", p.Lineage(), p.parent.Lineage())
		}
	}

	if v := p.validation; v != nil && v.Regex != "" {
		if _, err := regexp.Compile(v.Regex); err != nil {
			return ErrInvalidFieldType("«%s»: validation regex does not compile: %s", p.Lineage(), err)
		}
	}

	switch p.kind {
	case Kind_Constant:
		return p.validateConstant()
	case Kind_Enum:
		return p.validateEnum()
	case Kind_Array:
		return p.validateArray()
	case Kind_NestedObject:
		return p.validateObject()
	case Kind_Map:
		return p.validateMap()
	case Kind_ResourceRef:
		return p.validateRef()
	}
	return nil
}

func (p *Property) validateVersions() error {
	product := p.resource.product
	if p.minVersion != "" && product.Version(p.minVersion) == nil {
		return ErrVersionNotFound("«%s»: min version «%s» is not registered", p.Lineage(), p.minVersion)
	}
	if p.exactVersion != "" && product.Version(p.exactVersion) == nil {
		return ErrVersionNotFound("«%s»: exact version «%s» is not registered", p.Lineage(), p.exactVersion)
	}
	return nil
}

func (p *Property) validateConstant() error {
	if p.constant.value == "" {
		return ErrFieldMissed("«%s»: constant value", p.Lineage())
	}
	if p.description == "" {
		p.description = fmt.Sprintf("This is always %s.", p.constant.value)
	}
	return nil
}

func (p *Property) validateEnum() error {
	if len(p.enum.values) == 0 {
		return ErrFieldMissed("«%s»: enum values", p.Lineage())
	}
	if p.defaultValue != nil {
		allowed := make([]any, len(p.enum.values))
		for i, v := range p.enum.values {
			allowed[i] = v
		}
		if _, err := (fieldcheck.Spec{
			Field:   "default_value",
			Kind:    fieldcheck.Kind_String,
			Allowed: allowed,
		}).Check(p.defaultValue); err != nil {
			return ErrInvalidFieldType("«%s»: %s", p.Lineage(), err)
		}
	}
	return nil
}

func (p *Property) validateArray() error {
	a := p.array
	if a.item == nil {
		if a.itemName == "" {
			return ErrFieldMissed("«%s»: item_type", p.Lineage())
		}
		kind, ok := ParseKind(a.itemName)
		if !ok {
			return ErrUnknownItemType("«%s»: item type «%s»", p.Lineage(), a.itemName)
		}
		if !kind.ItemAvailable() {
			return ErrUnknownItemType("«%s»: %v is not usable as an array element", p.Lineage(), kind.TrimString())
		}
		a.item = newPropertyBuilder(p.resource, p.parent, p.name, kind).property
	} else if !a.item.kind.ItemAvailable() {
		return ErrUnknownItemType("«%s»: %v is not usable as an array element", p.Lineage(), a.item.kind.TrimString())
	}

	if a.minSize < 0 || a.maxSize < 0 {
		return ErrInvalidFieldType("«%s»: negative size bound", p.Lineage())
	}
	if a.maxSize > 0 && a.minSize > a.maxSize {
		return ErrInvalidFieldType("«%s»: min_size %d exceeds max_size %d", p.Lineage(), a.minSize, a.maxSize)
	}
	return nil
}

func (p *Property) validateObject() error {
	if len(p.object.properties) == 0 {
		return ErrEmptyObject("«%s»", p.Lineage())
	}
	return nil
}

func (p *Property) validateMap() error {
	m := p.mapSpec
	if m.value == nil {
		return ErrFieldMissed("«%s»: map value type", p.Lineage())
	}
	if m.value.kind != Kind_NestedObject {
		return ErrUnknownItemType("«%s»: map value must be a nested object, got %v", p.Lineage(), m.value.kind.TrimString())
	}
	if m.keyName == "" {
		m.keyName = "name"
	}
	if m.keyExpander == "" {
		m.keyExpander = "expandString"
	}
	return nil
}

func (p *Property) validateRef() error {
	if p.ref.resource == "" {
		return ErrFieldMissed("«%s»: referenced resource", p.Lineage())
	}
	if p.ref.imports == "" {
		return ErrFieldMissed("«%s»: imported property", p.Lineage())
	}
	_, _, err := p.Resolve()
	return err
}

func nilIfEmpty(s string) any {
	if s == "" {
		return nil
	}
	return s
}
