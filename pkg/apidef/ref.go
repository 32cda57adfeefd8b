/*
 * Copyright (c) 2024-present Provgen authors
 */

package apidef

import (
	"fmt"
)

// RefSpec is the payload of a Kind_ResourceRef property: the name of a
// sibling resource and the name of the property imported from it. The
// target is never held directly; it is re-resolved by name through the
// owning product on every lookup, so reference cycles between resources
// stay representable.
type RefSpec struct {
	resource string
	imports  string
}

// ResourceName returns the referenced resource's name.
func (r *RefSpec) ResourceName() string { return r.resource }

// Imports returns the name of the property imported from the target.
func (r *RefSpec) Imports() string { return r.imports }

// Resolve looks up the reference target: the resource by name in the
// owning product, then the imported property among the target's
// exported properties (including its implicit selfLink when declared).
//
// Panics when called on a property that is not a ResourceRef.
func (p *Property) Resolve() (*Resource, *Property, error) {
	if p.kind != Kind_ResourceRef {
		panic(fmt.Errorf("resolve «%s»: %w", p.Lineage(),
			ErrInvalidFieldType("%v is not a resource reference", p.kind.TrimString())))
	}

	target := p.resource.product.Resource(p.ref.resource)
	if target == nil {
		return nil, nil, ErrRefNotFound("«%s» references unknown resource «%s»", p.Lineage(), p.ref.resource)
	}

	for _, exp := range target.ExportedProperties() {
		if exp.Name() == p.ref.imports {
			return target, exp, nil
		}
	}
	return nil, nil, ErrImportNotFound("«%s» imports «%s» which resource «%s» does not export",
		p.Lineage(), p.ref.imports, target.Name())
}
