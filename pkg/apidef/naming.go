/*
 * Copyright (c) 2024-present Provgen authors
 */

package apidef

import (
	"strings"

	"github.com/provgen/provgen/pkg/strcase"
)

// GeneratedTypeName derives the identifier the emission stage names the
// property's type after: a product-scoped prefix, the owning resource
// and the camelized lineage path. Arrays and maps delegate to their
// element and value types and append a suffix; resource references are
// named after the target resource and imported property.
//
// The derivation is deterministic and collision free within one product:
// two distinct nodes share a name only when they occupy the same
// resource, nesting path and variant.
func (p *Property) GeneratedTypeName() string {
	switch p.kind {
	case Kind_Array:
		if it := p.array.item; it != nil {
			return it.GeneratedTypeName() + "Array"
		}
		return p.qualifiedName() + "Array"
	case Kind_Map:
		if v := p.mapSpec.value; v != nil {
			return v.GeneratedTypeName() + "Map"
		}
		return p.qualifiedName() + "Map"
	case Kind_ResourceRef:
		return p.resource.product.prefix +
			strcase.UpperCamel(p.ref.resource) +
			strcase.UpperCamel(p.ref.imports) + "Ref"
	}
	return p.qualifiedName()
}

// qualifiedName joins the namespace prefix, resource name and every
// lineage segment, each normalized to UpperCamelCase.
func (p *Property) qualifiedName() string {
	var b strings.Builder
	b.WriteString(p.resource.product.prefix)
	b.WriteString(strcase.UpperCamel(p.resource.name))
	for _, seg := range strings.Split(p.Lineage(), ".") {
		b.WriteString(strcase.UpperCamel(seg))
	}
	return b.String()
}
