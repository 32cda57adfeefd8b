/*
 * Copyright (c) 2024-present Provgen authors
 */

package apidef

import (
	"fmt"
)

// Update verbs a resource may declare for mutating calls.
const (
	UpdateVerb_PUT   = "PUT"
	UpdateVerb_PATCH = "PATCH"
	UpdateVerb_POST  = "POST"
)

// Resource is one schema unit: an ordered set of top-level properties
// plus resource-wide defaults. It is the lifetime anchor for every
// property it transitively owns.
type Resource struct {
	product      *Product
	name         string
	description  string
	updateVerb   string
	minVersion   string
	exclude      bool
	hasSelfLink  bool
	selfLinkProp *Property
	properties   []*Property
	byName       map[string]*Property
}

func newResource(product *Product, name string) *Resource {
	return &Resource{
		product: product,
		name:    name,
		byName:  make(map[string]*Property),
	}
}

func (r *Resource) Product() *Product { return r.product }

func (r *Resource) Name() string { return r.name }

func (r *Resource) Description() string { return r.description }

// UpdateVerb returns the verb used for updates, UpdateVerb_PUT when the
// declaration is silent.
func (r *Resource) UpdateVerb() string { return r.updateVerb }

// MinVersion returns the declared minimum version name, empty when the
// resource is available from the product's lowest version on.
func (r *Resource) MinVersion() string { return r.minVersion }

func (r *Resource) Excluded() bool { return r.exclude }

// HasSelfLink reports whether the resource exposes the implicit selfLink
// property referencable by other resources.
func (r *Resource) HasSelfLink() bool { return r.hasSelfLink }

// SelfLinkProperty returns the implicit selfLink property.
//
// Returns nil if the resource declares no self link.
func (r *Resource) SelfLinkProperty() *Property { return r.selfLinkProp }

// Property returns the top-level property by name.
//
// Returns nil if no such property is declared.
func (r *Resource) Property(name string) *Property {
	if p, ok := r.byName[name]; ok {
		return p
	}
	return nil
}

// Properties enumerates top-level properties in declaration order.
func (r *Resource) Properties(cb func(*Property)) {
	for _, p := range r.properties {
		cb(p)
	}
}

func (r *Resource) PropertyCount() int { return len(r.properties) }

// ExportedProperties returns the user-visible properties another
// resource may import: every non-excluded top-level property, plus the
// implicit selfLink property when declared.
func (r *Resource) ExportedProperties() []*Property {
	out := make([]*Property, 0, len(r.properties)+1)
	for _, p := range r.properties {
		if !p.Excluded() {
			out = append(out, p)
		}
	}
	if r.hasSelfLink {
		out = append(out, r.selfLinkProp)
	}
	return out
}

// ExcludeIfNotInVersion marks the resource and, transitively, its
// properties excluded when they are not part of the requested version.
// Exclusion is monotonic: the walk never clears a set flag.
func (r *Resource) ExcludeIfNotInVersion(v *Version) {
	if !r.exclude {
		r.exclude = r.notInVersion(v)
	}
	for _, p := range r.properties {
		p.ExcludeIfNotInVersion(v)
	}
}

func (r *Resource) notInVersion(v *Version) bool {
	min := r.product.LowestVersion()
	if r.minVersion != "" {
		min = r.product.Version(r.minVersion)
	}
	return v.Older(min)
}

// ResourceBuilder declares one resource of a product.
type ResourceBuilder struct {
	resource *Resource
}

func newResourceBuilder(product *Product, name string) *ResourceBuilder {
	return &ResourceBuilder{resource: newResource(product, name)}
}

func (rb *ResourceBuilder) SetDescription(d string) *ResourceBuilder {
	rb.resource.description = d
	return rb
}

func (rb *ResourceBuilder) SetUpdateVerb(verb string) *ResourceBuilder {
	rb.resource.updateVerb = verb
	return rb
}

func (rb *ResourceBuilder) SetMinVersion(name string) *ResourceBuilder {
	rb.resource.minVersion = name
	return rb
}

func (rb *ResourceBuilder) SetExclude(exclude bool) *ResourceBuilder {
	rb.resource.exclude = exclude
	return rb
}

// SetSelfLink materializes the implicit selfLink property.
func (rb *ResourceBuilder) SetSelfLink(has bool) *ResourceBuilder {
	r := rb.resource
	r.hasSelfLink = has
	if has && r.selfLinkProp == nil {
		r.selfLinkProp = &Property{
			resource:    r,
			name:        "selfLink",
			kind:        Kind_SelfLink,
			description: "The URI of the resource.",
			output:      true,
		}
	}
	return rb
}

// AddProperty declares a top-level property of the resource.
// Panics on empty or duplicate names and on unusable kinds.
func (rb *ResourceBuilder) AddProperty(name string, kind Kind) *PropertyBuilder {
	r := rb.resource
	if name == "" {
		panic(fmt.Errorf("property name cannot be empty: %w", ErrNameMissedError))
	}
	if r.Property(name) != nil {
		panic(fmt.Errorf("property name «%s» already used in resource «%s»: %w", name, r.name, ErrNameUniqueViolationError))
	}
	pb := newPropertyBuilder(r, nil, name, kind)
	r.properties = append(r.properties, pb.property)
	r.byName[name] = pb.property
	return pb
}
