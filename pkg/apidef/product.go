/*
 * Copyright (c) 2024-present Provgen authors
 */

package apidef

import (
	"errors"
	"fmt"
)

// Product is the root collection of resources plus the version registry
// they are gated against. Immutable once built.
type Product struct {
	name             string
	prefix           string
	versions         map[string]*Version
	versionsOrdered  []*Version
	resources        map[string]*Resource
	resourcesOrdered []*Resource
}

func newProduct(name, prefix string) *Product {
	return &Product{
		name:      name,
		prefix:    prefix,
		versions:  make(map[string]*Version),
		resources: make(map[string]*Resource),
	}
}

func (p *Product) Name() string { return p.name }

// Prefix is the product-scoped namespace prepended to every generated
// type name, e.g. "Compute".
func (p *Product) Prefix() string { return p.prefix }

// Version returns the registered version by name.
//
// Returns nil if the version is not registered.
func (p *Product) Version(name string) *Version {
	if v, ok := p.versions[name]; ok {
		return v
	}
	return nil
}

// Versions enumerates registered versions in rank order.
func (p *Product) Versions(cb func(*Version)) {
	for _, v := range p.versionsOrdered {
		cb(v)
	}
}

// LowestVersion returns the narrowest registered version. This is the
// effective minimum for resources and properties that declare none.
func (p *Product) LowestVersion() *Version {
	return p.versionsOrdered[0]
}

// Resource returns the resource by name.
//
// Returns nil if the resource is not declared.
func (p *Product) Resource(name string) *Resource {
	if r, ok := p.resources[name]; ok {
		return r
	}
	return nil
}

// Resources enumerates resources in declaration order.
func (p *Product) Resources(cb func(*Resource)) {
	for _, r := range p.resourcesOrdered {
		cb(r)
	}
}

func (p *Product) ResourceCount() int { return len(p.resourcesOrdered) }

func (p *Product) addVersion(name string) *Version {
	v := &Version{name: name, rank: len(p.versionsOrdered)}
	p.versions[name] = v
	p.versionsOrdered = append(p.versionsOrdered, v)
	return v
}

// ProductBuilder assembles a product from a schema declaration.
// The loader wires resources and properties through it, then Build
// validates the whole tree exactly once.
type ProductBuilder struct {
	product   *Product
	resources []*ResourceBuilder
}

// New starts a product declaration. Panics if name is empty.
func New(name, prefix string) *ProductBuilder {
	if name == "" {
		panic(fmt.Errorf("product name cannot be empty: %w", ErrNameMissedError))
	}
	return &ProductBuilder{product: newProduct(name, prefix)}
}

// AddVersion registers the next (wider) version of the product.
// Panics on empty or duplicate names.
func (pb *ProductBuilder) AddVersion(name string) *ProductBuilder {
	if name == "" {
		panic(fmt.Errorf("version name cannot be empty: %w", ErrNameMissedError))
	}
	if pb.product.Version(name) != nil {
		panic(fmt.Errorf("version name «%s» already used: %w", name, ErrNameUniqueViolationError))
	}
	pb.product.addVersion(name)
	return pb
}

// AddResource declares a resource. Panics on empty or duplicate names.
func (pb *ProductBuilder) AddResource(name string) *ResourceBuilder {
	if name == "" {
		panic(fmt.Errorf("resource name cannot be empty: %w", ErrNameMissedError))
	}
	if pb.product.Resource(name) != nil {
		panic(fmt.Errorf("resource name «%s» already used: %w", name, ErrNameUniqueViolationError))
	}
	rb := newResourceBuilder(pb.product, name)
	pb.product.resources[name] = rb.resource
	pb.product.resourcesOrdered = append(pb.product.resourcesOrdered, rb.resource)
	pb.resources = append(pb.resources, rb)
	return rb
}

// Build validates every declared resource and returns the finished
// product. Resources are validated independently and their diagnostics
// joined, so one broken resource does not hide another.
func (pb *ProductBuilder) Build() (*Product, error) {
	if len(pb.product.versionsOrdered) == 0 {
		// canonical ladder when the declaration is silent
		pb.product.addVersion(VersionGA)
		pb.product.addVersion(VersionBeta)
		pb.product.addVersion(VersionAlpha)
	}

	var err error
	for _, rb := range pb.resources {
		err = errors.Join(err, validateResource(rb.resource))
	}
	if err != nil {
		return nil, err
	}
	return pb.product, nil
}

// MustBuild is Build for tests and static declarations; panics on error.
func (pb *ProductBuilder) MustBuild() *Product {
	p, err := pb.Build()
	if err != nil {
		panic(err)
	}
	return p
}
