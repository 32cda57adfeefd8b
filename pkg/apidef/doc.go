/*
 * Copyright (c) 2024-present Provgen authors
 */

// Package apidef models the property type schema of a resource
// definition language describing an external service's API surface.
//
// A Product owns Resources; a Resource owns an ordered tree of
// Properties, each of exactly one Kind. The tree is assembled through
// builders, validated exactly once by Build, and read-only afterwards:
// lineage, version gating, reference resolution and generated-type
// naming all operate over the checked tree. The only post-build
// mutation is the exclusion flag set, monotonically, by
// ExcludeIfNotInVersion ahead of emission for a target version.
package apidef
