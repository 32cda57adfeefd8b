/*
 * Copyright (c) 2024-present Provgen authors
 */

package apidef

// ArraySpec is the payload of a Kind_Array property. The element is
// declared either by primitive type name or as a structured property
// (NestedObject, ResourceRef, Enum); the validator resolves a declared
// name into a materialized element exactly once.
type ArraySpec struct {
	itemName string
	item     *Property
	minSize  int64
	maxSize  int64
}

// ItemName returns the raw declared element type name, empty when the
// element was declared structurally.
func (a *ArraySpec) ItemName() string { return a.itemName }

// Item returns the materialized element property.
//
// Returns nil before validation when the element was declared by name.
func (a *ArraySpec) Item() *Property { return a.item }

// MinSize returns the declared minimum element count, 0 when unset.
func (a *ArraySpec) MinSize() int64 { return a.minSize }

// MaxSize returns the declared maximum element count, 0 when unset.
func (a *ArraySpec) MaxSize() int64 { return a.maxSize }
