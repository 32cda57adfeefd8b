/*
 * Copyright (c) 2024-present Provgen authors
 */

package apidef

// ConstantSpec is the payload of a Kind_Constant property: a fixed
// literal the service expects verbatim.
type ConstantSpec struct {
	value string
}

func (c *ConstantSpec) Value() string { return c.value }
