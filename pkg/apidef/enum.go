/*
 * Copyright (c) 2024-present Provgen authors
 */

package apidef

import (
	"golang.org/x/exp/slices"
)

// EnumSpec is the payload of a Kind_Enum property: the ordered set of
// literal tokens the service accepts.
type EnumSpec struct {
	values         []string
	skipDocsValues bool
}

// Values returns the declared tokens in declaration order.
func (e *EnumSpec) Values() []string { return slices.Clone(e.values) }

func (e *EnumSpec) ValueCount() int { return len(e.values) }

// SkipDocsValues reports whether generated documentation omits the
// token list.
func (e *EnumSpec) SkipDocsValues() bool { return e.skipDocsValues }

// MergeEnum combines a base enum property with an override declaration
// refining it. Scalar fields take the override's value when set, boolean
// flags survive when set on either side, and sequence fields (values,
// constraint groups) are combined by an order-preserving union: base
// entries first, override entries appended unless already present.
//
// Neither input is mutated; the result is a fresh node wired in the
// base's place.
func MergeEnum(base, override *Property) (*Property, error) {
	if base.kind != Kind_Enum || override.kind != Kind_Enum {
		return nil, ErrInvalidFieldType("enum merge requires two enum properties, got %v and %v",
			base.kind.TrimString(), override.kind.TrimString())
	}

	merged := *base

	if override.description != "" {
		merged.description = override.description
	}
	if override.deprecationMessage != "" {
		merged.deprecationMessage = override.deprecationMessage
	}
	if override.removedMessage != "" {
		merged.removedMessage = override.removedMessage
	}
	if override.minVersion != "" {
		merged.minVersion = override.minVersion
	}
	if override.exactVersion != "" {
		merged.exactVersion = override.exactVersion
	}
	if override.defaultValue != nil {
		merged.defaultValue = override.defaultValue
	}
	if override.validation != nil {
		v := *override.validation
		merged.validation = &v
	}

	merged.exclude = base.exclude || override.exclude
	merged.output = base.output || override.output
	merged.required = base.required || override.required
	merged.immutable = base.immutable || override.immutable
	merged.urlParamOnly = base.urlParamOnly || override.urlParamOnly
	merged.sensitive = base.sensitive || override.sensitive
	merged.defaultFromAPI = base.defaultFromAPI || override.defaultFromAPI

	merged.conflicts = unionStrings(base.conflicts, override.conflicts)
	merged.atLeastOneOf = unionStrings(base.atLeastOneOf, override.atLeastOneOf)
	merged.exactlyOneOf = unionStrings(base.exactlyOneOf, override.exactlyOneOf)
	merged.requiredWith = unionStrings(base.requiredWith, override.requiredWith)

	merged.enum = &EnumSpec{
		values:         unionStrings(base.enum.values, override.enum.values),
		skipDocsValues: base.enum.skipDocsValues || override.enum.skipDocsValues,
	}

	return &merged, nil
}

// unionStrings appends entries of over not already in base, preserving
// the order of both inputs. The result never aliases either input.
func unionStrings(base, over []string) []string {
	out := slices.Clone(base)
	for _, v := range over {
		if !slices.Contains(out, v) {
			out = append(out, v)
		}
	}
	return out
}
