/*
 * Copyright (c) 2024-present Provgen authors
 */

package schemaload

import (
	"strings"

	"golang.org/x/exp/slices"

	"github.com/provgen/provgen/pkg/apidef"
)

// overrideDoc refines a base schema document. Properties are addressed
// by their dotted lineage path; scalar fields take the override's value
// when present, sequence fields merge by order-preserving union, and
// new_type replaces the property's variant while keeping its common
// fields.
type overrideDoc struct {
	Resources []resourceOverrideDoc `yaml:"resources"`
}

type resourceOverrideDoc struct {
	Name        string                `yaml:"name"`
	Description string                `yaml:"description,omitempty"`
	UpdateVerb  string                `yaml:"update_verb,omitempty"`
	MinVersion  string                `yaml:"min_version,omitempty"`
	Exclude     *bool                 `yaml:"exclude,omitempty"`
	Properties  []propertyOverrideDoc `yaml:"properties,omitempty"`
}

type propertyOverrideDoc struct {
	Path               string   `yaml:"path"`
	NewType            string   `yaml:"new_type,omitempty"`
	Description        string   `yaml:"description,omitempty"`
	DeprecationMessage string   `yaml:"deprecation_message,omitempty"`
	RemovedMessage     string   `yaml:"removed_message,omitempty"`
	Exclude            *bool    `yaml:"exclude,omitempty"`
	Output             *bool    `yaml:"output,omitempty"`
	Required           *bool    `yaml:"required,omitempty"`
	Immutable          *bool    `yaml:"immutable,omitempty"`
	Sensitive          *bool    `yaml:"sensitive,omitempty"`
	FlattenObject      *bool    `yaml:"flatten_object,omitempty"`
	Default            any      `yaml:"default_value,omitempty"`
	MinVersion         string   `yaml:"min_version,omitempty"`
	ExactVersion       string   `yaml:"exact_version,omitempty"`
	Values             []string `yaml:"values,omitempty"`
	SkipDocsValues     *bool    `yaml:"skip_docs_values,omitempty"`
	Conflicts          []string `yaml:"conflicts,omitempty"`
}

func applyOverride(doc *productDoc, over *overrideDoc) error {
	for i := range over.Resources {
		ro := &over.Resources[i]
		rd := findResource(doc, ro.Name)
		if rd == nil {
			return apidef.ErrRefNotFound("override names unknown resource «%s»", ro.Name)
		}
		applyResourceOverride(rd, ro)
		for j := range ro.Properties {
			po := &ro.Properties[j]
			pd := findProperty(rd.Properties, po.Path)
			if pd == nil {
				return apidef.ErrImportNotFound("override path «%s» not found in resource «%s»", po.Path, ro.Name)
			}
			applyPropertyOverride(pd, po)
		}
	}
	return nil
}

func findResource(doc *productDoc, name string) *resourceDoc {
	for i := range doc.Resources {
		if doc.Resources[i].Name == name {
			return &doc.Resources[i]
		}
	}
	return nil
}

// findProperty walks a dotted lineage path through nested object
// declarations, including array elements and map value types.
func findProperty(props []*propertyDoc, path string) *propertyDoc {
	segs := strings.Split(path, ".")
	var found *propertyDoc
	for i, seg := range segs {
		found = nil
		for _, p := range props {
			if p.Name == seg {
				found = p
				break
			}
		}
		if found == nil {
			return nil
		}
		if i < len(segs)-1 {
			props = found.childDocs()
		}
	}
	return found
}

func (p *propertyDoc) childDocs() []*propertyDoc {
	switch {
	case p.Properties != nil:
		return p.Properties
	case p.ItemType != nil && p.ItemType.Prop != nil:
		return p.ItemType.Prop.Properties
	case p.ValueType != nil:
		return p.ValueType.Properties
	}
	return nil
}

func applyResourceOverride(rd *resourceDoc, ro *resourceOverrideDoc) {
	if ro.Description != "" {
		rd.Description = ro.Description
	}
	if ro.UpdateVerb != "" {
		rd.UpdateVerb = ro.UpdateVerb
	}
	if ro.MinVersion != "" {
		rd.MinVersion = ro.MinVersion
	}
	if ro.Exclude != nil {
		rd.Exclude = *ro.Exclude
	}
}

func applyPropertyOverride(pd *propertyDoc, po *propertyOverrideDoc) {
	if po.NewType != "" && po.NewType != pd.Type {
		// variant replacement: a fresh declaration of the target kind
		// keeps the common fields, the old payload is dropped
		pd.Type = po.NewType
		pd.Value = ""
		pd.Values = nil
		pd.SkipDocsValues = false
		pd.ItemType = nil
		pd.MinSize, pd.MaxSize = 0, 0
		pd.Properties = nil
		pd.KeyName, pd.KeyDescription, pd.KeyExpander = "", "", ""
		pd.ValueType = nil
		pd.Resource, pd.Imports = "", ""
	}
	if po.Description != "" {
		pd.Description = po.Description
	}
	if po.DeprecationMessage != "" {
		pd.DeprecationMessage = po.DeprecationMessage
	}
	if po.RemovedMessage != "" {
		pd.RemovedMessage = po.RemovedMessage
	}
	if po.Exclude != nil {
		pd.Exclude = *po.Exclude
	}
	if po.Output != nil {
		pd.Output = *po.Output
	}
	if po.Required != nil {
		pd.Required = *po.Required
	}
	if po.Immutable != nil {
		pd.Immutable = *po.Immutable
	}
	if po.Sensitive != nil {
		pd.Sensitive = *po.Sensitive
	}
	if po.FlattenObject != nil {
		pd.FlattenObject = *po.FlattenObject
	}
	if po.Default != nil {
		pd.Default = po.Default
	}
	if po.MinVersion != "" {
		pd.MinVersion = po.MinVersion
	}
	if po.ExactVersion != "" {
		pd.ExactVersion = po.ExactVersion
	}
	if po.SkipDocsValues != nil {
		pd.SkipDocsValues = *po.SkipDocsValues
	}
	pd.Values = unionStrings(pd.Values, po.Values)
	pd.Conflicts = unionStrings(pd.Conflicts, po.Conflicts)
}

// unionStrings mirrors the enum merge rule: base order first, new
// entries appended in override order.
func unionStrings(base, over []string) []string {
	out := slices.Clone(base)
	for _, v := range over {
		if !slices.Contains(out, v) {
			out = append(out, v)
		}
	}
	return out
}
