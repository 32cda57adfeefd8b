/*
 * Copyright (c) 2024-present Provgen authors
 */

package apidef

import (
	json "github.com/goccy/go-json"
)

// Serialization emits the effective declared fields of validated nodes,
// omitting fields at their defaults. Every variant owns an explicit
// payload struct; there is no generic field enumeration.

type propertyData struct {
	Name               string   `json:"name"`
	Kind               string   `json:"kind"`
	Description        string   `json:"description,omitempty"`
	DeprecationMessage string   `json:"deprecation_message,omitempty"`
	RemovedMessage     string   `json:"removed_message,omitempty"`
	Exclude            bool     `json:"exclude,omitempty"`
	Output             bool     `json:"output,omitempty"`
	Required           bool     `json:"required,omitempty"`
	Immutable          bool     `json:"immutable,omitempty"`
	URLParamOnly       bool     `json:"url_param_only,omitempty"`
	Sensitive          bool     `json:"sensitive,omitempty"`
	FlattenObject      bool     `json:"flatten_object,omitempty"`
	DefaultValue       any      `json:"default_value,omitempty"`
	DefaultFromAPI     bool     `json:"default_from_api,omitempty"`
	MinVersion         string   `json:"min_version,omitempty"`
	ExactVersion       string   `json:"exact_version,omitempty"`
	Conflicts          []string `json:"conflicts,omitempty"`
	AtLeastOneOf       []string `json:"at_least_one_of,omitempty"`
	ExactlyOneOf       []string `json:"exactly_one_of,omitempty"`
	RequiredWith       []string `json:"required_with,omitempty"`

	Validation *validationData `json:"validation,omitempty"`

	Constant *constantData `json:"constant,omitempty"`
	Enum     *enumData     `json:"enum,omitempty"`
	Array    *arrayData    `json:"array,omitempty"`
	Object   *objectData   `json:"object,omitempty"`
	Map      *mapData      `json:"map,omitempty"`
	Ref      *refData      `json:"ref,omitempty"`
}

type validationData struct {
	Regex    string `json:"regex,omitempty"`
	Function string `json:"function,omitempty"`
}

type constantData struct {
	Value string `json:"value"`
}

type enumData struct {
	Values         []string `json:"values"`
	SkipDocsValues bool     `json:"skip_docs_values,omitempty"`
}

type arrayData struct {
	Item    *Property `json:"item,omitempty"`
	MinSize int64     `json:"min_size,omitempty"`
	MaxSize int64     `json:"max_size,omitempty"`
}

type objectData struct {
	Properties []*Property `json:"properties"`
}

type mapData struct {
	KeyName        string    `json:"key_name,omitempty"`
	KeyDescription string    `json:"key_description,omitempty"`
	KeyExpander    string    `json:"key_expander,omitempty"`
	Value          *Property `json:"value,omitempty"`
}

type refData struct {
	Resource string `json:"resource"`
	Imports  string `json:"imports"`
}

func (c *ConstantSpec) marshal() *constantData {
	return &constantData{Value: c.value}
}

func (e *EnumSpec) marshal() *enumData {
	return &enumData{Values: e.values, SkipDocsValues: e.skipDocsValues}
}

func (a *ArraySpec) marshal() *arrayData {
	return &arrayData{Item: a.item, MinSize: a.minSize, MaxSize: a.maxSize}
}

func (o *ObjectSpec) marshal() *objectData {
	return &objectData{Properties: o.properties}
}

func (m *MapSpec) marshal() *mapData {
	return &mapData{KeyName: m.keyName, KeyDescription: m.keyDescription, KeyExpander: m.keyExpander, Value: m.value}
}

func (r *RefSpec) marshal() *refData {
	return &refData{Resource: r.resource, Imports: r.imports}
}

func (p *Property) MarshalJSON() ([]byte, error) {
	d := propertyData{
		Name:               p.name,
		Kind:               p.kind.TrimString(),
		Description:        p.description,
		DeprecationMessage: p.deprecationMessage,
		RemovedMessage:     p.removedMessage,
		Exclude:            p.exclude,
		Output:             p.output,
		Required:           p.required,
		Immutable:          p.immutable,
		URLParamOnly:       p.urlParamOnly,
		Sensitive:          p.sensitive,
		FlattenObject:      p.flatten,
		DefaultValue:       p.defaultValue,
		DefaultFromAPI:     p.defaultFromAPI,
		MinVersion:         p.minVersion,
		ExactVersion:       p.exactVersion,
		Conflicts:          p.conflicts,
		AtLeastOneOf:       p.atLeastOneOf,
		ExactlyOneOf:       p.exactlyOneOf,
		RequiredWith:       p.requiredWith,
	}
	if v := p.validation; v != nil {
		d.Validation = &validationData{Regex: v.Regex, Function: v.Function}
	}
	switch p.kind {
	case Kind_Constant:
		d.Constant = p.constant.marshal()
	case Kind_Enum:
		d.Enum = p.enum.marshal()
	case Kind_Array:
		d.Array = p.array.marshal()
	case Kind_NestedObject:
		d.Object = p.object.marshal()
	case Kind_Map:
		d.Map = p.mapSpec.marshal()
	case Kind_ResourceRef:
		d.Ref = p.ref.marshal()
	}
	return json.Marshal(d)
}

type resourceData struct {
	Name        string      `json:"name"`
	Description string      `json:"description,omitempty"`
	UpdateVerb  string      `json:"update_verb,omitempty"`
	MinVersion  string      `json:"min_version,omitempty"`
	Exclude     bool        `json:"exclude,omitempty"`
	SelfLink    bool        `json:"self_link,omitempty"`
	Properties  []*Property `json:"properties"`
}

func (r *Resource) MarshalJSON() ([]byte, error) {
	return json.Marshal(resourceData{
		Name:        r.name,
		Description: r.description,
		UpdateVerb:  r.updateVerb,
		MinVersion:  r.minVersion,
		Exclude:     r.exclude,
		SelfLink:    r.hasSelfLink,
		Properties:  r.properties,
	})
}

type productData struct {
	Name      string      `json:"name"`
	Prefix    string      `json:"prefix,omitempty"`
	Versions  []string    `json:"versions"`
	Resources []*Resource `json:"resources"`
}

func (p *Product) MarshalJSON() ([]byte, error) {
	versions := make([]string, len(p.versionsOrdered))
	for i, v := range p.versionsOrdered {
		versions[i] = v.name
	}
	return json.Marshal(productData{
		Name:      p.name,
		Prefix:    p.prefix,
		Versions:  versions,
		Resources: p.resourcesOrdered,
	})
}
