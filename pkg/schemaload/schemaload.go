/*
 * Copyright (c) 2024-present Provgen authors
 */

// Package schemaload reads YAML schema documents and produces wired,
// validated apidef products. An optional override document refines a
// base schema: scalar fields override, enum values merge by union, and
// new_type replaces a property's variant with a fresh node.
package schemaload

import (
	"fmt"
	"io"

	"github.com/untillpro/goutils/logger"
	"gopkg.in/yaml.v3"

	"github.com/provgen/provgen/pkg/apidef"
	"github.com/provgen/provgen/pkg/fieldcheck"
)

type productDoc struct {
	Name      string        `yaml:"name"`
	Prefix    string        `yaml:"prefix"`
	Versions  []string      `yaml:"versions,omitempty"`
	Resources []resourceDoc `yaml:"resources"`
}

type resourceDoc struct {
	Name        string         `yaml:"name"`
	Description string         `yaml:"description,omitempty"`
	UpdateVerb  string         `yaml:"update_verb,omitempty"`
	MinVersion  string         `yaml:"min_version,omitempty"`
	Exclude     bool           `yaml:"exclude,omitempty"`
	SelfLink    bool           `yaml:"self_link,omitempty"`
	Properties  []*propertyDoc `yaml:"properties"`
}

type propertyDoc struct {
	Name               string   `yaml:"name"`
	Type               string   `yaml:"type"`
	Description        string   `yaml:"description,omitempty"`
	DeprecationMessage string   `yaml:"deprecation_message,omitempty"`
	RemovedMessage     string   `yaml:"removed_message,omitempty"`
	Exclude            bool     `yaml:"exclude,omitempty"`
	Output             bool     `yaml:"output,omitempty"`
	Required           bool     `yaml:"required,omitempty"`
	Immutable          bool     `yaml:"immutable,omitempty"`
	URLParamOnly       bool     `yaml:"url_param_only,omitempty"`
	Sensitive          bool     `yaml:"sensitive,omitempty"`
	FlattenObject      bool     `yaml:"flatten_object,omitempty"`
	Default            any      `yaml:"default_value,omitempty"`
	DefaultFromAPI     bool     `yaml:"default_from_api,omitempty"`
	MinVersion         string   `yaml:"min_version,omitempty"`
	ExactVersion       string   `yaml:"exact_version,omitempty"`
	Conflicts          []string `yaml:"conflicts,omitempty"`
	AtLeastOneOf       []string `yaml:"at_least_one_of,omitempty"`
	ExactlyOneOf       []string `yaml:"exactly_one_of,omitempty"`
	RequiredWith       []string `yaml:"required_with,omitempty"`

	Validation *validationDoc `yaml:"validation,omitempty"`

	// Constant
	Value string `yaml:"value,omitempty"`

	// Enum
	Values         []string `yaml:"values,omitempty"`
	SkipDocsValues bool     `yaml:"skip_docs_values,omitempty"`

	// Array
	ItemType *itemDoc `yaml:"item_type,omitempty"`
	MinSize  int64    `yaml:"min_size,omitempty"`
	MaxSize  int64    `yaml:"max_size,omitempty"`

	// NestedObject
	Properties []*propertyDoc `yaml:"properties,omitempty"`

	// Map
	KeyName        string       `yaml:"key_name,omitempty"`
	KeyDescription string       `yaml:"key_description,omitempty"`
	KeyExpander    string       `yaml:"key_expander,omitempty"`
	ValueType      *propertyDoc `yaml:"value_type,omitempty"`

	// ResourceRef
	Resource string `yaml:"resource,omitempty"`
	Imports  string `yaml:"imports,omitempty"`
}

type validationDoc struct {
	Regex    string `yaml:"regex,omitempty"`
	Function string `yaml:"function,omitempty"`
}

// itemDoc accepts an array element declared either as a bare type name
// or as a full property mapping.
type itemDoc struct {
	Name string
	Prop *propertyDoc
}

func (i *itemDoc) UnmarshalYAML(node *yaml.Node) error {
	if node.Kind == yaml.ScalarNode {
		return node.Decode(&i.Name)
	}
	i.Prop = &propertyDoc{}
	return node.Decode(i.Prop)
}

// Load reads a schema document and returns the validated product.
func Load(r io.Reader) (product *apidef.Product, err error) {
	doc, err := decode(r)
	if err != nil {
		return nil, err
	}
	return build(doc)
}

// LoadWithOverride reads a base schema document, refines it with an
// override document, and returns the validated product.
func LoadWithOverride(base, override io.Reader) (*apidef.Product, error) {
	doc, err := decode(base)
	if err != nil {
		return nil, err
	}
	over := &overrideDoc{}
	if err := yaml.NewDecoder(override).Decode(over); err != nil {
		return nil, fmt.Errorf("decoding override document: %w", err)
	}
	if err := applyOverride(doc, over); err != nil {
		return nil, err
	}
	return build(doc)
}

func decode(r io.Reader) (*productDoc, error) {
	doc := &productDoc{}
	if err := yaml.NewDecoder(r).Decode(doc); err != nil {
		return nil, fmt.Errorf("decoding schema document: %w", err)
	}
	return doc, nil
}

// build assembles the product through the apidef builders. Builder
// panics (duplicate or empty names, unusable kinds) are structural
// document defects; they are recovered into the returned error.
func build(doc *productDoc) (product *apidef.Product, err error) {
	defer func() {
		if rec := recover(); rec != nil {
			if e, ok := rec.(error); ok {
				err = e
				return
			}
			err = fmt.Errorf("building schema: %v", rec)
		}
	}()

	if _, err := (fieldcheck.Spec{Field: "name", Kind: fieldcheck.Kind_String, Required: true}).Check(nilIfEmpty(doc.Name)); err != nil {
		return nil, err
	}

	pb := apidef.New(doc.Name, doc.Prefix)
	for _, v := range doc.Versions {
		pb.AddVersion(v)
	}
	for i := range doc.Resources {
		if err := buildResource(pb, &doc.Resources[i]); err != nil {
			return nil, err
		}
	}

	product, err = pb.Build()
	if err != nil {
		return nil, err
	}
	if logger.IsVerbose() {
		logger.Verbose("loaded product", product.Name(), "with", product.ResourceCount(), "resources")
	}
	return product, nil
}

func buildResource(pb *apidef.ProductBuilder, doc *resourceDoc) error {
	if _, err := (fieldcheck.Spec{Field: "resource name", Kind: fieldcheck.Kind_String, Required: true}).Check(nilIfEmpty(doc.Name)); err != nil {
		return err
	}
	rb := pb.AddResource(doc.Name).
		SetDescription(doc.Description).
		SetUpdateVerb(doc.UpdateVerb).
		SetMinVersion(doc.MinVersion).
		SetExclude(doc.Exclude).
		SetSelfLink(doc.SelfLink)
	for _, p := range doc.Properties {
		if _, err := addProperty(rb.AddProperty, p); err != nil {
			return fmt.Errorf("resource «%s»: %w", doc.Name, err)
		}
	}
	return nil
}

// addProperty declares one property through the supplied builder hook
// and recursively declares everything its variant owns.
func addProperty(add func(string, apidef.Kind) *apidef.PropertyBuilder, doc *propertyDoc) (*apidef.PropertyBuilder, error) {
	if _, err := (fieldcheck.Spec{Field: "property type", Kind: fieldcheck.Kind_String, Required: true}).Check(nilIfEmpty(doc.Type)); err != nil {
		return nil, fmt.Errorf("property «%s»: %w", doc.Name, err)
	}
	kind, ok := apidef.ParseKind(doc.Type)
	if !ok {
		return nil, apidef.ErrUnknownItemType("property «%s» has unknown type «%s», expected one of %v", doc.Name, doc.Type, apidef.KindNames())
	}

	pb := add(doc.Name, kind).
		SetDescription(doc.Description).
		SetDeprecationMessage(doc.DeprecationMessage).
		SetRemovedMessage(doc.RemovedMessage).
		SetExclude(doc.Exclude).
		SetOutput(doc.Output).
		SetRequired(doc.Required).
		SetImmutable(doc.Immutable).
		SetURLParamOnly(doc.URLParamOnly).
		SetSensitive(doc.Sensitive).
		SetFlattenObject(doc.FlattenObject).
		SetDefaultFromAPI(doc.DefaultFromAPI).
		SetMinVersion(doc.MinVersion).
		SetExactVersion(doc.ExactVersion).
		SetConflicts(doc.Conflicts...).
		SetAtLeastOneOf(doc.AtLeastOneOf...).
		SetExactlyOneOf(doc.ExactlyOneOf...).
		SetRequiredWith(doc.RequiredWith...)

	if doc.Default != nil {
		pb.SetDefaultValue(normalizeDefault(doc.Default))
	}
	if doc.Validation != nil {
		pb.SetValidation(doc.Validation.Regex, doc.Validation.Function)
	}

	switch kind {
	case apidef.Kind_Constant:
		pb.SetConstantValue(doc.Value)
	case apidef.Kind_Enum:
		pb.AddEnumValue(doc.Values...)
		pb.SetSkipDocsValues(doc.SkipDocsValues)
	case apidef.Kind_Array:
		if err := addArrayItem(pb, doc); err != nil {
			return nil, err
		}
	case apidef.Kind_NestedObject:
		for _, child := range doc.Properties {
			if _, err := addProperty(pb.AddProperty, child); err != nil {
				return nil, fmt.Errorf("in «%s»: %w", doc.Name, err)
			}
		}
	case apidef.Kind_Map:
		pb.SetKeyName(doc.KeyName)
		pb.SetKeyDescription(doc.KeyDescription)
		pb.SetKeyExpander(doc.KeyExpander)
		if doc.ValueType != nil {
			vb := pb.Value()
			for _, child := range doc.ValueType.Properties {
				if _, err := addProperty(vb.AddProperty, child); err != nil {
					return nil, fmt.Errorf("in «%s» value: %w", doc.Name, err)
				}
			}
		}
	case apidef.Kind_ResourceRef:
		pb.SetRefTarget(doc.Resource, doc.Imports)
	}

	return pb, nil
}

func addArrayItem(pb *apidef.PropertyBuilder, doc *propertyDoc) error {
	pb.SetMinSize(doc.MinSize)
	pb.SetMaxSize(doc.MaxSize)
	it := doc.ItemType
	if it == nil {
		return nil // validation reports the missed item_type
	}
	if it.Name != "" {
		pb.SetItemTypeName(it.Name)
		return nil
	}
	kind, ok := apidef.ParseKind(it.Prop.Type)
	if !ok {
		return apidef.ErrUnknownItemType("array «%s» has unknown item type «%s»", doc.Name, it.Prop.Type)
	}
	ib := pb.Item(kind)
	switch kind {
	case apidef.Kind_Enum:
		ib.AddEnumValue(it.Prop.Values...)
	case apidef.Kind_NestedObject:
		for _, child := range it.Prop.Properties {
			if _, err := addProperty(ib.AddProperty, child); err != nil {
				return fmt.Errorf("in «%s» item: %w", doc.Name, err)
			}
		}
	case apidef.Kind_ResourceRef:
		ib.SetRefTarget(it.Prop.Resource, it.Prop.Imports)
	}
	return nil
}

// normalizeDefault narrows YAML's decoded shapes to the ones the model
// accepts: string-keyed maps become map[string]string when every value
// is a string.
func normalizeDefault(v any) any {
	m, ok := v.(map[string]any)
	if !ok {
		return v
	}
	out := make(map[string]string, len(m))
	for k, mv := range m {
		s, ok := mv.(string)
		if !ok {
			return v
		}
		out[k] = s
	}
	return out
}

func nilIfEmpty(s string) any {
	if s == "" {
		return nil
	}
	return s
}
