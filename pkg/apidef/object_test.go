/*
 * Copyright (c) 2024-present Provgen authors
 */

package apidef

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestBasicUsage_RootProperties(t *testing.T) {
	require := require.New(t)

	pb := New("compute", "Compute")
	rb := pb.AddResource("Instance")

	root := rb.AddProperty("root", Kind_NestedObject)
	root.AddProperty("first", Kind_String)
	flat := root.AddProperty("flat", Kind_NestedObject).SetFlattenObject(true)
	flat.AddProperty("inner_a", Kind_String)
	nested := flat.AddProperty("deeper", Kind_NestedObject).SetFlattenObject(true)
	nested.AddProperty("inner_b", Kind_String)
	root.AddProperty("last", Kind_Boolean)

	_, err := pb.Build()
	require.NoError(err)

	t.Run("flattened children are substituted depth-first in order", func(t *testing.T) {
		var names []string
		for _, p := range root.Property().RootProperties() {
			names = append(names, p.Name())
		}
		require.Equal([]string{"first", "inner_a", "inner_b", "last"}, names)
	})

	t.Run("the underlying tree is untouched", func(t *testing.T) {
		require.Equal(3, root.Property().Object().PropertyCount())
		require.Equal("root.flat.inner_a", flat.Property().Object().Property("inner_a").Lineage())
	})

	t.Run("unflagged children pass through", func(t *testing.T) {
		var names []string
		for _, p := range flat.Property().RootProperties() {
			names = append(names, p.Name())
		}
		require.Equal([]string{"inner_a", "inner_b"}, names)
	})

	t.Run("panics off-kind", func(t *testing.T) {
		leaf := root.Property().Object().Property("first")
		require.Panics(func() { leaf.RootProperties() })
	})
}

func Test_ObjectSpec_Lookup(t *testing.T) {
	require := require.New(t)

	pb := New("compute", "Compute")
	obj := pb.AddResource("Instance").AddProperty("config", Kind_NestedObject)
	obj.AddProperty("enabled", Kind_Boolean)

	_, err := pb.Build()
	require.NoError(err)

	o := obj.Property().Object()
	require.NotNil(o.Property("enabled"))
	require.Nil(o.Property("missing"))

	var seen []string
	o.Properties(func(p *Property) { seen = append(seen, p.Name()) })
	require.Equal([]string{"enabled"}, seen)
}
