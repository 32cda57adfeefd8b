/*
 * Copyright (c) 2024-present Provgen authors
 */

package apidef

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestBasicUsage_Property(t *testing.T) {
	require := require.New(t)

	pb := New("compute", "Compute")
	rb := pb.AddResource("Instance")
	rb.AddProperty("name", Kind_String).
		SetDescription("User-chosen instance name.").
		SetRequired(true).
		SetImmutable(true)
	rb.AddProperty("status", Kind_Enum).
		AddEnumValue("PROVISIONING", "RUNNING", "STOPPED").
		SetOutput(true)
	rb.AddProperty("labels", Kind_KeyValuePairs)

	product, err := pb.Build()
	require.NoError(err)

	instance := product.Resource("Instance")
	require.NotNil(instance)
	require.Equal(3, instance.PropertyCount())

	t.Run("must be ok to inspect a built property", func(t *testing.T) {
		name := instance.Property("name")
		require.NotNil(name)
		require.Equal(Kind_String, name.Kind())
		require.True(name.Required())
		require.True(name.Immutable())
		require.False(name.Output())
		require.Equal(instance, name.Resource())
		require.Nil(name.Parent())
	})

	t.Run("must be nil for unknown properties", func(t *testing.T) {
		require.Nil(instance.Property("unknown"))
		require.Nil(product.Resource("Unknown"))
	})

	t.Run("variant accessors are nil off-kind", func(t *testing.T) {
		name := instance.Property("name")
		require.Nil(name.Enum())
		require.Nil(name.Array())
		require.Nil(name.Object())

		status := instance.Property("status")
		require.NotNil(status.Enum())
		require.Equal([]string{"PROVISIONING", "RUNNING", "STOPPED"}, status.Enum().Values())
	})
}

func TestBasicUsage_Lineage(t *testing.T) {
	require := require.New(t)

	pb := New("compute", "Compute")
	rb := pb.AddResource("Instance")
	a := rb.AddProperty("a", Kind_NestedObject)
	b := a.AddProperty("b", Kind_NestedObject)
	c := b.AddProperty("c", Kind_String)
	b.AddProperty("pad", Kind_String)
	a.AddProperty("pad", Kind_String)

	_, err := pb.Build()
	require.NoError(err)

	require.Equal("a", a.Property().Lineage())
	require.Equal("a.b", b.Property().Lineage())
	require.Equal("a.b.c", c.Property().Lineage())
}

func Test_Property_NestedProperties(t *testing.T) {
	require := require.New(t)

	pb := New("compute", "Compute")
	rb := pb.AddResource("Instance")

	obj := rb.AddProperty("config", Kind_NestedObject)
	obj.AddProperty("enabled", Kind_Boolean)
	obj.AddProperty("level", Kind_Integer)

	arr := rb.AddProperty("disks", Kind_Array)
	arr.Item(Kind_NestedObject).AddProperty("source", Kind_String)

	m := rb.AddProperty("metadata", Kind_Map)
	m.Value().AddProperty("value", Kind_String)

	leaf := rb.AddProperty("zone", Kind_String)

	_, err := pb.Build()
	require.NoError(err)

	t.Run("pass-through for nested objects", func(t *testing.T) {
		children := obj.Property().NestedProperties()
		require.Len(children, 2)
		require.Equal("enabled", children[0].Name())
		require.Equal("level", children[1].Name())
	})

	t.Run("delegated for array elements", func(t *testing.T) {
		children := arr.Property().NestedProperties()
		require.Len(children, 1)
		require.Equal("source", children[0].Name())
		require.Equal("disks.source", children[0].Lineage())
	})

	t.Run("delegated for map values", func(t *testing.T) {
		children := m.Property().NestedProperties()
		require.Len(children, 1)
		require.Equal("value", children[0].Name())
	})

	t.Run("nil for leaves", func(t *testing.T) {
		require.Nil(leaf.Property().NestedProperties())
	})
}

func Test_PropertyBuilder_Panics(t *testing.T) {
	require := require.New(t)

	pb := New("compute", "Compute")
	rb := pb.AddResource("Instance")

	require.Panics(func() { rb.AddProperty("", Kind_String) })

	rb.AddProperty("name", Kind_String)
	require.Panics(func() { rb.AddProperty("name", Kind_Integer) })

	require.Panics(func() { rb.AddProperty("bad", Kind_null) })

	t.Run("variant setters panic off-kind", func(t *testing.T) {
		str := rb.AddProperty("zone", Kind_String)
		require.Panics(func() { str.AddEnumValue("A") })
		require.Panics(func() { str.SetItemTypeName("String") })
		require.Panics(func() { str.AddProperty("child", Kind_String) })
		require.Panics(func() { str.SetRefTarget("Network", "selfLink") })
	})

	t.Run("duplicate nested names panic", func(t *testing.T) {
		obj := rb.AddProperty("config", Kind_NestedObject)
		obj.AddProperty("enabled", Kind_Boolean)
		require.Panics(func() { obj.AddProperty("enabled", Kind_String) })
	})
}
