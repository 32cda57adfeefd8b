/*
 * Copyright (c) 2024-present Provgen authors
 */

package apidef

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestBasicUsage_MergeEnum(t *testing.T) {
	require := require.New(t)

	pb := New("compute", "Compute")
	rb := pb.AddResource("Instance")
	base := rb.AddProperty("status", Kind_Enum).
		AddEnumValue("A", "B").
		SetDescription("Base description.")
	override := rb.AddProperty("statusOverride", Kind_Enum).
		AddEnumValue("B", "C").
		SetDescription("Narrowed description.").
		SetMinVersion("beta")

	_, err := pb.Build()
	require.NoError(err)

	merged, err := MergeEnum(base.Property(), override.Property())
	require.NoError(err)

	t.Run("values union preserves order", func(t *testing.T) {
		require.Equal([]string{"A", "B", "C"}, merged.Enum().Values())
	})

	t.Run("override wins scalars", func(t *testing.T) {
		require.Equal("Narrowed description.", merged.Description())
		require.Equal("beta", merged.MinVersion())
	})

	t.Run("inputs are not mutated", func(t *testing.T) {
		require.Equal([]string{"A", "B"}, base.Property().Enum().Values())
		require.Equal("Base description.", base.Property().Description())
		require.Equal([]string{"B", "C"}, override.Property().Enum().Values())
		require.NotSame(base.Property(), merged)
		require.NotSame(override.Property(), merged)
	})

	t.Run("merged node keeps base wiring", func(t *testing.T) {
		require.Equal(base.Property().Name(), merged.Name())
		require.Equal(base.Property().Resource(), merged.Resource())
	})
}

func Test_MergeEnum_SequenceUnion(t *testing.T) {
	require := require.New(t)

	pb := New("compute", "Compute")
	rb := pb.AddResource("Instance")
	base := rb.AddProperty("status", Kind_Enum).
		AddEnumValue("A").
		SetConflicts("other_status")
	override := rb.AddProperty("statusOverride", Kind_Enum).
		AddEnumValue("A").
		SetConflicts("other_status", "legacy_status").
		SetSkipDocsValues(true)

	_, err := pb.Build()
	require.NoError(err)

	merged, err := MergeEnum(base.Property(), override.Property())
	require.NoError(err)

	require.Equal([]string{"other_status", "legacy_status"}, merged.Conflicts())
	require.True(merged.Enum().SkipDocsValues())
}

func Test_MergeEnum_Associative(t *testing.T) {
	require := require.New(t)

	pb := New("compute", "Compute")
	rb := pb.AddResource("Instance")
	a := rb.AddProperty("a", Kind_Enum).AddEnumValue("A", "B")
	b := rb.AddProperty("b", Kind_Enum).AddEnumValue("B", "C")
	c := rb.AddProperty("c", Kind_Enum).AddEnumValue("C", "D")

	_, err := pb.Build()
	require.NoError(err)

	ab, err := MergeEnum(a.Property(), b.Property())
	require.NoError(err)
	left, err := MergeEnum(ab, c.Property())
	require.NoError(err)

	bc, err := MergeEnum(b.Property(), c.Property())
	require.NoError(err)
	right, err := MergeEnum(a.Property(), bc)
	require.NoError(err)

	require.Equal(left.Enum().Values(), right.Enum().Values())
	require.Equal([]string{"A", "B", "C", "D"}, left.Enum().Values())
}

func Test_MergeEnum_KindMismatch(t *testing.T) {
	require := require.New(t)

	pb := New("compute", "Compute")
	rb := pb.AddResource("Instance")
	e := rb.AddProperty("status", Kind_Enum).AddEnumValue("A")
	s := rb.AddProperty("zone", Kind_String)

	_, err := pb.Build()
	require.NoError(err)

	_, err = MergeEnum(e.Property(), s.Property())
	require.ErrorIs(err, ErrInvalidFieldTypeError)
	_, err = MergeEnum(s.Property(), e.Property())
	require.ErrorIs(err, ErrInvalidFieldTypeError)
}
