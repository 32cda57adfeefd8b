/*
 * Copyright (c) 2024-present Provgen authors
 */

package apidef

import (
	"testing"

	json "github.com/goccy/go-json"
	"github.com/stretchr/testify/require"
)

func TestBasicUsage_Serialize(t *testing.T) {
	require := require.New(t)

	pb := New("compute", "Compute")
	rb := pb.AddResource("Instance")
	rb.AddProperty("name", Kind_String).
		SetDescription("Instance name.").
		SetRequired(true)
	rb.AddProperty("status", Kind_Enum).
		AddEnumValue("RUNNING", "STOPPED").
		SetOutput(true)

	product, err := pb.Build()
	require.NoError(err)

	data, err := json.Marshal(product)
	require.NoError(err)

	var doc map[string]any
	require.NoError(json.Unmarshal(data, &doc))
	require.Equal("compute", doc["name"])
	require.Equal([]any{"ga", "beta", "alpha"}, doc["versions"])

	resources := doc["resources"].([]any)
	require.Len(resources, 1)
	instance := resources[0].(map[string]any)
	require.Equal("Instance", instance["name"])
	require.Equal("PUT", instance["update_verb"])

	props := instance["properties"].([]any)
	require.Len(props, 2)

	t.Run("fields at defaults are omitted", func(t *testing.T) {
		name := props[0].(map[string]any)
		require.Equal("String", name["kind"])
		require.Equal(true, name["required"])
		require.NotContains(name, "output")
		require.NotContains(name, "exclude")
		require.NotContains(name, "default_value")
		require.NotContains(name, "enum")
	})

	t.Run("variant payloads are explicit", func(t *testing.T) {
		status := props[1].(map[string]any)
		require.Equal("Enum", status["kind"])
		enum := status["enum"].(map[string]any)
		require.Equal([]any{"RUNNING", "STOPPED"}, enum["values"])
		require.NotContains(enum, "skip_docs_values")
	})
}

func Test_Serialize_Composites(t *testing.T) {
	require := require.New(t)

	pb := New("compute", "Compute")
	rb := pb.AddResource("Instance")

	arr := rb.AddProperty("disks", Kind_Array).SetMaxSize(16)
	arr.Item(Kind_NestedObject).AddProperty("source", Kind_String)

	rb.AddProperty("network", Kind_ResourceRef).SetRefTarget("Network", "name")
	pb.AddResource("Network").AddProperty("name", Kind_String)

	product, err := pb.Build()
	require.NoError(err)

	data, err := json.Marshal(product.Resource("Instance"))
	require.NoError(err)

	var doc map[string]any
	require.NoError(json.Unmarshal(data, &doc))
	props := doc["properties"].([]any)

	arrDoc := props[0].(map[string]any)
	arrayPayload := arrDoc["array"].(map[string]any)
	require.Equal(float64(16), arrayPayload["max_size"])
	require.NotContains(arrayPayload, "min_size")
	item := arrayPayload["item"].(map[string]any)
	require.Equal("NestedObject", item["kind"])

	refDoc := props[1].(map[string]any)
	refPayload := refDoc["ref"].(map[string]any)
	require.Equal("Network", refPayload["resource"])
	require.Equal("name", refPayload["imports"])
}
