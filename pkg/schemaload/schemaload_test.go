/*
 * Copyright (c) 2024-present Provgen authors
 */

package schemaload

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/provgen/provgen/pkg/apidef"
)

const computeSchema = `
name: compute
prefix: Compute
resources:
  - name: Network
    self_link: true
    properties:
      - name: name
        type: String
        required: true
        immutable: true
  - name: Instance
    update_verb: PATCH
    properties:
      - name: name
        type: String
        required: true
        validation:
          regex: "^[a-z][-a-z0-9]*$"
      - name: kind
        type: Constant
        value: compute#instance
      - name: status
        type: Enum
        output: true
        values: [PROVISIONING, RUNNING, STOPPED]
      - name: labels
        type: KeyValuePairs
      - name: tags
        type: Array
        item_type: String
      - name: disks
        type: Array
        item_type:
          name: disk
          type: NestedObject
          properties:
            - name: source
              type: String
            - name: boot
              type: Boolean
              default_value: false
      - name: scheduling
        type: NestedObject
        properties:
          - name: preemptible
            type: Boolean
            min_version: beta
          - name: automatic_restart
            type: Boolean
            default_from_api: true
      - name: metadata
        type: Map
        key_name: key
        value_type:
          properties:
            - name: value
              type: String
      - name: network
        type: ResourceRef
        resource: Network
        imports: selfLink
      - name: fingerprint
        type: Fingerprint
`

func TestBasicUsage_Load(t *testing.T) {
	require := require.New(t)

	product, err := Load(strings.NewReader(computeSchema))
	require.NoError(err)

	require.Equal("compute", product.Name())
	require.Equal(2, product.ResourceCount())

	instance := product.Resource("Instance")
	require.NotNil(instance)
	require.Equal(apidef.UpdateVerb_PATCH, instance.UpdateVerb())

	t.Run("scalars and flags are wired through", func(t *testing.T) {
		name := instance.Property("name")
		require.Equal(apidef.Kind_String, name.Kind())
		require.True(name.Required())
		require.NotNil(name.ValidationHook())
		require.Equal("^[a-z][-a-z0-9]*$", name.ValidationHook().Regex)
	})

	t.Run("constants derive their description", func(t *testing.T) {
		kind := instance.Property("kind")
		require.Equal("This is always compute#instance.", kind.Description())
	})

	t.Run("structured array elements recurse", func(t *testing.T) {
		disks := instance.Property("disks")
		item := disks.Array().Item()
		require.NotNil(item)
		require.Equal(apidef.Kind_NestedObject, item.Kind())
		boot := item.Object().Property("boot")
		require.Equal(false, boot.DefaultValue())
	})

	t.Run("by-name array elements are materialized", func(t *testing.T) {
		tags := instance.Property("tags")
		require.Equal(apidef.Kind_String, tags.Array().Item().Kind())
	})

	t.Run("map values and key defaults", func(t *testing.T) {
		metadata := instance.Property("metadata")
		require.Equal("key", metadata.Map().KeyName())
		require.Equal("expandString", metadata.Map().KeyExpander())
		require.NotNil(metadata.Map().Value().Object().Property("value"))
	})

	t.Run("references resolve against the loaded product", func(t *testing.T) {
		network := instance.Property("network")
		target, imported, err := network.Resolve()
		require.NoError(err)
		require.Equal("Network", target.Name())
		require.Equal("selfLink", imported.Name())
	})

	t.Run("fingerprints come out output-only", func(t *testing.T) {
		require.True(instance.Property("fingerprint").Output())
	})
}

func Test_Load_Errors(t *testing.T) {
	require := require.New(t)

	t.Run("unknown property type", func(t *testing.T) {
		_, err := Load(strings.NewReader(`
name: compute
resources:
  - name: Instance
    properties:
      - name: zone
        type: Potato
`))
		require.ErrorIs(err, apidef.ErrUnknownItemTypeError)
	})

	t.Run("validation failures surface", func(t *testing.T) {
		_, err := Load(strings.NewReader(`
name: compute
resources:
  - name: Instance
    properties:
      - name: status
        type: Enum
        output: true
        required: true
        values: [UP]
`))
		require.ErrorIs(err, apidef.ErrMutualExclusionError)
	})

	t.Run("duplicate property names surface as errors", func(t *testing.T) {
		_, err := Load(strings.NewReader(`
name: compute
resources:
  - name: Instance
    properties:
      - name: zone
        type: String
      - name: zone
        type: Integer
`))
		require.ErrorIs(err, apidef.ErrNameUniqueViolationError)
	})

	t.Run("missed product name", func(t *testing.T) {
		_, err := Load(strings.NewReader(`
resources: []
`))
		require.Error(err)
	})

	t.Run("malformed yaml", func(t *testing.T) {
		_, err := Load(strings.NewReader(`{`))
		require.Error(err)
	})
}

func TestBasicUsage_LoadWithOverride(t *testing.T) {
	require := require.New(t)

	const override = `
resources:
  - name: Instance
    update_verb: PUT
    properties:
      - path: status
        description: Narrowed status description.
        values: [REPAIRING]
      - path: labels
        new_type: Map
      - path: scheduling.preemptible
        min_version: ga
`
	product, err := LoadWithOverride(strings.NewReader(computeSchema), strings.NewReader(override))
	require.ErrorIs(err, apidef.ErrFieldMissedError) // Map without value_type

	const goodOverride = `
resources:
  - name: Instance
    update_verb: PUT
    properties:
      - path: status
        description: Narrowed status description.
        values: [REPAIRING]
      - path: scheduling.preemptible
        min_version: ga
`
	product, err = LoadWithOverride(strings.NewReader(computeSchema), strings.NewReader(goodOverride))
	require.NoError(err)

	instance := product.Resource("Instance")
	require.Equal(apidef.UpdateVerb_PUT, instance.UpdateVerb())

	t.Run("enum values merge by union", func(t *testing.T) {
		status := instance.Property("status")
		require.Equal([]string{"PROVISIONING", "RUNNING", "STOPPED", "REPAIRING"}, status.Enum().Values())
		require.Equal("Narrowed status description.", status.Description())
	})

	t.Run("nested paths are addressable", func(t *testing.T) {
		preemptible := instance.Property("scheduling").Object().Property("preemptible")
		require.Equal("ga", preemptible.MinVersion())
	})
}

func Test_LoadWithOverride_NewType(t *testing.T) {
	require := require.New(t)

	const override = `
resources:
  - name: Instance
    properties:
      - path: labels
        new_type: String
`
	product, err := LoadWithOverride(strings.NewReader(computeSchema), strings.NewReader(override))
	require.NoError(err)

	labels := product.Resource("Instance").Property("labels")
	require.Equal(apidef.Kind_String, labels.Kind())
	require.Nil(labels.Map())
}

func Test_LoadWithOverride_Errors(t *testing.T) {
	require := require.New(t)

	t.Run("unknown resource", func(t *testing.T) {
		_, err := LoadWithOverride(strings.NewReader(computeSchema), strings.NewReader(`
resources:
  - name: Missing
`))
		require.ErrorIs(err, apidef.ErrRefNotFoundError)
	})

	t.Run("unknown property path", func(t *testing.T) {
		_, err := LoadWithOverride(strings.NewReader(computeSchema), strings.NewReader(`
resources:
  - name: Instance
    properties:
      - path: scheduling.missing
        description: x
`))
		require.ErrorIs(err, apidef.ErrImportNotFoundError)
	})

	t.Run("partial flatten is rejected at build", func(t *testing.T) {
		_, err := LoadWithOverride(strings.NewReader(computeSchema), strings.NewReader(`
resources:
  - name: Instance
    properties:
      - path: disks.source
        flatten_object: true
`))
		require.ErrorIs(err, apidef.ErrInvalidFieldTypeError)
	})
}
