package validation

import (
	"testing"
	"testing/fstest"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const testSchema = `{
	"$schema": "https://json-schema.org/draft/2020-12/schema",
	"type": "object",
	"properties": {
		"name": {"type": "string"},
		"weight": {"type": "integer", "minimum": 0}
	},
	"required": ["name"]
}`

func testFS() fstest.MapFS {
	return fstest.MapFS{
		"schemas/test.schema.json": {Data: []byte(testSchema)},
		"schemas/broken.json":      {Data: []byte(`{not json`)},
	}
}

func TestSchemaValidator_ValidateBytes(t *testing.T) {
	v := NewSchemaValidator(testFS())

	tests := []struct {
		name     string
		data     string
		errorMsg string
	}{
		{name: "valid data", data: `{"name": "Helm", "weight": 30}`},
		{name: "valid without optional field", data: `{"name": "Helm"}`},
		{name: "missing required field", data: `{"weight": 25}`, errorMsg: "required"},
		{name: "wrong type", data: `{"name": "Helm", "weight": "heavy"}`, errorMsg: "/weight"},
		{name: "below minimum", data: `{"name": "Helm", "weight": -1}`, errorMsg: "minimum"},
		{name: "invalid JSON", data: `{"name": `, errorMsg: "failed to parse JSON data"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := v.ValidateBytes([]byte(tt.data), "schemas/test.schema.json")
			if tt.errorMsg == "" {
				assert.NoError(t, err)
				return
			}
			require.Error(t, err)
			assert.Contains(t, err.Error(), tt.errorMsg)
		})
	}
}

func TestSchemaValidator_SchemaErrors(t *testing.T) {
	v := NewSchemaValidator(testFS())

	err := v.ValidateBytes([]byte(`{}`), "schemas/missing.json")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "failed to read schema file")

	err = v.ValidateBytes([]byte(`{}`), "schemas/broken.json")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "failed to parse schema JSON")
}

func TestSchemaValidator_CachesCompiledSchema(t *testing.T) {
	v := NewSchemaValidator(testFS()).(*validator)

	require.NoError(t, v.ValidateBytes([]byte(`{"name": "a"}`), "schemas/test.schema.json"))
	require.NoError(t, v.ValidateBytes([]byte(`{"name": "b"}`), "schemas/test.schema.json"))

	assert.Len(t, v.schemas, 1)
}
