package normalize

import (
	"testing"

	"github.com/lumenkit/schemakit-go/fieldtype"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func compactJSON() string {
	return `{
		"name": "kyc",
		"fields": [
			{"name": "name", "type": "string"},
			{"name": "age", "type": "uint32", "validation": {"min": 0, "max": 150}},
			{"name": "address", "type": "address"},
			{"name": "memo", "type": "string", "optional": true}
		]
	}`
}

func documentJSON() string {
	return `{
		"$schema": "http://json-schema.org/draft-07/schema#",
		"title": "kyc",
		"type": "object",
		"properties": {
			"name": {"type": "string"},
			"address": {"type": "string", "format": "stellar-address"}
		},
		"required": ["name", "address"]
	}`
}

func TestClassify(t *testing.T) {
	t.Run("binary tag wins regardless of remainder content", func(t *testing.T) {
		detected, err := Classify(BinaryTag + `{"name":"x","fields":[]}`)
		require.NoError(t, err)
		assert.Equal(t, FormatBinary, detected.Format)
	})

	t.Run("invalid JSON is a terminal ParseError, not a fallback", func(t *testing.T) {
		_, err := Classify("{not json")

		var parseErr *ParseError
		require.ErrorAs(t, err, &parseErr)
		assert.Contains(t, parseErr.Error(), "not valid JSON")
		assert.Contains(t, parseErr.Error(), "{not json")
	})

	t.Run("$schema marker routes to schema document", func(t *testing.T) {
		detected, err := Classify(documentJSON())
		require.NoError(t, err)
		assert.Equal(t, FormatSchemaDocument, detected.Format)
		assert.True(t, detected.Marked)
	})

	t.Run("name plus fields routes to compact definition", func(t *testing.T) {
		detected, err := Classify(compactJSON())
		require.NoError(t, err)
		assert.Equal(t, FormatCompactDefinition, detected.Format)
	})

	t.Run("bare properties map routes to schema document", func(t *testing.T) {
		detected, err := Classify(map[string]interface{}{
			"title":      "t",
			"properties": map[string]interface{}{"a": map[string]interface{}{"type": "string"}},
		})
		require.NoError(t, err)
		assert.Equal(t, FormatSchemaDocument, detected.Format)
		assert.False(t, detected.Marked)
	})

	t.Run("empty fields array does not count as a compact definition", func(t *testing.T) {
		detected, err := Classify(map[string]interface{}{
			"name":   "x",
			"fields": []interface{}{},
		})
		require.NoError(t, err)
		assert.Equal(t, FormatRawJSON, detected.Format)
	})

	t.Run("structured values skip the JSON parse", func(t *testing.T) {
		detected, err := Classify(map[string]interface{}{"unrelated": true})
		require.NoError(t, err)
		assert.Equal(t, FormatRawJSON, detected.Format)
	})
}

func TestNormalizeCompact(t *testing.T) {
	t.Run("compact definition maps type tokens through the catalog", func(t *testing.T) {
		result, err := New().Normalize(compactJSON())
		require.NoError(t, err)
		assert.Equal(t, FormatCompactDefinition, result.Format)

		def := result.Definition
		require.NotNil(t, def)
		assert.Equal(t, "kyc", def.Name)
		require.Len(t, def.Fields, 4)

		age, ok := def.Field("age")
		require.True(t, ok)
		assert.Equal(t, fieldtype.Uint32, age.Type)
		require.NotNil(t, age.Validation)
		assert.Equal(t, 0.0, *age.Validation.Min)
		assert.Equal(t, 150.0, *age.Validation.Max)

		memo, _ := def.Field("memo")
		assert.True(t, memo.Optional)
	})

	t.Run("short codes are accepted as type tokens", func(t *testing.T) {
		result, err := New().Normalize(`{"name":"x","fields":[{"name":"v","type":"u32"}]}`)
		require.NoError(t, err)

		v, _ := result.Definition.Field("v")
		assert.Equal(t, fieldtype.Uint32, v.Type)
	})

	t.Run("unknown type tokens pass through unchanged", func(t *testing.T) {
		result, err := New().Normalize(`{"name":"x","fields":[{"name":"v","type":"custom-token"}]}`)
		require.NoError(t, err)

		v, _ := result.Definition.Field("v")
		assert.Equal(t, fieldtype.FieldType("custom-token"), v.Type)
		assert.False(t, v.Type.Known())
	})

	t.Run("duplicate field names violate invariants", func(t *testing.T) {
		_, err := New().Normalize(`{"name":"x","fields":[{"name":"v","type":"string"},{"name":"v","type":"string"}]}`)

		var parseErr *ParseError
		require.ErrorAs(t, err, &parseErr)
	})
}

func TestNormalizeDocument(t *testing.T) {
	t.Run("marked documents pass through unchanged alongside the definition", func(t *testing.T) {
		result, err := New().Normalize(documentJSON())
		require.NoError(t, err)
		assert.Equal(t, FormatSchemaDocument, result.Format)
		require.NotNil(t, result.Document)
		assert.Contains(t, result.Document, "$schema")

		def := result.Definition
		require.NotNil(t, def)
		assert.Equal(t, "kyc", def.Name)

		addr, ok := def.Field("address")
		require.True(t, ok)
		assert.Equal(t, fieldtype.Address, addr.Type)
		assert.False(t, addr.Optional)
	})

	t.Run("optionality is inferred from absence in required", func(t *testing.T) {
		result, err := New().Normalize(map[string]interface{}{
			"title": "t",
			"properties": map[string]interface{}{
				"a": map[string]interface{}{"type": "integer", "minimum": float64(1)},
				"b": map[string]interface{}{"type": "number"},
			},
			"required": []interface{}{"a"},
		})
		require.NoError(t, err)

		a, _ := result.Definition.Field("a")
		assert.Equal(t, fieldtype.Int64, a.Type)
		assert.False(t, a.Optional)
		require.NotNil(t, a.Validation)
		assert.Equal(t, 1.0, *a.Validation.Min)

		b, _ := result.Definition.Field("b")
		assert.Equal(t, fieldtype.Double, b.Type)
		assert.True(t, b.Optional)
	})
}

func TestNormalizeBinary(t *testing.T) {
	t.Run("tagged strings route to the binary decoder", func(t *testing.T) {
		encoded := EncodeBinary(paymentDef())

		result, err := New().Normalize(encoded)
		require.NoError(t, err)
		assert.Equal(t, FormatBinary, result.Format)
		assert.True(t, paymentDef().Equal(result.Definition))
	})

	t.Run("binary decode failure is terminal", func(t *testing.T) {
		_, err := New().Normalize(BinaryTag + "???")
		assert.Error(t, err)
	})
}

func TestNormalizeRawFallback(t *testing.T) {
	t.Run("unrecognized JSON returns opaque result without error", func(t *testing.T) {
		result, err := New().Normalize(`{"unrelated": [1, 2, 3]}`)
		require.NoError(t, err)
		assert.Equal(t, FormatRawJSON, result.Format)
		assert.Nil(t, result.Definition)
		assert.NotNil(t, result.Raw)
	})
}

func TestNormalizeYAML(t *testing.T) {
	t.Run("YAML definitions route through the same classifier", func(t *testing.T) {
		data := []byte(`
name: kyc
fields:
  - name: name
    type: string
  - name: age
    type: uint32
    validation: {min: 0, max: 150}
`)
		result, err := New().NormalizeYAML(data)
		require.NoError(t, err)
		assert.Equal(t, FormatCompactDefinition, result.Format)

		age, ok := result.Definition.Field("age")
		require.True(t, ok)
		assert.Equal(t, fieldtype.Uint32, age.Type)
		require.NotNil(t, age.Validation)
		assert.Equal(t, 150.0, *age.Validation.Max)
	})

	t.Run("invalid YAML is a ParseError", func(t *testing.T) {
		_, err := New().NormalizeYAML([]byte("{:bad"))

		var parseErr *ParseError
		require.ErrorAs(t, err, &parseErr)
	})
}
