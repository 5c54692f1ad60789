package schema

import (
	"testing"

	"github.com/lumenkit/schemakit-go/fieldtype"
	"github.com/stretchr/testify/assert"
)

func personDef() *SchemaDefinition {
	return &SchemaDefinition{
		Name: "person",
		Fields: []FieldDefinition{
			{Name: "name", Type: fieldtype.String},
			{Name: "age", Type: fieldtype.Uint32, Optional: true},
		},
	}
}

func TestCheckInvariants(t *testing.T) {
	t.Run("accepts a well-formed definition", func(t *testing.T) {
		assert.NoError(t, personDef().CheckInvariants())
	})

	t.Run("rejects empty schema name", func(t *testing.T) {
		def := personDef()
		def.Name = ""

		err := def.CheckInvariants()
		assert.Error(t, err)
		assert.Contains(t, err.Error(), "name cannot be empty")
	})

	t.Run("rejects a definition without fields", func(t *testing.T) {
		def := &SchemaDefinition{Name: "empty"}

		err := def.CheckInvariants()
		assert.Error(t, err)
		assert.Contains(t, err.Error(), "at least one field")
	})

	t.Run("rejects duplicate field names", func(t *testing.T) {
		def := personDef()
		def.Fields = append(def.Fields, FieldDefinition{Name: "name", Type: fieldtype.String})

		err := def.CheckInvariants()
		assert.Error(t, err)
		assert.Contains(t, err.Error(), "more than once")
	})

	t.Run("rejects empty field names", func(t *testing.T) {
		def := personDef()
		def.Fields[0].Name = ""

		assert.Error(t, def.CheckInvariants())
	})

	t.Run("rejects nil definition", func(t *testing.T) {
		var def *SchemaDefinition
		assert.Error(t, def.CheckInvariants())
	})
}

func TestEqual(t *testing.T) {
	t.Run("field declaration order does not affect equality", func(t *testing.T) {
		a := personDef()
		b := personDef()
		b.Fields[0], b.Fields[1] = b.Fields[1], b.Fields[0]

		assert.True(t, a.Equal(b))
	})

	t.Run("type change breaks equality", func(t *testing.T) {
		a := personDef()
		b := personDef()
		b.Fields[1].Type = fieldtype.Uint64

		assert.False(t, a.Equal(b))
	})

	t.Run("optional flag change breaks equality", func(t *testing.T) {
		a := personDef()
		b := personDef()
		b.Fields[1].Optional = false

		assert.False(t, a.Equal(b))
	})

	t.Run("nil and empty validation rules compare equal", func(t *testing.T) {
		a := personDef()
		b := personDef()
		b.Fields[0].Validation = &ValidationRules{}

		assert.True(t, a.Equal(b))
	})
}

func TestField(t *testing.T) {
	t.Run("Field finds declared fields", func(t *testing.T) {
		f, ok := personDef().Field("age")
		assert.True(t, ok)
		assert.Equal(t, fieldtype.Uint32, f.Type)
	})

	t.Run("Field misses unknown names", func(t *testing.T) {
		_, ok := personDef().Field("missing")
		assert.False(t, ok)
	})
}
