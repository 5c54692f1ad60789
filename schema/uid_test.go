package schema

import (
	"testing"

	"github.com/lumenkit/schemakit-go/fieldtype"
	"github.com/stretchr/testify/assert"
)

func TestComputeUID(t *testing.T) {
	t.Run("identical definitions share a UID", func(t *testing.T) {
		assert.Equal(t, ComputeUID(personDef()), ComputeUID(personDef()))
	})

	t.Run("field order does not change the UID", func(t *testing.T) {
		a := personDef()
		b := personDef()
		b.Fields[0], b.Fields[1] = b.Fields[1], b.Fields[0]

		assert.Equal(t, ComputeUID(a), ComputeUID(b))
	})

	t.Run("type change changes the UID", func(t *testing.T) {
		a := personDef()
		b := personDef()
		b.Fields[1].Type = fieldtype.Uint64

		assert.NotEqual(t, ComputeUID(a), ComputeUID(b))
	})

	t.Run("optional flag change changes the UID", func(t *testing.T) {
		a := personDef()
		b := personDef()
		b.Fields[1].Optional = false

		assert.NotEqual(t, ComputeUID(a), ComputeUID(b))
	})

	t.Run("adding a field changes the UID", func(t *testing.T) {
		a := personDef()
		b := personDef()
		b.Fields = append(b.Fields, FieldDefinition{Name: "email", Type: fieldtype.String})

		assert.NotEqual(t, ComputeUID(a), ComputeUID(b))
	})

	t.Run("embedded separator bytes cannot forge a field boundary", func(t *testing.T) {
		// A description crafted to look like an encoded field must not
		// make a one-field schema collide with the two-field schema it
		// imitates.
		forged := &SchemaDefinition{
			Name:        "s",
			Description: "D\x00field\x00a\x00string\x000\x00",
			Fields:      []FieldDefinition{{Name: "b", Type: fieldtype.Boolean}},
		}
		plain := &SchemaDefinition{
			Name:        "s",
			Description: "D",
			Fields: []FieldDefinition{
				{Name: "a", Type: fieldtype.String},
				{Name: "b", Type: fieldtype.Boolean},
			},
		}

		assert.NotEqual(t, ComputeUID(forged), ComputeUID(plain))
	})

	t.Run("name and description boundaries are unambiguous", func(t *testing.T) {
		a := &SchemaDefinition{
			Name:        "sX",
			Description: "d",
			Fields:      []FieldDefinition{{Name: "f", Type: fieldtype.String}},
		}
		b := &SchemaDefinition{
			Name:        "s",
			Description: "Xd",
			Fields:      []FieldDefinition{{Name: "f", Type: fieldtype.String}},
		}

		assert.NotEqual(t, ComputeUID(a), ComputeUID(b))
	})

	t.Run("validation bounds participate in the UID", func(t *testing.T) {
		a := personDef()
		b := personDef()
		max := 150.0
		b.Fields[1].Validation = &ValidationRules{Max: &max}

		assert.NotEqual(t, ComputeUID(a), ComputeUID(b))
	})
}

func TestUIDRendering(t *testing.T) {
	uid := ComputeUID(personDef())

	t.Run("hex form is 64 lowercase hex characters", func(t *testing.T) {
		hex := uid.Hex()
		assert.Len(t, hex, 64)
		assert.Equal(t, hex, uid.String())
	})

	t.Run("base32 form is unpadded", func(t *testing.T) {
		b32 := uid.Base32()
		assert.NotContains(t, b32, "=")
		assert.Len(t, b32, 52)
	})

	t.Run("Bytes returns a defensive copy", func(t *testing.T) {
		raw := uid.Bytes()
		assert.Len(t, raw, 32)
		raw[0] ^= 0xff
		assert.NotEqual(t, raw[0], uid.Bytes()[0])
	})
}
