package compact

import (
	"testing"

	"github.com/lumenkit/schemakit-go/fieldtype"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestEncode(t *testing.T) {
	t.Run("entries join in slice order", func(t *testing.T) {
		line := Encode([]Entry{
			{Name: "name", Type: fieldtype.String},
			{Name: "age", Type: fieldtype.Uint32},
			{Name: "wallet", Type: fieldtype.Address},
		})

		assert.Equal(t, "s name, u32 age, addr wallet", line)
	})

	t.Run("unknown types encode by their verbose token", func(t *testing.T) {
		line := Encode([]Entry{{Name: "x", Type: fieldtype.FieldType("custom-token")}})
		assert.Equal(t, "custom-token x", line)
	})

	t.Run("empty table encodes to an empty line", func(t *testing.T) {
		assert.Equal(t, "", Encode(nil))
	})
}

func TestDecode(t *testing.T) {
	t.Run("decode splits chunks on the first space", func(t *testing.T) {
		entries, err := Decode("s name, u32 age")
		require.NoError(t, err)
		require.Len(t, entries, 2)
		assert.Equal(t, Entry{Name: "name", Type: fieldtype.String}, entries[0])
		assert.Equal(t, Entry{Name: "age", Type: fieldtype.Uint32}, entries[1])
	})

	t.Run("names with internal spaces are preserved", func(t *testing.T) {
		entries, err := Decode("s full legal name")
		require.NoError(t, err)
		require.Len(t, entries, 1)
		assert.Equal(t, "full legal name", entries[0].Name)
	})

	t.Run("verbose tokens decode like short codes", func(t *testing.T) {
		entries, err := Decode("uint32 age")
		require.NoError(t, err)
		assert.Equal(t, fieldtype.Uint32, entries[0].Type)
	})

	t.Run("unknown tokens pass through unchanged", func(t *testing.T) {
		entries, err := Decode("custom-token x")
		require.NoError(t, err)
		assert.Equal(t, fieldtype.FieldType("custom-token"), entries[0].Type)
	})

	t.Run("chunks without a space are rejected", func(t *testing.T) {
		_, err := Decode("s name, age")

		var decodeErr *DecodeError
		require.ErrorAs(t, err, &decodeErr)
		assert.Equal(t, "age", decodeErr.Chunk)
	})

	t.Run("empty input is rejected", func(t *testing.T) {
		_, err := Decode("   ")
		assert.Error(t, err)
	})
}

func TestRoundTrip(t *testing.T) {
	t.Run("decode of encode yields the original table", func(t *testing.T) {
		original := []Entry{
			{Name: "destination", Type: fieldtype.Address},
			{Name: "amount", Type: fieldtype.Amount},
			{Name: "note to self", Type: fieldtype.String},
			{Name: "at", Type: fieldtype.Timestamp},
		}

		decoded, err := Decode(Encode(original))
		require.NoError(t, err)
		assert.Equal(t, original, decoded)
	})
}
