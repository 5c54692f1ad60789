package schema

import (
	"crypto/sha256"
	"encoding/base32"
	"encoding/binary"
	"encoding/hex"
	"sort"
	"strconv"
)

// UID is the content-addressed identifier of a schema: a SHA-256 digest
// over the definition's canonical bytes. Definitions with identical content
// share a UID regardless of which source encoding they arrived in.
type UID [sha256.Size]byte

// Bytes returns the raw digest.
func (u UID) Bytes() []byte {
	out := make([]byte, len(u))
	copy(out, u[:])
	return out
}

// Hex returns the digest as lowercase hex, the usual registry key form.
func (u UID) Hex() string {
	return hex.EncodeToString(u[:])
}

// Base32 returns the digest as unpadded base32 for length-sensitive keys.
func (u UID) Base32() string {
	return base32.StdEncoding.WithPadding(base32.NoPadding).EncodeToString(u[:])
}

// String implements fmt.Stringer using the hex form.
func (u UID) String() string {
	return u.Hex()
}

// ComputeUID derives the UID for a definition. The canonical byte form
// walks the definition explicitly with fields sorted by name, so the result
// is independent of map iteration order, declaration order, and host
// serializer quirks.
func ComputeUID(def *SchemaDefinition) UID {
	h := sha256.New()
	h.Write(canonicalBytes(def))
	var uid UID
	copy(uid[:], h.Sum(nil))
	return uid
}

// canonicalBytes renders a definition as a stable byte sequence. Every
// value is framed with a uvarint length prefix and the field count is
// written explicitly, so no value content can forge a value or field
// boundary: the encoding is injective over definitions. Each field writes
// a fixed set of values, with empty bounds and pattern standing in when no
// rules are declared (nil and empty rules already compare equal).
func canonicalBytes(def *SchemaDefinition) []byte {
	fields := make([]FieldDefinition, len(def.Fields))
	copy(fields, def.Fields)
	sort.Slice(fields, func(i, j int) bool { return fields[i].Name < fields[j].Name })

	var buf []byte
	buf = appendValue(buf, "schema")
	buf = appendValue(buf, def.Name)
	buf = appendValue(buf, def.Description)
	buf = binary.AppendUvarint(buf, uint64(len(fields)))

	for _, f := range fields {
		buf = appendValue(buf, f.Name)
		buf = appendValue(buf, string(f.Type))
		if f.Optional {
			buf = appendValue(buf, "1")
		} else {
			buf = appendValue(buf, "0")
		}
		buf = appendValue(buf, f.Description)
		if emptyRules(f.Validation) {
			buf = appendValue(buf, "")
			buf = appendValue(buf, "")
			buf = appendValue(buf, "")
		} else {
			buf = appendValue(buf, formatBound(f.Validation.Min))
			buf = appendValue(buf, formatBound(f.Validation.Max))
			buf = appendValue(buf, f.Validation.Pattern)
		}
	}

	return buf
}

func appendValue(buf []byte, v string) []byte {
	buf = binary.AppendUvarint(buf, uint64(len(v)))
	return append(buf, v...)
}

func formatBound(v *float64) string {
	if v == nil {
		return ""
	}
	return strconv.FormatFloat(*v, 'g', -1, 64)
}
