package normalize

import (
	"encoding/base64"
	"encoding/binary"
	"fmt"
	"strings"

	"github.com/lumenkit/schemakit-go/fieldtype"
	"github.com/lumenkit/schemakit-go/schema"
)

// BinaryTag is the fixed prefix marking binary-encoded schema payloads.
// The remainder of the string is the base64 (standard alphabet) encoding
// of the binary payload.
const BinaryTag = "xdr1:"

const binaryVersion byte = 1

const optionalFlag byte = 1 << 0

// EncodeBinary renders a definition in the compact binary form: the tag,
// then base64 over a length-prefixed payload of the schema name,
// description, and one (name, type code, flags) triple per field in
// declaration order. Types outside the catalog are written by their
// verbose token.
func EncodeBinary(def *schema.SchemaDefinition) string {
	var buf []byte
	buf = append(buf, binaryVersion)
	buf = appendString(buf, def.Name)
	buf = appendString(buf, def.Description)
	buf = binary.AppendUvarint(buf, uint64(len(def.Fields)))

	for _, f := range def.Fields {
		token := string(f.Type)
		if code, ok := f.Type.Code(); ok {
			token = code
		}
		buf = appendString(buf, f.Name)
		buf = appendString(buf, token)

		var flags byte
		if f.Optional {
			flags |= optionalFlag
		}
		buf = append(buf, flags)
	}

	return BinaryTag + base64.StdEncoding.EncodeToString(buf)
}

// DecodeBinary parses a tagged binary payload back into a definition.
// Every failure is terminal: a truncated or corrupt payload never degrades
// into another format.
func DecodeBinary(tagged string) (*schema.SchemaDefinition, error) {
	payload, ok := strings.CutPrefix(tagged, BinaryTag)
	if !ok {
		return nil, &ParseError{Reason: "missing binary tag", Input: tagged}
	}

	raw, err := base64.StdEncoding.DecodeString(payload)
	if err != nil {
		return nil, &ParseError{Reason: "binary payload is not valid base64", Input: tagged, Err: err}
	}

	r := &byteReader{buf: raw}
	version, err := r.byte()
	if err != nil {
		return nil, &ParseError{Reason: "binary payload is empty", Input: tagged}
	}
	if version != binaryVersion {
		return nil, &ParseError{Reason: fmt.Sprintf("unsupported binary version %d", version), Input: tagged}
	}

	def := &schema.SchemaDefinition{}
	if def.Name, err = r.string(); err != nil {
		return nil, &ParseError{Reason: "binary payload truncated reading schema name", Input: tagged, Err: err}
	}
	if def.Description, err = r.string(); err != nil {
		return nil, &ParseError{Reason: "binary payload truncated reading description", Input: tagged, Err: err}
	}

	count, err := r.uvarint()
	if err != nil {
		return nil, &ParseError{Reason: "binary payload truncated reading field count", Input: tagged, Err: err}
	}
	if count > uint64(len(raw)) {
		return nil, &ParseError{Reason: "binary field count exceeds payload size", Input: tagged}
	}

	def.Fields = make([]schema.FieldDefinition, 0, count)
	for i := uint64(0); i < count; i++ {
		name, err := r.string()
		if err != nil {
			return nil, &ParseError{Reason: fmt.Sprintf("binary payload truncated in field %d", i), Input: tagged, Err: err}
		}
		token, err := r.string()
		if err != nil {
			return nil, &ParseError{Reason: fmt.Sprintf("binary payload truncated in field %d", i), Input: tagged, Err: err}
		}
		flags, err := r.byte()
		if err != nil {
			return nil, &ParseError{Reason: fmt.Sprintf("binary payload truncated in field %d", i), Input: tagged, Err: err}
		}

		ft, ok := fieldtype.FromCode(token)
		if !ok {
			// Verbose or pass-through token.
			ft = fieldtype.FieldType(token)
		}

		def.Fields = append(def.Fields, schema.FieldDefinition{
			Name:     name,
			Type:     ft,
			Optional: flags&optionalFlag != 0,
		})
	}

	return def, nil
}

func appendString(buf []byte, s string) []byte {
	buf = binary.AppendUvarint(buf, uint64(len(s)))
	return append(buf, s...)
}

type byteReader struct {
	buf []byte
	off int
}

func (r *byteReader) byte() (byte, error) {
	if r.off >= len(r.buf) {
		return 0, fmt.Errorf("unexpected end of payload at offset %d", r.off)
	}
	b := r.buf[r.off]
	r.off++
	return b, nil
}

func (r *byteReader) uvarint() (uint64, error) {
	v, n := binary.Uvarint(r.buf[r.off:])
	if n <= 0 {
		return 0, fmt.Errorf("invalid varint at offset %d", r.off)
	}
	r.off += n
	return v, nil
}

func (r *byteReader) string() (string, error) {
	n, err := r.uvarint()
	if err != nil {
		return "", err
	}
	if uint64(len(r.buf)-r.off) < n {
		return "", fmt.Errorf("string length %d exceeds remaining payload", n)
	}
	s := string(r.buf[r.off : r.off+int(n)])
	r.off += int(n)
	return s, nil
}
