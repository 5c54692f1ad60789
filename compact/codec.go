package compact

import (
	"fmt"
	"strings"

	"github.com/lumenkit/schemakit-go/fieldtype"
)

// Entry is one name/type pair of the table.
type Entry struct {
	Name string
	Type fieldtype.FieldType
}

// DecodeError reports a malformed compact string.
type DecodeError struct {
	Chunk  string
	Reason string
}

// Error implements the error interface.
func (e *DecodeError) Error() string {
	return fmt.Sprintf("cannot decode chunk %q: %s", e.Chunk, e.Reason)
}

// Encode renders the entries as a single line in slice order. Types
// outside the catalog are written by their verbose token so the line stays
// decodable by forward-compatible peers.
func Encode(entries []Entry) string {
	chunks := make([]string, 0, len(entries))
	for _, e := range entries {
		token := string(e.Type)
		if code, ok := e.Type.Code(); ok {
			token = code
		}
		chunks = append(chunks, token+" "+e.Name)
	}
	return strings.Join(chunks, ", ")
}

// Decode parses a compact line back into entries. Each chunk splits on the
// first space: the head is the type token, the remainder is the name, so
// names with internal spaces survive the round trip. Unknown type tokens
// pass through unchanged, matching the parser's forward-compat behavior.
func Decode(line string) ([]Entry, error) {
	if strings.TrimSpace(line) == "" {
		return nil, &DecodeError{Chunk: line, Reason: "line is empty"}
	}

	chunks := strings.Split(line, ", ")
	entries := make([]Entry, 0, len(chunks))

	for _, chunk := range chunks {
		token, name, found := strings.Cut(chunk, " ")
		if !found || token == "" || name == "" {
			return nil, &DecodeError{Chunk: chunk, Reason: "expected '<code> <name>'"}
		}

		ft, ok := fieldtype.FromCode(token)
		if !ok {
			if verbose, okName := fieldtype.FromName(token); okName {
				ft = verbose
			} else {
				ft = fieldtype.FieldType(token)
			}
		}

		entries = append(entries, Entry{Name: name, Type: ft})
	}

	return entries, nil
}
