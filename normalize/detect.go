package normalize

import (
	"encoding/json"
	"fmt"
	"strings"
)

// Format is the tagged classification of a raw definition value. It is
// produced once by Classify and matched exhaustively by every consumer.
type Format int

const (
	// FormatBinary is a string carrying the binary tag.
	FormatBinary Format = iota
	// FormatSchemaDocument is a JSON-Schema-shaped value, either marked
	// with "$schema" or recognized by its "properties" map.
	FormatSchemaDocument
	// FormatCompactDefinition is the compact name/fields definition.
	FormatCompactDefinition
	// FormatRawJSON is valid JSON matching none of the schema shapes.
	FormatRawJSON
)

// String returns the format name for diagnostics.
func (f Format) String() string {
	switch f {
	case FormatBinary:
		return "binary"
	case FormatSchemaDocument:
		return "schema-document"
	case FormatCompactDefinition:
		return "compact-definition"
	case FormatRawJSON:
		return "raw-json"
	}
	return fmt.Sprintf("format(%d)", int(f))
}

// Detected is the result of classifying a raw value.
type Detected struct {
	Format Format

	// Payload holds the original tagged string for FormatBinary.
	Payload string

	// Value holds the parsed structured value for the JSON formats.
	Value interface{}

	// Marked reports whether a schema document carried the "$schema"
	// marker, distinguishing pass-through documents from bare ones.
	Marked bool
}

// Classify inspects a raw definition (string or structured value) and
// assigns it a Format. The only failure is a JSON syntax error in a
// non-binary string, reported as a ParseError.
func Classify(raw interface{}) (*Detected, error) {
	value := raw

	if str, ok := raw.(string); ok {
		if strings.HasPrefix(str, BinaryTag) {
			return &Detected{Format: FormatBinary, Payload: str}, nil
		}
		var parsed interface{}
		if err := json.Unmarshal([]byte(str), &parsed); err != nil {
			return nil, &ParseError{Reason: "definition is not valid JSON", Input: str, Err: err}
		}
		value = parsed
	}

	obj, ok := value.(map[string]interface{})
	if !ok {
		return &Detected{Format: FormatRawJSON, Value: value}, nil
	}

	if _, marked := obj["$schema"]; marked {
		return &Detected{Format: FormatSchemaDocument, Value: obj, Marked: true}, nil
	}

	if name, ok := obj["name"].(string); ok && name != "" {
		if fields, ok := obj["fields"].([]interface{}); ok && len(fields) > 0 {
			return &Detected{Format: FormatCompactDefinition, Value: obj}, nil
		}
	}

	if _, ok := obj["properties"].(map[string]interface{}); ok {
		return &Detected{Format: FormatSchemaDocument, Value: obj}, nil
	}

	return &Detected{Format: FormatRawJSON, Value: obj}, nil
}
