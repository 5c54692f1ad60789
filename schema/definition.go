package schema

import (
	"fmt"

	"github.com/lumenkit/schemakit-go/fieldtype"
)

// ValidationRules carries the optional per-field constraints a definition
// may declare. Min and Max are inclusive bounds on numeric fields.
type ValidationRules struct {
	Min     *float64 `json:"min,omitempty"`
	Max     *float64 `json:"max,omitempty"`
	Pattern string   `json:"pattern,omitempty"`
}

// FieldDefinition describes a single field of a schema.
type FieldDefinition struct {
	Name        string              `json:"name"`
	Type        fieldtype.FieldType `json:"type"`
	Optional    bool                `json:"optional,omitempty"`
	Description string              `json:"description,omitempty"`
	Validation  *ValidationRules    `json:"validation,omitempty"`
}

// SchemaDefinition is the canonical in-memory representation of a data
// shape. Field declaration order is significant for serialization and the
// codecs, but not for equality.
type SchemaDefinition struct {
	Name        string            `json:"name"`
	Description string            `json:"description,omitempty"`
	Fields      []FieldDefinition `json:"fields"`
}

// CheckInvariants verifies the structural invariants every definition must
// satisfy: a non-empty schema name, at least one field, and unique
// non-empty field names.
func (d *SchemaDefinition) CheckInvariants() error {
	if d == nil {
		return fmt.Errorf("definition cannot be nil")
	}
	if d.Name == "" {
		return fmt.Errorf("schema name cannot be empty")
	}
	if len(d.Fields) == 0 {
		return fmt.Errorf("schema %s must declare at least one field", d.Name)
	}

	seen := make(map[string]struct{}, len(d.Fields))
	for _, f := range d.Fields {
		if f.Name == "" {
			return fmt.Errorf("schema %s has a field with an empty name", d.Name)
		}
		if _, dup := seen[f.Name]; dup {
			return fmt.Errorf("schema %s declares field %s more than once", d.Name, f.Name)
		}
		seen[f.Name] = struct{}{}
	}

	return nil
}

// Field returns the definition of the named field.
func (d *SchemaDefinition) Field(name string) (FieldDefinition, bool) {
	for _, f := range d.Fields {
		if f.Name == name {
			return f, true
		}
	}
	return FieldDefinition{}, false
}

// Equal reports whether two definitions describe the same shape. Field
// declaration order does not participate in equality.
func (d *SchemaDefinition) Equal(other *SchemaDefinition) bool {
	if d == nil || other == nil {
		return d == other
	}
	if d.Name != other.Name || d.Description != other.Description {
		return false
	}
	if len(d.Fields) != len(other.Fields) {
		return false
	}
	for _, f := range d.Fields {
		of, ok := other.Field(f.Name)
		if !ok || !fieldEqual(f, of) {
			return false
		}
	}
	return true
}

func fieldEqual(a, b FieldDefinition) bool {
	if a.Name != b.Name || a.Type != b.Type || a.Optional != b.Optional || a.Description != b.Description {
		return false
	}
	return rulesEqual(a.Validation, b.Validation)
}

func rulesEqual(a, b *ValidationRules) bool {
	if a == nil || b == nil {
		return emptyRules(a) && emptyRules(b)
	}
	return floatPtrEqual(a.Min, b.Min) && floatPtrEqual(a.Max, b.Max) && a.Pattern == b.Pattern
}

func emptyRules(r *ValidationRules) bool {
	return r == nil || (r.Min == nil && r.Max == nil && r.Pattern == "")
}

func floatPtrEqual(a, b *float64) bool {
	if a == nil || b == nil {
		return a == b
	}
	return *a == *b
}
