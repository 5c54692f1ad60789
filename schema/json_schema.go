package schema

import (
	"github.com/lumenkit/schemakit-go/fieldtype"
)

// Draft is the JSON Schema dialect the projection declares.
const Draft = "http://json-schema.org/draft-07/schema#"

// Domain format tags attached to projected properties so downstream
// validators can special-case ledger value types. Validators that do not
// recognize them are expected to ignore unknown formats.
const (
	FormatAddress   = "stellar-address"
	FormatAmount    = "stellar-amount"
	FormatTimestamp = "stellar-timestamp"
)

// Property describes one projected field of a Document.
type Property struct {
	Type        string   `json:"type"`
	Format      string   `json:"format,omitempty"`
	Description string   `json:"description,omitempty"`
	Pattern     string   `json:"pattern,omitempty"`
	Minimum     *float64 `json:"minimum,omitempty"`
	Maximum     *float64 `json:"maximum,omitempty"`
}

// Document is the JSON-Schema-shaped projection of a SchemaDefinition.
// Identical definitions always project to identical documents.
type Document struct {
	Schema      string               `json:"$schema"`
	Title       string               `json:"title,omitempty"`
	Description string               `json:"description,omitempty"`
	Type        string               `json:"type"`
	Properties  map[string]*Property `json:"properties"`
	Required    []string             `json:"required,omitempty"`
}

// Project renders a definition as a Document. The operation is total: every
// well-formed definition projects without a failure path. Unknown
// pass-through field types project as plain strings.
func Project(def *SchemaDefinition) *Document {
	doc := &Document{
		Schema:      Draft,
		Title:       def.Name,
		Description: def.Description,
		Type:        "object",
		Properties:  make(map[string]*Property, len(def.Fields)),
	}

	for _, f := range def.Fields {
		prop := &Property{
			Type:        nativeType(f.Type),
			Format:      domainFormat(f.Type),
			Description: f.Description,
		}
		if f.Validation != nil {
			prop.Minimum = f.Validation.Min
			prop.Maximum = f.Validation.Max
			prop.Pattern = f.Validation.Pattern
		}
		doc.Properties[f.Name] = prop

		if !f.Optional {
			doc.Required = append(doc.Required, f.Name)
		}
	}

	return doc
}

// nativeType maps a field type to the nearest JSON Schema value type.
func nativeType(t fieldtype.FieldType) string {
	switch {
	case t == fieldtype.Boolean:
		return "boolean"
	case t == fieldtype.Timestamp:
		return "integer"
	case t.IsInteger():
		return "integer"
	case t == fieldtype.Float, t == fieldtype.Double, t == fieldtype.Amount:
		return "number"
	default:
		return "string"
	}
}

// domainFormat returns the format tag for ledger value types, or "".
func domainFormat(t fieldtype.FieldType) string {
	switch t {
	case fieldtype.Address:
		return FormatAddress
	case fieldtype.Amount:
		return FormatAmount
	case fieldtype.Timestamp:
		return FormatTimestamp
	}
	return ""
}
