package normalize

import (
	"encoding/json"
	"log/slog"
	"sort"

	"github.com/lumenkit/schemakit-go/fieldtype"
	"github.com/lumenkit/schemakit-go/schema"
)

// Result is the outcome of normalizing one raw definition.
type Result struct {
	// Format is the classification the definition matched.
	Format Format

	// Definition is the canonical representation. It is nil for
	// FormatRawJSON results, which are unusable for schema operations.
	Definition *schema.SchemaDefinition

	// Document holds the original value for pass-through schema documents
	// (those carrying the "$schema" marker), unchanged.
	Document map[string]interface{}

	// Raw holds the parsed value for FormatRawJSON results.
	Raw interface{}
}

// Normalizer converts raw definitions into canonical form.
type Normalizer struct {
	logger *slog.Logger
}

// Option configures a Normalizer.
type Option func(*Normalizer)

// WithLogger sets the logger used for per-branch diagnostics.
func WithLogger(logger *slog.Logger) Option {
	return func(n *Normalizer) {
		n.logger = logger
	}
}

// New creates a Normalizer.
func New(opts ...Option) *Normalizer {
	n := &Normalizer{
		logger: slog.Default(),
	}
	for _, opt := range opts {
		opt(n)
	}
	return n
}

// Normalize classifies raw and converts it into a canonical definition.
// Hard failures are limited to JSON syntax errors, binary decode failures,
// and invariant violations; a value matching none of the schema shapes
// degrades to a FormatRawJSON result without an error.
func (n *Normalizer) Normalize(raw interface{}) (*Result, error) {
	detected, err := Classify(raw)
	if err != nil {
		n.logger.Error("definition failed classification", "error", err)
		return nil, err
	}

	switch detected.Format {
	case FormatBinary:
		def, err := DecodeBinary(detected.Payload)
		if err != nil {
			n.logger.Error("binary definition failed to decode", "error", err)
			return nil, err
		}
		if err := def.CheckInvariants(); err != nil {
			return nil, &ParseError{Reason: "binary definition violates schema invariants", Input: detected.Payload, Err: err}
		}
		n.logger.Debug("normalized binary definition", "schema", def.Name, "fields", len(def.Fields))
		return &Result{Format: FormatBinary, Definition: def}, nil

	case FormatSchemaDocument:
		obj := detected.Value.(map[string]interface{})
		def := n.definitionFromDocument(obj)
		if err := def.CheckInvariants(); err != nil {
			return nil, &ParseError{Reason: "schema document violates schema invariants", Input: echo(obj), Err: err}
		}
		result := &Result{Format: FormatSchemaDocument, Definition: def}
		if detected.Marked {
			// Already-canonical documents pass through unchanged.
			result.Document = obj
		}
		n.logger.Debug("normalized schema document", "schema", def.Name, "fields", len(def.Fields), "marked", detected.Marked)
		return result, nil

	case FormatCompactDefinition:
		obj := detected.Value.(map[string]interface{})
		def := n.definitionFromCompact(obj)
		if err := def.CheckInvariants(); err != nil {
			return nil, &ParseError{Reason: "compact definition violates schema invariants", Input: echo(obj), Err: err}
		}
		n.logger.Debug("normalized compact definition", "schema", def.Name, "fields", len(def.Fields))
		return &Result{Format: FormatCompactDefinition, Definition: def}, nil

	default:
		// Deliberate soft fallback: valid JSON that matches no schema
		// shape is returned opaque, without an error.
		n.logger.Warn("definition matches no schema shape, returning raw value")
		return &Result{Format: FormatRawJSON, Raw: detected.Value}, nil
	}
}

// definitionFromCompact builds a definition from the compact name/fields
// shape. Type tokens outside the catalog pass through unchanged; they are
// flagged when a record is validated.
func (n *Normalizer) definitionFromCompact(obj map[string]interface{}) *schema.SchemaDefinition {
	def := &schema.SchemaDefinition{
		Name: stringValue(obj["name"]),
	}
	def.Description = stringValue(obj["description"])

	fields, _ := obj["fields"].([]interface{})
	for _, raw := range fields {
		entry, ok := raw.(map[string]interface{})
		if !ok {
			continue
		}

		token := stringValue(entry["type"])
		ft, known := fieldtype.FromName(token)
		if !known {
			if short, ok := fieldtype.FromCode(token); ok {
				ft = short
			} else {
				n.logger.Warn("type token has no catalog mapping, passing through",
					"token", token, "field", stringValue(entry["name"]))
				ft = fieldtype.FieldType(token)
			}
		}

		field := schema.FieldDefinition{
			Name:        stringValue(entry["name"]),
			Type:        ft,
			Description: stringValue(entry["description"]),
		}
		if opt, ok := entry["optional"].(bool); ok {
			field.Optional = opt
		}
		if rules, ok := entry["validation"].(map[string]interface{}); ok {
			field.Validation = rulesFromValue(rules)
		}

		def.Fields = append(def.Fields, field)
	}

	return def
}

// definitionFromDocument reverse-maps a JSON-Schema-shaped document.
// Properties arrive as an unordered map, so fields are ordered by name to
// keep the result deterministic.
func (n *Normalizer) definitionFromDocument(obj map[string]interface{}) *schema.SchemaDefinition {
	def := &schema.SchemaDefinition{
		Name:        stringValue(obj["title"]),
		Description: stringValue(obj["description"]),
	}
	if def.Name == "" {
		def.Name = stringValue(obj["name"])
	}

	required := make(map[string]bool)
	if list, ok := obj["required"].([]interface{}); ok {
		for _, v := range list {
			required[stringValue(v)] = true
		}
	}

	props, _ := obj["properties"].(map[string]interface{})
	names := make([]string, 0, len(props))
	for name := range props {
		names = append(names, name)
	}
	sort.Strings(names)

	for _, name := range names {
		prop, ok := props[name].(map[string]interface{})
		if !ok {
			continue
		}

		field := schema.FieldDefinition{
			Name:        name,
			Type:        typeFromProperty(prop),
			Optional:    !required[name],
			Description: stringValue(prop["description"]),
		}

		min, hasMin := floatValue(prop["minimum"])
		max, hasMax := floatValue(prop["maximum"])
		pattern := stringValue(prop["pattern"])
		if hasMin || hasMax || pattern != "" {
			rules := &schema.ValidationRules{Pattern: pattern}
			if hasMin {
				rules.Min = &min
			}
			if hasMax {
				rules.Max = &max
			}
			field.Validation = rules
		}

		def.Fields = append(def.Fields, field)
	}

	return def
}

// typeFromProperty reverse-maps a property's type/format pair. The domain
// format tags win over the base type; bare JSON types map to the widest
// catalog member.
func typeFromProperty(prop map[string]interface{}) fieldtype.FieldType {
	switch stringValue(prop["format"]) {
	case schema.FormatAddress:
		return fieldtype.Address
	case schema.FormatAmount:
		return fieldtype.Amount
	case schema.FormatTimestamp:
		return fieldtype.Timestamp
	case "date-time":
		return fieldtype.DateTime
	}

	switch stringValue(prop["type"]) {
	case "boolean":
		return fieldtype.Boolean
	case "integer":
		return fieldtype.Int64
	case "number":
		return fieldtype.Double
	default:
		return fieldtype.String
	}
}

func rulesFromValue(obj map[string]interface{}) *schema.ValidationRules {
	rules := &schema.ValidationRules{
		Pattern: stringValue(obj["pattern"]),
	}
	if min, ok := floatValue(obj["min"]); ok {
		rules.Min = &min
	}
	if max, ok := floatValue(obj["max"]); ok {
		rules.Max = &max
	}
	if rules.Min == nil && rules.Max == nil && rules.Pattern == "" {
		return nil
	}
	return rules
}

func stringValue(v interface{}) string {
	s, _ := v.(string)
	return s
}

// floatValue coerces JSON and YAML number shapes.
func floatValue(v interface{}) (float64, bool) {
	switch n := v.(type) {
	case float64:
		return n, true
	case int:
		return float64(n), true
	case int64:
		return float64(n), true
	case json.Number:
		f, err := n.Float64()
		return f, err == nil
	}
	return 0, false
}

// echo renders a structured value for ParseError input echoes.
func echo(v interface{}) string {
	data, err := json.Marshal(v)
	if err != nil {
		return ""
	}
	return string(data)
}
