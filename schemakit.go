// Package schemakit normalizes chain-agnostic schema definitions, derives
// content-addressed identifiers for them, and validates candidate records
// against them.
//
// The Engine is the main entry point. It wires the normalize, schema, and
// compact packages into one pipeline: a raw definition in any accepted
// source encoding goes in; a canonical definition, its UID, and its
// JSON-Schema document come out. Everything is pure in-memory computation;
// transaction submission, transport, and persistence belong to the caller.
//
//	engine := schemakit.NewEngine()
//	reg, err := engine.Register(rawDefinition)
//	if err != nil {
//	    // ParseError: malformed input
//	}
//	result := engine.ValidateRecord(reg.Definition, record)
//	if !result.Valid {
//	    // result.Errors lists every failure
//	}
package schemakit

import (
	"encoding/json"
	"log/slog"

	"github.com/lumenkit/schemakit-go/compact"
	"github.com/lumenkit/schemakit-go/normalize"
	"github.com/lumenkit/schemakit-go/schema"
)

// Engine provides the main entry point for schemakit
type Engine struct {
	normalizer *normalize.Normalizer
	validator  *schema.RecordValidator
	logger     *slog.Logger
}

type engineConfig struct {
	logger *slog.Logger
}

// EngineOption configures an Engine
type EngineOption func(*engineConfig)

// WithLogger sets the logger used for diagnostics across the pipeline
func WithLogger(logger *slog.Logger) EngineOption {
	return func(cfg *engineConfig) {
		cfg.logger = logger
	}
}

// NewEngine creates an engine with options
func NewEngine(opts ...EngineOption) *Engine {
	cfg := &engineConfig{
		logger: slog.Default(),
	}
	for _, opt := range opts {
		opt(cfg)
	}

	return &Engine{
		normalizer: normalize.New(normalize.WithLogger(cfg.logger)),
		validator:  schema.NewRecordValidator(),
		logger:     cfg.logger,
	}
}

// Registration is the outcome of registering one raw definition.
type Registration struct {
	// Format is the source encoding the definition arrived in.
	Format normalize.Format

	// Definition is the canonical representation.
	Definition *schema.SchemaDefinition

	// UID is the content-addressed identifier over the canonical bytes.
	UID schema.UID

	// Document is the JSON-Schema projection served to external
	// validators. It is always freshly projected from the canonical
	// definition.
	Document *schema.Document

	// SourceDocument holds the original document, unchanged, when the
	// input carried the "$schema" marker and passed through as
	// already-canonical. It is nil for every other source format.
	SourceDocument map[string]interface{}
}

// Register normalizes a raw definition and derives its UID and document.
// Unlike Normalize's documented soft fallback, Register requires a usable
// schema: a raw-JSON result becomes a ParseError here, at the point where
// a definition is actually needed.
func (e *Engine) Register(raw interface{}) (*Registration, error) {
	result, err := e.normalizer.Normalize(raw)
	if err != nil {
		return nil, err
	}

	if result.Definition == nil {
		return nil, &normalize.ParseError{
			Reason: "definition matches no accepted schema shape",
			Input:  echoRaw(raw),
		}
	}

	return e.complete(result)
}

// RegisterYAML registers a YAML-encoded definition document.
func (e *Engine) RegisterYAML(data []byte) (*Registration, error) {
	result, err := e.normalizer.NormalizeYAML(data)
	if err != nil {
		return nil, err
	}

	if result.Definition == nil {
		return nil, &normalize.ParseError{
			Reason: "definition matches no accepted schema shape",
			Input:  string(data),
		}
	}

	return e.complete(result)
}

func (e *Engine) complete(result *normalize.Result) (*Registration, error) {
	uid := schema.ComputeUID(result.Definition)
	doc := schema.Project(result.Definition)

	e.logger.Info("schema registered",
		"schema", result.Definition.Name,
		"format", result.Format.String(),
		"uid", uid.Hex())

	return &Registration{
		Format:         result.Format,
		Definition:     result.Definition,
		UID:            uid,
		Document:       doc,
		SourceDocument: result.Document,
	}, nil
}

// ValidateRecord checks a candidate record against a canonical definition
// and collects every failure before returning.
func (e *Engine) ValidateRecord(def *schema.SchemaDefinition, record map[string]interface{}) *schema.ValidationResult {
	return e.validator.Validate(def, record)
}

// CompactEncode renders a definition's field table in the compact
// single-line form, in declaration order.
func (e *Engine) CompactEncode(def *schema.SchemaDefinition) string {
	entries := make([]compact.Entry, 0, len(def.Fields))
	for _, f := range def.Fields {
		entries = append(entries, compact.Entry{Name: f.Name, Type: f.Type})
	}
	return compact.Encode(entries)
}

// CompactDecode parses a compact line back into its name/type table.
func (e *Engine) CompactDecode(line string) ([]compact.Entry, error) {
	return compact.Decode(line)
}

// EncodeBinary renders a definition in the tagged binary form for
// size-constrained transmission.
func (e *Engine) EncodeBinary(def *schema.SchemaDefinition) string {
	return normalize.EncodeBinary(def)
}

func echoRaw(raw interface{}) string {
	if str, ok := raw.(string); ok {
		return str
	}
	data, err := json.Marshal(raw)
	if err != nil {
		return ""
	}
	return string(data)
}
