// Package normalize classifies raw schema definitions and converts them
// into the canonical schema.SchemaDefinition representation.
//
// Definitions arrive in three incompatible source encodings: a tagged
// binary encoding (BinaryTag prefix + base64 payload), a JSON-Schema-style
// document, and a compact name/fields definition. Classification happens
// exactly once, producing a tagged Format that every downstream branch
// matches on. Detection order, first match wins:
//
//  1. String with the binary tag: decoded by the binary schema codec.
//     Decode failure is a terminal ParseError.
//  2. Other strings must parse as JSON; a syntax error is a terminal
//     ParseError, not a fallback.
//  3. A value carrying a "$schema" marker passes through as an
//     already-canonical document, still checked against the definition
//     invariants.
//  4. A value with a non-empty "name" and "fields" is a compact
//     definition. Unknown type tokens pass through unchanged as a
//     forward-compat escape hatch and are flagged during validation.
//  5. A value with a "properties" map is a raw schema document; field
//     types are reverse-mapped and optionality inferred from "required".
//  6. Anything else is returned as an opaque RawJSON result without an
//     error. Such results are unusable for schema operations; callers
//     that need a definition must treat them as failures.
//
// Each branch emits a diagnostic log record through the injected
// slog.Logger; logging is the package's only side effect.
package normalize
