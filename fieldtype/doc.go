// Package fieldtype defines the closed catalog of primitive field types
// understood by schemakit.
//
// Every type has exactly one verbose name (used in schema definitions and
// documents) and one short code (used by the compact and binary codecs).
// Both directions of the mapping come from a single ordered table, so the
// round-trip invariant decode(encode(t)) == t holds by construction.
//
// The catalog is immutable package-level data built once at init and never
// mutated afterwards; all lookups are safe for concurrent use.
package fieldtype
