// Package schema holds the canonical, format-independent representation of
// a registered data shape and the operations defined over it.
//
// A SchemaDefinition is produced once per registration request (usually by
// the normalize package), checked against its structural invariants, and
// treated as immutable from then on. Three operations consume it:
//
//   - Project renders the definition as a JSON-Schema-shaped Document with
//     domain format tags (stellar-address, stellar-amount,
//     stellar-timestamp) for interoperable downstream validation.
//   - ComputeUID derives a content-addressed identifier from the
//     definition's canonical bytes: identical content yields an identical
//     UID regardless of which source encoding the definition arrived in.
//   - RecordValidator checks a candidate record against the definition and
//     collects structured validation errors without short-circuiting.
//
// Basic usage:
//
//	def := &schema.SchemaDefinition{
//	    Name: "payment",
//	    Fields: []schema.FieldDefinition{
//	        {Name: "destination", Type: fieldtype.Address},
//	        {Name: "amount", Type: fieldtype.Amount},
//	    },
//	}
//	uid := schema.ComputeUID(def)
//	doc := schema.Project(def)
//	result := schema.NewRecordValidator().Validate(def, record)
//
// All operations are pure computations over in-memory values and are safe
// for concurrent use; callers may validate many records against one
// definition in parallel.
package schema
