// Package compact implements the terse single-line encoding for a
// name/type table, used where a full schema document is too large:
//
//	s name, u32 age, addr wallet
//
// Each chunk is a short type code, one space, then the field name; chunks
// join with ", ". Names keep any internal spaces because decoding splits
// each chunk on the first space only. That rule makes a name that is
// itself a valid short code ambiguous; the encoding has no escaping, so
// callers that need such names should use a full schema document instead.
//
// Entries are an ordered slice, so encode order is caller-controlled.
// Callers feeding the codec from a Go map must fix an order first.
package compact
