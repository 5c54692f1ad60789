// Package contracts defines the message types exchanged between clients
// and a schema registry built on this engine.
//
// These are pure value types: the engine performs no I/O, so commands and
// replies are constructed here and handed to a caller-owned transport and
// storage layer. Every message carries a generated ID, a timestamp, and an
// optional correlation ID linking replies to the command that caused them.
//
// The exchange is small:
//
//   - RegisterSchemaCommand carries a raw definition in any accepted
//     source encoding; SchemaRegisteredReply answers with the
//     content-addressed UID and the canonical document.
//   - ValidateRecordCommand carries a candidate record for a registered
//     schema; ValidationReply answers with the verdict and the collected
//     validation errors.
package contracts
