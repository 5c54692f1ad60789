package contracts

import (
	"github.com/lumenkit/schemakit-go/schema"
)

// UID text encodings a caller can request for registry keys.
const (
	UIDEncodingHex    = "hex"
	UIDEncodingBase32 = "base32"
)

// RegisterSchemaCommand asks the registry to normalize and register a raw
// schema definition. Definition may be a tagged binary string, a JSON
// string, or an already-structured value in one of the accepted shapes.
type RegisterSchemaCommand struct {
	BaseMessage
	Definition  interface{} `json:"definition"`
	UIDEncoding string      `json:"uidEncoding,omitempty"`
}

// NewRegisterSchemaCommand creates a registration command for a raw definition
func NewRegisterSchemaCommand(definition interface{}) *RegisterSchemaCommand {
	return &RegisterSchemaCommand{
		BaseMessage: NewBaseMessage("RegisterSchemaCommand"),
		Definition:  definition,
		UIDEncoding: UIDEncodingHex,
	}
}

// SchemaRegisteredReply reports a successful registration: the
// content-addressed UID (raw and in the requested text encoding) and the
// canonical document the registry will serve.
type SchemaRegisteredReply struct {
	BaseReply
	SchemaName string           `json:"schemaName"`
	UID        []byte           `json:"uid"`
	UIDText    string           `json:"uidText"`
	Document   *schema.Document `json:"document"`
}

// NewSchemaRegisteredReply builds the reply for a completed registration
func NewSchemaRegisteredReply(cmd *RegisterSchemaCommand, name string, uid schema.UID, doc *schema.Document) *SchemaRegisteredReply {
	text := uid.Hex()
	if cmd.UIDEncoding == UIDEncodingBase32 {
		text = uid.Base32()
	}
	return &SchemaRegisteredReply{
		BaseReply:  NewBaseReply("SchemaRegisteredReply", cmd.GetID()),
		SchemaName: name,
		UID:        uid.Bytes(),
		UIDText:    text,
		Document:   doc,
	}
}

// ValidateRecordCommand asks for a candidate record to be checked against
// a registered schema before the caller commits it.
type ValidateRecordCommand struct {
	BaseMessage
	SchemaUID string                 `json:"schemaUid"`
	Record    map[string]interface{} `json:"record"`
}

// NewValidateRecordCommand creates a validation command
func NewValidateRecordCommand(schemaUID string, record map[string]interface{}) *ValidateRecordCommand {
	return &ValidateRecordCommand{
		BaseMessage: NewBaseMessage("ValidateRecordCommand"),
		SchemaUID:   schemaUID,
		Record:      record,
	}
}

// ValidationReply carries the verdict for one record. Errors holds every
// collected failure; an accepted record has Success true and no errors.
type ValidationReply struct {
	BaseReply
	SchemaUID string                   `json:"schemaUid"`
	Errors    []schema.ValidationError `json:"errors,omitempty"`
}

// NewValidationReply builds the reply for a validation run
func NewValidationReply(cmd *ValidateRecordCommand, result *schema.ValidationResult) *ValidationReply {
	reply := &ValidationReply{
		BaseReply: NewBaseReply("ValidationReply", cmd.GetID()),
		SchemaUID: cmd.SchemaUID,
		Errors:    result.Errors,
	}
	reply.Success = result.Valid
	return reply
}
