package contracts

import (
	"fmt"
)

// ErrorReply represents a failed command
type ErrorReply struct {
	BaseReply
	ErrorCode    string `json:"errorCode"`
	ErrorMessage string `json:"errorMessage"`
}

// NewErrorReply creates an error reply correlated with the failing command
func NewErrorReply(correlationID, errorCode, errorMessage string) *ErrorReply {
	reply := &ErrorReply{
		BaseReply:    BaseReply{BaseMessage: NewBaseMessage("ErrorReply"), Success: false},
		ErrorCode:    errorCode,
		ErrorMessage: errorMessage,
	}
	reply.SetCorrelationID(correlationID)
	return reply
}

// IsSuccess returns false for error replies
func (e ErrorReply) IsSuccess() bool {
	return false
}

// GetError returns the error
func (e ErrorReply) GetError() error {
	return fmt.Errorf("%s: %s", e.ErrorCode, e.ErrorMessage)
}
