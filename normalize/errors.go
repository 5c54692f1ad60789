package normalize

import "fmt"

// ParseError reports malformed definition input. It echoes the original
// input so registry operators can see what a failing caller submitted.
type ParseError struct {
	Reason string
	Input  string
	Err    error
}

// Error implements the error interface.
func (e *ParseError) Error() string {
	msg := e.Reason
	if e.Err != nil {
		msg = fmt.Sprintf("%s: %v", e.Reason, e.Err)
	}
	if e.Input == "" {
		return msg
	}
	return fmt.Sprintf("%s (input: %s)", msg, truncate(e.Input, 256))
}

// Unwrap returns the underlying cause, if any.
func (e *ParseError) Unwrap() error {
	return e.Err
}

func truncate(s string, max int) string {
	if len(s) <= max {
		return s
	}
	return s[:max] + "..."
}
