package shapecheck

import "strings"

// ErrorKind labels the failure class carried by [Error]. The engine raises a
// single stable kind so machine consumers can switch on it without parsing
// message text.
type ErrorKind string

// KindValidation is the kind attached to every validation failure.
const KindValidation ErrorKind = "VALIDATION_ERROR"

// Error is the typed failure returned by [Check] and friends. Messages holds
// the per-check texts in validator order and Value the offending input.
type Error struct {
	Kind     ErrorKind
	Messages []string
	Value    any
}

// NewError builds a validation error from messages and the offending value.
func NewError(messages []string, value any) *Error {
	return &Error{Kind: KindValidation, Messages: messages, Value: value}
}

func (e *Error) Error() string {
	return "validation failed: " + strings.Join(e.Messages, "; ")
}
