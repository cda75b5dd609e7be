package variant

import (
	"errors"
	"fmt"
)

// ErrorCode identifies a malformed variant list.
type ErrorCode string

const (
	CodeEmptyLiteral      ErrorCode = "empty_literal"
	CodeExpectedValue     ErrorCode = "expected_value"
	CodeNotIntegerLiteral ErrorCode = "not_integer_literal"
	CodeUnknownBase       ErrorCode = "unknown_base"
	CodeInvalidDigit      ErrorCode = "invalid_digit"
	CodeMalformedEntry    ErrorCode = "malformed_entry"
	CodeCountMismatch     ErrorCode = "count_mismatch"
	CodeDuplicateName     ErrorCode = "duplicate_name"
)

// Error reports a defect in a variant list.
type Error struct {
	Code    ErrorCode
	Message string

	// Offset is the byte offset in the variant-list text, or -1.
	Offset int

	// Text is the offending fragment, if any.
	Text string
}

func (e *Error) Error() string {
	msg := e.Message
	if e.Text != "" {
		msg = fmt.Sprintf("%s: %q", msg, e.Text)
	}
	if e.Offset >= 0 {
		return fmt.Sprintf("offset %d: %s", e.Offset, msg)
	}
	return msg
}

// Is matches any *Error with the same code, so errors.Is(err, &Error{Code: c}) works.
func (e *Error) Is(target error) bool {
	var t *Error
	if !errors.As(target, &t) {
		return false
	}
	return t.Code == e.Code
}

func newError(code ErrorCode, offset int, text, message string) *Error {
	return &Error{Code: code, Message: message, Offset: offset, Text: text}
}

// CodeOf returns the code of the first *Error in err's chain, or "".
func CodeOf(err error) ErrorCode {
	var e *Error
	if errors.As(err, &e) {
		return e.Code
	}
	return ""
}
