package enumrefl

import "github.com/broady/enumrefl/internal/variant"

// Error reports a malformed variant list. Offset is the byte offset of the
// defect in the variant-list text, or -1 when the defect has no single position.
type Error = variant.Error

// ErrorCode is a machine-readable Error classification.
type ErrorCode = variant.ErrorCode

const (
	CodeEmptyLiteral      = variant.CodeEmptyLiteral      // sign or '=' without digits
	CodeExpectedValue     = variant.CodeExpectedValue     // "expected value after equals"
	CodeNotIntegerLiteral = variant.CodeNotIntegerLiteral // "only integer literals are supported"
	CodeUnknownBase       = variant.CodeUnknownBase       // "unknown integer base"
	CodeInvalidDigit      = variant.CodeInvalidDigit
	CodeMalformedEntry    = variant.CodeMalformedEntry
	CodeCountMismatch     = variant.CodeCountMismatch
	CodeDuplicateName     = variant.CodeDuplicateName
)

// ErrorCodeOf returns the code of the first *Error in err's chain, or "".
func ErrorCodeOf(err error) ErrorCode {
	return variant.CodeOf(err)
}
