package variant

import "strings"

const whitespace = " \t\r\n"

func isSpace(c byte) bool {
	return c == ' ' || c == '\t' || c == '\r' || c == '\n'
}

func isDigit(c byte) bool {
	return c >= '0' && c <= '9'
}

func isLetter(c byte) bool {
	return (c >= 'a' && c <= 'z') || (c >= 'A' && c <= 'Z')
}

// isNumeral reports whether c may appear in the numeral part of a literal.
// The base markers x and b are included, the latter already being a hex digit.
func isNumeral(c byte) bool {
	return isDigit(c) || (c >= 'a' && c <= 'f') || (c >= 'A' && c <= 'F') || c == 'x' || c == 'X'
}

// digitValue returns the value of c in base 16, or -1 for the base markers.
func digitValue(c byte) int {
	switch {
	case isDigit(c):
		return int(c - '0')
	case c >= 'a' && c <= 'f':
		return int(c-'a') + 10
	case c >= 'A' && c <= 'F':
		return int(c-'A') + 10
	}
	return -1
}

// trim returns the bounds of s without surrounding whitespace.
func trim(s string) (start, end int) {
	end = len(s)
	for start < end && isSpace(s[start]) {
		start++
	}
	for end > start && isSpace(s[end-1]) {
		end--
	}
	return start, end
}

// EvaluateLiteral decodes an integer literal to the bit pattern of kind.
//
// The literal may carry any number of leading signs, a base prefix (0x, 0b, or a
// bare 0 for octal) and an alphabetic suffix such as u, l or ull, which is ignored.
// Overflow wraps at the kind's width. Error offsets are relative to text.
func EvaluateLiteral(text string, kind Kind) (uint64, error) {
	return evaluate(text, 0, kind)
}

func evaluate(text string, offset int, kind Kind) (uint64, error) {
	start, end := trim(text)
	lit := text[start:end]
	offset += start

	if lit == "" {
		return 0, newError(CodeEmptyLiteral, offset, "", "empty integer literal")
	}

	negative := false
	for len(lit) > 0 && (lit[0] == '-' || lit[0] == '+') {
		if lit[0] == '-' {
			negative = !negative
		}
		rest := strings.TrimLeft(lit[1:], whitespace)
		offset += len(lit) - len(rest)
		lit = rest
	}
	if lit == "" {
		return 0, newError(CodeEmptyLiteral, offset, "", "sign without digits")
	}

	n := 0
	for n < len(lit) && isNumeral(lit[n]) {
		n++
	}
	for i := n; i < len(lit); i++ {
		if !isLetter(lit[i]) {
			return 0, newError(CodeNotIntegerLiteral, offset, lit, "only integer literals are supported")
		}
	}

	numeral := lit[:n]
	if numeral == "" || !isDigit(numeral[0]) {
		return 0, newError(CodeNotIntegerLiteral, offset, lit, "only integer literals are supported")
	}

	base := uint64(10)
	digits := numeral
	if numeral[0] == '0' {
		base = 8
		digits = numeral[1:]
		if digits == "" {
			return 0, nil
		}
		switch c := digits[0]; {
		case c == 'x' || c == 'X':
			base = 16
			digits = digits[1:]
		case c == 'b' || c == 'B':
			base = 2
			digits = digits[1:]
		case !isDigit(c):
			return 0, newError(CodeUnknownBase, offset, lit, "unknown integer base")
		}
		if digits == "" {
			return 0, newError(CodeNotIntegerLiteral, offset, lit, "base prefix without digits")
		}
	}
	digitsAt := offset + len(numeral) - len(digits)

	var acc uint64
	for i := 0; i < len(digits); i++ {
		d := digitValue(digits[i])
		if d < 0 || uint64(d) >= base {
			return 0, newError(CodeInvalidDigit, digitsAt+i, lit, "invalid digit for base")
		}
		acc = acc*base + uint64(d)
	}
	if negative {
		acc = -acc
	}
	return kind.Truncate(acc), nil
}
