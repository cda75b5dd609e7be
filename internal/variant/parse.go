// Package variant parses the variant list of an enumeration declaration.
//
// A variant list is the text between the braces of a C-style enum:
//
//	Red = 1, Green, Blue = 0x10u,
//
// Each entry is an identifier optionally followed by an integer literal.
// Entries without a value take the previous value plus one, starting at zero,
// wrapping at the width of the underlying integer type.
package variant

import (
	"fmt"
	"unicode/utf8"
)

// Entry is one parsed variant.
type Entry struct {
	Name string

	// Value is the bit pattern truncated to the kind's width.
	Value uint64

	// Explicit is true when the value was written after '='.
	Explicit bool

	// Offset is the byte offset of Name in the variant-list text.
	Offset int
}

// CountEntries returns the number of entries ParseEntries emits for a well-formed list.
// It counts commas, plus one if anything other than whitespace follows the last comma.
func CountEntries(text string) int {
	n := 0
	pending := false
	for i := 0; i < len(text); i++ {
		switch c := text[i]; {
		case c == ',':
			n++
			pending = false
		case isSpace(c):
		default:
			pending = true
		}
	}
	if pending {
		n++
	}
	return n
}

func isIdent(c byte) bool {
	return c == '_' || c == '-' || isLetter(c) || isDigit(c)
}

// charAt returns the character starting at byte offset i.
func charAt(text string, i int) string {
	_, n := utf8.DecodeRuneInString(text[i:])
	return text[i : i+n]
}

// ParseEntries returns the entries of text in declaration order.
func ParseEntries(text string, kind Kind) ([]Entry, error) {
	want := CountEntries(text)
	entries := make([]Entry, 0, want)

	var next uint64
	i := 0
	for {
		for i < len(text) && (isSpace(text[i]) || text[i] == ',') {
			i++
		}
		if i == len(text) {
			break
		}
		if !isIdent(text[i]) {
			return nil, newError(CodeMalformedEntry, i, charAt(text, i), "expected identifier")
		}
		if len(entries) == want {
			return nil, newError(CodeCountMismatch, i, "", fmt.Sprintf("found more entries than expected (%d)", want))
		}

		start := i
		for i < len(text) && isIdent(text[i]) {
			i++
		}
		entry := Entry{Name: text[start:i], Offset: start}

		for i < len(text) && isSpace(text[i]) {
			i++
		}

		switch {
		case i == len(text) || text[i] == ',':
			entry.Value = kind.Truncate(next)
		case text[i] == '=':
			i++
			end := i
			for end < len(text) && text[end] != ',' {
				end++
			}
			if s, e := trim(text[i:end]); s == e {
				return nil, newError(CodeExpectedValue, i, entry.Name, "expected value after equals")
			}
			v, err := evaluate(text[i:end], i, kind)
			if err != nil {
				return nil, err
			}
			entry.Value = v
			entry.Explicit = true
			i = end
		default:
			return nil, newError(CodeMalformedEntry, i, charAt(text, i), fmt.Sprintf("unexpected character after %s", entry.Name))
		}

		entries = append(entries, entry)
		next = kind.Truncate(entry.Value + 1)

		if i < len(text) {
			// Skip the comma that ends this entry.
			i++
		}
	}

	if len(entries) < want {
		return nil, newError(CodeCountMismatch, -1, "", fmt.Sprintf("found %d entries, fewer than expected (%d)", len(entries), want))
	}
	return entries, nil
}

// CheckUnique returns a CodeDuplicateName error for the first name declared twice.
func CheckUnique(entries []Entry) error {
	seen := make(map[string]int, len(entries))
	for _, e := range entries {
		if first, ok := seen[e.Name]; ok {
			return newError(CodeDuplicateName, e.Offset, e.Name, fmt.Sprintf("name already declared at offset %d", first))
		}
		seen[e.Name] = e.Offset
	}
	return nil
}
