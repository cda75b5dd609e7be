package enumrefl

import (
	"fmt"
	"reflect"

	"fortio.org/safecast"

	"github.com/broady/enumrefl/internal/variant"
)

// Parse builds a Table for E from a variant list such as "A = 1, B, C = 0x10".
//
// Values are evaluated at the width and signedness of E's underlying type;
// literals that overflow wrap around. Errors are of type *Error.
func Parse[E Integer](text string) (*Table[E], error) {
	kind, err := kindOf[E]()
	if err != nil {
		return nil, err
	}
	parsed, err := variant.ParseEntries(text, kind)
	if err != nil {
		return nil, err
	}

	entries := make([]Entry[E], len(parsed))
	for i, p := range parsed {
		v, err := convert[E](kind, p.Value)
		if err != nil {
			return nil, fmt.Errorf("%s: %w", p.Name, err)
		}
		entries[i] = Entry[E]{Value: v, Name: p.Name}
	}
	return NewTable(entries), nil
}

// MustParse is like Parse but panics on error. It is meant for package-level
// variables, so that a malformed variant list stops the program before main runs.
func MustParse[E Integer](text string) *Table[E] {
	t, err := Parse[E](text)
	if err != nil {
		panic(fmt.Sprintf("enumrefl: %T: %v", *new(E), err))
	}
	return t
}

func kindOf[E Integer]() (variant.Kind, error) {
	typ := reflect.TypeFor[E]()
	var signed bool
	switch typ.Kind() {
	case reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64:
		signed = true
	}
	return variant.NewKind(typ.Bits(), signed)
}

// convert turns a truncated bit pattern into E. The pattern always fits,
// so an error here means the kind does not match E.
func convert[E Integer](kind variant.Kind, bits uint64) (E, error) {
	if kind.Signed {
		return safecast.Conv[E](kind.Int64(bits))
	}
	return safecast.Conv[E](kind.Uint64(bits))
}
