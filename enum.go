// Package enumrefl provides reflection for integer enumerations: the ordered
// list of (value, name) pairs of an enumeration and lookups in both directions.
//
// Tables are built ahead of use, either by the enumrefl generator from a
// directive on the type declaration:
//
//	//enumrefl:enum
//	//enumrefl:values Red = 1, Green, Blue = 0x10
//	type Color uint8
//
// or at package initialization with MustParse:
//
//	var levels = enumrefl.MustParse[Level]("Debug = -4, Info = 0, Warn = 4, Error = 8")
//
//	func (Level) EnumTable() *enumrefl.Table[Level] { return levels }
//
// Either way the type gains an EnumTable method, which the generic functions
// of this package use to find its table.
package enumrefl

import "reflect"

// Enum is satisfied by integer types with attached reflection data.
type Enum[E Integer] interface {
	Integer
	EnumTable() *Table[E]
}

// Descriptor is the type-erased view of a Table.
type Descriptor interface {
	Len() int
	Names() []string
	HasName(name string) bool
}

// Reflected is implemented by every type generated with reflection data.
type Reflected interface {
	ReflectEnum() Descriptor
}

// Text is any input convertible to a read-only string.
type Text interface {
	~string | ~[]byte
}

var descriptorType = reflect.TypeFor[Descriptor]()

// HasReflection reports whether T has reflection data attached, that is,
// whether T is an integer type satisfying Enum[T] or Reflected.
func HasReflection[T any]() bool {
	t := reflect.TypeFor[T]()
	switch t.Kind() {
	case reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64,
		reflect.Uint, reflect.Uint8, reflect.Uint16, reflect.Uint32, reflect.Uint64, reflect.Uintptr:
	default:
		return false
	}
	var zero T
	if _, ok := any(zero).(Reflected); ok {
		return true
	}
	m, ok := t.MethodByName("EnumTable")
	if !ok || m.Type.NumIn() != 1 || m.Type.NumOut() != 1 {
		return false
	}
	// The result must be *Table[T]: a table type whose lookups take T.
	out := m.Type.Out(0)
	if out.Kind() != reflect.Pointer || out.Elem().PkgPath() != descriptorType.PkgPath() {
		return false
	}
	lookup, ok := out.MethodByName("ToString")
	return ok && lookup.Type.NumIn() == 2 && lookup.Type.In(1) == t
}

func tableOf[E Enum[E]]() *Table[E] {
	var zero E
	return zero.EnumTable()
}

// Entries returns the entries of E in declaration order.
func Entries[E Enum[E]]() []Entry[E] {
	return tableOf[E]().Entries()
}

// EntriesByValue returns the entries of E sorted by value.
func EntriesByValue[E Enum[E]]() []Entry[E] {
	return tableOf[E]().EntriesByValue()
}

// EntriesByName returns the entries of E sorted by name.
func EntriesByName[E Enum[E]]() []Entry[E] {
	return tableOf[E]().EntriesByName()
}

// ToString returns the declared name of v.
func ToString[E Enum[E]](v E) (string, bool) {
	return tableOf[E]().ToString(v)
}

// ToEnum returns the value of E declared with the name s.
func ToEnum[E Enum[E], S Text](s S) (E, bool) {
	return tableOf[E]().ToEnum(string(s))
}
