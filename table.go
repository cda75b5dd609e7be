package enumrefl

import (
	"cmp"
	"slices"
	"strings"
)

// SearchThreshold is the table size from which lookups use binary search
// instead of a linear scan. Both lookup directions use the same threshold.
const SearchThreshold = 8

// Integer is the set of types an enumeration may be based on.
type Integer interface {
	~int | ~int8 | ~int16 | ~int32 | ~int64 |
		~uint | ~uint8 | ~uint16 | ~uint32 | ~uint64 | ~uintptr
}

// Entry is one (value, name) pair of an enumeration.
type Entry[E Integer] struct {
	Value E
	Name  string
}

// Table holds the reflection data of one enumeration: its entries in
// declaration order and two sorted views used for lookups.
//
// A Table is immutable once built and safe for concurrent use.
// Entries that share a value or a name keep their declaration order in
// the sorted views, so lookups resolve to the first declared entry.
type Table[E Integer] struct {
	entries []Entry[E]
	byValue []Entry[E]
	byName  []Entry[E]
}

// NewTable builds a Table from entries in declaration order.
// The input slice is copied.
func NewTable[E Integer](entries []Entry[E]) *Table[E] {
	return &Table[E]{
		entries: slices.Clone(entries),
		byValue: sortByValue(entries),
		byName:  sortByName(entries),
	}
}

// Precomputed wraps tables emitted by the enumrefl generator.
// It panics if the three slices differ in length.
func Precomputed[E Integer](entries, byValue, byName []Entry[E]) *Table[E] {
	if len(byValue) != len(entries) || len(byName) != len(entries) {
		panic("enumrefl: precomputed tables differ in length")
	}
	return &Table[E]{entries: entries, byValue: byValue, byName: byName}
}

func sortByValue[E Integer](entries []Entry[E]) []Entry[E] {
	s := slices.Clone(entries)
	slices.SortStableFunc(s, func(a, b Entry[E]) int {
		return cmp.Compare(a.Value, b.Value)
	})
	return s
}

func sortByName[E Integer](entries []Entry[E]) []Entry[E] {
	s := slices.Clone(entries)
	slices.SortStableFunc(s, func(a, b Entry[E]) int {
		return strings.Compare(a.Name, b.Name)
	})
	return s
}

// Len returns the number of entries.
func (t *Table[E]) Len() int { return len(t.entries) }

// Entries returns a copy of the entries in declaration order.
func (t *Table[E]) Entries() []Entry[E] { return slices.Clone(t.entries) }

// EntriesByValue returns a copy of the entries sorted by value.
func (t *Table[E]) EntriesByValue() []Entry[E] { return slices.Clone(t.byValue) }

// EntriesByName returns a copy of the entries sorted by name in byte order.
func (t *Table[E]) EntriesByName() []Entry[E] { return slices.Clone(t.byName) }

// Names returns the entry names in declaration order.
func (t *Table[E]) Names() []string {
	names := make([]string, len(t.entries))
	for i, e := range t.entries {
		names[i] = e.Name
	}
	return names
}

// HasName reports whether name is declared.
func (t *Table[E]) HasName(name string) bool {
	_, ok := t.ToEnum(name)
	return ok
}

// ToString returns the name declared for v.
// It returns false if no entry has the value v.
func (t *Table[E]) ToString(v E) (string, bool) {
	if len(t.byValue) >= SearchThreshold {
		i, found := slices.BinarySearchFunc(t.byValue, v, func(e Entry[E], v E) int {
			return cmp.Compare(e.Value, v)
		})
		if !found {
			return "", false
		}
		return t.byValue[i].Name, true
	}
	for _, e := range t.byValue {
		if e.Value == v {
			return e.Name, true
		}
	}
	return "", false
}

// ToEnum returns the value declared for name.
// It returns false if no entry is named name.
func (t *Table[E]) ToEnum(name string) (E, bool) {
	if len(t.byName) >= SearchThreshold {
		i, found := slices.BinarySearchFunc(t.byName, name, func(e Entry[E], name string) int {
			return strings.Compare(e.Name, name)
		})
		if !found {
			return 0, false
		}
		return t.byName[i].Value, true
	}
	for _, e := range t.byName {
		if e.Name == name {
			return e.Value, true
		}
	}
	return 0, false
}
