package enumrefl

import (
	"slices"
	"testing"
)

type color uint8

var colorTable = MustParse[color]("Red = 1, Green, Blue = 0x10u,")

func (color) EnumTable() *Table[color] { return colorTable }
func (color) ReflectEnum() Descriptor  { return colorTable }

// longEnum is large enough for binary search.
type longEnum int32

var longTable = MustParse[longEnum](`
	E0 = -836664583,
	E1 = 1115269785,
	E2 = 931928927,
	E3 = 2041793061,
	E4 = -1555443174,
	E5 = 1117885838,
	E6 = 1488457881,
	E7 = -1208474023,
	E8 = -250021238,
	E9 = 415261831,
`)

func (longEnum) EnumTable() *Table[longEnum] { return longTable }
func (longEnum) ReflectEnum() Descriptor     { return longTable }

type aliased int

var aliasedTable = MustParse[aliased]("A = 3, B = 2, C")

func (aliased) EnumTable() *Table[aliased] { return aliasedTable }

type emptyEnum int16

var emptyTable = MustParse[emptyEnum](" \n ")

func (emptyEnum) EnumTable() *Table[emptyEnum] { return emptyTable }
func (emptyEnum) ReflectEnum() Descriptor      { return emptyTable }

type plain int

// borrowed returns another type's table, so it does not satisfy Enum[borrowed].
type borrowed int

func (borrowed) EnumTable() *Table[color] { return colorTable }

func TestHasReflection(t *testing.T) {
	if !HasReflection[color]() {
		t.Error("expected color to have reflection")
	}
	if !HasReflection[emptyEnum]() {
		t.Error("expected empty enum to have reflection")
	}
	if HasReflection[borrowed]() {
		t.Error("expected type returning another type's table to have no reflection")
	}
	if HasReflection[plain]() {
		t.Error("expected plain enum to have no reflection")
	}
	if HasReflection[int]() {
		t.Error("expected int to have no reflection")
	}
	if HasReflection[Reflected]() {
		t.Error("expected interface type to have no reflection")
	}
}

func TestHasReflection_MustParse(t *testing.T) {
	// Attached at init time with MustParse and an EnumTable method only.
	if !HasReflection[aliased]() {
		t.Fatal("HasReflection[aliased]() = false")
	}
	if name, ok := ToString(aliased(2)); !ok || name != "B" {
		t.Errorf("ToString(2) = %q, %v, want B, true", name, ok)
	}
}

func TestEntries(t *testing.T) {
	want := []Entry[color]{{1, "Red"}, {2, "Green"}, {16, "Blue"}}
	if got := Entries[color](); !slices.Equal(got, want) {
		t.Errorf("Entries() = %v, want %v", got, want)
	}

	wantByName := []Entry[color]{{16, "Blue"}, {2, "Green"}, {1, "Red"}}
	if got := EntriesByName[color](); !slices.Equal(got, wantByName) {
		t.Errorf("EntriesByName() = %v, want %v", got, wantByName)
	}

	if got := EntriesByValue[color](); !slices.Equal(got, want) {
		t.Errorf("EntriesByValue() = %v, want %v", got, want)
	}
}

func TestToString(t *testing.T) {
	if name, ok := ToString(color(2)); !ok || name != "Green" {
		t.Errorf("ToString(2) = %q, %v, want Green", name, ok)
	}
	if _, ok := ToString(color(42)); ok {
		t.Error("ToString(42) should be absent")
	}
}

func TestToEnum(t *testing.T) {
	if v, ok := ToEnum[color]("Blue"); !ok || v != 16 {
		t.Errorf("ToEnum(Blue) = %d, %v, want 16", v, ok)
	}
	if v, ok := ToEnum[color]([]byte("Red")); !ok || v != 1 {
		t.Errorf("ToEnum([]byte(Red)) = %d, %v, want 1", v, ok)
	}

	type name string
	if v, ok := ToEnum[color](name("Green")); !ok || v != 2 {
		t.Errorf("ToEnum(name(Green)) = %d, %v, want 2", v, ok)
	}
	if _, ok := ToEnum[color]("INVALID"); ok {
		t.Error("ToEnum(INVALID) should be absent")
	}
}

func TestLongEnum(t *testing.T) {
	entries := Entries[longEnum]()
	if len(entries) < SearchThreshold {
		t.Fatalf("expected at least %d entries, got %d", SearchThreshold, len(entries))
	}
	for _, e := range entries {
		if name, ok := ToString(e.Value); !ok || name != e.Name {
			t.Errorf("ToString(%d) = %q, %v, want %q", e.Value, name, ok, e.Name)
		}
		if v, ok := ToEnum[longEnum](e.Name); !ok || v != e.Value {
			t.Errorf("ToEnum(%q) = %d, %v, want %d", e.Name, v, ok, e.Value)
		}
	}

	if v, _ := ToEnum[longEnum]("E5"); v != 1117885838 {
		t.Errorf("ToEnum(E5) = %d, want 1117885838", v)
	}
	if _, ok := ToString(longEnum(123)); ok {
		t.Error("ToString(123) should be absent")
	}
	if _, ok := ToEnum[longEnum]("nonexistent"); ok {
		t.Error("ToEnum(nonexistent) should be absent")
	}
}

func TestAliasedValues(t *testing.T) {
	want := []Entry[aliased]{{3, "A"}, {2, "B"}, {3, "C"}}
	if got := Entries[aliased](); !slices.Equal(got, want) {
		t.Errorf("Entries() = %v, want %v", got, want)
	}
	if name, _ := ToString(aliased(3)); name != "A" {
		t.Errorf("ToString(3) = %q, want first declared A", name)
	}
	if v, _ := ToEnum[aliased]("C"); v != 3 {
		t.Errorf("ToEnum(C) = %d, want 3", v)
	}
	if len(EntriesByValue[aliased]()) != 3 {
		t.Error("aliases must all appear in the by-value table")
	}
}

func TestEmptyEnum(t *testing.T) {
	if n := len(Entries[emptyEnum]()); n != 0 {
		t.Errorf("expected no entries, got %d", n)
	}
	if _, ok := ToString(emptyEnum(0)); ok {
		t.Error("ToString on empty enum should be absent")
	}
	if _, ok := ToEnum[emptyEnum](""); ok {
		t.Error("ToEnum on empty enum should be absent")
	}
}

func TestDescriptor(t *testing.T) {
	var d Descriptor = color(0).ReflectEnum()
	if d.Len() != 3 {
		t.Errorf("Len() = %d, want 3", d.Len())
	}
	if !slices.Equal(d.Names(), []string{"Red", "Green", "Blue"}) {
		t.Errorf("Names() = %v", d.Names())
	}
	if !d.HasName("Blue") || d.HasName("blue") {
		t.Error("HasName is case sensitive and must find Blue only")
	}
}
