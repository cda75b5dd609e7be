package enumrefl

import (
	"strings"
	"testing"
)

func TestParse_Limits(t *testing.T) {
	u8, err := Parse[uint8]("VAL1 = 0xff, VAL2 = 0x00, VAL3")
	if err != nil {
		t.Fatalf("Parse[uint8]: %v", err)
	}
	if v, _ := u8.ToEnum("VAL1"); v != 255 {
		t.Errorf("VAL1 = %d, want 255", v)
	}
	if v, _ := u8.ToEnum("VAL3"); v != 1 {
		t.Errorf("VAL3 = %d, want 1", v)
	}

	i8, err := Parse[int8]("VAL1 = 0177, VAL2 = -0200, VAL3")
	if err != nil {
		t.Fatalf("Parse[int8]: %v", err)
	}
	if v, _ := i8.ToEnum("VAL2"); v != -128 {
		t.Errorf("VAL2 = %d, want -128", v)
	}
	if v, _ := i8.ToEnum("VAL3"); v != -127 {
		t.Errorf("VAL3 = %d, want -127", v)
	}

	u64, err := Parse[uint64]("VAL1 = 18446744073709551615ull, VAL2 = 0")
	if err != nil {
		t.Fatalf("Parse[uint64]: %v", err)
	}
	if v, _ := u64.ToEnum("VAL1"); v != 1<<64-1 {
		t.Errorf("VAL1 = %d, want max uint64", v)
	}

	i32, err := Parse[int32]("VAL1 = 2147483647, VAL2 = -2147483648, VAL3")
	if err != nil {
		t.Fatalf("Parse[int32]: %v", err)
	}
	if name, _ := i32.ToString(-2147483647); name != "VAL3" {
		t.Errorf("ToString(min+1) = %q, want VAL3", name)
	}
}

func TestParse_NamedTypes(t *testing.T) {
	type small uint16
	tbl, err := Parse[small]("A = 0xffff, B")
	if err != nil {
		t.Fatalf("Parse: %v", err)
	}
	if v, _ := tbl.ToEnum("B"); v != 0 {
		t.Errorf("B = %d, want wraparound to 0", v)
	}

	type word uintptr
	if _, err := Parse[word]("A = 0x10"); err != nil {
		t.Errorf("Parse[uintptr-based]: %v", err)
	}
}

func TestMustParse_Panics(t *testing.T) {
	defer func() {
		r := recover()
		if r == nil {
			t.Fatal("expected panic")
		}
		msg, _ := r.(string)
		if !strings.Contains(msg, "expected value after equals") {
			t.Errorf("unexpected panic message %q", msg)
		}
	}()
	MustParse[int]("A = , B")
}
