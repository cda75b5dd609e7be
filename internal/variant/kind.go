package variant

import (
	"fmt"
	"strconv"

	"fortio.org/safecast"
)

// Kind describes the underlying integer type of an enumeration.
// All arithmetic is carried out on uint64 bit patterns masked to Width.
type Kind struct {
	Width  int  // 8, 16, 32 or 64
	Signed bool // two's complement when true
}

var (
	Int8   = Kind{Width: 8, Signed: true}
	Int16  = Kind{Width: 16, Signed: true}
	Int32  = Kind{Width: 32, Signed: true}
	Int64  = Kind{Width: 64, Signed: true}
	Uint8  = Kind{Width: 8}
	Uint16 = Kind{Width: 16}
	Uint32 = Kind{Width: 32}
	Uint64 = Kind{Width: 64}
)

// kindNames maps Go basic type names to kinds. int, uint and uintptr are
// treated as 64 bits; generated constants that do not fit a narrower
// platform type fail to compile there.
var kindNames = map[string]Kind{
	"int":     Int64,
	"int8":    Int8,
	"int16":   Int16,
	"int32":   Int32,
	"int64":   Int64,
	"uint":    Uint64,
	"uint8":   Uint8,
	"uint16":  Uint16,
	"uint32":  Uint32,
	"uint64":  Uint64,
	"uintptr": Uint64,
	"byte":    Uint8,
	"rune":    Int32,
}

// KindOf returns the kind for a Go basic integer type name.
func KindOf(name string) (Kind, bool) {
	k, ok := kindNames[name]
	return k, ok
}

// NewKind returns the kind for a width in bits, as reported by reflect.Type.Bits.
func NewKind(bits int, signed bool) (Kind, error) {
	w, err := safecast.Conv[uint8](bits)
	if err != nil {
		return Kind{}, fmt.Errorf("integer width %d: %w", bits, err)
	}
	switch w {
	case 8, 16, 32, 64:
		return Kind{Width: int(w), Signed: signed}, nil
	}
	return Kind{}, fmt.Errorf("unsupported integer width %d", bits)
}

// String returns the Go name of the fixed-width type with this kind.
func (k Kind) String() string {
	if k.Signed {
		return "int" + strconv.Itoa(k.Width)
	}
	return "uint" + strconv.Itoa(k.Width)
}

// Mask returns the bit mask covering Width bits.
func (k Kind) Mask() uint64 {
	if k.Width >= 64 {
		return ^uint64(0)
	}
	return 1<<uint(k.Width) - 1
}

// Truncate discards the bits above Width.
func (k Kind) Truncate(v uint64) uint64 {
	return v & k.Mask()
}

// Int64 interprets a truncated bit pattern as a signed value.
func (k Kind) Int64(v uint64) int64 {
	v = k.Truncate(v)
	if k.Width < 64 && v&(1<<uint(k.Width-1)) != 0 {
		v |= ^k.Mask()
	}
	return int64(v)
}

// Uint64 interprets a truncated bit pattern as an unsigned value.
func (k Kind) Uint64(v uint64) uint64 {
	return k.Truncate(v)
}

// Less orders two bit patterns by their numeric value under k.
func (k Kind) Less(a, b uint64) bool {
	if k.Signed {
		return k.Int64(a) < k.Int64(b)
	}
	return k.Truncate(a) < k.Truncate(b)
}

// Format renders a bit pattern as a decimal Go literal.
func (k Kind) Format(v uint64) string {
	if k.Signed {
		return strconv.FormatInt(k.Int64(v), 10)
	}
	return strconv.FormatUint(k.Truncate(v), 10)
}

// Min returns the bit pattern of the smallest representable value.
func (k Kind) Min() uint64 {
	if !k.Signed {
		return 0
	}
	return k.Truncate(1 << uint(k.Width-1))
}

// Max returns the bit pattern of the largest representable value.
func (k Kind) Max() uint64 {
	if !k.Signed {
		return k.Mask()
	}
	return k.Mask() >> 1
}
