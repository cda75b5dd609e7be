package ir

import "github.com/broady/enumrefl/internal/variant"

// EnumDescriptor is a fully evaluated enumeration.
type EnumDescriptor struct {
	// Name is the Go type name.
	Name string

	// Underlying is the Go name of the underlying integer type.
	Underlying string

	// Kind is the width and signedness values were evaluated at.
	Kind variant.Kind

	// Members are the variants in declaration order.
	Members []EnumMember

	// ByValue and ByName are Members sorted for lookups.
	// Entries with equal keys keep declaration order.
	ByValue []EnumMember
	ByName  []EnumMember

	// Text requests MarshalText and UnmarshalText methods.
	Text bool

	// Stringer requests a String method.
	Stringer bool

	// Source is the location of the enum directive.
	Source Source
}

// EnumMember is one variant.
type EnumMember struct {
	// Name is the identifier as written in the variant list.
	Name string

	// Value is the bit pattern truncated to the enum's width.
	Value uint64

	// Explicit is true if the value was written in the variant list.
	Explicit bool

	// Const is true if a typed constant is emitted for this member.
	Const bool

	// AliasOf names the first earlier member with the same value, if any.
	AliasOf string
}

// Literal returns the member's value as a Go integer literal.
func (d *EnumDescriptor) Literal(m EnumMember) string {
	return d.Kind.Format(m.Value)
}

// Consts returns the members that get a typed constant.
func (d *EnumDescriptor) Consts() []EnumMember {
	var out []EnumMember
	for _, m := range d.Members {
		if m.Const {
			out = append(out, m)
		}
	}
	return out
}
