package enumgen

import (
	"fmt"
	"go/token"

	"github.com/broady/enumrefl"
	"github.com/broady/enumrefl/enumgen/ir"
	"github.com/broady/enumrefl/internal/directive"
	"github.com/broady/enumrefl/internal/variant"
)

// Build evaluates the variant list of an enum directive.
//
// Directive options override the defaults in cfg. Malformed variant lists,
// and duplicate names in strict mode, are errors; names that cannot become
// Go constants are reported as warnings and get no constant.
func Build(e directive.Enum, cfg Config) (*ir.EnumDescriptor, []ir.Warning, error) {
	src := ir.Source{File: e.Pos.Filename, Line: e.Pos.Line, Column: e.Pos.Column}

	entries, err := variant.ParseEntries(e.Values, e.Kind)
	if err != nil {
		return nil, nil, fmt.Errorf("%s: enum %s: %w", src, e.TypeName, err)
	}
	strict := directive.Bool(e.Options.Strict, cfg.Strict)
	if strict {
		if err := variant.CheckUnique(entries); err != nil {
			return nil, nil, fmt.Errorf("%s: enum %s: %w", src, e.TypeName, err)
		}
	}

	desc := &ir.EnumDescriptor{
		Name:       e.TypeName,
		Underlying: e.Underlying,
		Kind:       e.Kind,
		Text:       directive.Bool(e.Options.Text, cfg.Text),
		Stringer:   directive.Bool(e.Options.String, true),
		Source:     src,
	}
	consts := directive.Bool(e.Options.Consts, true)

	var warnings []ir.Warning
	warn := func(code, format string, args ...any) {
		warnings = append(warnings, ir.Warning{
			Code:     code,
			Message:  fmt.Sprintf(format, args...),
			Source:   &src,
			TypeName: e.TypeName,
		})
	}

	names := make(map[string]bool, len(entries))
	firstByValue := make(map[uint64]string, len(entries))
	for _, entry := range entries {
		m := ir.EnumMember{Name: entry.Name, Value: entry.Value, Explicit: entry.Explicit}
		if first, ok := firstByValue[entry.Value]; ok {
			m.AliasOf = first
			warn(ir.WarnDuplicateValue, "%s has the value of %s; String returns %s", entry.Name, first, first)
		} else {
			firstByValue[entry.Value] = entry.Name
		}

		switch {
		case !consts:
		case names[entry.Name]:
			warn(ir.WarnDuplicateName, "%s declared twice; lookups use the first", entry.Name)
		case !token.IsIdentifier(entry.Name):
			warn(ir.WarnInvalidIdentifier, "%s is not a Go identifier; no constant emitted", entry.Name)
		case entry.Name == e.TypeName:
			warn(ir.WarnNameConflict, "%s has the name of its type; no constant emitted", entry.Name)
		default:
			m.Const = true
		}
		names[entry.Name] = true
		desc.Members = append(desc.Members, m)
	}

	if e.Kind.Signed {
		desc.ByValue, desc.ByName = sortMembers(desc.Members, func(v uint64) int64 { return e.Kind.Int64(v) }, e.Kind)
	} else {
		desc.ByValue, desc.ByName = sortMembers(desc.Members, func(v uint64) uint64 { return v }, e.Kind)
	}
	return desc, warnings, nil
}

// sortMembers orders members with the same table builder used at run time,
// so generated tables match what enumrefl.Parse would build.
func sortMembers[E int64 | uint64](members []ir.EnumMember, conv func(uint64) E, kind variant.Kind) (byValue, byName []ir.EnumMember) {
	entries := make([]enumrefl.Entry[E], len(members))
	for i, m := range members {
		entries[i] = enumrefl.Entry[E]{Value: conv(m.Value), Name: m.Name}
	}
	tbl := enumrefl.NewTable(entries)

	back := func(sorted []enumrefl.Entry[E]) []ir.EnumMember {
		out := make([]ir.EnumMember, len(sorted))
		for i, s := range sorted {
			out[i] = ir.EnumMember{Name: s.Name, Value: kind.Truncate(uint64(s.Value))}
		}
		return out
	}
	return back(tbl.EntriesByValue()), back(tbl.EntriesByName())
}
