package eval

import (
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"os"
	"strconv"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/vmihailenco/msgpack/v5"
	"golang.org/x/term"
	"gopkg.in/yaml.v3"

	"github.com/broady/enumrefl/cmd/enumrefl/internal/gen"
	"github.com/broady/enumrefl/enumgen"
	"github.com/broady/enumrefl/enumgen/ir"
	"github.com/broady/enumrefl/internal/directive"
	"github.com/broady/enumrefl/internal/variant"
)

var (
	headerStyle = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("6"))
	valueStyle  = lipgloss.NewStyle().Foreground(lipgloss.Color("3"))
)

type Cmd struct {
	Values string `arg:"" help:"Variant list, e.g. \"A = 1, B, C = 0x10\"."`
	Type   string `help:"Underlying integer type." short:"t" default:"int" enum:"int,int8,int16,int32,int64,uint,uint8,uint16,uint32,uint64,uintptr,byte,rune"`
	Name   string `help:"Type name used in warnings." default:"T"`
	Format string `help:"Output format (table, json, yaml, msgpack)." short:"f" default:"table" enum:"table,json,yaml,msgpack"`
	Strict bool   `help:"Reject duplicate names."`
}

// Entry is one (name, value) pair. Value is an int64 or uint64 depending
// on the signedness of the type.
type Entry struct {
	Name  string `json:"name" yaml:"name" msgpack:"name"`
	Value any    `json:"value" yaml:"value" msgpack:"value"`
}

// Report holds the three orders of an evaluated variant list.
type Report struct {
	Type     string   `json:"type" yaml:"type" msgpack:"type"`
	Entries  []Entry  `json:"entries" yaml:"entries" msgpack:"entries"`
	ByValue  []Entry  `json:"by_value" yaml:"by_value" msgpack:"by_value"`
	ByName   []Entry  `json:"by_name" yaml:"by_name" msgpack:"by_name"`
	Warnings []string `json:"warnings,omitempty" yaml:"warnings,omitempty" msgpack:"warnings,omitempty"`
}

func (c *Cmd) Run(logger *slog.Logger) error {
	if c.Format == "msgpack" && term.IsTerminal(int(os.Stdout.Fd())) {
		return errors.New("refusing to write msgpack to a terminal; redirect stdout")
	}
	report, warnings, err := c.Evaluate()
	if err != nil {
		return err
	}
	logger.Debug("evaluated", slog.Int("entries", len(report.Entries)), slog.String("type", report.Type))
	if c.Format == "table" {
		gen.PrintWarnings(os.Stderr, warnings)
	}
	return Write(os.Stdout, c.Format, report)
}

// Evaluate parses the variant list.
func (c *Cmd) Evaluate() (*Report, []ir.Warning, error) {
	kind, ok := variant.KindOf(c.Type)
	if !ok {
		return nil, nil, fmt.Errorf("unsupported type %q", c.Type)
	}
	cfg := enumgen.DefaultConfig()
	cfg.Strict = c.Strict
	desc, warnings, err := enumgen.Build(directive.Enum{
		TypeName:   c.Name,
		Underlying: c.Type,
		Kind:       kind,
		Values:     c.Values,
	}, cfg)
	if err != nil {
		return nil, nil, err
	}

	report := &Report{
		Type:    c.Type,
		Entries: entries(desc, desc.Members),
		ByValue: entries(desc, desc.ByValue),
		ByName:  entries(desc, desc.ByName),
	}
	for _, w := range warnings {
		report.Warnings = append(report.Warnings, w.Code+": "+w.Message)
	}
	return report, warnings, nil
}

func entries(desc *ir.EnumDescriptor, members []ir.EnumMember) []Entry {
	out := make([]Entry, len(members))
	for i, m := range members {
		out[i] = Entry{Name: m.Name}
		if desc.Kind.Signed {
			out[i].Value = desc.Kind.Int64(m.Value)
		} else {
			out[i].Value = desc.Kind.Uint64(m.Value)
		}
	}
	return out
}

// Write encodes report in the named format.
func Write(w io.Writer, format string, report *Report) error {
	switch format {
	case "table":
		_, err := io.WriteString(w, renderTable(report))
		return err
	case "json":
		enc := json.NewEncoder(w)
		enc.SetIndent("", "  ")
		return enc.Encode(report)
	case "yaml":
		enc := yaml.NewEncoder(w)
		enc.SetIndent(2)
		if err := enc.Encode(report); err != nil {
			return err
		}
		return enc.Close()
	case "msgpack":
		return msgpack.NewEncoder(w).Encode(report)
	default:
		return fmt.Errorf("unknown format %q", format)
	}
}

// renderTable lays out the three orders side by side.
func renderTable(r *Report) string {
	columns := [][]string{
		{"#"},
		{"declared"},
		{"by value"},
		{"by name"},
	}
	for i := range r.Entries {
		columns[0] = append(columns[0], strconv.Itoa(i))
		columns[1] = append(columns[1], cell(r.Entries[i]))
		columns[2] = append(columns[2], cell(r.ByValue[i]))
		columns[3] = append(columns[3], cell(r.ByName[i]))
	}

	var widths [4]int
	for c, col := range columns {
		for _, s := range col {
			widths[c] = max(widths[c], lipgloss.Width(s))
		}
	}

	var b strings.Builder
	rows := len(columns[0])
	for row := range rows {
		for c := range columns {
			s := columns[c][row]
			pad := strings.Repeat(" ", widths[c]-lipgloss.Width(s))
			if row == 0 {
				s = headerStyle.Render(s)
			}
			b.WriteString(s)
			if c < len(columns)-1 {
				b.WriteString(pad)
				b.WriteString("  ")
			}
		}
		b.WriteString("\n")
	}
	return b.String()
}

func cell(e Entry) string {
	return e.Name + " = " + valueStyle.Render(fmt.Sprint(e.Value))
}
