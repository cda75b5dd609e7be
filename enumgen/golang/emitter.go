// Package golang emits Go source attaching reflection data to enum types.
package golang

import (
	"bytes"
	"errors"
	"fmt"
	"go/format"
	"strconv"
	"strings"

	"github.com/broady/enumrefl/enumgen/ir"
)

// GeneratedNotice is the first line of every emitted file.
const GeneratedNotice = "// Code generated by enumrefl. DO NOT EDIT."

// RuntimeImport is the import path of the runtime package generated code uses.
const RuntimeImport = "github.com/broady/enumrefl"

// Emitter handles Go code emission for one file.
type Emitter struct {
	file *ir.File
}

// NewEmitter returns an emitter for f.
func NewEmitter(f *ir.File) *Emitter {
	return &Emitter{file: f}
}

// Emit returns the gofmt-formatted source of f.
func Emit(f *ir.File) ([]byte, error) {
	return NewEmitter(f).Emit()
}

// Emit validates the file and renders it.
func (e *Emitter) Emit() ([]byte, error) {
	if e.file.Package.Name == "" {
		return nil, errors.New("package name is empty")
	}
	if errs := e.file.Validate(); len(errs) > 0 {
		return nil, fmt.Errorf("%s: %w", e.file.Name, errors.Join(errs...))
	}

	var buf bytes.Buffer
	e.emitHeader(&buf)
	for _, enum := range e.file.Enums {
		buf.WriteString("\n")
		e.EmitEnum(&buf, enum)
	}

	out, err := format.Source(buf.Bytes())
	if err != nil {
		return nil, fmt.Errorf("format %s: %w", e.file.Name, err)
	}
	return out, nil
}

func (e *Emitter) emitHeader(buf *bytes.Buffer) {
	buf.WriteString(GeneratedNotice)
	buf.WriteString("\n")
	if h := strings.TrimSpace(e.file.Header); h != "" {
		for _, line := range strings.Split(h, "\n") {
			buf.WriteString("//")
			if line = strings.TrimRight(line, " \t"); line != "" {
				buf.WriteString(" ")
				buf.WriteString(line)
			}
			buf.WriteString("\n")
		}
	}
	buf.WriteString("\npackage ")
	buf.WriteString(e.file.Package.Name)
	buf.WriteString("\n\nimport (\n")
	if e.file.HasText() {
		buf.WriteString("\t\"fmt\"\n")
	}
	if e.file.HasStringer() {
		buf.WriteString("\t\"strconv\"\n")
	}
	buf.WriteString("\n\t\"")
	buf.WriteString(RuntimeImport)
	buf.WriteString("\"\n)\n")
}

// EmitEnum writes the declarations of one enum.
func (e *Emitter) EmitEnum(buf *bytes.Buffer, enum *ir.EnumDescriptor) {
	table := tableVar(enum)

	if consts := enum.Consts(); len(consts) > 0 {
		buf.WriteString("const (\n")
		for _, m := range consts {
			fmt.Fprintf(buf, "\t%s %s = %s\n", m.Name, enum.Name, enum.Literal(m))
		}
		buf.WriteString(")\n\n")
	}

	fmt.Fprintf(buf, "var %s = enumrefl.Precomputed(\n", table)
	e.emitEntries(buf, enum, enum.Members)
	e.emitEntries(buf, enum, enum.ByValue)
	e.emitEntries(buf, enum, enum.ByName)
	buf.WriteString(")\n\n")

	fmt.Fprintf(buf, "// EnumTable returns the reflection data of %s.\n", enum.Name)
	fmt.Fprintf(buf, "func (%s) EnumTable() *enumrefl.Table[%s] { return %s }\n\n", enum.Name, enum.Name, table)
	fmt.Fprintf(buf, "// ReflectEnum returns the reflection data of %s without its type parameter.\n", enum.Name)
	fmt.Fprintf(buf, "func (%s) ReflectEnum() enumrefl.Descriptor { return %s }\n\n", enum.Name, table)
	fmt.Fprintf(buf, "var _ enumrefl.Reflected = %s(0)\n", enum.Name)

	if enum.Stringer {
		buf.WriteString("\n")
		e.emitString(buf, enum, table)
	}
	if enum.Text {
		buf.WriteString("\n")
		e.emitText(buf, enum, table)
	}
}

func (e *Emitter) emitEntries(buf *bytes.Buffer, enum *ir.EnumDescriptor, members []ir.EnumMember) {
	if len(members) == 0 {
		fmt.Fprintf(buf, "\t[]enumrefl.Entry[%s]{},\n", enum.Name)
		return
	}
	fmt.Fprintf(buf, "\t[]enumrefl.Entry[%s]{\n", enum.Name)
	for _, m := range members {
		fmt.Fprintf(buf, "\t\t{Value: %s, Name: %s},\n", enum.Literal(m), strconv.Quote(m.Name))
	}
	buf.WriteString("\t},\n")
}

func (e *Emitter) emitString(buf *bytes.Buffer, enum *ir.EnumDescriptor, table string) {
	conv := "strconv.FormatUint(uint64(v), 10)"
	if enum.Kind.Signed {
		conv = "strconv.FormatInt(int64(v), 10)"
	}
	fmt.Fprintf(buf, "// String returns the declared name of v, or %s(n) if undeclared.\n", enum.Name)
	fmt.Fprintf(buf, "func (v %s) String() string {\n", enum.Name)
	fmt.Fprintf(buf, "\tif s, ok := %s.ToString(v); ok {\n\t\treturn s\n\t}\n", table)
	fmt.Fprintf(buf, "\treturn %s + %s + \")\"\n}\n", strconv.Quote(enum.Name+"("), conv)
}

func (e *Emitter) emitText(buf *bytes.Buffer, enum *ir.EnumDescriptor, table string) {
	fmt.Fprintf(buf, "// MarshalText encodes v as its declared name.\n")
	fmt.Fprintf(buf, "func (v %s) MarshalText() ([]byte, error) {\n", enum.Name)
	fmt.Fprintf(buf, "\tif s, ok := %s.ToString(v); ok {\n\t\treturn []byte(s), nil\n\t}\n", table)
	fmt.Fprintf(buf, "\treturn nil, fmt.Errorf(\"%%d is not a declared %s value\", v)\n}\n\n", enum.Name)

	fmt.Fprintf(buf, "// UnmarshalText decodes a declared name of %s.\n", enum.Name)
	fmt.Fprintf(buf, "func (v *%s) UnmarshalText(text []byte) error {\n", enum.Name)
	fmt.Fprintf(buf, "\tx, ok := %s.ToEnum(string(text))\n", table)
	fmt.Fprintf(buf, "\tif !ok {\n\t\treturn fmt.Errorf(\"unknown %s name %%q\", text)\n\t}\n", enum.Name)
	buf.WriteString("\t*v = x\n\treturn nil\n}\n")
}

func tableVar(enum *ir.EnumDescriptor) string {
	return "_" + enum.Name + "Table"
}
