// Package ir defines the intermediate representation the enumrefl generator
// emits from: one File per output file, holding fully evaluated enumerations.
package ir

import "fmt"

// Source represents source code location information.
type Source struct {
	File   string
	Line   int
	Column int
}

// IsZero returns true if the source location is empty.
func (s Source) IsZero() bool {
	return s.File == "" && s.Line == 0 && s.Column == 0
}

func (s Source) String() string {
	if s.IsZero() {
		return "-"
	}
	return fmt.Sprintf("%s:%d:%d", s.File, s.Line, s.Column)
}

// Warning represents a non-fatal issue encountered during generation.
type Warning struct {
	// Code is a machine-readable warning identifier.
	Code string

	// Message is a human-readable description.
	Message string

	// Source is the location that triggered the warning, if applicable.
	Source *Source

	// TypeName is the enumeration that triggered the warning.
	TypeName string
}

func (w Warning) String() string {
	if w.Source != nil {
		return fmt.Sprintf("%s: %s: %s", w.Source, w.Code, w.Message)
	}
	return fmt.Sprintf("%s: %s", w.Code, w.Message)
}

// Warning codes.
const (
	WarnDuplicateName     = "duplicate_name"
	WarnDuplicateValue    = "duplicate_value"
	WarnInvalidIdentifier = "invalid_identifier"
	WarnNameConflict      = "name_conflict"
)

// PackageInfo describes a Go package.
type PackageInfo struct {
	// Path is the import path (e.g., "github.com/foo/bar").
	Path string

	// Name is the package name (e.g., "bar").
	Name string

	// Dir is the filesystem directory, if known.
	Dir string
}
