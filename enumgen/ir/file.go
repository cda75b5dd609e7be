package ir

import "fmt"

// File is one generated Go source file.
type File struct {
	// Package is the package the file belongs to.
	Package PackageInfo

	// Name is the file name within the package directory.
	Name string

	// Header is extra comment text placed after the generated-code notice.
	Header string

	// Enums are emitted in order.
	Enums []*EnumDescriptor
}

// ValidationError represents a structural problem in a File.
type ValidationError struct {
	Code    string
	Message string
}

func (e *ValidationError) Error() string {
	return fmt.Sprintf("%s: %s", e.Code, e.Message)
}

// HasText reports whether any enum requests text marshaling.
func (f *File) HasText() bool {
	for _, e := range f.Enums {
		if e.Text {
			return true
		}
	}
	return false
}

// HasStringer reports whether any enum requests a String method.
func (f *File) HasStringer() bool {
	for _, e := range f.Enums {
		if e.Stringer {
			return true
		}
	}
	return false
}

// Validate checks that the file's declarations do not collide.
// Returns all validation errors found (not just the first).
func (f *File) Validate() []error {
	return validateEnums(f.Enums)
}

// ValidatePackage checks that the declarations of files, which share one
// package scope, do not collide with each other.
func ValidatePackage(files []*File) []error {
	var enums []*EnumDescriptor
	for _, f := range files {
		enums = append(enums, f.Enums...)
	}
	return validateEnums(enums)
}

func validateEnums(enums []*EnumDescriptor) []error {
	var errs []error

	types := make(map[string]bool)
	consts := make(map[string]string) // constant name -> enum name
	for _, e := range enums {
		if types[e.Name] {
			errs = append(errs, &ValidationError{
				Code:    "duplicate_type",
				Message: "enum " + e.Name + " declared twice",
			})
		}
		types[e.Name] = true
	}

	for _, e := range enums {
		for _, m := range e.Consts() {
			if owner, ok := consts[m.Name]; ok {
				errs = append(errs, &ValidationError{
					Code:    "duplicate_const",
					Message: fmt.Sprintf("constant %s declared by both %s and %s", m.Name, owner, e.Name),
				})
				continue
			}
			if types[m.Name] {
				errs = append(errs, &ValidationError{
					Code:    "const_shadows_type",
					Message: fmt.Sprintf("constant %s of %s has the name of an enum type", m.Name, e.Name),
				})
			}
			consts[m.Name] = e.Name
		}
	}
	return errs
}
