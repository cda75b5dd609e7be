// Package quickstart provides simple example types for documentation.
package quickstart

//go:generate go run github.com/broady/enumrefl/cmd/enumrefl gen

// [snippet:types]

// Color is a paint color.
//
//enumrefl:enum text
//enumrefl:values Red = 1, Green, Blue = 0x10
type Color uint8

// Level is a logging level.
//
//enumrefl:enum strict
//enumrefl:values Debug = -4, Info = 0,
//enumrefl:values Warn = 4, Error = 8
type Level int8

// [/snippet:types]
