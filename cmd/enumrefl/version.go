package main

import (
	_ "embed"
	"fmt"
	"io"
	"runtime/debug"
	"strings"

	"github.com/broady/enumrefl/enumgen/golang"
)

//go:embed VERSION
var embeddedVersion string

// buildInfo describes the running enumrefl binary.
type buildInfo struct {
	// Module is the module version when installed with go install.
	Module   string
	Base     string
	Revision string
	Modified bool
	Go       string
}

func (b buildInfo) String() string {
	if b.Module != "" {
		return b.Module
	}
	v := "devel-" + b.Base
	if b.Revision != "" {
		v += "+" + b.Revision
	}
	if b.Modified {
		v += "-dirty"
	}
	return v
}

func readBuildInfo(base string, info *debug.BuildInfo) buildInfo {
	b := buildInfo{Base: base}
	if info == nil {
		return b
	}
	b.Go = info.GoVersion
	if v := info.Main.Version; v != "" && v != "(devel)" {
		b.Module = v
	}
	for _, s := range info.Settings {
		switch s.Key {
		case "vcs.revision":
			if len(s.Value) >= 7 {
				b.Revision = s.Value[:7]
			}
		case "vcs.modified":
			b.Modified = s.Value == "true"
		}
	}
	return b
}

func currentBuild() buildInfo {
	info, _ := debug.ReadBuildInfo()
	return readBuildInfo(strings.TrimSpace(embeddedVersion), info)
}

// Version returns the version string: the module version for installed
// binaries, otherwise "devel-<VERSION>+<revision>".
func Version() string {
	return currentBuild().String()
}

type VersionCmd struct {
	Long bool `help:"Also print the Go toolchain and the runtime import path used by generated code." short:"l"`
}

func (c *VersionCmd) Run() error {
	return writeVersion(stdout, currentBuild(), c.Long)
}

func writeVersion(w io.Writer, b buildInfo, long bool) error {
	if !long {
		_, err := fmt.Fprintln(w, b)
		return err
	}
	goVersion := b.Go
	if goVersion == "" {
		goVersion = "unknown"
	}
	_, err := fmt.Fprintf(w, "enumrefl %s\n  go:      %s\n  runtime: %s\n", b, goVersion, golang.RuntimeImport)
	return err
}
