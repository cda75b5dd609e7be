package check

import (
	"context"
	"fmt"
	"log/slog"
	"os"

	"github.com/fatih/color"

	"github.com/broady/enumrefl/cmd/enumrefl/internal/gen"
	"github.com/broady/enumrefl/enumgen"
)

var staleColor = color.New(color.FgRed, color.Bold)

type Cmd struct {
	Packages    []string `arg:"" optional:"" help:"Packages to scan (default: current directory)."`
	gen.Options `embed:""`
}

func (c *Cmd) Run(ctx context.Context, logger *slog.Logger) error {
	cfg, err := c.Load(logger)
	if err != nil {
		return err
	}
	result, err := enumgen.New().
		WithConfig(cfg).
		WithLogger(logger).
		WithCheck(true).
		Generate(ctx, c.Packages...)
	if err != nil {
		return err
	}

	gen.PrintWarnings(os.Stderr, result.Warnings)
	for _, p := range result.Stale {
		fmt.Fprintf(os.Stderr, "%s %s\n", staleColor.Sprint("stale:"), p)
	}
	if n := len(result.Stale); n > 0 {
		return fmt.Errorf("%d of %d generated files out of date; run enumrefl gen", n, len(result.Files))
	}

	fmt.Printf("✓ %d generated files up to date\n", len(result.Files))
	return nil
}
