package gen

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"os"

	"github.com/fatih/color"

	"github.com/broady/enumrefl/enumgen"
	"github.com/broady/enumrefl/enumgen/ir"
)

var (
	warningColor = color.New(color.FgYellow, color.Bold)
	okColor      = color.New(color.FgGreen)
)

// Options are the configuration flags shared by gen and check.
// Flags override values from enumrefl.toml.
type Options struct {
	Config string `help:"Path to enumrefl.toml (default: search upward from the current directory)." type:"existingfile"`
	Output string `help:"Generated file name within each package." short:"o"`
	Strict bool   `help:"Reject duplicate names in variant lists."`
	Text   bool   `help:"Emit MarshalText and UnmarshalText methods."`
	Jobs   int    `help:"Packages generated concurrently (0: one per package)." short:"j"`
}

// Load resolves the generation config.
func (o *Options) Load(logger *slog.Logger) (enumgen.Config, error) {
	var (
		cfg  enumgen.Config
		path = o.Config
		err  error
	)
	if path != "" {
		cfg, err = enumgen.LoadConfig(path)
	} else {
		cfg, path, err = enumgen.LoadConfigFrom(".")
	}
	if err != nil {
		return enumgen.Config{}, err
	}
	if path != "" {
		logger.Debug("config loaded", slog.String("path", path))
	}

	if o.Output != "" {
		cfg.Output = o.Output
	}
	if o.Strict {
		cfg.Strict = true
	}
	if o.Text {
		cfg.Text = true
	}
	if o.Jobs > 0 {
		cfg.Jobs = o.Jobs
	}
	return cfg, cfg.Validate()
}

type Cmd struct {
	Packages []string `arg:"" optional:"" help:"Packages to scan (default: current directory)."`
	Options  `embed:""`
}

func (c *Cmd) Run(ctx context.Context, logger *slog.Logger) error {
	cfg, err := c.Load(logger)
	if err != nil {
		return err
	}
	result, err := enumgen.New().
		WithConfig(cfg).
		WithLogger(logger).
		Generate(ctx, c.Packages...)
	if err != nil {
		return err
	}

	PrintWarnings(os.Stderr, result.Warnings)
	enums := 0
	for _, f := range result.Files {
		enums += len(f.Enums)
	}
	okColor.Printf("✓ %d enums in %d files\n", enums, len(result.Files))
	return nil
}

// PrintWarnings writes one line per warning.
func PrintWarnings(w io.Writer, warnings []ir.Warning) {
	for _, wn := range warnings {
		src := "-"
		if wn.Source != nil {
			src = wn.Source.String()
		}
		fmt.Fprintf(w, "%s: %s %s (%s)\n", src, warningColor.Sprint("warning:"), wn.Message, wn.Code)
	}
}
