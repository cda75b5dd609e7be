package main

import (
	"context"
	"io"
	"log/slog"
	"os"
	"os/signal"

	"github.com/alecthomas/kong"

	"github.com/broady/enumrefl/cmd/enumrefl/internal/check"
	"github.com/broady/enumrefl/cmd/enumrefl/internal/eval"
	"github.com/broady/enumrefl/cmd/enumrefl/internal/gen"
)

type CLI struct {
	Verbose bool `help:"Log debug output to stderr." short:"v"`

	Version VersionCmd `cmd:"" help:"Print version information."`
	Gen     gen.Cmd    `cmd:"" help:"Generate reflection code for enum types."`
	Check   check.Cmd  `cmd:"" help:"Verify generated files are up to date without writing them."`
	Eval    eval.Cmd   `cmd:"" help:"Evaluate a variant list and print its tables."`
}

var stdout io.Writer = os.Stdout

func newLogger(verbose bool) *slog.Logger {
	// Warnings are printed by the commands themselves.
	level := slog.LevelError
	if verbose {
		level = slog.LevelDebug
	}
	return slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: level}))
}

func main() {
	cli := &CLI{}
	kctx := kong.Parse(cli,
		kong.Name("enumrefl"),
		kong.Description("Reflection code generator for integer enums."),
		kong.UsageOnError(),
	)

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()
	logger := newLogger(cli.Verbose)
	slog.SetDefault(logger)

	kctx.BindTo(ctx, (*context.Context)(nil))
	err := kctx.Run(logger)
	kctx.FatalIfErrorf(err)
}
