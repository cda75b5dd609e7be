// Package generate provides example code for running the generator from Go.
package generate

import (
	"context"
	"fmt"
	"log"
	"log/slog"
	"os"

	"github.com/broady/enumrefl/enumgen"
	"github.com/broady/enumrefl/enumgen/sink"
)

func exampleGenerate() {
	// [snippet:generate]
	cfg, _, err := enumgen.LoadConfigFrom(".")
	if err != nil {
		log.Fatal(err)
	}
	result, err := enumgen.New().
		WithConfig(cfg).
		WithLogger(slog.New(slog.NewTextHandler(os.Stderr, nil))).
		Generate(context.Background(), "./...")
	if err != nil {
		log.Fatal(err)
	}
	for _, w := range result.Warnings {
		fmt.Fprintln(os.Stderr, w)
	}
	// [/snippet:generate]
}

func exampleInMemory() {
	// [snippet:memory]
	mem := sink.NewMemorySink()
	if _, err := enumgen.New().WithSink(mem).Generate(context.Background(), "./api"); err != nil {
		log.Fatal(err)
	}
	fmt.Printf("%s", mem.Get("api/enumrefl_gen.go"))
	// [/snippet:memory]
}

// Keep examples referenced.
var (
	_ = exampleGenerate
	_ = exampleInMemory
)
