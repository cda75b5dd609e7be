// Package enumgen generates Go source attaching reflection data to integer
// types marked with enumrefl directives.
//
// Example:
//
//	result, err := enumgen.New().
//	    WithConfig(cfg).
//	    WithLogger(logger).
//	    Generate(ctx, "./...")
package enumgen

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"log/slog"
	"path"
	"path/filepath"
	"slices"
	"strings"

	"golang.org/x/sync/errgroup"

	"github.com/broady/enumrefl/enumgen/golang"
	"github.com/broady/enumrefl/enumgen/ir"
	"github.com/broady/enumrefl/enumgen/sink"
	"github.com/broady/enumrefl/internal/directive"
)

// Generator provides a fluent API for code generation.
// Create with New() and configure with method chaining.
type Generator struct {
	cfg    Config
	logger *slog.Logger
	sink   sink.OutputSink
	dir    string
	check  bool
}

// New returns a Generator using DefaultConfig.
func New() *Generator {
	return &Generator{cfg: DefaultConfig()}
}

// WithConfig replaces the generation defaults.
func (g *Generator) WithConfig(cfg Config) *Generator {
	g.cfg = cfg
	return g
}

// WithLogger sets the logger. slog.Default() is used if unset.
func (g *Generator) WithLogger(logger *slog.Logger) *Generator {
	g.logger = logger
	return g
}

// WithSink sets where generated files go. Paths passed to the sink are
// relative to the working directory. A FilesystemSink rooted at the
// working directory is used if unset.
func (g *Generator) WithSink(s sink.OutputSink) *Generator {
	g.sink = s
	return g
}

// WithDir sets the working directory patterns are resolved in.
func (g *Generator) WithDir(dir string) *Generator {
	g.dir = dir
	return g
}

// WithCheck disables writing. Generate still builds and emits every file,
// and reports in Result.Stale the files whose content in the sink differs.
func (g *Generator) WithCheck(check bool) *Generator {
	g.check = check
	return g
}

// Result describes a generation run.
type Result struct {
	// Files are the emitted files, sorted by path.
	Files []FileResult

	// Warnings are non-fatal issues in declaration order per package.
	Warnings []ir.Warning

	// Stale lists the paths of files that are missing or out of date.
	// Only populated in check mode.
	Stale []string
}

// FileResult is one emitted file.
type FileResult struct {
	// Path is the sink path, relative to the working directory.
	Path string

	// Package is the import path of the package the file belongs to.
	Package string

	// Enums are the type names declared in the file.
	Enums []string

	// Content is the formatted Go source.
	Content []byte
}

type packageResult struct {
	files    []FileResult
	warnings []ir.Warning
	stale    []string
}

// Generate scans the packages matching patterns and emits one file per
// output name for each package that declares enums.
func (g *Generator) Generate(ctx context.Context, patterns ...string) (*Result, error) {
	if err := g.cfg.Validate(); err != nil {
		return nil, err
	}
	logger := g.logger
	if logger == nil {
		logger = slog.Default()
	}

	dir := g.dir
	if dir == "" {
		dir = "."
	}
	absDir, err := filepath.Abs(dir)
	if err != nil {
		return nil, fmt.Errorf("failed to resolve directory: %w", err)
	}
	out := g.sink
	if out == nil {
		out = sink.NewFilesystemSink(absDir)
	}

	pkgs, err := directive.Scan(ctx, absDir, patterns...)
	if err != nil {
		return nil, err
	}
	logger.DebugContext(ctx, "packages loaded", slog.Int("count", len(pkgs)))

	results := make([]packageResult, len(pkgs))
	eg, ctx := errgroup.WithContext(ctx)
	jobs := g.cfg.Jobs
	if jobs <= 0 {
		jobs = len(pkgs)
	}
	eg.SetLimit(max(1, min(jobs, len(pkgs))))
	for i, pkg := range pkgs {
		eg.Go(func() error {
			r, err := g.generatePackage(ctx, logger, out, absDir, pkg)
			if err != nil {
				return fmt.Errorf("package %s: %w", pkg.Path, err)
			}
			results[i] = r
			return nil
		})
	}
	if err := eg.Wait(); err != nil {
		return nil, err
	}

	result := &Result{}
	for _, r := range results {
		result.Files = append(result.Files, r.files...)
		result.Warnings = append(result.Warnings, r.warnings...)
		result.Stale = append(result.Stale, r.stale...)
	}
	slices.SortFunc(result.Files, func(a, b FileResult) int { return strings.Compare(a.Path, b.Path) })
	slices.Sort(result.Stale)
	return result, nil
}

func (g *Generator) generatePackage(ctx context.Context, logger *slog.Logger, out sink.OutputSink, root string, pkg *directive.Package) (packageResult, error) {
	var r packageResult
	if len(pkg.Enums) == 0 {
		logger.DebugContext(ctx, "no enums", slog.String("package", pkg.Path))
		return r, nil
	}

	rel, err := filepath.Rel(root, pkg.Dir)
	if err != nil {
		return r, fmt.Errorf("failed to resolve package directory: %w", err)
	}
	rel = filepath.ToSlash(rel)
	if rel == ".." || strings.HasPrefix(rel, "../") {
		return r, fmt.Errorf("directory %s is outside %s", pkg.Dir, root)
	}

	info := ir.PackageInfo{Path: pkg.Path, Name: pkg.Name, Dir: pkg.Dir}
	var files []*ir.File
	byName := make(map[string]*ir.File)
	for _, e := range pkg.Enums {
		desc, warnings, err := Build(e, g.cfg)
		if err != nil {
			return r, err
		}
		r.warnings = append(r.warnings, warnings...)
		for _, w := range warnings {
			logger.WarnContext(ctx, w.Message,
				slog.String("code", w.Code),
				slog.String("type", w.TypeName),
				slog.String("source", w.Source.String()),
			)
		}

		name := e.Options.Output
		if name == "" {
			name = g.cfg.Output
		}
		f, ok := byName[name]
		if !ok {
			f = &ir.File{Package: info, Name: name, Header: g.cfg.Header}
			byName[name] = f
			files = append(files, f)
		}
		f.Enums = append(f.Enums, desc)
	}
	if errs := ir.ValidatePackage(files); len(errs) > 0 {
		return r, errors.Join(errs...)
	}

	for _, f := range files {
		content, err := golang.Emit(f)
		if err != nil {
			return r, err
		}
		p := path.Join(rel, f.Name)
		fr := FileResult{Path: p, Package: pkg.Path, Content: content}
		for _, e := range f.Enums {
			fr.Enums = append(fr.Enums, e.Name)
		}
		r.files = append(r.files, fr)

		if g.check {
			if stale, err := isStale(ctx, out, p, content); err != nil {
				return r, err
			} else if stale {
				logger.InfoContext(ctx, "out of date", slog.String("file", p))
				r.stale = append(r.stale, p)
			}
			continue
		}
		if err := out.WriteFile(ctx, p, content); err != nil {
			return r, fmt.Errorf("failed to write %s: %w", p, err)
		}
		logger.InfoContext(ctx, "generated",
			slog.String("file", p),
			slog.Int("enums", len(f.Enums)),
		)
	}
	return r, nil
}

// isStale reports whether the sink holds different content at p.
// Sinks that cannot be read back treat every file as stale.
func isStale(ctx context.Context, out sink.OutputSink, p string, content []byte) (bool, error) {
	reader, ok := out.(sink.Reader)
	if !ok {
		return true, nil
	}
	existing, err := reader.ReadFile(ctx, p)
	if err != nil {
		if ctx.Err() != nil {
			return false, ctx.Err()
		}
		return true, nil
	}
	return !bytes.Equal(existing, content), nil
}
