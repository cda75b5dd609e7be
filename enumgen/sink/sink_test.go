package sink

import (
	"context"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"strings"
	"sync"
	"testing"
	"time"
)

func TestValidatePath(t *testing.T) {
	tests := []struct {
		name    string
		path    string
		wantErr bool
		errMsg  string
	}{
		{name: "simple file", path: "enumrefl_gen.go"},
		{name: "nested path", path: "internal/color/enumrefl_gen.go"},
		{name: "dots inside a name", path: "a..b/x.go"},
		{name: "empty path", path: "", wantErr: true, errMsg: "empty"},
		{name: "absolute path", path: "/abs/x.go", wantErr: true, errMsg: "absolute paths not allowed"},
		{name: "windows drive", path: "C:/x.go", wantErr: true, errMsg: "absolute paths not allowed"},
		{name: "traversal inside", path: "foo/../bar.go", wantErr: true, errMsg: "path traversal not allowed"},
		{name: "traversal prefix", path: "../bar.go", wantErr: true, errMsg: "path traversal not allowed"},
		{name: "just dotdot", path: "..", wantErr: true, errMsg: "path traversal not allowed"},
		{name: "current dir prefix", path: "./x.go", wantErr: true, errMsg: "not clean"},
		{name: "double slash", path: "a//x.go", wantErr: true, errMsg: "not clean"},
		{name: "trailing slash", path: "a/", wantErr: true, errMsg: "not clean"},
		{name: "dot", path: ".", wantErr: true, errMsg: "names no file"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := ValidatePath(tt.path)
			if (err != nil) != tt.wantErr {
				t.Fatalf("ValidatePath(%q) error = %v, wantErr %v", tt.path, err, tt.wantErr)
			}
			if err != nil && !strings.Contains(err.Error(), tt.errMsg) {
				t.Errorf("ValidatePath(%q) error = %v, want error containing %q", tt.path, err, tt.errMsg)
			}
		})
	}
}

func TestMemorySink(t *testing.T) {
	ctx := context.Background()

	t.Run("write and read", func(t *testing.T) {
		s := NewMemorySink()
		if err := s.WriteFile(ctx, "a/x.go", []byte("package a")); err != nil {
			t.Fatalf("WriteFile() error = %v", err)
		}
		if got := string(s.Get("a/x.go")); got != "package a" {
			t.Errorf("Get() = %q", got)
		}
		got, err := s.ReadFile(ctx, "a/x.go")
		if err != nil || string(got) != "package a" {
			t.Errorf("ReadFile() = %q, %v", got, err)
		}
	})

	t.Run("missing file", func(t *testing.T) {
		s := NewMemorySink()
		if got := s.Get("nope.go"); got != nil {
			t.Errorf("Get() = %q, want nil", got)
		}
		_, err := s.ReadFile(ctx, "nope.go")
		if !errors.Is(err, fs.ErrNotExist) {
			t.Errorf("ReadFile() error = %v, want fs.ErrNotExist", err)
		}
	})

	t.Run("content is copied", func(t *testing.T) {
		s := NewMemorySink()
		content := []byte("original")
		if err := s.WriteFile(ctx, "x.go", content); err != nil {
			t.Fatal(err)
		}
		content[0] = 'X'
		got := s.Get("x.go")
		got[1] = 'Y'
		if string(s.Get("x.go")) != "original" {
			t.Errorf("stored content was modified: %q", s.Get("x.go"))
		}
	})

	t.Run("files and reset", func(t *testing.T) {
		s := NewMemorySink()
		for _, p := range []string{"a.go", "b/c.go"} {
			if err := s.WriteFile(ctx, p, []byte(p)); err != nil {
				t.Fatal(err)
			}
		}
		if files := s.Files(); len(files) != 2 || string(files["b/c.go"]) != "b/c.go" {
			t.Errorf("Files() = %v", files)
		}
		s.Reset()
		if files := s.Files(); len(files) != 0 {
			t.Errorf("Files() after Reset = %v", files)
		}
	})

	t.Run("invalid path", func(t *testing.T) {
		s := NewMemorySink()
		if err := s.WriteFile(ctx, "../x.go", nil); err == nil {
			t.Error("expected error for path traversal")
		}
	})

	t.Run("cancelled context", func(t *testing.T) {
		s := NewMemorySink()
		cctx, cancel := context.WithCancel(ctx)
		cancel()
		if err := s.WriteFile(cctx, "x.go", nil); !errors.Is(err, context.Canceled) {
			t.Errorf("WriteFile() error = %v, want context.Canceled", err)
		}
	})
}

func TestMemorySink_Concurrent(t *testing.T) {
	s := NewMemorySink()
	ctx := context.Background()

	var wg sync.WaitGroup
	for i := range 50 {
		wg.Add(1)
		go func() {
			defer wg.Done()
			path := fmt.Sprintf("f%d.go", i)
			if err := s.WriteFile(ctx, path, []byte(path)); err != nil {
				t.Errorf("WriteFile(%s) error = %v", path, err)
			}
			_ = s.Get(path)
		}()
	}
	wg.Wait()

	if n := len(s.Files()); n != 50 {
		t.Errorf("len(Files()) = %d, want 50", n)
	}
}

func TestFilesystemSink(t *testing.T) {
	ctx := context.Background()

	t.Run("creates directories", func(t *testing.T) {
		root := t.TempDir()
		s := NewFilesystemSink(root)
		if err := s.WriteFile(ctx, "a/b/x.go", []byte("package b\n")); err != nil {
			t.Fatalf("WriteFile() error = %v", err)
		}
		got, err := os.ReadFile(filepath.Join(root, "a", "b", "x.go"))
		if err != nil {
			t.Fatal(err)
		}
		if string(got) != "package b\n" {
			t.Errorf("content = %q", got)
		}
	})

	t.Run("mode", func(t *testing.T) {
		root := t.TempDir()
		s := &FilesystemSink{Root: root, Mode: 0600}
		if err := s.WriteFile(ctx, "x.go", []byte("x")); err != nil {
			t.Fatal(err)
		}
		info, err := os.Stat(filepath.Join(root, "x.go"))
		if err != nil {
			t.Fatal(err)
		}
		if info.Mode().Perm() != 0600 {
			t.Errorf("mode = %v, want 0600", info.Mode().Perm())
		}
	})

	t.Run("overwrites changed content", func(t *testing.T) {
		root := t.TempDir()
		s := NewFilesystemSink(root)
		for _, c := range []string{"one", "two"} {
			if err := s.WriteFile(ctx, "x.go", []byte(c)); err != nil {
				t.Fatal(err)
			}
		}
		got, _ := os.ReadFile(filepath.Join(root, "x.go"))
		if string(got) != "two" {
			t.Errorf("content = %q, want %q", got, "two")
		}
	})

	t.Run("unchanged content keeps mtime", func(t *testing.T) {
		root := t.TempDir()
		s := NewFilesystemSink(root)
		path := filepath.Join(root, "x.go")
		if err := s.WriteFile(ctx, "x.go", []byte("same")); err != nil {
			t.Fatal(err)
		}
		old := time.Now().Add(-time.Hour).Truncate(time.Second)
		if err := os.Chtimes(path, old, old); err != nil {
			t.Fatal(err)
		}
		if err := s.WriteFile(ctx, "x.go", []byte("same")); err != nil {
			t.Fatal(err)
		}
		info, err := os.Stat(path)
		if err != nil {
			t.Fatal(err)
		}
		if !info.ModTime().Equal(old) {
			t.Errorf("mtime = %v, want %v", info.ModTime(), old)
		}
	})

	t.Run("no temp files left", func(t *testing.T) {
		root := t.TempDir()
		s := NewFilesystemSink(root)
		if err := s.WriteFile(ctx, "x.go", []byte("x")); err != nil {
			t.Fatal(err)
		}
		matches, _ := filepath.Glob(filepath.Join(root, ".enumrefl-*.tmp"))
		if len(matches) != 0 {
			t.Errorf("temp files left behind: %v", matches)
		}
	})

	t.Run("read file", func(t *testing.T) {
		root := t.TempDir()
		s := NewFilesystemSink(root)
		if _, err := s.ReadFile(ctx, "x.go"); !errors.Is(err, fs.ErrNotExist) {
			t.Errorf("ReadFile() error = %v, want fs.ErrNotExist", err)
		}
		if err := s.WriteFile(ctx, "x.go", []byte("x")); err != nil {
			t.Fatal(err)
		}
		got, err := s.ReadFile(ctx, "x.go")
		if err != nil || string(got) != "x" {
			t.Errorf("ReadFile() = %q, %v", got, err)
		}
	})

	t.Run("cancelled context", func(t *testing.T) {
		s := NewFilesystemSink(t.TempDir())
		cctx, cancel := context.WithCancel(ctx)
		cancel()
		if err := s.WriteFile(cctx, "x.go", []byte("x")); !errors.Is(err, context.Canceled) {
			t.Errorf("WriteFile() error = %v, want context.Canceled", err)
		}
	})
}

func TestFilesystemSink_PathSecurity(t *testing.T) {
	ctx := context.Background()
	root := t.TempDir()
	s := NewFilesystemSink(filepath.Join(root, "out"))

	for _, p := range []string{"../escape.go", "/etc/x.go", "a/../../x.go"} {
		if err := s.WriteFile(ctx, p, []byte("x")); err == nil {
			t.Errorf("WriteFile(%q) succeeded, want error", p)
		}
	}
	if _, err := os.Stat(filepath.Join(root, "escape.go")); !os.IsNotExist(err) {
		t.Error("file written outside root")
	}
}

func TestFilesystemSink_Concurrent(t *testing.T) {
	root := t.TempDir()
	s := NewFilesystemSink(root)
	ctx := context.Background()

	var wg sync.WaitGroup
	for i := range 20 {
		wg.Add(1)
		go func() {
			defer wg.Done()
			path := fmt.Sprintf("pkg%d/enumrefl_gen.go", i%5)
			if err := s.WriteFile(ctx, path, []byte("package p\n")); err != nil {
				t.Errorf("WriteFile(%s) error = %v", path, err)
			}
		}()
	}
	wg.Wait()

	for i := range 5 {
		got, err := os.ReadFile(filepath.Join(root, fmt.Sprintf("pkg%d", i), "enumrefl_gen.go"))
		if err != nil || string(got) != "package p\n" {
			t.Errorf("pkg%d: %q, %v", i, got, err)
		}
	}
}
