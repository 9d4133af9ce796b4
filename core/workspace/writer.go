// Package workspace materializes generated file maps onto disk.
package workspace

import (
	stderrors "errors"
	"fmt"
	"log/slog"
	"os"
	"path"
	"path/filepath"
	"sort"
	"strings"

	"github.com/gobwas/glob"

	"github.com/genesis-engine/genesis-backend/core/errors"
)

// ErrInvalidPattern indicates a glob pattern could not be compiled.
var ErrInvalidPattern = stderrors.New("invalid glob pattern")

// WriterConfig configures a workspace writer.
type WriterConfig struct {
	// Root is the destination directory. Required; created if missing.
	Root string

	// IncludePatterns are glob patterns for files to write (e.g. ["**.py"]).
	// Empty means all files.
	IncludePatterns []string

	// ExcludePatterns are glob patterns for files to skip (e.g. ["**_test.py"]).
	ExcludePatterns []string

	Logger *slog.Logger
}

// WriteResult reports what a Write call did.
type WriteResult struct {
	Written []string
	Skipped []string
}

// Writer writes generated files under a root directory. File map keys
// are slash-separated paths relative to the root; anything that would
// land outside the root is refused.
type Writer struct {
	root     string
	includes []glob.Glob
	excludes []glob.Glob
	logger   *slog.Logger
}

func NewWriter(cfg WriterConfig) (*Writer, error) {
	if cfg.Root == "" {
		return nil, fmt.Errorf("workspace: root required")
	}

	root, err := filepath.Abs(cfg.Root)
	if err != nil {
		return nil, fmt.Errorf("workspace: resolve root: %w", err)
	}

	includes, err := compileGlobs(cfg.IncludePatterns)
	if err != nil {
		return nil, err
	}
	excludes, err := compileGlobs(cfg.ExcludePatterns)
	if err != nil {
		return nil, err
	}

	logger := cfg.Logger
	if logger == nil {
		logger = slog.Default()
	}

	return &Writer{
		root:     root,
		includes: includes,
		excludes: excludes,
		logger:   logger.With("component", "workspace"),
	}, nil
}

func compileGlobs(patterns []string) ([]glob.Glob, error) {
	matchers := make([]glob.Glob, 0, len(patterns))
	for _, pattern := range patterns {
		matcher, err := glob.Compile(pattern, '/')
		if err != nil {
			return nil, fmt.Errorf("%w: %q", ErrInvalidPattern, pattern)
		}
		matchers = append(matchers, matcher)
	}
	return matchers, nil
}

// Root returns the absolute destination directory.
func (w *Writer) Root() string {
	return w.root
}

// Write materializes the file map. Paths are written in sorted order so
// results are deterministic. Filtered-out paths are reported as skipped,
// escaping paths fail the whole write.
func (w *Writer) Write(files map[string]string) (*WriteResult, error) {
	paths := make([]string, 0, len(files))
	for p := range files {
		paths = append(paths, p)
	}
	sort.Strings(paths)

	result := &WriteResult{}

	for _, rel := range paths {
		target, err := w.resolve(rel)
		if err != nil {
			return nil, err
		}

		if !w.shouldWrite(rel) {
			result.Skipped = append(result.Skipped, rel)
			continue
		}

		if err := os.MkdirAll(filepath.Dir(target), 0755); err != nil {
			return nil, fmt.Errorf("workspace: create dir for %s: %w", rel, err)
		}
		if err := os.WriteFile(target, []byte(files[rel]), 0644); err != nil {
			return nil, fmt.Errorf("workspace: write %s: %w", rel, err)
		}

		result.Written = append(result.Written, rel)
	}

	w.logger.Info("workspace written",
		"root", w.root,
		"written", len(result.Written),
		"skipped", len(result.Skipped))

	return result, nil
}

// resolve maps a relative file-map path onto the root, refusing escapes.
func (w *Writer) resolve(rel string) (string, error) {
	cleaned := path.Clean(rel)
	if cleaned == "." || cleaned == "" {
		return "", fmt.Errorf("workspace: empty path: %w", errors.ErrInvalidInput)
	}
	if path.IsAbs(cleaned) || cleaned == ".." || strings.HasPrefix(cleaned, "../") {
		return "", fmt.Errorf("workspace: path %q escapes root: %w", rel, errors.ErrInvalidInput)
	}

	return filepath.Join(w.root, filepath.FromSlash(cleaned)), nil
}

// shouldWrite applies exclude-then-include filtering. A file matches a
// pattern by relative path or by base name.
func (w *Writer) shouldWrite(rel string) bool {
	name := path.Base(rel)

	for _, matcher := range w.excludes {
		if matcher.Match(rel) || matcher.Match(name) {
			return false
		}
	}

	if len(w.includes) == 0 {
		return true
	}
	for _, matcher := range w.includes {
		if matcher.Match(rel) || matcher.Match(name) {
			return true
		}
	}
	return false
}
