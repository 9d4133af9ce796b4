package workspace

import (
	stderrors "errors"
	"os"
	"path/filepath"
	"reflect"
	"testing"

	"github.com/genesis-engine/genesis-backend/core/errors"
)

func newTestWriter(t *testing.T, cfg WriterConfig) *Writer {
	t.Helper()
	if cfg.Root == "" {
		cfg.Root = t.TempDir()
	}
	w, err := NewWriter(cfg)
	if err != nil {
		t.Fatalf("NewWriter failed: %v", err)
	}
	return w
}

func TestNewWriterRequiresRoot(t *testing.T) {
	if _, err := NewWriter(WriterConfig{}); err == nil {
		t.Fatal("expected error for missing root")
	}
}

func TestNewWriterInvalidPattern(t *testing.T) {
	_, err := NewWriter(WriterConfig{
		Root:            t.TempDir(),
		IncludePatterns: []string{"[unclosed"},
	})
	if !stderrors.Is(err, ErrInvalidPattern) {
		t.Errorf("error = %v, want ErrInvalidPattern", err)
	}

	_, err = NewWriter(WriterConfig{
		Root:            t.TempDir(),
		ExcludePatterns: []string{"[unclosed"},
	})
	if !stderrors.Is(err, ErrInvalidPattern) {
		t.Errorf("error = %v, want ErrInvalidPattern", err)
	}
}

func TestWriteFiles(t *testing.T) {
	w := newTestWriter(t, WriterConfig{})

	result, err := w.Write(map[string]string{
		"app/main.py":      "print('hello')",
		"requirements.txt": "fastapi",
		".gitignore":       "__pycache__/",
	})
	if err != nil {
		t.Fatalf("Write failed: %v", err)
	}

	want := []string{".gitignore", "app/main.py", "requirements.txt"}
	if !reflect.DeepEqual(result.Written, want) {
		t.Errorf("written: got %v, want %v", result.Written, want)
	}
	if len(result.Skipped) != 0 {
		t.Errorf("skipped: got %v, want none", result.Skipped)
	}

	raw, err := os.ReadFile(filepath.Join(w.Root(), "app", "main.py"))
	if err != nil {
		t.Fatalf("ReadFile failed: %v", err)
	}
	if string(raw) != "print('hello')" {
		t.Errorf("content: got %q", raw)
	}
}

func TestWriteCreatesNestedDirs(t *testing.T) {
	w := newTestWriter(t, WriterConfig{})

	_, err := w.Write(map[string]string{
		".github/workflows/ci.yml": "name: CI",
	})
	if err != nil {
		t.Fatalf("Write failed: %v", err)
	}

	if _, err := os.Stat(filepath.Join(w.Root(), ".github", "workflows", "ci.yml")); err != nil {
		t.Errorf("nested file missing: %v", err)
	}
}

func TestWriteRefusesEscapingPaths(t *testing.T) {
	w := newTestWriter(t, WriterConfig{})

	for _, rel := range []string{"../evil.txt", "a/../../evil.txt", "/etc/passwd", ""} {
		_, err := w.Write(map[string]string{rel: "x"})
		if err == nil {
			t.Errorf("path %q: expected error", rel)
			continue
		}
		if !stderrors.Is(err, errors.ErrInvalidInput) {
			t.Errorf("path %q: error = %v, want ErrInvalidInput", rel, err)
		}
	}
}

func TestWriteExcludePatterns(t *testing.T) {
	w := newTestWriter(t, WriterConfig{
		ExcludePatterns: []string{"*.pyc", "tests/**"},
	})

	result, err := w.Write(map[string]string{
		"app/main.py":       "code",
		"app/cache.pyc":     "bytecode",
		"tests/test_api.py": "tests",
	})
	if err != nil {
		t.Fatalf("Write failed: %v", err)
	}

	if !reflect.DeepEqual(result.Written, []string{"app/main.py"}) {
		t.Errorf("written: got %v, want [app/main.py]", result.Written)
	}
	if !reflect.DeepEqual(result.Skipped, []string{"app/cache.pyc", "tests/test_api.py"}) {
		t.Errorf("skipped: got %v", result.Skipped)
	}

	if _, err := os.Stat(filepath.Join(w.Root(), "app", "cache.pyc")); !os.IsNotExist(err) {
		t.Error("excluded file should not exist on disk")
	}
}

func TestWriteIncludePatterns(t *testing.T) {
	w := newTestWriter(t, WriterConfig{
		IncludePatterns: []string{"**.py"},
	})

	result, err := w.Write(map[string]string{
		"app/main.py": "code",
		"Dockerfile":  "FROM python",
	})
	if err != nil {
		t.Fatalf("Write failed: %v", err)
	}

	if !reflect.DeepEqual(result.Written, []string{"app/main.py"}) {
		t.Errorf("written: got %v, want [app/main.py]", result.Written)
	}
	if !reflect.DeepEqual(result.Skipped, []string{"Dockerfile"}) {
		t.Errorf("skipped: got %v, want [Dockerfile]", result.Skipped)
	}
}

func TestWriteExcludeWinsOverInclude(t *testing.T) {
	w := newTestWriter(t, WriterConfig{
		IncludePatterns: []string{"**.py"},
		ExcludePatterns: []string{"app/secret.py"},
	})

	result, err := w.Write(map[string]string{
		"app/main.py":   "code",
		"app/secret.py": "secret",
	})
	if err != nil {
		t.Fatalf("Write failed: %v", err)
	}

	if !reflect.DeepEqual(result.Written, []string{"app/main.py"}) {
		t.Errorf("written: got %v, want [app/main.py]", result.Written)
	}
}

func TestInitGit(t *testing.T) {
	w := newTestWriter(t, WriterConfig{})

	if _, err := w.Write(map[string]string{"README.md": "# project"}); err != nil {
		t.Fatalf("Write failed: %v", err)
	}

	hash, err := w.InitGit()
	if err != nil {
		t.Fatalf("InitGit failed: %v", err)
	}
	if len(hash) != 40 {
		t.Errorf("commit hash: got %q, want 40 hex chars", hash)
	}

	if _, err := os.Stat(filepath.Join(w.Root(), ".git")); err != nil {
		t.Errorf(".git missing: %v", err)
	}
}

func TestInitGitReusesRepository(t *testing.T) {
	w := newTestWriter(t, WriterConfig{})

	if _, err := w.Write(map[string]string{"a.txt": "1"}); err != nil {
		t.Fatalf("Write failed: %v", err)
	}
	first, err := w.InitGit()
	if err != nil {
		t.Fatalf("InitGit failed: %v", err)
	}

	// A second call on the same root opens the existing repository and
	// commits the new content.
	if _, err := w.Write(map[string]string{"b.txt": "2"}); err != nil {
		t.Fatalf("Write failed: %v", err)
	}
	second, err := w.InitGit()
	if err != nil {
		t.Fatalf("second InitGit failed: %v", err)
	}
	if first == second {
		t.Error("expected a new commit hash after second InitGit")
	}
}
