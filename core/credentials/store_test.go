package credentials

import (
	"bytes"
	stderrors "errors"
	"os"
	"path/filepath"
	"reflect"
	"testing"

	"github.com/genesis-engine/genesis-backend/core/errors"
)

func TestStoreSetAndGet(t *testing.T) {
	store, err := NewStore(t.TempDir())
	if err != nil {
		t.Fatalf("NewStore failed: %v", err)
	}

	if err := store.Set(DefaultProfile, "claude", "sk-test-123"); err != nil {
		t.Fatalf("Set failed: %v", err)
	}

	secret, err := store.Get(DefaultProfile, "claude")
	if err != nil {
		t.Fatalf("Get failed: %v", err)
	}
	if secret != "sk-test-123" {
		t.Errorf("secret: got %s, want sk-test-123", secret)
	}
}

func TestStoreGetMissing(t *testing.T) {
	store, err := NewStore(t.TempDir())
	if err != nil {
		t.Fatalf("NewStore failed: %v", err)
	}

	_, err = store.Get(DefaultProfile, "claude")
	if err == nil {
		t.Fatal("expected error for missing credential")
	}
	if !stderrors.Is(err, errors.ErrNotFound) {
		t.Errorf("error = %v, want ErrNotFound", err)
	}
}

func TestStoreDelete(t *testing.T) {
	store, err := NewStore(t.TempDir())
	if err != nil {
		t.Fatalf("NewStore failed: %v", err)
	}

	if err := store.Set(DefaultProfile, "openai", "sk-abc"); err != nil {
		t.Fatalf("Set failed: %v", err)
	}
	if err := store.Delete(DefaultProfile, "openai"); err != nil {
		t.Fatalf("Delete failed: %v", err)
	}
	if _, err := store.Get(DefaultProfile, "openai"); err == nil {
		t.Error("expected error after delete")
	}

	// Deleting an absent entry is fine.
	if err := store.Delete(DefaultProfile, "openai"); err != nil {
		t.Errorf("Delete of absent entry failed: %v", err)
	}
}

func TestStoreListKeys(t *testing.T) {
	store, err := NewStore(t.TempDir())
	if err != nil {
		t.Fatalf("NewStore failed: %v", err)
	}

	store.Set(DefaultProfile, "openai", "1")
	store.Set(DefaultProfile, "claude", "2")
	store.Set("work", "gemini", "3")

	keys, err := store.ListKeys(DefaultProfile)
	if err != nil {
		t.Fatalf("ListKeys failed: %v", err)
	}
	if !reflect.DeepEqual(keys, []string{"claude", "openai"}) {
		t.Errorf("keys: got %v, want [claude openai]", keys)
	}

	keys, err = store.ListKeys("empty-profile")
	if err != nil {
		t.Fatalf("ListKeys failed: %v", err)
	}
	if len(keys) != 0 {
		t.Errorf("empty profile should have no keys, got %v", keys)
	}
}

func TestStoreProfileIsolation(t *testing.T) {
	store, err := NewStore(t.TempDir())
	if err != nil {
		t.Fatalf("NewStore failed: %v", err)
	}

	store.Set("personal", "claude", "personal-key")
	store.Set("work", "claude", "work-key")

	got, err := store.Get("work", "claude")
	if err != nil {
		t.Fatalf("Get failed: %v", err)
	}
	if got != "work-key" {
		t.Errorf("secret: got %s, want work-key", got)
	}
}

func TestStoreSurvivesReopen(t *testing.T) {
	dir := t.TempDir()

	store1, err := NewStore(dir)
	if err != nil {
		t.Fatalf("NewStore failed: %v", err)
	}
	if err := store1.Set(DefaultProfile, "deepseek", "persisted"); err != nil {
		t.Fatalf("Set failed: %v", err)
	}

	// A second store in the same dir reuses the persisted salt and can
	// decrypt the file.
	store2, err := NewStore(dir)
	if err != nil {
		t.Fatalf("NewStore failed: %v", err)
	}
	secret, err := store2.Get(DefaultProfile, "deepseek")
	if err != nil {
		t.Fatalf("Get failed: %v", err)
	}
	if secret != "persisted" {
		t.Errorf("secret: got %s, want persisted", secret)
	}
}

func TestStoreFilePermissions(t *testing.T) {
	dir := t.TempDir()

	store, err := NewStore(dir)
	if err != nil {
		t.Fatalf("NewStore failed: %v", err)
	}
	if err := store.Set(DefaultProfile, "claude", "x"); err != nil {
		t.Fatalf("Set failed: %v", err)
	}

	for _, name := range []string{"credentials.enc", ".salt"} {
		info, err := os.Stat(filepath.Join(dir, name))
		if err != nil {
			t.Fatalf("Stat %s failed: %v", name, err)
		}
		if perm := info.Mode().Perm(); perm != 0600 {
			t.Errorf("%s permissions: got %o, want 0600", name, perm)
		}
	}
}

func TestStoreFileIsEncrypted(t *testing.T) {
	dir := t.TempDir()

	store, err := NewStore(dir)
	if err != nil {
		t.Fatalf("NewStore failed: %v", err)
	}
	if err := store.Set(DefaultProfile, "claude", "super-secret-value"); err != nil {
		t.Fatalf("Set failed: %v", err)
	}

	raw, err := os.ReadFile(filepath.Join(dir, "credentials.enc"))
	if err != nil {
		t.Fatalf("ReadFile failed: %v", err)
	}
	if bytes.Contains(raw, []byte("super-secret-value")) {
		t.Error("secret should not appear in plaintext on disk")
	}
}

func TestStoreCorruptFile(t *testing.T) {
	dir := t.TempDir()

	store, err := NewStore(dir)
	if err != nil {
		t.Fatalf("NewStore failed: %v", err)
	}

	path := filepath.Join(dir, "credentials.enc")
	if err := os.WriteFile(path, []byte("not ciphertext"), 0600); err != nil {
		t.Fatalf("WriteFile failed: %v", err)
	}

	if _, err := store.Get(DefaultProfile, "claude"); err == nil {
		t.Error("expected error reading corrupt store")
	}
}

func TestResolveSecretEnvFallback(t *testing.T) {
	store, err := NewStore(t.TempDir())
	if err != nil {
		t.Fatalf("NewStore failed: %v", err)
	}

	t.Setenv("CLAUDE_API_KEY", "env-key")

	secret, err := store.ResolveSecret(DefaultProfile, "claude")
	if err != nil {
		t.Fatalf("ResolveSecret failed: %v", err)
	}
	if secret != "env-key" {
		t.Errorf("secret: got %s, want env-key", secret)
	}
}

func TestResolveSecretPrefersStore(t *testing.T) {
	store, err := NewStore(t.TempDir())
	if err != nil {
		t.Fatalf("NewStore failed: %v", err)
	}

	t.Setenv("CLAUDE_API_KEY", "env-key")
	store.Set(DefaultProfile, "claude", "stored-key")

	secret, err := store.ResolveSecret(DefaultProfile, "claude")
	if err != nil {
		t.Fatalf("ResolveSecret failed: %v", err)
	}
	if secret != "stored-key" {
		t.Errorf("secret: got %s, want stored-key", secret)
	}
}

func TestResolveSecretMissing(t *testing.T) {
	store, err := NewStore(t.TempDir())
	if err != nil {
		t.Fatalf("NewStore failed: %v", err)
	}

	t.Setenv("GEMINI_API_KEY", "")

	_, err = store.ResolveSecret(DefaultProfile, "gemini")
	if !stderrors.Is(err, errors.ErrNotFound) {
		t.Errorf("error = %v, want ErrNotFound", err)
	}
}

func TestEnvKeyName(t *testing.T) {
	if got := EnvKeyName("claude"); got != "CLAUDE_API_KEY" {
		t.Errorf("EnvKeyName: got %s, want CLAUDE_API_KEY", got)
	}
	if got := EnvKeyName("deepseek"); got != "DEEPSEEK_API_KEY" {
		t.Errorf("EnvKeyName: got %s, want DEEPSEEK_API_KEY", got)
	}
}
