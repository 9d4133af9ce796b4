package history

import (
	stderrors "errors"
	"path/filepath"
	"testing"
	"time"

	"github.com/genesis-engine/genesis-backend/core/errors"
)

func newTestStore(t *testing.T) *Store {
	t.Helper()
	store, err := NewStore(Config{
		DBPath: filepath.Join(t.TempDir(), "runs.db"),
	})
	if err != nil {
		t.Fatalf("NewStore failed: %v", err)
	}
	t.Cleanup(func() { store.Close() })
	return store
}

func sampleRun(id string, started time.Time) *Run {
	return &Run{
		ID:         id,
		Project:    "test-api",
		Framework:  "fastapi",
		OutputPath: "/tmp/test-api",
		FileCount:  12,
		Success:    true,
		StartedAt:  started,
		FinishedAt: started.Add(40 * time.Second),
	}
}

func TestStoreRequiresDBPath(t *testing.T) {
	if _, err := NewStore(Config{}); err == nil {
		t.Error("expected error for empty db path")
	}
}

func TestRecordAndGet(t *testing.T) {
	store := newTestStore(t)

	started := time.Now().UTC().Truncate(time.Second)
	run := sampleRun("run-1", started)
	if err := store.Record(run); err != nil {
		t.Fatalf("Record failed: %v", err)
	}

	got, err := store.Get("run-1")
	if err != nil {
		t.Fatalf("Get failed: %v", err)
	}
	if got.Project != "test-api" || got.Framework != "fastapi" {
		t.Errorf("unexpected run: %+v", got)
	}
	if got.FileCount != 12 {
		t.Errorf("FileCount: got %d, want 12", got.FileCount)
	}
	if !got.Success {
		t.Error("Success should be true")
	}
	if !got.StartedAt.Equal(started) {
		t.Errorf("StartedAt: got %v, want %v", got.StartedAt, started)
	}
	if got.Duration() != 40*time.Second {
		t.Errorf("Duration: got %v, want 40s", got.Duration())
	}
}

func TestRecordAssignsID(t *testing.T) {
	store := newTestStore(t)

	run := sampleRun("", time.Now().UTC())
	if err := store.Record(run); err != nil {
		t.Fatalf("Record failed: %v", err)
	}
	if run.ID == "" {
		t.Error("expected ID to be assigned")
	}
}

func TestGetMissing(t *testing.T) {
	store := newTestStore(t)

	_, err := store.Get("nope")
	if !stderrors.Is(err, errors.ErrNotFound) {
		t.Errorf("error = %v, want ErrNotFound", err)
	}
}

func TestGetFromColdStorage(t *testing.T) {
	dbPath := filepath.Join(t.TempDir(), "runs.db")

	store1, err := NewStore(Config{DBPath: dbPath})
	if err != nil {
		t.Fatalf("NewStore failed: %v", err)
	}
	run := sampleRun("cold-1", time.Now().UTC().Truncate(time.Second))
	run.Success = false
	run.Error = "provider unavailable"
	if err := store1.Record(run); err != nil {
		t.Fatalf("Record failed: %v", err)
	}
	store1.Close()

	// A fresh store has an empty recent cache, so this exercises the
	// sqlite path.
	store2, err := NewStore(Config{DBPath: dbPath})
	if err != nil {
		t.Fatalf("NewStore failed: %v", err)
	}
	defer store2.Close()

	got, err := store2.Get("cold-1")
	if err != nil {
		t.Fatalf("Get failed: %v", err)
	}
	if got.Success {
		t.Error("Success should be false")
	}
	if got.Error != "provider unavailable" {
		t.Errorf("Error: got %q", got.Error)
	}
}

func TestGetReturnsCopy(t *testing.T) {
	store := newTestStore(t)

	if err := store.Record(sampleRun("copy-1", time.Now().UTC())); err != nil {
		t.Fatalf("Record failed: %v", err)
	}

	first, err := store.Get("copy-1")
	if err != nil {
		t.Fatalf("Get failed: %v", err)
	}
	first.Project = "mutated"

	second, err := store.Get("copy-1")
	if err != nil {
		t.Fatalf("Get failed: %v", err)
	}
	if second.Project != "test-api" {
		t.Errorf("Project: got %s, want test-api", second.Project)
	}
}

func TestListNewestFirst(t *testing.T) {
	store := newTestStore(t)

	base := time.Now().UTC().Truncate(time.Second)
	for i, id := range []string{"a", "b", "c"} {
		run := sampleRun(id, base.Add(time.Duration(i)*time.Minute))
		if err := store.Record(run); err != nil {
			t.Fatalf("Record failed: %v", err)
		}
	}

	runs, err := store.List(2)
	if err != nil {
		t.Fatalf("List failed: %v", err)
	}
	if len(runs) != 2 {
		t.Fatalf("expected 2 runs, got %d", len(runs))
	}
	if runs[0].ID != "c" || runs[1].ID != "b" {
		t.Errorf("order: got [%s %s], want [c b]", runs[0].ID, runs[1].ID)
	}
}

func TestListDefaultLimit(t *testing.T) {
	store := newTestStore(t)

	if err := store.Record(sampleRun("only", time.Now().UTC())); err != nil {
		t.Fatalf("Record failed: %v", err)
	}

	runs, err := store.List(0)
	if err != nil {
		t.Fatalf("List failed: %v", err)
	}
	if len(runs) != 1 {
		t.Errorf("expected 1 run, got %d", len(runs))
	}
}

func TestListByProject(t *testing.T) {
	store := newTestStore(t)

	base := time.Now().UTC().Truncate(time.Second)

	blog := sampleRun("blog-1", base)
	blog.Project = "blog-api"
	store.Record(blog)

	shop := sampleRun("shop-1", base.Add(time.Minute))
	shop.Project = "shop-api"
	store.Record(shop)

	runs, err := store.ListByProject("blog-api", 10)
	if err != nil {
		t.Fatalf("ListByProject failed: %v", err)
	}
	if len(runs) != 1 || runs[0].ID != "blog-1" {
		t.Errorf("unexpected runs: %+v", runs)
	}
}

func TestRecordOverwrite(t *testing.T) {
	store := newTestStore(t)

	run := sampleRun("ow-1", time.Now().UTC())
	store.Record(run)

	run.FileCount = 99
	if err := store.Record(run); err != nil {
		t.Fatalf("Record failed: %v", err)
	}

	got, err := store.Get("ow-1")
	if err != nil {
		t.Fatalf("Get failed: %v", err)
	}
	if got.FileCount != 99 {
		t.Errorf("FileCount: got %d, want 99", got.FileCount)
	}
}
