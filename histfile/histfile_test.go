package histfile

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/dshills/tuikit/readline/history"
)

func TestSaveLoadRoundTrip(t *testing.T) {
	path := filepath.Join(t.TempDir(), "history")

	src := history.NewStore(0)
	src.Append("foo")
	src.Append("bar")
	if err := Save(src, path); err != nil {
		t.Fatalf("Save: %v", err)
	}

	dst := history.NewStore(0)
	if err := Load(dst, path); err != nil {
		t.Fatalf("Load: %v", err)
	}
	got := dst.Entries()
	if len(got) != 2 || got[0] != "foo" || got[1] != "bar" {
		t.Errorf("entries = %v, want [foo bar]", got)
	}
}

func TestSaveLeavesNoTempFiles(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "history")

	store := history.NewStore(0)
	store.Append("x")
	if err := Save(store, path); err != nil {
		t.Fatal(err)
	}

	entries, err := os.ReadDir(dir)
	if err != nil {
		t.Fatal(err)
	}
	if len(entries) != 1 || entries[0].Name() != "history" {
		names := make([]string, len(entries))
		for i, e := range entries {
			names[i] = e.Name()
		}
		t.Errorf("directory contents = %v, want only the history file", names)
	}
}

func TestLoadMissingFileIsNoOp(t *testing.T) {
	store := history.NewStore(0)
	store.Append("keep")
	if err := Load(store, filepath.Join(t.TempDir(), "absent")); err != nil {
		t.Fatalf("Load missing: %v", err)
	}
	if got := store.Entries(); len(got) != 1 || got[0] != "keep" {
		t.Errorf("store after missing load = %v, want [keep]", got)
	}
}

func TestLoadMalformedKeepsStore(t *testing.T) {
	path := filepath.Join(t.TempDir(), "history")
	if err := os.WriteFile(path, []byte("not a history buffer"), 0o600); err != nil {
		t.Fatal(err)
	}

	store := history.NewStore(0)
	store.Append("keep")
	if err := Load(store, path); err == nil {
		t.Fatal("malformed file should fail")
	}
	if got := store.Entries(); len(got) != 1 || got[0] != "keep" {
		t.Errorf("store after failed load = %v, want [keep]", got)
	}
}

func TestWatcherSignalsRewrite(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "history")

	store := history.NewStore(0)
	store.Append("one")
	if err := Save(store, path); err != nil {
		t.Fatal(err)
	}

	w, err := Watch(path, nil)
	if err != nil {
		t.Fatalf("Watch: %v", err)
	}
	defer w.Close()

	store.Append("two")
	if err := Save(store, path); err != nil {
		t.Fatal(err)
	}

	select {
	case <-w.Changes():
	case <-time.After(5 * time.Second):
		t.Fatal("no change notification within timeout")
	}
}
