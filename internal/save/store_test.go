package save

import (
	"errors"
	"os"
	"path/filepath"
	"regexp"
	"testing"
	"time"
)

func TestSaveLoadRoundTrip(t *testing.T) {
	store := NewStore(filepath.Join(t.TempDir(), "saves"))
	data := []byte(`{"answer":"grape"}`)

	if err := store.Save("round-1", data); err != nil {
		t.Fatalf("Save() error = %v", err)
	}
	got, err := store.Load("round-1")
	if err != nil {
		t.Fatalf("Load() error = %v", err)
	}
	if string(got) != string(data) {
		t.Errorf("Load() = %q, want %q", got, data)
	}

	// Overwrite keeps a single file.
	if err := store.Save("round-1", []byte("{}")); err != nil {
		t.Fatalf("Save() overwrite error = %v", err)
	}
	names, _ := store.List()
	if len(names) != 1 {
		t.Errorf("List() = %v, want one save", names)
	}
}

func TestLoadMissing(t *testing.T) {
	store := NewStore(t.TempDir())
	if _, err := store.Load("nope"); !errors.Is(err, ErrNotFound) {
		t.Errorf("Load() error = %v, want ErrNotFound", err)
	}
	if err := store.Delete("nope"); !errors.Is(err, ErrNotFound) {
		t.Errorf("Delete() error = %v, want ErrNotFound", err)
	}
}

func TestInvalidNames(t *testing.T) {
	store := NewStore(t.TempDir())
	for _, name := range []string{"", "../escape", "a/b", "has space", "dot.json"} {
		if err := store.Save(name, []byte("{}")); !errors.Is(err, ErrInvalidName) {
			t.Errorf("Save(%q) error = %v, want ErrInvalidName", name, err)
		}
		if _, err := store.Load(name); !errors.Is(err, ErrInvalidName) {
			t.Errorf("Load(%q) error = %v, want ErrInvalidName", name, err)
		}
	}
}

func TestListNewestFirst(t *testing.T) {
	dir := t.TempDir()
	store := NewStore(dir)

	for _, name := range []string{"old", "mid", "new"} {
		if err := store.Save(name, []byte("{}")); err != nil {
			t.Fatal(err)
		}
	}
	base := time.Now()
	for i, name := range []string{"old", "mid", "new"} {
		ts := base.Add(time.Duration(i) * time.Minute)
		if err := os.Chtimes(filepath.Join(dir, name+".json"), ts, ts); err != nil {
			t.Fatal(err)
		}
	}
	// Files that are not saves are ignored.
	os.WriteFile(filepath.Join(dir, "notes.txt"), []byte("x"), 0o644)
	os.Mkdir(filepath.Join(dir, "sub.json"), 0o755)

	names, err := store.List()
	if err != nil {
		t.Fatalf("List() error = %v", err)
	}
	want := []string{"new", "mid", "old"}
	if len(names) != len(want) {
		t.Fatalf("List() = %v, want %v", names, want)
	}
	for i := range want {
		if names[i] != want[i] {
			t.Errorf("List()[%d] = %q, want %q", i, names[i], want[i])
		}
	}
}

func TestListMissingDir(t *testing.T) {
	store := NewStore(filepath.Join(t.TempDir(), "never-created"))
	names, err := store.List()
	if err != nil {
		t.Fatalf("List() error = %v", err)
	}
	if len(names) != 0 {
		t.Errorf("List() = %v, want empty", names)
	}
}

func TestSaveFailureSurfacesError(t *testing.T) {
	dir := t.TempDir()
	blocker := filepath.Join(dir, "file")
	if err := os.WriteFile(blocker, []byte("x"), 0o644); err != nil {
		t.Fatal(err)
	}
	// The save directory path is occupied by a regular file.
	store := NewStore(blocker)
	if err := store.Save("round", []byte("{}")); err == nil {
		t.Error("Save() error = nil, want error")
	}
}

func TestDelete(t *testing.T) {
	store := NewStore(t.TempDir())
	store.Save("gone", []byte("{}"))
	if err := store.Delete("gone"); err != nil {
		t.Fatalf("Delete() error = %v", err)
	}
	if _, err := store.Load("gone"); !errors.Is(err, ErrNotFound) {
		t.Errorf("Load() after Delete() error = %v, want ErrNotFound", err)
	}
}

func TestNewName(t *testing.T) {
	pattern := regexp.MustCompile(`^\d{8}-\d{6}-[0-9a-f]{8}$`)
	a, b := NewName(), NewName()
	if !pattern.MatchString(a) {
		t.Errorf("NewName() = %q, does not match %s", a, pattern)
	}
	if a == b {
		t.Errorf("NewName() returned %q twice", a)
	}
	if !validName.MatchString(a) {
		t.Errorf("NewName() = %q is not a valid save name", a)
	}
}
