package wordlist

import (
	"errors"
	"os"
	"path/filepath"
	"testing"

	"github.com/samdwyer/hangman/internal/hangman"
)

func TestDefault(t *testing.T) {
	words, err := Default()
	if err != nil {
		t.Fatalf("Failed to load default words: %v", err)
	}
	if len(words) < 100 {
		t.Errorf("Expected at least 100 default words, got %d", len(words))
	}

	// Every embedded word must be a usable answer under the default rules.
	usable := hangman.Candidates(words, hangman.DefaultRules())
	if len(usable) != len(words) {
		t.Errorf("Expected all %d default words to be usable answers, got %d", len(words), len(usable))
	}
}

func TestFromFileLines(t *testing.T) {
	path := filepath.Join(t.TempDir(), "words.txt")
	content := "# fruit\nApple\n\n  grape  \napple\n"
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatal(err)
	}

	words, err := FromFile(path)
	if err != nil {
		t.Fatalf("FromFile() error = %v", err)
	}
	want := []string{"apple", "grape"}
	if len(words) != len(want) {
		t.Fatalf("FromFile() = %v, want %v", words, want)
	}
	for i := range want {
		if words[i] != want[i] {
			t.Errorf("FromFile()[%d] = %q, want %q", i, words[i], want[i])
		}
	}
}

func TestFromFileJSON(t *testing.T) {
	path := filepath.Join(t.TempDir(), "words.json")
	if err := os.WriteFile(path, []byte(`{"words": ["Melon", "lemon"]}`), 0o644); err != nil {
		t.Fatal(err)
	}

	words, err := FromFile(path)
	if err != nil {
		t.Fatalf("FromFile() error = %v", err)
	}
	if len(words) != 2 || words[0] != "melon" || words[1] != "lemon" {
		t.Errorf("FromFile() = %v, want [melon lemon]", words)
	}
}

func TestFromFileErrors(t *testing.T) {
	dir := t.TempDir()

	empty := filepath.Join(dir, "empty.txt")
	if err := os.WriteFile(empty, []byte("# nothing\n\n"), 0o644); err != nil {
		t.Fatal(err)
	}
	if _, err := FromFile(empty); !errors.Is(err, ErrNoWords) {
		t.Errorf("FromFile(empty) error = %v, want ErrNoWords", err)
	}

	broken := filepath.Join(dir, "broken.json")
	if err := os.WriteFile(broken, []byte(`{"words": [`), 0o644); err != nil {
		t.Fatal(err)
	}
	if _, err := FromFile(broken); err == nil {
		t.Error("FromFile(broken) error = nil, want parse error")
	}

	if _, err := FromFile(filepath.Join(dir, "missing.txt")); !errors.Is(err, os.ErrNotExist) {
		t.Errorf("FromFile(missing) error = %v, want os.ErrNotExist", err)
	}
}

func TestSource(t *testing.T) {
	words, err := Source("")
	if err != nil {
		t.Fatalf("Source(\"\") error = %v", err)
	}
	if len(words) == 0 {
		t.Error("Source(\"\") returned no words")
	}
}
