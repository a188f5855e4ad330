// Package save keeps saved rounds as JSON files in a directory.
package save

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"regexp"
	"sort"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/rs/zerolog/log"
)

const ext = ".json"

var (
	// ErrNotFound is returned when no save exists under the given name.
	ErrNotFound = errors.New("save not found")

	// ErrInvalidName is returned for names that could escape the save directory.
	ErrInvalidName = errors.New("invalid save name")

	validName = regexp.MustCompile(`^[A-Za-z0-9_-]{1,64}$`)
)

// Store reads and writes save files under a single directory.
type Store struct {
	dir string
}

// NewStore creates a store rooted at dir. The directory is created on first save.
func NewStore(dir string) *Store {
	return &Store{dir: dir}
}

// Dir returns the directory holding the saves.
func (s *Store) Dir() string {
	return s.dir
}

// NewName returns a fresh save identifier, e.g. "20261016-142501-1a2b3c4d".
func NewName() string {
	id := strings.ReplaceAll(uuid.NewString(), "-", "")
	return time.Now().Format("20060102-150405") + "-" + id[:8]
}

// Save writes data under name. The file is written to a temporary path and
// renamed into place so a failed write never leaves a truncated save.
func (s *Store) Save(name string, data []byte) error {
	path, err := s.path(name)
	if err != nil {
		return err
	}
	if err := os.MkdirAll(s.dir, 0o755); err != nil {
		return fmt.Errorf("create save directory %s: %w", s.dir, err)
	}

	tmp, err := os.CreateTemp(s.dir, "."+name+"-*.tmp")
	if err != nil {
		return fmt.Errorf("create temp save: %w", err)
	}
	defer os.Remove(tmp.Name())

	if _, err := tmp.Write(data); err != nil {
		tmp.Close()
		return fmt.Errorf("write save %s: %w", name, err)
	}
	if err := tmp.Close(); err != nil {
		return fmt.Errorf("close save %s: %w", name, err)
	}
	if err := os.Rename(tmp.Name(), path); err != nil {
		return fmt.Errorf("store save %s: %w", name, err)
	}

	log.Info().Str("save", name).Str("path", path).Msg("saved game")
	return nil
}

// Load returns the raw contents of the named save.
func (s *Store) Load(name string) ([]byte, error) {
	path, err := s.path(name)
	if err != nil {
		return nil, err
	}
	data, err := os.ReadFile(path)
	if errors.Is(err, fs.ErrNotExist) {
		return nil, fmt.Errorf("%w: %s", ErrNotFound, name)
	}
	if err != nil {
		return nil, fmt.Errorf("read save %s: %w", name, err)
	}
	return data, nil
}

// List returns the names of all saves, newest first. A missing directory
// means there are no saves yet.
func (s *Store) List() ([]string, error) {
	entries, err := os.ReadDir(s.dir)
	if errors.Is(err, fs.ErrNotExist) {
		return []string{}, nil
	}
	if err != nil {
		return nil, fmt.Errorf("read save directory %s: %w", s.dir, err)
	}

	type saved struct {
		name    string
		modTime time.Time
	}
	found := make([]saved, 0, len(entries))
	for _, entry := range entries {
		name, ok := strings.CutSuffix(entry.Name(), ext)
		if entry.IsDir() || !ok || !validName.MatchString(name) {
			continue
		}
		info, err := entry.Info()
		if err != nil {
			log.Warn().Err(err).Str("file", entry.Name()).Msg("skipping unreadable save")
			continue
		}
		found = append(found, saved{name: name, modTime: info.ModTime()})
	}

	sort.Slice(found, func(i, j int) bool {
		if found[i].modTime.Equal(found[j].modTime) {
			return found[i].name > found[j].name
		}
		return found[i].modTime.After(found[j].modTime)
	})

	names := make([]string, len(found))
	for i, f := range found {
		names[i] = f.name
	}
	return names, nil
}

// Delete removes the named save.
func (s *Store) Delete(name string) error {
	path, err := s.path(name)
	if err != nil {
		return err
	}
	if err := os.Remove(path); err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return fmt.Errorf("%w: %s", ErrNotFound, name)
		}
		return fmt.Errorf("delete save %s: %w", name, err)
	}
	return nil
}

func (s *Store) path(name string) (string, error) {
	if !validName.MatchString(name) {
		return "", fmt.Errorf("%w: %q", ErrInvalidName, name)
	}
	return filepath.Join(s.dir, name+ext), nil
}
