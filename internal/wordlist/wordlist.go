package wordlist

import (
	"bufio"
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/rs/zerolog/log"
	"github.com/samber/lo"
)

// DefaultFile is the embedded list used when no file is configured.
const DefaultFile = "words.json"

// ErrNoWords is returned when a source yields no words at all.
var ErrNoWords = errors.New("word list is empty")

// File represents the structure of a JSON word list.
type File struct {
	Words []string `json:"words"`
}

// Default returns the embedded word list.
func Default() ([]string, error) {
	file, err := Load[File](DefaultFile)
	if err != nil {
		return nil, err
	}
	return nonEmpty(normalize(file.Words), DefaultFile)
}

// FromFile reads a word list from disk. Files ending in .json use the
// {"words": [...]} layout; anything else holds one word per line, with
// blank lines and lines starting with # ignored.
func FromFile(path string) ([]string, error) {
	content, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read word list %s: %w", path, err)
	}

	var words []string
	if strings.EqualFold(filepath.Ext(path), ".json") {
		var file File
		if err := json.Unmarshal(content, &file); err != nil {
			return nil, fmt.Errorf("failed to parse JSON from %s: %w", path, err)
		}
		words = file.Words
	} else {
		sc := bufio.NewScanner(bytes.NewReader(content))
		for sc.Scan() {
			line := strings.TrimSpace(sc.Text())
			if line == "" || strings.HasPrefix(line, "#") {
				continue
			}
			words = append(words, line)
		}
		if err := sc.Err(); err != nil {
			return nil, fmt.Errorf("scan word list %s: %w", path, err)
		}
	}

	return nonEmpty(normalize(words), path)
}

// Source returns the words from path, or the embedded list when path is empty.
func Source(path string) ([]string, error) {
	if path == "" {
		return Default()
	}
	words, err := FromFile(path)
	if err != nil {
		return nil, err
	}
	log.Info().Str("path", path).Int("words", len(words)).Msg("loaded word list")
	return words, nil
}

// normalize lowercases, trims and de-duplicates words, keeping first-seen order.
func normalize(words []string) []string {
	cleaned := lo.FilterMap(words, func(w string, _ int) (string, bool) {
		w = strings.ToLower(strings.TrimSpace(w))
		return w, w != ""
	})
	return lo.Uniq(cleaned)
}

func nonEmpty(words []string, origin string) ([]string, error) {
	if len(words) == 0 {
		return nil, fmt.Errorf("%s: %w", origin, ErrNoWords)
	}
	return words, nil
}
