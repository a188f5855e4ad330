package hangman

import (
	"math/rand"
	"strings"

	"github.com/samber/lo"
)

// Candidates normalizes a raw word list and keeps the words that can serve
// as answers under the given rules.
func Candidates(words []string, rules Rules) []string {
	return lo.FilterMap(words, func(w string, _ int) (string, bool) {
		w = strings.ToLower(strings.TrimSpace(w))
		return w, rules.fits(len(w)) && isLetters(w)
	})
}

// SelectAnswer draws a random answer from words. Candidates are filtered
// first so a list with no usable word fails instead of looping forever.
func SelectAnswer(words []string, rules Rules, rng *rand.Rand) (string, error) {
	pool := Candidates(words, rules)
	if len(pool) == 0 {
		return "", ErrEmptyWordList
	}
	return pool[rng.Intn(len(pool))], nil
}

// isLetters reports whether s is non-empty and made only of lowercase a-z.
func isLetters(s string) bool {
	if s == "" {
		return false
	}
	for _, r := range s {
		if r < 'a' || r > 'z' {
			return false
		}
	}
	return true
}
