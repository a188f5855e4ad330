// Package hangman implements the word-guessing core: answer selection,
// the masked hint, guess classification and the win/loss state machine.
package hangman

import "fmt"

const (
	// DefaultMaxFails is the number of incorrect guesses that loses a round.
	DefaultMaxFails = 10
	// DefaultMinWordSize is the shortest answer that may be chosen.
	DefaultMinWordSize = 5
	// DefaultMaxWordSize is the longest answer that may be chosen.
	DefaultMaxWordSize = 12
)

// Rules holds the tunable limits of a round.
type Rules struct {
	MaxFails    int // Incorrect guesses allowed before the round is lost
	MinWordSize int // Inclusive lower bound on answer length
	MaxWordSize int // Inclusive upper bound on answer length
}

// DefaultRules returns the classic limits: 10 fails, words of 5 to 12 letters.
func DefaultRules() Rules {
	return Rules{
		MaxFails:    DefaultMaxFails,
		MinWordSize: DefaultMinWordSize,
		MaxWordSize: DefaultMaxWordSize,
	}
}

// Validate reports whether the rules describe a playable round.
func (r Rules) Validate() error {
	if r.MaxFails < 1 {
		return fmt.Errorf("max fails must be positive, got %d", r.MaxFails)
	}
	if r.MinWordSize < 1 {
		return fmt.Errorf("min word size must be positive, got %d", r.MinWordSize)
	}
	if r.MaxWordSize < r.MinWordSize {
		return fmt.Errorf("max word size %d is below min word size %d", r.MaxWordSize, r.MinWordSize)
	}
	return nil
}

// fits reports whether a word length lies within the inclusive bounds.
func (r Rules) fits(n int) bool {
	return n >= r.MinWordSize && n <= r.MaxWordSize
}
