package hangman

import "strings"

// Guess is one submitted letter and whether the answer contains it.
// It is classified once at construction and never changes.
type Guess struct {
	Letter  rune
	Correct bool
}

// NewGuess classifies letter against answer, ignoring case.
func NewGuess(letter rune, answer string) Guess {
	letter = toLower(letter)
	return Guess{
		Letter:  letter,
		Correct: strings.ContainsRune(strings.ToLower(answer), letter),
	}
}
