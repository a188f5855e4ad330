package hangman

import "errors"

var (
	// ErrInvalidGuess is returned for input that is not a single letter or
	// repeats an earlier guess. The round is left unchanged.
	ErrInvalidGuess = errors.New("invalid guess")

	// ErrGameOver is returned when a guess is submitted to a finished round.
	ErrGameOver = errors.New("game is over")

	// ErrEmptyWordList is returned when no candidate satisfies the length bounds.
	ErrEmptyWordList = errors.New("no word in the list satisfies the length bounds")

	// ErrMalformedSave is returned when a saved round fails validation.
	ErrMalformedSave = errors.New("malformed save")
)
