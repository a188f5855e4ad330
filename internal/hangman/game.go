package hangman

import (
	"fmt"

	"github.com/samber/lo"
)

// Game is a single round: the answer, its hint, the ordered guess history
// and the cached count of incorrect guesses. It is not safe for concurrent use.
type Game struct {
	answer    string
	hint      *Hint
	guesses   []Guess
	incorrect int
	rules     Rules
}

// NewGame starts a round for answer, which must be lowercase letters.
func NewGame(answer string, rules Rules) (*Game, error) {
	if err := rules.Validate(); err != nil {
		return nil, err
	}
	if !isLetters(answer) {
		return nil, fmt.Errorf("answer %q must be lowercase letters", answer)
	}
	return &Game{
		answer:  answer,
		hint:    NewHint(len(answer)),
		guesses: []Guess{},
		rules:   rules,
	}, nil
}

// SubmitGuess validates input, records it and applies it to the hint or the
// fail counter. It reports whether the guess was correct. Rejected input
// returns ErrInvalidGuess and leaves the round untouched.
func (g *Game) SubmitGuess(input string) (bool, error) {
	if g.IsTerminal() {
		return false, ErrGameOver
	}

	letter, err := parseLetter(input)
	if err != nil {
		return false, err
	}
	if g.Guessed(letter) {
		return false, fmt.Errorf("%w: %q was already guessed", ErrInvalidGuess, string(letter))
	}

	guess := NewGuess(letter, g.answer)
	g.guesses = append(g.guesses, guess)
	if guess.Correct {
		g.hint.Reveal(guess.Letter, g.answer)
	} else {
		g.incorrect++
	}
	return guess.Correct, nil
}

// Guessed reports whether letter, ignoring case, was already submitted.
func (g *Game) Guessed(letter rune) bool {
	letter = toLower(letter)
	return lo.ContainsBy(g.guesses, func(prior Guess) bool {
		return prior.Letter == letter
	})
}

// IsTerminal reports whether the round is won or lost.
func (g *Game) IsTerminal() bool {
	return g.Outcome() != InProgress
}

// Outcome derives the round state. A full reveal wins even if the fail
// cap was also reached.
func (g *Game) Outcome() Outcome {
	switch {
	case g.hint.Joined() == g.answer:
		return Won
	case g.incorrect >= g.rules.MaxFails:
		return Lost
	default:
		return InProgress
	}
}

// Answer returns the secret word.
func (g *Game) Answer() string {
	return g.answer
}

// Hint returns the current masked view of the answer.
func (g *Game) Hint() *Hint {
	return &Hint{revealed: g.hint.Revealed()}
}

// Guesses returns a copy of the guess history in submission order.
func (g *Game) Guesses() []Guess {
	out := make([]Guess, len(g.guesses))
	copy(out, g.guesses)
	return out
}

// IncorrectGuessCount returns the number of guesses not in the answer.
func (g *Game) IncorrectGuessCount() int {
	return g.incorrect
}

// RemainingFails returns how many more incorrect guesses are allowed.
func (g *Game) RemainingFails() int {
	return max(g.rules.MaxFails-g.incorrect, 0)
}

// Rules returns the limits this round is played under.
func (g *Game) Rules() Rules {
	return g.rules
}

// parseLetter accepts exactly one ASCII letter and folds it to lower case.
func parseLetter(input string) (rune, error) {
	runes := []rune(input)
	if len(runes) != 1 {
		return 0, fmt.Errorf("%w: %q is not a single letter", ErrInvalidGuess, input)
	}
	r := toLower(runes[0])
	if r < 'a' || r > 'z' {
		return 0, fmt.Errorf("%w: %q is not a letter", ErrInvalidGuess, input)
	}
	return r, nil
}
