package hangman

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
	"io"

	"github.com/samber/lo"
)

// Snapshot is the persisted form of a Game. These four fields are the only
// ones trusted when a save is read back.
type Snapshot struct {
	Answer              string          `json:"answer"`
	Hint                []string        `json:"hint"`
	Guesses             []GuessSnapshot `json:"guesses"`
	IncorrectGuessCount int             `json:"incorrect_guess_count"`
}

// GuessSnapshot is the persisted form of a Guess.
type GuessSnapshot struct {
	Letter  string `json:"letter"`
	Correct bool   `json:"correct"`
}

// rawSnapshot uses pointers so missing fields can be told apart from zero values.
type rawSnapshot struct {
	Answer              *string          `json:"answer"`
	Hint                *[]string        `json:"hint"`
	Guesses             *[]GuessSnapshot `json:"guesses"`
	IncorrectGuessCount *int             `json:"incorrect_guess_count"`
}

// Snapshot captures the round's state.
func (g *Game) Snapshot() Snapshot {
	return Snapshot{
		Answer: g.answer,
		Hint: lo.Map(g.hint.revealed, func(r rune, _ int) string {
			return string(r)
		}),
		Guesses: lo.Map(g.guesses, func(guess Guess, _ int) GuessSnapshot {
			return GuessSnapshot{Letter: string(guess.Letter), Correct: guess.Correct}
		}),
		IncorrectGuessCount: g.incorrect,
	}
}

// MarshalGame serializes a round as indented JSON.
func MarshalGame(g *Game) ([]byte, error) {
	return json.MarshalIndent(g.Snapshot(), "", "  ")
}

// UnmarshalGame decodes and validates a saved round. Unknown fields,
// missing fields, trailing data and inconsistent state are all rejected
// with ErrMalformedSave; no partially valid Game is ever returned.
func UnmarshalGame(data []byte, rules Rules) (*Game, error) {
	dec := json.NewDecoder(bytes.NewReader(data))
	dec.DisallowUnknownFields()

	var raw rawSnapshot
	if err := dec.Decode(&raw); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrMalformedSave, err)
	}
	if err := dec.Decode(&struct{}{}); !errors.Is(err, io.EOF) {
		return nil, fmt.Errorf("%w: trailing data after save object", ErrMalformedSave)
	}
	if raw.Answer == nil || raw.Hint == nil || raw.Guesses == nil || raw.IncorrectGuessCount == nil {
		return nil, fmt.Errorf("%w: answer, hint, guesses and incorrect_guess_count are required", ErrMalformedSave)
	}

	return Restore(Snapshot{
		Answer:              *raw.Answer,
		Hint:                *raw.Hint,
		Guesses:             *raw.Guesses,
		IncorrectGuessCount: *raw.IncorrectGuessCount,
	}, rules)
}

// Restore rebuilds a Game from a snapshot after checking that every field
// agrees with the answer.
func Restore(s Snapshot, rules Rules) (*Game, error) {
	if err := rules.Validate(); err != nil {
		return nil, err
	}
	if !isLetters(s.Answer) || !rules.fits(len(s.Answer)) {
		return nil, fmt.Errorf("%w: answer %q is not %d-%d lowercase letters",
			ErrMalformedSave, s.Answer, rules.MinWordSize, rules.MaxWordSize)
	}

	guesses := make([]Guess, 0, len(s.Guesses))
	found := make(map[rune]bool, len(s.Guesses))
	incorrect := 0
	for i, gs := range s.Guesses {
		letter, err := parseLetter(gs.Letter)
		if err != nil {
			return nil, fmt.Errorf("%w: guess %d: %v", ErrMalformedSave, i, err)
		}
		if _, dup := found[letter]; dup {
			return nil, fmt.Errorf("%w: guess %q appears twice", ErrMalformedSave, string(letter))
		}
		guess := NewGuess(letter, s.Answer)
		if guess.Correct != gs.Correct {
			return nil, fmt.Errorf("%w: guess %q is marked correct=%t", ErrMalformedSave, string(letter), gs.Correct)
		}
		found[letter] = guess.Correct
		if !guess.Correct {
			incorrect++
		}
		guesses = append(guesses, guess)
	}

	if incorrect != s.IncorrectGuessCount {
		return nil, fmt.Errorf("%w: incorrect_guess_count is %d, guesses hold %d",
			ErrMalformedSave, s.IncorrectGuessCount, incorrect)
	}
	if incorrect > rules.MaxFails {
		return nil, fmt.Errorf("%w: %d incorrect guesses exceed the cap of %d",
			ErrMalformedSave, incorrect, rules.MaxFails)
	}

	answer := []rune(s.Answer)
	if len(s.Hint) != len(answer) {
		return nil, fmt.Errorf("%w: hint has %d positions, answer has %d",
			ErrMalformedSave, len(s.Hint), len(answer))
	}
	hint := NewHint(len(answer))
	for i, cell := range s.Hint {
		guessed := found[answer[i]]
		switch {
		case cell == string(Placeholder) && !guessed:
		case cell == string(answer[i]) && guessed:
			hint.revealed[i] = answer[i]
		default:
			return nil, fmt.Errorf("%w: hint position %d (%q) disagrees with the guesses",
				ErrMalformedSave, i, cell)
		}
	}

	return &Game{
		answer:    s.Answer,
		hint:      hint,
		guesses:   guesses,
		incorrect: incorrect,
		rules:     rules,
	}, nil
}
