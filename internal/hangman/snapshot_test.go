package hangman

import (
	"errors"
	"reflect"
	"testing"
)

func TestRoundTripMidGame(t *testing.T) {
	g := newTestGame(t, "grape")
	g.SubmitGuess("g")
	g.SubmitGuess("x")

	data, err := MarshalGame(g)
	if err != nil {
		t.Fatalf("MarshalGame() error = %v", err)
	}
	restored, err := UnmarshalGame(data, DefaultRules())
	if err != nil {
		t.Fatalf("UnmarshalGame() error = %v", err)
	}

	if restored.Hint().Joined() != "g____" {
		t.Errorf("Hint() = %q, want %q", restored.Hint().Joined(), "g____")
	}
	want := []Guess{{Letter: 'g', Correct: true}, {Letter: 'x', Correct: false}}
	if !reflect.DeepEqual(restored.Guesses(), want) {
		t.Errorf("Guesses() = %+v, want %+v", restored.Guesses(), want)
	}
	if restored.IncorrectGuessCount() != 1 {
		t.Errorf("IncorrectGuessCount() = %d, want 1", restored.IncorrectGuessCount())
	}
	if restored.Outcome() != g.Outcome() {
		t.Errorf("Outcome() = %v, want %v", restored.Outcome(), g.Outcome())
	}

	// Both copies must keep behaving the same way.
	for _, letter := range []string{"g", "r", "q"} {
		c1, err1 := g.SubmitGuess(letter)
		c2, err2 := restored.SubmitGuess(letter)
		if c1 != c2 || errors.Is(err1, ErrInvalidGuess) != errors.Is(err2, ErrInvalidGuess) {
			t.Errorf("SubmitGuess(%q) diverged: (%v, %v) vs (%v, %v)", letter, c1, err1, c2, err2)
		}
	}
	if !reflect.DeepEqual(g.Snapshot(), restored.Snapshot()) {
		t.Errorf("snapshots diverged: %+v vs %+v", g.Snapshot(), restored.Snapshot())
	}
}

func TestRoundTripFinishedGame(t *testing.T) {
	g := newTestGame(t, "apple")
	for _, letter := range []string{"a", "p", "l", "e"} {
		g.SubmitGuess(letter)
	}

	data, _ := MarshalGame(g)
	restored, err := UnmarshalGame(data, DefaultRules())
	if err != nil {
		t.Fatalf("UnmarshalGame() error = %v", err)
	}
	if restored.Outcome() != Won {
		t.Errorf("Outcome() = %v, want Won", restored.Outcome())
	}
}

func TestUnmarshalGameRejectsMalformed(t *testing.T) {
	tests := []struct {
		name string
		data string
	}{
		{"not json", `answer: grape`},
		{"unknown field", `{"answer":"grape","hint":["_","_","_","_","_"],"guesses":[],"incorrect_guess_count":0,"cmd":"rm"}`},
		{"missing guesses", `{"answer":"grape","hint":["_","_","_","_","_"],"incorrect_guess_count":0}`},
		{"missing answer", `{"hint":[],"guesses":[],"incorrect_guess_count":0}`},
		{"trailing object", `{"answer":"grape","hint":["_","_","_","_","_"],"guesses":[],"incorrect_guess_count":0}{}`},
		{"uppercase answer", `{"answer":"GRAPE","hint":["_","_","_","_","_"],"guesses":[],"incorrect_guess_count":0}`},
		{"short answer", `{"answer":"fig","hint":["_","_","_"],"guesses":[],"incorrect_guess_count":0}`},
		{"hint length", `{"answer":"grape","hint":["_","_","_"],"guesses":[],"incorrect_guess_count":0}`},
		{"hint wrong letter", `{"answer":"grape","hint":["x","_","_","_","_"],"guesses":[],"incorrect_guess_count":0}`},
		{"hint revealed without guess", `{"answer":"grape","hint":["g","_","_","_","_"],"guesses":[],"incorrect_guess_count":0}`},
		{"guess without reveal", `{"answer":"grape","hint":["_","_","_","_","_"],"guesses":[{"letter":"g","correct":true}],"incorrect_guess_count":0}`},
		{"wrong correct flag", `{"answer":"grape","hint":["_","_","_","_","_"],"guesses":[{"letter":"x","correct":true}],"incorrect_guess_count":0}`},
		{"duplicate guess", `{"answer":"grape","hint":["_","_","_","_","_"],"guesses":[{"letter":"x","correct":false},{"letter":"X","correct":false}],"incorrect_guess_count":2}`},
		{"multi letter guess", `{"answer":"grape","hint":["_","_","_","_","_"],"guesses":[{"letter":"xy","correct":false}],"incorrect_guess_count":1}`},
		{"count mismatch", `{"answer":"grape","hint":["_","_","_","_","_"],"guesses":[{"letter":"x","correct":false}],"incorrect_guess_count":3}`},
		{"wrong type", `{"answer":5,"hint":[],"guesses":[],"incorrect_guess_count":0}`},
	}

	for _, tt := range tests {
		g, err := UnmarshalGame([]byte(tt.data), DefaultRules())
		if !errors.Is(err, ErrMalformedSave) {
			t.Errorf("%s: UnmarshalGame() error = %v, want ErrMalformedSave", tt.name, err)
		}
		if g != nil {
			t.Errorf("%s: UnmarshalGame() returned a game alongside an error", tt.name)
		}
	}
}

func TestUnmarshalGameRejectsTooManyFails(t *testing.T) {
	rules := Rules{MaxFails: 1, MinWordSize: 5, MaxWordSize: 12}
	data := `{"answer":"grape","hint":["_","_","_","_","_"],` +
		`"guesses":[{"letter":"x","correct":false},{"letter":"y","correct":false}],"incorrect_guess_count":2}`

	_, err := UnmarshalGame([]byte(data), rules)
	if !errors.Is(err, ErrMalformedSave) {
		t.Errorf("UnmarshalGame() error = %v, want ErrMalformedSave", err)
	}
}

func TestSnapshotFields(t *testing.T) {
	g := newTestGame(t, "grape")
	g.SubmitGuess("g")
	g.SubmitGuess("x")

	want := Snapshot{
		Answer: "grape",
		Hint:   []string{"g", "_", "_", "_", "_"},
		Guesses: []GuessSnapshot{
			{Letter: "g", Correct: true},
			{Letter: "x", Correct: false},
		},
		IncorrectGuessCount: 1,
	}
	if got := g.Snapshot(); !reflect.DeepEqual(got, want) {
		t.Errorf("Snapshot() = %+v, want %+v", got, want)
	}
}
