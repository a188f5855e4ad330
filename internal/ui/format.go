package ui

import (
	"strings"

	"github.com/samdwyer/hangman/internal/hangman"
)

const (
	ansiGreen = "\x1b[32m"
	ansiRed   = "\x1b[31m"
	ansiReset = "\x1b[0m"
)

// FormatForDisplay colours text green when correct and red otherwise,
// using ANSI escape codes.
func FormatForDisplay(text string, correct bool) string {
	color := ansiRed
	if correct {
		color = ansiGreen
	}
	return color + text + ansiReset
}

// FormatGuesses renders the guess history as coloured letters separated by spaces.
func FormatGuesses(guesses []hangman.Guess) string {
	parts := make([]string, len(guesses))
	for i, g := range guesses {
		parts[i] = FormatForDisplay(string(g.Letter), g.Correct)
	}
	return strings.Join(parts, " ")
}

// gallowsPart is one stroke of the drawing, shown from the given stage on.
type gallowsPart struct {
	stage    int
	row, col int
	text     string
}

// gallowsParts are ordered by stage: base, post, beam, rope, head, body,
// arms, legs.
var gallowsParts = []gallowsPart{
	{1, 6, 0, "========="},
	{2, 0, 7, "+"},
	{2, 1, 7, "|"}, {2, 2, 7, "|"}, {2, 3, 7, "|"}, {2, 4, 7, "|"}, {2, 5, 7, "|"},
	{3, 0, 2, "+----"},
	{4, 1, 2, "|"},
	{5, 2, 2, "O"},
	{6, 3, 2, "|"},
	{7, 3, 1, "/"},
	{8, 3, 3, "\\"},
	{9, 4, 1, "/"},
	{10, 4, 3, "\\"},
}

const (
	gallowsStages = 10
	gallowsRows   = 7
	gallowsCols   = 9
)

// Gallows returns the drawing for the given number of fails, scaled so the
// figure is complete exactly when fails reaches maxFails.
func Gallows(fails, maxFails int) []string {
	stage := 0
	if maxFails > 0 {
		stage = min(fails, maxFails) * gallowsStages / maxFails
	}

	grid := make([][]rune, gallowsRows)
	for i := range grid {
		grid[i] = []rune(strings.Repeat(" ", gallowsCols))
	}
	for _, p := range gallowsParts {
		if p.stage > stage {
			continue
		}
		for i, r := range p.text {
			grid[p.row][p.col+i] = r
		}
	}

	lines := make([]string, gallowsRows)
	for i, row := range grid {
		lines[i] = strings.TrimRight(string(row), " ")
	}
	return lines
}
