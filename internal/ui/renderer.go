package ui

import (
	"fmt"

	"github.com/gdamore/tcell/v2"

	"github.com/samdwyer/hangman/internal/hangman"
)

var (
	styleText    = tcell.StyleDefault.Foreground(tcell.ColorWhite)
	styleTitle   = tcell.StyleDefault.Foreground(tcell.ColorYellow).Bold(true)
	styleDim     = tcell.StyleDefault.Foreground(tcell.ColorGray)
	styleGallows = tcell.StyleDefault.Foreground(tcell.ColorDarkGray)
	styleCorrect = tcell.StyleDefault.Foreground(tcell.ColorGreen).Bold(true)
	styleWrong   = tcell.StyleDefault.Foreground(tcell.ColorRed)
	styleMessage = tcell.StyleDefault.Foreground(tcell.ColorYellow)
)

const (
	marginX = 2
	marginY = 1
)

// Renderer handles drawing the game to the screen.
type Renderer struct {
	screen *Screen
}

// NewRenderer creates a new renderer for the given screen.
func NewRenderer(screen *Screen) *Renderer {
	return &Renderer{screen: screen}
}

// RenderMenu draws the title menu. summary is an optional statistics line;
// canContinue offers to resume an unfinished round.
func (r *Renderer) RenderMenu(canContinue bool, summary, message string) {
	r.screen.Clear()

	y := marginY
	r.screen.DrawText(marginX, y, "H A N G M A N", styleTitle)
	y += 2
	for i, line := range Gallows(10, 10) {
		r.screen.DrawText(marginX, y+i, line, styleGallows)
	}
	y += 8
	if canContinue {
		r.screen.DrawText(marginX, y, "[c] continue", styleText)
		y++
	}
	r.screen.DrawText(marginX, y, "[n] new game", styleText)
	r.screen.DrawText(marginX, y+1, "[l] load game", styleText)
	r.screen.DrawText(marginX, y+2, "[q] quit", styleText)
	y += 4
	if summary != "" {
		r.screen.DrawText(marginX, y, summary, styleDim)
	}
	r.renderMessage(message)

	r.screen.Show()
}

// RenderLoadList draws the saved games with the selected entry highlighted.
func (r *Renderer) RenderLoadList(names []string, selected int, message string) {
	r.screen.Clear()

	r.screen.DrawText(marginX, marginY, "Load game", styleTitle)
	r.screen.DrawText(marginX, marginY+1, "up/down select, enter load, esc back", styleDim)

	if len(names) == 0 {
		r.screen.DrawText(marginX, marginY+3, "No saved games.", styleText)
	}

	_, height := r.screen.Size()
	visible := max(height-marginY-6, 1)
	first := max(selected-visible+1, 0)
	for i := first; i < len(names) && i < first+visible; i++ {
		style, cursor := styleText, "  "
		if i == selected {
			style, cursor = styleTitle, "> "
		}
		r.screen.DrawText(marginX, marginY+3+i-first, cursor+names[i], style)
	}
	r.renderMessage(message)

	r.screen.Show()
}

// RenderRound draws the gallows, the hint, the guessed letters and the
// round status. A finished round also shows the answer.
func (r *Renderer) RenderRound(g *hangman.Game, message string) {
	r.screen.Clear()

	y := marginY
	r.screen.DrawText(marginX, y, "H A N G M A N", styleTitle)
	y += 2

	for i, line := range Gallows(g.IncorrectGuessCount(), g.Rules().MaxFails) {
		r.screen.DrawText(marginX, y+i, line, styleGallows)
	}
	y += 8

	r.screen.DrawText(marginX, y, g.Hint().String(), styleTitle)
	y += 2

	x := r.screen.DrawText(marginX, y, "Guessed: ", styleText)
	for _, guess := range g.Guesses() {
		style := styleWrong
		if guess.Correct {
			style = styleCorrect
		}
		r.screen.SetContent(x, y, guess.Letter, style)
		x += 2
	}
	y += 2

	r.screen.DrawText(marginX, y, StatusLine(g), styleText)
	y++
	if g.IsTerminal() {
		r.screen.DrawText(marginX, y, "Press any key to return to the menu.", styleDim)
	} else {
		r.screen.DrawText(marginX, y, "Type a letter to guess, ctrl-s to save, esc for menu.", styleDim)
	}
	r.renderMessage(message)

	r.screen.Show()
}

// renderMessage displays a message at the bottom of the screen.
func (r *Renderer) renderMessage(msg string) {
	if msg == "" {
		return
	}
	_, height := r.screen.Size()
	r.screen.DrawText(marginX, height-2, msg, styleMessage)
}

// StatusLine summarizes a round: remaining fails while playing, the result
// and answer once it is over.
func StatusLine(g *hangman.Game) string {
	switch g.Outcome() {
	case hangman.Won:
		return fmt.Sprintf("You won! The word was %q.", g.Answer())
	case hangman.Lost:
		return fmt.Sprintf("You lost. The word was %q.", g.Answer())
	default:
		return fmt.Sprintf("Fails: %d/%d (%d left)",
			g.IncorrectGuessCount(), g.Rules().MaxFails, g.RemainingFails())
	}
}
