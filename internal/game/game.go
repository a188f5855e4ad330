package game

import (
	"context"
	"errors"
	"fmt"

	"github.com/gdamore/tcell/v2"
	"github.com/rs/zerolog/log"

	"github.com/samdwyer/hangman/internal/hangman"
	"github.com/samdwyer/hangman/internal/save"
	"github.com/samdwyer/hangman/internal/ui"
)

// Game is the full-screen front end.
type Game struct {
	screen   *ui.Screen
	renderer *ui.Renderer
	session  *Session
	state    State
	message  string   // Status line shown at the bottom of the screen
	saves    []string // Save names listed in StateLoad
	selected int      // Highlighted save in StateLoad
	running  bool
}

// New creates a new game instance drawing on screen.
func New(screen *ui.Screen, session *Session) *Game {
	return &Game{
		screen:   screen,
		renderer: ui.NewRenderer(screen),
		session:  session,
		state:    StateMenu,
		running:  true,
	}
}

// Run executes the main game loop until the player quits.
func (g *Game) Run(ctx context.Context) error {
	log.Info().Msg("full-screen game started")

	for g.running {
		g.render(ctx)
		g.handleInput(ctx)
	}

	g.screen.Close()
	return nil
}

// render draws the current state.
func (g *Game) render(ctx context.Context) {
	switch g.state {
	case StateMenu:
		g.renderer.RenderMenu(g.session.Active(), g.session.Summary(ctx), g.message)
	case StateLoad:
		g.renderer.RenderLoadList(g.saves, g.selected, g.message)
	case StatePlaying, StateOver:
		g.renderer.RenderRound(g.session.Round(), g.message)
	}
}

// handleInput processes a single input event.
func (g *Game) handleInput(ctx context.Context) {
	ev := g.screen.PollEvent()

	switch ev := ev.(type) {
	case *tcell.EventKey:
		g.handleKey(ctx, ev.Key(), ev.Rune())
	case *tcell.EventResize:
		g.screen.Sync()
	}
}

// handleKey processes keyboard input for the current state.
func (g *Game) handleKey(ctx context.Context, key tcell.Key, r rune) {
	if key == tcell.KeyCtrlC {
		g.running = false
		return
	}

	g.message = ""
	switch g.state {
	case StateMenu:
		g.handleMenuKey(ctx, key, r)
	case StateLoad:
		g.handleLoadKey(ctx, key)
	case StatePlaying:
		g.handlePlayingKey(ctx, key, r)
	case StateOver:
		g.state = StateMenu
	}
}

func (g *Game) handleMenuKey(ctx context.Context, key tcell.Key, r rune) {
	if key == tcell.KeyEscape {
		g.running = false
		return
	}
	if key != tcell.KeyRune {
		return
	}

	switch r {
	case 'n', 'N':
		if err := g.session.NewRound(ctx); err != nil {
			g.message = "Could not start a round: " + err.Error()
			return
		}
		g.state = StatePlaying
	case 'c', 'C':
		if g.session.Active() {
			g.state = StatePlaying
		}
	case 'l', 'L':
		names, err := g.session.SavedGames()
		if err != nil {
			g.message = "Could not list saves: " + err.Error()
			return
		}
		g.saves, g.selected = names, 0
		g.state = StateLoad
	case 'q', 'Q':
		g.running = false
	}
}

func (g *Game) handleLoadKey(ctx context.Context, key tcell.Key) {
	switch key {
	case tcell.KeyEscape:
		g.state = StateMenu
	case tcell.KeyUp:
		if g.selected > 0 {
			g.selected--
		}
	case tcell.KeyDown:
		if g.selected < len(g.saves)-1 {
			g.selected++
		}
	case tcell.KeyEnter:
		if len(g.saves) == 0 {
			return
		}
		name := g.saves[g.selected]
		if err := g.session.Load(ctx, name); err != nil {
			g.message = loadErrorMessage(name, err)
			return
		}
		g.message = "Loaded " + name + "."
		g.state = StatePlaying
		if g.session.Round().IsTerminal() {
			g.state = StateOver
		}
	}
}

func (g *Game) handlePlayingKey(ctx context.Context, key tcell.Key, r rune) {
	switch key {
	case tcell.KeyEscape:
		g.state = StateMenu
	case tcell.KeyCtrlS:
		name, err := g.session.Save(ctx, "")
		if err != nil {
			g.message = "Save failed: " + err.Error()
			return
		}
		g.message = "Saved as " + name + "."
	case tcell.KeyRune:
		g.message = guessMessage(g.session.Guess(ctx, string(r)))
		if g.session.Round().IsTerminal() {
			g.state = StateOver
		}
	}
}

// guessMessage turns a guess result into a status line.
func guessMessage(correct bool, err error) string {
	switch {
	case errors.Is(err, hangman.ErrInvalidGuess):
		return "Enter a single letter you have not tried yet."
	case errors.Is(err, hangman.ErrGameOver):
		return "The round is over."
	case err != nil:
		return err.Error()
	case correct:
		return "Good guess!"
	default:
		return "Not in the word."
	}
}

// loadErrorMessage explains why a save could not be loaded.
func loadErrorMessage(name string, err error) string {
	switch {
	case errors.Is(err, save.ErrNotFound):
		return fmt.Sprintf("Save %s no longer exists.", name)
	case errors.Is(err, hangman.ErrMalformedSave):
		return fmt.Sprintf("Save %s is damaged and was not loaded.", name)
	default:
		return fmt.Sprintf("Could not load %s: %v", name, err)
	}
}
