package game

import (
	"bufio"
	"context"
	"errors"
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/samdwyer/hangman/internal/hangman"
	"github.com/samdwyer/hangman/internal/ui"
)

// Console is the line-based front end: one command or guess per line.
type Console struct {
	session *Session
	in      *bufio.Reader
	out     io.Writer
}

// NewConsole creates a console reading commands from in and writing to out.
func NewConsole(session *Session, in io.Reader, out io.Writer) *Console {
	return &Console{
		session: session,
		in:      bufio.NewReader(in),
		out:     out,
	}
}

// ReadLine blocks for the next line of input, without its line ending.
// A final line without a newline is returned before io.EOF.
func (c *Console) ReadLine() (string, error) {
	line, err := c.in.ReadString('\n')
	if err != nil && (!errors.Is(err, io.EOF) || line == "") {
		return "", err
	}
	return strings.TrimRight(line, "\r\n"), nil
}

// Run shows the menu until the player quits or input ends.
func (c *Console) Run(ctx context.Context) error {
	for {
		if summary := c.session.Summary(ctx); summary != "" {
			c.printf("%s\n", summary)
		}
		if c.session.Active() {
			c.printf("[c]ontinue, ")
		}
		c.printf("[n]ew game, [l]oad game, [q]uit: ")

		line, err := c.ReadLine()
		if errors.Is(err, io.EOF) {
			c.printf("\n")
			return nil
		}
		if err != nil {
			return err
		}

		var play bool
		switch strings.ToLower(strings.TrimSpace(line)) {
		case "n", "new":
			if err := c.session.NewRound(ctx); err != nil {
				return fmt.Errorf("start round: %w", err)
			}
			play = true
		case "c", "continue":
			play = c.session.Active()
		case "l", "load":
			play, err = c.chooseSave(ctx)
		case "q", "quit", "exit":
			return nil
		default:
			c.printf("Unknown choice %q.\n", line)
		}
		if errors.Is(err, io.EOF) {
			c.printf("\n")
			return nil
		}
		if err != nil {
			return err
		}

		if play {
			if err := c.play(ctx); err != nil {
				if errors.Is(err, io.EOF) {
					c.printf("\n")
					return nil
				}
				return err
			}
		}
	}
}

// chooseSave lists saves and loads the one picked by number or name.
func (c *Console) chooseSave(ctx context.Context) (bool, error) {
	names, err := c.session.SavedGames()
	if err != nil {
		c.printf("Could not list saves: %v\n", err)
		return false, nil
	}
	if len(names) == 0 {
		c.printf("No saved games.\n")
		return false, nil
	}

	for i, name := range names {
		c.printf("%3d) %s\n", i+1, name)
	}
	c.printf("Save to load (number or name, blank to cancel): ")
	line, err := c.ReadLine()
	if err != nil {
		return false, err
	}
	choice := strings.TrimSpace(line)
	if choice == "" {
		return false, nil
	}
	if n, err := strconv.Atoi(choice); err == nil && n >= 1 && n <= len(names) {
		choice = names[n-1]
	}

	if err := c.session.Load(ctx, choice); err != nil {
		c.printf("%s\n", loadErrorMessage(choice, err))
		return false, nil
	}
	c.printf("Loaded %s.\n", choice)
	return true, nil
}

// play runs guesses against the active round until it ends, the player
// saves, or the player quits to the menu.
func (c *Console) play(ctx context.Context) error {
	for {
		round := c.session.Round()
		c.printRound(round)
		if round.IsTerminal() {
			c.printf("%s\n\n", ui.StatusLine(round))
			return nil
		}

		c.printf("Guess a letter ('save [name]' to save and exit, 'quit' for menu): ")
		line, err := c.ReadLine()
		if err != nil {
			return err
		}
		input := strings.TrimSpace(line)

		switch fields := strings.Fields(input); {
		case len(fields) > 0 && strings.EqualFold(fields[0], "save"):
			name := ""
			if len(fields) > 1 {
				name = fields[1]
			}
			saved, err := c.session.Save(ctx, name)
			if err != nil {
				c.printf("Save failed: %v\n", err)
				continue
			}
			c.printf("Saved as %s.\n\n", saved)
			return nil
		case strings.EqualFold(input, "quit"):
			return nil
		}

		correct, err := c.session.Guess(ctx, input)
		switch {
		case errors.Is(err, hangman.ErrInvalidGuess):
			c.printf("%s\n", guessMessage(correct, err))
		case err != nil:
			return err
		default:
			c.printf("%s\n", ui.FormatForDisplay(guessMessage(correct, nil), correct))
		}
	}
}

// printRound writes the gallows, hint and guesses.
func (c *Console) printRound(round *hangman.Game) {
	c.printf("\n")
	for _, line := range ui.Gallows(round.IncorrectGuessCount(), round.Rules().MaxFails) {
		c.printf("  %s\n", line)
	}
	c.printf("\n  %s\n\n", round.Hint())
	if guesses := round.Guesses(); len(guesses) > 0 {
		c.printf("  Guessed: %s\n", ui.FormatGuesses(guesses))
	}
	if !round.IsTerminal() {
		c.printf("  %s\n", ui.StatusLine(round))
	}
}

func (c *Console) printf(format string, args ...any) {
	fmt.Fprintf(c.out, format, args...)
}
