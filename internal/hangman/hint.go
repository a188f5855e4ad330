package hangman

import "strings"

// Placeholder marks a position of the hint that has not been revealed.
const Placeholder = '_'

// Hint is the masked view of the answer. It is a fixed-length buffer that
// only ever moves positions from Placeholder to the answer's letter.
type Hint struct {
	revealed []rune
}

// NewHint creates a hint of the given length with every position masked.
func NewHint(length int) *Hint {
	revealed := make([]rune, length)
	for i := range revealed {
		revealed[i] = Placeholder
	}
	return &Hint{revealed: revealed}
}

// Reveal uncovers every position where answer holds letter, ignoring case,
// and returns how many positions changed. An absent letter is a no-op.
func (h *Hint) Reveal(letter rune, answer string) int {
	letter = toLower(letter)
	count := 0
	for i, r := range []rune(answer) {
		if i >= len(h.revealed) {
			break
		}
		if toLower(r) == letter && h.revealed[i] == Placeholder {
			h.revealed[i] = r
			count++
		}
	}
	return count
}

// Len returns the number of positions.
func (h *Hint) Len() int {
	return len(h.revealed)
}

// Remaining returns the number of positions still masked.
func (h *Hint) Remaining() int {
	count := 0
	for _, r := range h.revealed {
		if r == Placeholder {
			count++
		}
	}
	return count
}

// Revealed returns a copy of the underlying buffer.
func (h *Hint) Revealed() []rune {
	out := make([]rune, len(h.revealed))
	copy(out, h.revealed)
	return out
}

// Joined returns the hint with no separators, e.g. "a__le".
func (h *Hint) Joined() string {
	return string(h.revealed)
}

// String returns the hint with positions separated by single spaces,
// e.g. "a _ _ l e".
func (h *Hint) String() string {
	parts := make([]string, len(h.revealed))
	for i, r := range h.revealed {
		parts[i] = string(r)
	}
	return strings.Join(parts, " ")
}

// toLower folds ASCII upper case letters.
func toLower(r rune) rune {
	if r >= 'A' && r <= 'Z' {
		return r + ('a' - 'A')
	}
	return r
}
