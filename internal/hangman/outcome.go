package hangman

// Outcome is the derived state of a round.
type Outcome int

const (
	// InProgress - guesses are still accepted
	InProgress Outcome = iota
	// Won - every position of the hint is revealed
	Won
	// Lost - the incorrect guess cap was reached
	Lost
)

// String returns a human-readable outcome name.
func (o Outcome) String() string {
	switch o {
	case InProgress:
		return "in_progress"
	case Won:
		return "won"
	case Lost:
		return "lost"
	default:
		return "unknown"
	}
}
