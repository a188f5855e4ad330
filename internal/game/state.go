// Package game provides the interactive front ends and the session that
// connects a round to saves and statistics.
package game

// State represents the current screen of the full-screen front end.
type State int

const (
	// StateMenu is the title menu.
	StateMenu State = iota
	// StateLoad lists saved games to pick from.
	StateLoad
	// StatePlaying accepts letter guesses.
	StatePlaying
	// StateOver shows the result of a finished round.
	StateOver
)

// String returns a human-readable state name.
func (s State) String() string {
	switch s {
	case StateMenu:
		return "menu"
	case StateLoad:
		return "load"
	case StatePlaying:
		return "playing"
	case StateOver:
		return "over"
	default:
		return "unknown"
	}
}
