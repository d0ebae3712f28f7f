// Package game provides the main loop and turn resolution.
package game

// State is the current game state.
type State int

const (
	// StateExplore is normal play: the player moves, creatures hunt.
	StateExplore State = iota
	// StateDead means the player has fallen; only quitting remains.
	StateDead
)

// String returns a human-readable state name.
func (s State) String() string {
	switch s {
	case StateExplore:
		return "explore"
	case StateDead:
		return "dead"
	default:
		return "unknown"
	}
}
