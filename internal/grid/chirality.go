package grid

// Chirality is a turning sense. Threading it through rotation lets one
// code path scan corners on either side of a run instead of duplicating
// turn-left and turn-right branches.
type Chirality int

const (
	// Clockwise turns in the same sense as Direction.Rotate.
	Clockwise Chirality = iota
	// Counterclockwise turns in the opposite sense.
	Counterclockwise
)

// Rotate rotates d by n steps in the chirality's turning sense.
func (c Chirality) Rotate(d Direction, n int) Direction {
	if c == Counterclockwise {
		n = -n
	}
	return d.Rotate(n)
}

// String returns a human-readable name for the chirality.
func (c Chirality) String() string {
	if c == Counterclockwise {
		return "counterclockwise"
	}
	return "clockwise"
}
