package grid

// Direction is one of the eight unit movement directions, listed in
// clockwise order starting from North.
type Direction int

const (
	North Direction = iota
	Northeast
	East
	Southeast
	South
	Southwest
	West
	Northwest
)

// Directions lists all eight directions in clockwise order.
var Directions = [8]Direction{
	North, Northeast, East, Southeast,
	South, Southwest, West, Northwest,
}

// Unit offsets in Directions order (Y grows south, so North is -Y).
var vectors = [8]Pos{
	{0, -1}, {1, -1}, {1, 0}, {1, 1},
	{0, 1}, {-1, 1}, {-1, 0}, {-1, -1},
}

// Vector returns the unit offset of the direction.
func (d Direction) Vector() Pos {
	return vectors[d]
}

// Rotate returns the direction n 45-degree steps away, clockwise for
// positive n. Rotation is closed over the eight directions.
func (d Direction) Rotate(n int) Direction {
	return Direction(((int(d)+n)%8 + 8) % 8)
}

// String returns the direction's compass name.
func (d Direction) String() string {
	switch d {
	case North:
		return "N"
	case Northeast:
		return "NE"
	case East:
		return "E"
	case Southeast:
		return "SE"
	case South:
		return "S"
	case Southwest:
		return "SW"
	case West:
		return "W"
	case Northwest:
		return "NW"
	default:
		return "?"
	}
}

// Decompose splits delta into run lengths along stem and leaf, so that
// delta = stem*stemLen + leaf*leafLen. The two directions must be
// linearly independent; for adjacent direction pairs (one cardinal, one
// diagonal) the system is unimodular and the division is exact.
func Decompose(delta Pos, stem, leaf Direction) (stemLen, leafLen int) {
	s := stem.Vector()
	l := leaf.Vector()
	det := s.X*l.Y - s.Y*l.X
	stemLen = (delta.X*l.Y - delta.Y*l.X) / det
	leafLen = (s.X*delta.Y - s.Y*delta.X) / det
	return stemLen, leafLen
}
