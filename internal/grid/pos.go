// Package grid provides the geometry underlying the playfield: integer
// positions, the eight unit movement directions, and chirality (turning
// sense). Everything here is a small immutable value type.
package grid

// Pos is a position on the grid. X grows east, Y grows south, matching
// screen coordinates.
type Pos struct {
	X, Y int
}

// Add returns the component-wise sum of p and q.
func (p Pos) Add(q Pos) Pos {
	return Pos{p.X + q.X, p.Y + q.Y}
}

// Sub returns the component-wise difference p - q.
func (p Pos) Sub(q Pos) Pos {
	return Pos{p.X - q.X, p.Y - q.Y}
}

// Shift returns the position n unit steps from p along d.
func (p Pos) Shift(d Direction, n int) Pos {
	v := d.Vector()
	return Pos{p.X + v.X*n, p.Y + v.Y*n}
}

// Distance returns the Chebyshev distance between p and q: the number
// of moves needed to travel from one to the other when all eight unit
// moves cost the same.
func (p Pos) Distance(q Pos) int {
	dx := abs(p.X - q.X)
	dy := abs(p.Y - q.Y)
	if dx > dy {
		return dx
	}
	return dy
}

func abs(n int) int {
	if n < 0 {
		return -n
	}
	return n
}
