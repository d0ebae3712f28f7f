package world

import "github.com/samdwyer/delver/internal/grid"

// Room is a rectangular carved-out area of the level.
type Room struct {
	X, Y          int // top-left corner
	Width, Height int
}

// Center returns the room's center cell.
func (r Room) Center() grid.Pos {
	return grid.Pos{X: r.X + r.Width/2, Y: r.Y + r.Height/2}
}

// Contains reports whether p lies inside the room.
func (r Room) Contains(p grid.Pos) bool {
	return p.X >= r.X && p.X < r.X+r.Width && p.Y >= r.Y && p.Y < r.Y+r.Height
}

// InteriorContains reports whether p lies strictly inside the room,
// at least one cell away from every room edge.
func (r Room) InteriorContains(p grid.Pos) bool {
	return p.X > r.X && p.X < r.X+r.Width-1 && p.Y > r.Y && p.Y < r.Y+r.Height-1
}
