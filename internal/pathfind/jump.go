package pathfind

import "github.com/samdwyer/delver/internal/grid"

// JumpPoint is a node of the search: standing at Pos, having just
// traveled along Direction, continuing to scan corners on the
// Chirality side. It carries no cost; costs live in the search driver.
type JumpPoint struct {
	Pos       grid.Pos
	Direction grid.Direction
	Chirality grid.Chirality
}

// openNode is the payload carried by the open heap: either the goal
// itself (terminal) or a jump point still to be expanded.
type openNode struct {
	goal bool
	jp   JumpPoint // only jp.Pos is meaningful when goal is set
}

func goalNode(pos grid.Pos) openNode {
	return openNode{goal: true, jp: JumpPoint{Pos: pos}}
}

func (n openNode) pos() grid.Pos {
	return n.jp.Pos
}

// turnNeighbor builds the jump point entered by turning off a run at
// pos: the new direction is one step against the chirality's sense.
func turnNeighbor(pos grid.Pos, old grid.Direction, c grid.Chirality) JumpPoint {
	return JumpPoint{
		Pos:       pos,
		Direction: c.Rotate(old, -1),
		Chirality: c,
	}
}

// forced reports whether the jump point must be recorded: the corner
// cell on its outside is blocked while the cell straight ahead is
// open. An obstacle in that corner means a shortest route may bend
// here, and a straight scan would otherwise step right past it.
func (j JumpPoint) forced(passable func(grid.Pos) bool) bool {
	corner := j.Pos.Shift(j.Chirality.Rotate(j.Direction, -1), 1)
	return !passable(corner) && passable(j.Pos.Shift(j.Direction, 1))
}

// forEachNeighbor scans outward from j and hands every open node
// reachable without an intervening obstacle to emit: goal hits, forced
// turn neighbors on the stem, and forced corners found by the leaf
// scans. The stem scan stops at the first obstacle or goal hit and
// never expands past it.
func (j JumpPoint) forEachNeighbor(emit func(openNode), isGoal, passable func(grid.Pos) bool) {
	leafDir := j.Chirality.Rotate(j.Direction, 1)
	for length := 1; ; length++ {
		pos := j.Pos.Shift(j.Direction, length)
		if !passable(pos) {
			return
		}
		if isGoal(pos) {
			emit(goalNode(pos))
			return
		}
		turn := turnNeighbor(pos, j.Direction, j.Chirality)
		if turn.forced(passable) {
			emit(openNode{jp: turn})
		}
		forEachLeafNeighbor(pos, leafDir, emit, isGoal, passable)
	}
}

// forEachLeafNeighbor walks outward from root along the leaf
// direction, emitting forced corners for both turning senses. Checking
// both senses here catches the corners the single-sense stem scan
// cannot see, which is what lets one scan shape serve all eight
// directions.
func forEachLeafNeighbor(root grid.Pos, dir grid.Direction, emit func(openNode), isGoal, passable func(grid.Pos) bool) {
	for length := 1; ; length++ {
		pos := root.Shift(dir, length)
		if !passable(pos) {
			return
		}
		if isGoal(pos) {
			emit(goalNode(pos))
			return
		}
		cw := turnNeighbor(pos, dir, grid.Clockwise)
		if cw.forced(passable) {
			emit(openNode{jp: cw})
		}
		ccw := turnNeighbor(pos, dir, grid.Counterclockwise)
		if ccw.forced(passable) {
			emit(openNode{jp: ccw})
		}
	}
}
