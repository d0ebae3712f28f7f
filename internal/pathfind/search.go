// Package pathfind computes shortest routes on the eight-connected
// grid using a generalized jump point search. Instead of expanding
// every cell the way plain A* would, the search skips along straight
// runs and only records cells where an obstacle forces a turn.
//
// A search is synchronous and self-contained: all mutable state is
// local to one call, so independent searches may run concurrently as
// long as the passability source does not change under them.
package pathfind

import "github.com/samdwyer/delver/internal/grid"

// Search finds a shortest route from origin to a cell satisfying
// isGoal. The result is ordered from goal to origin, both endpoints
// included; callers reverse it for travel order. It returns nil when
// no route exists.
//
// flip selects the turning sense used to seed the initial fan-out of
// eight directions from the origin; flipping it biases which of
// several equally short routes is found.
//
// Caller contract: isGoal and passable must be pure for the duration
// of the call, passable must be false outside some bounded region
// (a map with boundary walls satisfies this), and heuristic must never
// overestimate the true remaining cost. Violating the contract does
// not crash, but the route may be suboptimal, and an unbounded
// passable region will keep a scan running forever.
//
// When several shortest routes exist, which one is returned depends on
// heap tie-breaking: an equal-cost candidate found later may take over
// the parent link of an earlier one. The total cost is stable across
// runs; the exact cells are not guaranteed to be.
func Search(origin grid.Pos, isGoal, passable func(grid.Pos) bool, heuristic func(grid.Pos) int, flip bool) []grid.Pos {
	if isGoal(origin) {
		return []grid.Pos{origin}
	}

	chirality := grid.Clockwise
	if flip {
		chirality = grid.Counterclockwise
	}

	open := make(openHeap, 0, len(grid.Directions))
	costs := map[grid.Pos]int{origin: 0}
	parents := make(map[grid.Pos]JumpPoint)

	initial := heuristic(origin)
	for _, d := range grid.Directions {
		open.push(openNode{jp: JumpPoint{Pos: origin, Direction: d, Chirality: chirality}}, initial)
	}

	for {
		node, ok := open.pop()
		if !ok {
			return nil
		}
		if node.goal {
			return constructPath(parents, node.pos(), costs[node.pos()])
		}
		curr := node.jp
		curr.forEachNeighbor(func(n openNode) {
			pos := n.pos()
			newCost := costs[curr.Pos] + pos.Distance(curr.Pos)
			if known, seen := costs[pos]; seen && newCost > known {
				return
			}
			// Equal costs are deliberately not skipped: the scans can
			// emit several candidates for one position, and a later
			// equal-cost candidate takes over the parent link.
			open.push(n, newCost+heuristic(pos))
			parents[pos] = curr
			costs[pos] = newCost
		}, isGoal, passable)
	}
}

// constructPath expands the sparse chain of jump points into the dense
// sequence of unit steps, goal first. Each parent link is an L-shaped
// move: a straight run along the stem direction followed by a run
// along the leaf direction, which is how jump points are generated.
func constructPath(parents map[grid.Pos]JumpPoint, goal grid.Pos, totalCost int) []grid.Pos {
	path := make([]grid.Pos, 0, totalCost+1)
	pos := goal
	for {
		parent, ok := parents[pos]
		if !ok {
			break
		}
		leafDir := parent.Chirality.Rotate(parent.Direction, 1)
		stemLen, leafLen := grid.Decompose(pos.Sub(parent.Pos), parent.Direction, leafDir)
		stemTip := parent.Pos.Shift(parent.Direction, stemLen)
		for i := leafLen; i >= 1; i-- {
			path = append(path, stemTip.Shift(leafDir, i))
		}
		for i := stemLen; i >= 1; i-- {
			path = append(path, parent.Pos.Shift(parent.Direction, i))
		}
		pos = parent.Pos
	}
	// The chain bottoms out at the origin, which has no parent.
	return append(path, pos)
}
