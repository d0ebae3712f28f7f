package entity

import (
	"github.com/gdamore/tcell/v2"
	"github.com/google/uuid"

	"github.com/samdwyer/delver/internal/gamedata"
	"github.com/samdwyer/delver/internal/grid"
	"github.com/samdwyer/delver/internal/pathfind"
)

// Mob is a hostile creature in the dungeon.
type Mob struct {
	ID   uuid.UUID
	Def  *gamedata.MobDef
	Pos  grid.Pos
	HP   int
	Flip bool // chirality bias for route finding, fixed at spawn
}

// NewMob creates a creature from a definition. Alternating flip
// between spawns varies which of several equally short routes each
// creature picks, so a pack does not file through one corner.
func NewMob(def *gamedata.MobDef, pos grid.Pos, flip bool) *Mob {
	return &Mob{
		ID:   uuid.New(),
		Def:  def,
		Pos:  pos,
		HP:   def.HP,
		Flip: flip,
	}
}

// IsAlive reports whether the creature still lives.
func (m *Mob) IsAlive() bool {
	return m.HP > 0
}

// TakeDamage applies damage and returns the amount actually taken.
func (m *Mob) TakeDamage(amount int) int {
	if amount > m.HP {
		amount = m.HP
	}
	m.HP -= amount
	return amount
}

// Color returns the creature's display color.
func (m *Mob) Color() tcell.Color {
	return m.Def.TCellColor()
}

// Hunt finds the creature's next step toward target. walkable is the
// level's passability; occupied reports cells blocked by other
// creatures (the target's own cell is always allowed, so a creature
// standing next to its prey steps into it and the game resolves the
// contact as an attack). The second return is false when no route
// exists.
func (m *Mob) Hunt(walkable, occupied func(grid.Pos) bool, target grid.Pos) (grid.Pos, bool) {
	passable := func(p grid.Pos) bool {
		if !walkable(p) {
			return false
		}
		return p == target || !occupied(p)
	}
	isGoal := func(p grid.Pos) bool { return p == target }
	heuristic := func(p grid.Pos) int { return p.Distance(target) }

	path := pathfind.Search(m.Pos, isGoal, passable, heuristic, m.Flip)
	if len(path) < 2 {
		return grid.Pos{}, false
	}
	// The path runs goal to origin; the step to take is the cell just
	// before the origin.
	return path[len(path)-2], true
}
