// Package entity provides the player and the creatures hunting them.
package entity

import "github.com/samdwyer/delver/internal/grid"

// Player is the adventurer controlled from the keyboard.
type Player struct {
	Pos    grid.Pos
	Symbol rune
	HP     int
	MaxHP  int
	Attack int
}

// NewPlayer creates the player at the given position.
func NewPlayer(pos grid.Pos) *Player {
	return &Player{
		Pos:    pos,
		Symbol: '@',
		HP:     20,
		MaxHP:  20,
		Attack: 3,
	}
}

// IsAlive reports whether the player still stands.
func (p *Player) IsAlive() bool {
	return p.HP > 0
}

// TakeDamage applies damage and returns the amount actually taken.
func (p *Player) TakeDamage(amount int) int {
	if amount > p.HP {
		amount = p.HP
	}
	p.HP -= amount
	return amount
}
