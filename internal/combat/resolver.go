// Package combat resolves melee contact between creatures.
package combat

import "math/rand"

// Combatant is anything that can take a hit.
type Combatant interface {
	IsAlive() bool
	TakeDamage(amount int) int
}

// Result describes one resolved attack.
type Result struct {
	Damage int
	Killed bool
}

// ResolveBump applies a melee hit with the given attack power to the
// target. The roll swings the damage by one point either way, with a
// floor of one so a blow always lands.
func ResolveBump(rng *rand.Rand, attack int, target Combatant) Result {
	damage := attack + rng.Intn(3) - 1
	if damage < 1 {
		damage = 1
	}
	taken := target.TakeDamage(damage)
	return Result{
		Damage: taken,
		Killed: !target.IsAlive(),
	}
}
