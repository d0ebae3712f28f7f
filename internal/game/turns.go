package game

import (
	"context"
	"fmt"
	"time"

	"go.opentelemetry.io/otel/attribute"

	"github.com/samdwyer/delver/internal/combat"
	"github.com/samdwyer/delver/internal/entity"
	"github.com/samdwyer/delver/internal/grid"
	"github.com/samdwyer/delver/internal/telemetry"
)

// huntRadius bounds how far away a creature notices the player,
// measured in king moves. Creatures beyond it stand still.
const huntRadius = 15

// advance resolves one full turn: the player's action followed by one
// action for every creature.
func (g *Game) advance(ctx context.Context, d grid.Direction) {
	if g.state != StateExplore {
		return
	}
	g.message = ""
	g.playerStep(d)
	g.mobTurns(ctx)
	g.turn++
}

// playerStep moves the player one cell, or attacks the creature
// standing there.
func (g *Game) playerStep(d grid.Direction) {
	dest := g.player.Pos.Shift(d, 1)
	if m := g.mobAt(dest); m != nil {
		res := combat.ResolveBump(g.rng, g.player.Attack, m)
		if res.Killed {
			g.message = fmt.Sprintf("You slay the %s.", m.Def.Name)
		} else {
			g.message = fmt.Sprintf("You hit the %s for %d.", m.Def.Name, res.Damage)
		}
		return
	}
	if g.level.Walkable(dest) {
		g.player.Pos = dest
	}
}

// mobAt returns the living creature at p, or nil.
func (g *Game) mobAt(p grid.Pos) *entity.Mob {
	for _, m := range g.mobs {
		if m.IsAlive() && m.Pos == p {
			return m
		}
	}
	return nil
}

// mobTurns gives every living creature within hunting range one step
// toward the player, resolving contact as an attack.
func (g *Game) mobTurns(ctx context.Context) {
	tracer := telemetry.Tracer("game")
	_, span := tracer.Start(ctx, "game.turn")
	defer span.End()

	start := time.Now()
	hunting := 0
	for _, m := range g.mobs {
		if !m.IsAlive() || m.Pos.Distance(g.player.Pos) > huntRadius {
			continue
		}
		hunting++

		mob := m
		occupied := func(p grid.Pos) bool {
			o := g.mobAt(p)
			return o != nil && o != mob
		}
		step, ok := m.Hunt(g.level.Walkable, occupied, g.player.Pos)
		if !ok {
			continue
		}
		if step == g.player.Pos {
			res := combat.ResolveBump(g.rng, m.Def.Attack, g.player)
			g.message = fmt.Sprintf("The %s hits you for %d.", m.Def.Name, res.Damage)
			if res.Killed {
				g.state = StateDead
				g.message = fmt.Sprintf("The %s kills you. Press q to quit.", m.Def.Name)
			}
			continue
		}
		if g.mobAt(step) == nil {
			m.Pos = step
		}
	}

	span.SetAttributes(
		attribute.Int("turn", g.turn),
		attribute.Int("mobs.hunting", hunting),
		attribute.Int64("hunt_us", time.Since(start).Microseconds()),
	)
}

// descend generates the next level down and populates it. The player
// enters at the center of the entry room.
func (g *Game) descend(ctx context.Context) {
	g.level = g.architect.Generate(ctx)
	entry := g.level.Rooms[0].Center()
	if g.player == nil {
		g.player = entity.NewPlayer(entry)
	} else {
		g.player.Pos = entry
	}
	g.mobs = g.spawnMobs()
	g.message = fmt.Sprintf("Welcome to depth %d.", g.architect.Depth())
}

// spawnMobs populates every room except the entry room, skipping some
// at random. Flip alternates between spawns so creatures that end up
// hunting together do not all pick the same route.
func (g *Game) spawnMobs() []*entity.Mob {
	var mobs []*entity.Mob
	for i := 1; i < len(g.level.Rooms); i++ {
		if g.rng.Intn(3) == 0 {
			continue
		}
		def := g.registry.SpawnRandom(g.rng)
		pos, ok := g.level.RandomFloor(g.rng, i)
		if !ok {
			continue
		}
		mobs = append(mobs, entity.NewMob(def, pos, len(mobs)%2 == 1))
	}
	return mobs
}
