package game

import (
	"context"
	"math/rand"
	"testing"

	"github.com/samdwyer/delver/internal/entity"
	"github.com/samdwyer/delver/internal/gamedata"
	"github.com/samdwyer/delver/internal/grid"
	"github.com/samdwyer/delver/internal/world"
)

var testMobDef = &gamedata.MobDef{
	ID:     "rat",
	Name:   "rat",
	Glyph:  "r",
	HP:     4,
	Attack: 1,
}

// makeLevel builds a level from rows of '#' (wall) and '.' (floor).
func makeLevel(rows []string) *world.Level {
	l := &world.Level{
		Width:  len(rows[0]),
		Height: len(rows),
	}
	l.Tiles = make([][]world.Terrain, l.Height)
	for y, row := range rows {
		l.Tiles[y] = make([]world.Terrain, l.Width)
		for x, ch := range row {
			if ch == '#' {
				l.Tiles[y][x] = world.TerrainWall
			} else {
				l.Tiles[y][x] = world.TerrainFloor
			}
		}
	}
	return l
}

func newTestGame(level *world.Level, playerPos grid.Pos) *Game {
	return &Game{
		rng:    rand.New(rand.NewSource(1)),
		level:  level,
		player: entity.NewPlayer(playerPos),
		state:  StateExplore,
	}
}

func TestDescendPopulatesLevel(t *testing.T) {
	g := &Game{
		architect: world.NewArchitect(7),
		registry:  gamedata.MustLoadMobRegistry(),
		rng:       rand.New(rand.NewSource(8)),
		state:     StateExplore,
	}
	g.descend(context.Background())

	if g.level == nil {
		t.Fatal("descend left no level")
	}
	if got, want := g.player.Pos, g.level.Rooms[0].Center(); got != want {
		t.Errorf("player at %v, want entry room center %v", got, want)
	}
	for _, m := range g.mobs {
		if !g.level.Walkable(m.Pos) {
			t.Errorf("mob %s spawned on unwalkable cell %v", m.Def.Name, m.Pos)
		}
		if g.level.Rooms[0].Contains(m.Pos) {
			t.Errorf("mob %s spawned in the entry room at %v", m.Def.Name, m.Pos)
		}
	}
}

func TestDescendAdvancesDepth(t *testing.T) {
	g := &Game{
		architect: world.NewArchitect(7),
		registry:  gamedata.MustLoadMobRegistry(),
		rng:       rand.New(rand.NewSource(8)),
		state:     StateExplore,
	}
	g.descend(context.Background())
	first := g.level
	g.descend(context.Background())
	if g.architect.Depth() != 2 {
		t.Errorf("depth %d after two descents, want 2", g.architect.Depth())
	}
	if g.level == first {
		t.Error("second descent reused the previous level")
	}
	if got, want := g.player.Pos, g.level.Rooms[0].Center(); got != want {
		t.Errorf("player at %v after descent, want %v", got, want)
	}
}

func TestPlayerStepBlockedByWall(t *testing.T) {
	level := makeLevel([]string{
		"###",
		"#.#",
		"###",
	})
	g := newTestGame(level, grid.Pos{X: 1, Y: 1})
	g.playerStep(grid.North)
	if g.player.Pos != (grid.Pos{X: 1, Y: 1}) {
		t.Errorf("player moved into a wall, now at %v", g.player.Pos)
	}
}

func TestPlayerStepMoves(t *testing.T) {
	level := makeLevel([]string{
		"#####",
		"#...#",
		"#####",
	})
	g := newTestGame(level, grid.Pos{X: 1, Y: 1})
	g.playerStep(grid.East)
	if g.player.Pos != (grid.Pos{X: 2, Y: 1}) {
		t.Errorf("player at %v, want {2 1}", g.player.Pos)
	}
}

func TestPlayerBumpAttack(t *testing.T) {
	level := makeLevel([]string{
		"#####",
		"#...#",
		"#####",
	})
	g := newTestGame(level, grid.Pos{X: 1, Y: 1})
	mob := entity.NewMob(testMobDef, grid.Pos{X: 2, Y: 1}, false)
	g.mobs = []*entity.Mob{mob}

	g.playerStep(grid.East)
	if g.player.Pos != (grid.Pos{X: 1, Y: 1}) {
		t.Errorf("player moved onto the creature, now at %v", g.player.Pos)
	}
	if mob.HP >= testMobDef.HP {
		t.Errorf("creature hp %d after a hit, want below %d", mob.HP, testMobDef.HP)
	}
	if g.message == "" {
		t.Error("attack produced no message")
	}
}

func TestMobTurnsApproach(t *testing.T) {
	level := makeLevel([]string{
		"#######",
		"#.....#",
		"#######",
	})
	g := newTestGame(level, grid.Pos{X: 1, Y: 1})
	mob := entity.NewMob(testMobDef, grid.Pos{X: 5, Y: 1}, false)
	g.mobs = []*entity.Mob{mob}

	before := mob.Pos.Distance(g.player.Pos)
	g.mobTurns(context.Background())
	after := mob.Pos.Distance(g.player.Pos)
	if after >= before {
		t.Errorf("creature distance %d after its turn, was %d", after, before)
	}
}

func TestMobTurnsAttackAndKill(t *testing.T) {
	level := makeLevel([]string{
		"#####",
		"#...#",
		"#####",
	})
	g := newTestGame(level, grid.Pos{X: 1, Y: 1})
	g.player.HP = 1
	mob := entity.NewMob(testMobDef, grid.Pos{X: 2, Y: 1}, false)
	g.mobs = []*entity.Mob{mob}

	g.mobTurns(context.Background())
	if g.player.IsAlive() {
		t.Fatalf("player at 1 hp survived a hit, hp now %d", g.player.HP)
	}
	if g.state != StateDead {
		t.Errorf("state %v after player death, want %v", g.state, StateDead)
	}
	if mob.Pos != (grid.Pos{X: 2, Y: 1}) {
		t.Errorf("creature moved onto the player, now at %v", mob.Pos)
	}
}

func TestAdvanceIgnoredWhenDead(t *testing.T) {
	level := makeLevel([]string{
		"#####",
		"#...#",
		"#####",
	})
	g := newTestGame(level, grid.Pos{X: 1, Y: 1})
	g.state = StateDead
	g.advance(context.Background(), grid.East)
	if g.player.Pos != (grid.Pos{X: 1, Y: 1}) {
		t.Errorf("dead player moved to %v", g.player.Pos)
	}
	if g.turn != 0 {
		t.Errorf("turn advanced to %d while dead", g.turn)
	}
}

func TestMobsOutsideRadiusStandStill(t *testing.T) {
	rows := make([]string, 3)
	rows[0] = "######################"
	rows[1] = "#....................#"
	rows[2] = "######################"
	level := makeLevel(rows)
	g := newTestGame(level, grid.Pos{X: 1, Y: 1})
	mob := entity.NewMob(testMobDef, grid.Pos{X: 20, Y: 1}, false)
	g.mobs = []*entity.Mob{mob}

	g.mobTurns(context.Background())
	if mob.Pos != (grid.Pos{X: 20, Y: 1}) {
		t.Errorf("creature %d cells away moved to %v", 19, mob.Pos)
	}
}
