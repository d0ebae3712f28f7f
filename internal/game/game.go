package game

import (
	"context"
	"math/rand"
	"time"

	"github.com/gdamore/tcell/v2"
	"go.opentelemetry.io/otel/attribute"

	"github.com/samdwyer/delver/internal/entity"
	"github.com/samdwyer/delver/internal/gamedata"
	"github.com/samdwyer/delver/internal/grid"
	"github.com/samdwyer/delver/internal/telemetry"
	"github.com/samdwyer/delver/internal/ui"
	"github.com/samdwyer/delver/internal/world"
)

// Game holds the entire game state.
type Game struct {
	screen    *ui.Screen
	renderer  *ui.Renderer
	architect *world.Architect
	registry  *gamedata.MobRegistry
	rng       *rand.Rand

	level   *world.Level
	player  *entity.Player
	mobs    []*entity.Mob
	state   State
	turn    int
	message string
	running bool
}

// New creates a game instance with an initialized terminal screen.
func New(cfg Config) (*Game, error) {
	screen, err := ui.NewScreen()
	if err != nil {
		return nil, err
	}
	registry, err := gamedata.LoadMobRegistry()
	if err != nil {
		screen.Close()
		return nil, err
	}

	seed := cfg.Seed
	if seed == 0 {
		seed = time.Now().UnixNano()
	}
	return &Game{
		screen:   screen,
		renderer: ui.NewRenderer(screen),
		// The architect owns its own rng; spawning and combat draw
		// from a second stream so they cannot perturb level layouts.
		architect: world.NewArchitect(seed),
		rng:       rand.New(rand.NewSource(seed + 1)),
		registry:  registry,
		state:     StateExplore,
		running:   true,
	}, nil
}

// Run executes the main game loop until the player quits.
func (g *Game) Run(ctx context.Context) error {
	tracer := telemetry.Tracer("game")
	ctx, initSpan := tracer.Start(ctx, "game.init")
	g.descend(ctx)
	initSpan.SetAttributes(
		attribute.Int("level.rooms", len(g.level.Rooms)),
		attribute.Int("mobs", len(g.mobs)),
	)
	initSpan.End()

	for g.running {
		g.renderer.Render(g.level, g.player, g.mobs, g.architect.Depth(), g.turn, g.message)
		g.handleInput(ctx)
	}
	g.screen.Close()
	return nil
}

// Close cleans up game resources.
func (g *Game) Close() {
	if g.screen != nil {
		g.screen.Close()
	}
}

// handleInput processes a single terminal event.
func (g *Game) handleInput(ctx context.Context) {
	switch ev := g.screen.PollEvent().(type) {
	case *tcell.EventKey:
		g.handleKeyEvent(ctx, ev)
	case *tcell.EventResize:
		g.screen.Sync()
	}
}

// handleKeyEvent processes keyboard input: arrows or vi keys to move
// (yubn for diagonals), '>' to descend, q or Escape to quit.
func (g *Game) handleKeyEvent(ctx context.Context, ev *tcell.EventKey) {
	switch ev.Key() {
	case tcell.KeyEscape, tcell.KeyCtrlC:
		g.running = false
		return
	case tcell.KeyUp:
		g.advance(ctx, grid.North)
		return
	case tcell.KeyDown:
		g.advance(ctx, grid.South)
		return
	case tcell.KeyLeft:
		g.advance(ctx, grid.West)
		return
	case tcell.KeyRight:
		g.advance(ctx, grid.East)
		return
	}

	if ev.Key() != tcell.KeyRune {
		return
	}
	switch ev.Rune() {
	case 'q', 'Q':
		g.running = false
	case 'k':
		g.advance(ctx, grid.North)
	case 'u':
		g.advance(ctx, grid.Northeast)
	case 'l':
		g.advance(ctx, grid.East)
	case 'n':
		g.advance(ctx, grid.Southeast)
	case 'j':
		g.advance(ctx, grid.South)
	case 'b':
		g.advance(ctx, grid.Southwest)
	case 'h':
		g.advance(ctx, grid.West)
	case 'y':
		g.advance(ctx, grid.Northwest)
	case '>':
		g.tryDescend(ctx)
	}
}

// tryDescend takes the stairs under the player, if any.
func (g *Game) tryDescend(ctx context.Context) {
	if g.state != StateExplore {
		return
	}
	if g.player.Pos != g.level.Stairs() {
		g.message = "There are no stairs here."
		return
	}
	g.descend(ctx)
}
