package world

import (
	"context"
	"fmt"
	"math/rand"
	"time"

	"go.opentelemetry.io/otel/attribute"

	"github.com/samdwyer/delver/internal/grid"
	"github.com/samdwyer/delver/internal/telemetry"
)

const (
	// Default level dimensions.
	DefaultWidth  = 80
	DefaultHeight = 22

	minRoomSize = 5  // smallest room dimension
	maxRoomSize = 11 // largest room dimension
	minLeafSize = 7  // smallest BSP partition before splitting stops

	lakeChance   = 2  // one in lakeChance rooms gets a lake
	lakeWalkLen  = 14 // steps of the lake random walk
	lakeMinWidth = 7  // rooms narrower than this stay dry
)

// Architect generates levels. It owns its own rng so that unrelated
// random effects cannot perturb the layout sequence for a given seed.
type Architect struct {
	rng   *rand.Rand
	depth int
}

// NewArchitect creates an architect seeded for a reproducible run of
// levels.
func NewArchitect(seed int64) *Architect {
	return &Architect{rng: rand.New(rand.NewSource(seed))}
}

// Depth returns the number of levels generated so far.
func (a *Architect) Depth() int {
	return a.depth
}

// Generate builds the next level down: BSP rooms joined by corridors,
// lakes inside the larger rooms, and stairs in the room farthest from
// the entry room. The entry room is always Rooms[0].
func (a *Architect) Generate(ctx context.Context) *Level {
	tracer := telemetry.Tracer("world")
	_, span := tracer.Start(ctx, "level.generate")
	defer span.End()

	start := time.Now()
	a.depth++

	l := newLevel(DefaultWidth, DefaultHeight)
	var leaves []partition
	a.split(partition{x: 1, y: 1, w: l.Width - 2, h: l.Height - 2}, &leaves)
	for _, leaf := range leaves {
		a.carveRoom(l, leaf)
	}
	for i := 1; i < len(l.Rooms); i++ {
		a.carveCorridor(l, l.Rooms[i-1].Center(), l.Rooms[i].Center())
	}
	lakeCells := a.addLakes(l)
	a.placeStairs(l)

	span.SetAttributes(
		attribute.Int("level.depth", a.depth),
		attribute.Int("level.rooms", len(l.Rooms)),
		attribute.Int("level.lake_cells", lakeCells),
		attribute.String("level.fingerprint", fmt.Sprintf("%016x", l.Fingerprint())),
		attribute.Int64("level.generation_ms", time.Since(start).Milliseconds()),
	)
	return l
}

// partition is a node of the BSP subdivision.
type partition struct {
	x, y, w, h int
}

// split recursively subdivides p and appends the leaf partitions.
func (a *Architect) split(p partition, leaves *[]partition) {
	canVertical := p.w >= minLeafSize*2
	canHorizontal := p.h >= minLeafSize*2
	if !canVertical && !canHorizontal {
		*leaves = append(*leaves, p)
		return
	}

	// Split across the longer axis so rooms stay roughly square.
	vertical := canVertical
	if canVertical && canHorizontal {
		vertical = p.w >= p.h
	}
	if vertical {
		at := minLeafSize + a.rng.Intn(p.w-minLeafSize*2+1)
		a.split(partition{x: p.x, y: p.y, w: at, h: p.h}, leaves)
		a.split(partition{x: p.x + at, y: p.y, w: p.w - at, h: p.h}, leaves)
	} else {
		at := minLeafSize + a.rng.Intn(p.h-minLeafSize*2+1)
		a.split(partition{x: p.x, y: p.y, w: p.w, h: at}, leaves)
		a.split(partition{x: p.x, y: p.y + at, w: p.w, h: p.h - at}, leaves)
	}
}

// carveRoom places one room inside the leaf partition and floors it.
func (a *Architect) carveRoom(l *Level, leaf partition) {
	maxW := min(maxRoomSize, leaf.w-2)
	maxH := min(maxRoomSize, leaf.h-2)
	if maxW < minRoomSize || maxH < minRoomSize {
		return
	}
	room := Room{
		Width:  minRoomSize + a.rng.Intn(maxW-minRoomSize+1),
		Height: minRoomSize + a.rng.Intn(maxH-minRoomSize+1),
	}
	room.X = leaf.x + 1 + a.rng.Intn(leaf.w-room.Width-1)
	room.Y = leaf.y + 1 + a.rng.Intn(leaf.h-room.Height-1)
	for y := room.Y; y < room.Y+room.Height; y++ {
		for x := room.X; x < room.X+room.Width; x++ {
			l.Tiles[y][x] = TerrainFloor
		}
	}
	l.Rooms = append(l.Rooms, room)
}

// carveCorridor joins two cells with an L-shaped tunnel, choosing the
// bend direction at random.
func (a *Architect) carveCorridor(l *Level, from, to grid.Pos) {
	if a.rng.Intn(2) == 0 {
		a.carveRun(l, from.X, to.X, from.Y, true)
		a.carveRun(l, from.Y, to.Y, to.X, false)
	} else {
		a.carveRun(l, from.Y, to.Y, from.X, false)
		a.carveRun(l, from.X, to.X, to.Y, true)
	}
}

// carveRun floors a straight run from a to b along one axis; fixed is
// the coordinate on the other axis.
func (a *Architect) carveRun(l *Level, from, to, fixed int, horizontal bool) {
	if from > to {
		from, to = to, from
	}
	for i := from; i <= to; i++ {
		x, y := i, fixed
		if !horizontal {
			x, y = fixed, i
		}
		if x > 0 && x < l.Width-1 && y > 0 && y < l.Height-1 {
			if l.Tiles[y][x] == TerrainWall {
				l.Tiles[y][x] = TerrainFloor
			}
		}
	}
}

// addLakes grows a water blob inside some of the wider rooms and
// returns the number of cells flooded. Water is confined to the strict
// interior of a room and kept off the center column, so the border
// ring and the path from the ring to the room center always stay
// walkable.
func (a *Architect) addLakes(l *Level) int {
	flooded := 0
	for _, room := range l.Rooms {
		if room.Width < lakeMinWidth || a.rng.Intn(lakeChance) != 0 {
			continue
		}
		center := room.Center()
		// One side of the center column, picked at random.
		side := 1
		if a.rng.Intn(2) == 0 {
			side = -1
		}
		allowed := func(p grid.Pos) bool {
			if !room.InteriorContains(p) {
				return false
			}
			return (p.X-center.X)*side > 1
		}
		cursor := grid.Pos{X: center.X + side*2, Y: center.Y}
		for i := 0; i < lakeWalkLen; i++ {
			if allowed(cursor) && l.Tiles[cursor.Y][cursor.X] == TerrainFloor {
				l.Tiles[cursor.Y][cursor.X] = TerrainWater
				flooded++
			}
			d := grid.Directions[a.rng.Intn(len(grid.Directions))]
			cursor = cursor.Shift(d, 1)
		}
	}
	return flooded
}

// placeStairs puts the downward stairs at the center of the room
// farthest from the entry room.
func (a *Architect) placeStairs(l *Level) {
	if len(l.Rooms) == 0 {
		return
	}
	entry := l.Rooms[0].Center()
	best := 0
	bestDist := -1
	for i, room := range l.Rooms {
		if d := room.Center().Distance(entry); d > bestDist {
			best, bestDist = i, d
		}
	}
	stairs := l.Rooms[best].Center()
	l.Tiles[stairs.Y][stairs.X] = TerrainStairs
	l.stairs = stairs
}
