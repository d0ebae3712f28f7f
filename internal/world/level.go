package world

import (
	"math/rand"

	"github.com/cespare/xxhash/v2"

	"github.com/samdwyer/delver/internal/grid"
)

// Level is one generated floor of the dungeon. The terrain is fixed
// once generated; creatures track their own positions.
type Level struct {
	Width  int
	Height int
	Tiles  [][]Terrain
	Rooms  []Room

	stairs grid.Pos
}

func newLevel(width, height int) *Level {
	tiles := make([][]Terrain, height)
	for y := range tiles {
		tiles[y] = make([]Terrain, width)
		for x := range tiles[y] {
			tiles[y][x] = TerrainWall
		}
	}
	return &Level{Width: width, Height: height, Tiles: tiles}
}

// At returns the terrain at p. Out-of-bounds positions read as wall.
func (l *Level) At(p grid.Pos) Terrain {
	if p.X < 0 || p.X >= l.Width || p.Y < 0 || p.Y >= l.Height {
		return TerrainWall
	}
	return l.Tiles[p.Y][p.X]
}

// Walkable reports whether creatures can occupy p. It is false for
// every out-of-bounds position, which keeps path searches bounded.
func (l *Level) Walkable(p grid.Pos) bool {
	return l.At(p).Walkable()
}

// Stairs returns the position of the downward stairs.
func (l *Level) Stairs() grid.Pos {
	return l.stairs
}

// RoomIndexAt returns the index of the room containing p, or -1.
func (l *Level) RoomIndexAt(p grid.Pos) int {
	for i, room := range l.Rooms {
		if room.Contains(p) {
			return i
		}
	}
	return -1
}

// RandomFloor returns a random walkable cell within the given room.
// The second return is false when the room index is out of range or no
// walkable cell was found.
func (l *Level) RandomFloor(rng *rand.Rand, roomIndex int) (grid.Pos, bool) {
	if roomIndex < 0 || roomIndex >= len(l.Rooms) {
		return grid.Pos{}, false
	}
	room := l.Rooms[roomIndex]
	for i := 0; i < 100; i++ {
		p := grid.Pos{
			X: room.X + rng.Intn(room.Width),
			Y: room.Y + rng.Intn(room.Height),
		}
		if l.Walkable(p) {
			return p, true
		}
	}
	if c := room.Center(); l.Walkable(c) {
		return c, true
	}
	return grid.Pos{}, false
}

// Fingerprint returns a hash of the terrain, used to confirm that a
// seed reproduces the same layout.
func (l *Level) Fingerprint() uint64 {
	h := xxhash.New()
	row := make([]byte, l.Width)
	for y := 0; y < l.Height; y++ {
		for x := 0; x < l.Width; x++ {
			row[x] = byte(l.Tiles[y][x])
		}
		h.Write(row)
	}
	return h.Sum64()
}
