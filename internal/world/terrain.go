// Package world provides procedural level generation and map queries.
package world

// Terrain is a single map cell's terrain.
type Terrain rune

const (
	// TerrainWall is impassable rock.
	TerrainWall Terrain = '#'
	// TerrainFloor is open ground.
	TerrainFloor Terrain = '.'
	// TerrainWater is a lake cell; creatures cannot enter it.
	TerrainWater Terrain = '~'
	// TerrainStairs leads down to the next level.
	TerrainStairs Terrain = '>'
)

// Walkable reports whether creatures can stand on the terrain.
func (t Terrain) Walkable() bool {
	return t == TerrainFloor || t == TerrainStairs
}

// Rune returns the terrain's display character.
func (t Terrain) Rune() rune {
	return rune(t)
}
