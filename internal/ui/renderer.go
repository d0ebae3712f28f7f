package ui

import (
	"fmt"

	"github.com/gdamore/tcell/v2"

	"github.com/samdwyer/delver/internal/entity"
	"github.com/samdwyer/delver/internal/world"
)

// Renderer draws the level and its inhabitants.
type Renderer struct {
	screen *Screen
}

// NewRenderer creates a renderer for the given screen.
func NewRenderer(screen *Screen) *Renderer {
	return &Renderer{screen: screen}
}

// Render draws one frame: terrain, creatures, the player, the status
// line under the map, and the latest message below that.
func (r *Renderer) Render(level *world.Level, player *entity.Player, mobs []*entity.Mob, depth, turn int, message string) {
	r.screen.Clear()

	for y := 0; y < level.Height; y++ {
		for x := 0; x < level.Width; x++ {
			t := level.Tiles[y][x]
			r.screen.SetContent(x, y, t.Rune(), terrainStyle(t))
		}
	}

	for _, m := range mobs {
		if !m.IsAlive() {
			continue
		}
		style := tcell.StyleDefault.Foreground(m.Color())
		r.screen.SetContent(m.Pos.X, m.Pos.Y, m.Def.GlyphRune(), style)
	}

	playerStyle := tcell.StyleDefault.Foreground(tcell.ColorYellow).Bold(true)
	r.screen.SetContent(player.Pos.X, player.Pos.Y, player.Symbol, playerStyle)

	status := fmt.Sprintf("HP %d/%d  depth %d  turn %d", player.HP, player.MaxHP, depth, turn)
	r.RenderMessage(status, level.Height)
	if message != "" {
		r.RenderMessage(message, level.Height+1)
	}

	r.screen.Show()
}

// RenderMessage writes a line of text at the given row.
func (r *Renderer) RenderMessage(msg string, y int) {
	style := tcell.StyleDefault.Foreground(tcell.ColorWhite)
	for i, ch := range msg {
		r.screen.SetContent(i, y, ch, style)
	}
}

func terrainStyle(t world.Terrain) tcell.Style {
	switch t {
	case world.TerrainWall:
		return tcell.StyleDefault.Foreground(tcell.ColorDarkGray)
	case world.TerrainFloor:
		return tcell.StyleDefault.Foreground(tcell.ColorGray)
	case world.TerrainWater:
		return tcell.StyleDefault.Foreground(tcell.ColorBlue)
	case world.TerrainStairs:
		return tcell.StyleDefault.Foreground(tcell.ColorWhite).Bold(true)
	default:
		return tcell.StyleDefault
	}
}
