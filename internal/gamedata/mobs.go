package gamedata

import "github.com/gdamore/tcell/v2"

// MobDef defines a creature type loaded from JSON.
type MobDef struct {
	ID          string `json:"id"`          // unique identifier (e.g. "wolf")
	Name        string `json:"name"`        // display name (e.g. "Wolf")
	Glyph       string `json:"glyph"`       // single character for rendering
	Color       string `json:"color"`       // hex color code (e.g. "#AAAAAA")
	HP          int    `json:"hp"`          // base hit points
	Attack      int    `json:"attack"`      // base attack power
	SpawnWeight int    `json:"spawnWeight"` // relative spawn frequency
}

// GlyphRune returns the glyph as a rune for rendering.
func (d *MobDef) GlyphRune() rune {
	if len(d.Glyph) == 0 {
		return '?'
	}
	return rune(d.Glyph[0])
}

// TCellColor returns the definition's color as a tcell.Color, falling
// back to white when the color string is malformed.
func (d *MobDef) TCellColor() tcell.Color {
	color, err := ParseHexColor(d.Color)
	if err != nil {
		return tcell.ColorWhite
	}
	return color
}

// mobsFile is the structure of mobs.json.
type mobsFile struct {
	Mobs []MobDef `json:"mobs"`
}

// LoadMobs loads creature definitions from the embedded mobs.json.
func LoadMobs() ([]MobDef, error) {
	file, err := Load[mobsFile]("mobs.json")
	if err != nil {
		return nil, err
	}
	return file.Mobs, nil
}
