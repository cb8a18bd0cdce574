package gamemap

import (
	"github.com/oakmund/tilerpg/component"
	"github.com/oakmund/tilerpg/core"
)

// Tile is one cell of terrain. Terrain identity lives here; interactive
// facts (blocking, breakable, fishable) live on entities and are derived
// into the tile index each turn.
type Tile struct {
	Glyph rune
	FG    core.RGB
}

// Terrain variants. Destroyed terrain converts to its ground variant.
func GrassTile() Tile  { return Tile{Glyph: '.', FG: core.GrassTone} }
func WaterTile() Tile  { return Tile{Glyph: '~', FG: core.WaterBlue} }
func RubbleTile() Tile { return Tile{Glyph: ',', FG: core.StoneGray} }

// Map is the terrain resource: a dense grid of tiles plus the width used
// for all coordinate math. Mutated only by the mining resolution when
// terrain is destroyed.
type Map struct {
	Width  int
	Height int
	Tiles  []Tile
}

// New builds a map filled with grass.
func New(width, height int) *Map {
	m := &Map{
		Width:  width,
		Height: height,
		Tiles:  make([]Tile, width*height),
	}
	for i := range m.Tiles {
		m.Tiles[i] = GrassTile()
	}
	return m
}

// InBounds reports whether the position lies on the map.
func (m *Map) InBounds(pos component.Position) bool {
	return pos.X >= 0 && pos.X < m.Width && pos.Y >= 0 && pos.Y < m.Height
}

// Idx converts a position to its linear tile index.
func (m *Map) Idx(pos component.Position) int {
	return pos.ToIndex(m.Width)
}

// TileAt returns the terrain at a position; off-map reads return water so
// nothing renders beyond the edge.
func (m *Map) TileAt(pos component.Position) Tile {
	if !m.InBounds(pos) {
		return WaterTile()
	}
	return m.Tiles[m.Idx(pos)]
}

// SetTile replaces the terrain at a position. No-op off-map.
func (m *Map) SetTile(pos component.Position, t Tile) {
	if m.InBounds(pos) {
		m.Tiles[m.Idx(pos)] = t
	}
}
