package component

import "github.com/oakmund/tilerpg/core"

// Renderable holds the visual attributes the render collaborator reads
// each frame. The simulation never interprets these fields.
type Renderable struct {
	Glyph rune
	FG    core.RGB

	// ZPriority orders draws on a shared tile, higher on top.
	ZPriority int
}

// NewRenderable builds a renderable with the given glyph, color and layer.
func NewRenderable(glyph rune, fg core.RGB, z int) Renderable {
	return Renderable{Glyph: glyph, FG: fg, ZPriority: z}
}
