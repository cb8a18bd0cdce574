package core

// RGB is a plain 24-bit color. Components carry these instead of a
// terminal library type so the simulation stays independent of the
// rendering collaborator.
type RGB struct {
	R, G, B uint8
}

// Palette entries used by content defaults and debug spawns.
var (
	White     = RGB{255, 255, 255}
	Black     = RGB{0, 0, 0}
	StoneGray = RGB{140, 140, 140}
	WaterBlue = RGB{60, 120, 220}
	GrassTone = RGB{70, 160, 70}
)
