package component

import "fmt"

// Position is an integer tile coordinate. Coordinates are never negative;
// several entities may share a tile.
type Position struct {
	X, Y int
}

// NewPosition builds a position, clamping negatives to zero.
func NewPosition(x, y int) Position {
	if x < 0 {
		x = 0
	}
	if y < 0 {
		y = 0
	}
	return Position{X: x, Y: y}
}

// ToIndex converts the position to a linear tile index for a map of the
// given width.
func (p Position) ToIndex(width int) int {
	return p.Y*width + p.X
}

// PositionFromIndex is the inverse of ToIndex.
func PositionFromIndex(idx, width int) Position {
	return Position{X: idx % width, Y: idx / width}
}

// Step applies a signed delta and reports whether the result stays in the
// non-negative quadrant. Deltas must go through here rather than raw
// arithmetic so a step off the map edge cannot produce a negative
// coordinate.
func (p Position) Step(dx, dy int) (Position, bool) {
	nx, ny := p.X+dx, p.Y+dy
	if nx < 0 || ny < 0 {
		return p, false
	}
	return Position{X: nx, Y: ny}, true
}

func (p Position) String() string {
	return fmt.Sprintf("X:%d Y:%d", p.X, p.Y)
}
