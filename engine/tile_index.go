package engine

import (
	"github.com/oakmund/tilerpg/component"
	"github.com/oakmund/tilerpg/core"
)

// MaxOccupantsPerTile bounds the dense occupancy cell. 7 entities plus
// the count byte keeps a cell in a single 64-byte cache line.
const MaxOccupantsPerTile = 7

// occupancyCell is a fixed-capacity entity list for one tile.
type occupancyCell struct {
	count    uint8
	_        [7]byte
	entities [MaxOccupantsPerTile]core.Entity
}

// breakableFact records what breaks the terrain entity on a tile.
type breakableFact struct {
	target core.Entity
	by     component.ToolType
	ok     bool
}

// TileIndex is the per-turn spatial read-model: which tiles block, which
// are breakable and by what tool, which are fishable, and which entities
// stand where. It is fully rebuilt by the indexing systems at the start
// of every turn and never patched incrementally, so facts read during a
// turn always describe the state committed at the end of the previous
// turn.
type TileIndex struct {
	width, height int

	blocked   []bool
	fishable  []bool
	breakable []breakableFact
	occupancy []occupancyCell
}

// NewTileIndex allocates an index for a map of the given dimensions.
func NewTileIndex(width, height int) *TileIndex {
	n := width * height
	return &TileIndex{
		width:     width,
		height:    height,
		blocked:   make([]bool, n),
		fishable:  make([]bool, n),
		breakable: make([]breakableFact, n),
		occupancy: make([]occupancyCell, n),
	}
}

// Width returns the indexed map width, for coordinate math.
func (ti *TileIndex) Width() int { return ti.width }

// Height returns the indexed map height.
func (ti *TileIndex) Height() int { return ti.height }

// InBounds reports whether a position lies on the indexed map.
func (ti *TileIndex) InBounds(pos component.Position) bool {
	return pos.X >= 0 && pos.X < ti.width && pos.Y >= 0 && pos.Y < ti.height
}

// Reset clears all four structures for this turn's rebuild.
func (ti *TileIndex) Reset() {
	for i := range ti.blocked {
		ti.blocked[i] = false
		ti.fishable[i] = false
		ti.breakable[i] = breakableFact{}
		ti.occupancy[i] = occupancyCell{}
	}
}

// SetBlocked marks a tile as movement-blocking.
func (ti *TileIndex) SetBlocked(pos component.Position) {
	if ti.InBounds(pos) {
		ti.blocked[pos.ToIndex(ti.width)] = true
	}
}

// Blocked reports whether any blocking entity occupies the tile. Tiles
// off the map always block.
func (ti *TileIndex) Blocked(pos component.Position) bool {
	if !ti.InBounds(pos) {
		return true
	}
	return ti.blocked[pos.ToIndex(ti.width)]
}

// SetBreakable records the terrain entity on a tile and the tool that
// breaks it.
func (ti *TileIndex) SetBreakable(pos component.Position, target core.Entity, by component.ToolType) {
	if ti.InBounds(pos) {
		ti.breakable[pos.ToIndex(ti.width)] = breakableFact{target: target, by: by, ok: true}
	}
}

// BreakableAt returns the breakable terrain entity on a tile and its
// required tool. ok is false for unbreakable tiles.
func (ti *TileIndex) BreakableAt(pos component.Position) (target core.Entity, by component.ToolType, ok bool) {
	if !ti.InBounds(pos) {
		return core.NoEntity, component.ToolHand, false
	}
	f := ti.breakable[pos.ToIndex(ti.width)]
	return f.target, f.by, f.ok
}

// SetFishable marks a tile as a valid fishing target.
func (ti *TileIndex) SetFishable(pos component.Position) {
	if ti.InBounds(pos) {
		ti.fishable[pos.ToIndex(ti.width)] = true
	}
}

// Fishable reports whether a fishing action may start at the tile.
func (ti *TileIndex) Fishable(pos component.Position) bool {
	if !ti.InBounds(pos) {
		return false
	}
	return ti.fishable[pos.ToIndex(ti.width)]
}

// AddOccupant inserts an entity into the tile's occupancy cell. Returns
// false when the cell is full or the position is off-map; the entity
// still exists, it just is not enumerable this turn.
func (ti *TileIndex) AddOccupant(pos component.Position, e core.Entity) bool {
	if !ti.InBounds(pos) {
		return false
	}
	cell := &ti.occupancy[pos.ToIndex(ti.width)]
	if cell.count >= MaxOccupantsPerTile {
		return false
	}
	cell.entities[cell.count] = e
	cell.count++
	return true
}

// OccupantsAt returns a copy of the entities present on a tile.
func (ti *TileIndex) OccupantsAt(pos component.Position) []core.Entity {
	if !ti.InBounds(pos) {
		return nil
	}
	cell := &ti.occupancy[pos.ToIndex(ti.width)]
	out := make([]core.Entity, cell.count)
	copy(out, cell.entities[:cell.count])
	return out
}
