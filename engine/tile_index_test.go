package engine

import (
	"testing"

	"github.com/oakmund/tilerpg/component"
	"github.com/oakmund/tilerpg/core"
)

func TestTileIndexOffMapReads(t *testing.T) {
	ti := NewTileIndex(4, 4)

	off := component.Position{X: 9, Y: 9}
	if !ti.Blocked(off) {
		t.Fatal("off-map tile must block movement")
	}
	if ti.Fishable(off) {
		t.Fatal("off-map tile reported fishable")
	}
	if _, _, ok := ti.BreakableAt(off); ok {
		t.Fatal("off-map tile reported breakable")
	}
	if occ := ti.OccupantsAt(off); occ != nil {
		t.Fatalf("off-map occupants = %v; want nil", occ)
	}
}

func TestTileIndexFacts(t *testing.T) {
	ti := NewTileIndex(8, 8)
	pos := component.Position{X: 2, Y: 3}

	ti.SetBlocked(pos)
	ti.SetFishable(pos)
	ti.SetBreakable(pos, 42, component.ToolPickaxe)

	if !ti.Blocked(pos) || !ti.Fishable(pos) {
		t.Fatal("set facts not readable")
	}
	target, by, ok := ti.BreakableAt(pos)
	if !ok || target != 42 || by != component.ToolPickaxe {
		t.Fatalf("BreakableAt = %d, %v, %v", target, by, ok)
	}

	ti.Reset()
	if ti.Blocked(pos) || ti.Fishable(pos) {
		t.Fatal("Reset left facts behind")
	}
	if _, _, ok := ti.BreakableAt(pos); ok {
		t.Fatal("Reset left a breakable fact behind")
	}
}

func TestTileIndexOccupancyCapacity(t *testing.T) {
	ti := NewTileIndex(4, 4)
	pos := component.Position{X: 1, Y: 1}

	for i := 0; i < MaxOccupantsPerTile; i++ {
		if !ti.AddOccupant(pos, core.Entity(i+1)) {
			t.Fatalf("AddOccupant rejected entity %d below capacity", i+1)
		}
	}
	if ti.AddOccupant(pos, 99) {
		t.Fatal("AddOccupant accepted an entity beyond capacity")
	}

	occ := ti.OccupantsAt(pos)
	if len(occ) != MaxOccupantsPerTile {
		t.Fatalf("len(occupants) = %d; want %d", len(occ), MaxOccupantsPerTile)
	}
	// Returned slice is a copy; mutating it must not corrupt the cell.
	occ[0] = 99
	if ti.OccupantsAt(pos)[0] == 99 {
		t.Fatal("OccupantsAt exposed internal storage")
	}
}
