package systems

import (
	"testing"

	"github.com/oakmund/tilerpg/component"
	"github.com/oakmund/tilerpg/engine"
)

func TestIndexRebuildReflectsCommittedState(t *testing.T) {
	w, _ := newTestWorld(t, 8, 8)
	cs := &w.Components
	index := engine.MustGetResource[*engine.TileIndex](w.Resources)

	pos := component.NewPosition(3, 3)
	wall := w.CreateEntity()
	cs.Position.Set(wall, pos)
	cs.Blocking.Set(wall, component.Blocking{})
	cs.Breakable.Set(wall, component.Breakable{By: component.ToolPickaxe})

	rebuildIndex(w)
	if !index.Blocked(pos) {
		t.Fatal("blocking entity not indexed")
	}
	if target, by, ok := index.BreakableAt(pos); !ok || target != wall || by != component.ToolPickaxe {
		t.Fatalf("BreakableAt = %d, %v, %v", target, by, ok)
	}

	// Destruction lands at maintain; the next rebuild simply never sees
	// the entity.
	w.QueueDestroy(wall)
	w.Maintain()
	rebuildIndex(w)
	if index.Blocked(pos) {
		t.Fatal("destroyed entity still blocks after rebuild")
	}
	if _, _, ok := index.BreakableAt(pos); ok {
		t.Fatal("destroyed entity still breakable after rebuild")
	}
}

func TestIndexOccupancyHoldsEveryPositionedEntity(t *testing.T) {
	w, player := newTestWorld(t, 8, 8)
	cs := &w.Components
	index := engine.MustGetResource[*engine.TileIndex](w.Resources)

	pos := component.NewPosition(2, 2)
	cs.Position.Set(player, pos)

	// Non-blocking, non-interactive entities still occupy their tile.
	pebble := w.CreateEntity()
	cs.Position.Set(pebble, pos)

	rebuildIndex(w)
	occ := index.OccupantsAt(pos)
	if len(occ) != 2 {
		t.Fatalf("len(occupants) = %d; want 2", len(occ))
	}
	if index.Blocked(pos) {
		t.Fatal("tile blocked without any blocking entity")
	}
}

func TestIndexRebuildIsIdempotent(t *testing.T) {
	w, player := newTestWorld(t, 8, 8)
	cs := &w.Components
	index := engine.MustGetResource[*engine.TileIndex](w.Resources)

	pos := component.NewPosition(1, 1)
	cs.Position.Set(player, pos)

	rebuildIndex(w)
	rebuildIndex(w)
	if got := len(index.OccupantsAt(pos)); got != 1 {
		t.Fatalf("occupants after double rebuild = %d; want 1", got)
	}
}
