package systems

import (
	"testing"
	"time"

	"github.com/oakmund/tilerpg/component"
	"github.com/oakmund/tilerpg/core"
	"github.com/oakmund/tilerpg/engine"
)

func TestAnimationRequestsSpawnAsEntities(t *testing.T) {
	w, _ := newTestWorld(t, 8, 8)
	cs := &w.Components
	builder := engine.MustGetResource[*TileAnimationBuilder](w.Resources)

	pos := component.NewPosition(2, 2)
	builder.Request(AnimationRequest{
		Pos:    pos,
		Glyph:  'o',
		FG:     core.White,
		Delete: component.DeleteAfter(time.Second),
	})

	before := w.EntityCount()
	spawner := NewTileAnimationSpawner(w)
	spawner.Update()

	if w.EntityCount() != before+1 {
		t.Fatalf("entity count = %d; want %d", w.EntityCount(), before+1)
	}

	var found bool
	for _, e := range cs.DeleteCondition.Entities() {
		if p, ok := cs.Position.Get(e); ok && p == pos && cs.Renderable.Has(e) {
			found = true
		}
	}
	if !found {
		t.Fatal("spawned animation entity missing position, renderable or delete condition")
	}

	// Drained: a second pass spawns nothing.
	spawner.Update()
	if w.EntityCount() != before+1 {
		t.Fatal("requests were not drained")
	}
}
