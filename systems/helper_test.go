package systems

import (
	"testing"

	"github.com/oakmund/tilerpg/component"
	"github.com/oakmund/tilerpg/content"
	"github.com/oakmund/tilerpg/core"
	"github.com/oakmund/tilerpg/engine"
	"github.com/oakmund/tilerpg/gamemap"
)

const (
	testFishID  = component.ItemID(1)
	testStoneID = component.ItemID(2)
)

// newTestWorld builds a fully resourced world on a small map. The first
// entity created is registered as the player.
func newTestWorld(t *testing.T, width, height int) (*engine.World, core.Entity) {
	t.Helper()
	w := engine.NewWorld()
	player := w.CreateEntity()

	engine.AddResource(w.Resources, gamemap.New(width, height))
	engine.AddResource(w.Resources, engine.NewTileIndex(width, height))
	engine.AddResource(w.Resources, &engine.TimeResource{})
	engine.AddResource(w.Resources, engine.NewMessageLog())
	engine.AddResource(w.Resources, NewTileAnimationBuilder())
	engine.AddResource(w.Resources, engine.NewLogResource(nil))
	engine.AddResource(w.Resources, &engine.PlayerResource{Entity: player})
	return w, player
}

// rebuildIndex runs the full indexing pass, as the scheduler would at the
// start of a turn.
func rebuildIndex(w *engine.World) {
	for _, sys := range IndexSystems(w) {
		sys.Update()
	}
}

func testDB(t *testing.T) *content.EntityDB {
	t.Helper()
	db, err := content.Parse(`
[[being]]
identifier = 1
name = "Bahhhby"
glyph = "b"
blocking = true
monster = true
ai = "random_walk"
strength = 1
health = { max_hp = 4, defense = 0 }
`, `
[[item]]
identifier = 1
name = "Raw Fish"
glyph = "%"
pickup_text = "You stuff the fish into your backpack."

[[item]]
identifier = 2
name = "Stone"
glyph = "*"
pickup_text = "You pocket the stone."
`)
	if err != nil {
		t.Fatalf("parse test tables: %v", err)
	}
	return db
}
