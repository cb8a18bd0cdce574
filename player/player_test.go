package player

import (
	"testing"

	"github.com/gdamore/tcell/v2"

	"github.com/oakmund/tilerpg/component"
	"github.com/oakmund/tilerpg/core"
	"github.com/oakmund/tilerpg/engine"
)

func newInputWorld(t *testing.T) (*engine.World, core.Entity, *engine.TileIndex) {
	t.Helper()
	w := engine.NewWorld()
	p := w.CreateEntity()
	w.Components.Position.Set(p, component.NewPosition(4, 4))

	index := engine.NewTileIndex(10, 10)
	engine.AddResource(w.Resources, index)
	engine.AddResource(w.Resources, engine.NewMessageLog())
	engine.AddResource(w.Resources, &engine.PlayerResource{Entity: p})
	return w, p, index
}

func key(r rune) *tcell.EventKey {
	return tcell.NewEventKey(tcell.KeyRune, r, tcell.ModNone)
}

func TestCollectWithoutInputWaits(t *testing.T) {
	w, _, _ := newInputWorld(t)
	c := NewController()

	resp := c.Collect(w)
	if resp.Kind != engine.ResponseWaiting {
		t.Fatalf("response = %v; want waiting", resp.Kind)
	}
}

func TestArrowKeyBecomesMoveIntent(t *testing.T) {
	w, p, _ := newInputWorld(t)
	c := NewController()
	c.HandleKey(tcell.NewEventKey(tcell.KeyRight, 0, tcell.ModNone))

	resp := c.Collect(w)
	if resp.Kind != engine.ResponseTurnAdvance {
		t.Fatalf("response = %v; want turn advance", resp.Kind)
	}
	move, ok := w.Components.WantsToMove.Get(p)
	if !ok || move.NewPos != (component.Position{X: 5, Y: 4}) {
		t.Fatalf("move intent = %+v, %v", move, ok)
	}
}

func TestStepIntoBreakableBecomesBreakIntent(t *testing.T) {
	w, p, index := newInputWorld(t)

	rock := w.CreateEntity()
	index.SetBreakable(component.NewPosition(5, 4), rock, component.ToolPickaxe)

	c := NewController()
	c.HandleKey(key('l'))

	resp := c.Collect(w)
	if resp.Kind != engine.ResponseTurnAdvance {
		t.Fatalf("response = %v; want turn advance", resp.Kind)
	}
	action, ok := w.Components.BreakAction.Get(p)
	if !ok || action.Target != rock {
		t.Fatalf("break intent = %+v, %v", action, ok)
	}
	if w.Components.WantsToMove.Has(p) {
		t.Fatal("breakable step also produced a move intent")
	}
}

func TestStepIntoMonsterBecomesAttackIntent(t *testing.T) {
	w, p, index := newInputWorld(t)
	cs := &w.Components

	dest := component.NewPosition(5, 4)
	monster := w.CreateEntity()
	cs.Position.Set(monster, dest)
	cs.Monster.Set(monster, component.Monster{})
	cs.Health.Set(monster, component.NewHealthStats(4, 0))
	index.AddOccupant(dest, monster)

	c := NewController()
	c.HandleKey(key('l'))

	if resp := c.Collect(w); resp.Kind != engine.ResponseTurnAdvance {
		t.Fatalf("response = %v; want turn advance", resp.Kind)
	}
	action, ok := cs.AttackAction.Get(p)
	if !ok || action.Target != monster {
		t.Fatalf("attack intent = %+v, %v", action, ok)
	}
}

func TestFishKeyBindsToAdjacentWater(t *testing.T) {
	w, p, index := newInputWorld(t)

	pond := component.NewPosition(4, 3)
	index.SetFishable(pond)

	c := NewController()
	c.HandleKey(key('f'))

	resp := c.Collect(w)
	if resp.Kind != engine.ResponseStateChange || resp.Next.Kind != engine.StateActivityBound {
		t.Fatalf("response = %+v; want activity-bound state change", resp)
	}
	action, ok := w.Components.FishAction.Get(p)
	if !ok || action.Target != pond {
		t.Fatalf("fish intent = %+v, %v", action, ok)
	}
}

func TestFishKeyWithoutWaterWaits(t *testing.T) {
	w, p, _ := newInputWorld(t)

	c := NewController()
	c.HandleKey(key('f'))

	if resp := c.Collect(w); resp.Kind != engine.ResponseWaiting {
		t.Fatalf("response = %v; want waiting", resp.Kind)
	}
	if w.Components.FishAction.Has(p) {
		t.Fatal("fish intent without a fishable tile")
	}
}

func TestBoundInputOnlyCatchAndCancel(t *testing.T) {
	w, p, _ := newInputWorld(t)
	cs := &w.Components
	c := NewController()

	// Movement keys are dead while bound.
	c.HandleKey(key('l'))
	c.CollectBound(w)
	if cs.WantsToMove.Has(p) || cs.AttackAction.Has(p) {
		t.Fatal("movement leaked into the bound state")
	}

	c.HandleKey(key('f'))
	c.CollectBound(w)
	if !cs.FishAction.Has(p) {
		t.Fatal("catch intent not attached while bound")
	}

	c.HandleKey(tcell.NewEventKey(tcell.KeyEscape, 0, tcell.ModNone))
	c.CollectBound(w)
	if !cs.CancelAction.Has(p) {
		t.Fatal("cancel intent not attached while bound")
	}
}

func TestWaitKeyAdvancesTurn(t *testing.T) {
	w, p, _ := newInputWorld(t)
	c := NewController()
	c.HandleKey(key('.'))

	if resp := c.Collect(w); resp.Kind != engine.ResponseTurnAdvance {
		t.Fatalf("response = %v; want turn advance", resp.Kind)
	}
	if w.Components.WantsToMove.Has(p) {
		t.Fatal("wait produced a move intent")
	}
}
