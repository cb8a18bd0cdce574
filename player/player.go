package player

import (
	"sync"

	"github.com/gdamore/tcell/v2"

	"github.com/oakmund/tilerpg/component"
	"github.com/oakmund/tilerpg/core"
	"github.com/oakmund/tilerpg/engine"
)

// Controller is the decision/input collaborator: it turns buffered
// terminal key events into at most one turn's worth of intents per tick.
// The core never sees tcell; it only sees the PlayerResponse and the
// intents attached to the player entity.
type Controller struct {
	mu      sync.Mutex
	pending []*tcell.EventKey
}

// NewController creates an empty controller. The host loop feeds key
// events in; the scheduler drains one action per tick.
func NewController() *Controller {
	return &Controller{}
}

// HandleKey buffers a key event from the host loop.
func (c *Controller) HandleKey(ev *tcell.EventKey) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.pending = append(c.pending, ev)
}

func (c *Controller) pop() *tcell.EventKey {
	c.mu.Lock()
	defer c.mu.Unlock()
	if len(c.pending) == 0 {
		return nil
	}
	ev := c.pending[0]
	c.pending = c.pending[1:]
	return ev
}

// Collect implements engine.InputPort for the InGame state.
func (c *Controller) Collect(w *engine.World) engine.PlayerResponse {
	ev := c.pop()
	if ev == nil {
		return engine.PlayerResponse{Kind: engine.ResponseWaiting}
	}

	playerEnt := engine.MustGetResource[*engine.PlayerResource](w.Resources).Entity

	if dx, dy, ok := moveDelta(ev); ok {
		return c.tryMove(w, playerEnt, dx, dy)
	}

	switch {
	case ev.Key() == tcell.KeyRune && ev.Rune() == 'f':
		return c.tryFish(w, playerEnt)
	case ev.Key() == tcell.KeyRune && ev.Rune() == 'g':
		return c.tryPickup(w, playerEnt)
	case ev.Key() == tcell.KeyRune && ev.Rune() == '.':
		// Wait in place; the turn still advances.
		return engine.PlayerResponse{Kind: engine.ResponseTurnAdvance}
	}

	return engine.PlayerResponse{Kind: engine.ResponseWaiting}
}

// CollectBound implements engine.InputPort for the ActivityBound state:
// only catch and cancel intents are meaningful while the player is bound
// to an activity.
func (c *Controller) CollectBound(w *engine.World) {
	ev := c.pop()
	if ev == nil {
		return
	}
	cs := &w.Components
	playerEnt := engine.MustGetResource[*engine.PlayerResource](w.Resources).Entity

	switch {
	case ev.Key() == tcell.KeyRune && ev.Rune() == 'f':
		if pos, ok := cs.Position.Get(playerEnt); ok {
			cs.FishAction.Set(playerEnt, component.FishAction{Target: pos})
		}
	case ev.Key() == tcell.KeyEscape:
		cs.CancelAction.Set(playerEnt, component.CancelAction{})
	}
}

// tryMove resolves a directional key against last turn's index: stepping
// into a breakable becomes a break intent, into a creature an attack,
// otherwise a move.
func (c *Controller) tryMove(w *engine.World, playerEnt core.Entity, dx, dy int) engine.PlayerResponse {
	cs := &w.Components
	index := engine.MustGetResource[*engine.TileIndex](w.Resources)

	pos, ok := cs.Position.Get(playerEnt)
	if !ok {
		return engine.PlayerResponse{Kind: engine.ResponseWaiting}
	}
	dest, ok := pos.Step(dx, dy)
	if !ok {
		return engine.PlayerResponse{Kind: engine.ResponseWaiting}
	}

	if target, _, breakable := index.BreakableAt(dest); breakable {
		cs.BreakAction.Set(playerEnt, component.BreakAction{Target: target})
		return engine.PlayerResponse{Kind: engine.ResponseTurnAdvance}
	}
	for _, occupant := range index.OccupantsAt(dest) {
		if occupant != playerEnt && cs.Health.Has(occupant) && cs.Monster.Has(occupant) {
			cs.AttackAction.Set(playerEnt, component.AttackAction{Target: occupant})
			return engine.PlayerResponse{Kind: engine.ResponseTurnAdvance}
		}
	}

	cs.WantsToMove.Set(playerEnt, component.WantsToMove{NewPos: dest})
	return engine.PlayerResponse{Kind: engine.ResponseTurnAdvance}
}

// tryFish looks for a fishable tile adjacent to the player and, finding
// one, casts and binds the player to the activity.
func (c *Controller) tryFish(w *engine.World, playerEnt core.Entity) engine.PlayerResponse {
	cs := &w.Components
	index := engine.MustGetResource[*engine.TileIndex](w.Resources)

	pos, ok := cs.Position.Get(playerEnt)
	if !ok {
		return engine.PlayerResponse{Kind: engine.ResponseWaiting}
	}
	for _, step := range [][2]int{{0, -1}, {0, 1}, {-1, 0}, {1, 0}} {
		dest, ok := pos.Step(step[0], step[1])
		if !ok || !index.Fishable(dest) {
			continue
		}
		cs.FishAction.Set(playerEnt, component.FishAction{Target: dest})
		return engine.PlayerResponse{
			Kind: engine.ResponseStateChange,
			Next: engine.ActivityBoundState(),
		}
	}

	msgs := engine.MustGetResource[*engine.MessageLog](w.Resources)
	msgs.Log("There is no water to fish here.")
	return engine.PlayerResponse{Kind: engine.ResponseWaiting}
}

// tryPickup targets an item on the player's tile.
func (c *Controller) tryPickup(w *engine.World, playerEnt core.Entity) engine.PlayerResponse {
	cs := &w.Components
	index := engine.MustGetResource[*engine.TileIndex](w.Resources)

	pos, ok := cs.Position.Get(playerEnt)
	if !ok {
		return engine.PlayerResponse{Kind: engine.ResponseWaiting}
	}
	for _, occupant := range index.OccupantsAt(pos) {
		if occupant == playerEnt || !cs.Item.Has(occupant) {
			continue
		}
		cs.PickupAction.Set(playerEnt, component.PickupAction{Item: occupant})
		return engine.PlayerResponse{Kind: engine.ResponseTurnAdvance}
	}

	msgs := engine.MustGetResource[*engine.MessageLog](w.Resources)
	msgs.Log("There is nothing here to pick up.")
	return engine.PlayerResponse{Kind: engine.ResponseWaiting}
}

func moveDelta(ev *tcell.EventKey) (dx, dy int, ok bool) {
	switch ev.Key() {
	case tcell.KeyUp:
		return 0, -1, true
	case tcell.KeyDown:
		return 0, 1, true
	case tcell.KeyLeft:
		return -1, 0, true
	case tcell.KeyRight:
		return 1, 0, true
	}
	if ev.Key() == tcell.KeyRune {
		switch ev.Rune() {
		case 'k':
			return 0, -1, true
		case 'j':
			return 0, 1, true
		case 'h':
			return -1, 0, true
		case 'l':
			return 1, 0, true
		}
	}
	return 0, 0, false
}
