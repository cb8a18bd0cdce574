package systems

import (
	"github.com/oakmund/tilerpg/engine"
)

// MoveSystem consumes move intents against this turn's blocking index.
// A step onto a blocked or off-map tile is rejected silently; the actor
// simply stays put for the turn.
type MoveSystem struct {
	world *engine.World
	index *engine.TileIndex
}

func NewMoveSystem(w *engine.World) *MoveSystem {
	return &MoveSystem{
		world: w,
		index: engine.MustGetResource[*engine.TileIndex](w.Resources),
	}
}

func (s *MoveSystem) Priority() int { return PriorityMovement }

func (s *MoveSystem) Update() {
	cs := &s.world.Components
	for _, e := range cs.WantsToMove.Entities() {
		move, _ := cs.WantsToMove.Get(e)
		cs.WantsToMove.Remove(e)

		if s.index.Blocked(move.NewPos) {
			continue
		}
		cs.Position.Set(e, move.NewPos)
	}
}
