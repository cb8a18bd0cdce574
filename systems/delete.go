package systems

import (
	"github.com/oakmund/tilerpg/component"
	"github.com/oakmund/tilerpg/core"
	"github.com/oakmund/tilerpg/engine"
)

// DeleteConditionSystem evaluates deferred-deletion triggers once per
// turn, after activity resolution and before the scheduler reads the
// finished-activity markers the conditions depend on. Satisfied entities
// are queued, not destroyed inline: removal lands at end-of-tick
// maintain, so this turn's iterations stay consistent and the next
// turn's index build simply never sees them.
type DeleteConditionSystem struct {
	world *engine.World
	timer *engine.TimeResource
}

func NewDeleteConditionSystem(w *engine.World) *DeleteConditionSystem {
	return &DeleteConditionSystem{
		world: w,
		timer: engine.MustGetResource[*engine.TimeResource](w.Resources),
	}
}

func (s *DeleteConditionSystem) Priority() int { return PriorityDeleteCondition }

func (s *DeleteConditionSystem) Update() {
	cs := &s.world.Components
	for _, e := range cs.DeleteCondition.Entities() {
		cond, _ := cs.DeleteCondition.Get(e)

		switch cond.Kind {
		case component.DeleteTimed:
			cond.Remaining -= s.timer.Delta
			if cond.Remaining <= 0 {
				s.world.QueueDestroy(e)
			} else {
				cs.DeleteCondition.Set(e, cond)
			}

		case component.DeleteOnActivityFinish:
			// A watched entity that no longer exists can never finish;
			// the watcher goes with it instead of lingering forever.
			if cond.Watched == core.NoEntity || !s.world.Alive(cond.Watched) {
				s.world.QueueDestroy(e)
				continue
			}
			if cs.FinishedActivity.Has(cond.Watched) {
				s.world.QueueDestroy(e)
			}
		}
	}
}
