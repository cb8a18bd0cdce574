package systems

import (
	"math/rand"

	"github.com/oakmund/tilerpg/component"
	"github.com/oakmund/tilerpg/core"
	"github.com/oakmund/tilerpg/engine"
)

// Response systems give NPCs their turn. They run only when the player
// advances a turn, or on the response-delay timer while the player is
// activity-bound. Moves apply directly against the current blocking
// index rather than through intents, so an NPC step never straddles two
// turns.

var cardinalSteps = [4][2]int{{0, -1}, {0, 1}, {-1, 0}, {1, 0}}

// RandomWalkerSystem wanders each random-walking being one tile in a
// random cardinal direction.
type RandomWalkerSystem struct {
	world *engine.World
	index *engine.TileIndex
	rng   *rand.Rand
}

func NewRandomWalkerSystem(w *engine.World, rng *rand.Rand) *RandomWalkerSystem {
	return &RandomWalkerSystem{
		world: w,
		index: engine.MustGetResource[*engine.TileIndex](w.Resources),
		rng:   rng,
	}
}

func (s *RandomWalkerSystem) Priority() int { return PriorityRandomWalk }

func (s *RandomWalkerSystem) Update() {
	cs := &s.world.Components
	for _, e := range cs.RandomWalker.Entities() {
		pos, ok := cs.Position.Get(e)
		if !ok {
			continue
		}
		step := cardinalSteps[s.rng.Intn(len(cardinalSteps))]
		next, ok := pos.Step(step[0], step[1])
		if !ok || s.index.Blocked(next) {
			continue
		}
		cs.Position.Set(e, next)
	}
}

// GoalMoverSystem walks each goal-seeking being one tile toward the
// nearest entity whose name matches a desire. A locked target that has
// been destroyed unlocks; the being re-acquires next response.
type GoalMoverSystem struct {
	world *engine.World
	index *engine.TileIndex
}

func NewGoalMoverSystem(w *engine.World) *GoalMoverSystem {
	return &GoalMoverSystem{
		world: w,
		index: engine.MustGetResource[*engine.TileIndex](w.Resources),
	}
}

func (s *GoalMoverSystem) Priority() int { return PriorityGoalMove }

func (s *GoalMoverSystem) Update() {
	cs := &s.world.Components
	for _, e := range cs.GoalMover.Entities() {
		mover, _ := cs.GoalMover.Get(e)
		pos, ok := cs.Position.Get(e)
		if !ok {
			continue
		}

		if mover.Current != core.NoEntity && !s.world.Alive(mover.Current) {
			mover.Current = core.NoEntity
		}
		if mover.Current == core.NoEntity {
			mover.Current = s.acquire(pos, mover.Desires)
			cs.GoalMover.Set(e, mover)
		}
		if mover.Current == core.NoEntity {
			continue
		}

		goal, ok := cs.Position.Get(mover.Current)
		if !ok {
			continue
		}
		next, ok := pos.Step(sign(goal.X-pos.X), sign(goal.Y-pos.Y))
		if !ok || s.index.Blocked(next) {
			continue
		}
		cs.Position.Set(e, next)
	}
}

// acquire finds the closest entity named in desires, by manhattan
// distance.
func (s *GoalMoverSystem) acquire(from component.Position, desires []component.Name) core.Entity {
	cs := &s.world.Components
	best := core.NoEntity
	bestDist := -1

	for _, candidate := range cs.Name.Entities() {
		name, _ := cs.Name.Get(candidate)
		if !nameMatches(name, desires) {
			continue
		}
		pos, ok := cs.Position.Get(candidate)
		if !ok {
			continue
		}
		d := abs(pos.X-from.X) + abs(pos.Y-from.Y)
		if bestDist < 0 || d < bestDist {
			best = candidate
			bestDist = d
		}
	}
	return best
}

func nameMatches(name component.Name, desires []component.Name) bool {
	for _, d := range desires {
		if d.Value == name.Value {
			return true
		}
	}
	return false
}

func sign(v int) int {
	switch {
	case v > 0:
		return 1
	case v < 0:
		return -1
	}
	return 0
}

func abs(v int) int {
	if v < 0 {
		return -v
	}
	return v
}
