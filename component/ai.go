package component

import "github.com/oakmund/tilerpg/core"

// RandomWalkerAI makes the entity wander one tile in a random cardinal
// direction each response.
type RandomWalkerAI struct{}

// GoalMoverAI walks the entity toward the nearest entity whose name is in
// its desire list, one tile per response. Current is the locked target,
// NoEntity until one is found.
type GoalMoverAI struct {
	Current core.Entity
	Desires []Name
}

// NewGoalMover builds a goal mover with no locked target.
func NewGoalMover(desires ...Name) GoalMoverAI {
	return GoalMoverAI{Current: core.NoEntity, Desires: desires}
}
