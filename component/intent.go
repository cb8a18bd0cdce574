package component

import "github.com/oakmund/tilerpg/core"

// Action intents live for at most one turn: decision logic attaches them,
// the matching resolution system consumes and removes them. An entity
// carries at most one intent of each kind per turn.

// WantsToMove requests a step to an adjacent tile.
type WantsToMove struct {
	NewPos Position
}

// BreakAction requests breaking the targeted terrain entity.
type BreakAction struct {
	Target core.Entity
}

// AttackAction requests striking the targeted being.
type AttackAction struct {
	Target core.Entity
}

// PickupAction requests moving the targeted item into the actor's backpack.
type PickupAction struct {
	Item core.Entity
}

// FishAction requests starting a fishing attempt at the target tile, or,
// while a fish is on the line, reeling it in.
type FishAction struct {
	Target Position
}

// CancelAction abandons the actor's bound activity with no reward.
type CancelAction struct{}
