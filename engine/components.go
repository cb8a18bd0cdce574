package engine

import (
	"github.com/oakmund/tilerpg/component"
	"github.com/oakmund/tilerpg/core"
)

// removable lets the world wipe an entity out of every store without
// knowing store element types.
type removable interface {
	Remove(e core.Entity)
}

// ComponentStore aggregates one typed store per component. Systems cache
// the fields they touch at construction time; pointers stay valid for the
// lifetime of the world.
type ComponentStore struct {
	// Physical state
	Position   *Store[component.Position]
	Renderable *Store[component.Renderable]
	Name       *Store[component.Name]
	Blocking   *Store[component.Blocking]
	Fishable   *Store[component.Fishable]
	Breakable  *Store[component.Breakable]
	Water      *Store[component.Water]
	Grass      *Store[component.Grass]

	// Being state
	Strength     *Store[component.Strength]
	Health       *Store[component.HealthStats]
	SufferDamage *Store[component.SufferDamage]
	DeathDrop    *Store[component.DeathDrop]
	Tool         *Store[component.Tool]
	Monster      *Store[component.Monster]
	RandomWalker *Store[component.RandomWalkerAI]
	GoalMover    *Store[component.GoalMoverAI]

	// Items
	Item     *Store[component.Item]
	Backpack *Store[component.Backpack]

	// Per-turn intents
	WantsToMove  *Store[component.WantsToMove]
	BreakAction  *Store[component.BreakAction]
	AttackAction *Store[component.AttackAction]
	PickupAction *Store[component.PickupAction]
	FishAction   *Store[component.FishAction]
	CancelAction *Store[component.CancelAction]

	// Multi-turn activity state
	WaitingForFish *Store[component.WaitingForFish]
	FishOnTheLine  *Store[component.FishOnTheLine]

	// Lifecycle
	DeleteCondition  *Store[component.DeleteCondition]
	FinishedActivity *Store[component.FinishedActivity]
}

func newComponentStore() (ComponentStore, []removable) {
	cs := ComponentStore{
		Position:   NewStore[component.Position](),
		Renderable: NewStore[component.Renderable](),
		Name:       NewStore[component.Name](),
		Blocking:   NewStore[component.Blocking](),
		Fishable:   NewStore[component.Fishable](),
		Breakable:  NewStore[component.Breakable](),
		Water:      NewStore[component.Water](),
		Grass:      NewStore[component.Grass](),

		Strength:     NewStore[component.Strength](),
		Health:       NewStore[component.HealthStats](),
		SufferDamage: NewStore[component.SufferDamage](),
		DeathDrop:    NewStore[component.DeathDrop](),
		Tool:         NewStore[component.Tool](),
		Monster:      NewStore[component.Monster](),
		RandomWalker: NewStore[component.RandomWalkerAI](),
		GoalMover:    NewStore[component.GoalMoverAI](),

		Item:     NewStore[component.Item](),
		Backpack: NewStore[component.Backpack](),

		WantsToMove:  NewStore[component.WantsToMove](),
		BreakAction:  NewStore[component.BreakAction](),
		AttackAction: NewStore[component.AttackAction](),
		PickupAction: NewStore[component.PickupAction](),
		FishAction:   NewStore[component.FishAction](),
		CancelAction: NewStore[component.CancelAction](),

		WaitingForFish: NewStore[component.WaitingForFish](),
		FishOnTheLine:  NewStore[component.FishOnTheLine](),

		DeleteCondition:  NewStore[component.DeleteCondition](),
		FinishedActivity: NewStore[component.FinishedActivity](),
	}

	all := []removable{
		cs.Position, cs.Renderable, cs.Name, cs.Blocking, cs.Fishable,
		cs.Breakable, cs.Water, cs.Grass,
		cs.Strength, cs.Health, cs.SufferDamage, cs.DeathDrop, cs.Tool,
		cs.Monster, cs.RandomWalker, cs.GoalMover,
		cs.Item, cs.Backpack,
		cs.WantsToMove, cs.BreakAction, cs.AttackAction, cs.PickupAction,
		cs.FishAction, cs.CancelAction,
		cs.WaitingForFish, cs.FishOnTheLine,
		cs.DeleteCondition, cs.FinishedActivity,
	}
	return cs, all
}
