package systems

// Continuous-system priorities. The ordering is a correctness contract:
// the index rebuild completes before any resolution system consumes it,
// intents resolve before damage is applied, deletion conditions evaluate
// after all resolution, and the scheduler's end-of-frame pass runs last.
const (
	PriorityIndexReset     = 10
	PriorityIndexBlocking  = 11
	PriorityIndexBreakable = 12
	PriorityIndexFishable  = 13

	PriorityFishingSetup = 20
	PriorityFishingWait  = 21
	PriorityFishingCatch = 22

	PriorityMovement = 30
	PriorityPickup   = 31

	PriorityTileDestruction = 40
	PriorityAttack          = 41
	PriorityDamage          = 45
	PriorityRemoveDead      = 46

	PriorityAnimationSpawn  = 50
	PriorityDeleteCondition = 60
)

// Response-system priorities (NPC turns).
const (
	PriorityRandomWalk = 10
	PriorityGoalMove   = 11
)
