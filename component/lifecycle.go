package component

import (
	"time"

	"github.com/oakmund/tilerpg/core"
)

// DeleteKind selects the deferred-deletion trigger variant.
type DeleteKind uint8

const (
	// DeleteTimed removes the entity once the remaining duration elapses.
	DeleteTimed DeleteKind = iota

	// DeleteOnActivityFinish removes the entity when the watched entity
	// carries the FinishedActivity marker.
	DeleteOnActivityFinish
)

// DeleteCondition requests deferred deletion of its owner. Evaluated once
// per turn after activity resolution; satisfied deletions take effect for
// the next turn's index build, never mid-turn.
type DeleteCondition struct {
	Kind      DeleteKind
	Remaining time.Duration
	Watched   core.Entity
}

// DeleteAfter builds a timed delete condition.
func DeleteAfter(d time.Duration) DeleteCondition {
	return DeleteCondition{Kind: DeleteTimed, Remaining: d}
}

// DeleteWhenFinished builds an activity-finish delete condition watching
// the given entity.
func DeleteWhenFinished(watched core.Entity) DeleteCondition {
	return DeleteCondition{Kind: DeleteOnActivityFinish, Watched: watched}
}

// FinishedActivity is a one-shot marker meaning the entity completed its
// bound activity this turn. The scheduler reads it to decide state
// transitions; the end-of-frame pass clears it unconditionally.
type FinishedActivity struct{}
