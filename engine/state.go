package engine

import "time"

// StateKind enumerates the scheduler's top-level states.
type StateKind uint8

const (
	// StateInMenu is reserved for menu navigation; the scheduler
	// recognizes it but runs nothing there yet.
	StateInMenu StateKind = iota

	// StateInGame is the normal turn-taking state.
	StateInGame

	// StateActivityBound suspends turn-taking while the player is locked
	// into an activity (fishing). NPCs respond on a delay timer instead
	// of on player turns.
	StateActivityBound
)

func (k StateKind) String() string {
	switch k {
	case StateInMenu:
		return "InMenu"
	case StateInGame:
		return "InGame"
	case StateActivityBound:
		return "ActivityBound"
	}
	return "Unknown"
}

// AppState is the scheduler's state value. It is read once at the start
// of a tick and committed once at the end; a transition requested
// mid-tick takes effect on the following tick.
type AppState struct {
	Kind StateKind

	// ResponseDelay accumulates real time while ActivityBound; when it
	// crosses the response threshold, NPC response systems run once and
	// it resets.
	ResponseDelay time.Duration
}

// InGameState returns the initial game state.
func InGameState() AppState {
	return AppState{Kind: StateInGame}
}

// ActivityBoundState returns a fresh ActivityBound state with zero
// accumulated delay.
func ActivityBoundState() AppState {
	return AppState{Kind: StateActivityBound}
}

// AppStateResource holds the shared scheduler state between ticks.
type AppStateResource struct {
	State AppState
}
