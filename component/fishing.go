package component

import "time"

// WaitingForFish is the multi-turn state of a cast line. Elapsed time
// accumulates each turn; every time it crosses the attempt interval the
// attempt counter increments and a bite roll is made.
type WaitingForFish struct {
	Attempts             int
	TimeSinceLastAttempt time.Duration
}

// FishOnTheLine marks a hooked fish awaiting an explicit catch intent.
type FishOnTheLine struct{}
