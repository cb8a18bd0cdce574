package engine

import (
	"time"

	"go.uber.org/zap"
)

// ResponseKind classifies what the decision collaborator produced for a
// tick.
type ResponseKind uint8

const (
	// ResponseWaiting means no action was taken; only the continuous
	// systems run and the turn does not advance.
	ResponseWaiting ResponseKind = iota

	// ResponseTurnAdvance means the player completed a turn's worth of
	// intents; NPC response systems run.
	ResponseTurnAdvance

	// ResponseStateChange requests a scheduler state transition.
	ResponseStateChange
)

// PlayerResponse is the decision collaborator's per-tick output.
type PlayerResponse struct {
	Kind ResponseKind
	Next AppState
}

// InputPort is the decision/input collaborator contract. The core never
// touches input devices; it asks the port once per tick.
type InputPort interface {
	// Collect runs in the InGame state. It may attach intents to the
	// player entity and reports whether the turn advanced.
	Collect(w *World) PlayerResponse

	// CollectBound runs in the ActivityBound state, where only intents
	// addressed to the bound activity (catch, cancel) are meaningful.
	CollectBound(w *World)
}

// Scheduler advances the world one discrete turn per tick. It owns the
// ordered execution of the continuous systems (index rebuild, activity
// resolution, cleanup), the NPC response systems, and the end-of-frame
// pass, and it decides whether the turn advances, stays suspended, or
// changes state.
type Scheduler struct {
	world *World
	input InputPort
	log   *zap.Logger

	continuous []System
	response   []System

	// responseThreshold is how much ActivityBound delay accumulates
	// before NPCs get a response turn.
	responseThreshold time.Duration

	timeRes  *TimeResource
	stateRes *AppStateResource
	player   *PlayerResource

	lastTick time.Time
	ticks    uint64
}

// NewScheduler wires a scheduler to a fully resourced world. Continuous
// systems are sorted by priority once; response systems keep their given
// order.
func NewScheduler(world *World, input InputPort, responseThreshold time.Duration, logger *zap.Logger) *Scheduler {
	if logger == nil {
		logger = zap.NewNop()
	}
	s := &Scheduler{
		world:             world,
		input:             input,
		log:               logger,
		responseThreshold: responseThreshold,
		timeRes:           MustGetResource[*TimeResource](world.Resources),
		stateRes:          MustGetResource[*AppStateResource](world.Resources),
		player:            MustGetResource[*PlayerResource](world.Resources),
	}
	return s
}

// AddContinuous registers systems that run every tick regardless of
// state: indexing, activity resolution, deletion, animation.
func (s *Scheduler) AddContinuous(systems ...System) {
	s.continuous = append(s.continuous, systems...)
	sortSystems(s.continuous)
}

// AddResponse registers NPC systems that run only when a turn advances or
// an ActivityBound response delay fires.
func (s *Scheduler) AddResponse(systems ...System) {
	s.response = append(s.response, systems...)
	sortSystems(s.response)
}

// Ticks returns how many ticks have run. Diagnostic only.
func (s *Scheduler) Ticks() uint64 {
	return s.ticks
}

// Tick advances the simulation by one discrete step. The host loop calls
// it once per frame with the current wall-clock time; elapsed time is
// recorded at the end for the next tick's delay accounting.
func (s *Scheduler) Tick(now time.Time) {
	state := s.stateRes.State
	next := state

	switch state.Kind {
	case StateInMenu:
		// Menu navigation is outside this core; nothing runs.

	case StateInGame:
		resp := s.input.Collect(s.world)
		switch resp.Kind {
		case ResponseWaiting:
			// Player has not acted; only essential systems run.
		case ResponseTurnAdvance:
			s.runResponseSystems()
		case ResponseStateChange:
			next = resp.Next
			s.log.Debug("scheduler state change",
				zap.String("from", state.Kind.String()),
				zap.String("to", next.Kind.String()))
		}
		s.runContinuousSystems()
		s.runEndOfFrame()

	case StateActivityBound:
		s.input.CollectBound(s.world)
		s.runContinuousSystems()

		switch {
		case s.playerFinishedActivity():
			next = InGameState()
			s.log.Debug("bound activity finished")
		case state.ResponseDelay >= s.responseThreshold:
			s.runResponseSystems()
			next = ActivityBoundState()
		default:
			next.ResponseDelay = state.ResponseDelay + s.timeRes.Delta
		}
		s.runEndOfFrame()
	}

	s.world.Maintain()

	// Record elapsed wall-clock time for next tick's delay accounting.
	if !s.lastTick.IsZero() {
		s.timeRes.Delta = now.Sub(s.lastTick)
	}
	s.timeRes.Now = now
	s.lastTick = now
	s.ticks++

	// Commit state last; readers never observe a mid-tick transition.
	s.stateRes.State = next
}

func (s *Scheduler) runContinuousSystems() {
	for _, sys := range s.continuous {
		sys.Update()
	}
}

func (s *Scheduler) runResponseSystems() {
	for _, sys := range s.response {
		sys.Update()
	}
}

// runEndOfFrame clears one-shot signals. Unconditional: a finished
// activity nobody read still expires this frame.
func (s *Scheduler) runEndOfFrame() {
	s.world.Components.FinishedActivity.Clear()
}

func (s *Scheduler) playerFinishedActivity() bool {
	return s.world.Components.FinishedActivity.Has(s.player.Entity)
}
