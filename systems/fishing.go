package systems

import (
	"math/rand"

	"go.uber.org/zap"

	"github.com/oakmund/tilerpg/audio"
	"github.com/oakmund/tilerpg/component"
	"github.com/oakmund/tilerpg/config"
	"github.com/oakmund/tilerpg/content"
	"github.com/oakmund/tilerpg/core"
	"github.com/oakmund/tilerpg/engine"
)

// Fishing decouples waiting (environment-driven, resolved here over
// multiple turns) from catching (player-driven, an explicit intent), so
// the scheduler can treat the whole thing as a normal bound activity with
// a clear finished-or-not signal.
//
// Per entity: Idle -> WaitingForFish (cast on a fishable tile)
//          -> FishOnTheLine (bite roll succeeds after >=1 attempt)
//          -> Idle (catch intent lands the fish, or cancel abandons it).

// SetupFishingActionsSystem validates fresh fish intents against the
// index and begins the waiting state. A cast onto a non-fishable tile is
// silently rejected apart from player feedback.
type SetupFishingActionsSystem struct {
	world   *engine.World
	index   *engine.TileIndex
	builder *TileAnimationBuilder
	msgs    *engine.MessageLog
	player  *engine.PlayerResource
	snd     *audio.Service
}

func NewSetupFishingActionsSystem(w *engine.World) *SetupFishingActionsSystem {
	snd, _ := engine.GetResource[*audio.Service](w.Resources)
	return &SetupFishingActionsSystem{
		world:   w,
		index:   engine.MustGetResource[*engine.TileIndex](w.Resources),
		builder: engine.MustGetResource[*TileAnimationBuilder](w.Resources),
		msgs:    engine.MustGetResource[*engine.MessageLog](w.Resources),
		player:  engine.MustGetResource[*engine.PlayerResource](w.Resources),
		snd:     snd,
	}
}

func (s *SetupFishingActionsSystem) Priority() int { return PriorityFishingSetup }

func (s *SetupFishingActionsSystem) Update() {
	cs := &s.world.Components
	for _, e := range cs.FishAction.Entities() {
		// A second fish intent while waiting or hooked belongs to the
		// catch system; leave it in place.
		if cs.WaitingForFish.Has(e) || cs.FishOnTheLine.Has(e) {
			continue
		}
		action, _ := cs.FishAction.Get(e)
		cs.FishAction.Remove(e)

		if !s.index.Fishable(action.Target) {
			if e == s.player.Entity {
				s.msgs.Log("There is nothing to fish there.")
			}
			continue
		}

		cs.WaitingForFish.Set(e, component.WaitingForFish{})
		s.builder.Request(AnimationRequest{
			Pos:    action.Target,
			Glyph:  'o',
			FG:     core.White,
			Delete: component.DeleteWhenFinished(e),
		})
		if e == s.player.Entity {
			s.msgs.Log("You cast your line...")
			s.snd.Play(audio.CueCast)
		}
	}
}

// WaitingForFishSystem accumulates waiting time and rolls for a bite each
// time the attempt interval elapses. The success chance starts at the
// configured base and grows by a fixed step per attempt, capped below
// certainty.
type WaitingForFishSystem struct {
	world  *engine.World
	timer  *engine.TimeResource
	msgs   *engine.MessageLog
	player *engine.PlayerResource
	cfg    config.FishingConfig
	rng    *rand.Rand
	snd    *audio.Service
}

func NewWaitingForFishSystem(w *engine.World, cfg config.FishingConfig, rng *rand.Rand) *WaitingForFishSystem {
	snd, _ := engine.GetResource[*audio.Service](w.Resources)
	return &WaitingForFishSystem{
		world:  w,
		timer:  engine.MustGetResource[*engine.TimeResource](w.Resources),
		msgs:   engine.MustGetResource[*engine.MessageLog](w.Resources),
		player: engine.MustGetResource[*engine.PlayerResource](w.Resources),
		cfg:    cfg,
		rng:    rng,
		snd:    snd,
	}
}

func (s *WaitingForFishSystem) Priority() int { return PriorityFishingWait }

func (s *WaitingForFishSystem) chance(attempts int) float64 {
	c := s.cfg.BaseChance + s.cfg.ChanceStep*float64(attempts-1)
	if c > s.cfg.MaxChance {
		c = s.cfg.MaxChance
	}
	return c
}

func (s *WaitingForFishSystem) Update() {
	cs := &s.world.Components
	for _, e := range cs.WaitingForFish.Entities() {
		wait, _ := cs.WaitingForFish.Get(e)
		wait.TimeSinceLastAttempt += s.timer.Delta
		if wait.TimeSinceLastAttempt < s.cfg.AttemptInterval {
			cs.WaitingForFish.Set(e, wait)
			continue
		}

		wait.TimeSinceLastAttempt = 0
		wait.Attempts++
		if s.rng.Float64() < s.chance(wait.Attempts) {
			cs.WaitingForFish.Remove(e)
			cs.FishOnTheLine.Set(e, component.FishOnTheLine{})
			if e == s.player.Entity {
				s.msgs.Log("Something tugs at the line!")
				s.snd.Play(audio.CueBite)
			}
		} else {
			cs.WaitingForFish.Set(e, wait)
			if e == s.player.Entity {
				s.msgs.Log("Not even a nibble...")
			}
		}
	}
}

// CatchFishSystem resolves the explicit endgame intents: a fish intent
// while hooked lands the fish, a cancel intent abandons the activity.
// Both mark the activity finished so the scheduler and any watching
// delete conditions see the completion this turn.
type CatchFishSystem struct {
	world  *engine.World
	db     *content.EntityDB
	msgs   *engine.MessageLog
	player *engine.PlayerResource
	log    *zap.Logger
	snd    *audio.Service
}

func NewCatchFishSystem(w *engine.World, db *content.EntityDB) *CatchFishSystem {
	snd, _ := engine.GetResource[*audio.Service](w.Resources)
	return &CatchFishSystem{
		world:  w,
		db:     db,
		msgs:   engine.MustGetResource[*engine.MessageLog](w.Resources),
		player: engine.MustGetResource[*engine.PlayerResource](w.Resources),
		log:    engine.MustGetResource[*engine.LogResource](w.Resources).Logger,
		snd:    snd,
	}
}

func (s *CatchFishSystem) Priority() int { return PriorityFishingCatch }

func (s *CatchFishSystem) Update() {
	cs := &s.world.Components

	for _, e := range cs.CancelAction.Entities() {
		cs.CancelAction.Remove(e)
		if !cs.WaitingForFish.Has(e) && !cs.FishOnTheLine.Has(e) {
			continue
		}
		cs.WaitingForFish.Remove(e)
		cs.FishOnTheLine.Remove(e)
		cs.FinishedActivity.Set(e, component.FinishedActivity{})
		if e == s.player.Entity {
			s.msgs.Log("You reel in the empty line.")
		}
	}

	for _, e := range cs.FishAction.Entities() {
		cs.FishAction.Remove(e)
		if !cs.FishOnTheLine.Has(e) {
			// Early reel while still waiting; wasted pull, the wait
			// continues.
			continue
		}
		cs.FishOnTheLine.Remove(e)
		cs.FinishedActivity.Set(e, component.FinishedActivity{})
		s.grantFish(e)
	}
}

func (s *CatchFishSystem) grantFish(e core.Entity) {
	cs := &s.world.Components

	fish, err := s.db.ItemByName("Raw Fish")
	if err != nil {
		// Data bug mid-session: reject the reward, keep the session.
		s.log.Warn("catch resolution missing item", zap.Error(err))
		s.msgs.Log("The fish slips away...")
		return
	}

	pack, ok := cs.Backpack.Get(e)
	if !ok {
		pack = component.NewBackpack()
	}
	pack.Add(fish.Identifier, 1)
	cs.Backpack.Set(e, pack)

	if e == s.player.Entity {
		s.msgs.Log("You caught a fish!")
		s.snd.Play(audio.CueCatch)
	}
}
