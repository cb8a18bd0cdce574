package systems

import (
	"github.com/oakmund/tilerpg/audio"
	"github.com/oakmund/tilerpg/component"
	"github.com/oakmund/tilerpg/core"
	"github.com/oakmund/tilerpg/engine"
)

// TileDestructionSystem consumes break intents. The intent resolves only
// when the actor's tool matches what the index says breaks the target;
// otherwise it is a no-op for the turn, surfaced as player feedback but
// never as an engine error. Multiple actors breaking the same tile in one
// turn simply accumulate damage.
type TileDestructionSystem struct {
	world  *engine.World
	index  *engine.TileIndex
	msgs   *engine.MessageLog
	player *engine.PlayerResource
}

func NewTileDestructionSystem(w *engine.World) *TileDestructionSystem {
	return &TileDestructionSystem{
		world:  w,
		index:  engine.MustGetResource[*engine.TileIndex](w.Resources),
		msgs:   engine.MustGetResource[*engine.MessageLog](w.Resources),
		player: engine.MustGetResource[*engine.PlayerResource](w.Resources),
	}
}

func (s *TileDestructionSystem) Priority() int { return PriorityTileDestruction }

func (s *TileDestructionSystem) Update() {
	cs := &s.world.Components
	for _, actor := range cs.BreakAction.Entities() {
		action, _ := cs.BreakAction.Get(actor)
		cs.BreakAction.Remove(actor)

		pos, ok := cs.Position.Get(action.Target)
		if !ok {
			continue
		}
		_, requiredTool, breakable := s.index.BreakableAt(pos)
		if !breakable {
			continue
		}

		tool := component.ToolHand
		if t, ok := cs.Tool.Get(actor); ok {
			tool = t.Kind
		}
		if tool != requiredTool {
			if actor == s.player.Entity {
				s.msgs.Log("You need a %s for that.", requiredTool)
			}
			continue
		}

		amount := 1
		if st, ok := cs.Strength.Get(actor); ok {
			amount = st.Amount
		}
		queueDamage(cs.SufferDamage, action.Target, amount)
	}
}

// AttackSystem converts attack intents into pending damage on the target.
// Damage is never applied here; the damage system owns subtraction so
// multiple sources in one turn compose.
type AttackSystem struct {
	world *engine.World
	msgs  *engine.MessageLog
	snd   *audio.Service
}

func NewAttackSystem(w *engine.World) *AttackSystem {
	snd, _ := engine.GetResource[*audio.Service](w.Resources)
	return &AttackSystem{
		world: w,
		msgs:  engine.MustGetResource[*engine.MessageLog](w.Resources),
		snd:   snd,
	}
}

func (s *AttackSystem) Priority() int { return PriorityAttack }

func (s *AttackSystem) Update() {
	cs := &s.world.Components
	for _, actor := range cs.AttackAction.Entities() {
		action, _ := cs.AttackAction.Get(actor)
		cs.AttackAction.Remove(actor)

		if !cs.Health.Has(action.Target) {
			continue
		}
		amount := 1
		if st, ok := cs.Strength.Get(actor); ok {
			amount = st.Amount
		}
		queueDamage(cs.SufferDamage, action.Target, amount)
		s.snd.Play(audio.CueHit)

		if name, ok := cs.Name.Get(action.Target); ok {
			if attacker, ok := cs.Name.Get(actor); ok {
				s.msgs.Log("%s hits %s.", attacker, name)
			}
		}
	}
}

// queueDamage appends a pending damage amount to the target's queue.
func queueDamage(store *engine.Store[component.SufferDamage], target core.Entity, amount int) {
	dmg, _ := store.Get(target)
	dmg.Amounts = append(dmg.Amounts, amount)
	store.Set(target, dmg)
}
