package content

import (
	"fmt"

	"github.com/oakmund/tilerpg/component"
	"github.com/oakmund/tilerpg/core"
	"github.com/oakmund/tilerpg/engine"
)

// Z layers for spawned renderables; beings draw above items and terrain
// features.
const (
	TerrainZ = 0
	ItemZ    = 1
	BeingZ   = 2
	EffectZ  = 3
)

// SpawnBeing builds a full entity from the named being template: name,
// position, renderable, blocking tag, AI, strength and health as the
// template specifies. Unknown names return ErrUnknownBeing; the caller
// decides whether that aborts world construction or rejects an intent.
func SpawnBeing(w *engine.World, db *EntityDB, name string, pos component.Position) (core.Entity, error) {
	raw, err := db.BeingByName(name)
	if err != nil {
		return core.NoEntity, err
	}

	cs := &w.Components
	e := w.CreateEntity()
	cs.Name.Set(e, component.NewName(raw.Name))
	cs.Position.Set(e, pos)
	cs.Renderable.Set(e, component.NewRenderable(raw.rune(), raw.color(), BeingZ))

	if raw.Monster {
		cs.Monster.Set(e, component.Monster{})
	}
	if raw.Blocking {
		cs.Blocking.Set(e, component.Blocking{})
	}
	if raw.Strength > 0 {
		cs.Strength.Set(e, component.Strength{Amount: raw.Strength})
	}

	switch raw.AI {
	case "":
	case "random_walk":
		cs.RandomWalker.Set(e, component.RandomWalkerAI{})
	case "goal":
		if len(raw.Goals) == 0 {
			return core.NoEntity, fmt.Errorf("being %q has goal ai but no goals", raw.Name)
		}
		desires := make([]component.Name, len(raw.Goals))
		for i, g := range raw.Goals {
			desires[i] = component.NewName(g)
		}
		cs.GoalMover.Set(e, component.NewGoalMover(desires...))
	default:
		return core.NoEntity, fmt.Errorf("being %q: unknown ai kind %q", raw.Name, raw.AI)
	}

	if raw.Health != nil {
		cs.Health.Set(e, component.NewHealthStats(raw.Health.MaxHP, raw.Health.Defense))
	}

	return e, nil
}

// SpawnItem places an item instance on the board from its template.
func SpawnItem(w *engine.World, db *EntityDB, id component.ItemID, pos component.Position) (core.Entity, error) {
	raw, err := db.ItemByID(id)
	if err != nil {
		return core.NoEntity, err
	}

	cs := &w.Components
	e := w.CreateEntity()
	cs.Name.Set(e, component.NewName(raw.Name))
	cs.Position.Set(e, pos)
	cs.Renderable.Set(e, component.NewRenderable(raw.Rune(), raw.Color(), ItemZ))
	cs.Item.Set(e, component.Item{ID: raw.Identifier})

	if raw.Tool != "" {
		kind, err := component.ParseToolType(raw.Tool)
		if err != nil {
			return core.NoEntity, fmt.Errorf("item %q: %w", raw.Name, err)
		}
		cs.Tool.Set(e, component.Tool{Kind: kind})
	}
	return e, nil
}
