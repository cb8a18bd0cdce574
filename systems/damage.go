package systems

import (
	"github.com/oakmund/tilerpg/engine"
)

// DamageSystem is the single authority that applies pending damage.
// Each queued amount is reduced by the target's defense (floored at
// zero), the effective amounts sum, and HP floors at zero. Entities
// reduced to zero are left for the dead-removal system; nothing is
// destroyed here so every system this turn still observes the entity.
type DamageSystem struct {
	world *engine.World
}

func NewDamageSystem(w *engine.World) *DamageSystem {
	return &DamageSystem{world: w}
}

func (s *DamageSystem) Priority() int { return PriorityDamage }

func (s *DamageSystem) Update() {
	cs := &s.world.Components
	for _, target := range cs.SufferDamage.Entities() {
		dmg, _ := cs.SufferDamage.Get(target)
		cs.SufferDamage.Remove(target)

		stats, ok := cs.Health.Get(target)
		if !ok {
			// Damage against something unkillable evaporates.
			continue
		}

		total := 0
		for _, amount := range dmg.Amounts {
			effective := amount - stats.Defense
			if effective < 0 {
				effective = 0
			}
			total += effective
		}

		stats.HP -= total
		if stats.HP < 0 {
			stats.HP = 0
		}
		cs.Health.Set(target, stats)
	}
}
