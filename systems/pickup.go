package systems

import (
	"go.uber.org/zap"

	"github.com/oakmund/tilerpg/component"
	"github.com/oakmund/tilerpg/content"
	"github.com/oakmund/tilerpg/engine"
)

// PickupSystem moves a targeted item off the board and into the actor's
// backpack. A selection that no longer resolves (the item was destroyed
// or is not an item) degrades to a stale-selection message, never a
// panic.
type PickupSystem struct {
	world  *engine.World
	db     *content.EntityDB
	msgs   *engine.MessageLog
	player *engine.PlayerResource
	log    *zap.Logger
}

func NewPickupSystem(w *engine.World, db *content.EntityDB) *PickupSystem {
	return &PickupSystem{
		world:  w,
		db:     db,
		msgs:   engine.MustGetResource[*engine.MessageLog](w.Resources),
		player: engine.MustGetResource[*engine.PlayerResource](w.Resources),
		log:    engine.MustGetResource[*engine.LogResource](w.Resources).Logger,
	}
}

func (s *PickupSystem) Priority() int { return PriorityPickup }

func (s *PickupSystem) Update() {
	cs := &s.world.Components
	for _, actor := range cs.PickupAction.Entities() {
		action, _ := cs.PickupAction.Get(actor)
		cs.PickupAction.Remove(actor)

		item, ok := cs.Item.Get(action.Item)
		if !ok || !s.world.Alive(action.Item) {
			if actor == s.player.Entity {
				s.msgs.Log("Whatever that was, it is gone now.")
			}
			continue
		}

		pack, ok := cs.Backpack.Get(actor)
		if !ok {
			pack = component.NewBackpack()
		}
		pack.Add(item.ID, 1)
		cs.Backpack.Set(actor, pack)
		s.world.QueueDestroy(action.Item)

		if actor == s.player.Entity {
			if info, err := s.db.ItemByID(item.ID); err == nil && info.PickupText != "" {
				s.msgs.Log("%s", info.PickupText)
			} else if name, ok := cs.Name.Get(action.Item); ok {
				s.msgs.Log("You pick up the %s.", name)
			}
		}
	}
}
