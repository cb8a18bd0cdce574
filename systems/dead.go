package systems

import (
	"go.uber.org/zap"

	"github.com/oakmund/tilerpg/audio"
	"github.com/oakmund/tilerpg/content"
	"github.com/oakmund/tilerpg/core"
	"github.com/oakmund/tilerpg/engine"
	"github.com/oakmund/tilerpg/gamemap"
)

// RemoveDeadSystem handles everything at zero HP: breakable terrain
// converts to its ground variant, death drops spawn, and the entity is
// queued for destruction. Destruction is deferred to the end-of-tick
// maintain so the entity stays observable for the rest of this turn.
type RemoveDeadSystem struct {
	world *engine.World
	db    *content.EntityDB
	m     *gamemap.Map
	msgs  *engine.MessageLog
	log   *zap.Logger
	snd   *audio.Service
}

func NewRemoveDeadSystem(w *engine.World, db *content.EntityDB) *RemoveDeadSystem {
	snd, _ := engine.GetResource[*audio.Service](w.Resources)
	return &RemoveDeadSystem{
		world: w,
		db:    db,
		m:     engine.MustGetResource[*gamemap.Map](w.Resources),
		msgs:  engine.MustGetResource[*engine.MessageLog](w.Resources),
		log:   engine.MustGetResource[*engine.LogResource](w.Resources).Logger,
		snd:   snd,
	}
}

func (s *RemoveDeadSystem) Priority() int { return PriorityRemoveDead }

func (s *RemoveDeadSystem) Update() {
	cs := &s.world.Components
	for _, e := range cs.Health.Entities() {
		stats, _ := cs.Health.Get(e)
		if !stats.Dead() {
			continue
		}

		pos, hasPos := cs.Position.Get(e)

		if cs.Breakable.Has(e) && hasPos {
			s.m.SetTile(pos, gamemap.RubbleTile())
			s.msgs.Log("The %s crumbles.", s.nameOf(e))
			s.snd.Play(audio.CueBreak)
		} else {
			s.msgs.Log("%s dies.", s.nameOf(e))
			s.snd.Play(audio.CueDeath)
		}

		if drop, ok := cs.DeathDrop.Get(e); ok && hasPos {
			if _, err := content.SpawnItem(s.world, s.db, drop.ItemID, pos); err != nil {
				// Bad drop table entry: skip the drop, keep the session.
				s.log.Warn("death drop spawn failed", zap.Error(err))
			}
		}

		s.world.QueueDestroy(e)
	}
}

func (s *RemoveDeadSystem) nameOf(e core.Entity) string {
	if name, ok := s.world.Components.Name.Get(e); ok {
		return name.Value
	}
	return "something"
}
