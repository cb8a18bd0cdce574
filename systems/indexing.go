package systems

import (
	"github.com/oakmund/tilerpg/component"
	"github.com/oakmund/tilerpg/engine"
)

// The four indexing systems rebuild the tile index from scratch at the
// start of every turn. Nothing patches the index mid-turn, so a fact read
// later in the turn always reflects the state committed at the end of the
// previous one.

// IndexResetSystem clears the index and fills tile occupancy from every
// positioned entity.
type IndexResetSystem struct {
	index     *engine.TileIndex
	positions *engine.Store[component.Position]
}

func NewIndexResetSystem(w *engine.World) *IndexResetSystem {
	return &IndexResetSystem{
		index:     engine.MustGetResource[*engine.TileIndex](w.Resources),
		positions: w.Components.Position,
	}
}

func (s *IndexResetSystem) Priority() int { return PriorityIndexReset }

func (s *IndexResetSystem) Update() {
	s.index.Reset()
	for _, e := range s.positions.Entities() {
		pos, _ := s.positions.Get(e)
		s.index.AddOccupant(pos, e)
	}
}

// IndexBlockingSystem marks tiles occupied by blocking entities.
type IndexBlockingSystem struct {
	index     *engine.TileIndex
	positions *engine.Store[component.Position]
	blocking  *engine.Store[component.Blocking]
}

func NewIndexBlockingSystem(w *engine.World) *IndexBlockingSystem {
	return &IndexBlockingSystem{
		index:     engine.MustGetResource[*engine.TileIndex](w.Resources),
		positions: w.Components.Position,
		blocking:  w.Components.Blocking,
	}
}

func (s *IndexBlockingSystem) Priority() int { return PriorityIndexBlocking }

func (s *IndexBlockingSystem) Update() {
	for _, e := range s.blocking.Entities() {
		if pos, ok := s.positions.Get(e); ok {
			s.index.SetBlocked(pos)
		}
	}
}

// IndexBreakableSystem records destructible terrain and its required tool.
type IndexBreakableSystem struct {
	index     *engine.TileIndex
	positions *engine.Store[component.Position]
	breakable *engine.Store[component.Breakable]
}

func NewIndexBreakableSystem(w *engine.World) *IndexBreakableSystem {
	return &IndexBreakableSystem{
		index:     engine.MustGetResource[*engine.TileIndex](w.Resources),
		positions: w.Components.Position,
		breakable: w.Components.Breakable,
	}
}

func (s *IndexBreakableSystem) Priority() int { return PriorityIndexBreakable }

func (s *IndexBreakableSystem) Update() {
	for _, e := range s.breakable.Entities() {
		b, _ := s.breakable.Get(e)
		if pos, ok := s.positions.Get(e); ok {
			s.index.SetBreakable(pos, e, b.By)
		}
	}
}

// IndexFishableSystem marks tiles where fishing may start.
type IndexFishableSystem struct {
	index     *engine.TileIndex
	positions *engine.Store[component.Position]
	fishable  *engine.Store[component.Fishable]
}

func NewIndexFishableSystem(w *engine.World) *IndexFishableSystem {
	return &IndexFishableSystem{
		index:     engine.MustGetResource[*engine.TileIndex](w.Resources),
		positions: w.Components.Position,
		fishable:  w.Components.Fishable,
	}
}

func (s *IndexFishableSystem) Priority() int { return PriorityIndexFishable }

func (s *IndexFishableSystem) Update() {
	for _, e := range s.fishable.Entities() {
		if pos, ok := s.positions.Get(e); ok {
			s.index.SetFishable(pos)
		}
	}
}

// IndexSystems returns the full rebuild pass in priority order, for
// convenience at wiring time.
func IndexSystems(w *engine.World) []engine.System {
	return []engine.System{
		NewIndexResetSystem(w),
		NewIndexBlockingSystem(w),
		NewIndexBreakableSystem(w),
		NewIndexFishableSystem(w),
	}
}
