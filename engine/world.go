package engine

import (
	"sync"

	"github.com/oakmund/tilerpg/core"
)

// World owns all entity data: the typed component stores, the global
// resources, and the entity allocator. All mutation happens on the single
// simulation goroutine within a tick; the store mutexes only guard against
// a host loop reading render state concurrently.
type World struct {
	mu           sync.Mutex
	nextEntityID core.Entity
	alive        map[core.Entity]struct{}
	pending      []core.Entity

	Components ComponentStore
	Resources  *ResourceStore

	stores []removable
}

// NewWorld creates an empty world.
func NewWorld() *World {
	cs, all := newComponentStore()
	return &World{
		nextEntityID: 1,
		alive:        make(map[core.Entity]struct{}),
		Components:   cs,
		Resources:    NewResourceStore(),
		stores:       all,
	}
}

// CreateEntity reserves a fresh entity handle. Handles are never reused.
func (w *World) CreateEntity() core.Entity {
	w.mu.Lock()
	defer w.mu.Unlock()

	id := w.nextEntityID
	w.nextEntityID++
	w.alive[id] = struct{}{}
	return id
}

// Alive reports whether the handle still refers to a live entity.
func (w *World) Alive(e core.Entity) bool {
	w.mu.Lock()
	defer w.mu.Unlock()
	_, ok := w.alive[e]
	return ok
}

// QueueDestroy schedules an entity for removal at the end of the current
// tick. Systems that already iterated past the entity keep observing it
// until Maintain runs, so mid-turn reads stay consistent.
func (w *World) QueueDestroy(e core.Entity) {
	w.mu.Lock()
	defer w.mu.Unlock()
	if _, ok := w.alive[e]; !ok {
		return
	}
	w.pending = append(w.pending, e)
}

// Maintain drains the destroy queue, removing each entity from every
// component store. The scheduler calls this once per tick after the
// end-of-frame pass; destroyed entities are gone before the next turn's
// index build.
func (w *World) Maintain() {
	w.mu.Lock()
	pending := w.pending
	w.pending = nil
	for _, e := range pending {
		delete(w.alive, e)
	}
	w.mu.Unlock()

	for _, e := range pending {
		for _, s := range w.stores {
			s.Remove(e)
		}
	}
}

// EntityCount returns the number of live entities.
func (w *World) EntityCount() int {
	w.mu.Lock()
	defer w.mu.Unlock()
	return len(w.alive)
}
