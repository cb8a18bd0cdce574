package systems

import (
	"sync"

	"github.com/oakmund/tilerpg/component"
	"github.com/oakmund/tilerpg/content"
	"github.com/oakmund/tilerpg/core"
	"github.com/oakmund/tilerpg/engine"
)

// AnimationRequest describes a transient visual entity to spawn after
// resolution: a glyph at a tile, removed when its delete condition fires.
type AnimationRequest struct {
	Pos    component.Position
	Glyph  rune
	FG     core.RGB
	Delete component.DeleteCondition
}

// TileAnimationBuilder is the request-collecting resource. Resolution
// systems push requests during the turn; the spawner system drains them
// afterwards, so animation entities never appear mid-resolution.
type TileAnimationBuilder struct {
	mu       sync.Mutex
	requests []AnimationRequest
}

func NewTileAnimationBuilder() *TileAnimationBuilder {
	return &TileAnimationBuilder{}
}

// Request queues an animation spawn for the end of this turn.
func (b *TileAnimationBuilder) Request(req AnimationRequest) {
	b.mu.Lock()
	defer b.mu.Unlock()
	b.requests = append(b.requests, req)
}

func (b *TileAnimationBuilder) drain() []AnimationRequest {
	b.mu.Lock()
	defer b.mu.Unlock()
	out := b.requests
	b.requests = nil
	return out
}

// TileAnimationSpawner materializes queued animation requests as
// entities carrying a renderable, a position and a delete condition.
type TileAnimationSpawner struct {
	world   *engine.World
	builder *TileAnimationBuilder
}

func NewTileAnimationSpawner(w *engine.World) *TileAnimationSpawner {
	return &TileAnimationSpawner{
		world:   w,
		builder: engine.MustGetResource[*TileAnimationBuilder](w.Resources),
	}
}

func (s *TileAnimationSpawner) Priority() int { return PriorityAnimationSpawn }

func (s *TileAnimationSpawner) Update() {
	cs := &s.world.Components
	for _, req := range s.builder.drain() {
		e := s.world.CreateEntity()
		cs.Position.Set(e, req.Pos)
		cs.Renderable.Set(e, component.NewRenderable(req.Glyph, req.FG, content.EffectZ))
		cs.DeleteCondition.Set(e, req.Delete)
	}
}
