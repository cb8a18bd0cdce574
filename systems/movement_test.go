package systems

import (
	"math/rand"
	"testing"

	"github.com/oakmund/tilerpg/component"
)

func TestMoveOntoOpenTile(t *testing.T) {
	w, player := newTestWorld(t, 8, 8)
	cs := &w.Components

	cs.Position.Set(player, component.NewPosition(2, 2))
	dest := component.NewPosition(3, 2)
	cs.WantsToMove.Set(player, component.WantsToMove{NewPos: dest})

	rebuildIndex(w)
	NewMoveSystem(w).Update()

	pos, _ := cs.Position.Get(player)
	if pos != dest {
		t.Fatalf("position = %v; want %v", pos, dest)
	}
	if cs.WantsToMove.Has(player) {
		t.Fatal("move intent not consumed")
	}
}

func TestMoveOntoBlockedTileRejected(t *testing.T) {
	w, player := newTestWorld(t, 8, 8)
	cs := &w.Components

	start := component.NewPosition(2, 2)
	cs.Position.Set(player, start)

	wall := w.CreateEntity()
	dest := component.NewPosition(3, 2)
	cs.Position.Set(wall, dest)
	cs.Blocking.Set(wall, component.Blocking{})

	cs.WantsToMove.Set(player, component.WantsToMove{NewPos: dest})

	rebuildIndex(w)
	NewMoveSystem(w).Update()

	pos, _ := cs.Position.Get(player)
	if pos != start {
		t.Fatalf("position = %v; want %v (blocked)", pos, start)
	}
	if cs.WantsToMove.Has(player) {
		t.Fatal("rejected intent must still be consumed")
	}
}

func TestMoveOffMapRejected(t *testing.T) {
	w, player := newTestWorld(t, 4, 4)
	cs := &w.Components

	start := component.NewPosition(0, 0)
	cs.Position.Set(player, start)
	cs.WantsToMove.Set(player, component.WantsToMove{NewPos: component.NewPosition(9, 9)})

	rebuildIndex(w)
	NewMoveSystem(w).Update()

	pos, _ := cs.Position.Get(player)
	if pos != start {
		t.Fatalf("position = %v; want %v", pos, start)
	}
}

func TestRandomWalkerStaysOffBlockedTiles(t *testing.T) {
	w, _ := newTestWorld(t, 8, 8)
	cs := &w.Components

	walker := w.CreateEntity()
	start := component.NewPosition(4, 4)
	cs.Position.Set(walker, start)
	cs.RandomWalker.Set(walker, component.RandomWalkerAI{})

	// Wall in every cardinal neighbor: the walker can never move.
	for _, step := range cardinalSteps {
		wall := w.CreateEntity()
		pos, _ := start.Step(step[0], step[1])
		cs.Position.Set(wall, pos)
		cs.Blocking.Set(wall, component.Blocking{})
	}

	rebuildIndex(w)
	sys := NewRandomWalkerSystem(w, rand.New(rand.NewSource(7)))
	for i := 0; i < 20; i++ {
		sys.Update()
	}

	pos, _ := cs.Position.Get(walker)
	if pos != start {
		t.Fatalf("walker escaped onto a blocked tile: %v", pos)
	}
}

func TestGoalMoverStepsTowardNearestDesire(t *testing.T) {
	w, _ := newTestWorld(t, 16, 16)
	cs := &w.Components

	fishName := component.NewName("Raw Fish")

	near := w.CreateEntity()
	cs.Name.Set(near, fishName)
	cs.Position.Set(near, component.NewPosition(6, 4))

	far := w.CreateEntity()
	cs.Name.Set(far, fishName)
	cs.Position.Set(far, component.NewPosition(14, 14))

	mover := w.CreateEntity()
	cs.Position.Set(mover, component.NewPosition(4, 4))
	cs.GoalMover.Set(mover, component.NewGoalMover(fishName))

	rebuildIndex(w)
	NewGoalMoverSystem(w).Update()

	got, _ := cs.GoalMover.Get(mover)
	if got.Current != near {
		t.Fatalf("locked target = %d; want the nearer fish %d", got.Current, near)
	}
	pos, _ := cs.Position.Get(mover)
	if pos != (component.Position{X: 5, Y: 4}) {
		t.Fatalf("position = %v; want one step toward the fish", pos)
	}
}

func TestGoalMoverUnlocksDeadTarget(t *testing.T) {
	w, _ := newTestWorld(t, 8, 8)
	cs := &w.Components

	fishName := component.NewName("Raw Fish")
	fish := w.CreateEntity()
	cs.Name.Set(fish, fishName)
	cs.Position.Set(fish, component.NewPosition(6, 4))

	mover := w.CreateEntity()
	cs.Position.Set(mover, component.NewPosition(2, 4))
	goal := component.NewGoalMover(fishName)
	goal.Current = fish
	cs.GoalMover.Set(mover, goal)

	w.QueueDestroy(fish)
	w.Maintain()

	rebuildIndex(w)
	NewGoalMoverSystem(w).Update()

	got, _ := cs.GoalMover.Get(mover)
	if got.Current == fish {
		t.Fatal("mover kept a destroyed target locked")
	}
}
