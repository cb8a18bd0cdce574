package engine

import (
	"testing"

	"github.com/oakmund/tilerpg/component"
	"github.com/oakmund/tilerpg/core"
)

func TestStoreSetGetRemove(t *testing.T) {
	s := NewStore[component.Position]()
	e := core.Entity(1)

	if _, ok := s.Get(e); ok {
		t.Fatal("empty store reported a component")
	}

	s.Set(e, component.Position{X: 3, Y: 4})
	got, ok := s.Get(e)
	if !ok || got.X != 3 || got.Y != 4 {
		t.Fatalf("Get = %v, %v; want {3 4}, true", got, ok)
	}
	if !s.Has(e) {
		t.Fatal("Has = false after Set")
	}

	s.Set(e, component.Position{X: 7, Y: 8})
	if s.Len() != 1 {
		t.Fatalf("Len = %d after replace; want 1", s.Len())
	}

	s.Remove(e)
	if s.Has(e) {
		t.Fatal("Has = true after Remove")
	}
	s.Remove(e) // removing twice is a no-op
	if s.Len() != 0 {
		t.Fatalf("Len = %d; want 0", s.Len())
	}
}

func TestStoreEntitiesSnapshot(t *testing.T) {
	s := NewStore[component.Strength]()
	for i := core.Entity(1); i <= 5; i++ {
		s.Set(i, component.Strength{Amount: int(i)})
	}

	// Removing while walking the snapshot must not skip or panic.
	seen := 0
	for _, e := range s.Entities() {
		seen++
		s.Remove(e)
	}
	if seen != 5 {
		t.Fatalf("visited %d entities; want 5", seen)
	}
	if s.Len() != 0 {
		t.Fatalf("Len = %d after removing all; want 0", s.Len())
	}
}

func TestStoreClear(t *testing.T) {
	s := NewStore[component.FinishedActivity]()
	s.Set(1, component.FinishedActivity{})
	s.Set(2, component.FinishedActivity{})

	s.Clear()
	if s.Len() != 0 || s.Has(1) || s.Has(2) {
		t.Fatal("Clear left components behind")
	}
}
