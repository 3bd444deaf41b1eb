package world

import (
	"testing"

	"github.com/thalassa/engine/internal/core/pool"
	"github.com/thalassa/engine/internal/formation"
)

func testInstance(id string) *formation.Instance {
	return &formation.Instance{
		Archetype: &formation.Archetype{ID: id},
		Lifespan:  10,
	}
}

func TestAddCountCapacity(t *testing.T) {
	s := NewState(2)
	if s.Count() != 0 || s.AtCapacity() {
		t.Fatal("fresh state not empty")
	}

	h1 := s.Add(testInstance("a"))
	s.Add(testInstance("b"))
	if s.Count() != 2 {
		t.Fatalf("Count = %d, want 2", s.Count())
	}
	if !s.AtCapacity() {
		t.Fatal("AtCapacity false at capacity")
	}
	if s.Get(h1) == nil {
		t.Fatal("Get(h1) = nil")
	}
}

func TestFlushDisposals(t *testing.T) {
	s := NewState(4)
	h1 := s.Add(testInstance("a"))
	h2 := s.Add(testInstance("b"))
	s.Add(testInstance("c"))

	s.MarkForDisposal(h1)
	s.MarkForDisposal(h2)
	s.MarkForDisposal(h1) // duplicate entry must not double-dispose

	var disposed []string
	s.FlushDisposals(func(_ pool.Handle, in *formation.Instance) {
		disposed = append(disposed, in.Archetype.ID)
	})

	if len(disposed) != 2 {
		t.Fatalf("disposed %v, want exactly [a b]", disposed)
	}
	if s.Count() != 1 {
		t.Errorf("Count = %d after flush, want 1", s.Count())
	}
	if s.Get(h1) != nil {
		t.Error("disposed handle still resolves")
	}

	// Queue is drained; a second flush does nothing.
	s.FlushDisposals(func(pool.Handle, *formation.Instance) {
		t.Error("flush after drain disposed something")
	})
}

func TestForEachWithMarking(t *testing.T) {
	s := NewState(8)
	for i := 0; i < 5; i++ {
		s.Add(testInstance("x"))
	}

	// Marking during iteration must visit all five exactly once.
	visits := 0
	s.ForEach(func(h pool.Handle, _ *formation.Instance) {
		visits++
		s.MarkForDisposal(h)
	})
	if visits != 5 {
		t.Fatalf("visited %d, want 5", visits)
	}

	count := 0
	s.FlushDisposals(func(pool.Handle, *formation.Instance) { count++ })
	if count != 5 || s.Count() != 0 {
		t.Fatalf("disposed %d, live %d; want 5 and 0", count, s.Count())
	}
}

func TestDrainAll(t *testing.T) {
	s := NewState(8)
	for i := 0; i < 3; i++ {
		s.Add(testInstance("x"))
	}
	h := s.Add(testInstance("marked"))
	s.MarkForDisposal(h)

	count := 0
	s.DrainAll(func(pool.Handle, *formation.Instance) { count++ })
	if count != 4 {
		t.Fatalf("drained %d, want 4", count)
	}
	if s.Count() != 0 {
		t.Fatalf("Count = %d after drain, want 0", s.Count())
	}

	// The stale dispose-queue entry must not fire after the drain.
	s.FlushDisposals(func(pool.Handle, *formation.Instance) {
		t.Error("stale queue entry disposed after drain")
	})
}
