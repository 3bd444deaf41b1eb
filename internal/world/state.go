// Package world holds the in-memory state of the living surface: the bounded
// population of formation instances and the deferred disposal queue.
package world

import (
	"github.com/thalassa/engine/internal/core/pool"
	"github.com/thalassa/engine/internal/formation"
	"github.com/thalassa/engine/internal/geom"
)

// State owns every live formation instance. Accessed only from the engine
// tick goroutine — no locks needed. Removals are deferred to the cleanup
// phase so systems never mutate the population mid-iteration.
type State struct {
	pool      *pool.Pool
	instances map[pool.Handle]*formation.Instance
	order     []pool.Handle
	capacity  int

	disposeQueue []pool.Handle
}

func NewState(capacity int) *State {
	return &State{
		pool:         pool.New(),
		instances:    make(map[pool.Handle]*formation.Instance, capacity),
		order:        make([]pool.Handle, 0, capacity),
		capacity:     capacity,
		disposeQueue: make([]pool.Handle, 0, 16),
	}
}

func (s *State) Capacity() int { return s.capacity }

// Count is the live population size; ≤ Capacity at all times.
func (s *State) Count() int { return len(s.order) }

func (s *State) AtCapacity() bool { return len(s.order) >= s.capacity }

// Add registers a new instance and returns its handle. Callers check
// AtCapacity first; spawning past capacity is refused, not queued.
func (s *State) Add(in *formation.Instance) pool.Handle {
	h := s.pool.Create()
	s.instances[h] = in
	s.order = append(s.order, h)
	return h
}

// Get returns the instance for a handle, or nil for stale/unknown handles.
func (s *State) Get(h pool.Handle) *formation.Instance {
	if !s.pool.Alive(h) {
		return nil
	}
	return s.instances[h]
}

// ForEach visits every live instance. Marking during iteration is safe;
// removal only happens in FlushDisposals.
func (s *State) ForEach(fn func(h pool.Handle, in *formation.Instance)) {
	for _, h := range s.order {
		fn(h, s.instances[h])
	}
}

// MarkForDisposal queues an instance for end-of-tick disposal.
func (s *State) MarkForDisposal(h pool.Handle) {
	s.disposeQueue = append(s.disposeQueue, h)
}

// FlushDisposals removes every queued instance from the population and hands
// it to dispose. Stale or duplicate queue entries are skipped, so an instance
// can only be handed over once per registration.
func (s *State) FlushDisposals(dispose func(h pool.Handle, in *formation.Instance)) {
	for _, h := range s.disposeQueue {
		in := s.remove(h)
		if in == nil {
			continue
		}
		dispose(h, in)
	}
	s.disposeQueue = s.disposeQueue[:0]
}

// DrainAll removes and disposes every live instance (scene reset/teardown).
// Synchronous: all drawables are released before it returns.
func (s *State) DrainAll(dispose func(h pool.Handle, in *formation.Instance)) {
	handles := make([]pool.Handle, len(s.order))
	copy(handles, s.order)
	for _, h := range handles {
		in := s.remove(h)
		if in == nil {
			continue
		}
		dispose(h, in)
	}
	s.disposeQueue = s.disposeQueue[:0]
}

// Snapshot is a comparable view of one live instance, used for debug dumps
// and reproducibility checks.
type Snapshot struct {
	Archetype string
	Age       float64
	Lifespan  float64
	MaxHeight float64
	Emergence float64
	Position  geom.Vec3
}

// Snapshot captures the live population in iteration order.
func (s *State) Snapshot() []Snapshot {
	out := make([]Snapshot, 0, len(s.order))
	for _, h := range s.order {
		in := s.instances[h]
		out = append(out, Snapshot{
			Archetype: in.Archetype.ID,
			Age:       in.Age,
			Lifespan:  in.Lifespan,
			MaxHeight: in.MaxHeight,
			Emergence: in.Emergence,
			Position:  in.BasePosition,
		})
	}
	return out
}

func (s *State) remove(h pool.Handle) *formation.Instance {
	in, ok := s.instances[h]
	if !ok || !s.pool.Alive(h) {
		return nil
	}
	delete(s.instances, h)
	for i, oh := range s.order {
		if oh == h {
			// swap-remove keeps removal O(1); order of the survivors is
			// irrelevant to correctness
			s.order[i] = s.order[len(s.order)-1]
			s.order = s.order[:len(s.order)-1]
			break
		}
	}
	s.pool.Destroy(h)
	return in
}
