package event

import "github.com/thalassa/engine/internal/core/pool"

// FormationSpawned is emitted when a formation is admitted to the population.
type FormationSpawned struct {
	Handle    pool.Handle
	Archetype string
}

// FormationDisposed is emitted after a formation's drawable has been removed
// from the backend and its resources released.
type FormationDisposed struct {
	Handle    pool.Handle
	Archetype string
	Age       float64
}

// SpawnDropped is emitted when the spawn clock fired but no formation was
// admitted (population at capacity, or the factory failed).
type SpawnDropped struct {
	Reason string
}

const (
	DropCapacity = "capacity"
	DropFactory  = "factory"
)
