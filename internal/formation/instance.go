package formation

import (
	"github.com/thalassa/engine/internal/geom"
	"github.com/thalassa/engine/internal/render"
)

// Instance is one live formation. Owned exclusively by the engine's world
// state and mutated only inside the tick — no locks needed. The drawable is
// released exactly once, on the tick the instance leaves the population.
type Instance struct {
	Archetype *Archetype
	Drawable  render.Drawable

	BasePosition  geom.Vec3 // root point on the sphere, immutable
	SurfaceNormal geom.Vec3 // normalize(BasePosition), outward
	Rotation      geom.Quat // outward orientation, immutable

	// OriginalScale is the drawable's designed scale captured at creation.
	// All lifecycle scaling is relative to it, never cumulative.
	OriginalScale float64

	Age      float64 // seconds since creation, monotonic
	Lifespan float64 // total seconds, drawn once at creation
	// MaxHeight is how far above BasePosition (along SurfaceNormal) the
	// instance rises at full emergence. Drawn once.
	MaxHeight float64
	// Phase is the free-running idle-oscillation accumulator (radians),
	// advanced at Archetype.PhaseRate. Never reset.
	Phase float64
	// Emergence is derived from Age/Lifespan each tick, in [0,1].
	Emergence float64

	// Marked is set when the instance is queued for end-of-tick disposal.
	Marked bool
	// Disposed is set by the disposal path; a second disposal is a contract
	// violation (panic in strict mode, logged no-op otherwise).
	Disposed bool
}

// Progress is Age/Lifespan. It can exceed 1 while a dissolving instance
// waits for its emergence to reach zero.
func (in *Instance) Progress() float64 {
	if in.Lifespan <= 0 {
		return 0
	}
	return in.Age / in.Lifespan
}
