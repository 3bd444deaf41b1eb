// Package render defines the contract between the lifecycle engine and the
// render backend. The engine never learns how drawing happens; it only adds
// and removes drawables and writes per-tick transforms and uniforms. The
// backend's live drawable count stays in lockstep with the engine's live
// population after every tick.
package render

import "github.com/thalassa/engine/internal/geom"

// Drawable is an opaque handle to a backend-owned object graph. The engine
// holds exactly one reference per live formation and releases it exactly once.
type Drawable interface {
	ID() uint64
	// DesignedScale is the scale the geometry was authored at. Lifecycle
	// scaling is always relative to this baseline, never cumulative.
	DesignedScale() float64
	ReleaseResources()
}

// Uniforms are the per-drawable scalars pushed each tick.
type Uniforms struct {
	Time      float64
	Emergence float64
}

// Backend is the scene-graph side of the contract.
type Backend interface {
	Add(d Drawable)
	Remove(d Drawable)
	SetTransform(d Drawable, position geom.Vec3, rotation geom.Quat, scale float64)
	SetUniforms(d Drawable, u Uniforms)
}

// Factory constructs the renderable object graph for a formation archetype.
// Treated as a pure function by the engine: a failed construction leaves no
// partial state behind.
type Factory interface {
	Construct(archetypeID string) (Drawable, error)
}
