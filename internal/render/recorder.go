package render

import "github.com/thalassa/engine/internal/geom"

// Transform is the last pose written for a drawable.
type Transform struct {
	Position geom.Vec3
	Rotation geom.Quat
	Scale    float64
}

// Recorder is a Backend that records every call. It backs headless runs and
// is the test harness for the lockstep and exactly-once-disposal invariants.
// Single-goroutine access only, like the engine itself.
type Recorder struct {
	live      map[uint64]Drawable
	transform map[uint64]Transform
	uniforms  map[uint64]Uniforms

	Adds    int
	Removes int
	// UnknownRemoves counts Remove calls for drawables not currently live —
	// each one is a broken disposal contract.
	UnknownRemoves int
}

func NewRecorder() *Recorder {
	return &Recorder{
		live:      make(map[uint64]Drawable),
		transform: make(map[uint64]Transform),
		uniforms:  make(map[uint64]Uniforms),
	}
}

func (r *Recorder) Add(d Drawable) {
	r.live[d.ID()] = d
	r.Adds++
}

func (r *Recorder) Remove(d Drawable) {
	if _, ok := r.live[d.ID()]; !ok {
		r.UnknownRemoves++
		return
	}
	delete(r.live, d.ID())
	delete(r.transform, d.ID())
	delete(r.uniforms, d.ID())
	r.Removes++
}

func (r *Recorder) SetTransform(d Drawable, position geom.Vec3, rotation geom.Quat, scale float64) {
	r.transform[d.ID()] = Transform{Position: position, Rotation: rotation, Scale: scale}
}

func (r *Recorder) SetUniforms(d Drawable, u Uniforms) {
	r.uniforms[d.ID()] = u
}

// LiveCount reports how many drawables the backend currently owns.
func (r *Recorder) LiveCount() int { return len(r.live) }

// TransformOf returns the last transform written for the drawable.
func (r *Recorder) TransformOf(d Drawable) (Transform, bool) {
	t, ok := r.transform[d.ID()]
	return t, ok
}

// UniformsOf returns the last uniforms written for the drawable.
func (r *Recorder) UniformsOf(d Drawable) (Uniforms, bool) {
	u, ok := r.uniforms[d.ID()]
	return u, ok
}

// Live returns the currently live drawables (iteration order unspecified).
func (r *Recorder) Live() []Drawable {
	out := make([]Drawable, 0, len(r.live))
	for _, d := range r.live {
		out = append(out, d)
	}
	return out
}
