package system

import (
	"math"
	"time"

	"go.uber.org/zap"

	"github.com/thalassa/engine/internal/core/pool"
	coresys "github.com/thalassa/engine/internal/core/system"
	"github.com/thalassa/engine/internal/formation"
	"github.com/thalassa/engine/internal/render"
	"github.com/thalassa/engine/internal/scripting"
	"github.com/thalassa/engine/internal/world"
)

// emergenceEpsilon is the visibility floor below which a dissolving
// formation counts as gone.
const emergenceEpsilon = 0.01

// LifecycleSystem advances every live formation one step. Phase 1 (Update).
//
// Per-instance order matters — later steps read what earlier ones set:
// age/phase advance, emergence recompute (plus optional Lua modulator),
// scale from emergence, position lift along the surface normal, uniform
// write, then the removal check. Removal requires BOTH emergence ≤ ε and
// progress past the dissolve boundary, so nothing pops out mid-dissolve.
type LifecycleSystem struct {
	world   *world.State
	backend render.Backend
	scripts *scripting.Engine
	log     *zap.Logger

	// now accumulates simulation time for the per-drawable time uniform.
	now float64
}

func NewLifecycleSystem(ws *world.State, backend render.Backend, scripts *scripting.Engine, log *zap.Logger) *LifecycleSystem {
	return &LifecycleSystem{world: ws, backend: backend, scripts: scripts, log: log}
}

func (s *LifecycleSystem) Phase() coresys.Phase { return coresys.PhaseUpdate }

func (s *LifecycleSystem) Update(dt time.Duration) {
	sec := dt.Seconds()
	s.now += sec

	s.world.ForEach(func(h pool.Handle, in *formation.Instance) {
		arch := in.Archetype

		in.Age += sec
		in.Phase += sec * arch.PhaseRate

		progress := in.Progress()
		e := arch.Curve.Emergence(progress)
		e = s.scripts.Modulate(arch.Modulator, progress, in.Phase, e)
		in.Emergence = formation.Clamp01(e)

		scale := in.OriginalScale * math.Pow(in.Emergence, arch.Curve.ScaleExponent)

		// Breathing is tied to emergence so a dissolved formation does not
		// jitter at its root point.
		breath := arch.BreathAmplitude * math.Sin(in.Phase) * in.Emergence
		lift := in.MaxHeight*in.Emergence + breath
		position := in.BasePosition.Add(in.SurfaceNormal.Scale(lift))

		s.backend.SetTransform(in.Drawable, position, in.Rotation, scale)
		s.backend.SetUniforms(in.Drawable, render.Uniforms{
			Time:      s.now,
			Emergence: in.Emergence,
		})

		if !in.Marked && in.Emergence <= emergenceEpsilon && progress > arch.Curve.DissolveStart {
			in.Marked = true
			s.world.MarkForDisposal(h)
		}
	})
}

// Now is the accumulated simulation time in seconds.
func (s *LifecycleSystem) Now() float64 { return s.now }
