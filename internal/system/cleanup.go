package system

import (
	"fmt"
	"time"

	"go.uber.org/zap"

	"github.com/thalassa/engine/internal/core/event"
	"github.com/thalassa/engine/internal/core/pool"
	coresys "github.com/thalassa/engine/internal/core/system"
	"github.com/thalassa/engine/internal/formation"
	"github.com/thalassa/engine/internal/render"
	"github.com/thalassa/engine/internal/world"
)

// CleanupSystem flushes the deferred disposal queue at tick end. Phase 3
// (Cleanup). Disposal removes the drawable from the backend and releases its
// resources, each exactly once; the backend's drawable count leaves this
// phase in lockstep with the live population.
type CleanupSystem struct {
	world   *world.State
	backend render.Backend
	bus     *event.Bus
	log     *zap.Logger
	// strict turns a double dispose into a panic instead of a logged no-op.
	strict bool
}

func NewCleanupSystem(ws *world.State, backend render.Backend, bus *event.Bus, strict bool, log *zap.Logger) *CleanupSystem {
	return &CleanupSystem{world: ws, backend: backend, bus: bus, strict: strict, log: log}
}

func (s *CleanupSystem) Phase() coresys.Phase { return coresys.PhaseCleanup }

func (s *CleanupSystem) Update(_ time.Duration) {
	s.world.FlushDisposals(s.Dispose)
}

// Dispose releases one instance's drawable. Called by the flush above and by
// the engine's DrainAll teardown; the instance is already out of the
// population when it arrives here.
func (s *CleanupSystem) Dispose(h pool.Handle, in *formation.Instance) {
	if in.Disposed {
		if s.strict {
			panic(fmt.Sprintf("formation %d/%d disposed twice", h.Index(), h.Generation()))
		}
		s.log.Error("double dispose ignored",
			zap.Uint32("index", h.Index()),
			zap.String("archetype", in.Archetype.ID))
		return
	}
	in.Disposed = true

	s.backend.Remove(in.Drawable)
	in.Drawable.ReleaseResources()

	event.Emit(s.bus, event.FormationDisposed{
		Handle:    h,
		Archetype: in.Archetype.ID,
		Age:       in.Age,
	})
	s.log.Debug("formation disposed",
		zap.String("archetype", in.Archetype.ID),
		zap.Float64("age", in.Age))
}
