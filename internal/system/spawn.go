package system

import (
	"math"
	"math/rand"
	"time"

	"go.uber.org/zap"

	"github.com/thalassa/engine/internal/config"
	"github.com/thalassa/engine/internal/core/event"
	coresys "github.com/thalassa/engine/internal/core/system"
	"github.com/thalassa/engine/internal/formation"
	"github.com/thalassa/engine/internal/render"
	"github.com/thalassa/engine/internal/world"
)

// spawnScaleEpsilon is the near-zero scale a formation is registered at, so
// growth is visible from nothing rather than popping in.
const spawnScaleEpsilon = 1e-3

// SpawnSystem owns the spawn clock and admits new formations. Phase 0
// (Spawn). When the clock fires at capacity the spawn is dropped, not
// queued, and the clock still resets — long saturation never builds a burst.
type SpawnSystem struct {
	world    *world.State
	selector *formation.Selector
	factory  render.Factory
	backend  render.Backend
	bus      *event.Bus
	rng      *rand.Rand
	log      *zap.Logger

	interval float64 // seconds
	jitter   float64
	radius   float64

	clock   float64
	nextDue float64
}

func NewSpawnSystem(
	ws *world.State,
	catalog *formation.Catalog,
	factory render.Factory,
	backend render.Backend,
	bus *event.Bus,
	rng *rand.Rand,
	cfg config.EngineConfig,
	log *zap.Logger,
) *SpawnSystem {
	s := &SpawnSystem{
		world:    ws,
		selector: formation.NewSelector(catalog, rng),
		factory:  factory,
		backend:  backend,
		bus:      bus,
		rng:      rng,
		log:      log,
		interval: cfg.SpawnInterval.Seconds(),
		jitter:   cfg.SpawnJitter,
		radius:   cfg.Radius,
	}
	s.nextDue = s.rollInterval()
	return s
}

func (s *SpawnSystem) Phase() coresys.Phase { return coresys.PhaseSpawn }

func (s *SpawnSystem) Update(dt time.Duration) {
	s.clock += dt.Seconds()
	if s.clock < s.nextDue {
		return
	}
	// Reset before attempting: a drop or factory failure consumes this
	// firing just like a successful spawn.
	s.clock = 0
	s.nextDue = s.rollInterval()

	if s.world.AtCapacity() {
		event.Emit(s.bus, event.SpawnDropped{Reason: event.DropCapacity})
		s.log.Debug("spawn dropped at capacity", zap.Int("population", s.world.Count()))
		return
	}

	arch := s.selector.Pick()
	drawable, err := s.factory.Construct(arch.ID)
	if err != nil {
		// Recovered locally: no partial instance is registered and the
		// tick continues.
		event.Emit(s.bus, event.SpawnDropped{Reason: event.DropFactory})
		s.log.Warn("formation construction failed",
			zap.String("archetype", arch.ID), zap.Error(err))
		return
	}

	place := formation.Place(s.rng, s.radius)
	in := &formation.Instance{
		Archetype:     arch,
		Drawable:      drawable,
		BasePosition:  place.Position,
		SurfaceNormal: place.Normal,
		Rotation:      place.Rotation,
		OriginalScale: drawable.DesignedScale(),
		Lifespan:      s.randRange(arch.LifespanMin, arch.LifespanMax),
		MaxHeight:     s.randRange(arch.HeightMin, arch.HeightMax),
		Phase:         s.rng.Float64() * 2 * math.Pi,
	}

	s.backend.Add(drawable)
	s.backend.SetTransform(drawable, place.Position, place.Rotation,
		in.OriginalScale*spawnScaleEpsilon)

	h := s.world.Add(in)
	event.Emit(s.bus, event.FormationSpawned{Handle: h, Archetype: arch.ID})
	s.log.Debug("formation spawned",
		zap.String("archetype", arch.ID),
		zap.Float64("lifespan", in.Lifespan),
		zap.Int("population", s.world.Count()))
}

func (s *SpawnSystem) rollInterval() float64 {
	if s.jitter == 0 {
		return s.interval
	}
	return s.interval * (1 + s.jitter*(2*s.rng.Float64()-1))
}

func (s *SpawnSystem) randRange(min, max float64) float64 {
	if max <= min {
		return min
	}
	return min + s.rng.Float64()*(max-min)
}
