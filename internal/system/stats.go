package system

import (
	"time"

	"go.uber.org/zap"

	"github.com/thalassa/engine/internal/core/event"
	coresys "github.com/thalassa/engine/internal/core/system"
	"github.com/thalassa/engine/internal/world"
)

// StatsSystem delivers the previous tick's events to subscribers and keeps
// running lifetime counters. Phase 2 (Output). With report_every > 0 it also
// logs a periodic population line.
type StatsSystem struct {
	world *world.State
	bus   *event.Bus
	log   *zap.Logger

	reportEvery int
	tick        int

	spawned  int
	disposed int
	dropped  int
}

func NewStatsSystem(ws *world.State, bus *event.Bus, reportEvery int, log *zap.Logger) *StatsSystem {
	s := &StatsSystem{world: ws, bus: bus, reportEvery: reportEvery, log: log}
	event.Subscribe(bus, func(event.FormationSpawned) { s.spawned++ })
	event.Subscribe(bus, func(event.FormationDisposed) { s.disposed++ })
	event.Subscribe(bus, func(event.SpawnDropped) { s.dropped++ })
	return s
}

func (s *StatsSystem) Phase() coresys.Phase { return coresys.PhaseOutput }

func (s *StatsSystem) Update(_ time.Duration) {
	s.bus.DispatchAll()

	s.tick++
	if s.reportEvery > 0 && s.tick%s.reportEvery == 0 {
		s.log.Info("population",
			zap.Int("live", s.world.Count()),
			zap.Int("capacity", s.world.Capacity()),
			zap.Int("spawned", s.spawned),
			zap.Int("disposed", s.disposed),
			zap.Int("dropped", s.dropped))
	}
}

func (s *StatsSystem) Spawned() int  { return s.spawned }
func (s *StatsSystem) Disposed() int { return s.disposed }
func (s *StatsSystem) Dropped() int  { return s.dropped }
