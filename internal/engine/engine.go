// Package engine wires the population state, tick systems, and external
// collaborators (render backend, geometry factory, Lua scripts) into a
// single tick-driven facade. Construction is the configure step: an invalid
// config fails here, never mid-run.
package engine

import (
	"fmt"
	"math/rand"
	"time"

	"go.uber.org/zap"

	"github.com/thalassa/engine/internal/config"
	"github.com/thalassa/engine/internal/core/event"
	coresys "github.com/thalassa/engine/internal/core/system"
	"github.com/thalassa/engine/internal/formation"
	"github.com/thalassa/engine/internal/render"
	"github.com/thalassa/engine/internal/scripting"
	"github.com/thalassa/engine/internal/system"
	"github.com/thalassa/engine/internal/world"
)

// Engine runs the formation lifecycle: one external driver calls Tick once
// per frame; everything mutates synchronously inside. Single-goroutine by
// contract — no locks anywhere in the tick path.
type Engine struct {
	world   *world.State
	runner  *coresys.Runner
	bus     *event.Bus
	cleanup *system.CleanupSystem
	stats   *system.StatsSystem
	log     *zap.Logger
}

// New validates the configuration and assembles the engine. The catalog has
// already been validated by its loader; capacity, interval, and radius are
// checked here so the engine can never silently run unspawnable.
func New(
	cfg config.EngineConfig,
	catalog *formation.Catalog,
	factory render.Factory,
	backend render.Backend,
	scripts *scripting.Engine,
	log *zap.Logger,
) (*Engine, error) {
	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("engine config: %w", err)
	}
	if catalog == nil || catalog.Len() == 0 {
		return nil, fmt.Errorf("engine config: empty formation catalog")
	}

	seed := cfg.Seed
	if seed == 0 {
		seed = time.Now().UnixNano()
	}
	rng := rand.New(rand.NewSource(seed))

	ws := world.NewState(cfg.Capacity)
	bus := event.NewBus()

	e := &Engine{
		world:   ws,
		runner:  coresys.NewRunner(),
		bus:     bus,
		cleanup: system.NewCleanupSystem(ws, backend, bus, cfg.Strict, log),
		stats:   system.NewStatsSystem(ws, bus, cfg.ReportEvery, log),
		log:     log,
	}
	e.runner.Register(system.NewSpawnSystem(ws, catalog, factory, backend, bus, rng, cfg, log))
	e.runner.Register(system.NewLifecycleSystem(ws, backend, scripts, log))
	e.runner.Register(e.stats)
	e.runner.Register(e.cleanup)

	log.Info("engine configured",
		zap.Int("capacity", cfg.Capacity),
		zap.Duration("spawn_interval", cfg.SpawnInterval),
		zap.Float64("radius", cfg.Radius),
		zap.Int("archetypes", catalog.Len()),
		zap.Int64("seed", seed))
	return e, nil
}

// Tick advances the whole system one step.
func (e *Engine) Tick(dt time.Duration) {
	e.bus.SwapBuffers()
	e.runner.Tick(dt)
}

// Count is the live population size.
func (e *Engine) Count() int { return e.world.Count() }

// Capacity is the configured population bound.
func (e *Engine) Capacity() int { return e.world.Capacity() }

// Stats exposes the lifetime counters.
func (e *Engine) Stats() *system.StatsSystem { return e.stats }

// World exposes the population state for inspection.
func (e *Engine) World() *world.State { return e.world }

// DisposeAll synchronously disposes every live formation (scene reset or
// shutdown): every drawable is removed and released before it returns.
// Pending events, including the disposals, are delivered before returning so
// counters end consistent.
func (e *Engine) DisposeAll() {
	e.world.DrainAll(e.cleanup.Dispose)
	e.bus.SwapBuffers()
	e.bus.DispatchAll()
	e.log.Info("population drained", zap.Int("disposed_total", e.stats.Disposed()))
}
