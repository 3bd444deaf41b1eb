package config

import (
	"fmt"
	"os"
	"time"

	"github.com/BurntSushi/toml"
)

type Config struct {
	Engine  EngineConfig  `toml:"engine"`
	Catalog CatalogConfig `toml:"catalog"`
	Logging LoggingConfig `toml:"logging"`
}

type EngineConfig struct {
	// Capacity bounds the live population; spawns past it are dropped.
	Capacity int `toml:"capacity"`
	// SpawnInterval is how often the spawn clock fires.
	SpawnInterval time.Duration `toml:"spawn_interval"`
	// SpawnJitter widens each interval by a uniform factor in
	// [1-jitter, 1+jitter]. 0 disables jitter.
	SpawnJitter float64 `toml:"spawn_jitter"`
	// Radius of the ocean sphere formations root on.
	Radius float64 `toml:"radius"`
	// TickRate drives the demo loop; tests tick manually.
	TickRate time.Duration `toml:"tick_rate"`
	// Seed for the engine's random stream; 0 seeds from the clock.
	// A fixed seed plus this config reproduces a run exactly.
	Seed int64 `toml:"seed"`
	// Strict makes invariant violations (double dispose, capacity overrun)
	// panic instead of logging a no-op.
	Strict bool `toml:"strict"`
	// ReportEvery is the tick interval between population log lines
	// (0 disables reports).
	ReportEvery int `toml:"report_every"`
}

type CatalogConfig struct {
	Path       string `toml:"path"`
	ScriptsDir string `toml:"scripts_dir"`
}

type LoggingConfig struct {
	Level  string `toml:"level"`
	Format string `toml:"format"` // "json" or "console"
}

func Load(path string) (*Config, error) {
	raw, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read config %s: %w", path, err)
	}
	cfg := Defaults()
	if err := toml.Unmarshal(raw, cfg); err != nil {
		return nil, fmt.Errorf("parse config %s: %w", path, err)
	}
	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("config %s: %w", path, err)
	}
	return cfg, nil
}

func Defaults() *Config {
	return &Config{
		Engine: EngineConfig{
			Capacity:      24,
			SpawnInterval: 3 * time.Second,
			SpawnJitter:   0.25,
			Radius:        5.0,
			TickRate:      33 * time.Millisecond,
			ReportEvery:   300,
		},
		Catalog: CatalogConfig{
			Path:       "data/yaml/formation_list.yaml",
			ScriptsDir: "scripts",
		},
		Logging: LoggingConfig{
			Level:  "info",
			Format: "console",
		},
	}
}

// Validate fails fast on settings the engine must not silently run with.
func (c *Config) Validate() error {
	return c.Engine.Validate()
}

func (e *EngineConfig) Validate() error {
	if e.Capacity <= 0 {
		return fmt.Errorf("engine.capacity must be > 0, got %d", e.Capacity)
	}
	if e.SpawnInterval <= 0 {
		return fmt.Errorf("engine.spawn_interval must be > 0, got %s", e.SpawnInterval)
	}
	if e.SpawnJitter < 0 || e.SpawnJitter >= 1 {
		return fmt.Errorf("engine.spawn_jitter must be in [0,1), got %v", e.SpawnJitter)
	}
	if e.Radius <= 0 {
		return fmt.Errorf("engine.radius must be > 0, got %v", e.Radius)
	}
	if e.TickRate <= 0 {
		return fmt.Errorf("engine.tick_rate must be > 0, got %s", e.TickRate)
	}
	return nil
}
