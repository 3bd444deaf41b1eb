package main

import (
	"flag"
	"fmt"
	"math/rand"
	"os"
	"os/signal"
	"strings"
	"syscall"
	"time"

	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"

	"github.com/thalassa/engine/internal/config"
	"github.com/thalassa/engine/internal/data"
	"github.com/thalassa/engine/internal/engine"
	"github.com/thalassa/engine/internal/render"
	"github.com/thalassa/engine/internal/render/mesh"
	"github.com/thalassa/engine/internal/render/term"
	"github.com/thalassa/engine/internal/scripting"
)

func main() {
	if err := run(); err != nil {
		fmt.Fprintf(os.Stderr, "fatal: %v\n", err)
		os.Exit(1)
	}
}

// ── Startup display helpers ────────────────────────────────────────

func printBanner() {
	fmt.Println()
	fmt.Println("\033[36;1m  ┌───────────────────────────────────────────┐\033[0m")
	fmt.Println("\033[36;1m  │\033[0m            Thalassa  v0.1.0               \033[36;1m│\033[0m")
	fmt.Println("\033[36;1m  │\033[0m      living ocean-planet surface          \033[36;1m│\033[0m")
	fmt.Println("\033[36;1m  └───────────────────────────────────────────┘\033[0m")
	fmt.Println()
}

func printSection(title string) {
	lineLen := 46 - len(title) - 1
	if lineLen < 3 {
		lineLen = 3
	}
	fmt.Printf("  \033[33m── %s %s\033[0m\n", title, strings.Repeat("─", lineLen))
}

func printStat(label string, count int) {
	numStr := fmt.Sprintf("%d", count)
	dotsLen := 42 - len(label) - len(numStr)
	if dotsLen < 3 {
		dotsLen = 3
	}
	fmt.Printf("  %s \033[90m%s\033[0m \033[32m%s\033[0m\n", label, strings.Repeat("·", dotsLen), numStr)
}

func printOK(msg string) {
	fmt.Printf("  \033[32m✓\033[0m %s\n", msg)
}

func printReady(msg string) {
	fmt.Printf("  \033[32m▶\033[0m %s\n", msg)
}

// ── Main demo logic ────────────────────────────────────────────────

func run() error {
	viewMode := flag.Bool("view", false, "render the planet in the terminal")
	flag.Parse()

	// 1. Load config
	cfgPath := "config/thalassa.toml"
	if p := os.Getenv("THALASSA_CONFIG"); p != "" {
		cfgPath = p
	}
	cfg, err := config.Load(cfgPath)
	if err != nil {
		return fmt.Errorf("load config: %w", err)
	}

	// 2. Init logger
	log, err := newLogger(cfg.Logging, *viewMode)
	if err != nil {
		return fmt.Errorf("init logger: %w", err)
	}
	defer log.Sync()

	if !*viewMode {
		printBanner()
		printSection("catalog")
	}

	// 3. Load the archetype catalog and modulator scripts
	catalog, err := data.LoadCatalog(cfg.Catalog.Path)
	if err != nil {
		return fmt.Errorf("load catalog: %w", err)
	}

	scripts, err := scripting.NewEngine(cfg.Catalog.ScriptsDir, log)
	if err != nil {
		return fmt.Errorf("lua engine: %w", err)
	}
	defer scripts.Close()

	if !*viewMode {
		printStat("formation archetypes", catalog.Len())
		printStat("total spawn weight", catalog.TotalWeight())
		printOK("lua modulators loaded")
		fmt.Println()
	}

	// 4. Choose a backend: terminal view or headless recorder
	var backend render.Backend
	var view *term.View
	if *viewMode {
		view, err = term.NewView(cfg.Engine.Radius)
		if err != nil {
			return fmt.Errorf("terminal view: %w", err)
		}
		defer view.Stop()
		backend = view
	} else {
		backend = render.NewRecorder()
	}

	// The factory gets its own stream so backend choice never shifts the
	// engine's spawn sequence.
	factorySeed := cfg.Engine.Seed
	if factorySeed == 0 {
		factorySeed = time.Now().UnixNano()
	}
	factory := mesh.NewFactory(catalog, rand.New(rand.NewSource(factorySeed+1)))

	// 5. Configure the engine
	eng, err := engine.New(cfg.Engine, catalog, factory, backend, scripts, log)
	if err != nil {
		return fmt.Errorf("engine: %w", err)
	}

	// 6. Run the frame loop
	shutdownCh := make(chan os.Signal, 1)
	signal.Notify(shutdownCh, syscall.SIGINT, syscall.SIGTERM)

	ticker := time.NewTicker(cfg.Engine.TickRate)
	defer ticker.Stop()

	if !*viewMode {
		printSection("surface live")
		printReady(fmt.Sprintf("tick %s, capacity %d, radius %.1f",
			cfg.Engine.TickRate, cfg.Engine.Capacity, cfg.Engine.Radius))
		fmt.Println()
	}

	for {
		select {
		case <-ticker.C:
			eng.Tick(cfg.Engine.TickRate)
			if view != nil {
				view.Render()
			}
		case <-quitChan(view):
			log.Info("view closed")
			eng.DisposeAll()
			return nil
		case sig := <-shutdownCh:
			log.Info("shutdown signal", zap.String("signal", sig.String()))
			eng.DisposeAll()
			log.Info("engine stopped",
				zap.Int("spawned", eng.Stats().Spawned()),
				zap.Int("disposed", eng.Stats().Disposed()))
			return nil
		}
	}
}

// quitChan adapts the optional view's quit channel; nil view blocks forever.
func quitChan(v *term.View) <-chan struct{} {
	if v == nil {
		return nil
	}
	return v.Quit()
}

func newLogger(cfg config.LoggingConfig, viewMode bool) (*zap.Logger, error) {
	if viewMode {
		// The terminal belongs to tcell; keep zap quiet unless it matters.
		zapCfg := zap.NewProductionConfig()
		zapCfg.Level = zap.NewAtomicLevelAt(zapcore.ErrorLevel)
		zapCfg.OutputPaths = []string{"thalassa.log"}
		return zapCfg.Build()
	}

	var level zapcore.Level
	if err := level.UnmarshalText([]byte(cfg.Level)); err != nil {
		level = zapcore.InfoLevel
	}

	var zapCfg zap.Config
	if cfg.Format == "json" {
		zapCfg = zap.NewProductionConfig()
	} else {
		zapCfg = zap.NewDevelopmentConfig()
		zapCfg.EncoderConfig.EncodeLevel = zapcore.CapitalColorLevelEncoder
		zapCfg.EncoderConfig.EncodeTime = zapcore.TimeEncoderOfLayout("15:04:05")
		zapCfg.EncoderConfig.ConsoleSeparator = "  "
		zapCfg.DisableCaller = true
		zapCfg.DisableStacktrace = true
	}
	zapCfg.Level = zap.NewAtomicLevelAt(level)

	return zapCfg.Build()
}
