// Package scripting hosts the Lua VM that archetype emergence modulators run
// in. Modulators are small tuning hooks — a pulsing archetype reshapes its
// emergence with sin(phase) — kept in scripts so artists can adjust them
// without a rebuild.
package scripting

import (
	"fmt"
	"os"
	"path/filepath"

	lua "github.com/yuin/gopher-lua"
	"go.uber.org/zap"
)

// Engine wraps a single gopher-lua VM. Single-goroutine access only (the
// engine tick). A nil *Engine is valid and leaves emergence unmodulated.
type Engine struct {
	vm  *lua.LState
	log *zap.Logger

	// missing caches modulator names that resolved to no global, so the
	// per-tick hot path logs each bad name once instead of every tick.
	missing map[string]bool
}

// NewEngine creates a Lua engine and loads every .lua file in scriptsDir.
// A missing directory yields an engine with no modulators, not an error.
func NewEngine(scriptsDir string, log *zap.Logger) (*Engine, error) {
	vm := lua.NewState(lua.Options{
		SkipOpenLibs: false,
	})
	vm.SetGlobal("API_VERSION", lua.LNumber(1))

	e := &Engine{vm: vm, log: log, missing: make(map[string]bool)}
	if err := e.loadDir(scriptsDir); err != nil {
		vm.Close()
		return nil, fmt.Errorf("load scripts: %w", err)
	}
	return e, nil
}

func (e *Engine) loadDir(dir string) error {
	entries, err := os.ReadDir(dir)
	if err != nil {
		if os.IsNotExist(err) {
			return nil // skip missing dirs
		}
		return err
	}
	for _, entry := range entries {
		if entry.IsDir() || filepath.Ext(entry.Name()) != ".lua" {
			continue
		}
		path := filepath.Join(dir, entry.Name())
		if err := e.vm.DoFile(path); err != nil {
			return fmt.Errorf("load %s: %w", path, err)
		}
		e.log.Debug("loaded lua script", zap.String("file", path))
	}
	return nil
}

// Modulate calls the named Lua global with (progress, phase, emergence) and
// returns the reshaped emergence clamped to [0,1]. Any failure — unknown
// function, runtime error, non-numeric return — falls back to the base value:
// a broken script must never distort the lifecycle, only the styling.
func (e *Engine) Modulate(fn string, progress, phase, emergence float64) float64 {
	if e == nil || fn == "" {
		return emergence
	}
	f := e.vm.GetGlobal(fn)
	if f == lua.LNil {
		if !e.missing[fn] {
			e.missing[fn] = true
			e.log.Error("lua modulator not found", zap.String("fn", fn))
		}
		return emergence
	}

	if err := e.vm.CallByParam(lua.P{
		Fn:      f,
		NRet:    1,
		Protect: true,
	}, lua.LNumber(progress), lua.LNumber(phase), lua.LNumber(emergence)); err != nil {
		e.log.Error("lua modulator error", zap.String("fn", fn), zap.Error(err))
		return emergence
	}

	ret := e.vm.Get(-1)
	e.vm.Pop(1)

	n, ok := ret.(lua.LNumber)
	if !ok {
		e.log.Error("lua modulator returned non-number", zap.String("fn", fn))
		return emergence
	}
	return clamp01(float64(n))
}

func (e *Engine) Close() {
	if e != nil {
		e.vm.Close()
	}
}

func clamp01(v float64) float64 {
	if v < 0 {
		return 0
	}
	if v > 1 {
		return 1
	}
	return v
}
