// Package data loads the static formation tables shipped with the engine.
package data

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"

	"github.com/thalassa/engine/internal/formation"
)

// FormationEntry is one archetype row in the YAML catalog. Zero curve fields
// take the shipped defaults, so a minimal row only needs id, name, weight and
// the instance ranges.
type FormationEntry struct {
	ID     string `yaml:"id"`
	Name   string `yaml:"name"`
	Weight int    `yaml:"weight"`

	LifespanMin float64 `yaml:"lifespan_min"`
	LifespanMax float64 `yaml:"lifespan_max"`
	HeightMin   float64 `yaml:"height_min"`
	HeightMax   float64 `yaml:"height_max"`
	ScaleMin    float64 `yaml:"scale_min"`
	ScaleMax    float64 `yaml:"scale_max"`
	PartsMin    int     `yaml:"parts_min"`
	PartsMax    int     `yaml:"parts_max"`

	PhaseRate       float64 `yaml:"phase_rate"`
	BreathAmplitude float64 `yaml:"breath_amplitude"`

	EmergeEnd     float64 `yaml:"emerge_end"`
	DissolveStart float64 `yaml:"dissolve_start"`
	RiseExponent  float64 `yaml:"rise_exponent"`
	FadeExponent  float64 `yaml:"fade_exponent"`
	ScaleExponent float64 `yaml:"scale_exponent"`

	Modulator string `yaml:"modulator"`
}

type catalogFile struct {
	Formations []FormationEntry `yaml:"formations"`
}

// Curve defaults for rows that leave the shaping fields unset.
const (
	defaultEmergeEnd     = 0.35
	defaultDissolveStart = 0.75
	defaultRiseExponent  = 0.55
	defaultFadeExponent  = 1.6
	defaultScaleExponent = 0.45
	defaultPhaseRate     = 1.2
)

// LoadCatalog loads and validates the formation catalog from a YAML file.
func LoadCatalog(path string) (*formation.Catalog, error) {
	raw, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read catalog: %w", err)
	}
	var f catalogFile
	if err := yaml.Unmarshal(raw, &f); err != nil {
		return nil, fmt.Errorf("parse catalog %s: %w", path, err)
	}

	list := make([]*formation.Archetype, 0, len(f.Formations))
	for i := range f.Formations {
		list = append(list, f.Formations[i].toArchetype())
	}
	cat, err := formation.NewCatalog(list)
	if err != nil {
		return nil, fmt.Errorf("catalog %s: %w", path, err)
	}
	return cat, nil
}

func (e *FormationEntry) toArchetype() *formation.Archetype {
	a := &formation.Archetype{
		ID:              e.ID,
		Name:            e.Name,
		Weight:          e.Weight,
		LifespanMin:     e.LifespanMin,
		LifespanMax:     e.LifespanMax,
		HeightMin:       e.HeightMin,
		HeightMax:       e.HeightMax,
		ScaleMin:        e.ScaleMin,
		ScaleMax:        e.ScaleMax,
		PartsMin:        e.PartsMin,
		PartsMax:        e.PartsMax,
		PhaseRate:       e.PhaseRate,
		BreathAmplitude: e.BreathAmplitude,
		Modulator:       e.Modulator,
		Curve: formation.CurveParams{
			EmergeEnd:     e.EmergeEnd,
			DissolveStart: e.DissolveStart,
			RiseExponent:  e.RiseExponent,
			FadeExponent:  e.FadeExponent,
			ScaleExponent: e.ScaleExponent,
		},
	}
	if a.Curve.EmergeEnd == 0 {
		a.Curve.EmergeEnd = defaultEmergeEnd
	}
	if a.Curve.DissolveStart == 0 {
		a.Curve.DissolveStart = defaultDissolveStart
	}
	if a.Curve.RiseExponent == 0 {
		a.Curve.RiseExponent = defaultRiseExponent
	}
	if a.Curve.FadeExponent == 0 {
		a.Curve.FadeExponent = defaultFadeExponent
	}
	if a.Curve.ScaleExponent == 0 {
		a.Curve.ScaleExponent = defaultScaleExponent
	}
	if a.PhaseRate == 0 {
		a.PhaseRate = defaultPhaseRate
	}
	return a
}
