// Package formation holds the data model of the living surface: archetypes,
// the weighted selector, the emergence curve, sphere placement, and the
// per-instance lifecycle record.
package formation

import "fmt"

// CurveParams shape the emergence curve of one archetype. Progress is
// age/lifespan; emergence is the [0,1] visual prominence derived from it.
type CurveParams struct {
	// EmergeEnd is the progress at which the formation reaches full
	// visibility. Below it, emergence = (progress/EmergeEnd)^RiseExponent.
	EmergeEnd float64
	// DissolveStart is the progress at which dissolution begins. Between
	// EmergeEnd and DissolveStart emergence is exactly 1.
	DissolveStart float64
	// RiseExponent is sub-linear (0.4–0.7): fast initial rise, easing near
	// full visibility — the "growing out of the ocean" look.
	RiseExponent float64
	// FadeExponent (1–2) shapes the dissolve ramp down to 0.
	FadeExponent float64
	// ScaleExponent (~0.45) maps emergence to drawable scale; below 1 it
	// pops the silhouette in slightly faster than the raw curve.
	ScaleExponent float64
}

// Archetype is an immutable formation kind: its spawn weight, the ranges its
// instances draw their lifetime parameters from, and its curve shape.
// The catalog is fixed at startup; archetypes never change afterwards.
type Archetype struct {
	ID     string
	Name   string
	Weight int

	Curve CurveParams

	LifespanMin, LifespanMax float64 // seconds
	HeightMin, HeightMax     float64 // rise above the surface at full emergence
	ScaleMin, ScaleMax       float64 // designed drawable scale range
	PartsMin, PartsMax       int     // geometry part count range for the factory

	PhaseRate       float64 // radians per second of idle oscillation
	BreathAmplitude float64 // surface-normal wobble at full emergence

	// Modulator optionally names a Lua global f(progress, phase, emergence)
	// applied after the base curve (e.g. a pulsing archetype).
	Modulator string
}

// Catalog is the fixed weighted archetype table.
type Catalog struct {
	archetypes  []*Archetype
	byID        map[string]*Archetype
	totalWeight int
}

// NewCatalog validates the archetype list and builds the selection table.
// An empty catalog or a non-positive weight is a configuration error: the
// engine must never run with an unselectable catalog.
func NewCatalog(list []*Archetype) (*Catalog, error) {
	if len(list) == 0 {
		return nil, fmt.Errorf("formation catalog is empty")
	}
	c := &Catalog{
		archetypes: list,
		byID:       make(map[string]*Archetype, len(list)),
	}
	for _, a := range list {
		if a.ID == "" {
			return nil, fmt.Errorf("archetype with empty id")
		}
		if a.Weight < 1 {
			return nil, fmt.Errorf("archetype %s: weight %d < 1", a.ID, a.Weight)
		}
		if _, dup := c.byID[a.ID]; dup {
			return nil, fmt.Errorf("archetype %s: duplicate id", a.ID)
		}
		if err := a.validate(); err != nil {
			return nil, fmt.Errorf("archetype %s: %w", a.ID, err)
		}
		c.byID[a.ID] = a
		c.totalWeight += a.Weight
	}
	return c, nil
}

func (a *Archetype) validate() error {
	p := a.Curve
	if p.EmergeEnd <= 0 || p.EmergeEnd >= 1 {
		return fmt.Errorf("emerge_end %v outside (0,1)", p.EmergeEnd)
	}
	if p.DissolveStart <= p.EmergeEnd || p.DissolveStart >= 1 {
		return fmt.Errorf("dissolve_start %v outside (emerge_end,1)", p.DissolveStart)
	}
	if p.RiseExponent <= 0 || p.FadeExponent <= 0 || p.ScaleExponent <= 0 {
		return fmt.Errorf("curve exponents must be positive")
	}
	if a.LifespanMin <= 0 || a.LifespanMax < a.LifespanMin {
		return fmt.Errorf("lifespan range [%v,%v] invalid", a.LifespanMin, a.LifespanMax)
	}
	if a.HeightMin < 0 || a.HeightMax < a.HeightMin {
		return fmt.Errorf("height range [%v,%v] invalid", a.HeightMin, a.HeightMax)
	}
	if a.ScaleMin <= 0 || a.ScaleMax < a.ScaleMin {
		return fmt.Errorf("scale range [%v,%v] invalid", a.ScaleMin, a.ScaleMax)
	}
	if a.PartsMin < 1 || a.PartsMax < a.PartsMin {
		return fmt.Errorf("parts range [%d,%d] invalid", a.PartsMin, a.PartsMax)
	}
	return nil
}

// ByID returns an archetype by ID, or nil if not found.
func (c *Catalog) ByID(id string) *Archetype { return c.byID[id] }

// Len returns the number of archetypes.
func (c *Catalog) Len() int { return len(c.archetypes) }

// TotalWeight returns the sum of all spawn weights.
func (c *Catalog) TotalWeight() int { return c.totalWeight }

// All returns the archetypes in catalog order.
func (c *Catalog) All() []*Archetype { return c.archetypes }
