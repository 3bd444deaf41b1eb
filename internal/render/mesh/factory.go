// Package mesh is the procedural geometry factory used by the demo binary
// and the tests. It stands in for the GPU-side geometry/material collaborator:
// given an archetype id it fabricates a drawable object graph with a designed
// scale and a part count drawn from the archetype's ranges.
package mesh

import (
	"fmt"
	"math/rand"

	"github.com/thalassa/engine/internal/formation"
	"github.com/thalassa/engine/internal/render"
)

// Drawable is a fabricated formation mesh.
type Drawable struct {
	id        uint64
	scale     float64
	Archetype string
	Parts     int

	// ReleaseCount lets tests assert the exactly-once release contract.
	ReleaseCount int
}

func (d *Drawable) ID() uint64             { return d.id }
func (d *Drawable) DesignedScale() float64 { return d.scale }
func (d *Drawable) ReleaseResources()      { d.ReleaseCount++ }

// Factory builds Drawables from catalog archetypes.
type Factory struct {
	catalog *formation.Catalog
	rng     *rand.Rand
	nextID  uint64

	// FailNext makes the next Construct call fail with the given error.
	// Test hook for the abandoned-spawn path.
	FailNext error
}

func NewFactory(catalog *formation.Catalog, rng *rand.Rand) *Factory {
	return &Factory{catalog: catalog, rng: rng}
}

var _ render.Factory = (*Factory)(nil)

func (f *Factory) Construct(archetypeID string) (render.Drawable, error) {
	if err := f.FailNext; err != nil {
		f.FailNext = nil
		return nil, err
	}
	a := f.catalog.ByID(archetypeID)
	if a == nil {
		return nil, fmt.Errorf("construct: unknown archetype %q", archetypeID)
	}
	f.nextID++
	return &Drawable{
		id:        f.nextID,
		scale:     a.ScaleMin + f.rng.Float64()*(a.ScaleMax-a.ScaleMin),
		Archetype: a.ID,
		Parts:     a.PartsMin + f.rng.Intn(a.PartsMax-a.PartsMin+1),
	}, nil
}
