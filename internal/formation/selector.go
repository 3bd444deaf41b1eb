package formation

import "math/rand"

// Selector draws archetypes from the catalog in proportion to their spawn
// weights: the long-run frequency of archetype i converges to w_i/Σw.
// Stateless aside from the injected random source.
type Selector struct {
	catalog *Catalog
	rng     *rand.Rand
}

// NewSelector wraps an already-validated catalog. Catalog validity (non-empty,
// positive weights) is established by NewCatalog at configure time.
func NewSelector(catalog *Catalog, rng *rand.Rand) *Selector {
	return &Selector{catalog: catalog, rng: rng}
}

// Pick returns one archetype: a uniform draw in [0, Σw) walked through the
// catalog in order, subtracting weights until the remainder is spent.
func (s *Selector) Pick() *Archetype {
	r := s.rng.Float64() * float64(s.catalog.totalWeight)
	for _, a := range s.catalog.archetypes {
		r -= float64(a.Weight)
		if r <= 0 {
			return a
		}
	}
	// Float round-off can leave a sliver of remainder; it belongs to the
	// last archetype.
	return s.catalog.archetypes[len(s.catalog.archetypes)-1]
}
