package formation

import (
	"math"
	"math/rand"
	"testing"

	"github.com/thalassa/engine/internal/geom"
)

func TestPlaceOnSphere(t *testing.T) {
	rng := rand.New(rand.NewSource(7))
	const radius = 5.0

	for i := 0; i < 1000; i++ {
		p := Place(rng, radius)

		if d := math.Abs(p.Position.Len() - radius); d > 1e-9 {
			t.Fatalf("|position| = %v, want %v", p.Position.Len(), radius)
		}
		if d := math.Abs(p.Normal.Len() - 1); d > 1e-9 {
			t.Fatalf("|normal| = %v, want 1", p.Normal.Len())
		}
		// Normal is position/radius, pointing outward.
		if p.Normal.Dot(p.Position) <= 0 {
			t.Fatal("normal points inward")
		}
		// Rotation carries local +Y onto the normal.
		up := p.Rotation.Rotate(geom.Vec3{Y: 1})
		if math.Abs(up.X-p.Normal.X) > 1e-9 ||
			math.Abs(up.Y-p.Normal.Y) > 1e-9 ||
			math.Abs(up.Z-p.Normal.Z) > 1e-9 {
			t.Fatalf("rotated up %v != normal %v", up, p.Normal)
		}
	}
}

// Place is angle-uniform by design: phi ~ U(0,π) concentrates points near
// the poles relative to an area-uniform draw. The polar caps |y| > r·cos(π/4)
// hold ~29% of the area but receive 50% of angle-uniform draws.
func TestPlaceAngleUniformBias(t *testing.T) {
	rng := rand.New(rand.NewSource(11))
	const radius, n = 1.0, 50_000

	capCount := 0
	cutoff := radius * math.Cos(math.Pi/4)
	for i := 0; i < n; i++ {
		p := Place(rng, radius)
		if math.Abs(p.Position.Y) > cutoff {
			capCount++
		}
	}
	frac := float64(capCount) / n
	if frac < 0.48 || frac > 0.52 {
		t.Errorf("polar cap fraction %.4f, want ≈0.50 for angle-uniform sampling", frac)
	}
}

func TestPlaceUniformArea(t *testing.T) {
	rng := rand.New(rand.NewSource(13))
	const radius, n = 1.0, 50_000

	// Both polar caps |y| > r·cos(π/4) cover 1-cos(π/4) ≈ 29.3% of the area.
	capCount := 0
	cutoff := radius * math.Cos(math.Pi/4)
	for i := 0; i < n; i++ {
		p := PlaceUniformArea(rng, radius)
		if d := math.Abs(p.Position.Len() - radius); d > 1e-9 {
			t.Fatalf("|position| = %v, want %v", p.Position.Len(), radius)
		}
		if math.Abs(p.Position.Y) > cutoff {
			capCount++
		}
	}
	frac := float64(capCount) / n
	if frac < 0.27 || frac > 0.32 {
		t.Errorf("polar cap fraction %.4f, want ≈0.29 for area-uniform sampling", frac)
	}
}
