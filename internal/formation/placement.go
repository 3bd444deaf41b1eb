package formation

import (
	"math"
	"math/rand"

	"github.com/thalassa/engine/internal/geom"
)

// Placement is a root point on the ocean sphere with its outward orientation.
type Placement struct {
	Position geom.Vec3
	Normal   geom.Vec3
	Rotation geom.Quat // rotates local +Y onto Normal
}

// Place draws a point on the sphere using angle-uniform spherical coordinates:
// theta ~ U(0,2π), phi ~ U(0,π), mapped y-up. This is uniform in angle, not
// in area — the poles are sampled more densely than a true uniform-on-sphere
// draw. Deliberate: the denser poles are part of the intended look.
// PlaceUniformArea is the corrected draw for callers that want it.
func Place(rng *rand.Rand, radius float64) Placement {
	theta := rng.Float64() * 2 * math.Pi
	phi := rng.Float64() * math.Pi
	return placeAt(theta, phi, radius)
}

// PlaceUniformArea draws a point uniformly over the sphere's area.
func PlaceUniformArea(rng *rand.Rand, radius float64) Placement {
	theta := rng.Float64() * 2 * math.Pi
	phi := math.Acos(1 - 2*rng.Float64())
	return placeAt(theta, phi, radius)
}

func placeAt(theta, phi, radius float64) Placement {
	sinPhi := math.Sin(phi)
	pos := geom.Vec3{
		X: radius * sinPhi * math.Cos(theta),
		Y: radius * math.Cos(phi),
		Z: radius * sinPhi * math.Sin(theta),
	}
	normal := pos.Normalize()
	return Placement{
		Position: pos,
		Normal:   normal,
		Rotation: geom.RotationBetween(geom.Vec3{Y: 1}, normal),
	}
}
