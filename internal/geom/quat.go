package geom

import "math"

// Quat is a rotation quaternion (w + xi + yj + zk).
type Quat struct {
	W, X, Y, Z float64
}

func QuatIdentity() Quat {
	return Quat{W: 1}
}

func (q Quat) Normalize() Quat {
	mag := math.Sqrt(q.W*q.W + q.X*q.X + q.Y*q.Y + q.Z*q.Z)
	if mag == 0 {
		return QuatIdentity()
	}
	inv := 1.0 / mag
	return Quat{q.W * inv, q.X * inv, q.Y * inv, q.Z * inv}
}

const parallelEps = 1e-9

// RotationBetween returns the shortest-arc rotation taking direction `from`
// to direction `to`. Inputs need not be unit length.
func RotationBetween(from, to Vec3) Quat {
	f := from.Normalize()
	t := to.Normalize()
	d := f.Dot(t)

	if d >= 1-parallelEps {
		return QuatIdentity()
	}
	if d <= -1+parallelEps {
		// Opposite directions: rotate 180° around any axis orthogonal to f.
		axis := Vec3{Y: 1}.Cross(f)
		if axis.LenSq() < parallelEps {
			axis = Vec3{X: 1}.Cross(f)
		}
		axis = axis.Normalize()
		return Quat{W: 0, X: axis.X, Y: axis.Y, Z: axis.Z}
	}

	axis := f.Cross(t)
	return Quat{W: 1 + d, X: axis.X, Y: axis.Y, Z: axis.Z}.Normalize()
}

// Rotate applies the rotation to v (computes q v q*).
func (q Quat) Rotate(v Vec3) Vec3 {
	u := Vec3{q.X, q.Y, q.Z}
	uv := u.Cross(v)
	uuv := u.Cross(uv)
	return v.Add(uv.Scale(2 * q.W)).Add(uuv.Scale(2))
}
