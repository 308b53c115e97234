package math3

import "github.com/go-gl/mathgl/mgl32"

// Plane is the set of points p satisfying Dot(p, Normal) + D = 0. Normal is
// unit length for planes built through the constructor.
type Plane struct {
	Normal mgl32.Vec3
	D      float32
}

// NewPlaneFromPointAndNormal builds the plane through point with the given
// normal. It reports false when the normal is degenerate.
func NewPlaneFromPointAndNormal(point, normal mgl32.Vec3) (Plane, bool) {
	n, ok := Normalized(normal)
	if !ok {
		return Plane{}, false
	}
	return Plane{Normal: n, D: -point.Dot(n)}, true
}

// Distance returns the signed distance from p to the plane.
func (pl Plane) Distance(p mgl32.Vec3) float32 {
	return p.Dot(pl.Normal) + pl.D
}
