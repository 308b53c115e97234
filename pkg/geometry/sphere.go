package geometry

import (
	"github.com/go-gl/mathgl/mgl32"

	"github.com/rgeom/go-raycast/pkg/math3"
)

// SphereIntersection returns the parameter interval over which the ray is
// inside the sphere. Solves |Origin + Dir*t - center|² = radius² as a
// quadratic in t.
func (r Ray) SphereIntersection(center mgl32.Vec3, radius float32) (*Intersection, bool) {
	oc := r.Origin.Sub(center)

	a := r.Dir.Dot(r.Dir)
	b := 2 * r.Dir.Dot(oc)
	c := oc.Dot(oc) - radius*radius

	return NewIntersection(math3.SolveQuadratic(a, b, c)...)
}

// SphereIntersectionPoints returns the two intersection points clipped to
// the segment range, or absence if there was no intersection.
func (r Ray) SphereIntersectionPoints(center mgl32.Vec3, radius float32) ([2]mgl32.Vec3, bool) {
	return r.EvalPoints(r.SphereIntersection(center, radius))
}

// IntersectsSphere reports intersection without extracting the points.
// Only the discriminant sign is evaluated, so it agrees with
// SphereIntersection on every input at a fraction of the cost.
func (r Ray) IntersectsSphere(center mgl32.Vec3, radius float32) bool {
	oc := r.Origin.Sub(center)

	a := r.Dir.Dot(r.Dir)
	b := 2 * r.Dir.Dot(oc)
	c := oc.Dot(oc) - radius*radius

	return b*b-4*a*c >= 0
}
