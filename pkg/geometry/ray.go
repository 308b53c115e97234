// Package geometry implements analytic ray/primitive intersection tests:
// sphere, axis-aligned box, plane, triangle, cylinder and capsule, plus an
// AABB/BVH picking layer on top of them.
//
// A Ray is the parametric line P(t) = Origin + Dir*t. Dir is not required
// to be unit length; a ray built from two points keeps the segment between
// them as the t ∈ [0, 1] range, which is the range the point-producing
// queries clip to.
package geometry

import (
	"github.com/go-gl/mathgl/mgl32"

	"github.com/rgeom/go-raycast/pkg/math3"
)

// Ray represents a ray with an origin and direction.
type Ray struct {
	Origin mgl32.Vec3
	Dir    mgl32.Vec3
}

// NewRay creates a new ray.
func NewRay(origin, dir mgl32.Vec3) Ray {
	return Ray{Origin: origin, Dir: dir}
}

// DefaultRay returns a ray at the world origin pointing along +Z.
func DefaultRay() Ray {
	return Ray{Dir: mgl32.Vec3{0, 0, 1}}
}

// NewRayFromPoints builds the ray spanning begin to end, so that t=0 is
// begin and t=1 is end. It reports false when the two points coincide and
// no direction exists.
func NewRayFromPoints(begin, end mgl32.Vec3) (Ray, bool) {
	dir := end.Sub(begin)
	if dir.Len() < math3.Epsilon {
		return Ray{}, false
	}
	return Ray{Origin: begin, Dir: dir}, true
}

// At returns the point at parameter t along the ray.
func (r Ray) At(t float32) mgl32.Vec3 {
	return r.Origin.Add(r.Dir.Mul(t))
}

// Project returns the parameter of the point on the infinite line through
// the ray closest to p. The result is undefined for a zero direction.
func (r Ray) Project(p mgl32.Vec3) float32 {
	return p.Sub(r.Origin).Dot(r.Dir) / r.Dir.LenSqr()
}

// EvalPoints converts an interval query result into concrete points,
// keeping only the bounds inside the [0, 1] segment range. With a single
// valid bound both points equal it; with none the result is absent. The
// signature matches the query return shape so results chain directly:
//
//	points, ok := ray.EvalPoints(ray.BoxIntersection(min, max))
func (r Ray) EvalPoints(res *Intersection, ok bool) ([2]mgl32.Vec3, bool) {
	if !ok || res == nil {
		return [2]mgl32.Vec3{}, false
	}

	minValid := res.Min >= 0 && res.Min <= 1
	maxValid := res.Max >= 0 && res.Max <= 1
	switch {
	case minValid && maxValid:
		return [2]mgl32.Vec3{r.At(res.Min), r.At(res.Max)}, true
	case minValid:
		p := r.At(res.Min)
		return [2]mgl32.Vec3{p, p}, true
	case maxValid:
		p := r.At(res.Max)
		return [2]mgl32.Vec3{p, p}, true
	default:
		return [2]mgl32.Vec3{}, false
	}
}
