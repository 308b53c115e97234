package geometry

import (
	"github.com/go-gl/mathgl/mgl32"

	"github.com/rgeom/go-raycast/pkg/math3"
)

// TriangleIntersection returns the point at which the ray crosses the
// triangle a, b, c. The triangle's plane is built from the cross product of
// two edges; a degenerate (zero-area) triangle has no plane and never
// intersects. Crossings outside the segment range or outside the triangle
// are rejected.
func (r Ray) TriangleIntersection(a, b, c mgl32.Vec3) (mgl32.Vec3, bool) {
	ba := b.Sub(a)
	ca := c.Sub(a)

	plane, ok := math3.NewPlaneFromPointAndNormal(a, ba.Cross(ca))
	if !ok {
		return mgl32.Vec3{}, false
	}

	point, ok := r.PlaneIntersectionPoint(plane)
	if !ok || !math3.PointInTriangle(point, a, b, c) {
		return mgl32.Vec3{}, false
	}
	return point, true
}
