package geometry

import (
	"github.com/go-gl/mathgl/mgl32"

	"github.com/rgeom/go-raycast/pkg/math3"
)

// PlaneIntersection solves the plane equation for the ray parameter at the
// crossing. The raw value is returned: a result outside [0, 1] means no hit
// on the bounded segment, and a ray parallel to the plane divides to ±Inf.
func (r Ray) PlaneIntersection(p math3.Plane) float32 {
	u := -(r.Origin.Dot(p.Normal) + p.D)
	v := r.Dir.Dot(p.Normal)
	return u / v
}

// PlaneIntersectionPoint evaluates the plane crossing when it lies within
// the segment range.
func (r Ray) PlaneIntersectionPoint(p math3.Plane) (mgl32.Vec3, bool) {
	t := r.PlaneIntersection(p)
	if t < 0 || t > 1 {
		return mgl32.Vec3{}, false
	}
	return r.At(t), true
}
