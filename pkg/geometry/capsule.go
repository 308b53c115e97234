package geometry

import "github.com/go-gl/mathgl/mgl32"

// CapsuleIntersection intersects the ray with the capsule of the given
// radius around the axis segment pa..pb: an open finite cylinder plus a
// sphere cap at each end. The three partial intervals are merged into their
// bounding interval, which coincides with the true capsule interval for any
// ray that enters and leaves the capsule once.
func (r Ray) CapsuleIntersection(pa, pb mgl32.Vec3, radius float32) ([2]mgl32.Vec3, bool) {
	side, _ := r.CylinderIntersection(pa, pb, radius, CylinderFinite)
	capA, _ := r.SphereIntersection(pa, radius)
	capB, _ := r.SphereIntersection(pb, radius)

	return r.EvalPoints(MergeIntersections(side, capA, capB))
}
