package geometry

import "github.com/go-gl/mathgl/mgl32"

// BoxIntersection runs the slab test against the axis-aligned box spanning
// min..max. Per axis the two crossing parameters are ordered by the sign of
// the direction component; a zero component divides to ±Inf, which the
// interval comparisons tolerate without explicit guards. The final interval
// must overlap the [0, 1] segment range.
func (r Ray) BoxIntersection(min, max mgl32.Vec3) (*Intersection, bool) {
	var tmin, tmax float32
	if r.Dir[0] >= 0 {
		tmin = (min[0] - r.Origin[0]) / r.Dir[0]
		tmax = (max[0] - r.Origin[0]) / r.Dir[0]
	} else {
		tmin = (max[0] - r.Origin[0]) / r.Dir[0]
		tmax = (min[0] - r.Origin[0]) / r.Dir[0]
	}

	for axis := 1; axis < 3; axis++ {
		var lo, hi float32
		if r.Dir[axis] >= 0 {
			lo = (min[axis] - r.Origin[axis]) / r.Dir[axis]
			hi = (max[axis] - r.Origin[axis]) / r.Dir[axis]
		} else {
			lo = (max[axis] - r.Origin[axis]) / r.Dir[axis]
			hi = (min[axis] - r.Origin[axis]) / r.Dir[axis]
		}

		if tmin > hi || lo > tmax {
			return nil, false
		}
		if lo > tmin {
			tmin = lo
		}
		if hi < tmax {
			tmax = hi
		}
	}

	if tmin < 1 && tmax > 0 {
		return &Intersection{Min: tmin, Max: tmax}, true
	}
	return nil, false
}

// BoxIntersectionPoints returns the two box intersection points clipped to
// the segment range.
func (r Ray) BoxIntersectionPoints(min, max mgl32.Vec3) ([2]mgl32.Vec3, bool) {
	return r.EvalPoints(r.BoxIntersection(min, max))
}
