package geometry

import (
	"github.com/chewxy/math32"
	"github.com/go-gl/mathgl/mgl32"
)

// AABB represents an axis-aligned bounding box.
type AABB struct {
	Min mgl32.Vec3 // Minimum corner
	Max mgl32.Vec3 // Maximum corner
}

// NewAABB creates a new AABB from min and max points.
func NewAABB(min, max mgl32.Vec3) AABB {
	return AABB{Min: min, Max: max}
}

// NewAABBFromPoints creates an AABB that bounds all given points.
func NewAABBFromPoints(points ...mgl32.Vec3) AABB {
	if len(points) == 0 {
		return AABB{}
	}

	min := points[0]
	max := points[0]
	for _, point := range points[1:] {
		for axis := 0; axis < 3; axis++ {
			min[axis] = math32.Min(min[axis], point[axis])
			max[axis] = math32.Max(max[axis], point[axis])
		}
	}
	return AABB{Min: min, Max: max}
}

// Intersect runs the segment slab test against the box.
func (b AABB) Intersect(r Ray) (*Intersection, bool) {
	return r.BoxIntersection(b.Min, b.Max)
}

// Union returns an AABB that bounds both this AABB and another.
func (b AABB) Union(other AABB) AABB {
	var min, max mgl32.Vec3
	for axis := 0; axis < 3; axis++ {
		min[axis] = math32.Min(b.Min[axis], other.Min[axis])
		max[axis] = math32.Max(b.Max[axis], other.Max[axis])
	}
	return AABB{Min: min, Max: max}
}

// Center returns the center point of the AABB.
func (b AABB) Center() mgl32.Vec3 {
	return b.Min.Add(b.Max).Mul(0.5)
}

// Size returns the extent of the AABB along each axis.
func (b AABB) Size() mgl32.Vec3 {
	return b.Max.Sub(b.Min)
}

// LongestAxis returns the axis (0=X, 1=Y, 2=Z) with the longest extent.
func (b AABB) LongestAxis() int {
	size := b.Size()
	if size[0] > size[1] && size[0] > size[2] {
		return 0
	}
	if size[1] > size[2] {
		return 1
	}
	return 2
}

// Expand returns an AABB grown by the given amount in all directions.
func (b AABB) Expand(amount float32) AABB {
	expansion := mgl32.Vec3{amount, amount, amount}
	return AABB{
		Min: b.Min.Sub(expansion),
		Max: b.Max.Add(expansion),
	}
}
