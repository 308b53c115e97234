// Package math3 holds the small pieces of 3D math the geometry package
// builds on: vector helpers over mgl32, a plane type, a quadratic solver
// and a point-in-triangle predicate.
package math3

import (
	"github.com/go-gl/mathgl/mgl32"
)

// Epsilon is the length below which a vector is treated as degenerate.
const Epsilon = 1e-7

// Normalized returns the unit vector along v. It reports false when v is
// too short to carry a direction; mgl32's own Normalize divides blindly
// and would produce Inf components instead.
func Normalized(v mgl32.Vec3) (mgl32.Vec3, bool) {
	length := v.Len()
	if length < Epsilon {
		return mgl32.Vec3{}, false
	}
	return v.Mul(1 / length), true
}

// SqrDistance returns the squared distance between two points.
func SqrDistance(a, b mgl32.Vec3) float32 {
	return b.Sub(a).LenSqr()
}
