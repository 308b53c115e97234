package math3

import (
	"github.com/chewxy/math32"
	"github.com/go-gl/mathgl/mgl32"
)

// PointInTriangle reports whether p, assumed to lie in the triangle's
// plane, is inside the triangle a, b, c. Containment is decided with
// barycentric coordinates; a degenerate (zero-area) triangle contains
// nothing.
func PointInTriangle(p, a, b, c mgl32.Vec3) bool {
	v0 := c.Sub(a)
	v1 := b.Sub(a)
	v2 := p.Sub(a)

	dot00 := v0.Dot(v0)
	dot01 := v0.Dot(v1)
	dot02 := v0.Dot(v2)
	dot11 := v1.Dot(v1)
	dot12 := v1.Dot(v2)

	denom := dot00*dot11 - dot01*dot01
	if math32.Abs(denom) < Epsilon {
		return false
	}

	invDenom := 1 / denom
	u := (dot11*dot02 - dot01*dot12) * invDenom
	v := (dot00*dot12 - dot01*dot02) * invDenom
	return u >= 0 && v >= 0 && u+v <= 1
}
