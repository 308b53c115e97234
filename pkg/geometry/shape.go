package geometry

import (
	"github.com/go-gl/mathgl/mgl32"

	"github.com/rgeom/go-raycast/pkg/math3"
)

// Shape is anything the picking layer can cast a ray against. ID is an
// opaque handle chosen by the caller, typically an entity or node index.
type Shape interface {
	ID() int
	Bounds() AABB
	Intersect(r Ray) (*Intersection, bool)
}

// Sphere is a pickable sphere.
type Sphere struct {
	Handle int
	Center mgl32.Vec3
	Radius float32
}

func (s Sphere) ID() int { return s.Handle }

// Bounds returns the axis-aligned bounding box of the sphere.
func (s Sphere) Bounds() AABB {
	radius := mgl32.Vec3{s.Radius, s.Radius, s.Radius}
	return NewAABB(s.Center.Sub(radius), s.Center.Add(radius))
}

func (s Sphere) Intersect(r Ray) (*Intersection, bool) {
	return r.SphereIntersection(s.Center, s.Radius)
}

// Box is a pickable axis-aligned box.
type Box struct {
	Handle int
	Min    mgl32.Vec3
	Max    mgl32.Vec3
}

func (b Box) ID() int { return b.Handle }

func (b Box) Bounds() AABB {
	return NewAABB(b.Min, b.Max)
}

func (b Box) Intersect(r Ray) (*Intersection, bool) {
	return r.BoxIntersection(b.Min, b.Max)
}

// Triangle is a pickable triangle.
type Triangle struct {
	Handle  int
	A, B, C mgl32.Vec3
}

func (t Triangle) ID() int { return t.Handle }

func (t Triangle) Bounds() AABB {
	return NewAABBFromPoints(t.A, t.B, t.C)
}

// Intersect reports the plane crossing parameter as a point interval. A
// triangle is flat, so Min == Max.
func (t Triangle) Intersect(r Ray) (*Intersection, bool) {
	ba := t.B.Sub(t.A)
	ca := t.C.Sub(t.A)

	plane, ok := math3.NewPlaneFromPointAndNormal(t.A, ba.Cross(ca))
	if !ok {
		return nil, false
	}

	at := r.PlaneIntersection(plane)
	if at < 0 || at > 1 || !math3.PointInTriangle(r.At(at), t.A, t.B, t.C) {
		return nil, false
	}
	return &Intersection{Min: at, Max: at}, true
}

// Cylinder is a pickable cylinder around the axis segment Base..Top.
type Cylinder struct {
	Handle int
	Base   mgl32.Vec3
	Top    mgl32.Vec3
	Radius float32
	Kind   CylinderKind
}

func (c Cylinder) ID() int { return c.Handle }

// Bounds returns the segment box grown by the radius. Conservative but
// cheap; an infinite cylinder has no finite bounds, so this only makes
// sense for the finite and capped kinds.
func (c Cylinder) Bounds() AABB {
	return NewAABBFromPoints(c.Base, c.Top).Expand(c.Radius)
}

func (c Cylinder) Intersect(r Ray) (*Intersection, bool) {
	return r.CylinderIntersection(c.Base, c.Top, c.Radius, c.Kind)
}

// Capsule is a pickable capsule around the axis segment Start..End.
type Capsule struct {
	Handle int
	Start  mgl32.Vec3
	End    mgl32.Vec3
	Radius float32
}

func (c Capsule) ID() int { return c.Handle }

func (c Capsule) Bounds() AABB {
	return NewAABBFromPoints(c.Start, c.End).Expand(c.Radius)
}

// Intersect merges the open finite cylinder with the two sphere caps, the
// same composition CapsuleIntersection uses.
func (c Capsule) Intersect(r Ray) (*Intersection, bool) {
	side, _ := r.CylinderIntersection(c.Start, c.End, c.Radius, CylinderFinite)
	capA, _ := r.SphereIntersection(c.Start, c.Radius)
	capB, _ := r.SphereIntersection(c.End, c.Radius)
	return MergeIntersections(side, capA, capB)
}
