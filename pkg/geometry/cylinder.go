package geometry

import (
	"github.com/go-gl/mathgl/mgl32"

	"github.com/rgeom/go-raycast/pkg/math3"
)

// CylinderKind selects how the raw lateral-surface roots of a cylinder
// intersection are post-processed.
type CylinderKind int

const (
	// CylinderInfinite is the pure analytic surface, no clipping.
	CylinderInfinite CylinderKind = iota
	// CylinderFinite keeps only surface hits between the two axis planes;
	// there are no end disks.
	CylinderFinite
	// CylinderCapped adds the two flat end disks to the surface hits.
	CylinderCapped
)

// CylinderIntersection intersects the ray with the cylinder of the given
// radius around the axis segment pa..pb.
//
// The infinite surface around the axis through pa with unit direction va is
//
//	|q - pa - ((q-pa)·va)va|² = r²
//
// Substituting q = Origin + Dir*t reduces it to a quadratic in t whose
// coefficients use only the components of Dir and Origin-pa perpendicular
// to va (https://mrl.nyu.edu/~dzorin/rend05/lecture2.pdf). The kind decides
// what happens to the two raw roots.
//
// When pa and pb coincide there is no axis; a +Y fallback keeps the
// arithmetic finite but the answer is not meaningful, so callers must not
// pass coincident endpoints.
func (r Ray) CylinderIntersection(pa, pb mgl32.Vec3, radius float32, kind CylinderKind) (*Intersection, bool) {
	va, ok := math3.Normalized(pb.Sub(pa))
	if !ok {
		va = mgl32.Vec3{0, 1, 0}
	}

	vl := r.Dir.Sub(va.Mul(r.Dir.Dot(va)))
	dp := r.Origin.Sub(pa)
	dpPerp := dp.Sub(va.Mul(dp.Dot(va)))

	a := vl.LenSqr()
	b := 2 * vl.Dot(dpPerp)
	c := dpPerp.LenSqr() - radius*radius

	roots := math3.SolveQuadratic(a, b, c)
	if len(roots) == 0 {
		return nil, false
	}

	switch kind {
	case CylinderCapped:
		result, _ := NewIntersection(roots...)
		for _, disk := range [2]struct {
			center mgl32.Vec3
			normal mgl32.Vec3
		}{
			{center: pa, normal: va.Mul(-1)},
			{center: pb, normal: va},
		} {
			plane, ok := math3.NewPlaneFromPointAndNormal(disk.center, disk.normal)
			if !ok {
				continue
			}
			t := r.PlaneIntersection(plane)
			if t > 0 {
				point := r.At(t)
				if math3.SqrDistance(disk.center, point) <= radius*radius {
					if result == nil {
						result = &Intersection{Min: t, Max: t}
					} else {
						result.Merge(t)
					}
				}
			}
		}
		return result, result != nil

	case CylinderFinite:
		// Keep only surface hits lying between the two cap planes.
		var clipped []float32
		for _, root := range roots {
			point := r.At(root)
			if point.Sub(pa).Dot(va) >= 0 && pb.Sub(point).Dot(va) >= 0 {
				clipped = append(clipped, root)
			}
		}
		return NewIntersection(clipped...)

	default:
		return NewIntersection(roots...)
	}
}
