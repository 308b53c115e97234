package geometry

import (
	"testing"

	"github.com/go-gl/mathgl/mgl32"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var (
	cylBase = mgl32.Vec3{0, 0, 0}
	cylTop  = mgl32.Vec3{0, 2, 0}
)

func TestRay_CylinderIntersection_CappedAxisParallel(t *testing.T) {
	// Ray running up the cylinder axis: the lateral surface contributes no
	// finite roots, only the two end disks are hit.
	ray, ok := NewRayFromPoints(mgl32.Vec3{0, -1, 0}, mgl32.Vec3{0, 3, 0})
	require.True(t, ok)

	res, hit := ray.CylinderIntersection(cylBase, cylTop, 1, CylinderCapped)
	require.True(t, hit)
	assert.InDelta(t, 0.25, float64(res.Min), 1e-6)
	assert.InDelta(t, 0.75, float64(res.Max), 1e-6)

	// Bounds map to the disk planes y=0 and y=2
	assert.InDelta(t, 0.0, float64(ray.At(res.Min).Y()), 1e-6)
	assert.InDelta(t, 2.0, float64(ray.At(res.Max).Y()), 1e-6)
}

func TestRay_CylinderIntersection_FiniteSideHit(t *testing.T) {
	ray, ok := NewRayFromPoints(mgl32.Vec3{-2, 1, 0}, mgl32.Vec3{2, 1, 0})
	require.True(t, ok)

	res, hit := ray.CylinderIntersection(cylBase, cylTop, 1, CylinderFinite)
	require.True(t, hit)
	assert.InDelta(t, 0.25, float64(res.Min), 1e-6)
	assert.InDelta(t, 0.75, float64(res.Max), 1e-6)
}

func TestRay_CylinderIntersection_FiniteClipsAboveTop(t *testing.T) {
	// Crosses the infinite surface at y=3, above the top plane
	ray, ok := NewRayFromPoints(mgl32.Vec3{-2, 3, 0}, mgl32.Vec3{2, 3, 0})
	require.True(t, ok)

	_, hit := ray.CylinderIntersection(cylBase, cylTop, 1, CylinderFinite)
	assert.False(t, hit)

	// The infinite kind keeps exactly those roots
	res, hit := ray.CylinderIntersection(cylBase, cylTop, 1, CylinderInfinite)
	require.True(t, hit)
	assert.InDelta(t, 0.25, float64(res.Min), 1e-6)
	assert.InDelta(t, 0.75, float64(res.Max), 1e-6)
}

func TestRay_CylinderIntersection_FiniteDropsOutOfSlabRoot(t *testing.T) {
	// Diagonal segment crossing the surface at heights 1.5 and 3.5: the
	// finite kind keeps only the first root, the capped kind keeps the raw
	// surface interval (bounding-interval semantics, no re-clipping).
	ray, ok := NewRayFromPoints(mgl32.Vec3{-2, 0.5, 0}, mgl32.Vec3{2, 4.5, 0})
	require.True(t, ok)

	finite, hit := ray.CylinderIntersection(cylBase, cylTop, 1, CylinderFinite)
	require.True(t, hit)
	assert.InDelta(t, 0.25, float64(finite.Min), 1e-6)
	assert.InDelta(t, 0.25, float64(finite.Max), 1e-6)

	capped, hit := ray.CylinderIntersection(cylBase, cylTop, 1, CylinderCapped)
	require.True(t, hit)
	assert.InDelta(t, 0.25, float64(capped.Min), 1e-6)
	assert.InDelta(t, 0.75, float64(capped.Max), 1e-6)
}

func TestRay_CylinderIntersection_Miss(t *testing.T) {
	ray, ok := NewRayFromPoints(mgl32.Vec3{-2, 1, 5}, mgl32.Vec3{2, 1, 5})
	require.True(t, ok)

	for _, kind := range []CylinderKind{CylinderInfinite, CylinderFinite, CylinderCapped} {
		_, hit := ray.CylinderIntersection(cylBase, cylTop, 1, kind)
		assert.False(t, hit, "kind %v", kind)
	}
}
