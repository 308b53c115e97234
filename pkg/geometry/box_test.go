package geometry

import (
	"testing"

	"github.com/go-gl/mathgl/mgl32"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRay_BoxIntersection_MissOffAxis(t *testing.T) {
	// Ray along +X through the origin against a box sitting at y ∈ [5, 6]
	ray := NewRay(mgl32.Vec3{}, mgl32.Vec3{1, 0, 0})

	res, ok := ray.BoxIntersection(mgl32.Vec3{-1, 5, -1}, mgl32.Vec3{1, 6, 1})
	assert.False(t, ok)
	assert.Nil(t, res)
}

func TestRay_BoxIntersection_ThroughCenter(t *testing.T) {
	ray, ok := NewRayFromPoints(mgl32.Vec3{-2, 0.5, 0.5}, mgl32.Vec3{2, 0.5, 0.5})
	require.True(t, ok)

	res, hit := ray.BoxIntersection(mgl32.Vec3{0, 0, 0}, mgl32.Vec3{1, 1, 1})
	require.True(t, hit)
	assert.InDelta(t, 0.5, float64(res.Min), 1e-6)
	assert.InDelta(t, 0.75, float64(res.Max), 1e-6)

	// Interval bounds map onto the box surface
	assert.InDelta(t, 0.0, float64(ray.At(res.Min).X()), 1e-6)
	assert.InDelta(t, 1.0, float64(ray.At(res.Max).X()), 1e-6)
}

func TestRay_BoxIntersection_NegativeDirection(t *testing.T) {
	ray, ok := NewRayFromPoints(mgl32.Vec3{2, 0.5, 0.5}, mgl32.Vec3{-2, 0.5, 0.5})
	require.True(t, ok)

	res, hit := ray.BoxIntersection(mgl32.Vec3{0, 0, 0}, mgl32.Vec3{1, 1, 1})
	require.True(t, hit)
	assert.InDelta(t, 0.25, float64(res.Min), 1e-6)
	assert.InDelta(t, 0.5, float64(res.Max), 1e-6)
}

func TestRay_BoxIntersection_SegmentEndsBeforeBox(t *testing.T) {
	// The box lies beyond t=1, outside the bounded segment
	ray, ok := NewRayFromPoints(mgl32.Vec3{-4, 0.5, 0.5}, mgl32.Vec3{-3, 0.5, 0.5})
	require.True(t, ok)

	_, hit := ray.BoxIntersection(mgl32.Vec3{0, 0, 0}, mgl32.Vec3{1, 1, 1})
	assert.False(t, hit)
}

func TestRay_BoxIntersection_BehindSegment(t *testing.T) {
	ray, ok := NewRayFromPoints(mgl32.Vec3{3, 0.5, 0.5}, mgl32.Vec3{4, 0.5, 0.5})
	require.True(t, ok)

	_, hit := ray.BoxIntersection(mgl32.Vec3{0, 0, 0}, mgl32.Vec3{1, 1, 1})
	assert.False(t, hit)
}

func TestRay_BoxIntersection_ZeroDirectionComponents(t *testing.T) {
	// Dir has zero Y and Z components; the slab divisions produce ±Inf and
	// the test still resolves without explicit guards.
	ray := NewRay(mgl32.Vec3{-2, 0.5, 0.5}, mgl32.Vec3{4, 0, 0})

	res, hit := ray.BoxIntersection(mgl32.Vec3{0, 0, 0}, mgl32.Vec3{1, 1, 1})
	require.True(t, hit)
	assert.InDelta(t, 0.5, float64(res.Min), 1e-6)
	assert.InDelta(t, 0.75, float64(res.Max), 1e-6)

	// Same ray shifted outside the slab must miss
	outside := NewRay(mgl32.Vec3{-2, 2.5, 0.5}, mgl32.Vec3{4, 0, 0})
	_, hit = outside.BoxIntersection(mgl32.Vec3{0, 0, 0}, mgl32.Vec3{1, 1, 1})
	assert.False(t, hit)
}

func TestRay_BoxIntersectionPoints(t *testing.T) {
	ray, ok := NewRayFromPoints(mgl32.Vec3{0.5, -2, 0.5}, mgl32.Vec3{0.5, 2, 0.5})
	require.True(t, ok)

	points, hit := ray.BoxIntersectionPoints(mgl32.Vec3{0, 0, 0}, mgl32.Vec3{1, 1, 1})
	require.True(t, hit)
	assert.InDelta(t, 0.0, float64(points[0].Y()), 1e-6)
	assert.InDelta(t, 1.0, float64(points[1].Y()), 1e-6)
}
