package geometry

import (
	"github.com/chewxy/math32"
	"github.com/go-gl/mathgl/mgl32"
)

// BVHNode represents a node in the Bounding Volume Hierarchy.
type BVHNode struct {
	BoundingBox AABB
	Left        *BVHNode
	Right       *BVHNode
	Shapes      []Shape // Leaf shapes (nil for internal nodes)
}

// BVH is a Bounding Volume Hierarchy used as a broad phase for picking:
// it narrows a ray query down to the few shapes whose bounds the ray
// actually crosses before running the analytic tests.
type BVH struct {
	Root *BVHNode
}

// Pick is the result of a BVH raycast: the shape hit nearest to the ray
// origin, the segment parameter of the entry point and the point itself.
type Pick struct {
	Shape Shape
	T     float32
	Point mgl32.Vec3
}

// Leaf threshold: nodes with this many or fewer shapes stay leaves.
const leafThreshold = 8

// NewBVH constructs a BVH from a slice of shapes. The slice is copied, so
// concurrent builds over the same input are safe.
func NewBVH(shapes []Shape) *BVH {
	if len(shapes) == 0 {
		return &BVH{}
	}

	shapesCopy := make([]Shape, len(shapes))
	copy(shapesCopy, shapes)

	return &BVH{Root: buildBVH(shapesCopy)}
}

// buildBVH recursively builds the hierarchy using median splits along the
// longest axis of the node bounds. Binned median splitting is much cheaper
// than sorting and keeps query performance close to it.
func buildBVH(shapes []Shape) *BVHNode {
	boundingBox := shapes[0].Bounds()
	for _, shape := range shapes[1:] {
		boundingBox = boundingBox.Union(shape.Bounds())
	}

	if len(shapes) <= leafThreshold {
		return &BVHNode{BoundingBox: boundingBox, Shapes: shapes}
	}

	axis, splitPos, ok := findSplit(boundingBox)
	if !ok {
		return &BVHNode{BoundingBox: boundingBox, Shapes: shapes}
	}

	left, right := partitionShapes(shapes, axis, splitPos)
	if len(left) == 0 || len(right) == 0 {
		return &BVHNode{BoundingBox: boundingBox, Shapes: shapes}
	}

	return &BVHNode{
		BoundingBox: boundingBox,
		Left:        buildBVH(left),
		Right:       buildBVH(right),
	}
}

// findSplit picks the longest axis and its midpoint as the split position.
// It reports false when the bounds have no extent along that axis.
func findSplit(boundingBox AABB) (axis int, splitPos float32, ok bool) {
	axis = boundingBox.LongestAxis()

	minVal := boundingBox.Min[axis]
	maxVal := boundingBox.Max[axis]
	if maxVal <= minVal {
		return -1, 0, false
	}
	return axis, (minVal + maxVal) * 0.5, true
}

// partitionShapes splits shapes by their bounds center along the axis.
func partitionShapes(shapes []Shape, axis int, splitPos float32) ([]Shape, []Shape) {
	var left, right []Shape
	for _, shape := range shapes {
		if shape.Bounds().Center()[axis] < splitPos {
			left = append(left, shape)
		} else {
			right = append(right, shape)
		}
	}
	return left, right
}

// Raycast returns the shape whose intersection interval starts nearest to
// the ray origin, restricted to the [0, 1] segment range. Shapes whose
// interval lies entirely outside the segment are ignored; for a ray
// starting inside a shape the entry parameter is clamped to zero.
func (bvh *BVH) Raycast(r Ray) (Pick, bool) {
	best := Pick{T: math32.MaxFloat32}
	found := false

	if bvh.Root != nil {
		bvh.raycastNode(bvh.Root, r, &best, &found)
	}
	return best, found
}

func (bvh *BVH) raycastNode(node *BVHNode, r Ray, best *Pick, found *bool) {
	if _, hit := node.BoundingBox.Intersect(r); !hit {
		return
	}

	if node.Shapes != nil {
		for _, shape := range node.Shapes {
			res, hit := shape.Intersect(r)
			if !hit || res.Max < 0 || res.Min > 1 {
				continue
			}
			t := math32.Max(res.Min, 0)
			if t < best.T {
				*best = Pick{Shape: shape, T: t, Point: r.At(t)}
				*found = true
			}
		}
		return
	}

	if node.Left != nil {
		bvh.raycastNode(node.Left, r, best, found)
	}
	if node.Right != nil {
		bvh.raycastNode(node.Right, r, best, found)
	}
}
