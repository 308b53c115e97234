package geometry

import "github.com/chewxy/math32"

// Intersection is the ray parameter interval [Min, Max] over which a ray is
// inside or on a primitive. Min <= Max holds for every constructed value.
type Intersection struct {
	Min float32
	Max float32
}

// NewIntersection builds the interval spanning the given parameter roots.
// It reports false when no usable root is passed; explicit absence replaces
// the +Inf/-Inf sentinel an empty span would otherwise need. NaN roots, as
// produced by degenerate quadratics, are skipped.
func NewIntersection(roots ...float32) (*Intersection, bool) {
	var result *Intersection
	for _, root := range roots {
		if math32.IsNaN(root) {
			continue
		}
		if result == nil {
			result = &Intersection{Min: root, Max: root}
			continue
		}
		result.Merge(root)
	}
	return result, result != nil
}

// Merge expands the interval to include t. NaN is ignored.
func (i *Intersection) Merge(t float32) {
	if t < i.Min {
		i.Min = t
	}
	if t > i.Max {
		i.Max = t
	}
}

// MergeRoots merges every parameter in ts.
func (i *Intersection) MergeRoots(ts ...float32) {
	for _, t := range ts {
		i.Merge(t)
	}
}

// MergeIntersections returns the bounding interval of the union of the
// given intervals. Nil entries contribute nothing; if every entry is nil
// the union itself is absent. Disjoint inputs are flattened into one
// continuous range, which is what compound shapes such as the capsule
// want but is lossy as a true set union.
func MergeIntersections(parts ...*Intersection) (*Intersection, bool) {
	var result *Intersection
	for _, part := range parts {
		if part == nil {
			continue
		}
		if result == nil {
			result = &Intersection{Min: part.Min, Max: part.Max}
			continue
		}
		result.Merge(part.Min)
		result.Merge(part.Max)
	}
	return result, result != nil
}
