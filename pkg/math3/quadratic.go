package math3

import "github.com/chewxy/math32"

// SolveQuadratic returns the real roots of a*x² + b*x + c = 0: nil when the
// discriminant is negative, one root when it is zero and two (unordered)
// roots otherwise. A zero leading coefficient is not special cased; the
// division follows IEEE-754 and degenerate inputs yield Inf or NaN roots,
// which downstream interval construction tolerates.
func SolveQuadratic(a, b, c float32) []float32 {
	discriminant := b*b - 4*a*c
	if discriminant < 0 {
		return nil
	}
	if discriminant == 0 {
		return []float32{-b / (2 * a)}
	}

	sqrtD := math32.Sqrt(discriminant)
	return []float32{
		(-b + sqrtD) / (2 * a),
		(-b - sqrtD) / (2 * a),
	}
}
