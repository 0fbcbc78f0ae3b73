package naca

import "math"

// CosineSpacing returns n chordwise stations on [0,1] following
// x_i = ½(1 − cos β_i), with β_i evenly spaced over [0, π] inclusive of
// both endpoints. Because cos is strictly decreasing on [0, π], the
// stations are strictly increasing, with x[0] = 0 and x[n−1] = 1.
//
// Cosine spacing concentrates stations near both edges, where the
// outline's curvature is highest, so each point buys more geometric
// fidelity than uniform spacing would.
//
// Returns ErrTooFewPoints for n < MinPointsPerSurface.
//
// Complexity: O(n) time, O(n) space.
func CosineSpacing(n int) ([]float64, error) {
	if n < MinPointsPerSurface {
		return nil, ErrTooFewPoints
	}
	x := make([]float64, n)
	for i := range x {
		// β as a fraction of π keeps the endpoints exact: β_0 = 0 and
		// β_{n−1} = π precisely, so x[0] = 0 and x[n−1] = 1 with no
		// rounding residue.
		beta := math.Pi * (float64(i) / float64(n-1))
		x[i] = 0.5 * (1 - math.Cos(beta))
	}

	return x, nil
}

// PointsPerSurface maps a desired combined loop size to the per-surface
// sample count n that produces it. Loop assembly yields 2n−1 points
// (upper reversed, n, plus lower without its shared leading-edge point,
// n−1), so n = ⌈(total+1)/2⌉, floored at MinPointsPerSurface.
//
// The result is minimal: no smaller n with 2n−1 ≥ total exists, except
// where the MinPointsPerSurface floor applies (total ≤ 4).
//
// Complexity: O(1) time, O(1) space.
func PointsPerSurface(total int) int {
	if total < MinPointsPerSurface {
		total = MinPointsPerSurface
	}
	n := (total + 2) / 2 // integer ⌈(total+1)/2⌉
	if n < MinPointsPerSurface {
		n = MinPointsPerSurface
	}

	return n
}
