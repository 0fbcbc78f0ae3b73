package geom

import (
	"fmt"
	"math"

	"gonum.org/v1/gonum/spatial/r3"
)

// Bounds returns the axis-aligned bounding box of pts as (min, max)
// corner vectors. The empty set yields two zero vectors.
//
// Complexity: O(n) time, O(1) space.
func Bounds(pts []r3.Vec) (min, max r3.Vec) {
	if len(pts) == 0 {
		return r3.Vec{}, r3.Vec{}
	}
	min, max = pts[0], pts[0]
	for _, p := range pts[1:] {
		min.X = math.Min(min.X, p.X)
		min.Y = math.Min(min.Y, p.Y)
		min.Z = math.Min(min.Z, p.Z)
		max.X = math.Max(max.X, p.X)
		max.Y = math.Max(max.Y, p.Y)
		max.Z = math.Max(max.Z, p.Z)
	}

	return min, max
}

// Validate checks an embedded point set for numerical sanity. It is a
// pure read-only pass, run once per generation, after embedding and
// before any output step.
//
//   - ErrNonFinite if any coordinate is NaN or ±Inf. The error reports
//     the first offending point and its index.
//   - ErrDegenerate if the bounding box spans zero along every axis,
//     i.e. all points coincide (zero chord, or a zero-thickness
//     zero-camber profile scaled to nothing). A set that is flat along
//     some axes but extended along at least one passes: a "0000" plate
//     still spans the chord in x and is geometry, however useless.
//
// An empty set is degenerate by definition.
//
// Complexity: O(n) time, O(1) space.
func Validate(pts []r3.Vec) error {
	if len(pts) == 0 {
		return fmt.Errorf("%w: empty point set", ErrDegenerate)
	}
	for i, p := range pts {
		if !finite(p.X) || !finite(p.Y) || !finite(p.Z) {
			return fmt.Errorf("%w: point %d = (%v, %v, %v)", ErrNonFinite, i, p.X, p.Y, p.Z)
		}
	}

	min, max := Bounds(pts)
	if max.X-min.X == 0 && max.Y-min.Y == 0 && max.Z-min.Z == 0 {
		return fmt.Errorf("%w: %d points at (%v, %v, %v)", ErrDegenerate, len(pts), min.X, min.Y, min.Z)
	}

	return nil
}

// finite reports whether v is neither NaN nor infinite.
func finite(v float64) bool {
	return !math.IsNaN(v) && !math.IsInf(v, 0)
}
