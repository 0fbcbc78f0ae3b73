package naca

import (
	"math"

	"gonum.org/v1/gonum/spatial/r2"
)

// ComposeLoop offsets the thickness distribution perpendicular to the
// camber line and assembles the two resulting surfaces into one closed
// contour.
//
// At each station the surface angle θ = atan(dyc) tilts the thickness
// offset so it stays normal to the camber line — the standard NACA
// construction, required for correct geometry at high camber/thickness:
//
//	upper: (x − yt·sinθ, yc + yt·cosθ)
//	lower: (x + yt·sinθ, yc − yt·cosθ)
//
// Assembly is a single structural rule: the upper surface reversed (so
// the contour starts at the trailing edge and runs to the leading edge)
// followed by the lower surface with its first point — the shared leading
// edge — dropped. A single-station lower surface is appended as-is.
// The result therefore has 2n−1 points for n stations and preserves the
// station ordering point-for-point; nothing is sorted or deduplicated.
//
// All four arrays must share one length, else ErrLengthMismatch.
//
// Complexity: O(n) time, O(n) space.
func ComposeLoop(x, yc, dyc, yt []float64) ([]r2.Vec, error) {
	n := len(x)
	if len(yc) != n || len(dyc) != n || len(yt) != n {
		return nil, ErrLengthMismatch
	}

	upper := make([]r2.Vec, n)
	lower := make([]r2.Vec, n)
	for i := 0; i < n; i++ {
		theta := math.Atan(dyc[i])
		sin, cos := math.Sin(theta), math.Cos(theta)
		upper[i] = r2.Vec{X: x[i] - yt[i]*sin, Y: yc[i] + yt[i]*cos}
		lower[i] = r2.Vec{X: x[i] + yt[i]*sin, Y: yc[i] - yt[i]*cos}
	}

	loop := make([]r2.Vec, 0, 2*n-1)
	for i := n - 1; i >= 0; i-- {
		loop = append(loop, upper[i])
	}
	if n > 1 {
		loop = append(loop, lower[1:]...)
	} else {
		loop = append(loop, lower...)
	}

	return loop, nil
}
