package geom

import (
	"gonum.org/v1/gonum/spatial/r2"
	"gonum.org/v1/gonum/spatial/r3"
)

// Embed maps a 2D outline into 3D space on the plane perpendicular to
// normal, scaling both in-plane coordinates by chord.
//
// The coordinate along normal is identically zero for every point; 2D-x
// maps to the lower-ordered remaining axis and 2D-y to the higher-ordered
// one (see the package doc for the full table). Chord may be any finite
// value including negative — a mirrored airfoil is the caller's business;
// zero chord is left for Validate to catch.
//
// Complexity: O(n) time, O(n) space.
func Embed(loop []r2.Vec, normal Axis, chord float64) []r3.Vec {
	pts := make([]r3.Vec, len(loop))
	for i, p := range loop {
		u, v := chord*p.X, chord*p.Y
		switch normal {
		case AxisX:
			pts[i] = r3.Vec{Y: u, Z: v}
		case AxisY:
			pts[i] = r3.Vec{X: u, Z: v}
		default: // AxisZ
			pts[i] = r3.Vec{X: u, Y: v}
		}
	}

	return pts
}
