// Package naca builds the closed 2D outline of a NACA 4-digit airfoil
// from its code, using the standard closed-form construction.
//
// 🚀 What does it do?
//
//	Given a code like "2412" and a desired point count, naca produces one
//	continuous contour running trailing edge → leading edge → trailing
//	edge, sampled with cosine spacing so points cluster where curvature
//	is highest (both edges).
//
// Pipeline (each step is an exported, separately testable operation):
//
//  1. ParseCode            — "2412" → Params{m=0.02, p=0.4, t=0.12}
//  2. CosineSpacing        — n chordwise stations on [0,1]
//  3. CamberLine           — camber value + slope, piecewise around p
//  4. ThicknessDistribution — half-thickness at each station
//  5. ComposeLoop          — perpendicular-offset surfaces, assembled
//     into a single 2n−1 point loop
//
// Or call Generate to run the whole pipeline at once:
//
//	foil, err := naca.Generate("2412", nil)
//	if err != nil {
//	  // handle ErrInvalidCode
//	}
//	fmt.Println(len(foil.Loop)) // 2·PointsPerSurface − 1
//
// All operations are pure and deterministic: the same inputs always
// produce bit-identical output. Coordinates are unit-chord r2.Vec values;
// scaling and 3D placement live in package geom.
//
// Performance: O(n) time and memory in the per-surface point count.
package naca
