// Package foilgen generates NACA 4-digit airfoil geometry: the closed 2D
// outline and its 3D-embedded point cloud, ready for export or plotting.
//
// 🚀 What is foilgen?
//
//	A small, deterministic geometry library that brings together:
//		• Code parsing: 4-digit NACA code → camber/thickness parameters
//		• Cosine spacing: edge-clustered chordwise sampling
//		• Profile evaluation: closed-form camber line & thickness distribution
//		• Loop assembly: one continuous TE → LE → TE contour
//		• 3D embedding: plane selection by normal axis, chord-length scaling
//		• Validation: NaN/Inf and degenerate-extent checks
//
// ✨ Why choose foilgen?
//
//   - Deterministic – identical inputs always produce identical point sets
//   - Library-first – the CLI under cmd/foilgen is thin glue over the packages
//   - Explicit errors – sentinel values, checked with errors.Is
//   - O(n) – every stage is a single pass over the requested point count
//
// Everything is organized under four subpackages:
//
//	naca/   — parsing, spacing, profile math, surface composition
//	geom/   — 3D embedding along a chosen normal axis + validation
//	export/ — flat X Y Z numeric table writer
//	render/ — 2D outline plotting via gonum/plot
//
// Quick ASCII example:
//
//	      _______
//	   .-'       '--.____
//	  (__________________)   NACA 2412, 21 points
//
// Dive into the package docs and example tests for full walkthroughs.
//
//	go get github.com/3brp/foilgen
package foilgen
