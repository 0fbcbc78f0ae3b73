// Package geom places a 2D airfoil outline into 3D space and checks the
// result for numerical sanity.
//
// 🚀 What does it do?
//
//	Embed maps each unit-chord r2.Vec of an outline to an r3.Vec whose
//	coordinate along a chosen normal axis is identically zero; the other
//	two coordinates are the chord-scaled 2D pair. Validate then rejects
//	point sets containing NaN/Inf or collapsing to a single point.
//
// Axis convention (fixed and documented, not configurable):
//
//	normal = X ⇒ (0,      c·x2d, c·y2d)
//	normal = Y ⇒ (c·x2d,  0,     c·y2d)
//	normal = Z ⇒ (c·x2d,  c·y2d, 0)
//
// i.e. 2D-x always maps to the lower-ordered remaining axis and 2D-y to
// the higher-ordered one, so the three embeddings are permutations of one
// another's nonzero coordinate pairs.
//
// ⚙️ Usage:
//
//	axis, err := geom.ParseAxis("z")      // case-insensitive
//	pts := geom.Embed(foil.Loop, axis, 2) // chord length 2
//	if err := geom.Validate(pts); err != nil {
//	  // ErrNonFinite or ErrDegenerate
//	}
//
// Chord length is deliberately unchecked here: any finite value, negative
// included, is a legal scale. A zero chord collapses every point to the
// origin and is caught by Validate instead.
package geom
