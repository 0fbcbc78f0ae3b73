// Package naca defines parameters, options, and sentinel errors for the
// NACA 4-digit outline pipeline.
package naca

import (
	"errors"
	"fmt"

	"gonum.org/v1/gonum/spatial/r2"
)

// Sentinel errors for naca operations.
var (
	// ErrInvalidCode indicates the airfoil code is not exactly 4 decimal digits.
	ErrInvalidCode = errors.New("naca: code must be exactly 4 digits")

	// ErrTooFewPoints indicates a spacing request below the 3-point minimum.
	ErrTooFewPoints = errors.New("naca: at least 3 points per surface required")

	// ErrLengthMismatch indicates the profile arrays passed to ComposeLoop
	// do not all share one length.
	ErrLengthMismatch = errors.New("naca: profile arrays must have equal length")
)

const (
	// MinPointsPerSurface is the smallest usable per-surface sample count.
	// Below 3 stations the contour cannot represent both edges and a midpoint.
	MinPointsPerSurface = 3

	// DefaultTotalPoints is the default combined loop size used by Generate
	// when Options.TotalPoints is unset.
	DefaultTotalPoints = 50

	// camberSplitEps is the tolerance used when partitioning stations into
	// the forward and aft camber segments, so a station landing exactly on
	// the camber-location fraction is assigned deterministically.
	camberSplitEps = 1e-12
)

// Params holds the three fractions decoded from a 4-digit NACA code.
// The zero value describes a flat, zero-thickness plate.
type Params struct {
	// MaxCamber is the maximum camber as a fraction of chord (digit 1 / 100).
	MaxCamber float64
	// CamberLocation is the chordwise position of maximum camber (digit 2 / 10).
	CamberLocation float64
	// MaxThickness is the maximum thickness as a fraction of chord (digits 3–4 / 100).
	MaxThickness float64
}

// Symmetric reports whether the camber line is identically zero,
// i.e. either camber digit is zero.
func (p Params) Symmetric() bool {
	return p.MaxCamber == 0 || p.CamberLocation == 0
}

// String renders the fractions in the m/p/t shorthand used throughout
// the NACA literature.
func (p Params) String() string {
	return fmt.Sprintf("m=%.4f, p=%.4f, t=%.4f", p.MaxCamber, p.CamberLocation, p.MaxThickness)
}

// Options configures Generate.
//
// Fields:
//   - TotalPoints — desired size of the combined loop (upper + lower).
//     Values < 1 fall back to DefaultTotalPoints; the per-surface count is
//     then derived via PointsPerSurface, which never drops below
//     MinPointsPerSurface.
type Options struct {
	TotalPoints int
}

// DefaultOptions returns the Options used when Generate receives nil.
func DefaultOptions() Options {
	return Options{TotalPoints: DefaultTotalPoints}
}

// Airfoil is the result of a Generate run: the decoded parameters and the
// assembled unit-chord outline. Immutable after creation.
type Airfoil struct {
	// Code is the 4-digit code the outline was generated from.
	Code string
	// Params are the fractions decoded from Code.
	Params Params
	// PointsPerSurface is the resolved per-surface sample count n.
	PointsPerSurface int
	// Loop is the closed contour, trailing edge → leading edge → trailing
	// edge, of length 2·PointsPerSurface − 1. Coordinates are unit-chord.
	Loop []r2.Vec
}
