// Package geom defines the normal-axis selector and sentinel errors for
// 3D embedding and validation.
package geom

import (
	"errors"
	"fmt"
	"strings"
)

// Sentinel errors for geom operations.
var (
	// ErrInvalidAxis indicates an axis selector other than X, Y, or Z.
	ErrInvalidAxis = errors.New("geom: normal axis must be X, Y, or Z")

	// ErrNonFinite indicates a NaN or infinite coordinate in the point set.
	// Always a defect in upstream parameters rather than bad user input.
	ErrNonFinite = errors.New("geom: coordinates contain NaN or infinite values")

	// ErrDegenerate indicates every point of the set coincides: the
	// bounding box has zero span along all three axes.
	ErrDegenerate = errors.New("geom: degenerate geometry, all points identical")
)

// Axis identifies one of the three coordinate axes.
type Axis int

const (
	// AxisX selects the X axis.
	AxisX Axis = iota
	// AxisY selects the Y axis.
	AxisY
	// AxisZ selects the Z axis.
	AxisZ
)

// String returns the canonical upper-case axis name.
func (a Axis) String() string {
	switch a {
	case AxisX:
		return "X"
	case AxisY:
		return "Y"
	case AxisZ:
		return "Z"
	default:
		return fmt.Sprintf("Axis(%d)", int(a))
	}
}

// ParseAxis resolves a case-insensitive axis name ("x", "Y", " z ") to an
// Axis. Anything else fails with ErrInvalidAxis.
func ParseAxis(s string) (Axis, error) {
	switch strings.ToUpper(strings.TrimSpace(s)) {
	case "X":
		return AxisX, nil
	case "Y":
		return AxisY, nil
	case "Z":
		return AxisZ, nil
	default:
		return 0, fmt.Errorf("%w: got %q", ErrInvalidAxis, s)
	}
}
