package naca

import "strings"

// Generate runs the full outline pipeline for one code:
// parse → cosine spacing → camber line → thickness → loop assembly.
//
// opts may be nil, in which case DefaultOptions apply. The requested
// TotalPoints is the combined loop size; the resolved per-surface count
// is reported on the returned Airfoil so callers can reason about both.
//
// The only failure mode for well-formed options is ErrInvalidCode; the
// spacing and composition guards cannot fire once PointsPerSurface has
// resolved the sample count.
//
// Determinism: identical inputs produce bit-identical loops.
//
// Complexity: O(n) time, O(n) space in the per-surface point count.
func Generate(code string, opts *Options) (*Airfoil, error) {
	params, err := ParseCode(code)
	if err != nil {
		return nil, err
	}

	total := DefaultTotalPoints
	if opts != nil && opts.TotalPoints > 0 {
		total = opts.TotalPoints
	}
	n := PointsPerSurface(total)

	x, err := CosineSpacing(n)
	if err != nil {
		return nil, err
	}
	yc, dyc := CamberLine(x, params.MaxCamber, params.CamberLocation)
	yt := ThicknessDistribution(x, params.MaxThickness)

	loop, err := ComposeLoop(x, yc, dyc, yt)
	if err != nil {
		return nil, err
	}

	return &Airfoil{
		Code:             strings.TrimSpace(code),
		Params:           params,
		PointsPerSurface: n,
		Loop:             loop,
	}, nil
}
