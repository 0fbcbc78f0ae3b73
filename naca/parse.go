package naca

import (
	"fmt"
	"strings"
)

// ParseCode decodes a 4-digit NACA code into its camber and thickness
// fractions. Surrounding whitespace is ignored; anything other than
// exactly four decimal digits fails with ErrInvalidCode.
//
// Decomposition:
//
//	digit 1    → MaxCamber      = d/100   ∈ [0, 0.09]
//	digit 2    → CamberLocation = d/10    ∈ [0, 0.9]
//	digits 3–4 → MaxThickness   = dd/100  ∈ [0, 0.99]
//
// No range check beyond the digit decomposition is performed: "0000" is a
// legal (symmetric, zero-thickness) code at this layer; its degenerate
// geometry is the validator's concern, not the parser's.
//
// Complexity: O(1) time, O(1) space.
func ParseCode(code string) (Params, error) {
	trimmed := strings.TrimSpace(code)
	if len(trimmed) != 4 {
		return Params{}, fmt.Errorf("%w: got %q", ErrInvalidCode, code)
	}
	var digits [4]int
	for i, r := range trimmed {
		if r < '0' || r > '9' {
			return Params{}, fmt.Errorf("%w: got %q", ErrInvalidCode, code)
		}
		digits[i] = int(r - '0')
	}

	return Params{
		MaxCamber:      float64(digits[0]) / 100.0,
		CamberLocation: float64(digits[1]) / 10.0,
		MaxThickness:   float64(digits[2]*10+digits[3]) / 100.0,
	}, nil
}
