package naca

import "math"

// ThicknessDistribution evaluates the NACA 4-digit half-thickness
// polynomial at each station:
//
//	yt(x) = 5t·(0.2969√x − 0.1260x − 0.3516x² + 0.2843x³ − 0.1015x⁴)
//
// Stations are clamped to ≥ 0 before the square root so a floating-point
// underflow just below zero never poisons the result with a NaN.
//
// Complexity: O(n) time, O(n) space.
func ThicknessDistribution(x []float64, t float64) []float64 {
	yt := make([]float64, len(x))
	for i, xi := range x {
		if xi < 0 {
			xi = 0
		}
		sqrtx := math.Sqrt(xi)
		yt[i] = 5 * t * (0.2969*sqrtx - 0.1260*xi - 0.3516*xi*xi + 0.2843*xi*xi*xi - 0.1015*xi*xi*xi*xi)
	}

	return yt
}

// CamberLine evaluates the mean camber line and its slope at each station.
//
// For a symmetric profile (m == 0 or p == 0) both outputs are identically
// zero. Otherwise the stations are partitioned into a forward and an aft
// segment around the camber-location fraction p, each with its own
// closed form:
//
//	forward (x < p):  yc = (m/p²)(2px − x²)          dyc = (2m/p²)(p − x)
//	aft     (x ≥ p):  yc = (m/(1−p)²)((1−2p)+2px−x²)  dyc = (2m/(1−p)²)(p − x)
//
// The partition uses an epsilon-tolerant comparison (x < p + camberSplitEps)
// so a station landing on p by rounding is always assigned to the forward
// segment rather than flickering between the two.
//
// Complexity: O(n) time, O(n) space.
func CamberLine(x []float64, m, p float64) (yc, dyc []float64) {
	yc = make([]float64, len(x))
	dyc = make([]float64, len(x))
	if m == 0 || p == 0 {
		return yc, dyc
	}

	fwd := m / (p * p)
	aft := m / ((1 - p) * (1 - p))
	for i, xi := range x {
		if xi < p+camberSplitEps {
			yc[i] = fwd * (2*p*xi - xi*xi)
			dyc[i] = 2 * fwd * (p - xi)
		} else {
			yc[i] = aft * ((1 - 2*p) + 2*p*xi - xi*xi)
			dyc[i] = 2 * aft * (p - xi)
		}
	}

	return yc, dyc
}
