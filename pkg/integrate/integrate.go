package integrate

import "math"

// PlanckIntensity evaluates the black-body specific intensity
//
//	I(ν, T) = 2hν³/c² · 1/(exp(hν/(k_B T)) − 1)
//
// in CGS units. Preconditions: nu > 0 and T > 0. Non-positive arguments
// produce NaN or Inf; the function does not guard them, callers validate
// at the boundary.
func PlanckIntensity(nu, T float64) float64 {
	betaRad := 1 / (KBCGS * T)
	coefficient := 2 * HCGS * CInv * CInv
	return coefficient * nu * nu * nu / (math.Exp(HCGS*nu*betaRad) - 1)
}

// Trapezoid integrates uniformly spaced samples with the trapezoid rule:
// endpoints are half-weighted, interior samples full-weighted, scaled by the
// step h. Requires len(values) >= 2.
func Trapezoid(values []float64, h float64) float64 {
	n := len(values)
	result := (values[0] + values[n-1]) / 2
	for _, v := range values[1 : n-1] {
		result += v
	}
	return result * h
}
