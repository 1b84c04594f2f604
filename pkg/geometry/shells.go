package geometry

import (
	"math"

	"gonum.org/v1/gonum/floats"

	"github.com/ejecta/go-formal-integral/pkg/integrate"
	"github.com/ejecta/go-formal-integral/pkg/model"
)

// CalculateZ returns half the length of the chord a ray with impact
// parameter p cuts through a shell of radius r, normalized to unit length
// c·t_exp. If the ray misses or is tangent to the shell (r <= p) it
// returns exactly 0; tangency is not a special case downstream.
func CalculateZ(r, p, invT float64) float64 {
	if r > p {
		return math.Sqrt(r*r-p*p) * integrate.CInv * invT
	}
	return 0
}

// PopulateZ computes the ordered crossing positions of the ray with impact
// parameter p through the model's shells, writing normalized positions into
// oz and the shell each crossing belongs to into oshellID. It returns the
// number of crossings written.
//
// Rays hitting the photosphere (p <= RInner[0]) terminate behind it, so only
// the near-side crossing of each shell matters: one entry per shell, ordered
// inner to outer, count equal to the shell count.
//
// Rays missing the photosphere cross every reached shell twice. Entries are
// arranged from the ray's entry point (far side of the outermost shell,
// values above 1) down to its exit point (near side of the innermost reached
// shell, values below 1), so the result is strictly decreasing — the order
// the radiative recurrence walks it in.
//
// oz and oshellID must each hold at least 2*ShellCount() elements.
func PopulateZ(m *model.Model, p float64, oz []float64, oshellID []int) int {
	r := m.ROuter
	n := m.ShellCount()
	invT := m.InverseT

	if p <= m.RInner[0] {
		for i := 0; i < n; i++ {
			oz[i] = 1 - CalculateZ(r[i], p, invT)
			oshellID[i] = i
		}
		return n
	}

	offset := -1
	for i := 0; i < n; i++ {
		z := CalculateZ(r[i], p, invT)
		if z == 0 {
			// p exceeds this shell's radius; only possible for the
			// innermost shells.
			continue
		}
		if offset == -1 {
			offset = i
		}
		iFar := n - i - 1
		iNear := n + i - 2*offset
		oz[iFar] = 1 + z
		oshellID[iFar] = i
		oz[iNear] = 1 - z
		oshellID[iNear] = i
	}
	if offset == -1 {
		// p is at or beyond the outermost radius; no shell is crossed.
		return 0
	}
	return 2 * (n - offset)
}

// PValues returns n evenly spaced impact parameters from 0 to the outermost
// shell radius inclusive. Index 0 is the degenerate central ray; it is never
// traced and only anchors the left edge of the trapezoid integration.
// Requires n >= 2.
func PValues(m *model.Model, n int) []float64 {
	pp := make([]float64, n)
	floats.Span(pp, 0, m.RMax())
	return pp
}
