package formal

import (
	"math"

	"github.com/ejecta/go-formal-integral/pkg/geometry"
	"github.com/ejecta/go-formal-integral/pkg/integrate"
	"github.com/ejecta/go-formal-integral/pkg/lines"
	"github.com/ejecta/go-formal-integral/pkg/model"
)

// evaluation bundles the read-only state shared by every ray of one
// integral evaluation: the model view, the precomputed attenuation table
// exp(-tau), the source-function table and the boundary temperature.
type evaluation struct {
	m      *model.Model
	expTau []float64 // exp(-tau) per (shell, line), shell-major
	attSul []float64 // source function per (shell, line), shell-major
	loc    lines.Locator
	iT     float64 // boundary black-body temperature [K]
}

// rayScratch holds the per-worker buffers reused across all frequency bins
// assigned to that worker. Allocated once per worker, never shared.
type rayScratch struct {
	z       []float64 // crossing positions, farthest to nearest
	shellID []int     // shell owning each crossing
	iNu     []float64 // accumulated intensity per impact parameter
	pp      []float64 // impact-parameter samples
}

func newRayScratch(m *model.Model, numRays int) *rayScratch {
	return &rayScratch{
		z:       make([]float64, 2*m.ShellCount()),
		shellID: make([]int, 2*m.ShellCount()),
		iNu:     make([]float64, numRays),
		pp:      geometry.PValues(m, numRays),
	}
}

// traceRay accumulates the specific intensity along the ray with impact
// parameter p for frequency nu. Rays hitting the photosphere start from the
// boundary black-body intensity, all others from zero. Each adjacent pair of
// crossings bounds one path segment inside one shell; within a segment the
// ray sweeps the Doppler-shifted frequency window [nu·z[i+1], nu·z[i]) and
// every line in that window attenuates the running intensity and injects its
// source function:
//
//	I ← I·exp(-τ) + S
//
// Lines must be applied in descending frequency order; that is the order
// light actually crosses them along the ray. The returned value carries the
// factor p from the polar integration measure.
func (ev *evaluation) traceRay(nu, p float64, s *rayScratch) float64 {
	size := geometry.PopulateZ(ev.m, p, s.z, s.shellID)

	var I float64
	if p <= ev.m.Photosphere() {
		I = integrate.PlanckIntensity(nu, ev.iT)
	}

	lineNu := ev.m.LineNu
	sizeLine := ev.m.LineCount()
	for i := 0; i < size-1; i++ {
		nuStart := nu * s.z[i]
		nuEnd := nu * s.z[i+1]
		offset := s.shellID[i] * sizeLine

		for idx := ev.loc.Locate(lineNu, nuStart, sizeLine); idx < sizeLine; idx++ {
			if lineNu[idx] < nuEnd {
				break
			}
			I = I*ev.expTau[offset+idx] + ev.attSul[offset+idx]
		}
	}
	return I * p
}

// integrateBin evaluates the full ray fan for one frequency bin and collapses
// it to a luminosity. Slot 0 of the intensity buffer is the untraced central
// ray and stays zero, anchoring the trapezoid rule at p = 0.
func (ev *evaluation) integrateBin(nu float64, s *rayScratch) float64 {
	for pIdx := 1; pIdx < len(s.pp); pIdx++ {
		s.iNu[pIdx] = ev.traceRay(nu, s.pp[pIdx], s)
	}
	step := ev.m.RMax() / float64(len(s.pp))
	return 8 * math.Pi * math.Pi * integrate.Trapezoid(s.iNu, step)
}
