package model

import (
	"errors"
	"fmt"
)

// Sentinel errors returned by Validate. Callers should test with errors.Is
// since Validate wraps them with positional context.
var (
	// ErrNoShells indicates the model contains no shells.
	ErrNoShells = errors.New("model: no shells")

	// ErrShellMismatch indicates inner and outer radius slices differ in length.
	ErrShellMismatch = errors.New("model: inner/outer radius length mismatch")

	// ErrNotMonotonic indicates shell radii are not strictly increasing.
	ErrNotMonotonic = errors.New("model: shell radii not strictly increasing")

	// ErrNoLines indicates the line list is empty.
	ErrNoLines = errors.New("model: empty line list")

	// ErrLinesNotDescending indicates the line list is not sorted strictly descending.
	ErrLinesNotDescending = errors.New("model: line frequencies not strictly descending")

	// ErrTableSize indicates a per-(shell,line) table has the wrong length.
	ErrTableSize = errors.New("model: table length != shells*lines")
)

// Model is a read-only view over the data produced by the Monte Carlo
// transport simulation: the shell structure of the ejecta, the shared
// spectral line list, and the per-(shell,line) Sobolev optical depths.
// The view is borrowed for the duration of one integral evaluation; the
// simulation retains ownership of the underlying slices.
//
// Radii are in cm, frequencies in Hz, and the line list is sorted strictly
// descending. TauSobolev is flattened row-major by shell:
// index = shell*len(LineNu) + line.
type Model struct {
	RInner     []float64 // inner shell radii, RInner[0] is the photosphere
	ROuter     []float64 // outer shell radii, strictly increasing
	InverseT   float64   // inverse explosion time [1/s]
	LineNu     []float64 // line rest frequencies, strictly descending
	TauSobolev []float64 // Sobolev optical depths, shell-major
}

// ShellCount returns the number of shells in the model.
func (m *Model) ShellCount() int { return len(m.ROuter) }

// LineCount returns the number of spectral lines shared by all shells.
func (m *Model) LineCount() int { return len(m.LineNu) }

// Photosphere returns the innermost boundary radius. Rays with impact
// parameter at or below it terminate on the black-body boundary.
func (m *Model) Photosphere() float64 { return m.RInner[0] }

// RMax returns the outermost shell radius.
func (m *Model) RMax() float64 { return m.ROuter[len(m.ROuter)-1] }

// Validate checks the geometric and table invariants the integral relies on.
// It must be called before any evaluation: the intersection index arithmetic
// assumes strictly increasing radii and a strictly descending line list.
func (m *Model) Validate() error {
	if len(m.ROuter) == 0 {
		return ErrNoShells
	}
	if len(m.RInner) != len(m.ROuter) {
		return fmt.Errorf("%w: %d inner vs %d outer", ErrShellMismatch, len(m.RInner), len(m.ROuter))
	}
	for i, r := range m.ROuter {
		if m.RInner[i] <= 0 || m.RInner[i] >= r {
			return fmt.Errorf("%w: shell %d has r_inner %g, r_outer %g", ErrNotMonotonic, i, m.RInner[i], r)
		}
		if i > 0 && r <= m.ROuter[i-1] {
			return fmt.Errorf("%w: shell %d", ErrNotMonotonic, i)
		}
	}
	if len(m.LineNu) == 0 {
		return ErrNoLines
	}
	for i := 1; i < len(m.LineNu); i++ {
		if m.LineNu[i] >= m.LineNu[i-1] {
			return fmt.Errorf("%w: index %d", ErrLinesNotDescending, i)
		}
	}
	if want := m.ShellCount() * m.LineCount(); len(m.TauSobolev) != want {
		return fmt.Errorf("%w: got %d, want %d", ErrTableSize, len(m.TauSobolev), want)
	}
	return nil
}
