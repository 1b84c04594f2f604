package formal

import (
	"errors"
	"fmt"
	"math"
	"runtime"
	"sync"

	"github.com/ejecta/go-formal-integral/pkg/lines"
	"github.com/ejecta/go-formal-integral/pkg/model"
)

// Validation errors returned by Integrate before any work starts.
var (
	// ErrTooFewRays indicates fewer than 2 impact-parameter samples.
	ErrTooFewRays = errors.New("formal: need at least 2 impact-parameter samples")

	// ErrBadTemperature indicates a non-positive boundary temperature.
	ErrBadTemperature = errors.New("formal: boundary temperature must be positive")

	// ErrBadFrequency indicates a non-positive frequency in the input grid.
	ErrBadFrequency = errors.New("formal: frequencies must be positive")

	// ErrSourceTableSize indicates the source-function table has the wrong length.
	ErrSourceTableSize = errors.New("formal: source table length != shells*lines")
)

// DefaultLogger implements model.Logger by writing to stdout
type DefaultLogger struct{}

func (dl *DefaultLogger) Printf(format string, args ...interface{}) {
	fmt.Printf(format, args...)
}

type noopLogger struct{}

func (noopLogger) Printf(format string, args ...interface{}) {}

// Config contains configuration for one integral evaluation
type Config struct {
	NumRays    int           // Impact-parameter samples per frequency bin (>= 2)
	NumWorkers int           // Number of parallel workers (0 = use CPU count)
	Locator    lines.Locator // Line locator (nil = lines.BinarySearch)
	Logger     model.Logger  // Progress output (nil = silent)
}

// DefaultConfig returns sensible default values
func DefaultConfig() Config {
	return Config{
		NumRays:    1000,
		NumWorkers: 0,
	}
}

// binChunk is one unit of parallel work: a contiguous range of frequency
// bins. Chunks never overlap, so each worker writes a disjoint slice of the
// output and no locking is needed.
type binChunk struct {
	start, end int
}

// Integrate computes the emergent spectrum with the formal integral: for
// each frequency in inu it traces a fan of rays through the shell model,
// runs the line-by-line radiative recurrence along each ray, and integrates
// the resulting intensities over impact parameter.
//
// attSul is the source-function table from the transport simulation, laid
// out like the model's optical depth table. The returned luminosities follow
// the order of inu; the caller owns the slice.
//
// The result is deterministic: every frequency bin depends only on the
// inputs and its own index, so the spectrum is identical for any worker
// count.
func Integrate(m *model.Model, iT float64, inu []float64, attSul []float64, cfg Config) ([]float64, error) {
	if err := m.Validate(); err != nil {
		return nil, err
	}
	if cfg.NumRays < 2 {
		return nil, fmt.Errorf("%w: got %d", ErrTooFewRays, cfg.NumRays)
	}
	if iT <= 0 {
		return nil, fmt.Errorf("%w: got %g", ErrBadTemperature, iT)
	}
	for i, nu := range inu {
		if nu <= 0 {
			return nil, fmt.Errorf("%w: inu[%d] = %g", ErrBadFrequency, i, nu)
		}
	}
	if want := m.ShellCount() * m.LineCount(); len(attSul) != want {
		return nil, fmt.Errorf("%w: got %d, want %d", ErrSourceTableSize, len(attSul), want)
	}

	workers := cfg.NumWorkers
	if workers <= 0 {
		workers = runtime.NumCPU()
	}
	loc := cfg.Locator
	if loc == nil {
		loc = lines.BinarySearch{}
	}
	logger := cfg.Logger
	if logger == nil {
		logger = noopLogger{}
	}

	// The attenuation table is reused by every ray of every bin, so it is
	// computed once up front and read-only inside the parallel region.
	expTau := make([]float64, len(m.TauSobolev))
	for i, tau := range m.TauSobolev {
		expTau[i] = math.Exp(-tau)
	}

	ev := &evaluation{m: m, expTau: expTau, attSul: attSul, loc: loc, iT: iT}
	L := make([]float64, len(inu))

	logger.Printf("Doing the formal integral with %d workers over %d bins\n", workers, len(inu))

	chunkSize := len(inu) / (4 * workers)
	if chunkSize < 1 {
		chunkSize = 1
	}
	tasks := make(chan binChunk, len(inu)/chunkSize+1)
	for start := 0; start < len(inu); start += chunkSize {
		end := start + chunkSize
		if end > len(inu) {
			end = len(inu)
		}
		tasks <- binChunk{start: start, end: end}
	}
	close(tasks)

	var wg sync.WaitGroup
	for w := 0; w < workers; w++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			scratch := newRayScratch(m, cfg.NumRays)
			for chunk := range tasks {
				for binIdx := chunk.start; binIdx < chunk.end; binIdx++ {
					L[binIdx] = ev.integrateBin(inu[binIdx], scratch)
				}
			}
		}()
	}
	wg.Wait()

	return L, nil
}
