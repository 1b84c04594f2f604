package main

import (
	"encoding/csv"
	"flag"
	"fmt"
	"math/rand"
	"os"
	"strconv"
	"time"

	"github.com/ejecta/go-formal-integral/pkg/formal"
	"github.com/ejecta/go-formal-integral/pkg/integrate"
	"github.com/ejecta/go-formal-integral/pkg/model"
)

const (
	demoTExp   = 10 * 86400.0 // seconds since explosion
	demoVInner = 9.0e8        // photospheric velocity [cm/s]
	demoVOuter = 2.0e9        // outer ejecta velocity [cm/s]
	demoTemp   = 1.0e4        // boundary temperature [K]
)

// buildDemoModel constructs a synthetic ejecta snapshot: shells on a linear
// velocity grid (homologous expansion maps velocity to radius via t_exp),
// an evenly spaced descending line list, and seeded pseudo-random optical
// depths and source functions standing in for the Monte Carlo estimators.
func buildDemoModel(shells, lineCount int) (*model.Model, []float64) {
	rInner := make([]float64, shells)
	rOuter := make([]float64, shells)
	for i := 0; i < shells; i++ {
		vLow := demoVInner + (demoVOuter-demoVInner)*float64(i)/float64(shells)
		vHigh := demoVInner + (demoVOuter-demoVInner)*float64(i+1)/float64(shells)
		rInner[i] = vLow * demoTExp
		rOuter[i] = vHigh * demoTExp
	}

	const nuMax, nuMin = 1.2e15, 3.0e14
	lineNu := make([]float64, lineCount)
	for j := 0; j < lineCount; j++ {
		lineNu[j] = nuMax - (nuMax-nuMin)*float64(j)/float64(lineCount-1)
	}

	random := rand.New(rand.NewSource(42))
	tau := make([]float64, shells*lineCount)
	attSul := make([]float64, shells*lineCount)
	for s := 0; s < shells; s++ {
		// Deeper shells are optically thicker.
		depth := 1 - float64(s)/float64(shells)
		for j := 0; j < lineCount; j++ {
			k := s*lineCount + j
			tau[k] = 5 * depth * random.Float64()
			attSul[k] = 0.1 * random.Float64() * integrate.PlanckIntensity(lineNu[j], demoTemp)
		}
	}

	m := &model.Model{
		RInner:     rInner,
		ROuter:     rOuter,
		InverseT:   1 / demoTExp,
		LineNu:     lineNu,
		TauSobolev: tau,
	}
	return m, attSul
}

func main() {
	bins := flag.Int("bins", 200, "Number of frequency bins in the output spectrum")
	rays := flag.Int("rays", 1000, "Number of impact-parameter samples per bin")
	workers := flag.Int("workers", 0, "Number of parallel workers (0 = CPU count)")
	outFile := flag.String("out", "spectrum.csv", "Output CSV file")
	flag.Parse()

	fmt.Println("Building demo ejecta model...")
	m, attSul := buildDemoModel(20, 1000)

	inu := make([]float64, *bins)
	const nuLow, nuHigh = 2.5e14, 1.3e15
	for i := range inu {
		inu[i] = nuLow + (nuHigh-nuLow)*float64(i)/float64(*bins-1)
	}

	cfg := formal.DefaultConfig()
	cfg.NumRays = *rays
	cfg.NumWorkers = *workers
	cfg.Logger = &formal.DefaultLogger{}

	start := time.Now()
	L, err := formal.Integrate(m, demoTemp, inu, attSul, cfg)
	if err != nil {
		fmt.Printf("Integration failed: %v\n", err)
		os.Exit(1)
	}
	fmt.Printf("Integrated %d bins in %v\n", len(L), time.Since(start))

	if err := writeSpectrum(*outFile, inu, L); err != nil {
		fmt.Printf("Error writing spectrum: %v\n", err)
		os.Exit(1)
	}
	fmt.Printf("Spectrum saved to: %s\n", *outFile)
}

// writeSpectrum writes frequency,luminosity rows to a CSV file.
func writeSpectrum(path string, inu, L []float64) error {
	f, err := os.Create(path)
	if err != nil {
		return err
	}
	defer f.Close()

	w := csv.NewWriter(f)
	defer w.Flush()

	if err := w.Write([]string{"frequency_hz", "luminosity_erg_s_hz"}); err != nil {
		return err
	}
	for i := range inu {
		row := []string{
			strconv.FormatFloat(inu[i], 'e', 10, 64),
			strconv.FormatFloat(L[i], 'e', 10, 64),
		}
		if err := w.Write(row); err != nil {
			return err
		}
	}
	return nil
}
