package main

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/ejecta/go-formal-integral/pkg/formal"
)

func TestBuildDemoModel(t *testing.T) {
	m, attSul := buildDemoModel(20, 1000)

	if err := m.Validate(); err != nil {
		t.Fatalf("Demo model should validate, got: %v", err)
	}
	if got, want := len(attSul), m.ShellCount()*m.LineCount(); got != want {
		t.Errorf("Source table length = %d, want %d", got, want)
	}
	if m.ShellCount() != 20 {
		t.Errorf("Shell count = %d, want 20", m.ShellCount())
	}
	if m.LineCount() != 1000 {
		t.Errorf("Line count = %d, want 1000", m.LineCount())
	}
	if m.Photosphere() != demoVInner*demoTExp {
		t.Errorf("Photosphere = %g, want %g", m.Photosphere(), demoVInner*demoTExp)
	}
}

func TestBuildDemoModel_IsDeterministic(t *testing.T) {
	m1, att1 := buildDemoModel(5, 50)
	m2, att2 := buildDemoModel(5, 50)

	for i := range att1 {
		if att1[i] != att2[i] {
			t.Fatalf("Source table differs at %d: %g vs %g", i, att1[i], att2[i])
		}
	}
	for i := range m1.TauSobolev {
		if m1.TauSobolev[i] != m2.TauSobolev[i] {
			t.Fatalf("Tau table differs at %d", i)
		}
	}
}

func TestDemoModelIntegrates(t *testing.T) {
	m, attSul := buildDemoModel(5, 100)

	inu := []float64{4e14, 6e14, 8e14}
	cfg := formal.DefaultConfig()
	cfg.NumRays = 10
	cfg.NumWorkers = 2

	L, err := formal.Integrate(m, demoTemp, inu, attSul, cfg)
	if err != nil {
		t.Fatalf("Integration failed: %v", err)
	}
	for i, l := range L {
		if l <= 0 {
			t.Errorf("Luminosity at bin %d should be positive, got %g", i, l)
		}
	}
}

func TestWriteSpectrum(t *testing.T) {
	path := filepath.Join(t.TempDir(), "spectrum.csv")

	if err := writeSpectrum(path, []float64{1e14, 2e14}, []float64{3.5, 4.5}); err != nil {
		t.Fatalf("writeSpectrum failed: %v", err)
	}
	data, err := os.ReadFile(path)
	if err != nil {
		t.Fatalf("Reading spectrum file failed: %v", err)
	}
	if len(data) == 0 {
		t.Error("Expected non-empty spectrum file")
	}
}
