package integrate

// Physical constants in CGS units. These match the values used by the
// transport simulation that produces the optical depth tables, so the
// emergent spectrum is consistent with the upstream opacities.
const (
	// CInv is the inverse speed of light [s/cm].
	CInv = 3.33564e-11

	// KBCGS is the Boltzmann constant [erg/K].
	KBCGS = 1.3806488e-16

	// HCGS is the Planck constant [erg s].
	HCGS = 6.62606957e-27
)
