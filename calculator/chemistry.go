package calculator

import (
	"sort"

	"burner/model"
)

// Fuel chemistry: mole-weighted mixture properties and stoichiometry derived
// from the per-component combustion balance. Callers validate the
// composition first; these helpers assume known components and a positive
// mole total.

// sortedSpecies returns the composition keys in a fixed order so that
// mixture sums are deterministic across calls.
func sortedSpecies(comp model.FuelComposition) []string {
	names := make([]string, 0, len(comp))
	for species := range comp {
		names = append(names, species)
	}
	sort.Strings(names)
	return names
}

// molarMass returns the mixture molar mass, kg/kmol.
func molarMass(comp model.FuelComposition) float64 {
	var sum, total float64
	for _, species := range sortedSpecies(comp) {
		pct := comp[species]
		sum += pct * fuelSpeciesTable[species].MolarMass
		total += pct
	}
	if total == 0 {
		return 0
	}
	return sum / total
}

// heatingValues returns the mixture LHV and HHV in MJ/kg. Per-component
// heating values are per unit mass, so the mole fractions are converted to
// mass fractions through each component's molar mass.
func heatingValues(comp model.FuelComposition) (lhv, hhv float64) {
	var lhvSum, hhvSum, massSum float64
	for _, species := range sortedSpecies(comp) {
		pct := comp[species]
		s := fuelSpeciesTable[species]
		mass := pct * s.MolarMass
		lhvSum += mass * s.LHV
		hhvSum += mass * s.HHV
		massSum += mass
	}
	if massSum == 0 {
		return 0, 0
	}
	return lhvSum / massSum, hhvSum / massSum
}

// stoichiometricOxygen returns kmol O2 required per kmol fuel.
func stoichiometricOxygen(comp model.FuelComposition) float64 {
	var sum, total float64
	for _, species := range sortedSpecies(comp) {
		pct := comp[species]
		sum += pct * fuelSpeciesTable[species].StoichO2
		total += pct
	}
	if total == 0 {
		return 0
	}
	return sum / total
}

// stoichiometricAir returns kmol air per kmol fuel, from the 21% volumetric
// O2 assumption.
func stoichiometricAir(comp model.FuelComposition) float64 {
	return stoichiometricOxygen(comp) / o2VolFracInAir
}

// combustionProducts returns kmol CO2 and H2O formed per kmol fuel.
func combustionProducts(comp model.FuelComposition) (co2, h2o float64) {
	var total float64
	for _, species := range sortedSpecies(comp) {
		pct := comp[species]
		s := fuelSpeciesTable[species]
		co2 += pct * s.CO2Yield
		h2o += pct * s.H2OYield
		total += pct
	}
	if total == 0 {
		return 0, 0
	}
	return co2 / total, h2o / total
}

// fuelSpecificHeat returns the fuel mixture specific heat at tempC in
// J/(kg*K), mole-weighting the component Cp polynomials. Components without
// coefficients fall back to the default value and are reported.
func fuelSpecificHeat(comp model.FuelComposition, tempC float64, w *warnings) float64 {
	tK := celsiusToKelvin(tempC)
	var cpSum, total float64
	for _, species := range sortedSpecies(comp) {
		pct := comp[species]
		cp, ok := cpMolar(species, tK)
		if !ok && w != nil {
			w.addOnce("cp:"+species,
				warnf(WarnUnsupportedSpecies, "no Cp coefficients for %s, using %.0f J/(mol*K)", species, defaultCpMolar))
		}
		cpSum += pct * cp
		total += pct
	}
	m := molarMass(comp)
	if total == 0 || m == 0 {
		return defaultCpMass
	}
	return (cpSum / total) * 1000.0 / m
}
