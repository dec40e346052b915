package calculator

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"burner/model"
)

func TestMolarMass(t *testing.T) {
	assert.InDelta(t, 16.043, molarMass(model.FuelComposition{"CH4": 100}), 1e-9)

	mix := model.FuelComposition{"CH4": 90, "C2H6": 10}
	assert.InDelta(t, (90*16.043+10*30.070)/100, molarMass(mix), 1e-9)
}

func TestHeatingValues(t *testing.T) {
	lhv, hhv := heatingValues(model.FuelComposition{"CH4": 100})
	assert.InDelta(t, 50.0, lhv, 1e-9)
	assert.InDelta(t, 55.5, hhv, 1e-9)
	assert.Greater(t, hhv, lhv, "HHV includes water latent heat")

	// Inert CO2 dilutes the heating value.
	lhvDiluted, _ := heatingValues(model.FuelComposition{"CH4": 90, "CO2": 10})
	assert.Less(t, lhvDiluted, lhv)
}

func TestStoichiometry(t *testing.T) {
	methane := model.FuelComposition{"CH4": 100}
	assert.InDelta(t, 2.0, stoichiometricOxygen(methane), 1e-9)
	assert.InDelta(t, 2.0/0.21, stoichiometricAir(methane), 1e-9)

	co2, h2o := combustionProducts(methane)
	assert.InDelta(t, 1.0, co2, 1e-9)
	assert.InDelta(t, 2.0, h2o, 1e-9)

	// CnH(2n+2) + (3n+1)/2 O2 for the heavier alkanes.
	assert.InDelta(t, 3.5, stoichiometricOxygen(model.FuelComposition{"C2H6": 100}), 1e-9)
	assert.InDelta(t, 6.5, stoichiometricOxygen(model.FuelComposition{"C4H10": 100}), 1e-9)

	// CO2 in the fuel needs no oxygen and passes straight through.
	co2Only, h2oOnly := combustionProducts(model.FuelComposition{"CO2": 100})
	assert.InDelta(t, 1.0, co2Only, 1e-9)
	assert.Zero(t, h2oOnly)
	assert.Zero(t, stoichiometricOxygen(model.FuelComposition{"CO2": 100}))
}

func TestFuelSpecificHeat(t *testing.T) {
	methane := model.FuelComposition{"CH4": 100}
	var w warnings
	cpLow := fuelSpecificHeat(methane, 25, &w)
	cpHigh := fuelSpecificHeat(methane, 300, &w)
	require.Empty(t, w.list)
	assert.Greater(t, cpLow, 1500.0, "methane Cp around ambient")
	assert.Greater(t, cpHigh, cpLow, "Cp grows with temperature")
}

func TestCpLookupFallback(t *testing.T) {
	cp, ok := cpMolar("SO2", 400)
	assert.False(t, ok)
	assert.Equal(t, defaultCpMolar, cp)

	cpM, ok := cpMass("SO2", 400)
	assert.False(t, ok)
	assert.Equal(t, defaultCpMass, cpM)
}

func TestWarningsDeduplicate(t *testing.T) {
	var w warnings
	w.addOnce("cp:SO2", warnf(WarnUnsupportedSpecies, "no Cp coefficients for SO2"))
	w.addOnce("cp:SO2", warnf(WarnUnsupportedSpecies, "no Cp coefficients for SO2"))
	w.addOnce("cp:NO", warnf(WarnUnsupportedSpecies, "no Cp coefficients for NO"))
	require.Len(t, w.list, 2)
}

func TestValidateComposition(t *testing.T) {
	assert.NoError(t, validateComposition(model.FuelComposition{"CH4": 100}))

	var compErr *InvalidCompositionError

	err := validateComposition(model.FuelComposition{})
	require.ErrorAs(t, err, &compErr)

	err = validateComposition(model.FuelComposition{"H2": 100})
	require.ErrorAs(t, err, &compErr)
	assert.Equal(t, "H2", compErr.Species)

	err = validateComposition(model.FuelComposition{"CH4": -5})
	require.ErrorAs(t, err, &compErr)

	err = validateComposition(model.FuelComposition{"CH4": 0})
	require.ErrorAs(t, err, &compErr)
}
