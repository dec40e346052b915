package calculator

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"burner/model"
)

var methane = model.FuelComposition{"CH4": 100}

// Reference scenario: pure methane, 20% excess air, 100 kg/h, ambient fuel
// and air, 150 C stack, atmospheric pressure.
func scenarioConditions() model.OperatingConditions {
	return model.OperatingConditions{
		ExcessAirPercent:  20,
		FuelFlowKgPerHour: 100,
		FuelTempC:         25,
		AirTempC:          25,
		StackTempC:        150,
		PressureBar:       1.013,
	}
}

func TestEvaluateCombustionScenario(t *testing.T) {
	c := New(DefaultConfig())
	res, warns, err := c.EvaluateCombustion(methane, scenarioConditions())
	require.NoError(t, err)
	require.Empty(t, warns)

	// Literature value for complete methane combustion.
	assert.InDelta(t, 17.2, res.AirFuelRatio.Stoichiometric, 17.2*0.02)
	assert.InDelta(t, res.AirFuelRatio.Stoichiometric*1.2, res.AirFuelRatio.Actual, 1e-9)
	assert.InDelta(t, 20.6, res.AirFuelRatio.Actual, 20.6*0.02)

	// Mass conservation.
	assert.InDelta(t, res.FlowRates.Fuel+res.FlowRates.Air, res.FlowRates.FlueGas, 1e-9)
	assert.InDelta(t, 100, res.FlowRates.Fuel, 1e-9)
	assert.Greater(t, res.FlowRates.ExcessAir, 0.0)
	assert.Greater(t, res.FlowRates.Oxygen, 0.0)

	// Dry-basis closure.
	gas := res.FlueGasComposition
	assert.InDelta(t, 100, gas.CO2+gas.O2+gas.N2, 1e-6)
	assert.Greater(t, gas.O2, 0.0)
	assert.Greater(t, gas.H2O, 0.0)
	assert.Less(t, gas.H2O, 100.0)

	// Adiabatic flame temperature lands in the expected band for methane
	// without dissociation.
	assert.Greater(t, res.AdiabaticFlameTempC, 1500.0)
	assert.Less(t, res.AdiabaticFlameTempC, 1900.0)
}

func TestExcessAirMonotonicity(t *testing.T) {
	c := New(DefaultConfig())
	cond := scenarioConditions()

	res20, _, err := c.EvaluateCombustion(methane, cond)
	require.NoError(t, err)

	cond.ExcessAirPercent = 40
	res40, _, err := c.EvaluateCombustion(methane, cond)
	require.NoError(t, err)

	assert.Greater(t, res40.FlueGasComposition.O2, res20.FlueGasComposition.O2,
		"more excess air leaves more O2 in the flue gas")
	assert.Less(t, res40.AdiabaticFlameTempC, res20.AdiabaticFlameTempC,
		"more excess air dilutes the flame")
}

func TestFlameTemperatureConvergence(t *testing.T) {
	c := New(DefaultConfig())
	for _, airTemp := range []float64{0, 250, 500} {
		for _, stackTemp := range []float64{0, 250, 500} {
			cond := scenarioConditions()
			cond.AirTempC = airTemp
			cond.StackTempC = stackTemp
			_, warns, err := c.EvaluateCombustion(methane, cond)
			require.NoError(t, err)
			for _, w := range warns {
				assert.NotEqual(t, WarnNonConvergence, w.Code,
					"air %.0f C stack %.0f C should converge", airTemp, stackTemp)
			}
		}
	}
}

func TestNonConvergenceIsReported(t *testing.T) {
	cfg := DefaultConfig()
	cfg.MaxIterations = 1 // cannot settle in one step from the 2000 C guess
	c := New(cfg)
	res, warns, err := c.EvaluateCombustion(methane, scenarioConditions())
	require.NoError(t, err)
	assert.Greater(t, res.AdiabaticFlameTempC, 0.0, "best-effort estimate is still returned")

	found := false
	for _, w := range warns {
		if w.Code == WarnNonConvergence {
			found = true
		}
	}
	assert.True(t, found, "non-convergence must be surfaced, not swallowed")
}

func TestAirDeficitIsReported(t *testing.T) {
	c := New(DefaultConfig())
	cond := scenarioConditions()
	cond.ExcessAirPercent = -10

	res, warns, err := c.EvaluateCombustion(methane, cond)
	require.NoError(t, err, "air deficit is a modeled regime, not an error")
	assert.Less(t, res.FlueGasComposition.O2, 0.0)

	found := false
	for _, w := range warns {
		if w.Code == WarnAirDeficit {
			found = true
		}
	}
	assert.True(t, found)
}

func TestEvaluateCombustionIdempotent(t *testing.T) {
	c := New(DefaultConfig())
	first, _, err := c.EvaluateCombustion(methane, scenarioConditions())
	require.NoError(t, err)
	second, _, err := c.EvaluateCombustion(methane, scenarioConditions())
	require.NoError(t, err)
	assert.Equal(t, first, second, "no hidden state between evaluations")
}

func TestEvaluateCombustionRejectsBadComposition(t *testing.T) {
	c := New(DefaultConfig())
	var compErr *InvalidCompositionError

	_, _, err := c.EvaluateCombustion(model.FuelComposition{"H2": 100}, scenarioConditions())
	require.ErrorAs(t, err, &compErr)

	_, _, err = c.EvaluateCombustion(model.FuelComposition{}, scenarioConditions())
	require.ErrorAs(t, err, &compErr)
}

func TestMixedFuelCombustion(t *testing.T) {
	c := New(DefaultConfig())
	mix := model.FuelComposition{"CH4": 85, "C2H6": 8, "C3H8": 4, "C4H10": 2, "CO2": 1}
	res, warns, err := c.EvaluateCombustion(mix, scenarioConditions())
	require.NoError(t, err)
	require.Empty(t, warns)

	gas := res.FlueGasComposition
	assert.InDelta(t, 100, gas.CO2+gas.O2+gas.N2, 1e-6)
	assert.InDelta(t, res.FlowRates.Fuel+res.FlowRates.Air, res.FlowRates.FlueGas, 1e-9)
	assert.Greater(t, res.AirFuelRatio.Stoichiometric, 15.0)
	assert.Less(t, res.AirFuelRatio.Stoichiometric, 20.0)
}
