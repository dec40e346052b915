package calculator

import (
	"math"

	"burner/model"
)

// NOx heuristic constants. Thermal (Zeldovich-style) NOx activates above a
// flame temperature threshold with an exponential sensitivity and a
// square-root oxygen availability factor; prompt (Fenimore-style) NOx adds a
// fixed floor above a lower threshold. The thresholds and coefficients are
// empirical placeholders without a cited basis; this is an order-of-magnitude
// estimator, not a kinetic model.
const (
	thermalNOxThresholdC = 1300.0
	thermalNOxScaleC     = 300.0
	thermalNOxBasePpm    = 50.0
	promptNOxThresholdC  = 1000.0
	promptNOxPpm         = 25.0
	noxCapPpm            = 500.0
)

// EvaluateThermodynamics computes heat release, flue-gas physical properties,
// the enthalpy and entropy balances and the NOx formation potential from the
// combustion output plus the operating conditions.
func (c *Calculator) EvaluateThermodynamics(comp model.FuelComposition, comb model.CombustionResult, cond model.OperatingConditions) (model.ThermodynamicResult, []model.Warning, error) {
	if err := validateComposition(comp); err != nil {
		return model.ThermodynamicResult{}, nil, err
	}

	var w warnings

	lhv, hhv := heatingValues(comp)
	heat := model.HeatReleased{
		LHVBasisMW: lhv * cond.FuelFlowKgPerHour / 3600.0, // MJ/h -> MW
		HHVBasisMW: hhv * cond.FuelFlowKgPerHour / 3600.0,
	}

	moles := flueGas(comp, cond.ExcessAirPercent)
	props := c.flueGasProperties(moles, cond, &w)

	balance := c.enthalpyBalance(comp, cond, comb.AirFuelRatio.Actual, lhv, props.Enthalpy, &w)

	stackK := celsiusToKelvin(cond.StackTempC)
	refK := celsiusToKelvin(referenceTempC)
	specificEntropy := props.SpecificHeat * math.Log(stackK/refK)
	entropy := model.Entropy{
		SpecificEntropy:        specificEntropy,
		TotalEntropyGeneration: specificEntropy * comb.FlowRates.FlueGas / 3600.0,
	}

	nox := noxPotential(comb.AdiabaticFlameTempC, comb.FlueGasComposition.O2)

	return model.ThermodynamicResult{
		HeatReleased:      heat,
		FlueGasProperties: props,
		EnthalpyBalance:   balance,
		Entropy:           entropy,
		NOxPotentialPpm:   nox,
	}, w.list, nil
}

// flueGasProperties evaluates density (ideal gas), specific heat
// (mass-weighted species polynomials at stack temperature) and sensible
// enthalpy above the 25 C reference.
func (c *Calculator) flueGasProperties(moles flueGasMoles, cond model.OperatingConditions, w *warnings) model.FlueGasProperties {
	names, amounts := moles.ordered()
	var molSum, massSum float64
	for i, name := range names {
		molSum += amounts[i]
		massSum += amounts[i] * speciesMolarMass[name]
	}
	var mixM float64
	if molSum > 0 {
		mixM = massSum / molSum
	}

	stackK := celsiusToKelvin(cond.StackTempC)
	density := cond.PressureBar * 1e5 * mixM / (universalGasConstant * stackK)

	cp := c.flueCpMass(names, amounts, massSum, stackK, w)

	avgK := celsiusToKelvin((cond.StackTempC + referenceTempC) / 2)
	enthalpy := c.flueCpMass(names, amounts, massSum, avgK, w) * (cond.StackTempC - referenceTempC)

	return model.FlueGasProperties{
		Density:      density,
		SpecificHeat: cp,
		Enthalpy:     enthalpy,
		MolarMass:    mixM,
	}
}

// flueCpMass is the mass-weighted mixture specific heat at tK, J/(kg*K).
func (c *Calculator) flueCpMass(names []string, amounts []float64, massSum, tK float64, w *warnings) float64 {
	if massSum <= 0 {
		return defaultCpMass
	}
	var cpMix float64
	for i, name := range names {
		cp, ok := cpMass(name, tK)
		if !ok {
			w.addOnce("cp:"+name,
				warnf(WarnUnsupportedSpecies, "no Cp coefficients for %s, using %.0f J/(kg*K)", name, defaultCpMass))
		}
		cpMix += amounts[i] * speciesMolarMass[name] / massSum * cp
	}
	return cpMix
}

// enthalpyBalance works per kg fuel: sensible reactant enthalpy in,
// flue-gas enthalpy out, the LHV heat of combustion released in between.
// Sensible terms are zero below the 25 C reference by convention.
func (c *Calculator) enthalpyBalance(comp model.FuelComposition, cond model.OperatingConditions, actualRatio, lhv, flueEnthalpy float64, w *warnings) model.EnthalpyBalance {
	fuelSensible := 0.0
	if cond.FuelTempC > referenceTempC {
		fuelSensible = fuelSpecificHeat(comp, cond.FuelTempC, w) * (cond.FuelTempC - referenceTempC)
	}
	airSensible := 0.0
	if cond.AirTempC > referenceTempC {
		airSensible = actualRatio * airCpMass(celsiusToKelvin(cond.AirTempC)) * (cond.AirTempC - referenceTempC)
	}

	reactants := fuelSensible + airSensible
	products := flueEnthalpy * (1 + actualRatio)
	hoc := lhv * 1e6

	return model.EnthalpyBalance{
		Reactants:        reactants,
		Products:         products,
		HeatOfCombustion: hoc,
		HeatAvailable:    hoc + reactants - products,
	}
}

// noxPotential is the two-mechanism heuristic, clamped to noxCapPpm.
func noxPotential(flameTempC, dryO2Pct float64) float64 {
	nox := 0.0
	if flameTempC > thermalNOxThresholdC {
		o2 := math.Max(dryO2Pct, 0)
		nox += thermalNOxBasePpm *
			math.Exp((flameTempC-thermalNOxThresholdC)/thermalNOxScaleC) *
			math.Sqrt(o2)
	}
	if flameTempC > promptNOxThresholdC {
		nox += promptNOxPpm
	}
	return math.Min(nox, noxCapPpm)
}
