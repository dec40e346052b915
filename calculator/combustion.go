package calculator

import (
	"math"

	"burner/model"
)

// flueGasMoles holds the flue-gas mole amounts per kmol fuel.
type flueGasMoles struct {
	CO2, H2O, N2, O2 float64
}

// ordered returns the species names and mole amounts in a fixed order so
// that mixture sums are deterministic.
func (m flueGasMoles) ordered() ([]string, []float64) {
	return []string{"CO2", "H2O", "N2", "O2"},
		[]float64{m.CO2, m.H2O, m.N2, m.O2}
}

// flueGas computes product and pass-through moles from the combustion
// balance. O2 goes negative for an air deficit (excess air < 0); callers
// decide how to report that.
func flueGas(comp model.FuelComposition, excessAirPct float64) flueGasMoles {
	co2, h2o := combustionProducts(comp)
	stoichO2 := stoichiometricOxygen(comp)
	totalAir := stoichiometricAir(comp) * (1 + excessAirPct/100)
	return flueGasMoles{
		CO2: co2,
		H2O: h2o,
		N2:  n2VolFracInAir * totalAir,
		O2:  o2VolFracInAir*totalAir - stoichO2,
	}
}

// EvaluateCombustion turns a fuel composition and operating conditions into
// air/fuel ratios, mass flow rates, flue-gas composition and the adiabatic
// flame temperature.
func (c *Calculator) EvaluateCombustion(comp model.FuelComposition, cond model.OperatingConditions) (model.CombustionResult, []model.Warning, error) {
	if err := validateComposition(comp); err != nil {
		return model.CombustionResult{}, nil, err
	}
	fuelM := molarMass(comp)
	if fuelM == 0 {
		return model.CombustionResult{}, nil, &InvalidCompositionError{Reason: "molar mass resolves to zero"}
	}

	var w warnings

	stoichRatio := stoichiometricAir(comp) * airMolarMass / fuelM
	actualRatio := stoichRatio * (1 + cond.ExcessAirPercent/100)

	fuelFlow := cond.FuelFlowKgPerHour
	flows := model.FlowRates{
		Fuel:      fuelFlow,
		Air:       fuelFlow * actualRatio,
		Oxygen:    fuelFlow * stoichRatio * o2MassFracInAir,
		ExcessAir: fuelFlow * stoichRatio * cond.ExcessAirPercent / 100,
		FlueGas:   fuelFlow + fuelFlow*actualRatio,
	}

	moles := flueGas(comp, cond.ExcessAirPercent)
	if moles.O2 < 0 {
		w.add(warnf(WarnAirDeficit, "excess air %.1f%% leaves %.3f kmol O2 deficit per kmol fuel",
			cond.ExcessAirPercent, -moles.O2))
	}
	dry := moles.CO2 + moles.O2 + moles.N2
	wet := dry + moles.H2O
	gasComp := model.FlueGasComposition{}
	if dry > 0 {
		gasComp.CO2 = moles.CO2 / dry * 100
		gasComp.O2 = moles.O2 / dry * 100
		gasComp.N2 = moles.N2 / dry * 100
	}
	if wet > 0 {
		gasComp.H2O = moles.H2O / wet * 100
	}

	flameTemp := c.adiabaticFlameTemp(comp, cond, moles, actualRatio, &w)

	return model.CombustionResult{
		AirFuelRatio:        model.AirFuelRatio{Stoichiometric: stoichRatio, Actual: actualRatio},
		FlowRates:           flows,
		FlueGasComposition:  gasComp,
		AdiabaticFlameTempC: flameTemp,
	}, w.list, nil
}

const initialFlameGuessC = 2000.0

// adiabaticFlameTemp runs the fixed-point iteration: the LHV heat release per
// kg fuel, spread over the flue-gas mass, heats the products from the air
// inlet temperature by Q / (cp_mix * m_flue). cp_mix is evaluated at the
// current temperature guess, so the estimate and the mixture specific heat
// converge together.
func (c *Calculator) adiabaticFlameTemp(comp model.FuelComposition, cond model.OperatingConditions, moles flueGasMoles, actualRatio float64, w *warnings) float64 {
	lhv, _ := heatingValues(comp)
	heatPerKgFuel := lhv * 1e6 // J/kg fuel

	// Mass fractions of the product mixture, in a fixed species order so
	// repeated evaluations sum identically.
	names, amounts := moles.ordered()
	masses := make([]float64, len(names))
	var totalMass float64
	for i, name := range names {
		masses[i] = amounts[i] * speciesMolarMass[name]
		totalMass += masses[i]
	}
	flueMassPerKgFuel := 1 + actualRatio

	guess := initialFlameGuessC
	converged := false
	for i := 0; i < c.cfg.MaxIterations; i++ {
		tK := celsiusToKelvin(guess)
		var cpMix float64
		if totalMass > 0 {
			for j, name := range names {
				cp, ok := cpMass(name, tK)
				if !ok {
					w.addOnce("cp:"+name,
						warnf(WarnUnsupportedSpecies, "no Cp coefficients for %s, using %.0f J/(kg*K)", name, defaultCpMass))
				}
				cpMix += masses[j] / totalMass * cp
			}
		} else {
			cpMix = defaultCpMass
		}

		rise := heatPerKgFuel / (cpMix * flueMassPerKgFuel)
		next := cond.AirTempC + rise
		if math.Abs(next-guess) < c.cfg.ToleranceC {
			guess = next
			converged = true
			break
		}
		guess = next
	}
	if !converged {
		w.add(warnf(WarnNonConvergence,
			"flame temperature iteration did not reach %.1f C tolerance in %d iterations, returning last estimate %.1f C",
			c.cfg.ToleranceC, c.cfg.MaxIterations, guess))
	}
	return guess
}
