package calculator

import (
	"math"

	"burner/model"
)

const (
	laminarNusselt     = 4.36   // fully developed laminar duct flow
	turbulentReynolds  = 2300.0 // transition threshold
	emissivityOverlap  = 0.8    // CO2/H2O band overlap correction
	emissivityCap      = 0.9
	emissivityCO2Coeff = 0.18
	emissivityH2OCoeff = 0.16
	emissivityPathGain = 10.0 // partial-pressure to optical-depth scaling
)

// EvaluateHeatTransfer computes radiative, convective and conductive heat
// transfer from the combustion and thermodynamic results plus the operating
// conditions. All geometry comes from the Config.
func (c *Calculator) EvaluateHeatTransfer(comb model.CombustionResult, thermo model.ThermodynamicResult, cond model.OperatingConditions) (model.HeatTransferResult, []model.Warning, error) {
	cfg := c.cfg
	ambient := cfg.AmbientTempC
	wall := ambient + cfg.WallApproachFraction*(cond.StackTempC-ambient)
	flame := comb.AdiabaticFlameTempC

	// Radiation: Stefan-Boltzmann between flame and wall, scaled by the
	// empirical flame emissivity.
	eps := flameEmissivity(comb.FlueGasComposition, cond.PressureBar)
	flameK := celsiusToKelvin(flame)
	wallK := celsiusToKelvin(wall)
	radiationW := eps * stefanBoltzmann * cfg.RadiantAreaM2 *
		(math.Pow(flameK, 4) - math.Pow(wallK, 4))

	// Convection: Dittus-Boelter on the flue duct.
	stackK := celsiusToKelvin(cond.StackTempC)
	viscosity := gasViscosity(stackK)
	conductivity := gasConductivity(stackK)
	density := thermo.FlueGasProperties.Density
	cp := thermo.FlueGasProperties.SpecificHeat

	ductArea := math.Pi * cfg.HydraulicDiameterM * cfg.HydraulicDiameterM / 4
	velocity := 0.0
	if density > 0 && ductArea > 0 {
		velocity = comb.FlowRates.FlueGas / 3600.0 / (density * ductArea)
	}

	reynolds := 0.0
	if viscosity > 0 {
		reynolds = density * velocity * cfg.HydraulicDiameterM / viscosity
	}
	prandtl := 0.0
	if conductivity > 0 {
		prandtl = cp * viscosity / conductivity
	}
	nusselt := laminarNusselt
	if reynolds > turbulentReynolds {
		nusselt = 0.023 * math.Pow(reynolds, 0.8) * math.Pow(prandtl, 0.4)
	}
	hConv := nusselt * conductivity / cfg.HydraulicDiameterM
	convectionW := hConv * cfg.ConvectiveAreaM2 * (cond.StackTempC - wall)

	// Conduction: planar refractory wall to ambient.
	conductionW := cfg.WallConductivity * cfg.ConductionAreaM2 * (wall - ambient) / cfg.WallThicknessM

	hRad := 0.0
	if dt := flame - wall; dt != 0 {
		hRad = radiationW / (cfg.RadiantAreaM2 * dt)
	}

	effectiveness := 0.0
	if denom := flame - cond.AirTempC; denom > 0 {
		effectiveness = (flame - cond.StackTempC) / denom
	}
	effectiveness = math.Min(math.Max(effectiveness, 0), 1)

	return model.HeatTransferResult{
		HeatTransferRates: model.HeatTransferRates{
			Radiation:  radiationW / 1000,
			Convection: convectionW / 1000,
			Conduction: conductionW / 1000,
			Total:      (radiationW + convectionW + conductionW) / 1000,
		},
		Temperatures: model.Temperatures{
			Flame:          flame,
			CombustionZone: flame * cfg.CombustionZoneFraction,
			PostCombustion: flame * cfg.PostCombustionFraction,
			HeatExchange:   cond.StackTempC * cfg.HeatExchangeFactor,
			Stack:          cond.StackTempC,
			Wall:           wall,
			Ambient:        ambient,
		},
		HeatTransferCoefficients: model.HeatTransferCoefficients{
			Convective: hConv,
			Radiative:  hRad,
			Overall:    hConv + hRad,
		},
		HeatExchangerEffectiveness: effectiveness,
		ThermalProperties: model.ThermalProperties{
			Conductivity: conductivity,
			Viscosity:    viscosity,
			Velocity:     velocity,
		},
	}, nil, nil
}

// flameEmissivity estimates the flame emissivity from CO2 and H2O
// partial-pressure terms in a logarithmic saturation form, with a band
// overlap correction and a hard cap.
func flameEmissivity(gas model.FlueGasComposition, pressureBar float64) float64 {
	pCO2 := math.Max(gas.CO2, 0) / 100 * pressureBar
	pH2O := math.Max(gas.H2O, 0) / 100 * pressureBar
	eps := emissivityOverlap * (emissivityCO2Coeff*math.Log1p(emissivityPathGain*pCO2) +
		emissivityH2OCoeff*math.Log1p(emissivityPathGain*pH2O))
	return math.Min(eps, emissivityCap)
}

// gasViscosity is a power-law fit for flue gas dynamic viscosity, Pa*s.
func gasViscosity(tK float64) float64 {
	return 1.716e-5 * math.Pow(tK/kelvinOffset, 0.7)
}

// gasConductivity is a power-law fit for flue gas thermal conductivity,
// W/(m*K).
func gasConductivity(tK float64) float64 {
	return 0.0242 * math.Pow(tK/kelvinOffset, 0.8)
}
