package model

import "errors"

// FuelComposition maps a component symbol (CH4, C2H6, C3H8, C4H10, CO2)
// to its mole percentage. A physically meaningful mixture sums close to 100.
type FuelComposition map[string]float64

// Boundary validation errors. Range checks live at the serving boundary so
// the calculation core stays a pure function of its inputs.
var (
	ErrExcessAirTooLow  = errors.New("excess air percent must be > -100")
	ErrNonPositiveFlow  = errors.New("fuel flow must be > 0 kg/h")
	ErrNonPositivePress = errors.New("pressure must be > 0 bar")
	ErrTemperatureRange = errors.New("temperature outside engineering range")
	ErrEmptyComposition = errors.New("fuel composition is empty")
)

// OperatingConditions is constructed once per evaluation request and
// read-only thereafter.
type OperatingConditions struct {
	ExcessAirPercent  float64 `json:"excess_air_percent"`
	FuelFlowKgPerHour float64 `json:"fuel_flow_kg_per_hour"`
	FuelTempC         float64 `json:"fuel_temp_c"`
	AirTempC          float64 `json:"air_temp_c"`
	StackTempC        float64 `json:"stack_temp_c"`
	PressureBar       float64 `json:"pressure_bar"`
}

const (
	tempBoundLowC  = -40.0
	tempBoundHighC = 1500.0
)

// Validate applies engineering bounds before the core is invoked. The core
// itself performs no range checking beyond composition sanity.
func (oc OperatingConditions) Validate() error {
	// Air deficits are real operating faults and evaluate with a warning;
	// -100% means no air at all and nothing to compute.
	if oc.ExcessAirPercent <= -100 {
		return ErrExcessAirTooLow
	}
	if oc.FuelFlowKgPerHour <= 0 {
		return ErrNonPositiveFlow
	}
	if oc.PressureBar <= 0 {
		return ErrNonPositivePress
	}
	for _, t := range []float64{oc.FuelTempC, oc.AirTempC, oc.StackTempC} {
		if t < tempBoundLowC || t > tempBoundHighC {
			return ErrTemperatureRange
		}
	}
	return nil
}

// AirFuelRatio in kg air per kg fuel.
type AirFuelRatio struct {
	Stoichiometric float64 `json:"stoichiometric"`
	Actual         float64 `json:"actual"`
}

// FlowRates in kg/h.
type FlowRates struct {
	Fuel      float64 `json:"fuel"`
	Air       float64 `json:"air"`
	Oxygen    float64 `json:"oxygen"`
	ExcessAir float64 `json:"excess_air"`
	FlueGas   float64 `json:"flue_gas"`
}

// FlueGasComposition: CO2, O2 and N2 are dry-basis vol% (summing to 100),
// H2O is wet-basis vol% against the dry+H2O total.
type FlueGasComposition struct {
	CO2 float64 `json:"co2"`
	O2  float64 `json:"o2"`
	N2  float64 `json:"n2"`
	H2O float64 `json:"h2o"`
}

type CombustionResult struct {
	AirFuelRatio        AirFuelRatio       `json:"air_fuel_ratio"`
	FlowRates           FlowRates          `json:"flow_rates"`
	FlueGasComposition  FlueGasComposition `json:"flue_gas_composition"`
	AdiabaticFlameTempC float64            `json:"adiabatic_flame_temp_c"`
}

type HeatReleased struct {
	LHVBasisMW float64 `json:"lhv_basis_mw"`
	HHVBasisMW float64 `json:"hhv_basis_mw"`
}

type FlueGasProperties struct {
	Density      float64 `json:"density"`       // kg/m3
	SpecificHeat float64 `json:"specific_heat"` // J/(kg*K)
	Enthalpy     float64 `json:"enthalpy"`      // J/kg above 25 C reference
	MolarMass    float64 `json:"molar_mass"`    // kg/kmol
}

// EnthalpyBalance terms are J per kg fuel.
type EnthalpyBalance struct {
	Reactants        float64 `json:"reactants"`
	Products         float64 `json:"products"`
	HeatOfCombustion float64 `json:"heat_of_combustion"`
	HeatAvailable    float64 `json:"heat_available"`
}

type Entropy struct {
	SpecificEntropy        float64 `json:"specific_entropy"`         // J/(kg*K)
	TotalEntropyGeneration float64 `json:"total_entropy_generation"` // W/K
}

type ThermodynamicResult struct {
	HeatReleased      HeatReleased      `json:"heat_released"`
	FlueGasProperties FlueGasProperties `json:"flue_gas_properties"`
	EnthalpyBalance   EnthalpyBalance   `json:"enthalpy_balance"`
	Entropy           Entropy           `json:"entropy"`
	NOxPotentialPpm   float64           `json:"nox_potential_ppm"`
}

// HeatTransferRates in kW.
type HeatTransferRates struct {
	Radiation  float64 `json:"radiation"`
	Convection float64 `json:"convection"`
	Conduction float64 `json:"conduction"`
	Total      float64 `json:"total"`
}

// Temperatures along the system, degrees C.
type Temperatures struct {
	Flame          float64 `json:"flame"`
	CombustionZone float64 `json:"combustion_zone"`
	PostCombustion float64 `json:"post_combustion"`
	HeatExchange   float64 `json:"heat_exchange"`
	Stack          float64 `json:"stack"`
	Wall           float64 `json:"wall"`
	Ambient        float64 `json:"ambient"`
}

// HeatTransferCoefficients in W/(m2*K).
type HeatTransferCoefficients struct {
	Convective float64 `json:"convective"`
	Radiative  float64 `json:"radiative"`
	Overall    float64 `json:"overall"`
}

type ThermalProperties struct {
	Conductivity float64 `json:"conductivity"` // W/(m*K)
	Viscosity    float64 `json:"viscosity"`    // Pa*s
	Velocity     float64 `json:"velocity"`     // m/s
}

type HeatTransferResult struct {
	HeatTransferRates          HeatTransferRates        `json:"heat_transfer_rates"`
	Temperatures               Temperatures             `json:"temperatures"`
	HeatTransferCoefficients   HeatTransferCoefficients `json:"heat_transfer_coefficients"`
	HeatExchangerEffectiveness float64                  `json:"heat_exchanger_effectiveness"`
	ThermalProperties          ThermalProperties        `json:"thermal_properties"`
}

// Warning is a non-fatal diagnostic attached to a result so the caller can
// flag reduced confidence instead of silently trusting a fallback value.
type Warning struct {
	Code    string `json:"code"`
	Message string `json:"message"`
}

// Report bundles the three pipeline results with accumulated warnings.
type Report struct {
	Combustion     CombustionResult    `json:"combustion"`
	Thermodynamics ThermodynamicResult `json:"thermodynamics"`
	HeatTransfer   HeatTransferResult  `json:"heat_transfer"`
	Warnings       []Warning           `json:"warnings,omitempty"`
}

// EvaluateRequest is the payload accepted by the REST API and the websocket
// "env" message.
type EvaluateRequest struct {
	Fuel       FuelComposition     `json:"fuel"`
	Conditions OperatingConditions `json:"conditions"`
}

// SweepRequest evaluates the pipeline across a range of excess-air values.
type SweepRequest struct {
	Fuel       FuelComposition     `json:"fuel"`
	Conditions OperatingConditions `json:"conditions"`
	FromPct    float64             `json:"from_pct"`
	ToPct      float64             `json:"to_pct"`
	StepPct    float64             `json:"step_pct"`
}

type SweepPoint struct {
	ExcessAirPercent float64 `json:"excess_air_percent"`
	FlameTempC       float64 `json:"flame_temp_c"`
	DryO2Percent     float64 `json:"dry_o2_percent"`
	NOxPotentialPpm  float64 `json:"nox_potential_ppm"`
	HeatLHVBasisMW   float64 `json:"heat_lhv_basis_mw"`
}

type SweepStats struct {
	Min    float64 `json:"min"`
	Max    float64 `json:"max"`
	Mean   float64 `json:"mean"`
	StdDev float64 `json:"std_dev"`
}

type SweepSummary struct {
	FlameTempC   SweepStats `json:"flame_temp_c"`
	DryO2Percent SweepStats `json:"dry_o2_percent"`
}

type SweepResult struct {
	Points  []SweepPoint `json:"points"`
	Summary SweepSummary `json:"summary"`
}

// Msg is the websocket envelope exchanged with the dashboard.
type Msg struct {
	Type    string `json:"type"`
	Content string `json:"content"`
}
