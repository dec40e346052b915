package calculator

// Physical constants and species property tables. Built once at package
// load and read-only afterwards; nothing in the pipeline mutates them.

const (
	universalGasConstant = 8314.0   // J/(kmol*K)
	stefanBoltzmann      = 5.670e-8 // W/(m2*K4)
	kelvinOffset         = 273.15
	referenceTempC       = 25.0 // enthalpy/entropy reference

	airMolarMass    = 28.97 // kg/kmol
	o2VolFracInAir  = 0.21  // volumetric O2 fraction of dry air
	n2VolFracInAir  = 0.79  // balance, all non-O2 lumped as N2
	o2MassFracInAir = 0.232 // O2 mass fraction of dry air
)

// Silent-fallback defaults for species with no Cp coefficients. Their use is
// reported through an unsupported_species warning, never applied silently.
const (
	defaultCpMolar = 30.0   // J/(mol*K)
	defaultCpMass  = 1000.0 // J/(kg*K)
)

// fuelSpecies carries the per-component combustion data derived from the
// balanced equation CnH(2n+2) + (3n+1)/2 O2 -> n CO2 + (n+1) H2O.
// CO2 in the fuel passes through unreacted.
type fuelSpecies struct {
	MolarMass float64 // kg/kmol
	LHV       float64 // MJ/kg
	HHV       float64 // MJ/kg
	StoichO2  float64 // kmol O2 per kmol fuel
	CO2Yield  float64 // kmol CO2 per kmol fuel
	H2OYield  float64 // kmol H2O per kmol fuel
}

var fuelSpeciesTable = map[string]fuelSpecies{
	"CH4":   {MolarMass: 16.043, LHV: 50.00, HHV: 55.50, StoichO2: 2.0, CO2Yield: 1, H2OYield: 2},
	"C2H6":  {MolarMass: 30.070, LHV: 47.80, HHV: 51.90, StoichO2: 3.5, CO2Yield: 2, H2OYield: 3},
	"C3H8":  {MolarMass: 44.097, LHV: 46.35, HHV: 50.35, StoichO2: 5.0, CO2Yield: 3, H2OYield: 4},
	"C4H10": {MolarMass: 58.123, LHV: 45.75, HHV: 49.50, StoichO2: 6.5, CO2Yield: 4, H2OYield: 5},
	"CO2":   {MolarMass: 44.010, LHV: 0, HHV: 0, StoichO2: 0, CO2Yield: 1, H2OYield: 0},
}

// cpPoly is the ideal-gas heat capacity polynomial
// Cp = A + B*T + C*T^2 + D*T^3, T in K, Cp in J/(mol*K).
type cpPoly struct {
	A, B, C, D float64
}

func (p cpPoly) at(tK float64) float64 {
	return p.A + p.B*tK + p.C*tK*tK + p.D*tK*tK*tK
}

var cpPolynomials = map[string]cpPoly{
	"CO2":   {22.26, 5.981e-2, -3.501e-5, 7.469e-9},
	"H2O":   {32.24, 0.1923e-2, 1.055e-5, -3.595e-9},
	"N2":    {28.90, -0.1571e-2, 0.8081e-5, -2.873e-9},
	"O2":    {25.48, 1.520e-2, -0.7155e-5, 1.312e-9},
	"CH4":   {19.89, 5.024e-2, 1.269e-5, -11.01e-9},
	"C2H6":  {6.900, 17.27e-2, -6.406e-5, 7.285e-9},
	"C3H8":  {-4.04, 30.48e-2, -15.72e-5, 31.74e-9},
	"C4H10": {3.96, 37.15e-2, -18.34e-5, 35.00e-9},
}

var speciesMolarMass = map[string]float64{
	"CO2":   44.010,
	"H2O":   18.015,
	"N2":    28.013,
	"O2":    31.999,
	"CH4":   16.043,
	"C2H6":  30.070,
	"C3H8":  44.097,
	"C4H10": 58.123,
}

// cpMolar evaluates the Cp polynomial for a species at tK. The second return
// reports whether the species has coefficients; callers substitute
// defaultCpMolar and raise an unsupported_species warning when it is false.
func cpMolar(species string, tK float64) (float64, bool) {
	p, ok := cpPolynomials[species]
	if !ok {
		return defaultCpMolar, false
	}
	return p.at(tK), true
}

// cpMass converts the molar Cp to a per-mass basis, J/(kg*K).
func cpMass(species string, tK float64) (float64, bool) {
	m, okM := speciesMolarMass[species]
	cp, okP := cpMolar(species, tK)
	if !okM || !okP {
		return defaultCpMass, false
	}
	return cp * 1000.0 / m, true
}

// airCpMass is the per-mass specific heat of dry air at tK, mole-weighted
// over the 79/21 N2/O2 split. J/(kg*K).
func airCpMass(tK float64) float64 {
	n2, _ := cpMolar("N2", tK)
	o2, _ := cpMolar("O2", tK)
	molar := n2VolFracInAir*n2 + o2VolFracInAir*o2
	return molar * 1000.0 / airMolarMass
}

func celsiusToKelvin(tC float64) float64 { return tC + kelvinOffset }
