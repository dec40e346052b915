package calculator

import (
	"fmt"

	"gopkg.in/ini.v1"
)

// Config collects every assumed constant of the heat-transfer model plus the
// solver limits, so the geometry can be calibrated against real equipment
// without code changes.
type Config struct {
	// [geometry]
	RadiantAreaM2      float64 // radiative exchange surface
	ConvectiveAreaM2   float64 // convective exchange surface
	ConductionAreaM2   float64 // wall area for planar conduction
	WallThicknessM     float64 // refractory thickness
	WallConductivity   float64 // W/(m*K)
	HydraulicDiameterM float64 // flue duct hydraulic diameter

	// [solver]
	MaxIterations int     // flame temperature iteration cap
	ToleranceC    float64 // convergence tolerance, degrees C

	// [profile] fractional placeholders, not derived from geometry
	CombustionZoneFraction float64 // of flame temperature
	PostCombustionFraction float64 // of flame temperature
	HeatExchangeFactor     float64 // multiplier on stack temperature
	WallApproachFraction   float64 // wall temp approach between ambient and stack

	// [environment]
	AmbientTempC float64

	// [server]
	Addr string
}

// DefaultConfig returns the documented defaults, used when no config file is
// present. The same values back the MustXxx fallbacks in LoadConfig.
func DefaultConfig() Config {
	return Config{
		RadiantAreaM2:      2.0,
		ConvectiveAreaM2:   5.0,
		ConductionAreaM2:   10.0,
		WallThicknessM:     0.2,
		WallConductivity:   1.5,
		HydraulicDiameterM: 0.5,

		MaxIterations: 50,
		ToleranceC:    1.0,

		CombustionZoneFraction: 0.90,
		PostCombustionFraction: 0.70,
		HeatExchangeFactor:     1.20,
		WallApproachFraction:   0.60,

		AmbientTempC: 25.0,

		Addr: ":9000",
	}
}

// LoadConfig reads an ini file, filling every missing key with its default.
func LoadConfig(path string) (Config, error) {
	def := DefaultConfig()
	file, err := ini.Load(path)
	if err != nil {
		return def, fmt.Errorf("failed to load config %s: %w", path, err)
	}

	geo := file.Section("geometry")
	solver := file.Section("solver")
	profile := file.Section("profile")
	env := file.Section("environment")
	server := file.Section("server")

	return Config{
		RadiantAreaM2:      geo.Key("RadiantAreaM2").MustFloat64(def.RadiantAreaM2),
		ConvectiveAreaM2:   geo.Key("ConvectiveAreaM2").MustFloat64(def.ConvectiveAreaM2),
		ConductionAreaM2:   geo.Key("ConductionAreaM2").MustFloat64(def.ConductionAreaM2),
		WallThicknessM:     geo.Key("WallThicknessM").MustFloat64(def.WallThicknessM),
		WallConductivity:   geo.Key("WallConductivity").MustFloat64(def.WallConductivity),
		HydraulicDiameterM: geo.Key("HydraulicDiameterM").MustFloat64(def.HydraulicDiameterM),

		MaxIterations: solver.Key("MaxIterations").MustInt(def.MaxIterations),
		ToleranceC:    solver.Key("ToleranceC").MustFloat64(def.ToleranceC),

		CombustionZoneFraction: profile.Key("CombustionZoneFraction").MustFloat64(def.CombustionZoneFraction),
		PostCombustionFraction: profile.Key("PostCombustionFraction").MustFloat64(def.PostCombustionFraction),
		HeatExchangeFactor:     profile.Key("HeatExchangeFactor").MustFloat64(def.HeatExchangeFactor),
		WallApproachFraction:   profile.Key("WallApproachFraction").MustFloat64(def.WallApproachFraction),

		AmbientTempC: env.Key("AmbientTempC").MustFloat64(def.AmbientTempC),

		Addr: server.Key("Addr").MustString(def.Addr),
	}, nil
}
