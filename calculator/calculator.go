package calculator

import (
	log "github.com/sirupsen/logrus"

	"burner/model"
)

// Calculator runs the combustion analysis pipeline. Every evaluation is a
// pure function of its inputs; a single Calculator may serve concurrent
// evaluations without synchronization.
type Calculator struct {
	cfg Config
}

func New(cfg Config) *Calculator {
	return &Calculator{cfg: cfg}
}

// Evaluate runs chemistry, combustion, thermodynamics and heat transfer in
// order and bundles the results with all accumulated warnings.
func (c *Calculator) Evaluate(comp model.FuelComposition, cond model.OperatingConditions) (model.Report, error) {
	comb, combWarns, err := c.EvaluateCombustion(comp, cond)
	if err != nil {
		return model.Report{}, err
	}
	thermo, thermoWarns, err := c.EvaluateThermodynamics(comp, comb, cond)
	if err != nil {
		return model.Report{}, err
	}
	ht, htWarns, err := c.EvaluateHeatTransfer(comb, thermo, cond)
	if err != nil {
		return model.Report{}, err
	}

	report := model.Report{
		Combustion:     comb,
		Thermodynamics: thermo,
		HeatTransfer:   ht,
	}
	report.Warnings = append(report.Warnings, combWarns...)
	report.Warnings = append(report.Warnings, thermoWarns...)
	report.Warnings = append(report.Warnings, htWarns...)

	log.WithFields(log.Fields{
		"excessAirPercent": cond.ExcessAirPercent,
		"fuelFlowKgPerH":   cond.FuelFlowKgPerHour,
		"flameTempC":       comb.AdiabaticFlameTempC,
		"heatLHVBasisMW":   thermo.HeatReleased.LHVBasisMW,
		"warnings":         len(report.Warnings),
	}).Debug("evaluation finished")

	return report, nil
}
