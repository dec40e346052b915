package calculator

import (
	"fmt"
	"sync"

	"gonum.org/v1/gonum/floats"
	"gonum.org/v1/gonum/stat"

	"burner/model"
)

// Sweep evaluates the pipeline across a range of excess-air values. Each
// point is independent and side-effect free, so the points run fully in
// parallel.
func (c *Calculator) Sweep(comp model.FuelComposition, cond model.OperatingConditions, fromPct, toPct, stepPct float64) (model.SweepResult, error) {
	if stepPct <= 0 {
		return model.SweepResult{}, fmt.Errorf("sweep step must be > 0, got %g", stepPct)
	}
	if toPct < fromPct {
		return model.SweepResult{}, fmt.Errorf("sweep range is empty: from %g to %g", fromPct, toPct)
	}

	var values []float64
	for v := fromPct; v <= toPct+1e-9; v += stepPct {
		values = append(values, v)
	}

	points := make([]model.SweepPoint, len(values))
	errs := make([]error, len(values))
	var wg sync.WaitGroup
	for i, ea := range values {
		wg.Add(1)
		go func(i int, ea float64) {
			defer wg.Done()
			pointCond := cond
			pointCond.ExcessAirPercent = ea
			report, err := c.Evaluate(comp, pointCond)
			if err != nil {
				errs[i] = err
				return
			}
			points[i] = model.SweepPoint{
				ExcessAirPercent: ea,
				FlameTempC:       report.Combustion.AdiabaticFlameTempC,
				DryO2Percent:     report.Combustion.FlueGasComposition.O2,
				NOxPotentialPpm:  report.Thermodynamics.NOxPotentialPpm,
				HeatLHVBasisMW:   report.Thermodynamics.HeatReleased.LHVBasisMW,
			}
		}(i, ea)
	}
	wg.Wait()
	for _, err := range errs {
		if err != nil {
			return model.SweepResult{}, err
		}
	}

	flameTemps := make([]float64, len(points))
	o2 := make([]float64, len(points))
	for i, p := range points {
		flameTemps[i] = p.FlameTempC
		o2[i] = p.DryO2Percent
	}

	return model.SweepResult{
		Points: points,
		Summary: model.SweepSummary{
			FlameTempC:   sweepStats(flameTemps),
			DryO2Percent: sweepStats(o2),
		},
	}, nil
}

func sweepStats(xs []float64) model.SweepStats {
	if len(xs) == 0 {
		return model.SweepStats{}
	}
	stddev := 0.0
	if len(xs) > 1 {
		stddev = stat.StdDev(xs, nil)
	}
	return model.SweepStats{
		Min:    floats.Min(xs),
		Max:    floats.Max(xs),
		Mean:   stat.Mean(xs, nil),
		StdDev: stddev,
	}
}
