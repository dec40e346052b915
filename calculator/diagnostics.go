package calculator

import (
	"fmt"

	"burner/model"
)

// Warning codes attached to results. Non-fatal: the best-effort value is
// still returned, flagged for the caller.
const (
	WarnNonConvergence     = "non_convergence"
	WarnUnsupportedSpecies = "unsupported_species"
	WarnAirDeficit         = "air_deficit"
)

// InvalidCompositionError is fatal for the evaluation: no result is produced.
type InvalidCompositionError struct {
	Species string
	Reason  string
}

func (e *InvalidCompositionError) Error() string {
	if e.Species != "" {
		return fmt.Sprintf("invalid fuel composition: %s: %s", e.Species, e.Reason)
	}
	return fmt.Sprintf("invalid fuel composition: %s", e.Reason)
}

func warnf(code, format string, args ...any) model.Warning {
	return model.Warning{Code: code, Message: fmt.Sprintf(format, args...)}
}

// warnings collects diagnostics while deduplicating per-species Cp fallbacks,
// so one missing species does not flood a 50-iteration solve.
type warnings struct {
	list []model.Warning
	seen map[string]struct{}
}

func (w *warnings) add(warn model.Warning) {
	w.list = append(w.list, warn)
}

func (w *warnings) addOnce(key string, warn model.Warning) {
	if w.seen == nil {
		w.seen = make(map[string]struct{})
	}
	if _, ok := w.seen[key]; ok {
		return
	}
	w.seen[key] = struct{}{}
	w.list = append(w.list, warn)
}

// validateComposition enforces the composition sanity the source never
// checked: known components, non-negative percentages, non-zero molar mass.
func validateComposition(comp model.FuelComposition) error {
	if len(comp) == 0 {
		return &InvalidCompositionError{Reason: "no components"}
	}
	total := 0.0
	for species, pct := range comp {
		if _, ok := fuelSpeciesTable[species]; !ok {
			return &InvalidCompositionError{Species: species, Reason: "unknown component"}
		}
		if pct < 0 {
			return &InvalidCompositionError{Species: species, Reason: "negative mole percentage"}
		}
		total += pct
	}
	if total <= 0 {
		return &InvalidCompositionError{Reason: "mole percentages sum to zero"}
	}
	return nil
}
