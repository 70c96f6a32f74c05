// Package analysis implements effective sample size accounting for data with
// missing values, and proportion estimation on top of it.
//
// With no repeated measurements, the effective sample size for estimating a
// proportion is simply the number of complete cases: observations (or, in the
// multivariate setting, positions complete across every variable) that carry
// a value. All functions are pure; identical inputs yield identical outputs.
package analysis

import (
	"esscalc/domain/core"
	"esscalc/domain/sample"
)

// EffectiveSampleSize classifies every observation of a variable as missing
// or complete and reports the resulting counts and proportions.
//
// An empty variable is rejected with ErrInvalidInput: the proportions would
// divide by zero, and silently returning zeros hides an upstream data bug.
func EffectiveSampleSize(v sample.Variable) (sample.Completeness, error) {
	nTotal := v.Len()
	if nTotal == 0 {
		return sample.Completeness{}, core.NewInvalidInputErrorf("variable %q has no observations", v.Name())
	}

	nMissing := v.MissingCount()
	nEffective := nTotal - nMissing

	return sample.Completeness{
		Variable:           v.Name(),
		NTotal:             nTotal,
		NEffective:         nEffective,
		NMissing:           nMissing,
		ProportionComplete: float64(nEffective) / float64(nTotal),
		ProportionMissing:  float64(nMissing) / float64(nTotal),
	}, nil
}

// EffectiveSampleSizeMultivariate counts complete cases across several
// position-aligned variables. A case is complete iff every variable carries a
// value at that position, so the effective sample size here is what listwise
// deletion would leave for a joint analysis.
//
// All variables must be non-empty and share one length. The per-variable
// missing counts in the result are independent diagnostics; cases missing in
// two variables appear in both counts but reduce NEffective only once.
func EffectiveSampleSizeMultivariate(vars ...sample.Variable) (sample.MultivariateCompleteness, error) {
	if len(vars) == 0 {
		return sample.MultivariateCompleteness{}, core.NewInvalidInputError("at least one variable must be provided")
	}

	nTotal := vars[0].Len()
	if nTotal == 0 {
		return sample.MultivariateCompleteness{}, core.NewInvalidInputErrorf("variable %q has no observations", vars[0].Name())
	}
	for _, v := range vars[1:] {
		if v.Len() != nTotal {
			return sample.MultivariateCompleteness{}, core.NewLengthMismatchError(v.Name(), v.Len(), nTotal)
		}
	}

	missingByVariable := make([]int, len(vars))
	nEffective := 0
	for i := 0; i < nTotal; i++ {
		complete := true
		// No short-circuit: every variable's own missing count must be exact.
		for k, v := range vars {
			if v.At(i).IsMissing() {
				missingByVariable[k]++
				complete = false
			}
		}
		if complete {
			nEffective++
		}
	}

	nMissing := nTotal - nEffective

	return sample.MultivariateCompleteness{
		NTotal:             nTotal,
		NEffective:         nEffective,
		NMissing:           nMissing,
		ProportionComplete: float64(nEffective) / float64(nTotal),
		ProportionMissing:  float64(nMissing) / float64(nTotal),
		MissingByVariable:  missingByVariable,
	}, nil
}

// CompleteCaseValues returns, for each variable, the values at positions
// complete across all variables. It shares the preconditions of
// EffectiveSampleSizeMultivariate and is the extraction step between
// completeness accounting and downstream estimation.
func CompleteCaseValues(vars ...sample.Variable) ([][]float64, error) {
	if len(vars) == 0 {
		return nil, core.NewInvalidInputError("at least one variable must be provided")
	}

	nTotal := vars[0].Len()
	if nTotal == 0 {
		return nil, core.NewInvalidInputErrorf("variable %q has no observations", vars[0].Name())
	}
	for _, v := range vars[1:] {
		if v.Len() != nTotal {
			return nil, core.NewLengthMismatchError(v.Name(), v.Len(), nTotal)
		}
	}

	out := make([][]float64, len(vars))
	for k := range out {
		out[k] = []float64{}
	}
	for i := 0; i < nTotal; i++ {
		complete := true
		for _, v := range vars {
			if v.At(i).IsMissing() {
				complete = false
				break
			}
		}
		if !complete {
			continue
		}
		for k, v := range vars {
			val, _ := v.At(i).Value()
			out[k] = append(out[k], val)
		}
	}
	return out, nil
}
