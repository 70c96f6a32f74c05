package analysis

import (
	"math"

	"gonum.org/v1/gonum/stat/distuv"

	"esscalc/domain/core"
	"esscalc/domain/sample"
)

// DefaultConfidenceLevel is the conventional two-sided 95% level
const DefaultConfidenceLevel = 0.95

// ProportionEstimateCI computes p-hat = successes / nEffective with its
// standard error and a two-sided Wald confidence interval.
//
// The critical value is the standard normal quantile at
// (1 + confidenceLevel) / 2 (z ≈ 1.959964 at 95%). Both bounds are truncated
// to the valid probability range [0,1]; the interval is not recentered, so a
// truncated interval may sit asymmetrically around p-hat. When p-hat is 0 or
// 1 the standard error is 0 and the interval collapses to a point.
func ProportionEstimateCI(successes, nEffective int, confidenceLevel float64) (sample.ProportionEstimate, error) {
	if nEffective <= 0 {
		return sample.ProportionEstimate{}, core.NewInvalidInputErrorf("effective sample size must be positive, got %d", nEffective)
	}
	if successes < 0 || successes > nEffective {
		return sample.ProportionEstimate{}, core.NewInvalidInputErrorf("successes must be in [0, %d], got %d", nEffective, successes)
	}
	if confidenceLevel <= 0 || confidenceLevel >= 1 {
		return sample.ProportionEstimate{}, core.NewInvalidInputErrorf("confidence level must be in (0, 1), got %g", confidenceLevel)
	}

	pHat := float64(successes) / float64(nEffective)
	standardError := math.Sqrt(pHat * (1 - pHat) / float64(nEffective))

	stdNormal := distuv.Normal{Mu: 0, Sigma: 1}
	z := stdNormal.Quantile((1 + confidenceLevel) / 2)
	margin := z * standardError

	return sample.ProportionEstimate{
		PHat:            pHat,
		StandardError:   standardError,
		CILower:         math.Max(0, pHat-margin),
		CIUpper:         math.Min(1, pHat+margin),
		ConfidenceLevel: confidenceLevel,
	}, nil
}
