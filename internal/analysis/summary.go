package analysis

import (
	"github.com/montanaflynn/stats"

	"esscalc/domain/core"
	"esscalc/domain/sample"
)

// CompleteCaseSummary computes descriptive statistics over the complete
// cases of a variable. Missing observations are excluded before any
// statistic is taken, so the summary describes exactly the values an
// estimator would see.
//
// At least one complete case is required; a fully-missing variable returns
// ErrInsufficientData.
func CompleteCaseSummary(v sample.Variable) (sample.Summary, error) {
	values := v.CompleteValues()
	if len(values) == 0 {
		return sample.Summary{}, core.ErrInsufficientData
	}

	mean, _ := stats.Mean(values)
	stdDev, _ := stats.StandardDeviation(values)
	min, _ := stats.Min(values)
	max, _ := stats.Max(values)
	median, _ := stats.Median(values)
	q25, _ := stats.Percentile(values, 25)
	q75, _ := stats.Percentile(values, 75)

	return sample.Summary{
		N:      len(values),
		Mean:   mean,
		StdDev: stdDev,
		Min:    min,
		Max:    max,
		Median: median,
		Q25:    q25,
		Q75:    q75,
	}, nil
}
