package sample

// Completeness reports how much of a single variable is usable for
// estimation.
// INVARIANTS:
// - NTotal > 0 (empty input is rejected before construction)
// - NEffective + NMissing == NTotal
// - 0 <= NEffective <= NTotal
type Completeness struct {
	Variable           string  `json:"variable,omitempty"`
	NTotal             int     `json:"n_total"`
	NEffective         int     `json:"n_effective"`
	NMissing           int     `json:"n_missing"`
	ProportionComplete float64 `json:"proportion_complete"`
	ProportionMissing  float64 `json:"proportion_missing"`
}

// MultivariateCompleteness reports complete-case counts across several
// position-aligned variables. A case is complete iff no variable is missing
// at that position (listwise deletion).
//
// MissingByVariable holds the independent per-variable missing counts; they
// may overlap across variables, so NMissing is NTotal - NEffective, never
// their sum.
type MultivariateCompleteness struct {
	NTotal             int     `json:"n_total"`
	NEffective         int     `json:"n_effective"`
	NMissing           int     `json:"n_missing"`
	ProportionComplete float64 `json:"proportion_complete"`
	ProportionMissing  float64 `json:"proportion_missing"`
	MissingByVariable  []int   `json:"missing_by_variable"`
}

// ProportionEstimate is a Wald estimate of a proportion built on the
// effective sample size. Bounds are truncated to [0,1]; the interval is not
// recentered after truncation, so it may be asymmetric. When PHat is 0 or 1
// the standard error is 0 and the interval collapses to a point, a known
// limitation of the Wald method.
type ProportionEstimate struct {
	PHat            float64 `json:"p_hat"`
	StandardError   float64 `json:"standard_error"`
	CILower         float64 `json:"ci_lower"`
	CIUpper         float64 `json:"ci_upper"`
	ConfidenceLevel float64 `json:"confidence_level"`
}

// Summary holds descriptive statistics over the complete cases of a variable
type Summary struct {
	N      int     `json:"n"`
	Mean   float64 `json:"mean"`
	StdDev float64 `json:"std_dev"`
	Min    float64 `json:"min"`
	Max    float64 `json:"max"`
	Median float64 `json:"median"`
	Q25    float64 `json:"q25"`
	Q75    float64 `json:"q75"`
}
