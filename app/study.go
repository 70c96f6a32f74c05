package app

import (
	"esscalc/domain/core"
	"esscalc/domain/sample"
	"esscalc/internal"
	"esscalc/internal/analysis"
)

// SuccessRule classifies one complete case as a success. It receives the
// case's values in variable order and must be deterministic.
type SuccessRule func(values []float64) bool

// VariableProfile pairs a variable's completeness with descriptive
// statistics over its complete cases. Summary is nil when the variable has
// no complete cases.
type VariableProfile struct {
	Completeness sample.Completeness `json:"completeness"`
	Summary      *sample.Summary     `json:"summary,omitempty"`
}

// StudyReport is the full output of one complete-case study: per-variable
// diagnostics, joint completeness under listwise deletion, and the Wald
// proportion estimate built on the joint effective sample size.
type StudyReport struct {
	ID        core.ReportID                   `json:"id"`
	Variables []VariableProfile               `json:"variables"`
	Joint     sample.MultivariateCompleteness `json:"joint"`
	Successes int                             `json:"successes"`
	Estimate  sample.ProportionEstimate       `json:"estimate"`
	CreatedAt core.Timestamp                  `json:"created_at"`
}

// StudyService runs complete-case proportion studies
type StudyService struct {
	confidenceLevel float64
	log             *internal.Logger
}

// NewStudyService creates a study service with the given confidence level
func NewStudyService(confidenceLevel float64, logger *internal.Logger) *StudyService {
	if logger == nil {
		logger = internal.DefaultLogger
	}
	return &StudyService{
		confidenceLevel: confidenceLevel,
		log:             logger,
	}
}

// Run executes the study pipeline: per-variable completeness, joint
// completeness across all variables, success counting over the complete
// cases, and the proportion estimate with its confidence interval.
//
// At least one jointly complete case is required; otherwise there is no
// denominator to estimate from and ErrInsufficientData is returned.
func (s *StudyService) Run(vars []sample.Variable, rule SuccessRule) (*StudyReport, error) {
	if rule == nil {
		return nil, core.NewInvalidInputError("success rule must be provided")
	}

	joint, err := analysis.EffectiveSampleSizeMultivariate(vars...)
	if err != nil {
		return nil, err
	}

	profiles := make([]VariableProfile, 0, len(vars))
	for _, v := range vars {
		completeness, err := analysis.EffectiveSampleSize(v)
		if err != nil {
			return nil, err
		}
		profile := VariableProfile{Completeness: completeness}
		if summary, err := analysis.CompleteCaseSummary(v); err == nil {
			profile.Summary = &summary
		}
		profiles = append(profiles, profile)
		s.log.Debug("variable %s: %d of %d observations complete", v.Name(), completeness.NEffective, completeness.NTotal)
	}

	if joint.NEffective == 0 {
		return nil, core.ErrInsufficientData
	}

	cases, err := analysis.CompleteCaseValues(vars...)
	if err != nil {
		return nil, err
	}

	successes := 0
	values := make([]float64, len(vars))
	for i := 0; i < joint.NEffective; i++ {
		for k := range vars {
			values[k] = cases[k][i]
		}
		if rule(values) {
			successes++
		}
	}

	estimate, err := analysis.ProportionEstimateCI(successes, joint.NEffective, s.confidenceLevel)
	if err != nil {
		return nil, err
	}

	s.log.Info("study complete: n_effective=%d successes=%d p_hat=%.3f", joint.NEffective, successes, estimate.PHat)

	return &StudyReport{
		ID:        core.NewReportID(),
		Variables: profiles,
		Joint:     joint,
		Successes: successes,
		Estimate:  estimate,
		CreatedAt: core.Now(),
	}, nil
}
