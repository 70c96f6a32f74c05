package app

import (
	"errors"
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"esscalc/domain/core"
	"esscalc/domain/sample"
	"esscalc/internal"
)

func bothPositive(values []float64) bool {
	for _, v := range values {
		if v <= 0 {
			return false
		}
	}
	return true
}

func studyVariables() []sample.Variable {
	nan := math.NaN()
	income := sample.FromFloats("income_change", []float64{
		150, 200, nan, 400, -50, 600, nan, 800,
		100, nan, 250, 300, 350, nan, 450,
	})
	cover := sample.FromFloats("tree_cover_change", []float64{
		0.05, nan, 0.10, 0.08, 0.02, nan, 0.12, 0.15,
		nan, 0.06, 0.09, nan, 0.11, 0.07, 0.13,
	})
	return []sample.Variable{income, cover}
}

func TestStudyService_Run(t *testing.T) {
	service := NewStudyService(0.95, internal.NewLogger(internal.LogLevelError))

	report, err := service.Run(studyVariables(), bothPositive)
	require.NoError(t, err)

	assert.False(t, core.ID(report.ID).IsEmpty())
	assert.False(t, report.CreatedAt.IsZero())

	// Per-variable diagnostics: 4 missing out of 15 in each variable
	require.Len(t, report.Variables, 2)
	for _, profile := range report.Variables {
		assert.Equal(t, 15, profile.Completeness.NTotal)
		assert.Equal(t, 11, profile.Completeness.NEffective)
		assert.Equal(t, 4, profile.Completeness.NMissing)
		require.NotNil(t, profile.Summary)
		assert.Equal(t, 11, profile.Summary.N)
	}

	// Joint completeness: 8 positions are missing in at least one variable
	assert.Equal(t, 15, report.Joint.NTotal)
	assert.Equal(t, 7, report.Joint.NEffective)
	assert.Equal(t, 8, report.Joint.NMissing)
	assert.Equal(t, []int{4, 4}, report.Joint.MissingByVariable)

	// Of the 7 complete cases only the -50 income case fails the rule
	assert.Equal(t, 6, report.Successes)
	assert.InDelta(t, 6.0/7.0, report.Estimate.PHat, 1e-12)
	assert.InDelta(t, 0.1323, report.Estimate.StandardError, 1e-4)
	assert.InDelta(t, 0.598, report.Estimate.CILower, 1e-3)
	assert.Equal(t, 1.0, report.Estimate.CIUpper, "upper bound should clamp to 1")
}

func TestStudyService_Run_NilRule(t *testing.T) {
	service := NewStudyService(0.95, internal.NewLogger(internal.LogLevelError))
	_, err := service.Run(studyVariables(), nil)
	assert.True(t, core.IsInvalidInput(err))
}

func TestStudyService_Run_LengthMismatch(t *testing.T) {
	service := NewStudyService(0.95, internal.NewLogger(internal.LogLevelError))
	vars := []sample.Variable{
		sample.FromFloats("x", []float64{1, 2, 3}),
		sample.FromFloats("y", []float64{1, 2}),
	}
	_, err := service.Run(vars, bothPositive)
	assert.True(t, core.IsLengthMismatch(err))
}

func TestStudyService_Run_NoCompleteCases(t *testing.T) {
	nan := math.NaN()
	service := NewStudyService(0.95, internal.NewLogger(internal.LogLevelError))
	vars := []sample.Variable{
		sample.FromFloats("x", []float64{nan, 2}),
		sample.FromFloats("y", []float64{1, nan}),
	}
	_, err := service.Run(vars, bothPositive)
	assert.True(t, errors.Is(err, core.ErrInsufficientData))
}
