package sample

import (
	"math"

	"esscalc/domain/core"
)

// Observation is a single scalar measurement: either a present numeric value
// or a missing marker. The missing rule (NaN, null pointer, or a custom
// sentinel) is applied once at ingestion, so computations downstream never
// compare sentinels.
type Observation struct {
	value   float64
	present bool
}

// Present creates an observation carrying a value
func Present(value float64) Observation {
	return Observation{value: value, present: true}
}

// Missing creates a missing observation
func Missing() Observation {
	return Observation{}
}

// IsMissing reports whether the observation carries no value
func (o Observation) IsMissing() bool {
	return !o.present
}

// Value returns the observed value and whether one is present
func (o Observation) Value() (float64, bool) {
	return o.value, o.present
}

// Variable is a named, ordered sequence of observations. Position i across
// variables refers to the same case/subject.
type Variable struct {
	name string
	obs  []Observation
}

// NewVariable creates a variable from already-classified observations
func NewVariable(name string, obs []Observation) Variable {
	return Variable{name: name, obs: obs}
}

// FromFloats ingests raw float64 data, classifying NaN and ±Inf as missing.
func FromFloats(name string, data []float64) Variable {
	obs := make([]Observation, len(data))
	for i, v := range data {
		if math.IsNaN(v) || math.IsInf(v, 0) {
			obs[i] = Missing()
		} else {
			obs[i] = Present(v)
		}
	}
	return Variable{name: name, obs: obs}
}

// FromFloatsIndicator ingests raw float64 data, classifying values equal to
// the caller-supplied sentinel (e.g. -999) as missing. Equality is ordinary
// float64 equality, so a NaN indicator is rejected: NaN never equals itself
// and would silently mark nothing as missing.
func FromFloatsIndicator(name string, data []float64, indicator float64) (Variable, error) {
	if math.IsNaN(indicator) {
		return Variable{}, core.NewInvalidInputError("missing indicator cannot be NaN")
	}
	obs := make([]Observation, len(data))
	for i, v := range data {
		if v == indicator {
			obs[i] = Missing()
		} else {
			obs[i] = Present(v)
		}
	}
	return Variable{name: name, obs: obs}, nil
}

// FromPtrs ingests pointer-valued data, classifying nil as missing. This is
// the ingestion path for sources that model absent values as nulls.
func FromPtrs(name string, data []*float64) Variable {
	obs := make([]Observation, len(data))
	for i, v := range data {
		if v == nil || math.IsNaN(*v) {
			obs[i] = Missing()
		} else {
			obs[i] = Present(*v)
		}
	}
	return Variable{name: name, obs: obs}
}

// Name returns the variable name
func (v Variable) Name() string {
	return v.name
}

// Len returns the total number of observations, missing included
func (v Variable) Len() int {
	return len(v.obs)
}

// At returns the observation at position i
func (v Variable) At(i int) Observation {
	return v.obs[i]
}

// MissingCount returns the number of missing observations
func (v Variable) MissingCount() int {
	n := 0
	for _, o := range v.obs {
		if o.IsMissing() {
			n++
		}
	}
	return n
}

// CompleteValues returns the present values in order, skipping missing ones
func (v Variable) CompleteValues() []float64 {
	out := make([]float64, 0, len(v.obs))
	for _, o := range v.obs {
		if val, ok := o.Value(); ok {
			out = append(out, val)
		}
	}
	return out
}
