// Package main provides CMA-ES search over simulation parameters that
// shape how quickly the tribe's foraging fitness improves.
package main

import (
	"github.com/RizeComputerScience/tribesim/config"
)

// ParamSpec defines a single tunable parameter.
type ParamSpec struct {
	Name    string  // Human-readable name
	Path    string  // Config path for logging
	Min     float64 // Lower bound
	Max     float64 // Upper bound
	Default float64 // Default value
}

// ParamVector holds the set of all tunable parameters.
type ParamVector struct {
	Specs []ParamSpec
}

// NewParamVector creates the standard set of tunable parameters.
func NewParamVector() *ParamVector {
	return &ParamVector{
		Specs: []ParamSpec{
			// Mutation
			{Name: "mutation_rate", Path: "mutation.rate", Min: 0.01, Max: 0.5, Default: 0.1},
			{Name: "mutation_delta", Path: "mutation.delta", Min: 0.05, Max: 0.5, Default: 0.2},
			// Forage energy economics
			{Name: "base_cost", Path: "forage.base_cost", Min: 0.0001, Max: 0.002, Default: 0.0004},
			{Name: "move_cost", Path: "forage.move_cost", Min: 0.0001, Max: 0.001, Default: 0.0003},
			{Name: "sense_range", Path: "forage.sense_range", Min: 60, Max: 300, Default: 160},
			{Name: "flee_weight", Path: "forage.flee_weight", Min: 0.5, Max: 4.0, Default: 2.0},
			// Food
			{Name: "pickup_radius", Path: "food.pickup_radius", Min: 6, Max: 20, Default: 12},
		},
	}
}

// Dim returns the number of parameters.
func (pv *ParamVector) Dim() int {
	return len(pv.Specs)
}

// DefaultVector returns the default parameter values as a slice.
func (pv *ParamVector) DefaultVector() []float64 {
	v := make([]float64, len(pv.Specs))
	for i, spec := range pv.Specs {
		v[i] = spec.Default
	}
	return v
}

// Normalize converts raw parameter values to [0,1] range.
func (pv *ParamVector) Normalize(raw []float64) []float64 {
	normalized := make([]float64, len(pv.Specs))
	for i, spec := range pv.Specs {
		normalized[i] = (raw[i] - spec.Min) / (spec.Max - spec.Min)
	}
	return normalized
}

// Denormalize converts [0,1] values back to raw parameter values.
func (pv *ParamVector) Denormalize(normalized []float64) []float64 {
	raw := make([]float64, len(pv.Specs))
	for i, spec := range pv.Specs {
		raw[i] = spec.Min + normalized[i]*(spec.Max-spec.Min)
	}
	return raw
}

// Clamp ensures all values are within bounds.
func (pv *ParamVector) Clamp(v []float64) []float64 {
	clamped := make([]float64, len(pv.Specs))
	for i, spec := range pv.Specs {
		val := v[i]
		if val < spec.Min {
			val = spec.Min
		}
		if val > spec.Max {
			val = spec.Max
		}
		clamped[i] = val
	}
	return clamped
}

// ApplyToConfig applies parameter values to a Config struct.
// Order must match Specs order.
func (pv *ParamVector) ApplyToConfig(cfg *config.Config, values []float64) {
	clamped := pv.Clamp(values)

	cfg.Mutation.Rate = clamped[0]
	cfg.Mutation.Delta = clamped[1]
	cfg.Forage.BaseCost = clamped[2]
	cfg.Forage.MoveCost = clamped[3]
	cfg.Forage.SenseRange = clamped[4]
	cfg.Forage.FleeWeight = clamped[5]
	cfg.Food.PickupRadius = clamped[6]
}

// ExtractFromConfig extracts current parameter values from a Config struct.
func (pv *ParamVector) ExtractFromConfig(cfg *config.Config) []float64 {
	return []float64{
		cfg.Mutation.Rate,
		cfg.Mutation.Delta,
		cfg.Forage.BaseCost,
		cfg.Forage.MoveCost,
		cfg.Forage.SenseRange,
		cfg.Forage.FleeWeight,
		cfg.Food.PickupRadius,
	}
}
