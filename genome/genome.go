// Package genome defines the evolvable trait vector of a tribe member.
package genome

import "math/rand"

// Trait indexes one evolvable trait in a Genome.
type Trait int

const (
	// Speed is movement distance per tick.
	Speed Trait = iota
	// Caution weights predator avoidance against foraging.
	Caution
	// SearchBias blends directed food seeking with random wandering.
	SearchBias
	// Efficiency reduces the energy cost of movement.
	Efficiency

	// NumTraits is the fixed genome length.
	NumTraits
)

// TraitNames returns human-readable names, indexed by Trait.
var TraitNames = [NumTraits]string{
	Speed:      "speed",
	Caution:    "caution",
	SearchBias: "search_bias",
	Efficiency: "efficiency",
}

// Range holds the valid value range for one trait.
type Range struct {
	Min, Max float64
}

// Limits holds the valid range for every trait.
type Limits [NumTraits]Range

// DefaultLimits are the trait ranges used when none are configured.
var DefaultLimits = Limits{
	Speed:      {Min: 0.5, Max: 3.0},
	Caution:    {Min: 0.0, Max: 1.0},
	SearchBias: {Min: 0.0, Max: 1.0},
	Efficiency: {Min: 0.1, Max: 1.0},
}

// Clamp forces v into the range for trait t.
func (l Limits) Clamp(t Trait, v float64) float64 {
	r := l[t]
	if v < r.Min {
		return r.Min
	}
	if v > r.Max {
		return r.Max
	}
	return v
}

// Genome is a fixed-shape vector of trait values. It is a value type:
// once assigned to an organism it is never modified in place; mutation
// and crossover produce new genomes.
type Genome struct {
	values [NumTraits]float64
}

// New builds a genome from explicit trait values, clamped to limits.
func New(values [NumTraits]float64, limits Limits) Genome {
	var g Genome
	for t := Trait(0); t < NumTraits; t++ {
		g.values[t] = limits.Clamp(t, values[t])
	}
	return g
}

// Random builds a genome with each trait drawn uniformly from its range.
func Random(rng *rand.Rand, limits Limits) Genome {
	var g Genome
	for t := Trait(0); t < NumTraits; t++ {
		r := limits[t]
		g.values[t] = r.Min + rng.Float64()*(r.Max-r.Min)
	}
	return g
}

// Value returns the value of trait t.
func (g Genome) Value(t Trait) float64 {
	return g.values[t]
}

// Values returns a copy of all trait values.
func (g Genome) Values() [NumTraits]float64 {
	return g.values
}

// Average returns the per-trait average of two parent genomes.
// Parent values are already within limits, so the average is too.
func Average(a, b Genome) Genome {
	var g Genome
	for t := Trait(0); t < NumTraits; t++ {
		g.values[t] = (a.values[t] + b.values[t]) / 2
	}
	return g
}
