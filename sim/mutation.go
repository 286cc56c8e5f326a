package sim

import (
	"math/rand"

	"github.com/RizeComputerScience/tribesim/genome"
)

// Mutator applies stochastic perturbation to offspring genomes. Each
// trait is independently perturbed with probability Rate by a
// multiplicative factor drawn uniformly from [1-Delta, 1+Delta], then
// clamped to the trait's valid range. Randomness comes from the caller's
// seeded source, so runs are reproducible.
type Mutator struct {
	Rate   float64
	Delta  float64
	Limits genome.Limits
}

// Mutate returns a perturbed copy of g. With Rate 0 the result equals g.
func (m Mutator) Mutate(rng *rand.Rand, g genome.Genome) genome.Genome {
	values := g.Values()
	for t := genome.Trait(0); t < genome.NumTraits; t++ {
		if rng.Float64() >= m.Rate {
			continue
		}
		factor := 1 - m.Delta + rng.Float64()*2*m.Delta
		values[t] = m.Limits.Clamp(t, values[t]*factor)
	}
	return genome.New(values, m.Limits)
}
