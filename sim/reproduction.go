package sim

import (
	"fmt"
	"math/rand"

	"github.com/RizeComputerScience/tribesim/genome"
)

// Reproduce generates offspring genomes to refill a population of size n
// from the survivor set. Policy: two-parent per-trait averaging, with
// both parents drawn uniformly at random (with replacement) from the
// survivors. Survivor genomes themselves carry over unchanged; callers
// combine the two sets and mutate only the offspring.
//
// Panics if survivors is empty; the controller's re-seed fallback must
// run before reproduction in that case.
func Reproduce(rng *rand.Rand, survivors []genome.Genome, n int) []genome.Genome {
	if len(survivors) == 0 {
		panic("sim: Reproduce called with empty survivor set")
	}

	needed := n - len(survivors)
	if needed <= 0 {
		return nil
	}

	offspring := make([]genome.Genome, 0, needed)
	for i := 0; i < needed; i++ {
		a := survivors[rng.Intn(len(survivors))]
		b := survivors[rng.Intn(len(survivors))]
		offspring = append(offspring, genome.Average(a, b))
	}
	return offspring
}

// NextGenomes assembles the full genome set for the next generation:
// survivors unchanged, then mutated offspring. The result always has
// exactly n entries; anything else is a programming error.
func NextGenomes(rng *rand.Rand, survivors []genome.Genome, n int, mut Mutator) []genome.Genome {
	offspring := Reproduce(rng, survivors, n)

	next := make([]genome.Genome, 0, n)
	next = append(next, survivors...)
	for _, g := range offspring {
		next = append(next, mut.Mutate(rng, g))
	}

	if len(next) != n {
		panic(fmt.Sprintf("sim: population size mismatch: got %d, want %d", len(next), n))
	}
	return next
}
