package sim

import (
	"math"
	"sort"
)

// Ranked pairs an organism with its computed fitness and original
// population index. The index is the tie-break key.
type Ranked struct {
	Organism Organism
	Index    int
	Fitness  float64
}

// Rank computes fitness for every organism and orders them by fitness
// descending, ties broken by original index ascending. The ordering is
// deterministic for a fixed input order.
func Rank(pop []Organism) []Ranked {
	ranked := make([]Ranked, len(pop))
	for i, o := range pop {
		ranked[i] = Ranked{Organism: o, Index: i, Fitness: OrganismFitness(&o)}
	}
	sort.SliceStable(ranked, func(i, j int) bool {
		if ranked[i].Fitness != ranked[j].Fitness {
			return ranked[i].Fitness > ranked[j].Fitness
		}
		return ranked[i].Index < ranked[j].Index
	})
	return ranked
}

// SurvivorCount returns the number of survivors for a population of size
// n: ceil(n * rate), never more than n.
func SurvivorCount(n int, rate float64) int {
	if n <= 0 {
		return 0
	}
	count := int(math.Ceil(float64(n) * rate))
	if count > n {
		count = n
	}
	return count
}

// Select partitions a population into survivors (the top ceil(N*rate) by
// fitness) and eliminated (the rest), both ordered by rank. An empty
// population yields an empty survivor set; the controller handles that
// case with a re-seed fallback.
func Select(pop []Organism, rate float64) (survivors, eliminated []Ranked) {
	ranked := Rank(pop)
	cut := SurvivorCount(len(pop), rate)
	return ranked[:cut], ranked[cut:]
}
