package sim

import (
	"math/rand"

	"github.com/RizeComputerScience/tribesim/genome"
)

// Population is the ordered set of organisms in one generation of the
// evolving tribe. Cardinality stays fixed across generations.
type Population struct {
	Organisms  []Organism
	Generation int
}

// spawner hands out organism IDs and places newborns in the world.
type spawner struct {
	nextID uint32
	worldW float64
	worldH float64
	lives  int
	energy float64
}

// spawn creates a live organism with the given genome at a random
// position. Counters start at zero.
func (s *spawner) spawn(rng *rand.Rand, g genome.Genome) Organism {
	id := s.nextID
	s.nextID++
	return Organism{
		ID:             id,
		Genome:         g,
		X:              rng.Float64() * s.worldW,
		Y:              rng.Float64() * s.worldH,
		Alive:          true,
		Energy:         s.energy,
		LivesRemaining: s.lives,
	}
}

// spawnAll creates one organism per genome.
func (s *spawner) spawnAll(rng *rand.Rand, genomes []genome.Genome) []Organism {
	orgs := make([]Organism, 0, len(genomes))
	for _, g := range genomes {
		orgs = append(orgs, s.spawn(rng, g))
	}
	return orgs
}

// randomGenomes draws n fresh genomes, for initial seeding and the
// empty-survivor fallback.
func randomGenomes(rng *rand.Rand, limits genome.Limits, n int) []genome.Genome {
	genomes := make([]genome.Genome, 0, n)
	for i := 0; i < n; i++ {
		genomes = append(genomes, genome.Random(rng, limits))
	}
	return genomes
}

// RivalTribe is a fixed-genome competitor tribe. Its members forage and
// take predator hits like the evolving tribe, but never enter selection,
// reproduction, or mutation; they are regenerated fresh each generation.
type RivalTribe struct {
	Name    string
	Genome  genome.Genome
	Members []Organism
}
