// Package sim implements the genetic-algorithm life cycle of the tribe:
// fitness evaluation, selection, reproduction, mutation, and the
// generation controller that drives them.
package sim

import "github.com/RizeComputerScience/tribesim/genome"

// Organism is one simulated tribe member. It owns exactly one genome for
// its lifetime; offspring receive new genomes.
type Organism struct {
	ID     uint32
	Genome genome.Genome

	// World state, written by the tick-physics collaborator.
	X, Y   float64
	Alive  bool
	Energy float64

	// Fitness accumulators. Fitness itself is derived, never stored.
	TicksSurvived  int
	FoodCollected  int
	LivesRemaining int
}
