package sim

// Fitness scores an organism's terminal state. It is a pure function of
// survival ticks and food collected, non-negative and monotonically
// non-decreasing in both inputs. Negative inputs are treated as zero.
func Fitness(ticksSurvived, foodCollected int) float64 {
	if ticksSurvived < 0 {
		ticksSurvived = 0
	}
	if foodCollected < 0 {
		foodCollected = 0
	}
	return float64(ticksSurvived) * (1 + float64(foodCollected))
}

// OrganismFitness scores an organism from its accumulated counters.
func OrganismFitness(o *Organism) float64 {
	return Fitness(o.TicksSurvived, o.FoodCollected)
}
