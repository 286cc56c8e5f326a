package sim

import "testing"

// makePop builds a population where organism i survived ticks[i] ticks
// and collected no food, so fitness equals ticks[i].
func makePop(ticks ...int) []Organism {
	pop := make([]Organism, len(ticks))
	for i, tk := range ticks {
		pop[i] = Organism{ID: uint32(i), TicksSurvived: tk, Alive: true}
	}
	return pop
}

func TestSurvivorCount(t *testing.T) {
	tests := []struct {
		name string
		n    int
		rate float64
		want int
	}{
		{"ten at thirty percent", 10, 0.3, 3},
		{"ceil rounds up", 9, 0.3, 3},
		{"single organism", 1, 0.3, 1},
		{"empty population", 0, 0.3, 0},
		{"full rate", 10, 1.0, 10},
		{"rate above one clamps to n", 4, 1.5, 4},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := SurvivorCount(tt.n, tt.rate); got != tt.want {
				t.Errorf("SurvivorCount(%d, %v) = %d, want %d", tt.n, tt.rate, got, tt.want)
			}
		})
	}
}

func TestSelectPartition(t *testing.T) {
	// N=10 at 30%: 3 survivors, 7 eliminated.
	pop := makePop(50, 200, 10, 340, 90, 120, 5, 280, 70, 30)

	survivors, eliminated := Select(pop, 0.3)

	if len(survivors) != 3 {
		t.Fatalf("survivor count = %d, want 3", len(survivors))
	}
	if len(eliminated) != 7 {
		t.Fatalf("eliminated count = %d, want 7", len(eliminated))
	}

	// Survivors are exactly the top-fitness organisms, best first.
	wantIndices := []int{3, 7, 1}
	for i, r := range survivors {
		if r.Index != wantIndices[i] {
			t.Errorf("survivor %d has original index %d, want %d", i, r.Index, wantIndices[i])
		}
	}

	// Eliminated are ordered by rank as well.
	prev := survivors[len(survivors)-1].Fitness
	for _, r := range eliminated {
		if r.Fitness > prev {
			t.Errorf("eliminated organism index %d outranks a survivor", r.Index)
		}
		prev = r.Fitness
	}
}

func TestSelectTieBreakByOriginalIndex(t *testing.T) {
	// Every organism has identical fitness; ordering must be the
	// original population order, deterministically.
	pop := makePop(100, 100, 100, 100, 100, 100)

	for run := 0; run < 5; run++ {
		ranked := Rank(pop)
		for i, r := range ranked {
			if r.Index != i {
				t.Fatalf("run %d: rank %d has index %d, want %d", run, i, r.Index, i)
			}
		}
	}
}

func TestSelectEmptyPopulation(t *testing.T) {
	survivors, eliminated := Select(nil, 0.3)
	if len(survivors) != 0 || len(eliminated) != 0 {
		t.Errorf("Select(nil) = %d survivors, %d eliminated, want empty partition", len(survivors), len(eliminated))
	}
}

func TestRankDeadOrganismsScoreByCounters(t *testing.T) {
	// A dead organism still ranks by its accumulated counters.
	pop := []Organism{
		{ID: 0, TicksSurvived: 300, FoodCollected: 2, Alive: false},
		{ID: 1, TicksSurvived: 100, FoodCollected: 0, Alive: true},
	}

	ranked := Rank(pop)
	if ranked[0].Index != 0 {
		t.Errorf("best ranked index = %d, want 0", ranked[0].Index)
	}
	if ranked[0].Fitness != 900 {
		t.Errorf("best fitness = %v, want 900", ranked[0].Fitness)
	}
}
