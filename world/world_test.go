package world

import (
	"math/rand"
	"testing"

	"github.com/RizeComputerScience/tribesim/genome"
	"github.com/RizeComputerScience/tribesim/sim"
)

func testParams() Params {
	return Params{
		Width:  200,
		Height: 200,

		FoodCount:        10,
		FoodPickupRadius: 12,
		FoodEnergy:       0.25,

		PredatorCount:       0,
		PredatorSpeed:       1.6,
		PredatorStrikeRange: 14,
		PredatorCooldown:    45,
		PredatorTurnChance:  0.02,

		BaseCost:     0.0004,
		MoveCost:     0.0003,
		SenseRange:   160,
		FleeWeight:   2.0,
		WanderJitter: 0.35,
	}
}

func testOrganism(id uint32, x, y float64) sim.Organism {
	return sim.Organism{
		ID:     id,
		Genome: genome.Random(rand.New(rand.NewSource(int64(id))), genome.DefaultLimits),
		X:      x,
		Y:      y,
		Alive:  true,
		Energy: 1.0,

		LivesRemaining: 3,
	}
}

func TestResetSpawnsEnvironment(t *testing.T) {
	params := testParams()
	params.PredatorCount = 3
	w := NewWorld(params, rand.New(rand.NewSource(1)))

	tribe := []sim.Organism{testOrganism(0, 50, 50)}
	w.Reset(tribe, nil)

	if got := w.FoodRemaining(); got != 10 {
		t.Errorf("food count after reset = %d, want 10", got)
	}
	if got := len(w.Predators()); got != 3 {
		t.Errorf("predator count after reset = %d, want 3", got)
	}

	// A second reset replaces, not accumulates.
	w.Reset(tribe, nil)
	if got := w.FoodRemaining(); got != 10 {
		t.Errorf("food count after second reset = %d, want 10", got)
	}
	if got := len(w.Predators()); got != 3 {
		t.Errorf("predator count after second reset = %d, want 3", got)
	}
}

func TestStepCollectsFoodInRange(t *testing.T) {
	w := NewWorld(testParams(), rand.New(rand.NewSource(2)))

	tribe := []sim.Organism{testOrganism(0, 100, 100)}
	w.Reset(tribe, nil)

	// Park the member directly on a food item.
	foods := w.Foods()
	if len(foods) == 0 {
		t.Fatal("no food spawned")
	}
	tribe[0].X = foods[0].X
	tribe[0].Y = foods[0].Y

	before := w.FoodRemaining()
	energyBefore := tribe[0].Energy
	w.Step(0, tribe, nil)

	if tribe[0].FoodCollected < 1 {
		t.Error("member on top of food collected nothing")
	}
	if w.FoodRemaining() >= before {
		t.Errorf("food remaining = %d, want fewer than %d", w.FoodRemaining(), before)
	}
	if tribe[0].Energy <= energyBefore-0.01 {
		t.Error("food pickup did not offset energy cost")
	}
}

func TestStepDrainsEnergyAndKills(t *testing.T) {
	params := testParams()
	params.FoodCount = 0
	params.BaseCost = 0.6 // starve in two ticks
	w := NewWorld(params, rand.New(rand.NewSource(3)))

	tribe := []sim.Organism{testOrganism(0, 100, 100)}
	w.Reset(tribe, nil)

	w.Step(0, tribe, nil)
	if !tribe[0].Alive {
		t.Fatal("member died after a single tick")
	}
	w.Step(1, tribe, nil)
	if tribe[0].Alive {
		t.Error("member survived with depleted energy")
	}
	if tribe[0].Energy != 0 {
		t.Errorf("energy = %v, want 0 at death", tribe[0].Energy)
	}
}

func TestPredatorStrikeCostsLife(t *testing.T) {
	params := testParams()
	params.FoodCount = 0
	params.PredatorCount = 1
	params.PredatorSpeed = 0
	params.PredatorTurnChance = 0
	w := NewWorld(params, rand.New(rand.NewSource(4)))

	tribe := []sim.Organism{testOrganism(0, 0, 0)}
	w.Reset(tribe, nil)

	// Pin the member onto the predator.
	pred := w.Predators()[0]
	tribe[0].X, tribe[0].Y = pred.X, pred.Y
	// Keep it there: zero speed so movement cannot escape.
	tribe[0].Genome = genome.New([genome.NumTraits]float64{
		genome.Speed:      0.5,
		genome.Caution:    0,
		genome.SearchBias: 0,
		genome.Efficiency: 1,
	}, genome.DefaultLimits)
	tribe[0].LivesRemaining = 1

	w.Step(0, tribe, nil)

	if tribe[0].LivesRemaining != 0 {
		t.Errorf("lives remaining = %d, want 0", tribe[0].LivesRemaining)
	}
	if tribe[0].Alive {
		t.Error("member with no lives left is still alive")
	}
}

func TestRivalsForageButKeepTheirGenome(t *testing.T) {
	w := NewWorld(testParams(), rand.New(rand.NewSource(5)))

	rivalGenome := genome.New([genome.NumTraits]float64{
		genome.Speed:      1.2,
		genome.Caution:    0.3,
		genome.SearchBias: 1.0,
		genome.Efficiency: 0.4,
	}, genome.DefaultLimits)

	rivals := []sim.RivalTribe{{
		Name:   "scavengers",
		Genome: rivalGenome,
		Members: []sim.Organism{
			{ID: 100, Genome: rivalGenome, X: 100, Y: 100, Alive: true, Energy: 1.0, LivesRemaining: 3},
		},
	}}

	w.Reset(nil, rivals)

	// Park the rival on a food item and step.
	foods := w.Foods()
	rivals[0].Members[0].X = foods[0].X
	rivals[0].Members[0].Y = foods[0].Y
	w.Step(0, nil, rivals)

	if rivals[0].Members[0].FoodCollected < 1 {
		t.Error("rival member on top of food collected nothing")
	}
	if rivals[0].Members[0].Genome != rivalGenome {
		t.Error("stepping modified the rival's fixed genome")
	}
}
