// Package world implements the tick-physics collaborator: food items and
// predators live on an ECS, and each tick moves tribe members, resolves
// foraging, and applies predator strikes. It writes positions and
// counters back into the organisms it is handed; it never runs the
// genetic algorithm itself.
package world

import (
	"math"
	"math/rand"

	"github.com/mlange-42/ark/ecs"

	"github.com/RizeComputerScience/tribesim/sim"
)

// Params configures the world.
type Params struct {
	Width  float64
	Height float64

	FoodCount        int
	FoodPickupRadius float64
	FoodEnergy       float64

	PredatorCount       int
	PredatorSpeed       float64
	PredatorStrikeRange float64
	PredatorCooldown    int
	PredatorTurnChance  float64

	BaseCost     float64
	MoveCost     float64
	SenseRange   float64
	FleeWeight   float64
	WanderJitter float64
}

// World holds the environment state for one generation.
type World struct {
	params Params
	rng    *rand.Rand

	world *ecs.World

	foodMapper *ecs.Map2[Position, Food]
	foodFilter *ecs.Filter2[Position, Food]
	predMapper *ecs.Map2[Position, Predator]
	predFilter *ecs.Filter2[Position, Predator]

	// Per-member wander headings, keyed by organism ID. Rebuilt each
	// generation.
	headings map[uint32]float64
}

// NewWorld creates an empty world. Call Reset (directly or through the
// controller) before stepping.
func NewWorld(params Params, rng *rand.Rand) *World {
	ecsWorld := ecs.NewWorld()

	return &World{
		params:     params,
		rng:        rng,
		world:      ecsWorld,
		foodMapper: ecs.NewMap2[Position, Food](ecsWorld),
		foodFilter: ecs.NewFilter2[Position, Food](ecsWorld),
		predMapper: ecs.NewMap2[Position, Predator](ecsWorld),
		predFilter: ecs.NewFilter2[Position, Predator](ecsWorld),
		headings:   make(map[uint32]float64),
	}
}

// Reset rebuilds environment state for a new generation: despawns
// leftover food and predators, then spawns fresh ones.
func (w *World) Reset(tribe []sim.Organism, rivals []sim.RivalTribe) {
	w.despawnAll()

	for i := 0; i < w.params.FoodCount; i++ {
		pos := Position{X: w.rng.Float64() * w.params.Width, Y: w.rng.Float64() * w.params.Height}
		food := Food{Energy: w.params.FoodEnergy}
		w.foodMapper.NewEntity(&pos, &food)
	}

	for i := 0; i < w.params.PredatorCount; i++ {
		pos := Position{X: w.rng.Float64() * w.params.Width, Y: w.rng.Float64() * w.params.Height}
		pred := Predator{Heading: w.rng.Float64() * 2 * math.Pi}
		w.predMapper.NewEntity(&pos, &pred)
	}

	// Fresh wander headings for the new members.
	clear(w.headings)
	for i := range tribe {
		w.headings[tribe[i].ID] = w.rng.Float64() * 2 * math.Pi
	}
	for t := range rivals {
		for i := range rivals[t].Members {
			w.headings[rivals[t].Members[i].ID] = w.rng.Float64() * 2 * math.Pi
		}
	}
}

// despawnAll removes every food and predator entity.
func (w *World) despawnAll() {
	// Collect first: entity removal during query iteration is not allowed.
	var foods []ecs.Entity
	foodQuery := w.foodFilter.Query()
	for foodQuery.Next() {
		foods = append(foods, foodQuery.Entity())
	}
	for _, e := range foods {
		w.foodMapper.Remove(e)
	}

	var preds []ecs.Entity
	predQuery := w.predFilter.Query()
	for predQuery.Next() {
		preds = append(preds, predQuery.Entity())
	}
	for _, e := range preds {
		w.predMapper.Remove(e)
	}
}

// FoodView is a read-only food item position for display.
type FoodView struct {
	X, Y float64
}

// PredatorView is a read-only predator state for display.
type PredatorView struct {
	X, Y    float64
	Heading float64
}

// Foods returns the positions of all remaining food items.
func (w *World) Foods() []FoodView {
	var views []FoodView
	query := w.foodFilter.Query()
	for query.Next() {
		pos, _ := query.Get()
		views = append(views, FoodView{X: pos.X, Y: pos.Y})
	}
	return views
}

// Predators returns the current predator states.
func (w *World) Predators() []PredatorView {
	var views []PredatorView
	query := w.predFilter.Query()
	for query.Next() {
		pos, pred := query.Get()
		views = append(views, PredatorView{X: pos.X, Y: pos.Y, Heading: pred.Heading})
	}
	return views
}

// FoodRemaining returns the number of uncollected food items.
func (w *World) FoodRemaining() int {
	count := 0
	query := w.foodFilter.Query()
	for query.Next() {
		count++
	}
	return count
}
