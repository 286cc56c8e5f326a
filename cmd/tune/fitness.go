package main

import (
	"math"
	"math/rand"
	"sync"

	"gonum.org/v1/gonum/stat"

	"github.com/RizeComputerScience/tribesim/config"
	"github.com/RizeComputerScience/tribesim/sim"
	"github.com/RizeComputerScience/tribesim/world"
)

// FitnessEvaluator runs headless simulations and scores parameter vectors.
type FitnessEvaluator struct {
	params      *ParamVector
	generations int
	seeds       []int64
	baseConfig  *config.Config

	mu           sync.Mutex
	lastBestMean float64 // mean fitness of the best seed in the most recent Evaluate
}

// NewFitnessEvaluator creates a new evaluator.
func NewFitnessEvaluator(params *ParamVector, generations int, seeds []int64, baseCfg *config.Config) *FitnessEvaluator {
	return &FitnessEvaluator{
		params:      params,
		generations: generations,
		seeds:       seeds,
		baseConfig:  baseCfg,
	}
}

// LastBestMean returns the best seed's final mean fitness from the most
// recent evaluation.
func (fe *FitnessEvaluator) LastBestMean() float64 {
	fe.mu.Lock()
	defer fe.mu.Unlock()
	return fe.lastBestMean
}

// Evaluate computes the objective for a parameter vector (lower = better).
// The objective is the negated mean tribe fitness of the final generation,
// averaged over seeds: parameters that let the tribe evolve better foragers
// score lower.
func (fe *FitnessEvaluator) Evaluate(x []float64) float64 {
	results := make([]float64, len(fe.seeds))
	var wg sync.WaitGroup

	for i, seed := range fe.seeds {
		wg.Add(1)
		go func(idx int, s int64) {
			defer wg.Done()
			results[idx] = fe.runSimulation(x, s)
		}(i, seed)
	}
	wg.Wait()

	var total float64
	best := math.Inf(-1)
	for _, mean := range results {
		total += mean
		if mean > best {
			best = mean
		}
	}

	fe.mu.Lock()
	fe.lastBestMean = best
	fe.mu.Unlock()

	return -total / float64(len(fe.seeds))
}

// runSimulation runs one headless simulation for a fixed number of
// generations and returns the final generation's mean fitness.
func (fe *FitnessEvaluator) runSimulation(x []float64, seed int64) float64 {
	cfg := fe.copyConfig()
	fe.params.ApplyToConfig(cfg, x)

	rng := rand.New(rand.NewSource(seed))
	w := world.NewWorld(world.ParamsFromConfig(cfg), rng)
	controller := sim.NewController(sim.ParamsFromConfig(cfg), rng, w)

	var lastMean float64
	controller.OnGeneration = func(result sim.GenerationResult) {
		if len(result.Fitness) > 0 {
			lastMean = stat.Mean(result.Fitness, nil)
		}
	}

	for controller.Generation() < fe.generations {
		controller.Step()
	}

	return lastMean
}

// copyConfig creates a fresh config carrying the base config's values.
func (fe *FitnessEvaluator) copyConfig() *config.Config {
	cfg := *fe.baseConfig
	cfg.Rivals = append([]config.RivalConfig(nil), fe.baseConfig.Rivals...)
	return &cfg
}
