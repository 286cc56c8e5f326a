// Package telemetry aggregates per-generation statistics and writes them
// to structured logs and CSV files for offline analysis.
package telemetry

import (
	"log/slog"
	"sort"

	"gonum.org/v1/gonum/stat"

	"github.com/RizeComputerScience/tribesim/genome"
	"github.com/RizeComputerScience/tribesim/sim"
)

// GenerationStats holds aggregated statistics for one completed generation.
type GenerationStats struct {
	Generation int `csv:"generation"`
	TicksRun   int `csv:"ticks_run"`

	// Population outcome
	AliveAtEnd int  `csv:"alive_at_end"`
	Survivors  int  `csv:"survivors"`
	Offspring  int  `csv:"offspring"`
	Reseeded   bool `csv:"reseeded"`
	FoodTotal  int  `csv:"food_total"`

	// Fitness distribution
	FitnessBest float64 `csv:"fitness_best"`
	FitnessMean float64 `csv:"fitness_mean"`
	FitnessStd  float64 `csv:"fitness_std"`
	FitnessP10  float64 `csv:"fitness_p10"`
	FitnessP50  float64 `csv:"fitness_p50"`
	FitnessP90  float64 `csv:"fitness_p90"`

	// Trait means across the generation's genomes
	SpeedMean      float64 `csv:"speed_mean"`
	CautionMean    float64 `csv:"caution_mean"`
	SearchBiasMean float64 `csv:"search_bias_mean"`
	EfficiencyMean float64 `csv:"efficiency_mean"`
}

// NewGenerationStats aggregates one generation result into a stats record.
func NewGenerationStats(result sim.GenerationResult) GenerationStats {
	s := GenerationStats{
		Generation: result.Generation,
		TicksRun:   result.TicksRun,
		AliveAtEnd: result.AliveAtEnd,
		Survivors:  result.Survivors,
		Offspring:  result.Offspring,
		Reseeded:   result.Reseeded,
		FoodTotal:  result.FoodTotal,
	}

	if len(result.Fitness) > 0 {
		// Fitness arrives in rank order, best first.
		s.FitnessBest = result.Fitness[0]
		s.FitnessMean = stat.Mean(result.Fitness, nil)
		s.FitnessStd = stat.StdDev(result.Fitness, nil)

		sorted := make([]float64, len(result.Fitness))
		copy(sorted, result.Fitness)
		sort.Float64s(sorted)
		s.FitnessP10 = stat.Quantile(0.10, stat.Empirical, sorted, nil)
		s.FitnessP50 = stat.Quantile(0.50, stat.Empirical, sorted, nil)
		s.FitnessP90 = stat.Quantile(0.90, stat.Empirical, sorted, nil)
	}

	s.SpeedMean = traitMean(result.Genomes, genome.Speed)
	s.CautionMean = traitMean(result.Genomes, genome.Caution)
	s.SearchBiasMean = traitMean(result.Genomes, genome.SearchBias)
	s.EfficiencyMean = traitMean(result.Genomes, genome.Efficiency)

	return s
}

func traitMean(genomes []genome.Genome, t genome.Trait) float64 {
	if len(genomes) == 0 {
		return 0
	}
	values := make([]float64, len(genomes))
	for i, g := range genomes {
		values[i] = g.Value(t)
	}
	return stat.Mean(values, nil)
}

// LogValue implements slog.LogValuer for structured logging.
func (s GenerationStats) LogValue() slog.Value {
	return slog.GroupValue(
		slog.Int("generation", s.Generation),
		slog.Int("ticks_run", s.TicksRun),
		slog.Int("alive_at_end", s.AliveAtEnd),
		slog.Int("survivors", s.Survivors),
		slog.Int("offspring", s.Offspring),
		slog.Bool("reseeded", s.Reseeded),
		slog.Int("food_total", s.FoodTotal),
		slog.Float64("fitness_best", s.FitnessBest),
		slog.Float64("fitness_mean", s.FitnessMean),
		slog.Float64("fitness_std", s.FitnessStd),
		slog.Float64("fitness_p10", s.FitnessP10),
		slog.Float64("fitness_p50", s.FitnessP50),
		slog.Float64("fitness_p90", s.FitnessP90),
		slog.Float64("speed_mean", s.SpeedMean),
		slog.Float64("caution_mean", s.CautionMean),
		slog.Float64("search_bias_mean", s.SearchBiasMean),
		slog.Float64("efficiency_mean", s.EfficiencyMean),
	)
}

// LogStats logs the generation stats using slog.
func (s GenerationStats) LogStats() {
	slog.Info("generation",
		"generation", s.Generation,
		"ticks_run", s.TicksRun,
		"alive_at_end", s.AliveAtEnd,
		"survivors", s.Survivors,
		"offspring", s.Offspring,
		"reseeded", s.Reseeded,
		"food_total", s.FoodTotal,
		"fitness_best", s.FitnessBest,
		"fitness_mean", s.FitnessMean,
		"fitness_std", s.FitnessStd,
		"fitness_p10", s.FitnessP10,
		"fitness_p50", s.FitnessP50,
		"fitness_p90", s.FitnessP90,
		"speed_mean", s.SpeedMean,
		"caution_mean", s.CautionMean,
		"search_bias_mean", s.SearchBiasMean,
		"efficiency_mean", s.EfficiencyMean,
	)
}
