package telemetry

import (
	"math"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/RizeComputerScience/tribesim/genome"
	"github.com/RizeComputerScience/tribesim/sim"
)

func testResult() sim.GenerationResult {
	genomes := make([]genome.Genome, 4)
	for i := range genomes {
		genomes[i] = genome.New([genome.NumTraits]float64{
			genome.Speed:      1.0 + float64(i)*0.2,
			genome.Caution:    0.5,
			genome.SearchBias: 0.5,
			genome.Efficiency: 0.6,
		}, genome.DefaultLimits)
	}

	return sim.GenerationResult{
		Generation: 3,
		TicksRun:   1800,
		AliveAtEnd: 2,
		Survivors:  2,
		Offspring:  2,
		FoodTotal:  14,
		Fitness:    []float64{400, 300, 200, 100},
		Genomes:    genomes,
	}
}

func TestNewGenerationStats(t *testing.T) {
	s := NewGenerationStats(testResult())

	if s.Generation != 3 || s.TicksRun != 1800 {
		t.Errorf("generation/ticks = %d/%d, want 3/1800", s.Generation, s.TicksRun)
	}
	if s.FitnessBest != 400 {
		t.Errorf("fitness_best = %v, want 400", s.FitnessBest)
	}
	if math.Abs(s.FitnessMean-250) > 0.001 {
		t.Errorf("fitness_mean = %v, want 250", s.FitnessMean)
	}
	if s.FitnessStd <= 0 {
		t.Errorf("fitness_std = %v, want positive", s.FitnessStd)
	}
	if s.FitnessP10 > s.FitnessP50 || s.FitnessP50 > s.FitnessP90 {
		t.Errorf("percentiles not ordered: p10=%v p50=%v p90=%v",
			s.FitnessP10, s.FitnessP50, s.FitnessP90)
	}
	if s.FitnessP10 < 100 || s.FitnessP90 > 400 {
		t.Errorf("percentiles outside observed range: p10=%v p90=%v",
			s.FitnessP10, s.FitnessP90)
	}

	// Speed values are 1.0, 1.2, 1.4, 1.6.
	if math.Abs(s.SpeedMean-1.3) > 0.001 {
		t.Errorf("speed_mean = %v, want 1.3", s.SpeedMean)
	}
	if math.Abs(s.CautionMean-0.5) > 0.001 {
		t.Errorf("caution_mean = %v, want 0.5", s.CautionMean)
	}
}

func TestNewGenerationStatsEmpty(t *testing.T) {
	s := NewGenerationStats(sim.GenerationResult{Generation: 0})

	if s.FitnessBest != 0 || s.FitnessMean != 0 || s.FitnessStd != 0 {
		t.Error("empty result should produce zero fitness stats")
	}
	if s.SpeedMean != 0 {
		t.Error("empty result should produce zero trait means")
	}
}

func TestOutputManagerWritesHeaderOnce(t *testing.T) {
	dir := t.TempDir()

	om, err := NewOutputManager(dir)
	if err != nil {
		t.Fatalf("NewOutputManager: %v", err)
	}

	first := NewGenerationStats(testResult())
	second := first
	second.Generation = 4

	if err := om.WriteGeneration(first); err != nil {
		t.Fatalf("WriteGeneration: %v", err)
	}
	if err := om.WriteGeneration(second); err != nil {
		t.Fatalf("WriteGeneration: %v", err)
	}
	if err := om.Close(); err != nil {
		t.Fatalf("Close: %v", err)
	}

	data, err := os.ReadFile(filepath.Join(dir, "generations.csv"))
	if err != nil {
		t.Fatalf("reading generations.csv: %v", err)
	}

	lines := strings.Split(strings.TrimSpace(string(data)), "\n")
	if len(lines) != 3 {
		t.Fatalf("got %d lines, want header plus 2 records", len(lines))
	}
	if !strings.HasPrefix(lines[0], "generation,") {
		t.Errorf("header = %q, want it to start with generation column", lines[0])
	}
	if strings.HasPrefix(lines[1], "generation,") {
		t.Error("second line repeats the header")
	}
}

func TestOutputManagerDisabled(t *testing.T) {
	om, err := NewOutputManager("")
	if err != nil {
		t.Fatalf("NewOutputManager: %v", err)
	}
	if om != nil {
		t.Fatal("empty dir should disable output")
	}

	// All methods are safe on a nil manager.
	if err := om.WriteGeneration(GenerationStats{}); err != nil {
		t.Errorf("WriteGeneration on nil manager: %v", err)
	}
	if err := om.Close(); err != nil {
		t.Errorf("Close on nil manager: %v", err)
	}
}
