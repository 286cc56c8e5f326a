package sim

import (
	"github.com/RizeComputerScience/tribesim/config"
	"github.com/RizeComputerScience/tribesim/genome"
)

// LimitsFromConfig builds genome limits from the configured trait ranges.
func LimitsFromConfig(cfg *config.Config) genome.Limits {
	var limits genome.Limits
	limits[genome.Speed] = genome.Range{Min: cfg.Traits.Speed.Min, Max: cfg.Traits.Speed.Max}
	limits[genome.Caution] = genome.Range{Min: cfg.Traits.Caution.Min, Max: cfg.Traits.Caution.Max}
	limits[genome.SearchBias] = genome.Range{Min: cfg.Traits.SearchBias.Min, Max: cfg.Traits.SearchBias.Max}
	limits[genome.Efficiency] = genome.Range{Min: cfg.Traits.Efficiency.Min, Max: cfg.Traits.Efficiency.Max}
	return limits
}

// ParamsFromConfig maps config onto controller parameters.
func ParamsFromConfig(cfg *config.Config) Params {
	limits := LimitsFromConfig(cfg)

	rivals := make([]RivalSpec, 0, len(cfg.Rivals))
	for _, r := range cfg.Rivals {
		rivals = append(rivals, RivalSpec{
			Name: r.Name,
			Size: r.Size,
			Genome: genome.New([genome.NumTraits]float64{
				genome.Speed:      r.Speed,
				genome.Caution:    r.Caution,
				genome.SearchBias: r.SearchBias,
				genome.Efficiency: r.Efficiency,
			}, limits),
		})
	}

	return Params{
		Size:          cfg.Tribe.Size,
		SurvivalRate:  cfg.Tribe.SurvivalRate,
		MaxTicks:      cfg.Tribe.MaxTicks,
		Lives:         cfg.Tribe.Lives,
		InitialEnergy: cfg.Forage.InitialEnergy,
		WorldW:        cfg.Derived.WorldW,
		WorldH:        cfg.Derived.WorldH,
		Limits:        limits,
		Mutation: Mutator{
			Rate:   cfg.Mutation.Rate,
			Delta:  cfg.Mutation.Delta,
			Limits: limits,
		},
		Rivals: rivals,
	}
}
