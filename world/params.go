package world

import "github.com/RizeComputerScience/tribesim/config"

// ParamsFromConfig maps config onto environment parameters.
func ParamsFromConfig(cfg *config.Config) Params {
	return Params{
		Width:  cfg.Derived.WorldW,
		Height: cfg.Derived.WorldH,

		FoodCount:        cfg.Food.Count,
		FoodPickupRadius: cfg.Food.PickupRadius,
		FoodEnergy:       cfg.Food.Energy,

		PredatorCount:       cfg.Predators.Count,
		PredatorSpeed:       cfg.Predators.Speed,
		PredatorStrikeRange: cfg.Predators.StrikeRange,
		PredatorCooldown:    cfg.Predators.Cooldown,
		PredatorTurnChance:  cfg.Predators.TurnChance,

		BaseCost:     cfg.Forage.BaseCost,
		MoveCost:     cfg.Forage.MoveCost,
		SenseRange:   cfg.Forage.SenseRange,
		FleeWeight:   cfg.Forage.FleeWeight,
		WanderJitter: cfg.Forage.WanderJitter,
	}
}
