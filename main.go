package main

import (
	"flag"
	"log/slog"
	"math/rand"
	"os"
	"time"

	"github.com/RizeComputerScience/tribesim/config"
	"github.com/RizeComputerScience/tribesim/render"
	"github.com/RizeComputerScience/tribesim/sim"
	"github.com/RizeComputerScience/tribesim/telemetry"
	"github.com/RizeComputerScience/tribesim/world"
)

func main() {
	// CLI flags
	configPath := flag.String("config", "", "Path to config.yaml (empty = use defaults)")
	headless := flag.Bool("headless", false, "Run without graphics")
	logStats := flag.Bool("log-stats", false, "Output per-generation stats via slog")
	outputDir := flag.String("output-dir", "", "Output directory for CSV logs and config snapshot")
	seed := flag.Int64("seed", 0, "RNG seed (0 = time-based)")
	maxGenerations := flag.Int("max-generations", 0, "Stop after N generations (0 = unlimited)")
	maxTicks := flag.Int("max-ticks", 0, "Stop after N total ticks across generations (0 = unlimited)")
	stepsPerUpdate := flag.Int("steps-per-update", 1, "Simulation ticks per update (higher = faster runs)")

	flag.Parse()

	// Initialize config before anything else
	if err := config.Init(*configPath); err != nil {
		slog.Error("failed to load config", "error", err)
		os.Exit(1)
	}
	cfg := config.Cfg()

	// Set up slog (JSON to stdout for structured logging)
	logger := slog.New(slog.NewJSONHandler(os.Stdout, nil))
	slog.SetDefault(logger)

	// Set up seed
	rngSeed := *seed
	if rngSeed == 0 {
		rngSeed = time.Now().UnixNano()
	}
	rng := rand.New(rand.NewSource(rngSeed))

	w := world.NewWorld(world.ParamsFromConfig(cfg), rng)
	controller := sim.NewController(sim.ParamsFromConfig(cfg), rng, w)

	output, err := telemetry.NewOutputManager(*outputDir)
	if err != nil {
		slog.Error("failed to initialize output", "error", err)
		os.Exit(1)
	}
	defer output.Close()

	if err := output.WriteConfig(cfg); err != nil {
		slog.Error("failed to write config snapshot", "error", err)
		os.Exit(1)
	}

	logAlways := *logStats || cfg.Telemetry.LogStats
	controller.OnGeneration = func(result sim.GenerationResult) {
		stats := telemetry.NewGenerationStats(result)
		if logAlways {
			stats.LogStats()
		}
		if err := output.WriteGeneration(stats); err != nil {
			slog.Error("failed to write generation stats", "error", err)
		}
	}

	slog.Info("starting simulation",
		"seed", rngSeed,
		"headless", *headless,
		"tribe_size", cfg.Tribe.Size,
		"max_generations", *maxGenerations,
		"steps_per_update", *stepsPerUpdate,
	)

	if *headless {
		runHeadless(controller, *maxGenerations, *maxTicks, *stepsPerUpdate)
		return
	}
	runGraphical(cfg, controller, w, *maxGenerations, *maxTicks, *stepsPerUpdate)
}

// done reports whether a run bound has been hit.
func done(controller *sim.Controller, maxGenerations, maxTicks, totalTicks int) bool {
	if maxGenerations > 0 && controller.Generation() >= maxGenerations {
		slog.Info("max generations reached", "generation", controller.Generation())
		return true
	}
	if maxTicks > 0 && totalTicks >= maxTicks {
		slog.Info("max ticks reached", "total_ticks", totalTicks)
		return true
	}
	return false
}

// runHeadless drives the tick loop as fast as possible, without raylib.
func runHeadless(controller *sim.Controller, maxGenerations, maxTicks, stepsPerUpdate int) {
	if stepsPerUpdate < 1 {
		stepsPerUpdate = 1
	}

	totalTicks := 0
	for {
		for i := 0; i < stepsPerUpdate; i++ {
			controller.Step()
		}
		totalTicks += stepsPerUpdate

		if done(controller, maxGenerations, maxTicks, totalTicks) {
			return
		}
	}
}

// runGraphical drives the tick loop at display rate with the raylib viewer.
func runGraphical(cfg *config.Config, controller *sim.Controller, w *world.World, maxGenerations, maxTicks, stepsPerUpdate int) {
	viewer := render.Open(
		int32(cfg.Screen.Width), int32(cfg.Screen.Height),
		int32(cfg.Screen.TargetFPS),
		cfg.Derived.WorldW, cfg.Derived.WorldH,
		stepsPerUpdate,
	)
	defer viewer.Close()

	totalTicks := 0
	for !viewer.ShouldClose() {
		for _, signal := range viewer.PollInput(controller.State()) {
			controller.Signal(signal)
		}

		for i := 0; i < viewer.StepsPerUpdate(); i++ {
			controller.Step()
		}
		totalTicks += viewer.StepsPerUpdate()

		viewer.Draw(controller.Snapshot(), w.Foods(), w.Predators())

		if done(controller, maxGenerations, maxTicks, totalTicks) {
			return
		}
	}
}
