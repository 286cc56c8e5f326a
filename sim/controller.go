package sim

import (
	"log/slog"
	"math/rand"

	"github.com/RizeComputerScience/tribesim/genome"
)

// State is the generation controller's state machine state.
type State uint8

const (
	StateRunning State = iota
	StatePaused
	StateGenerationTransition
	StateReset
)

// String returns the state name.
func (s State) String() string {
	switch s {
	case StateRunning:
		return "running"
	case StatePaused:
		return "paused"
	case StateGenerationTransition:
		return "generation_transition"
	case StateReset:
		return "reset"
	default:
		return "unknown"
	}
}

// Signal is a discrete external control event.
type Signal uint8

const (
	SignalPause Signal = iota
	SignalResume
	SignalAdvance
	SignalReset
)

// Physics is the tick collaborator. Step advances organism positions and
// counters for one tick; Reset rebuilds world state for a new generation.
// Implementations mutate the passed organisms in place and never retain
// the slices across calls.
type Physics interface {
	Reset(tribe []Organism, rivals []RivalTribe)
	Step(tick int, tribe []Organism, rivals []RivalTribe)
}

// RivalSpec describes one fixed-genome competitor tribe.
type RivalSpec struct {
	Name   string
	Genome genome.Genome
	Size   int
}

// Params configures a Controller.
type Params struct {
	Size          int     // Fixed evolving-tribe population size N
	SurvivalRate  float64 // Fraction retained as breeding stock
	MaxTicks      int     // Tick cap per generation
	Lives         int     // Predator hits an organism survives
	InitialEnergy float64
	WorldW        float64
	WorldH        float64
	Limits        genome.Limits
	Mutation      Mutator
	Rivals        []RivalSpec
}

// GenerationResult summarizes one completed generation for telemetry.
type GenerationResult struct {
	Generation int
	TicksRun   int
	Survivors  int
	Offspring  int
	Reseeded   bool
	AliveAtEnd int
	FoodTotal  int
	Fitness    []float64       // fitness values, rank order (best first)
	Genomes    []genome.Genome // genomes of the completed generation
}

// Controller orchestrates the generation life cycle: it drives the tick
// loop through the Physics collaborator and, at generation end, runs
// fitness evaluation, selection, reproduction, and mutation in that
// fixed order. It exclusively owns the active population; callers must
// serialize Step and Signal calls.
type Controller struct {
	params  Params
	rng     *rand.Rand
	physics Physics
	sp      spawner

	pop    Population
	rivals []RivalTribe

	tick           int
	state          State
	pendingAdvance bool
	snapshot       Snapshot

	// OnGeneration, if set, is called once per completed generation,
	// before the next population replaces it.
	OnGeneration func(GenerationResult)
}

// NewController creates a controller with a freshly seeded population
// and starts it in the running state.
func NewController(params Params, rng *rand.Rand, physics Physics) *Controller {
	c := &Controller{
		params:  params,
		rng:     rng,
		physics: physics,
		sp: spawner{
			worldW: params.WorldW,
			worldH: params.WorldH,
			lives:  params.Lives,
			energy: params.InitialEnergy,
		},
	}
	c.reset()
	return c
}

// Step runs one control-loop iteration. In the running state it advances
// the tick loop and, when the generation terminates, performs the
// generation transition synchronously before returning. In the paused
// state it is a no-op apart from refreshing the snapshot.
func (c *Controller) Step() {
	if c.state == StateRunning {
		c.physics.Step(c.tick, c.pop.Organisms, c.rivals)
		c.tick++
		c.tickCounters()

		if c.pendingAdvance || c.tick >= c.params.MaxTicks || c.allDead() {
			c.pendingAdvance = false
			c.advanceGeneration()
		}
	}
	c.refreshSnapshot()
}

// Signal delivers an external control event. Unrecognized signals are
// ignored without a state change.
func (c *Controller) Signal(s Signal) {
	switch s {
	case SignalPause:
		if c.state == StateRunning {
			c.state = StatePaused
		}
	case SignalResume:
		if c.state == StatePaused {
			c.state = StateRunning
		}
	case SignalAdvance:
		switch c.state {
		case StateRunning:
			// Force the transition at the next Step, before the natural
			// termination condition.
			c.pendingAdvance = true
		case StatePaused:
			c.advanceGeneration()
		}
	case SignalReset:
		// Honored immediately from any state; no partial transition
		// survives a reset.
		c.pendingAdvance = false
		c.reset()
	default:
		slog.Debug("ignoring unknown control signal", "signal", int(s))
	}
	c.refreshSnapshot()
}

// tickCounters advances per-organism survival counters for members that
// are still alive after the physics step.
func (c *Controller) tickCounters() {
	for i := range c.pop.Organisms {
		if c.pop.Organisms[i].Alive {
			c.pop.Organisms[i].TicksSurvived++
		}
	}
	for t := range c.rivals {
		for i := range c.rivals[t].Members {
			if c.rivals[t].Members[i].Alive {
				c.rivals[t].Members[i].TicksSurvived++
			}
		}
	}
}

// allDead reports whether every evolving-tribe organism is terminal.
func (c *Controller) allDead() bool {
	for i := range c.pop.Organisms {
		if c.pop.Organisms[i].Alive {
			return false
		}
	}
	return true
}

// advanceGeneration runs the full evaluate -> select -> reproduce ->
// mutate pipeline and installs the next population. The controller
// returns to the state it was in before the transition.
func (c *Controller) advanceGeneration() {
	resume := c.state
	c.state = StateGenerationTransition

	survivors, _ := Select(c.pop.Organisms, c.params.SurvivalRate)

	result := GenerationResult{
		Generation: c.pop.Generation,
		TicksRun:   c.tick,
		Survivors:  len(survivors),
		Offspring:  c.params.Size - len(survivors),
	}
	for _, r := range Rank(c.pop.Organisms) {
		result.Fitness = append(result.Fitness, r.Fitness)
	}
	for i := range c.pop.Organisms {
		o := &c.pop.Organisms[i]
		result.Genomes = append(result.Genomes, o.Genome)
		result.FoodTotal += o.FoodCollected
		if o.Alive {
			result.AliveAtEnd++
		}
	}

	var next []genome.Genome
	if len(survivors) == 0 {
		// Fully-eliminated population: no offspring are possible, so
		// fall back to re-seeding a fresh random population.
		slog.Warn("empty survivor set, reseeding population",
			"generation", c.pop.Generation,
			"population", len(c.pop.Organisms),
		)
		next = randomGenomes(c.rng, c.params.Limits, c.params.Size)
		result.Reseeded = true
		result.Offspring = 0
	} else {
		parents := make([]genome.Genome, 0, len(survivors))
		for _, s := range survivors {
			parents = append(parents, s.Organism.Genome)
		}
		next = NextGenomes(c.rng, parents, c.params.Size, c.params.Mutation)
	}

	if c.OnGeneration != nil {
		c.OnGeneration(result)
	}

	c.pop = Population{
		Organisms:  c.sp.spawnAll(c.rng, next),
		Generation: c.pop.Generation + 1,
	}
	c.respawnRivals()
	c.physics.Reset(c.pop.Organisms, c.rivals)
	c.tick = 0
	c.state = resume
}

// reset discards the population and generation counter, reseeds a fresh
// random population, and returns to the running state.
func (c *Controller) reset() {
	c.state = StateReset
	c.pop = Population{
		Organisms:  c.sp.spawnAll(c.rng, randomGenomes(c.rng, c.params.Limits, c.params.Size)),
		Generation: 0,
	}
	c.respawnRivals()
	c.physics.Reset(c.pop.Organisms, c.rivals)
	c.tick = 0
	c.state = StateRunning
	c.refreshSnapshot()
}

// respawnRivals regenerates every competitor tribe from its fixed genome.
func (c *Controller) respawnRivals() {
	c.rivals = c.rivals[:0]
	for _, spec := range c.params.Rivals {
		tribe := RivalTribe{Name: spec.Name, Genome: spec.Genome}
		for i := 0; i < spec.Size; i++ {
			tribe.Members = append(tribe.Members, c.sp.spawn(c.rng, spec.Genome))
		}
		c.rivals = append(c.rivals, tribe)
	}
}

// State returns the controller's current state.
func (c *Controller) State() State {
	return c.state
}

// Generation returns the current generation index.
func (c *Controller) Generation() int {
	return c.pop.Generation
}

// Tick returns the tick within the current generation.
func (c *Controller) Tick() int {
	return c.tick
}
