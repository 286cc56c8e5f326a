package sim

// OrganismView is the read-only per-organism view exposed to rendering
// and other collaborators.
type OrganismView struct {
	ID      uint32
	X, Y    float64
	Alive   bool
	Fitness float64
	Tier    int // fitness-derived color tier: 0 best, 2 worst
}

// RivalView is the read-only view of a competitor tribe member.
type RivalView struct {
	X, Y  float64
	Alive bool
}

// Snapshot is a point-in-time copy of simulation state, refreshed once
// per tick and once per generation transition. Collaborators read it for
// display; mutating a snapshot never affects controller state.
type Snapshot struct {
	Generation int
	Tick       int
	State      State
	Alive      int
	Organisms  []OrganismView
	Rivals     []RivalView
}

// refreshSnapshot rebuilds the exported snapshot from controller state.
func (c *Controller) refreshSnapshot() {
	snap := Snapshot{
		Generation: c.pop.Generation,
		Tick:       c.tick,
		State:      c.state,
		Organisms:  make([]OrganismView, 0, len(c.pop.Organisms)),
	}

	best := 0.0
	fitness := make([]float64, len(c.pop.Organisms))
	for i := range c.pop.Organisms {
		fitness[i] = OrganismFitness(&c.pop.Organisms[i])
		if fitness[i] > best {
			best = fitness[i]
		}
	}

	for i := range c.pop.Organisms {
		o := &c.pop.Organisms[i]
		if o.Alive {
			snap.Alive++
		}
		snap.Organisms = append(snap.Organisms, OrganismView{
			ID:      o.ID,
			X:       o.X,
			Y:       o.Y,
			Alive:   o.Alive,
			Fitness: fitness[i],
			Tier:    fitnessTier(fitness[i], best),
		})
	}

	for t := range c.rivals {
		for i := range c.rivals[t].Members {
			m := &c.rivals[t].Members[i]
			snap.Rivals = append(snap.Rivals, RivalView{X: m.X, Y: m.Y, Alive: m.Alive})
		}
	}

	c.snapshot = snap
}

// Snapshot returns a copy of the latest snapshot.
func (c *Controller) Snapshot() Snapshot {
	snap := c.snapshot
	snap.Organisms = append([]OrganismView(nil), c.snapshot.Organisms...)
	snap.Rivals = append([]RivalView(nil), c.snapshot.Rivals...)
	return snap
}

// fitnessTier buckets a fitness value against the current best:
// top third is tier 0, middle third tier 1, rest tier 2.
func fitnessTier(f, best float64) int {
	if best <= 0 {
		return 2
	}
	switch {
	case f >= best*2/3:
		return 0
	case f >= best/3:
		return 1
	default:
		return 2
	}
}
