package world

import (
	"math"

	"github.com/mlange-42/ark/ecs"

	"github.com/RizeComputerScience/tribesim/genome"
	"github.com/RizeComputerScience/tribesim/sim"
)

// Step advances the environment by one tick: predators patrol, members
// move and spend energy, food is collected, and strikes land. Organisms
// are mutated in place through the passed slices.
func (w *World) Step(tick int, tribe []sim.Organism, rivals []sim.RivalTribe) {
	w.movePredators()

	members := w.collectMembers(tribe, rivals)
	for _, m := range members {
		if m.Alive {
			w.moveMember(m)
		}
	}

	w.feedMembers(members)
	w.strikeMembers(members)
}

// collectMembers flattens the evolving tribe and every rival tribe into
// one slice in a fixed order, so stepping stays deterministic.
func (w *World) collectMembers(tribe []sim.Organism, rivals []sim.RivalTribe) []*sim.Organism {
	members := make([]*sim.Organism, 0, len(tribe))
	for i := range tribe {
		members = append(members, &tribe[i])
	}
	for t := range rivals {
		for i := range rivals[t].Members {
			members = append(members, &rivals[t].Members[i])
		}
	}
	return members
}

// movePredators patrols each predator along its heading with occasional
// random turns, bouncing off world edges.
func (w *World) movePredators() {
	query := w.predFilter.Query()
	for query.Next() {
		pos, pred := query.Get()

		if pred.Cooldown > 0 {
			pred.Cooldown--
		}
		if w.rng.Float64() < w.params.PredatorTurnChance {
			pred.Heading = w.rng.Float64() * 2 * math.Pi
		}

		pos.X += math.Cos(pred.Heading) * w.params.PredatorSpeed
		pos.Y += math.Sin(pred.Heading) * w.params.PredatorSpeed

		if pos.X < 0 || pos.X > w.params.Width {
			pred.Heading = math.Pi - pred.Heading
			pos.X = clamp(pos.X, 0, w.params.Width)
		}
		if pos.Y < 0 || pos.Y > w.params.Height {
			pred.Heading = -pred.Heading
			pos.Y = clamp(pos.Y, 0, w.params.Height)
		}
	}
}

// moveMember advances one organism according to its genome: search bias
// blends food seeking with wandering, caution repels from predators, and
// efficiency discounts the energy cost of the distance covered.
func (w *World) moveMember(m *sim.Organism) {
	speed := m.Genome.Value(genome.Speed)
	caution := m.Genome.Value(genome.Caution)
	searchBias := m.Genome.Value(genome.SearchBias)
	efficiency := m.Genome.Value(genome.Efficiency)

	// Wander heading drifts randomly each tick.
	heading := w.headings[m.ID] + (w.rng.Float64()-0.5)*2*w.params.WanderJitter
	dirX, dirY := math.Cos(heading), math.Sin(heading)

	// Blend toward the nearest sensed food item.
	if fx, fy, ok := w.nearestFood(m.X, m.Y, w.params.SenseRange); ok {
		tx, ty := normalize(fx-m.X, fy-m.Y)
		dirX = dirX*(1-searchBias) + tx*searchBias
		dirY = dirY*(1-searchBias) + ty*searchBias
	}

	// Caution repels from the nearest predator, scaled by proximity.
	fleeRange := w.params.SenseRange * caution
	if px, py, dist, ok := w.nearestPredator(m.X, m.Y, fleeRange); ok && dist > 0 {
		ax, ay := normalize(m.X-px, m.Y-py)
		repel := caution * w.params.FleeWeight * (1 - dist/fleeRange)
		dirX += ax * repel
		dirY += ay * repel
	}

	dirX, dirY = normalize(dirX, dirY)
	m.X = clamp(m.X+dirX*speed, 0, w.params.Width)
	m.Y = clamp(m.Y+dirY*speed, 0, w.params.Height)
	w.headings[m.ID] = math.Atan2(dirY, dirX)

	// Metabolic and movement costs; efficiency discounts up to half of
	// the movement cost.
	m.Energy -= w.params.BaseCost + w.params.MoveCost*speed*(1-0.5*efficiency)
	if m.Energy <= 0 {
		m.Energy = 0
		m.Alive = false
	}
}

// feedMembers collects food items within pickup range. Each item goes to
// the closest member in range; consumed entities are removed after the
// query completes.
func (w *World) feedMembers(members []*sim.Organism) {
	type pickup struct {
		entity ecs.Entity
		member *sim.Organism
		energy float64
	}
	var pickups []pickup

	radiusSq := w.params.FoodPickupRadius * w.params.FoodPickupRadius

	query := w.foodFilter.Query()
	for query.Next() {
		pos, food := query.Get()

		var closest *sim.Organism
		closestDistSq := radiusSq
		for _, m := range members {
			if !m.Alive {
				continue
			}
			dx, dy := m.X-pos.X, m.Y-pos.Y
			distSq := dx*dx + dy*dy
			if distSq <= closestDistSq {
				closestDistSq = distSq
				closest = m
			}
		}

		if closest != nil {
			pickups = append(pickups, pickup{entity: query.Entity(), member: closest, energy: food.Energy})
		}
	}

	for _, p := range pickups {
		p.member.FoodCollected++
		p.member.Energy += p.energy
		w.foodMapper.Remove(p.entity)
	}
}

// strikeMembers lands predator strikes on the closest member in range.
// A strike costs one life; an organism with no lives left dies.
func (w *World) strikeMembers(members []*sim.Organism) {
	rangeSq := w.params.PredatorStrikeRange * w.params.PredatorStrikeRange

	query := w.predFilter.Query()
	for query.Next() {
		pos, pred := query.Get()

		if pred.Cooldown > 0 {
			continue
		}

		var target *sim.Organism
		closestDistSq := rangeSq
		for _, m := range members {
			if !m.Alive {
				continue
			}
			dx, dy := m.X-pos.X, m.Y-pos.Y
			distSq := dx*dx + dy*dy
			if distSq <= closestDistSq {
				closestDistSq = distSq
				target = m
			}
		}

		if target != nil {
			target.LivesRemaining--
			if target.LivesRemaining <= 0 {
				target.Alive = false
			}
			pred.Cooldown = w.params.PredatorCooldown
		}
	}
}

// nearestFood returns the closest food item within radius.
func (w *World) nearestFood(x, y, radius float64) (fx, fy float64, ok bool) {
	radiusSq := radius * radius
	closestDistSq := radiusSq

	query := w.foodFilter.Query()
	for query.Next() {
		pos, _ := query.Get()
		dx, dy := pos.X-x, pos.Y-y
		distSq := dx*dx + dy*dy
		if distSq <= closestDistSq {
			closestDistSq = distSq
			fx, fy = pos.X, pos.Y
			ok = true
		}
	}
	return fx, fy, ok
}

// nearestPredator returns the closest predator within radius and its distance.
func (w *World) nearestPredator(x, y, radius float64) (px, py, dist float64, ok bool) {
	if radius <= 0 {
		return 0, 0, 0, false
	}
	radiusSq := radius * radius
	closestDistSq := radiusSq

	query := w.predFilter.Query()
	for query.Next() {
		pos, _ := query.Get()
		dx, dy := pos.X-x, pos.Y-y
		distSq := dx*dx + dy*dy
		if distSq <= closestDistSq {
			closestDistSq = distSq
			px, py = pos.X, pos.Y
			ok = true
		}
	}
	if ok {
		dist = math.Sqrt(closestDistSq)
	}
	return px, py, dist, ok
}

// normalize returns the unit vector of (x, y), or (0, 0) for a zero vector.
func normalize(x, y float64) (float64, float64) {
	length := math.Sqrt(x*x + y*y)
	if length == 0 {
		return 0, 0
	}
	return x / length, y / length
}

// clamp forces v into [lo, hi].
func clamp(v, lo, hi float64) float64 {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}
