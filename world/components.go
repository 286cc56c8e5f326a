package world

// Position is an entity's world position.
type Position struct {
	X, Y float64
}

// Velocity is an entity's velocity.
type Velocity struct {
	X, Y float64
}

// Food marks an entity as a collectible food item.
type Food struct {
	Energy float64
}

// Predator holds predator movement and attack state.
type Predator struct {
	Heading  float64 // radians
	Cooldown int     // ticks until the next strike
}
