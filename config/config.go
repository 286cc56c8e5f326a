// Package config provides configuration loading and access for the simulation.
package config

import (
	_ "embed"
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

//go:embed defaults.yaml
var defaultsYAML []byte

// Config holds all simulation configuration parameters.
type Config struct {
	Screen    ScreenConfig    `yaml:"screen"`
	World     WorldConfig     `yaml:"world"`
	Tribe     TribeConfig     `yaml:"tribe"`
	Mutation  MutationConfig  `yaml:"mutation"`
	Traits    TraitsConfig    `yaml:"traits"`
	Food      FoodConfig      `yaml:"food"`
	Predators PredatorConfig  `yaml:"predators"`
	Forage    ForageConfig    `yaml:"forage"`
	Rivals    []RivalConfig   `yaml:"rivals"`
	Telemetry TelemetryConfig `yaml:"telemetry"`

	// Derived values computed after loading
	Derived DerivedConfig `yaml:"-"`
}

// ScreenConfig holds display settings.
type ScreenConfig struct {
	Width     int `yaml:"width"`
	Height    int `yaml:"height"`
	TargetFPS int `yaml:"target_fps"`
}

// WorldConfig holds simulation world dimensions.
// World can be larger than the screen; the viewer scales to fit.
type WorldConfig struct {
	Width  int `yaml:"width"`  // World width in world units (0 = use screen width)
	Height int `yaml:"height"` // World height in world units (0 = use screen height)
}

// TribeConfig holds the evolving tribe's generation parameters.
type TribeConfig struct {
	Size         int     `yaml:"size"`          // Fixed population size N
	SurvivalRate float64 `yaml:"survival_rate"` // Fraction kept as breeding stock
	MaxTicks     int     `yaml:"max_ticks"`     // Tick cap per generation
	Lives        int     `yaml:"lives"`         // Predator hits an organism survives
}

// MutationConfig holds offspring mutation parameters.
type MutationConfig struct {
	Rate  float64 `yaml:"rate"`  // Per-trait perturbation probability
	Delta float64 `yaml:"delta"` // Multiplicative factor range half-width
}

// TraitsConfig holds per-trait valid ranges.
type TraitsConfig struct {
	Speed      TraitRange `yaml:"speed"`
	Caution    TraitRange `yaml:"caution"`
	SearchBias TraitRange `yaml:"search_bias"`
	Efficiency TraitRange `yaml:"efficiency"`
}

// TraitRange holds the valid range for one trait.
type TraitRange struct {
	Min float64 `yaml:"min"`
	Max float64 `yaml:"max"`
}

// FoodConfig holds food spawning parameters.
type FoodConfig struct {
	Count        int     `yaml:"count"`         // Items spawned each generation
	PickupRadius float64 `yaml:"pickup_radius"` // Distance at which food is collected
	Energy       float64 `yaml:"energy"`        // Energy gained per item
}

// PredatorConfig holds predator parameters.
type PredatorConfig struct {
	Count       int     `yaml:"count"`
	Speed       float64 `yaml:"speed"`        // World units per tick
	StrikeRange float64 `yaml:"strike_range"` // Distance at which a strike lands
	Cooldown    int     `yaml:"cooldown"`     // Ticks between strikes
	TurnChance  float64 `yaml:"turn_chance"`  // Per-tick heading change probability
}

// ForageConfig holds movement and energy economics for tribe members.
type ForageConfig struct {
	InitialEnergy float64 `yaml:"initial_energy"`
	BaseCost      float64 `yaml:"base_cost"`     // Energy drain per tick for existing
	MoveCost      float64 `yaml:"move_cost"`     // Drain per unit moved, scaled down by efficiency
	SenseRange    float64 `yaml:"sense_range"`   // Distance at which food and predators register
	FleeWeight    float64 `yaml:"flee_weight"`   // How strongly caution repels from predators
	WanderJitter  float64 `yaml:"wander_jitter"` // Random heading change for undirected movement
}

// RivalConfig defines a fixed, non-evolving competitor tribe.
// Rival genomes never enter selection or reproduction.
type RivalConfig struct {
	Name       string  `yaml:"name"`
	Size       int     `yaml:"size"`
	Speed      float64 `yaml:"speed"`
	Caution    float64 `yaml:"caution"`
	SearchBias float64 `yaml:"search_bias"`
	Efficiency float64 `yaml:"efficiency"`
}

// TelemetryConfig holds telemetry parameters.
type TelemetryConfig struct {
	LogStats bool `yaml:"log_stats"`
}

// DerivedConfig holds computed values derived from the loaded config.
type DerivedConfig struct {
	WorldW float64 // Effective world width
	WorldH float64 // Effective world height
}

// global holds the loaded configuration.
var global *Config

// Init loads configuration from the given path, or uses embedded defaults if path is empty.
// Must be called before Cfg().
func Init(path string) error {
	cfg, err := Load(path)
	if err != nil {
		return err
	}
	global = cfg
	return nil
}

// MustInit is like Init but panics on error.
func MustInit(path string) {
	if err := Init(path); err != nil {
		panic(fmt.Sprintf("config: failed to initialize: %v", err))
	}
}

// Cfg returns the global configuration. Panics if Init was not called.
func Cfg() *Config {
	if global == nil {
		panic("config: Cfg() called before Init()")
	}
	return global
}

// Load loads configuration from a YAML file, merging with embedded defaults.
// If path is empty, only embedded defaults are used.
func Load(path string) (*Config, error) {
	// Start with embedded defaults
	cfg := &Config{}
	if err := yaml.Unmarshal(defaultsYAML, cfg); err != nil {
		return nil, fmt.Errorf("parsing embedded defaults: %w", err)
	}

	// Load user config if provided
	if path != "" {
		data, err := os.ReadFile(path)
		if err != nil {
			return nil, fmt.Errorf("reading config file: %w", err)
		}
		// Unmarshal into same struct - only overwrites fields present in file
		if err := yaml.Unmarshal(data, cfg); err != nil {
			return nil, fmt.Errorf("parsing config file: %w", err)
		}
	}

	// Compute derived values
	cfg.computeDerived()

	return cfg, nil
}

// computeDerived calculates values derived from loaded config.
func (c *Config) computeDerived() {
	// World dimensions default to screen size if not specified
	worldW := c.World.Width
	if worldW == 0 {
		worldW = c.Screen.Width
	}
	worldH := c.World.Height
	if worldH == 0 {
		worldH = c.Screen.Height
	}
	c.Derived.WorldW = float64(worldW)
	c.Derived.WorldH = float64(worldH)

	// Synthesize a default rival tribe if none specified
	if len(c.Rivals) == 0 {
		c.Rivals = []RivalConfig{
			{
				Name:       "scavengers",
				Size:       6,
				Speed:      1.2,
				Caution:    0.3,
				SearchBias: 0.5,
				Efficiency: 0.4,
			},
		}
	}
}

// WriteYAML writes the configuration to a YAML file.
func (c *Config) WriteYAML(path string) error {
	data, err := yaml.Marshal(c)
	if err != nil {
		return fmt.Errorf("marshaling config: %w", err)
	}
	if err := os.WriteFile(path, data, 0644); err != nil {
		return fmt.Errorf("writing config file: %w", err)
	}
	return nil
}
