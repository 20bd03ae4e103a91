// Package config provides YAML-based game configuration loading and
// validation.
package config

// FlappyConfig contains all tunables of the simulation. Distances are in
// world units (one unit is one pixel of the classic playfield), velocities
// in units per tick.
type FlappyConfig struct {
	Surface   SurfaceConfig   `yaml:"surface"`
	Physics   PhysicsConfig   `yaml:"physics"`
	Actor     ActorConfig     `yaml:"actor"`
	Obstacles ObstaclesConfig `yaml:"obstacles"`
	Store     StoreConfig     `yaml:"store"`
}

// SurfaceConfig is the size of the playfield in world units.
type SurfaceConfig struct {
	Width  float64 `yaml:"width"`
	Height float64 `yaml:"height"`
}

// PhysicsConfig defines the actor's vertical motion.
type PhysicsConfig struct {
	Gravity float64 `yaml:"gravity"` // Added to velocity every tick
	Lift    float64 `yaml:"lift"`    // Velocity set by a flap (negative = up)
}

// ActorConfig defines the player object's fixed column and hitbox.
type ActorConfig struct {
	X      float64 `yaml:"x"`
	Width  float64 `yaml:"width"`
	Height float64 `yaml:"height"`
}

// ObstaclesConfig defines obstacle geometry, speed and spawn cadence.
type ObstaclesConfig struct {
	Width             float64 `yaml:"width"`
	GapHeight         float64 `yaml:"gap_height"`
	Speed             float64 `yaml:"speed"`
	SpawnPeriod       int     `yaml:"spawn_period"`       // Ticks between spawns
	TopClearance      float64 `yaml:"top_clearance"`      // Minimum gap-top offset
	ReservedClearance float64 `yaml:"reserved_clearance"` // Total space kept out of the random range
}

// StoreConfig defines where the best score lives in the score store.
type StoreConfig struct {
	Key string `yaml:"key"`
}
