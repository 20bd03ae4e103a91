package config

import (
	_ "embed"
)

//go:embed defaults/flappy.yaml
var defaultFlappyYAML []byte

// DefaultFlappyConfig returns the built-in configuration. It matches the
// embedded defaults/flappy.yaml.
func DefaultFlappyConfig() FlappyConfig {
	return FlappyConfig{
		Surface: SurfaceConfig{
			Width:  400,
			Height: 600,
		},
		Physics: PhysicsConfig{
			Gravity: 0.6,
			Lift:    -8,
		},
		Actor: ActorConfig{
			X:      80,
			Width:  34,
			Height: 24,
		},
		Obstacles: ObstaclesConfig{
			Width:             50,
			GapHeight:         150,
			Speed:             2,
			SpawnPeriod:       90,
			TopClearance:      50,
			ReservedClearance: 100,
		},
		Store: StoreConfig{
			Key: "flappyBirdHighScore",
		},
	}
}
