package config

import (
	_ "embed"
)

//go:embed defaults/flappy.yaml
var defaultYAML []byte

// Default returns the built-in configuration.
func Default() Config {
	return Config{
		Screen: ScreenConfig{
			Width:  80,
			Height: 50,
		},
		Physics: PhysicsConfig{
			Gravity:         0.2,
			GravityCap:      2.0,
			FlapVelocity:    -2.0,
			MaxFlapVelocity: 5.0,
			FrameDurationMs: 75.0,
		},
		Player: PlayerConfig{
			StartX: 5,
			StartY: 25,
		},
		Obstacles: ObstaclesConfig{
			GapMin:          10,
			GapMax:          40,
			SizeMin:         10,
			SizeMax:         20,
			InitialCount:    3,
			SpawnIntervalMs: 1500,
			CullMargin:      20,
		},
	}
}
