// Package config provides YAML-based game configuration loading
// with embedded defaults.
package config

// Config contains all tunable parameters for the game.
type Config struct {
	Screen    ScreenConfig    `yaml:"screen"`
	Physics   PhysicsConfig   `yaml:"physics"`
	Player    PlayerConfig    `yaml:"player"`
	Obstacles ObstaclesConfig `yaml:"obstacles"`
}

// ScreenConfig defines the fixed world viewport.
type ScreenConfig struct {
	Width  int `yaml:"width"`
	Height int `yaml:"height"`
}

// PhysicsConfig defines player physics parameters.
type PhysicsConfig struct {
	// Gravity is the velocity increment applied per physics tick.
	Gravity float64 `yaml:"gravity"`
	// GravityCap stops gravity accumulation once velocity reaches it.
	// It is not a hard ceiling on stored velocity.
	GravityCap float64 `yaml:"gravity_cap"`
	// FlapVelocity is assigned outright on a successful flap (negative = up).
	FlapVelocity float64 `yaml:"flap_velocity"`
	// MaxFlapVelocity is the falling speed above which flapping fails.
	MaxFlapVelocity float64 `yaml:"max_flap_velocity"`
	// FrameDurationMs is the accumulated time required for one physics tick.
	FrameDurationMs float64 `yaml:"frame_duration_ms"`
}

// PlayerConfig defines the player's starting position.
type PlayerConfig struct {
	StartX int `yaml:"start_x"`
	StartY int `yaml:"start_y"`
}

// ObstaclesConfig defines obstacle generation and culling parameters.
type ObstaclesConfig struct {
	// GapMin/GapMax bound the random gap center, half-open [min, max).
	GapMin int `yaml:"gap_min"`
	GapMax int `yaml:"gap_max"`
	// SizeMin/SizeMax bound the random gap size, half-open [min, max).
	SizeMin int `yaml:"size_min"`
	SizeMax int `yaml:"size_max"`
	// InitialCount is how many obstacles are placed synchronously at start.
	InitialCount int `yaml:"initial_count"`
	// SpawnIntervalMs is the background generator's production cadence.
	SpawnIntervalMs int `yaml:"spawn_interval_ms"`
	// CullMargin is how far behind the player an obstacle may trail
	// before it is removed.
	CullMargin int `yaml:"cull_margin"`
}
