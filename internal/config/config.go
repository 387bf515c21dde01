// Package config handles remesh configuration loading and management.
package config

// Config holds all bridge settings.
type Config struct {
	Remesh  RemeshConfig  `yaml:"remesh"`
	Limits  LimitsConfig  `yaml:"limits"`
	Logging LoggingConfig `yaml:"logging"`
}

// RemeshConfig holds the engine selection and its parameters.
type RemeshConfig struct {
	Engine        string  `yaml:"engine"`         // Registered engine name
	Mode          string  `yaml:"mode"`           // centroid, mass_point or sharp
	FloodFill     bool    `yaml:"flood_fill"`     // Drop disconnected interior pieces
	Threshold     float32 `yaml:"threshold"`      // Error threshold
	HermiteWeight float32 `yaml:"hermite_weight"` // Weight of Hermite data
	Scale         float32 `yaml:"scale"`          // Model size relative to the grid
	Depth         int     `yaml:"depth"`          // Octree depth
	IdentityLoops bool    `yaml:"identity_loops"` // Pass loops[i] = i to the engine
}

// LimitsConfig holds allocation limits.
type LimitsConfig struct {
	MaxElements int `yaml:"max_elements"` // Per-buffer element cap, 0 = built-in cap
}

// LoggingConfig holds logging settings.
type LoggingConfig struct {
	Level   string `yaml:"level"`
	LogFile string `yaml:"log_file"`
}

// Default returns a Config with sensible default values.
func Default() *Config {
	return &Config{
		Remesh: RemeshConfig{
			Engine:        "passthrough",
			Mode:          "sharp",
			FloodFill:     true,
			Threshold:     1.0,
			HermiteWeight: 1.0,
			Scale:         0.9,
			Depth:         6,
			IdentityLoops: false,
		},
		Limits: LimitsConfig{
			MaxElements: 0,
		},
		Logging: LoggingConfig{
			Level:   "info",
			LogFile: "",
		},
	}
}
