package config

import (
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"runtime"

	"gopkg.in/yaml.v3"

	"github.com/Faultbox/dualcon-bridge/pkg/dualcon"
)

// Load loads configuration with priority: defaults < file < flags.
// Positional arguments are applied afterwards with ApplyArgs.
func Load() (*Config, error) {
	cfg := Default()

	// Explicit path takes priority over the search locations
	configPath := ConfigPath()
	if configPath == "" {
		configPath = findConfigFile()
	}

	if configPath != "" {
		if err := loadFromFile(cfg, configPath); err != nil {
			return nil, fmt.Errorf("loading config from %s: %w", configPath, err)
		}
	}

	applyFlags(cfg)

	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

// Validate checks the settings that can be checked before the remesh
// parameters arrive from the command line.
func (c *Config) Validate() error {
	if c.Remesh.Engine == "" {
		return errors.New("remesh.engine must not be empty")
	}
	if _, err := dualcon.ParseMode(c.Remesh.Mode); err != nil {
		return fmt.Errorf("remesh.mode: %w", err)
	}
	if c.Limits.MaxElements < 0 {
		return fmt.Errorf("limits.max_elements must not be negative, got %d", c.Limits.MaxElements)
	}
	return nil
}

// Params converts the remesh section to engine parameters.
func (r RemeshConfig) Params() dualcon.Params {
	return dualcon.Params{
		Threshold:     r.Threshold,
		HermiteWeight: r.HermiteWeight,
		Scale:         r.Scale,
		Depth:         r.Depth,
	}
}

// Flags converts the remesh section to engine flags.
func (r RemeshConfig) Flags() dualcon.Flags {
	var f dualcon.Flags
	if r.FloodFill {
		f |= dualcon.FloodFill
	}
	return f
}

// findConfigFile looks for config in standard locations.
func findConfigFile() string {
	candidates := []string{
		"./dconwrapper.yaml",
		filepath.Join(ConfigDir(), "config.yaml"),
	}

	for _, path := range candidates {
		if _, err := os.Stat(path); err == nil {
			return path
		}
	}
	return ""
}

// ConfigDir returns the OS-appropriate config directory.
func ConfigDir() string {
	switch runtime.GOOS {
	case "darwin":
		home, _ := os.UserHomeDir()
		return filepath.Join(home, "Library", "Application Support", "DualconBridge")
	case "windows":
		return filepath.Join(os.Getenv("APPDATA"), "DualconBridge")
	default: // Linux and others
		if xdg := os.Getenv("XDG_CONFIG_HOME"); xdg != "" {
			return filepath.Join(xdg, "dualcon-bridge")
		}
		home, _ := os.UserHomeDir()
		return filepath.Join(home, ".config", "dualcon-bridge")
	}
}

// loadFromFile merges a YAML file into cfg. Unknown keys are rejected so a
// misspelled parameter does not silently fall back to its default.
func loadFromFile(cfg *Config, path string) error {
	file, err := os.Open(path)
	if err != nil {
		return err
	}
	defer file.Close()

	decoder := yaml.NewDecoder(file)
	decoder.KnownFields(true)
	if err := decoder.Decode(cfg); err != nil && !errors.Is(err, io.EOF) {
		return err
	}
	return nil
}
