package config

import (
	"io"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"
)

// SaveTo writes the config to a specific path, creating parent directories.
func (c *Config) SaveTo(path string) error {
	if err := os.MkdirAll(filepath.Dir(path), 0755); err != nil {
		return err
	}

	data, err := c.Marshal()
	if err != nil {
		return err
	}
	return os.WriteFile(path, data, 0644)
}

// Marshal returns the config as YAML.
func (c *Config) Marshal() ([]byte, error) {
	return yaml.Marshal(c)
}

// Export writes the config as YAML to path, or to stdout when path is "-".
func (c *Config) Export(path string, stdout io.Writer) error {
	if path != "-" {
		return c.SaveTo(path)
	}
	data, err := c.Marshal()
	if err != nil {
		return err
	}
	_, err = stdout.Write(data)
	return err
}
