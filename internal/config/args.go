package config

import (
	"errors"
	"fmt"
	"strconv"
)

// Usage is the positional argument synopsis.
const Usage = "dconwrapper [flags] <input.obj> <threshold> <scale> <hermite> <octree depth> <output.obj>"

// ErrUsage reports wrong positional arguments.
var ErrUsage = errors.New("usage: " + Usage)

// Paths holds the input and output mesh paths from the command line.
type Paths struct {
	Input  string
	Output string
}

// ApplyArgs reads the six positional arguments, stores the four remesh
// parameters in cfg and returns the mesh paths. The positional parameters
// take priority over the config file and flags.
func (c *Config) ApplyArgs(args []string) (Paths, error) {
	if len(args) != 6 {
		return Paths{}, fmt.Errorf("%w: expected 6 arguments, got %d", ErrUsage, len(args))
	}

	threshold, err := parseFloat32("threshold", args[1])
	if err != nil {
		return Paths{}, err
	}
	scale, err := parseFloat32("scale", args[2])
	if err != nil {
		return Paths{}, err
	}
	hermite, err := parseFloat32("hermite", args[3])
	if err != nil {
		return Paths{}, err
	}
	depth, err := strconv.Atoi(args[4])
	if err != nil {
		return Paths{}, fmt.Errorf("%w: octree depth %q is not an integer", ErrUsage, args[4])
	}

	c.Remesh.Threshold = threshold
	c.Remesh.Scale = scale
	c.Remesh.HermiteWeight = hermite
	c.Remesh.Depth = depth

	return Paths{Input: args[0], Output: args[5]}, nil
}

func parseFloat32(name, s string) (float32, error) {
	v, err := strconv.ParseFloat(s, 32)
	if err != nil {
		return 0, fmt.Errorf("%w: %s %q is not a number", ErrUsage, name, s)
	}
	return float32(v), nil
}
