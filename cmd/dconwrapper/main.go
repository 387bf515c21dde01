// dconwrapper remeshes a triangle OBJ into a quad OBJ through a
// dual-contouring engine.
package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"os"
	"os/signal"
	"strings"

	"go.uber.org/zap"

	"github.com/Faultbox/dualcon-bridge/internal/bridge"
	"github.com/Faultbox/dualcon-bridge/internal/config"
	"github.com/Faultbox/dualcon-bridge/internal/logger"
	"github.com/Faultbox/dualcon-bridge/pkg/dualcon"
)

func main() {
	flag.Usage = printUsage
	config.ParseFlags()

	if err := run(); err != nil {
		if errors.Is(err, config.ErrUsage) {
			fmt.Fprintf(os.Stderr, "Wrong arguments: %v\n\n", err)
			printUsage()
		} else {
			fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		}
		os.Exit(1)
	}
}

func run() error {
	cfg, err := config.Load()
	if err != nil {
		return fmt.Errorf("config: %w", err)
	}

	if path := config.WriteConfigPath(); path != "" {
		return cfg.Export(path, os.Stdout)
	}

	paths, err := cfg.ApplyArgs(config.Args())
	if err != nil {
		return err
	}

	if err := logger.Init(cfg.Logging.Level, cfg.Logging.LogFile); err != nil {
		return fmt.Errorf("logger: %w", err)
	}
	defer logger.Sync()

	logger.Sugar.Debugf("Config: %+v", cfg)
	logger.Debug("remesh parameters",
		zap.String("engine", cfg.Remesh.Engine),
		zap.String("mode", cfg.Remesh.Mode),
		zap.Float32("threshold", cfg.Remesh.Threshold),
		zap.Float32("scale", cfg.Remesh.Scale),
		zap.Float32("hermite", cfg.Remesh.HermiteWeight),
		zap.Int("depth", cfg.Remesh.Depth))

	job, err := bridge.NewJob(cfg, paths)
	if err != nil {
		logger.Error("invalid remesh job", zap.Error(err))
		return err
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()

	stats, err := bridge.Run(ctx, job)
	if err != nil {
		logger.Error("remesh failed", zap.Error(err))
		return err
	}

	fmt.Printf("%d vertices %d faces -> %d vertices %d faces\n",
		stats.InputVertices, stats.InputTriangles, stats.OutputVertices, stats.OutputQuads)
	return nil
}

func printUsage() {
	fmt.Fprintf(os.Stderr, `dconwrapper - dual-contouring remesh of OBJ triangle meshes

Usage:
  %s

Arguments:
  input.obj      Triangle mesh to remesh ("v x y z" and "f a b c" lines)
  threshold      Error threshold
  scale          Ratio of the model's largest dimension to the grid size
  hermite        Hermite data weight
  octree depth   Octree depth (1-%d)
  output.obj     Quad mesh to write

Engines: %s

Flags:
`, config.Usage, dualcon.MaxDepth, strings.Join(dualcon.Names(), ", "))
	flag.PrintDefaults()
}
