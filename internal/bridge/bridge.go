// Package bridge runs a mesh through a remeshing engine: it reads the input
// OBJ, computes the working bounds, drives the engine against an output
// builder and writes the resulting quad mesh.
package bridge

import (
	"context"
	"fmt"
	"time"

	"go.uber.org/zap"

	"github.com/Faultbox/dualcon-bridge/internal/config"
	"github.com/Faultbox/dualcon-bridge/internal/logger"
	"github.com/Faultbox/dualcon-bridge/pkg/dualcon"
	"github.com/Faultbox/dualcon-bridge/pkg/formats"
	"github.com/Faultbox/dualcon-bridge/pkg/mesh"
)

// Options controls a single engine call.
type Options struct {
	Flags         dualcon.Flags
	Mode          dualcon.Mode
	Params        dualcon.Params
	IdentityLoops bool
	MaxElements   int // Per-buffer cap, 0 = mesh.MaxElements
}

// Job is one file-to-file remesh.
type Job struct {
	Input   string
	Output  string
	Engine  dualcon.Engine
	Options Options
}

// Stats summarizes a finished job.
type Stats struct {
	InputVertices  int
	InputTriangles int
	OutputVertices int
	OutputQuads    int
	Bounds         mesh.Bounds
	Elapsed        time.Duration
}

// NewJob builds a job from loaded configuration and command-line paths.
func NewJob(cfg *config.Config, paths config.Paths) (Job, error) {
	engine, err := dualcon.Lookup(cfg.Remesh.Engine)
	if err != nil {
		return Job{}, err
	}
	mode, err := dualcon.ParseMode(cfg.Remesh.Mode)
	if err != nil {
		return Job{}, err
	}
	opts := Options{
		Flags:         cfg.Remesh.Flags(),
		Mode:          mode,
		Params:        cfg.Remesh.Params(),
		IdentityLoops: cfg.Remesh.IdentityLoops,
		MaxElements:   cfg.Limits.MaxElements,
	}
	if err := opts.Params.Validate(); err != nil {
		return Job{}, err
	}
	return Job{
		Input:   paths.Input,
		Output:  paths.Output,
		Engine:  engine,
		Options: opts,
	}, nil
}

// Run reads job.Input, remeshes it and writes job.Output.
func Run(ctx context.Context, job Job) (Stats, error) {
	start := time.Now()

	reader := formats.OBJReader{MaxElements: job.Options.MaxElements}
	in, err := reader.ReadFile(job.Input)
	if err != nil {
		return Stats{}, err
	}
	logger.Info("input mesh loaded",
		zap.String("path", job.Input),
		zap.Int("vertices", in.VertexCount()),
		zap.Int("faces", in.TriangleCount()))

	out, bounds, err := remesh(ctx, job.Engine, in, job.Options)
	if err != nil {
		return Stats{}, err
	}
	logger.Info("remesh finished",
		zap.Int("vertices", len(out.Vertices)),
		zap.Int("faces", len(out.Quads)))

	if err := formats.WriteOBJFile(job.Output, out); err != nil {
		return Stats{}, err
	}

	stats := Stats{
		InputVertices:  in.VertexCount(),
		InputTriangles: in.TriangleCount(),
		OutputVertices: len(out.Vertices),
		OutputQuads:    len(out.Quads),
		Bounds:         bounds,
		Elapsed:        time.Since(start),
	}
	logger.Info("output mesh written",
		zap.String("path", job.Output),
		zap.Duration("elapsed", stats.Elapsed))
	return stats, nil
}

// Remesh passes m to engine and returns the quad mesh it builds.
func Remesh(ctx context.Context, engine dualcon.Engine, m *mesh.Mesh, opts Options) (*mesh.QuadMesh, error) {
	out, _, err := remesh(ctx, engine, m, opts)
	return out, err
}

func remesh(ctx context.Context, engine dualcon.Engine, m *mesh.Mesh, opts Options) (*mesh.QuadMesh, mesh.Bounds, error) {
	if err := opts.Params.Validate(); err != nil {
		return nil, mesh.Bounds{}, err
	}
	if err := m.Validate(); err != nil {
		return nil, mesh.Bounds{}, err
	}

	bounds := mesh.ComputeBounds(m.Vertices)
	if bounds.Empty() {
		logger.Warn("input mesh has no vertices, engine not called")
		return &mesh.QuadMesh{}, bounds, nil
	}
	logger.Debug("working volume",
		zap.Float32s("min", []float32{bounds.Min.X, bounds.Min.Y, bounds.Min.Z}),
		zap.Float32s("max", []float32{bounds.Max.X, bounds.Max.Y, bounds.Max.Z}),
		zap.Float32("diagonal", bounds.Size().Length()))

	input := *m
	if opts.IdentityLoops && input.Loops == nil {
		if err := input.WithIdentityLoops(); err != nil {
			return nil, bounds, err
		}
	}

	builder := mesh.NewBuilder()
	builder.Limit = opts.MaxElements

	err := engine.Remesh(ctx, dualcon.Input{
		Mesh:   &input,
		Bounds: bounds,
		Flags:  opts.Flags,
		Mode:   opts.Mode,
		Params: opts.Params,
	}, builder)

	// A latched builder violation explains any engine error that follows it.
	if berr := builder.Err(); berr != nil {
		return nil, bounds, berr
	}
	if err != nil {
		return nil, bounds, fmt.Errorf("remesh engine: %w", err)
	}

	out, err := builder.Result()
	if err != nil {
		return nil, bounds, err
	}

	if !builder.Complete() {
		declaredVerts, declaredQuads := builder.Declared()
		logger.Warn("engine output short of declared size",
			zap.Int("vertices", len(out.Vertices)),
			zap.Int("declared_vertices", declaredVerts),
			zap.Int("quads", len(out.Quads)),
			zap.Int("declared_quads", declaredQuads))
	}

	if err := out.Validate(); err != nil {
		return nil, bounds, fmt.Errorf("engine output: %w", err)
	}
	return out, bounds, nil
}
