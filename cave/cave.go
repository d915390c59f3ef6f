// Package cave is the single top-level entry point: a caller configures
// cave dimensions and generation parameters, calls one generation
// operation, and receives a finished grid, composing the generator and
// smoother into one call the way Cave::Cave(info, genParams) /
// GDCave::make_cave do.
package cave

import (
	"io"
	"log"

	"cavesmith/caveconfig"
	"cavesmith/cavegen"
	"cavesmith/ecsspawn"
	"cavesmith/smoother"
)

var discardLogger = log.New(io.Discard, "", 0)

// Cave owns a configuration and produces finished grids from it.
type Cave struct {
	Options   caveconfig.Options
	GenParams caveconfig.GenParams
	Logger    *log.Logger
}

// New returns a Cave for the given configuration. A nil logger defaults to
// a discard logger and is shared with both the generator and the smoother.
func New(opts caveconfig.Options, genParams caveconfig.GenParams, logger *log.Logger) *Cave {
	if logger == nil {
		logger = discardLogger
	}
	return &Cave{Options: opts, GenParams: genParams, Logger: logger}
}

// Result is a finished cave: the smoothed grid plus the spawn-point entities
// ecsspawn derived from it.
type Result struct {
	Grid        *smoother.Grid
	SpawnPoints []*ecsspawn.SpawnPointData
}

// Generate runs the raw generator, then the smoother, then spawn-point
// tagging, returning the finished Result. Each call produces a fresh grid
// and a fresh ECS manager — Cave itself holds no generation state between
// calls, so it is safe to call Generate more than once (e.g. on every
// regenerate keypress in cmd/cavedemo) without leaking entities from a
// previous run into the new one.
func (c *Cave) Generate() Result {
	gen := cavegen.New(c.GenParams, c.Logger)
	grid := gen.Generate(c.Options.Width, c.Options.Height, c.GenParams)

	sm := smoother.New(smoother.Options{
		Width:           c.Options.Width,
		Height:          c.Options.Height,
		Smoothing:       c.Options.Smoothing,
		RemoveDiagonals: c.Options.RemoveDiagonals,
		SmoothCorners:   c.Options.SmoothCorners,
		SmoothPoints:    c.Options.SmoothPoints,
	}, c.Logger)
	sm.Smooth(grid)

	mgr := ecsspawn.NewManager()
	ecsspawn.SpawnFromGrid(mgr, grid)

	return Result{Grid: grid, SpawnPoints: ecsspawn.SpawnPoints(mgr)}
}
