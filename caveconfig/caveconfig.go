// Package caveconfig holds the JSON-persisted configuration surface for a
// cave: its dimensions and smoothing switches (Options, copied into
// smoother.Options by package cave), and the generator's tuning knobs
// (GenParams, read by cavegen). caveconfig imports neither package; the
// smoother package does not import this one, so the core algorithm stays
// free of persistence concerns.
package caveconfig

import (
	"encoding/json"
	"fmt"
	"os"
)

// Options is the cave's dimensions plus the four smoothing-pass switches.
type Options struct {
	Width  int `json:"width"`
	Height int `json:"height"`

	Smoothing       bool `json:"smoothing"`
	RemoveDiagonals bool `json:"remove_diagonals"`
	SmoothCorners   bool `json:"smooth_corners"`
	SmoothPoints    bool `json:"smooth_points"`
}

// GenerationStep is one cellular-automata iteration's birth/survival rule:
// a cell becomes (or stays) solid when its solid-neighbor count is at
// least Birth (if currently floor) or at least Survive (if currently
// solid). The classic 4-5 rule is {Birth: 5, Survive: 4}.
type GenerationStep struct {
	Birth   int `json:"birth"`
	Survive int `json:"survive"`
}

// GenParams tunes cavegen's raw-grid generator.
type GenParams struct {
	FillDensity float64          `json:"fill_density"`
	Iterations  int              `json:"iterations"`
	Seed        int64            `json:"seed"`
	Generations []GenerationStep `json:"generations"`
}

// DefaultOptions returns a reasonable default smoothing configuration: a
// 64x40 grid with every pass enabled.
func DefaultOptions() Options {
	return Options{
		Width:           64,
		Height:          40,
		Smoothing:       true,
		RemoveDiagonals: true,
		SmoothCorners:   true,
		SmoothPoints:    true,
	}
}

// DefaultGenParams returns the classic 4-5 rule tuned for a handful of
// iterations over a moderately dense initial fill.
func DefaultGenParams() GenParams {
	return GenParams{
		FillDensity: 0.45,
		Iterations:  4,
		Seed:        1,
		Generations: []GenerationStep{
			{Birth: 5, Survive: 4},
			{Birth: 5, Survive: 4},
			{Birth: 5, Survive: 4},
			{Birth: 5, Survive: 4},
		},
	}
}

// CaveConfig bundles Options and GenParams behind a builder-style setter
// chain, each method returning the receiver so calls can be chained.
type CaveConfig struct {
	Options   Options
	GenParams GenParams
}

// NewCaveConfig returns a CaveConfig seeded with DefaultOptions and
// DefaultGenParams.
func NewCaveConfig() *CaveConfig {
	return &CaveConfig{Options: DefaultOptions(), GenParams: DefaultGenParams()}
}

func (c *CaveConfig) SetCaveSize(width, height int) *CaveConfig {
	c.Options.Width = width
	c.Options.Height = height
	return c
}

func (c *CaveConfig) SetSmoothing(enabled bool) *CaveConfig {
	c.Options.Smoothing = enabled
	return c
}

func (c *CaveConfig) SetRemoveDiagonals(enabled bool) *CaveConfig {
	c.Options.RemoveDiagonals = enabled
	return c
}

func (c *CaveConfig) SetSmoothCorners(enabled bool) *CaveConfig {
	c.Options.SmoothCorners = enabled
	return c
}

func (c *CaveConfig) SetSmoothPoints(enabled bool) *CaveConfig {
	c.Options.SmoothPoints = enabled
	return c
}

func (c *CaveConfig) SetFillDensity(density float64) *CaveConfig {
	c.GenParams.FillDensity = density
	return c
}

func (c *CaveConfig) SetSeed(seed int64) *CaveConfig {
	c.GenParams.Seed = seed
	return c
}

func (c *CaveConfig) SetGenerations(steps []GenerationStep) *CaveConfig {
	c.GenParams.Generations = steps
	c.GenParams.Iterations = len(steps)
	return c
}

// fileFormat is what actually gets marshaled: Options and GenParams
// together, so one file round-trips a whole CaveConfig.
type fileFormat struct {
	Options   Options   `json:"options"`
	GenParams GenParams `json:"gen_params"`
}

// Load reads a CaveConfig from path. A missing file is not an error: it
// returns defaults and writes them to path. A parse error or an invalid
// value (non-positive dimensions, empty Generations) falls back to
// defaults as well, after reporting what went wrong.
func Load(path string) (*CaveConfig, error) {
	cfg := NewCaveConfig()

	data, err := os.ReadFile(path)
	if err != nil {
		if saveErr := cfg.Save(path); saveErr != nil {
			return cfg, fmt.Errorf("caveconfig: no config at %s, and failed to write defaults: %w", path, saveErr)
		}
		return cfg, nil
	}

	var ff fileFormat
	if err := json.Unmarshal(data, &ff); err != nil {
		return cfg, fmt.Errorf("caveconfig: %s is not valid JSON, using defaults: %w", path, err)
	}

	if err := validate(ff.Options, ff.GenParams); err != nil {
		return cfg, fmt.Errorf("caveconfig: %s failed validation, using defaults: %w", path, err)
	}

	cfg.Options = ff.Options
	cfg.GenParams = ff.GenParams
	return cfg, nil
}

// Save writes c to path as indented JSON.
func (c *CaveConfig) Save(path string) error {
	data, err := json.MarshalIndent(fileFormat{Options: c.Options, GenParams: c.GenParams}, "", "  ")
	if err != nil {
		return fmt.Errorf("caveconfig: failed to marshal config: %w", err)
	}
	if err := os.WriteFile(path, data, 0644); err != nil {
		return fmt.Errorf("caveconfig: failed to write %s: %w", path, err)
	}
	return nil
}

func validate(o Options, g GenParams) error {
	if o.Width <= 0 || o.Height <= 0 {
		return fmt.Errorf("cave dimensions must be positive, got %dx%d", o.Width, o.Height)
	}
	if g.FillDensity < 0 || g.FillDensity > 1 {
		return fmt.Errorf("fill density must be in [0,1], got %f", g.FillDensity)
	}
	if len(g.Generations) == 0 {
		return fmt.Errorf("generations must have at least one step")
	}
	return nil
}
