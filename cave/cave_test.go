package cave

import (
	"testing"

	"cavesmith/caveconfig"
	"cavesmith/tile"
)

func TestGenerateProducesConfiguredSize(t *testing.T) {
	opts := caveconfig.DefaultOptions()
	opts.Width, opts.Height = 40, 30
	params := caveconfig.DefaultGenParams()
	params.Seed = 3

	c := New(opts, params, nil)
	result := c.Generate()

	if result.Grid.Width() != 40 || result.Grid.Height() != 30 {
		t.Fatalf("grid size = %dx%d, want 40x30", result.Grid.Width(), result.Grid.Height())
	}
}

func TestGenerateIsDeterministicForASeed(t *testing.T) {
	opts := caveconfig.DefaultOptions()
	opts.Width, opts.Height = 36, 24
	params := caveconfig.DefaultGenParams()
	params.Seed = 11

	a := New(opts, params, nil).Generate()
	b := New(opts, params, nil).Generate()

	for y := 0; y < a.Grid.Height(); y++ {
		for x := 0; x < a.Grid.Width(); x++ {
			if a.Grid.At(x, y) != b.Grid.At(x, y) {
				t.Fatalf("(%d,%d) diverged between identical Cave configs: %v vs %v", x, y, a.Grid.At(x, y), b.Grid.At(x, y))
			}
		}
	}
}

func TestGenerateCanBeCalledRepeatedlyWithoutAccumulatingSpawnPoints(t *testing.T) {
	opts := caveconfig.DefaultOptions()
	opts.Width, opts.Height = 36, 24
	params := caveconfig.DefaultGenParams()
	params.Seed = 5

	c := New(opts, params, nil)
	first := c.Generate()
	second := c.Generate()

	// Same config, fresh RNG seed each time cavegen.New is called inside
	// Generate, so both runs should agree on spawn point count.
	if len(first.SpawnPoints) != len(second.SpawnPoints) {
		t.Fatalf("spawn point counts diverged across repeated Generate calls: %d vs %d", len(first.SpawnPoints), len(second.SpawnPoints))
	}
}

func TestGenerateWithSmoothingDisabledStillProducesRawGrid(t *testing.T) {
	opts := caveconfig.DefaultOptions()
	opts.Smoothing = false
	opts.RemoveDiagonals = false
	opts.Width, opts.Height = 20, 16
	params := caveconfig.DefaultGenParams()
	params.Seed = 9

	result := New(opts, params, nil).Generate()
	if result.Grid.Width() != 20 || result.Grid.Height() != 16 {
		t.Fatalf("grid size = %dx%d, want 20x16", result.Grid.Width(), result.Grid.Height())
	}
	for y := 0; y < result.Grid.Height(); y++ {
		for x := 0; x < result.Grid.Width(); x++ {
			if v := result.Grid.At(x, y); v != tile.WALL && v != tile.FLOOR {
				t.Fatalf("(%d,%d) = %v, want raw WALL or FLOOR with smoothing disabled", x, y, v)
			}
		}
	}
}
