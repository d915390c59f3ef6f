package cavegen

import (
	"testing"

	"cavesmith/caveconfig"
	"cavesmith/tile"
)

func testParams() caveconfig.GenParams {
	return caveconfig.GenParams{
		FillDensity: 0.45,
		Seed:        7,
		Generations: []caveconfig.GenerationStep{
			{Birth: 5, Survive: 4},
			{Birth: 5, Survive: 4},
		},
	}
}

func TestGenerateProducesRequestedSize(t *testing.T) {
	g := New(testParams(), nil)
	grid := g.Generate(30, 20, testParams())

	if grid.Width() != 30 || grid.Height() != 20 {
		t.Fatalf("size = %dx%d, want 30x20", grid.Width(), grid.Height())
	}
}

func TestGenerateEnforcesSolidBorder(t *testing.T) {
	g := New(testParams(), nil)
	grid := g.Generate(20, 16, testParams())

	for x := 0; x < grid.Width(); x++ {
		if !grid.IsWall(x, 0) || !grid.IsWall(x, grid.Height()-1) {
			t.Fatalf("column %d: top/bottom border not solid", x)
		}
	}
	for y := 0; y < grid.Height(); y++ {
		if !grid.IsWall(0, y) || !grid.IsWall(grid.Width()-1, y) {
			t.Fatalf("row %d: left/right border not solid", y)
		}
	}
}

func TestGenerateIsDeterministicForASeed(t *testing.T) {
	params := testParams()

	a := New(params, nil).Generate(24, 18, params)
	b := New(params, nil).Generate(24, 18, params)

	for y := 0; y < a.Height(); y++ {
		for x := 0; x < a.Width(); x++ {
			if a.At(x, y) != b.At(x, y) {
				t.Fatalf("(%d,%d) diverged between same-seed runs: %v vs %v", x, y, a.At(x, y), b.At(x, y))
			}
		}
	}
}

func TestGenerateDifferentSeedsCanDiffer(t *testing.T) {
	p1 := testParams()
	p2 := testParams()
	p2.Seed = 99

	a := New(p1, nil).Generate(24, 18, p1)
	b := New(p2, nil).Generate(24, 18, p2)

	same := true
	for y := 0; y < a.Height() && same; y++ {
		for x := 0; x < a.Width(); x++ {
			if a.At(x, y) != b.At(x, y) {
				same = false
				break
			}
		}
	}
	if same {
		t.Fatalf("grids from different seeds were identical, want at least one differing cell")
	}
}

func TestGenerateOutputIsOnlyWallOrFloor(t *testing.T) {
	g := New(testParams(), nil)
	grid := g.Generate(16, 12, testParams())

	for y := 0; y < grid.Height(); y++ {
		for x := 0; x < grid.Width(); x++ {
			v := grid.At(x, y)
			if v != tile.WALL && v != tile.FLOOR {
				t.Fatalf("(%d,%d) = %v, want WALL or FLOOR", x, y, v)
			}
		}
	}
}
