// Package cavegen produces the raw wall/floor grid the smoother consumes:
// a seeded cellular-automata generator modeled on CavernGenerator
// (world/worldmap/gen_cavern.go), trimmed to exactly what
// the smoother needs upstream — no seeded chambers, cover pillars or
// faction-start placement, since those are gameplay features with no
// bearing on tile smoothing.
package cavegen

import (
	"io"
	"log"
	"math/rand"

	"cavesmith/caveconfig"
	"cavesmith/smoother"
	"cavesmith/tile"
)

var discardLogger = log.New(io.Discard, "", 0)

// Generator builds a raw cave grid from caveconfig.GenParams. Unlike the
// teacher's package-level math/rand usage (backed by the runtime's default
// source, reseeded implicitly at process start), Generator carries its own
// *rand.Rand seeded from GenParams.Seed: determinism is load-bearing here,
// since the cave package's tests rely on the same seed producing the same
// grid, and a shared global source would make two Generators racy if run
// concurrently.
type Generator struct {
	rng    *rand.Rand
	Logger *log.Logger
}

// New returns a Generator seeded from params.Seed. A nil logger defaults
// to a discard logger.
func New(params caveconfig.GenParams, logger *log.Logger) *Generator {
	if logger == nil {
		logger = discardLogger
	}
	return &Generator{rng: rand.New(rand.NewSource(params.Seed)), Logger: logger}
}

// Generate returns a width x height *smoother.Grid of WALL/FLOOR tiles:
// a random fill at params.FillDensity, followed by len(params.Generations)
// cellular-automata steps (one birth/survival threshold pair per step),
// then a one-cell solid border enforced unconditionally so the smoother
// never sees an opening at the map edge.
func (g *Generator) Generate(width, height int, params caveconfig.GenParams) *smoother.Grid {
	grid := smoother.NewGrid(width, height)

	g.Logger.Printf("cavegen: random fill at density %.2f", params.FillDensity)
	for y := 0; y < height; y++ {
		for x := 0; x < width; x++ {
			if g.rng.Float64() < params.FillDensity {
				grid.SetCell(x, y, tile.WALL)
			} else {
				grid.SetCell(x, y, tile.FLOOR)
			}
		}
	}

	for i, step := range params.Generations {
		g.Logger.Printf("cavegen: automata step %d (birth=%d survive=%d)", i, step.Birth, step.Survive)
		applyStep(grid, step)
	}

	enforceBorder(grid)
	return grid
}

// applyStep runs one cellular-automata iteration in place, computing every
// cell's next state from a snapshot of the current grid so a rewrite
// earlier in the scan never feeds into a later cell's neighbor count.
func applyStep(grid *smoother.Grid, step caveconfig.GenerationStep) {
	w, h := grid.Width(), grid.Height()
	next := make([]bool, w*h) // true = wall

	for y := 0; y < h; y++ {
		for x := 0; x < w; x++ {
			n := solidNeighborCount(grid, x, y)
			if grid.IsWall(x, y) {
				next[y*w+x] = n >= step.Survive
			} else {
				next[y*w+x] = n >= step.Birth
			}
		}
	}

	for y := 0; y < h; y++ {
		for x := 0; x < w; x++ {
			if next[y*w+x] {
				grid.SetCell(x, y, tile.WALL)
			} else {
				grid.SetCell(x, y, tile.FLOOR)
			}
		}
	}
}

// solidNeighborCount counts wall cells in the 8-neighborhood of (x,y),
// treating out-of-bounds neighbors as solid so the map edge naturally
// biases toward walls.
func solidNeighborCount(grid *smoother.Grid, x, y int) int {
	count := 0
	for dy := -1; dy <= 1; dy++ {
		for dx := -1; dx <= 1; dx++ {
			if dx == 0 && dy == 0 {
				continue
			}
			nx, ny := x+dx, y+dy
			if nx < 0 || nx >= grid.Width() || ny < 0 || ny >= grid.Height() {
				count++
				continue
			}
			if grid.IsWall(nx, ny) {
				count++
			}
		}
	}
	return count
}

// enforceBorder sets every edge cell to WALL, matching the
// enforceBorders pass it's modeled on — the smoother's padded working grid already treats
// out-of-bounds as solid, but a generator that leaves a gap at the literal
// edge would still produce a cave that "leaks" for any other consumer
// walking the raw grid directly.
func enforceBorder(grid *smoother.Grid) {
	w, h := grid.Width(), grid.Height()
	for x := 0; x < w; x++ {
		grid.SetCell(x, 0, tile.WALL)
		grid.SetCell(x, h-1, tile.WALL)
	}
	for y := 0; y < h; y++ {
		grid.SetCell(0, y, tile.WALL)
		grid.SetCell(w-1, y, tile.WALL)
	}
}
