package smoother

import (
	"cavesmith/pattern"
	"cavesmith/tile"
)

// Edge-pass templates, transcribed verbatim from the source repository's
// TileGrid* character grids (see DESIGN.md). Two-tile rules are declared
// before single-tile rules: the single-tile 45-degree and end-cap patterns
// are loose enough to also match what should be a two-tile slope, so they
// must lose precedence to the more specific rules.
//
// edgeTable is compiled once at package init and shared read-only by every
// Smoother — the source repository recompiles its tables at each
// CaveSmoother construction, which races if two are built concurrently;
// Go package-level var initializers run exactly once regardless of how many
// Smoother values get created.
var edgeTable = []pattern.Entry{
	// Two-tile 30-degree (horizontal pair) and 60-degree (vertical pair)
	// slopes, all four corner orientations of each.
	pattern.Compile(pattern.Template{
		{X, S, S, S},
		{S, N, M, B},
		{X, B, B, X},
		{X, X, X, X},
	}, tile.H30a1, tile.H30a2),
	pattern.Compile(pattern.Template{
		{X, S, X, X},
		{B, N, S, X},
		{B, M, S, X},
		{X, B, S, X},
	}, tile.V60b1, tile.V60b2),
	pattern.Compile(pattern.Template{
		{X, X, X, X},
		{X, B, B, X},
		{B, M, N, S},
		{S, S, S, X},
	}, tile.H30c1, tile.H30c2),
	pattern.Compile(pattern.Template{
		{S, B, X, X},
		{S, M, B, X},
		{S, N, B, X},
		{X, S, X, X},
	}, tile.V60d1, tile.V60d2),

	pattern.Compile(pattern.Template{
		{X, X, X, X},
		{S, S, S, X},
		{B, M, N, S},
		{X, B, B, X},
	}, tile.H30b1, tile.H30b2),
	pattern.Compile(pattern.Template{
		{X, X, B, S},
		{X, B, M, S},
		{X, B, N, S},
		{X, X, S, X},
	}, tile.V60c1, tile.V60c2),
	pattern.Compile(pattern.Template{
		{X, X, X, X},
		{X, B, B, X},
		{S, N, M, B},
		{X, S, S, S},
	}, tile.H30d1, tile.H30d2),
	pattern.Compile(pattern.Template{
		{X, S, X, X},
		{S, N, B, X},
		{S, M, B, X},
		{S, B, X, X},
	}, tile.V60a1, tile.V60a2),

	// Single-tile 45-degree slopes.
	pattern.CompileSingle(pattern.Template{
		{X, X, S, X},
		{X, B, N, S},
		{X, X, B, X},
		{X, X, X, X},
	}, tile.T45b),
	pattern.CompileSingle(pattern.Template{
		{X, X, B, X},
		{X, B, N, S},
		{X, X, S, X},
		{X, X, X, X},
	}, tile.T45c),
	pattern.CompileSingle(pattern.Template{
		{X, B, X, X},
		{S, N, B, X},
		{X, S, X, X},
		{X, X, X, X},
	}, tile.T45d),
	pattern.CompileSingle(pattern.Template{
		{X, S, X, X},
		{S, N, B, X},
		{X, B, X, X},
		{X, X, X, X},
	}, tile.T45a),

	// Notch cleanup: a solid cell with floor on three cardinal sides but a
	// thicker solid mass one cell further on the fourth side is not a
	// genuine end-cap, it's a nub on a thicker wall. These erase it to
	// FLOOR. Declared before the single-isolated-tile and real end-cap
	// rules below so they intercept matches that would otherwise look like
	// a stub but are actually part of a thicker wall.
	pattern.CompileSingle(pattern.Template{
		{X, X, B, S},
		{X, B, N, S},
		{X, X, B, S},
		{X, X, X, X},
	}, tile.FLOOR),
	pattern.CompileSingle(pattern.Template{
		{S, B, X, X},
		{S, N, B, X},
		{S, B, X, X},
		{X, X, X, X},
	}, tile.FLOOR),
	pattern.CompileSingle(pattern.Template{
		{X, X, X, X},
		{X, B, X, X},
		{B, N, B, X},
		{S, S, S, X},
	}, tile.FLOOR),
	pattern.CompileSingle(pattern.Template{
		{S, S, S, X},
		{B, N, B, X},
		{X, B, X, X},
		{X, X, X, X},
	}, tile.FLOOR),

	// Isolated single wall: floor on all four cardinal sides.
	pattern.CompileSingle(pattern.Template{
		{X, B, X, X},
		{B, N, B, X},
		{X, B, X, X},
		{X, X, X, X},
	}, tile.SINGLE),

	// Real end-caps: the tip of a short, one-cell-wide wall stub — floor
	// on three cardinal sides, solid continuing on the fourth.
	pattern.CompileSingle(pattern.Template{
		{X, B, X, X},
		{B, N, B, X},
		{X, S, X, X},
		{X, X, X, X},
	}, tile.END_N),
	pattern.CompileSingle(pattern.Template{
		{X, X, X, X},
		{X, S, X, X},
		{B, N, B, X},
		{X, B, X, X},
	}, tile.END_S),
	pattern.CompileSingle(pattern.Template{
		{X, X, B, X},
		{X, S, N, B},
		{X, X, B, X},
		{X, X, X, X},
	}, tile.END_E),
	pattern.CompileSingle(pattern.Template{
		{X, B, X, X},
		{B, N, S, X},
		{X, B, X, X},
		{X, X, X, X},
	}, tile.END_W),
}

// buildEdgeGrid fills a padded grid where every logical cell is SOLID iff
// it is currently a wall, FLOOR otherwise.
func buildEdgeGrid(tm TileMap) *paddedGrid {
	return newPaddedGrid(tm.Width(), tm.Height(), func(x, y int) tile.Name {
		if tm.IsWall(x, y) {
			return tile.SOLID
		}
		return tile.FLOOR
	})
}

func edgePass(tm TileMap, mask *maskGrid) bool {
	pg := buildEdgeGrid(tm)
	return runPass(edgeTable, pg, mask, tm, false)
}
