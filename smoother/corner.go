package smoother

import (
	"cavesmith/pattern"
	"cavesmith/tile"
)

// Corner-pass templates, transcribed verbatim. Dead-end rules are declared
// before single-corner rules so a one-cell-wide corridor terminus is
// rewritten as a dead-end, not split into two single corners. Each
// dead-end direction has two template variants to handle the case where
// the far side of the corridor runs off the map border.
var cornerTable = []pattern.Entry{
	pattern.CompileSingle(pattern.Template{
		{X, S, X, X},
		{S, O, S, X},
		{X, B, X, X},
		{X, X, X, X},
	}, tile.DEND_N),
	pattern.CompileSingle(pattern.Template{
		{X, X, X, X},
		{X, B, X, X},
		{S, O, S, X},
		{X, S, X, X},
	}, tile.DEND_S),
	pattern.CompileSingle(pattern.Template{
		{X, X, S, X},
		{X, B, O, S},
		{X, X, S, X},
		{X, X, X, X},
	}, tile.DEND_E),
	pattern.CompileSingle(pattern.Template{
		{X, S, X, X},
		{S, O, B, X},
		{X, S, X, X},
		{X, X, X, X},
	}, tile.DEND_W),
	pattern.CompileSingle(pattern.Template{
		{X, X, S, X},
		{X, S, O, S},
		{X, X, B, X},
		{X, X, X, X},
	}, tile.DEND_N),
	pattern.CompileSingle(pattern.Template{
		{X, X, X, X},
		{X, X, B, X},
		{X, S, O, S},
		{X, X, S, X},
	}, tile.DEND_S),
	pattern.CompileSingle(pattern.Template{
		{X, X, X, X},
		{X, X, S, X},
		{X, B, O, S},
		{X, X, S, X},
	}, tile.DEND_E),
	pattern.CompileSingle(pattern.Template{
		{X, X, X, X},
		{X, S, X, X},
		{S, O, B, X},
		{X, S, X, X},
	}, tile.DEND_W),

	// Single corners: a floor cell with walls on two adjacent sides.
	pattern.CompileSingle(pattern.Template{
		{X, S, X, X},
		{S, O, X, X},
		{X, B, X, X},
		{X, X, X, X},
	}, tile.CORNR_A),
	pattern.CompileSingle(pattern.Template{
		{X, X, S, X},
		{X, X, O, S},
		{X, X, B, X},
		{X, X, X, X},
	}, tile.CORNR_B),
	pattern.CompileSingle(pattern.Template{
		{X, X, X, X},
		{X, X, X, X},
		{X, B, O, S},
		{X, X, S, X},
	}, tile.CORNR_C),
	pattern.CompileSingle(pattern.Template{
		{X, X, X, X},
		{X, X, X, X},
		{S, O, B, X},
		{X, S, X, X},
	}, tile.CORNR_D),
}

// buildCornerGrid fills a padded grid with SOLID for walls and end-caps
// (END_* form right-angle floor corners worth rounding too), FLOOR for
// plain floor, and IGNORE for everything else — already-placed slopes in
// particular, which must satisfy neither a template's S nor B requirement.
func buildCornerGrid(tm TileMap) *paddedGrid {
	return newPaddedGrid(tm.Width(), tm.Height(), func(x, y int) tile.Name {
		isWall := tm.IsWall(x, y) ||
			tm.IsTile(x, y, tile.END_N) || tm.IsTile(x, y, tile.END_S) ||
			tm.IsTile(x, y, tile.END_E) || tm.IsTile(x, y, tile.END_W)
		switch {
		case isWall:
			return tile.SOLID
		case tm.IsFloor(x, y):
			return tile.FLOOR
		default:
			return tile.IGNORE
		}
	})
}

func cornerPass(tm TileMap, mask *maskGrid) bool {
	pg := buildCornerGrid(tm)
	return runPass(cornerTable, pg, mask, tm, false)
}
