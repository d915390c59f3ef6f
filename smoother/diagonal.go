package smoother

import (
	"cavesmith/pattern"
	"cavesmith/tile"
)

// Diagonal-gap templates: a solid cell with a solid diagonal neighbor but
// empty orthogonal cells between them (NE orientation, and its NW mirror).
// The matched N cell (one of the two solids) is floored, so the two wall
// masses no longer touch only at a corner.
var diagonalTable = []pattern.Entry{
	pattern.CompileSingle(pattern.Template{
		{X, X, X, X},
		{X, S, B, X},
		{X, B, N, X},
		{X, X, X, X},
	}, tile.FLOOR),
	pattern.CompileSingle(pattern.Template{
		{X, X, X, X},
		{X, B, S, X},
		{X, N, B, X},
		{X, X, X, X},
	}, tile.FLOOR),
}

// buildDiagonalGrid fills a padded grid where a logical cell is FLOOR iff
// it is empty; everything else (walls, but also any already-placed slope
// or cap) counts as SOLID here, because the diagonal check cares only
// about "is this cell open space".
func buildDiagonalGrid(tm TileMap) *paddedGrid {
	return newPaddedGrid(tm.Width(), tm.Height(), func(x, y int) tile.Name {
		if tm.IsEmpty(x, y) {
			return tile.FLOOR
		}
		return tile.SOLID
	})
}

// diagonalPass runs with updateInGrid=true: a rewrite must be visible to
// later windows in the same pass, since flooring one gap can expose or
// close another within the same sweep.
//
// It builds its own mask rather than sharing the edge pass's accumulated
// one: the diagonal grid's SOLID/FLOOR values don't line up with the edge
// pass's tile identities (a slope or end-cap is non-empty, hence SOLID
// here, even though the edge pass already marked that cell rewritten), so
// reusing that mask would make runPass skip a diagonal-flood target the
// edge pass had merely decorated, not left as plain wall.
func diagonalPass(tm TileMap) bool {
	pg := buildDiagonalGrid(tm)
	mask := newMaskGrid(tm.Width(), tm.Height())
	return runPass(diagonalTable, pg, mask, tm, true)
}
