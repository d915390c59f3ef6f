package smoother

import (
	"cavesmith/pattern"
	"cavesmith/tile"
)

// gridW and gridH are the sliding window's fixed dimensions (GRD_W/GRD_H in
// the source repository). They are not configuration: every update template
// is a 4x4 diagram.
const (
	gridW = 4
	gridH = 4
)

// paddedGrid is the working sentinel grid the sliding-match engine reads.
// Logical (x,y) lives at padded (x+1,y+1); every cell outside the copied
// logical region starts as tile.SOLID so a 4x4 window anchored at any
// logical cell can include a cell of top/left border and run past the
// right/bottom edge without bounds checks.
type paddedGrid struct {
	logicalW, logicalH int
	w, h               int
	cells              []tile.Name
}

func newPaddedGrid(logicalW, logicalH int, fill func(x, y int) tile.Name) *paddedGrid {
	w := logicalW + gridW + 1
	h := logicalH + gridH + 1
	cells := make([]tile.Name, w*h)
	for i := range cells {
		cells[i] = tile.SOLID
	}
	pg := &paddedGrid{logicalW: logicalW, logicalH: logicalH, w: w, h: h, cells: cells}
	for y := 0; y < logicalH; y++ {
		for x := 0; x < logicalW; x++ {
			pg.set(x+1, y+1, fill(x, y))
		}
	}
	return pg
}

func (pg *paddedGrid) at(px, py int) tile.Name {
	if px < 0 || py < 0 || px >= pg.w || py >= pg.h {
		return tile.SOLID
	}
	return pg.cells[py*pg.w+px]
}

func (pg *paddedGrid) set(px, py int, k tile.Name) {
	pg.cells[py*pg.w+px] = k
}

// maskGrid records, per pass, which padded-coordinate cells have already
// been rewritten, so a pass never rewrites the same cell twice.
type maskGrid struct {
	w, h  int
	cells []bool
}

func newMaskGrid(logicalW, logicalH int) *maskGrid {
	w := logicalW + gridW + 1
	h := logicalH + gridH + 1
	return &maskGrid{w: w, h: h, cells: make([]bool, w*h)}
}

func (m *maskGrid) at(px, py int) bool {
	if px < 0 || py < 0 || px >= m.w || py >= m.h {
		return false
	}
	return m.cells[py*m.w+px]
}

func (m *maskGrid) set(px, py int, v bool) {
	m.cells[py*m.w+px] = v
}

func (m *maskGrid) clear() {
	for i := range m.cells {
		m.cells[i] = false
	}
}

// runPass is the shared 4x4 sliding-match driver behind the edge, corner
// and diagonal-gap passes. It iterates logical cells in row-major order;
// for each cell, it tests every table entry against that same window, in
// declared order (precedence is entirely positional — callers must
// preserve source order). There is no early exit on the first match: two
// entries with different target offsets can both fire from the same
// window (e.g. an edge-pass window can satisfy both an END_E and an
// END_W template at once, each writing a different neighboring cell).
// What a match can never do is rewrite a target a previous match (from
// this cell or an earlier one) already claimed — mask skips those.
// Returns whether anything changed.
func runPass(table []pattern.Entry, pg *paddedGrid, mask *maskGrid, out TileMap, updateInGrid bool) bool {
	changed := false
	for y := 0; y < pg.logicalH; y++ {
		for x := 0; x < pg.logicalW; x++ {
			for _, e := range table {
				cellAt := func(r, c int) tile.Name { return pg.at(x+c, y+r) }
				if !e.MatchesGrid(cellAt) {
					continue
				}
				px1, py1 := x+e.XOff1, y+e.YOff1
				px2, py2 := x+e.XOff2, y+e.YOff2
				if mask.at(px1, py1) || mask.at(px2, py2) {
					continue
				}

				out.SetCell(px1-1, py1-1, e.T1)
				mask.set(px1, py1, true)
				if updateInGrid {
					pg.set(px1, py1, e.T1)
				}
				if e.T2 != tile.IGNORE {
					out.SetCell(px2-1, py2-1, e.T2)
					mask.set(px2, py2, true)
					if updateInGrid {
						pg.set(px2, py2, e.T2)
					}
				}
				changed = true
			}
		}
	}
	return changed
}
