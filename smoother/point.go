package smoother

import "cavesmith/tile"

// pointIgnore is tile.IGNORE used as the point-pass template's don't-care
// marker, matching the vocabulary's existing "no requirement" sentinel
// rather than inventing a second one.
const pointIgnore = tile.IGNORE

// PointTemplate is a 2x2 grid of wanted tile identities, row-major, checked
// against a snapshot of the tile map rather than its live state.
type PointTemplate [2][2]tile.Name

// PointUpdate is one sharp-point descriptor: a list of acceptable 2x2
// neighborhoods (the adjacent tile can be a matching 45-degree slope or
// its 30/60-degree partner), the offset of the cell to rewrite, and the
// tile to write there.
type PointUpdate struct {
	Templates    []PointTemplate
	XOff1, YOff1 int
	Tile1        tile.Name
}

// pointTable: four two-corner-cut descriptors (3 template variants each)
// followed by eight single-corner-cut descriptors (2 variants each) — the
// 3*4 + 2*8 = 28 templates the point pass checks per cell.
var pointTable = []PointUpdate{
	{
		Templates: []PointTemplate{
			{{pointIgnore, tile.T45d}, {tile.T45b, tile.T45a}},
			{{pointIgnore, tile.H30d2}, {tile.T45b, tile.T45a}},
			{{pointIgnore, tile.T45d}, {tile.V60b2, tile.T45a}},
		},
		XOff1: 1, YOff1: 1, Tile1: tile.T45a2CT,
	},
	{
		Templates: []PointTemplate{
			{{tile.T45c, pointIgnore}, {tile.T45b, tile.T45a}},
			{{tile.H30c2, pointIgnore}, {tile.T45b, tile.T45a}},
			{{tile.T45c, pointIgnore}, {tile.T45b, tile.V60a2}},
		},
		XOff1: 0, YOff1: 1, Tile1: tile.T45b2CT,
	},
	{
		Templates: []PointTemplate{
			{{tile.T45c, tile.T45d}, {tile.T45b, pointIgnore}},
			{{tile.T45c, tile.T45d}, {tile.H30b2, pointIgnore}},
			{{tile.T45c, tile.V60d2}, {tile.T45b, pointIgnore}},
		},
		XOff1: 0, YOff1: 0, Tile1: tile.T45c2CT,
	},
	{
		Templates: []PointTemplate{
			{{tile.T45c, tile.T45d}, {pointIgnore, tile.T45a}},
			{{tile.V60c2, tile.T45d}, {pointIgnore, tile.T45a}},
			{{tile.T45c, tile.T45d}, {pointIgnore, tile.H30a2}},
		},
		XOff1: 1, YOff1: 0, Tile1: tile.T45d2CT,
	},

	{
		Templates: []PointTemplate{
			{{pointIgnore, tile.T45d}, {pointIgnore, tile.T45a}},
			{{pointIgnore, tile.H30d2}, {pointIgnore, tile.T45a}},
		},
		XOff1: 1, YOff1: 1, Tile1: tile.T45abCT,
	},
	{
		Templates: []PointTemplate{
			{{pointIgnore, pointIgnore}, {tile.T45b, tile.T45a}},
			{{pointIgnore, pointIgnore}, {tile.V60b2, tile.T45a}},
		},
		XOff1: 1, YOff1: 1, Tile1: tile.T45adCT,
	},
	{
		Templates: []PointTemplate{
			{{tile.T45c, pointIgnore}, {tile.T45b, pointIgnore}},
			{{tile.H30c2, pointIgnore}, {tile.T45b, pointIgnore}},
		},
		XOff1: 0, YOff1: 1, Tile1: tile.T45baCT,
	},
	{
		Templates: []PointTemplate{
			{{pointIgnore, pointIgnore}, {tile.T45b, tile.T45a}},
			{{pointIgnore, pointIgnore}, {tile.T45b, tile.V60a2}},
		},
		XOff1: 0, YOff1: 1, Tile1: tile.T45bcCT,
	},
	{
		Templates: []PointTemplate{
			{{tile.T45c, tile.T45d}, {pointIgnore, pointIgnore}},
			{{tile.T45c, tile.V60d2}, {pointIgnore, pointIgnore}},
		},
		XOff1: 0, YOff1: 0, Tile1: tile.T45cbCT,
	},
	{
		Templates: []PointTemplate{
			{{tile.T45c, pointIgnore}, {tile.T45b, pointIgnore}},
			{{tile.T45c, pointIgnore}, {tile.H30b2, pointIgnore}},
		},
		XOff1: 0, YOff1: 0, Tile1: tile.T45cdCT,
	},
	{
		Templates: []PointTemplate{
			{{tile.T45c, tile.T45d}, {pointIgnore, pointIgnore}},
			{{tile.V60c2, tile.T45d}, {pointIgnore, pointIgnore}},
		},
		XOff1: 1, YOff1: 0, Tile1: tile.T45daCT,
	},
	{
		Templates: []PointTemplate{
			{{pointIgnore, tile.T45d}, {pointIgnore, tile.T45a}},
			{{pointIgnore, tile.T45d}, {pointIgnore, tile.H30a2}},
		},
		XOff1: 1, YOff1: 0, Tile1: tile.T45dcCT,
	},
}

// pointMask is the point pass's own fresh mask, sized for offsets of at
// most 1 beyond the logical grid.
type pointMask struct {
	w, h  int
	cells []bool
}

func newPointMask(w, h int) *pointMask {
	return &pointMask{w: w + 1, h: h + 1, cells: make([]bool, (w+1)*(h+1))}
}

func (m *pointMask) at(x, y int) bool {
	if x < 0 || y < 0 || x >= m.w || y >= m.h {
		return false
	}
	return m.cells[y*m.w+x]
}

func (m *pointMask) set(x, y int) {
	if x < 0 || y < 0 || x >= m.w || y >= m.h {
		return
	}
	m.cells[y*m.w+x] = true
}

// snapshotIsTile reads from snapshot, treating any coordinate outside the
// logical grid as not matching — a point descriptor's 2x2 window can run
// one cell past the grid's right/bottom edge.
func snapshotIsTile(snapshot TileMap, x, y int, want tile.Name) bool {
	if x < 0 || y < 0 || x >= snapshot.Width() || y >= snapshot.Height() {
		return false
	}
	return snapshot.IsTile(x, y, want)
}

// pointPass rewrites sharp two-slope points into their cut variants. It
// reads tile identities from snapshot (taken before the pass began) and
// writes into tm — using a pre-pass snapshot is required for correctness:
// without it, an earlier rewrite in this same pass would be visible to a
// later match and could cascade incorrectly.
func pointPass(tm TileMap, snapshot TileMap) bool {
	changed := false
	mask := newPointMask(tm.Width(), tm.Height())

	for y := 0; y < tm.Height(); y++ {
		for x := 0; x < tm.Width(); x++ {
			for _, up := range pointTable {
				tx, ty := x+up.XOff1, y+up.YOff1
				if mask.at(tx, ty) {
					continue
				}
				for _, tmpl := range up.Templates {
					match := true
					for yo := 0; yo < 2 && match; yo++ {
						for xo := 0; xo < 2 && match; xo++ {
							want := tmpl[yo][xo]
							if want == pointIgnore {
								continue
							}
							if !snapshotIsTile(snapshot, x+xo, y+yo, want) {
								match = false
							}
						}
					}
					if match {
						tm.SetCell(tx, ty, up.Tile1)
						mask.set(tx, ty)
						changed = true
						break
					}
				}
			}
		}
	}
	return changed
}
