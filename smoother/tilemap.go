package smoother

import "cavesmith/tile"

// TileMap is the collaborator the smoother reads from and writes to. A
// generator populates one with WALL/FLOOR before the first smooth() call;
// the smoother never constructs one itself.
type TileMap interface {
	Width() int
	Height() int
	IsWall(x, y int) bool
	IsFloor(x, y int) bool
	IsEmpty(x, y int) bool
	IsTile(x, y int, kind tile.Name) bool
	SetCell(x, y int, kind tile.Name)
	// Clone returns an independent deep copy, used once per smooth() call
	// when point smoothing is enabled. The result must not alias the
	// receiver: later writes to the receiver must not be visible through it.
	Clone() TileMap
}

// Grid is the straightforward slice-backed TileMap implementation used by
// the generator, demo and tests.
type Grid struct {
	w, h  int
	cells []tile.Name
}

// NewGrid returns a w x h Grid with every cell set to tile.WALL.
func NewGrid(w, h int) *Grid {
	cells := make([]tile.Name, w*h)
	for i := range cells {
		cells[i] = tile.WALL
	}
	return &Grid{w: w, h: h, cells: cells}
}

func (g *Grid) index(x, y int) int { return y*g.w + x }

func (g *Grid) Width() int  { return g.w }
func (g *Grid) Height() int { return g.h }

// At returns the tile at (x,y).
func (g *Grid) At(x, y int) tile.Name { return g.cells[g.index(x, y)] }

func (g *Grid) IsWall(x, y int) bool  { return tile.IsWall(g.At(x, y)) }
func (g *Grid) IsFloor(x, y int) bool { return tile.IsFloor(g.At(x, y)) }
func (g *Grid) IsEmpty(x, y int) bool { return tile.IsEmpty(g.At(x, y)) }

func (g *Grid) IsTile(x, y int, kind tile.Name) bool {
	return tile.Is(g.At(x, y), kind)
}

func (g *Grid) SetCell(x, y int, kind tile.Name) {
	g.cells[g.index(x, y)] = kind
}

// Clone returns a deep copy backed by its own cell slice.
func (g *Grid) Clone() TileMap {
	cells := make([]tile.Name, len(g.cells))
	copy(cells, g.cells)
	return &Grid{w: g.w, h: g.h, cells: cells}
}
