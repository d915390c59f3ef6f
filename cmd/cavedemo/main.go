// Command cavedemo is a minimal ebiten.Game that runs the generator and
// smoother once per keypress and paints the resulting tile identities as
// flat-color rects, using the same Update/Draw/Layout triad shape as
// game_main/main.go. It is the atlas-mapping stand-in kept out of the
// core packages: a real, non-stubbed consumer of a finished cave.Result,
// nothing more.
package main

import (
	"fmt"
	"image/color"
	"log"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/ebitenutil"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
	"github.com/hajimehoshi/ebiten/v2/text"
	"golang.org/x/image/font/basicfont"

	"cavesmith/cave"
	"cavesmith/caveconfig"
	"cavesmith/tile"
)

const cellSize = 8

// Game holds the demo's state: the active configuration and the most
// recently generated cave.
type Game struct {
	cfg    *caveconfig.CaveConfig
	result cave.Result
	seed   int64
}

func newGame() *Game {
	g := &Game{cfg: caveconfig.NewCaveConfig().SetCaveSize(80, 50)}
	g.regenerate()
	return g
}

func (g *Game) regenerate() {
	g.seed++
	g.cfg.SetSeed(g.seed)
	c := cave.New(g.cfg.Options, g.cfg.GenParams, nil)
	g.result = c.Generate()
}

// Update handles the single input this demo cares about: Space regenerates
// the cave with the next seed.
func (g *Game) Update() error {
	if inpututil.IsKeyJustPressed(ebiten.KeySpace) {
		g.regenerate()
	}
	return nil
}

// Draw paints every cell as a flat-color rect keyed off its tile identity,
// then overlays one status line: the seed, the four smoothing switches and
// the spawn-point count. No tile-kind legend is drawn.
func (g *Game) Draw(screen *ebiten.Image) {
	screen.Fill(color.RGBA{R: 10, G: 10, B: 16, A: 255})

	grid := g.result.Grid
	for y := 0; y < grid.Height(); y++ {
		for x := 0; x < grid.Width(); x++ {
			ebitenutil.DrawRect(screen,
				float64(x*cellSize), float64(y*cellSize),
				float64(cellSize), float64(cellSize),
				colorFor(grid.At(x, y)))
		}
	}

	face := basicfont.Face7x13
	text.Draw(screen, fmt.Sprintf(
		"seed=%d smoothing=%v diagonals=%v corners=%v points=%v spawn_points=%d  [space] regenerate",
		g.seed, g.cfg.Options.Smoothing, g.cfg.Options.RemoveDiagonals,
		g.cfg.Options.SmoothCorners, g.cfg.Options.SmoothPoints, len(g.result.SpawnPoints),
	), face, 8, grid.Height()*cellSize+16, color.White)
}

// Layout reports a fixed window size sized to the configured grid.
func (g *Game) Layout(outsideWidth, outsideHeight int) (int, int) {
	return g.cfg.Options.Width * cellSize, g.cfg.Options.Height*cellSize + 32
}

// colorFor maps a tile identity to a flat preview color: walls dark grey,
// SINGLE a lighter grey, plain floor near-white, dead-ends/corners teal,
// slopes and end-caps amber, cut-slope variants a dimmer amber than their
// uncut counterparts.
func colorFor(t tile.Name) color.Color {
	switch {
	case t == tile.FLOOR:
		return color.RGBA{R: 220, G: 220, B: 225, A: 255}
	case t == tile.WALL:
		return color.RGBA{R: 60, G: 60, B: 68, A: 255}
	case t == tile.SINGLE:
		return color.RGBA{R: 90, G: 90, B: 100, A: 255}
	case tile.IsFloor(t):
		return color.RGBA{R: 80, G: 170, B: 170, A: 255}
	case isCutSlope(t):
		return color.RGBA{R: 150, G: 100, B: 40, A: 255}
	case tile.IsWall(t):
		return color.RGBA{R: 200, G: 140, B: 60, A: 255}
	default:
		return color.RGBA{R: 255, G: 0, B: 255, A: 255}
	}
}

func isCutSlope(t tile.Name) bool {
	switch t {
	case tile.T45a2CT, tile.T45b2CT, tile.T45c2CT, tile.T45d2CT,
		tile.T45abCT, tile.T45adCT, tile.T45baCT, tile.T45bcCT,
		tile.T45cbCT, tile.T45cdCT, tile.T45daCT, tile.T45dcCT:
		return true
	default:
		return false
	}
}

func main() {
	game := newGame()
	ebiten.SetWindowSize(game.cfg.Options.Width*cellSize, game.cfg.Options.Height*cellSize+32)
	ebiten.SetWindowTitle("cavesmith demo")
	if err := ebiten.RunGame(game); err != nil {
		log.Fatal(err)
	}
}
