package ecsspawn

import (
	"testing"

	"cavesmith/smoother"
	"cavesmith/tile"
)

func TestSpawnFromGridTagsCornersAndDeadEnds(t *testing.T) {
	grid := smoother.NewGrid(5, 5)
	for y := 0; y < 5; y++ {
		for x := 0; x < 5; x++ {
			grid.SetCell(x, y, tile.FLOOR)
		}
	}
	grid.SetCell(1, 1, tile.CORNR_A)
	grid.SetCell(3, 3, tile.DEND_S)

	m := NewManager()
	n := SpawnFromGrid(m, grid)

	if n != 2 {
		t.Fatalf("SpawnFromGrid returned %d, want 2", n)
	}

	points := SpawnPoints(m)
	if len(points) != 2 {
		t.Fatalf("SpawnPoints returned %d entities, want 2", len(points))
	}

	var sawCorner, sawDeadEnd bool
	for _, p := range points {
		switch {
		case p.X == 1 && p.Y == 1:
			if p.Kind != KindCorner || p.Tile != tile.CORNR_A {
				t.Errorf("corner spawn = %+v, want KindCorner/CORNR_A", p)
			}
			sawCorner = true
		case p.X == 3 && p.Y == 3:
			if p.Kind != KindDeadEnd || p.Tile != tile.DEND_S {
				t.Errorf("dead-end spawn = %+v, want KindDeadEnd/DEND_S", p)
			}
			sawDeadEnd = true
		}
	}
	if !sawCorner || !sawDeadEnd {
		t.Errorf("missing expected spawn points: corner=%v deadEnd=%v", sawCorner, sawDeadEnd)
	}
}

func TestSpawnFromGridIgnoresPlainFloorAndWall(t *testing.T) {
	grid := smoother.NewGrid(3, 3)
	grid.SetCell(1, 1, tile.FLOOR)
	grid.SetCell(2, 1, tile.FLOOR)
	m := NewManager()

	if n := SpawnFromGrid(m, grid); n != 0 {
		t.Fatalf("SpawnFromGrid on a WALL/FLOOR-only grid returned %d, want 0", n)
	}
}

// TestTwoManagersDoNotStompEachOther guards against SpawnPointComponent/
// SpawnPointTag living as package-level state: creating a second Manager
// must not break queries against the first.
func TestTwoManagersDoNotStompEachOther(t *testing.T) {
	gridA := smoother.NewGrid(3, 3)
	for y := 0; y < 3; y++ {
		for x := 0; x < 3; x++ {
			gridA.SetCell(x, y, tile.FLOOR)
		}
	}
	gridA.SetCell(1, 1, tile.CORNR_A)

	first := NewManager()
	SpawnFromGrid(first, gridA)

	gridB := smoother.NewGrid(3, 3)
	for y := 0; y < 3; y++ {
		for x := 0; x < 3; x++ {
			gridB.SetCell(x, y, tile.FLOOR)
		}
	}
	gridB.SetCell(1, 1, tile.DEND_N)

	second := NewManager()
	SpawnFromGrid(second, gridB)

	firstPoints := SpawnPoints(first)
	if len(firstPoints) != 1 {
		t.Fatalf("first manager's SpawnPoints returned %d after a second Manager was created, want 1", len(firstPoints))
	}
	if firstPoints[0].Kind != KindCorner {
		t.Errorf("first manager's spawn point kind = %v, want KindCorner", firstPoints[0].Kind)
	}

	secondPoints := SpawnPoints(second)
	if len(secondPoints) != 1 {
		t.Fatalf("second manager's SpawnPoints returned %d, want 1", len(secondPoints))
	}
	if secondPoints[0].Kind != KindDeadEnd {
		t.Errorf("second manager's spawn point kind = %v, want KindDeadEnd", secondPoints[0].Kind)
	}
}

func TestSpawnKindString(t *testing.T) {
	if KindCorner.String() != "corner" {
		t.Errorf("KindCorner.String() = %q, want %q", KindCorner.String(), "corner")
	}
	if KindDeadEnd.String() != "dead_end" {
		t.Errorf("KindDeadEnd.String() = %q, want %q", KindDeadEnd.String(), "dead_end")
	}
}
