// Package ecsspawn tags a smoothed cave's notable floor tiles — rounded
// corners and dead-end corridor termini — as spawn-point entities on a
// bytearena/ecs world, using the common.EntityManager /
// component+tag registration idiom (common/ecsutil.go, world/overworld/init.go).
// It gives the generator's output a real downstream ECS consumer, the way
// a cave generator feeds faction start positions into the
// wider world.
package ecsspawn

import (
	"github.com/bytearena/ecs"

	"cavesmith/smoother"
	"cavesmith/tile"
)

// SpawnKind classifies why a cell was chosen as a spawn point.
type SpawnKind int

const (
	// KindCorner marks a rounded right-angle corner (tile.CORNR_*).
	KindCorner SpawnKind = iota
	// KindDeadEnd marks a rounded corridor terminus (tile.DEND_*).
	KindDeadEnd
)

func (k SpawnKind) String() string {
	switch k {
	case KindCorner:
		return "corner"
	case KindDeadEnd:
		return "dead_end"
	default:
		return "unknown"
	}
}

// SpawnPointData is the pure-data component attached to every spawn-point
// entity — no logic, following the package's *Data component convention.
type SpawnPointData struct {
	X, Y int
	Kind SpawnKind
	Tile tile.Name
}

// Manager wraps an *ecs.Manager the way common.EntityManager wraps one,
// trimmed to the single tag ecsspawn needs. SpawnPointComponent and
// SpawnPointTag are per-Manager fields rather than package state, since a
// cavesmith caller may legitimately want more than one independent ECS
// world at once (e.g. one cave preview per ebiten frame in tests) —
// package-level vars would have one Manager's registration stomp
// another's, leaving the first Manager's SpawnPoints query bound to the
// second world's component.
type Manager struct {
	World               *ecs.Manager
	SpawnPointComponent *ecs.Component
	SpawnPointTag       ecs.Tag
}

// NewManager returns a Manager with its own SpawnPointComponent/
// SpawnPointTag registered fresh.
func NewManager() *Manager {
	world := ecs.NewManager()
	component := world.NewComponent()
	return &Manager{
		World:               world,
		SpawnPointComponent: component,
		SpawnPointTag:       ecs.BuildTag(component),
	}
}

// SpawnFromGrid walks every cell of grid and creates a spawn-point entity
// for each corner or dead-end tile the corner pass produced. It returns
// the number of entities created.
func SpawnFromGrid(m *Manager, grid *smoother.Grid) int {
	count := 0
	for y := 0; y < grid.Height(); y++ {
		for x := 0; x < grid.Width(); x++ {
			k, ok := classify(grid.At(x, y))
			if !ok {
				continue
			}
			spawn(m, x, y, k, grid.At(x, y))
			count++
		}
	}
	return count
}

func classify(t tile.Name) (SpawnKind, bool) {
	switch t {
	case tile.CORNR_A, tile.CORNR_B, tile.CORNR_C, tile.CORNR_D:
		return KindCorner, true
	case tile.DEND_N, tile.DEND_S, tile.DEND_E, tile.DEND_W:
		return KindDeadEnd, true
	default:
		return 0, false
	}
}

func spawn(m *Manager, x, y int, kind SpawnKind, t tile.Name) *ecs.Entity {
	entity := m.World.NewEntity()
	entity.AddComponent(m.SpawnPointComponent, &SpawnPointData{X: x, Y: y, Kind: kind, Tile: t})
	return entity
}

// SpawnPoints returns the SpawnPointData of every spawn-point entity
// currently in m, in query order.
func SpawnPoints(m *Manager) []*SpawnPointData {
	var out []*SpawnPointData
	for _, res := range m.World.Query(m.SpawnPointTag) {
		data := res.Components[m.SpawnPointComponent].(*SpawnPointData)
		out = append(out, data)
	}
	return out
}
