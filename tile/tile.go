// Package tile defines the closed vocabulary of cave tile identities the
// smoother reads and writes, plus the handful of predicates that classify
// a tile as wall-like, floor-like, or empty.
package tile

// Name identifies a single cave tile's kind.
type Name int

const (
	// FLOOR is the completely empty tile.
	FLOOR Name = iota
	// WALL is the generic, pre-smoothed solid tile fed in by a generator.
	WALL

	// 45 degree slopes. The suffix names which corner is solid: a=TL, b=TR,
	// c=BR, d=BL.
	T45a
	T45b
	T45c
	T45d

	// 60 degree slopes, two tiles tall. 1 is the upper tile, 2 the lower.
	V60a1
	V60a2
	V60b1
	V60b2
	V60c1
	V60c2
	V60d1
	V60d2

	// 30 degree slopes, two tiles wide. 1 is the leftmost tile, 2 the
	// rightmost.
	H30a1
	H30a2
	H30b1
	H30b2
	H30c1
	H30c2
	H30d1
	H30d2

	// END_* are single wall cells with floor on three sides, capping a
	// one-cell-wide wall stub.
	END_N
	END_S
	END_E
	END_W

	// SINGLE is a solid tile with floor on all four cardinal sides.
	SINGLE

	// DEND_* are floor tiles at the end of a one-cell corridor, with both
	// near corners rounded.
	DEND_N
	DEND_S
	DEND_E
	DEND_W

	// CORNR_* are floor tiles with a single rounded right-angle corner.
	CORNR_A
	CORNR_B
	CORNR_C
	CORNR_D

	// T45{x}2CT are 45 degree slopes with both opposite corners cut.
	T45a2CT
	T45b2CT
	T45c2CT
	T45d2CT

	// T45{x}{y}CT are 45 degree slopes with a single corner cut.
	T45abCT
	T45adCT
	T45baCT
	T45bcCT
	T45cbCT
	T45cdCT
	T45daCT
	T45dcCT

	// SOLID and IGNORE are synthetic markers used only inside the smoother's
	// working grids; a generator or renderer never sees them on a real map.
	SOLID
	IGNORE
)

var names = map[Name]string{
	FLOOR: "FLOOR", WALL: "WALL",
	T45a: "T45a", T45b: "T45b", T45c: "T45c", T45d: "T45d",
	V60a1: "V60a1", V60a2: "V60a2", V60b1: "V60b1", V60b2: "V60b2",
	V60c1: "V60c1", V60c2: "V60c2", V60d1: "V60d1", V60d2: "V60d2",
	H30a1: "H30a1", H30a2: "H30a2", H30b1: "H30b1", H30b2: "H30b2",
	H30c1: "H30c1", H30c2: "H30c2", H30d1: "H30d1", H30d2: "H30d2",
	END_N: "END_N", END_S: "END_S", END_E: "END_E", END_W: "END_W",
	SINGLE: "SINGLE",
	DEND_N: "DEND_N", DEND_S: "DEND_S", DEND_E: "DEND_E", DEND_W: "DEND_W",
	CORNR_A: "CORNR_A", CORNR_B: "CORNR_B", CORNR_C: "CORNR_C", CORNR_D: "CORNR_D",
	T45a2CT: "T45a2CT", T45b2CT: "T45b2CT", T45c2CT: "T45c2CT", T45d2CT: "T45d2CT",
	T45abCT: "T45abCT", T45adCT: "T45adCT", T45baCT: "T45baCT", T45bcCT: "T45bcCT",
	T45cbCT: "T45cbCT", T45cdCT: "T45cdCT", T45daCT: "T45daCT", T45dcCT: "T45dcCT",
	SOLID: "SOLID", IGNORE: "IGNORE",
}

func (n Name) String() string {
	if s, ok := names[n]; ok {
		return s
	}
	return "UNKNOWN"
}

// wallLike holds every tile kind whose cell anchors a solid (wall) shape,
// including the half-wall/half-floor end-caps and the cut 45-degree
// decorations.
var wallLike = buildSet(
	WALL,
	T45a, T45b, T45c, T45d,
	V60a1, V60a2, V60b1, V60b2, V60c1, V60c2, V60d1, V60d2,
	H30a1, H30a2, H30b1, H30b2, H30c1, H30c2, H30d1, H30d2,
	END_N, END_S, END_E, END_W,
	SINGLE,
	T45a2CT, T45b2CT, T45c2CT, T45d2CT,
	T45abCT, T45adCT, T45baCT, T45bcCT, T45cbCT, T45cdCT, T45daCT, T45dcCT,
)

// floorLike holds the contiguous group of floor tiles: plain floor plus
// every rounded-corner and rounded-dead-end variant.
var floorLike = buildSet(
	FLOOR,
	DEND_N, DEND_S, DEND_E, DEND_W,
	CORNR_A, CORNR_B, CORNR_C, CORNR_D,
)

func buildSet(names ...Name) map[Name]struct{} {
	s := make(map[Name]struct{}, len(names))
	for _, n := range names {
		s[n] = struct{}{}
	}
	return s
}

// IsWall reports whether n is any solid wall variant, including end-caps
// (whose "wall" half anchors at the cell) and the cut 45-degree slopes.
func IsWall(n Name) bool {
	_, ok := wallLike[n]
	return ok
}

// IsFloor reports whether n is in the floor-like family: plain floor,
// rounded corners, or rounded dead-ends.
func IsFloor(n Name) bool {
	_, ok := floorLike[n]
	return ok
}

// IsEmpty reports whether n is exactly FLOOR.
func IsEmpty(n Name) bool {
	return n == FLOOR
}

// Is reports whether n equals want. It exists so callers that only have a
// Name value (rather than a TileMap) can use the same vocabulary-level
// vocabulary check the TileMap.IsTile collaborator method performs.
func Is(n, want Name) bool {
	return n == want
}
