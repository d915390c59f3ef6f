package smoother

import "cavesmith/pattern"

// Local aliases for the template DSL letters, so the pass tables below read
// exactly like the source repository's character grids instead of being
// cluttered with a package qualifier on every cell.
const (
	X = pattern.X
	B = pattern.B
	S = pattern.S
	N = pattern.N
	M = pattern.M
	O = pattern.O
)
