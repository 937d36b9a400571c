package board

import "fmt"

// Debug gates the internal invariant assertions: anything besides a
// malformed FEN or an illegal manual move is treated as a can't-happen
// invariant violation and only checked when this flag is on.
var Debug = false

func assert(cond bool, format string, args ...any) {
	if Debug && !cond {
		panic(fmt.Sprintf("board invariant violated: "+format, args...))
	}
}
