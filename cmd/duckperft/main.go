// Command duckperft is a debug driver over internal/board: perft node
// counts and FEN round-tripping.
package main

import (
	"flag"
	"fmt"
	"log"
	"os"

	"github.com/duckchess/duckcore/internal/board"
)

func main() {
	fen := flag.String("fen", board.StartFEN, "starting position, as extended FEN")
	depth := flag.Int("depth", 4, "perft depth")
	divide := flag.Bool("divide", false, "print a per-root-move node count breakdown")
	flag.Parse()

	pos, err := board.ParseFEN(*fen)
	if err != nil {
		log.Fatalf("parsing FEN %q: %v", *fen, err)
	}

	roundTrip := pos.ToFEN()
	if roundTrip != *fen {
		fmt.Fprintf(os.Stderr, "note: FEN does not round-trip byte-for-byte: got %q\n", roundTrip)
	}

	if *divide {
		divideCounts(pos, *depth)
		return
	}

	nodes := perft(pos, *depth)
	fmt.Printf("perft(%d) from %q = %d\n", *depth, *fen, nodes)
}

// perft counts leaf positions reachable in exactly depth half-turns,
// over Duck Chess's four-sub-turn move stream.
func perft(pos *board.Position, depth int) uint64 {
	if depth == 0 {
		return 1
	}

	moves := pos.GenerateLegalMoves()
	if depth == 1 {
		return uint64(moves.Len())
	}

	var nodes uint64
	for i := 0; i < moves.Len(); i++ {
		pos.MakeMove(moves.Get(i))
		nodes += perft(pos, depth-1)
		pos.UnmakeMove()
	}
	return nodes
}

// divideCounts prints perft(depth-1) under each root move, the standard
// perft-divide debugging aid for isolating a move-generation bug to a
// specific root move.
func divideCounts(pos *board.Position, depth int) {
	if depth <= 0 {
		fmt.Println("divide requires depth >= 1")
		return
	}

	moves := pos.GenerateLegalMoves()
	var total uint64
	for i := 0; i < moves.Len(); i++ {
		m := moves.Get(i)
		pos.MakeMove(m)
		count := perft(pos, depth-1)
		pos.UnmakeMove()
		total += count
		fmt.Printf("%s: %d\n", m.String(), count)
	}
	fmt.Printf("total: %d\n", total)
}
