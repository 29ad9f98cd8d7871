// Command perft counts the leaf nodes of engine.LegalMoves/ApplyMove to a
// given depth, the standard move-generator integration test.
package main

import (
	"flag"
	"fmt"
	"time"

	"github.com/kestrelchess/kestrel/engine"
)

var (
	fen      = flag.String("fen", "startpos", "position to search (or a known name)")
	minDepth = flag.Int("min_depth", 1, "minimum depth to search (inclusive)")
	maxDepth = flag.Int("max_depth", 5, "maximum depth to search (inclusive)")
	depth    = flag.Int("depth", 0, "if non-zero, search only this depth")
)

var knownPositions = map[string]string{
	"startpos": "rnbqkbnr/pppppppp/8/8/8/8/PPPPPPPP/RNBQKBNR w KQkq -",
	"kiwipete": "r3k2r/p1ppqpb1/bn2pnp1/3PN3/1p2P3/2N2Q1p/PPPBBPPP/R3K2R w KQkq -",
	"duplain":  "8/2p5/3p4/KP5r/1R3p1k/8/4P1P1/8 w - -",
}

func perft(pos engine.Position, depth int) uint64 {
	if depth == 0 {
		return 1
	}
	moves := engine.LegalMoves(pos)
	if depth == 1 {
		return uint64(moves.Len())
	}
	var nodes uint64
	for i := 0; i < moves.Len(); i++ {
		nodes += perft(pos.ApplyMove(moves.At(i)), depth-1)
	}
	return nodes
}

func main() {
	flag.Parse()

	description := *fen
	if s, ok := knownPositions[*fen]; ok {
		description = s
	}
	if *depth != 0 {
		*minDepth, *maxDepth = *depth, *depth
	}

	fmt.Printf("Searching position %q\n", description)
	pos := engine.PositionFromDescription(description)

	fmt.Printf("depth        nodes   KNps   elapsed\n")
	fmt.Printf("-----+------------+------+---------\n")
	for d := *minDepth; d <= *maxDepth; d++ {
		start := time.Now()
		nodes := perft(pos, d)
		elapsed := time.Since(start)
		fmt.Printf("%6d %12d %6.f %v\n", d, nodes, float64(nodes)/elapsed.Seconds()/1e3, elapsed)
	}
}
