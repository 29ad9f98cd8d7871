// Command play drives the engine against itself from a starting
// position, printing each chosen move and the board after it.
package main

import (
	"context"
	"flag"
	"fmt"
	"log"
	"os"

	"github.com/kestrelchess/kestrel/engine"
)

var (
	fen       = flag.String("fen", "rnbqkbnr/pppppppp/8/8/8/8/PPPPPPPP/RNBQKBNR w KQkq -", "starting position")
	maxPlies  = flag.Int("max_plies", 80, "stop after this many plies")
	searchDep = flag.Int("search_depth", 6, "iterative-deepening ceiling")
	maxDepth  = flag.Int("max_depth", 64, "absolute recursion ceiling")
	cacheCap  = flag.Int("cache_capacity", 1<<16, "best-move cache capacity")
)

func printBoard(pos engine.Position) {
	for rank := 7; rank >= 0; rank-- {
		for file := 0; file < 8; file++ {
			sq := engine.RankFile(rank, file)
			fmt.Print(pos.Get(sq).String())
		}
		fmt.Println()
	}
}

func main() {
	flag.Parse()
	log.SetOutput(os.Stdout)
	log.SetPrefix("play: ")

	e := engine.NewEngine(*searchDep, *maxDepth, *cacheCap, 0)
	e.Logger = engine.NewLogwLogger()

	pos := engine.PositionFromDescription(*fen)
	var history []uint64
	ctx := context.Background()

	for ply := 0; ply < *maxPlies; ply++ {
		history = append(history, pos.Hash())

		move, nodes, score, depth := e.GetMove(ctx, pos, &history)
		if move.IsNull() {
			fmt.Println("no legal moves: game over")
			break
		}

		fmt.Printf("ply %d: %v (depth=%d nodes=%d score=%d)\n", ply+1, move, depth, nodes, score)
		pos = pos.ApplyMove(move)
		printBoard(pos)
	}
}
