package engine

import (
	"context"
	"time"

	"github.com/seekerror/build"
)

var version = build.NewVersion(0, 1, 0)

// Engine is the top-level handle: it owns the best-move cache and the
// search depth configuration, and wraps the single GetMove entry point
// that drives iterative deepening.
type Engine struct {
	searchDepth int
	maxDepth    int

	cache *bestMoveCache
	tc    *timeControl

	Logger  Logger
	Version build.Version
}

// NewEngine creates an engine handle with an empty best-move cache.
// searchDepth is the iterative-deepening ceiling under no time pressure;
// maxDepth bounds the absolute recursion depth (including the hand-off
// to quiescence); cacheCapacity bounds the best-move cache's distinct
// positions; timeBudget of zero means "no limit".
func NewEngine(searchDepth, maxDepth, cacheCapacity int, timeBudget time.Duration) *Engine {
	return &Engine{
		searchDepth: searchDepth,
		maxDepth:    maxDepth,
		cache:       newBestMoveCache(cacheCapacity),
		tc:          newTimeControl(timeBudget),
		Logger:      NulLogger{},
		Version:     version,
	}
}

// GetMove computes the engine's chosen move for pos. history is the
// caller-owned sequence of hash keys of plies actually played, including
// pos itself; it is borrowed for the duration of this call and its
// contents are never changed by GetMove. Returns NullMove (the empty
// sentinel) when pos has no legal moves.
func (e *Engine) GetMove(ctx context.Context, pos Position, history *[]uint64) (move Move, nodes uint64, score int32, depthReached int) {
	legal := LegalMoves(pos)
	if legal.Len() == 0 {
		return NullMove, 0, 0, 0
	}
	move = legal.At(0)

	hash := pos.Hash()
	trimmed := *history
	if n := len(trimmed); n > 0 && trimmed[n-1] == hash {
		// The caller already pushed pos onto its own history; drop that
		// entry for the duration of search, which pushes it itself and
		// would otherwise double-count it for threefold repetition.
		trimmed = trimmed[:n-1]
	}

	e.tc.Start()
	stopped := false

	for depth := 2; depth <= e.searchDepth; depth++ {
		e.Logger.BeginSearch(ctx, depth)

		h := trimmed
		var iterNodes uint64
		iterScore, iterMove := search(pos, depth, 0, e.maxDepth, -mateScore-1, mateScore+1, &h, e.cache, e.tc, &iterNodes, &stopped)
		nodes += iterNodes

		if stopped {
			e.Logger.EndSearch(ctx, depth, iterScore, nodes, iterMove)
			break
		}

		move, score, depthReached = iterMove, iterScore, depth
		e.Logger.EndSearch(ctx, depth, iterScore, nodes, iterMove)
	}

	return move, nodes, score, depthReached
}
