package engine

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewEngineDefaults(t *testing.T) {
	e := NewEngine(4, 32, 1024, 0)
	assert.NotNil(t, e.Logger)
	assert.Equal(t, version, e.Version)
}

func TestGetMoveReturnsNullMoveWithNoLegalMoves(t *testing.T) {
	e := NewEngine(4, 32, 1024, 0)
	pos := PositionFromDescription("k7/2Q5/1K6/8/8/8/8/8 b - -")
	var history []uint64
	move, nodes, score, depth := e.GetMove(context.Background(), pos, &history)
	assert.True(t, move.IsNull())
	assert.Equal(t, uint64(0), nodes)
	assert.Equal(t, int32(0), score)
	assert.Equal(t, 0, depth)
}

func TestGetMoveFindsBackRankMate(t *testing.T) {
	e := NewEngine(3, 32, 4096, 0)
	pos := PositionFromDescription("7k/5ppp/8/8/8/8/8/Q3K3 w - -")
	var history []uint64
	move, _, score, depth := e.GetMove(context.Background(), pos, &history)

	require.False(t, move.IsNull())
	assert.Equal(t, RankFile(0, 0), move.From())
	assert.Equal(t, RankFile(7, 0), move.To())
	assert.Greater(t, depth, 0)
	assert.Greater(t, score, int32(mateScore-100))
}

func TestGetMoveTrimsDuplicateTrailingHistoryEntry(t *testing.T) {
	e := NewEngine(2, 32, 1024, 0)
	pos := PositionFromDescription("rnbqkbnr/pppppppp/8/8/8/8/PPPPPPPP/RNBQKBNR w KQkq -")
	history := []uint64{pos.Hash()}

	move, _, _, _ := e.GetMove(context.Background(), pos, &history)
	assert.False(t, move.IsNull())
	// GetMove must not leave the caller's slice mutated.
	require.Len(t, history, 1)
	assert.Equal(t, pos.Hash(), history[0])
}

func TestGetMoveRespectsTimeBudget(t *testing.T) {
	e := NewEngine(64, 64, 4096, 5*time.Millisecond)
	pos := PositionFromDescription("rnbqkbnr/pppppppp/8/8/8/8/PPPPPPPP/RNBQKBNR w KQkq -")
	var history []uint64

	start := time.Now()
	move, _, _, _ := e.GetMove(context.Background(), pos, &history)
	elapsed := time.Since(start)

	assert.False(t, move.IsNull())
	assert.Less(t, elapsed, 2*time.Second, "iterative deepening must stop once the wall-clock budget elapses")
}

func TestGetMoveOnOpeningPositionReturnsLegalMove(t *testing.T) {
	e := NewEngine(4, 32, 4096, 0)
	pos := PositionFromDescription("rnbqkbnr/pppppppp/8/8/8/8/PPPPPPPP/RNBQKBNR w KQkq -")
	var history []uint64
	move, nodes, _, depth := e.GetMove(context.Background(), pos, &history)

	require.False(t, move.IsNull())
	legal := LegalMoves(pos)
	found := false
	for i := 0; i < legal.Len(); i++ {
		if legal.At(i) == move {
			found = true
		}
	}
	assert.True(t, found, "chosen move must be one of the position's legal moves")
	assert.Greater(t, nodes, uint64(0))
	assert.GreaterOrEqual(t, depth, 2)
}
