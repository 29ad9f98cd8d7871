package engine

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestQSearchQuietPositionReturnsStandPat(t *testing.T) {
	pos := PositionFromDescription("rnbqkbnr/pppppppp/8/8/8/8/PPPPPPPP/RNBQKBNR w KQkq -")
	assert.Equal(t, Evaluate(pos), qSearch(pos, -mateScore-1, mateScore+1, SquareNone))
}

func TestQSearchFindsAWinningCapture(t *testing.T) {
	// White to move, a free queen capture is on offer; quiescence must
	// find the material swing even though it is one ply below the call.
	pos := PositionFromDescription("4k3/8/8/8/4q3/8/4R3/4K3 w - -")
	score := qSearch(pos, -mateScore-1, mateScore+1, SquareNone)
	assert.Greater(t, score, Evaluate(pos))
}

func TestQSearchStopsAtStandPatWhenNoCaptures(t *testing.T) {
	pos := PositionFromDescription("4k3/8/8/8/8/8/8/R3K3 w - -")
	assert.Equal(t, Evaluate(pos), qSearch(pos, -mateScore-1, mateScore+1, SquareNone))
}

func TestAdjustMateScoreFadesTowardZero(t *testing.T) {
	assert.Equal(t, mateScore-1, int(adjustMateScore(mateScore)))
	assert.Equal(t, -(mateScore - 1), int(adjustMateScore(-mateScore)))
	assert.Equal(t, 0, int(adjustMateScore(0)))
}

func TestIsCaptureMoveDetectsEnPassantAndOrdinaryCaptures(t *testing.T) {
	pos := PositionFromDescription("4k3/8/8/3pP3/8/8/8/4K3 w - d6")
	moves := LegalMoves(pos)
	found := false
	for i := 0; i < moves.Len(); i++ {
		if moves.At(i).IsEnPassant() {
			found = true
			assert.True(t, isCaptureMove(pos, moves.At(i)))
		}
	}
	assert.True(t, found, "fixture should offer an en-passant capture")
}
