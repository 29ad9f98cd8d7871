package engine

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLegalMoveCountFixtures(t *testing.T) {
	cases := []struct {
		name string
		fen  string
		want int
	}{
		{"startpos", "rnbqkbnr/pppppppp/8/8/8/8/PPPPPPPP/RNBQKBNR w KQkq -", 20},
		{"kiwipete", "r3k2r/p1ppqpb1/bn2pnp1/3PN3/1p2P3/2N2Q1p/PPPBBPPP/R3K2R w KQkq -", 48},
		{"duplain", "8/2p5/3p4/KP5r/1R3p1k/8/4P1P1/8 w - -", 14},
		{"position4", "r3k2r/Pppp1ppp/1b3nbN/nP6/BBP1P3/q4N2/Pp1P2PP/R2Q1RK1 w kq -", 6},
		{"position5", "rnbq1k1r/pp1Pbppp/2p5/8/2B5/8/PPP1NnPP/RNBQK2R w KQ -", 44},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			pos := PositionFromDescription(tc.fen)
			moves := LegalMoves(pos)
			assert.Equal(t, tc.want, moves.Len())
		})
	}
}

func TestBlackToMoveAfterOpenGame(t *testing.T) {
	pos := PositionFromDescription("rnbqkbnr/pppp1ppp/8/4p3/4P3/5N2/PPPP1PPP/RNBQKBNR b KQkq -")
	moves := LegalMoves(pos)
	assert.Equal(t, 29, moves.Len())
}

func TestEnPassanceAppearsAndClears(t *testing.T) {
	pos := PositionFromDescription("rnbqkbnr/pppppppp/8/8/8/8/PPPPPPPP/RNBQKBNR w KQkq -")
	require.Equal(t, SquareNone, pos.EPSquare())

	var m Move
	moves := LegalMoves(pos)
	for i := 0; i < moves.Len(); i++ {
		cand := moves.At(i)
		if cand.IsDoublePawnAdvance() {
			m = cand
			break
		}
	}
	require.False(t, m.IsNull())

	next := pos.ApplyMove(m)
	assert.NotEqual(t, SquareNone, next.EPSquare())

	// Any other move clears it again.
	again := next.ApplyMove(LegalMoves(next).At(0))
	assert.Equal(t, SquareNone, again.EPSquare())
}

func TestEnPassantSelfCheckGuardRejectsExposingCapture(t *testing.T) {
	// White king and a black rook share the 5th rank with the capturing
	// and captured pawns between them; capturing en passant would clear
	// the rank and expose the white king to the rook.
	pos := PositionFromDescription("4k3/8/8/1K1pP2r/8/8/8/8 w - d6")
	moves := LegalMoves(pos)
	for i := 0; i < moves.Len(); i++ {
		assert.False(t, moves.At(i).IsEnPassant(), "en-passant capture must be rejected when it exposes the king")
	}
}

func TestCastleThroughCheckRejected(t *testing.T) {
	// White's king on e1 is not in check, but the black rooks on d8 and
	// f8 attack d1 and f1, squares the king would pass through on the
	// queenside and kingside castles respectively.
	pos := PositionFromDescription("3rkr2/8/8/8/8/8/8/R3K2R w KQ -")
	moves := LegalMoves(pos)
	for i := 0; i < moves.Len(); i++ {
		assert.NotEqual(t, FlagWhiteKingsideCastle, moves.At(i).Flag())
		assert.NotEqual(t, FlagWhiteQueensideCastle, moves.At(i).Flag())
	}
}

func TestCastlingRightsEachRemovable(t *testing.T) {
	// LegalMoves yields only the side to move's castles, so the placement
	// is counted once with White to move and once with Black to move.
	countCastles := func(rights string) int {
		count := 0
		for _, side := range []string{"w", "b"} {
			moves := LegalMoves(PositionFromDescription("r3k2r/8/8/8/8/8/8/R3K2R " + side + " " + rights + " -"))
			for i := 0; i < moves.Len(); i++ {
				if moves.At(i).IsCastle() {
					count++
				}
			}
		}
		return count
	}
	assert.Equal(t, 4, countCastles("KQkq"))

	assert.Equal(t, 3, countCastles("Qkq"))
}

func TestApplyCastleMovesKingAndRookAndClearsRights(t *testing.T) {
	pos := PositionFromDescription("rnbqkb1r/ppppp1pp/5n2/4Pp2/2B5/5N2/PPPP1PPP/RNBQK2R w KQkq -")
	var castle Move
	moves := LegalMoves(pos)
	for i := 0; i < moves.Len(); i++ {
		if moves.At(i).Flag() == FlagWhiteKingsideCastle {
			castle = moves.At(i)
		}
	}
	require.False(t, castle.IsNull())

	next := pos.ApplyMove(castle)
	assert.Equal(t, Piece{Color: White, Kind: King}, next.Get(RankFile(0, 6)))
	assert.Equal(t, Piece{Color: White, Kind: Rook}, next.Get(RankFile(0, 5)))
	assert.False(t, next.CanCastle(CastleWhiteKingside))
	assert.False(t, next.CanCastle(CastleWhiteQueenside))
}
