package engine

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestPositionFromDescriptionIgnoresTrailingCounters(t *testing.T) {
	withCounters := PositionFromDescription("rnbqkbnr/pppppppp/8/8/8/8/PPPPPPPP/RNBQKBNR w KQkq - 0 1")
	withoutCounters := PositionFromDescription("rnbqkbnr/pppppppp/8/8/8/8/PPPPPPPP/RNBQKBNR w KQkq -")
	assert.Equal(t, withoutCounters, withCounters)
}

func TestPositionFromDescriptionSkipsUnrecognizedPlacementCharacters(t *testing.T) {
	pos := PositionFromDescription("8/8/8/8/8/8/8/4K3 w - -")
	weird := PositionFromDescription("8/8/8/8/8/8/8/4K?3 w - -")
	assert.Equal(t, pos.Get(RankFile(0, 4)), weird.Get(RankFile(0, 4)))
}

func TestPositionFromDescriptionEmptyStringIsEmptyBoard(t *testing.T) {
	pos := PositionFromDescription("")
	assert.True(t, pos.Occupied() == BbEmpty)
	assert.Equal(t, White, pos.ToMove())
	assert.Equal(t, SquareNone, pos.EPSquare())
}

func TestSquareFromStringRejectsOutOfRange(t *testing.T) {
	_, err := SquareFromString("i9")
	assert.Error(t, err)
	_, err = SquareFromString("e4")
	assert.NoError(t, err)
}

func TestSplitFieldsCollapsesRepeatedSpaces(t *testing.T) {
	fields := splitFields("a   b c")
	assert.Equal(t, []string{"a", "b", "c"}, fields)
}
