package engine

// Move is a packed 16-bit move record: bits 0..5 origin square, bits
// 6..11 target square, bits 12..15 a 4-bit flag. Castling moves encode
// origin=target=0; the flag alone identifies which castle.
type Move uint16

// MoveFlag is the closed set of 4-bit move flags. FlagNone (0b1111)
// marks an ordinary push or capture with no special handling; the
// eleven other values each name one special case.
type MoveFlag uint8

const (
	FlagPromoteKnight MoveFlag = iota
	FlagPromoteBishop
	FlagPromoteRook
	FlagPromoteQueen
	FlagWhiteKingsideCastle
	FlagWhiteQueensideCastle
	FlagBlackKingsideCastle
	FlagBlackQueensideCastle
	FlagWhiteEnPassant
	FlagBlackEnPassant
	FlagDoublePawnAdvance

	flagMask         = 0xF
	FlagNone MoveFlag = flagMask
)

// NullMove is the empty-sentinel move: all bits zero, so it is also the
// zero value of Move. It reads as origin=target=0 with flag
// FlagPromoteKnight, which is never a legal move (a move cannot stay on
// the same square).
const NullMove Move = 0

// MakeMove packs origin, target and flag into a Move.
func MakeMove(from, to Square, flag MoveFlag) Move {
	return Move(from) | Move(to)<<6 | Move(flag)<<12
}

// MakeCastle builds one of the four castling moves; origin/target are
// both square 0 by convention, the flag alone carries the meaning.
func MakeCastle(flag MoveFlag) Move {
	return Move(flag) << 12
}

func (m Move) From() Square { return Square(m & 0x3F) }
func (m Move) To() Square   { return Square((m >> 6) & 0x3F) }
func (m Move) Flag() MoveFlag {
	return MoveFlag((m >> 12) & flagMask)
}

func (m Move) IsNull() bool {
	return m == NullMove
}

func (m Move) IsPromotion() bool {
	f := m.Flag()
	return f >= FlagPromoteKnight && f <= FlagPromoteQueen
}

// PromotionKind returns the kind promoted to; result is undefined unless
// IsPromotion is true.
func (m Move) PromotionKind() Kind {
	switch m.Flag() {
	case FlagPromoteKnight:
		return Knight
	case FlagPromoteBishop:
		return Bishop
	case FlagPromoteRook:
		return Rook
	default:
		return Queen
	}
}

func (m Move) IsCastle() bool {
	f := m.Flag()
	return f >= FlagWhiteKingsideCastle && f <= FlagBlackQueensideCastle
}

func (m Move) IsEnPassant() bool {
	f := m.Flag()
	return f == FlagWhiteEnPassant || f == FlagBlackEnPassant
}

func (m Move) IsDoublePawnAdvance() bool {
	return m.Flag() == FlagDoublePawnAdvance
}

// castleKingSquares returns the king's (from, to) squares for a castle
// flag, used both for board updates and for rendering the move as LAN.
func castleKingSquares(flag MoveFlag) (from, to Square) {
	switch flag {
	case FlagWhiteKingsideCastle:
		return RankFile(0, 4), RankFile(0, 6)
	case FlagWhiteQueensideCastle:
		return RankFile(0, 4), RankFile(0, 2)
	case FlagBlackKingsideCastle:
		return RankFile(7, 4), RankFile(7, 6)
	default: // FlagBlackQueensideCastle
		return RankFile(7, 4), RankFile(7, 2)
	}
}

// castleRookSquares returns the rook's (from, to) squares for a castle flag.
func castleRookSquares(flag MoveFlag) (from, to Square) {
	switch flag {
	case FlagWhiteKingsideCastle:
		return RankFile(0, 7), RankFile(0, 5)
	case FlagWhiteQueensideCastle:
		return RankFile(0, 0), RankFile(0, 3)
	case FlagBlackKingsideCastle:
		return RankFile(7, 7), RankFile(7, 5)
	default: // FlagBlackQueensideCastle
		return RankFile(7, 0), RankFile(7, 3)
	}
}

var promotionLetter = map[Kind]byte{
	Knight: 'n',
	Bishop: 'b',
	Rook:   'r',
	Queen:  'q',
}

// UCI renders m in long algebraic notation, the transport format
// external collaborators (a UCI-speaking GUI) expect.
func (m Move) UCI() string {
	if m.IsCastle() {
		from, to := castleKingSquares(m.Flag())
		return from.String() + to.String()
	}
	s := m.From().String() + m.To().String()
	if m.IsPromotion() {
		s += string(promotionLetter[m.PromotionKind()])
	}
	return s
}

func (m Move) String() string {
	return m.UCI()
}
