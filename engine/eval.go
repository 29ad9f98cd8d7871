package engine

// eval.go implements the static evaluator: a small fixed-weight linear
// scorer with named weight tables and a midgame/endgame blend driven by
// remaining material.

// Placement templates, laid out as rank-7-to-rank-0 strings, then folded
// into bitboards.
var (
	centerTopTier    = squaresFromRanks([8]string{
		"........",
		"........",
		"..XXXX..",
		".XXXXXX.",
		".XXXXXX.",
		"..XXXX..",
		"........",
		"........",
	})
	centerSecondTier = squaresFromRanks([8]string{
		"........",
		".XXXXXX.",
		".X....X.",
		".X....X.",
		".X....X.",
		".X....X.",
		".XXXXXX.",
		"........",
	})
	knightCenter = squaresFromRanks([8]string{
		"........",
		"........",
		"..XXXX..",
		"..XXXX..",
		"..XXXX..",
		"..XXXX..",
		"........",
		"........",
	})
)

// squaresFromRanks turns a top-down (rank 7 first) ASCII template into a
// Bitboard, 'X' marking a member square.
func squaresFromRanks(rows [8]string) Bitboard {
	var bb Bitboard
	for i, row := range rows {
		rank := 7 - i
		for file := 0; file < 8 && file < len(row); file++ {
			if row[file] == 'X' {
				bb |= RankFile(rank, file).Bitboard()
			}
		}
	}
	return bb
}

// kingShieldTemplates returns the pawn-shield squares directly in front of
// a king on kingSq (one rank forward, file-1..file+1) and the template one
// rank further still.
func kingShieldTemplates(us Color, kingSq Square) (near, far Bitboard) {
	file := kingSq.File()
	lo, hi := file-1, file+1
	if lo < 0 {
		lo = 0
	}
	if hi > 7 {
		hi = 7
	}
	nearRank := kingSq.Rank() + 1
	farRank := kingSq.Rank() + 2
	if us == Black {
		nearRank = kingSq.Rank() - 1
		farRank = kingSq.Rank() - 2
	}
	for f := lo; f <= hi; f++ {
		if nearRank >= 0 && nearRank < 8 {
			near |= RankFile(nearRank, f).Bitboard()
		}
		if farRank >= 0 && farRank < 8 {
			far |= RankFile(farRank, f).Bitboard()
		}
	}
	return near, far
}

// Fixed term weights for the linear scorer below.
const (
	pawnValue   = 100
	queenValue  = 900
	weightPawnPlacement    = 3
	weightPawnStructure    = 35
	weightKnightCentrality = 5
	weightBishopPlacement  = 15
	weightRookActivity     = 20
	weightKingShield       = 35
)

var rookValueByCount = [...]int32{0, 500, 900, 1300, 1700, 2100, 2500}

// dynamicKnightValue rises with total pawn count (knights thrive in
// closed positions); bishopValue falls with it (bishops thrive when open).
func dynamicKnightValue(pawnCount int) int32 { return int32(300 + 6*pawnCount) }
func dynamicBishopValue(pawnCount int) int32 { return int32(380 - 4*pawnCount) }

func rookValue(rookIndex int) int32 {
	if rookIndex >= len(rookValueByCount) {
		rookIndex = len(rookValueByCount) - 1
	}
	return rookValueByCount[rookIndex]
}

// endgameFactor scales 0 (full material) toward higher values as
// non-pawn material is traded off; each minor piece counts 1, rook 2,
// queen 4.
func endgameFactor(pos Position) int32 {
	total := int32(0)
	for c := Color(0); c < ColorCount; c++ {
		total += int32(pos.ByPiece(c, Knight).Popcnt())
		total += int32(pos.ByPiece(c, Bishop).Popcnt())
		total += 2 * int32(pos.ByPiece(c, Rook).Popcnt())
		total += 4 * int32(pos.ByPiece(c, Queen).Popcnt())
	}
	const maxMaterial = 2 * (2 + 2 + 2*2 + 4) // 2 knights+2 bishops+2 rooks+1 queen, per side
	if total > maxMaterial {
		total = maxMaterial
	}
	return maxMaterial - total
}

// Evaluate returns a static score for pos: positive favors White,
// negative favors Black.
func Evaluate(pos Position) int32 {
	var score int32
	endgame := endgameFactor(pos)
	const maxEndgame = 2 * (2 + 2 + 2*2 + 4)

	for c := Color(0); c < ColorCount; c++ {
		sign := Color(c).Sign()
		pawnCount := pos.ByPiece(c, Pawn).Popcnt()

		score += sign * int32(pawnCount) * pawnValue
		score += sign * int32(pos.ByPiece(c, Knight).Popcnt()) * dynamicKnightValue(pawnCount)
		score += sign * int32(pos.ByPiece(c, Bishop).Popcnt()) * dynamicBishopValue(pawnCount)
		score += sign * int32(pos.ByPiece(c, Queen).Popcnt()) * queenValue

		score += sign * rookValue(pos.ByPiece(c, Rook).Popcnt())

		score += sign * pawnPlacementTerm(pos, c)
		score += sign * pawnPromotionProximity(pos, c, endgame, maxEndgame)
		score += sign * pawnStructureTerm(pos, c)
		score += sign * knightCentralityTerm(pos, c)
		score += sign * bishopPlacementTerm(pos, c)
		score += sign * rookActivityTerm(pos, c)
		score += sign * kingShieldTerm(pos, c)
	}
	return score
}

func pawnPlacementTerm(pos Position, c Color) int32 {
	pawns := pos.ByPiece(c, Pawn)
	top := (pawns & centerTopTier).Popcnt()
	second := (pawns & centerSecondTier).Popcnt()
	return int32(2*top+second) * weightPawnPlacement
}

func pawnPromotionProximity(pos Position, c Color, endgame, maxEndgame int32) int32 {
	pawns := pos.ByPiece(c, Pawn)
	var weighted int32
	for pawns != 0 {
		sq := pawns.Pop()
		rank := sq.Rank()
		var advancement int
		if c == White {
			advancement = rank - 3 // rank 4 (index 4) is the first rewarded tier (5th rank)
		} else {
			advancement = 4 - rank
		}
		if advancement >= 1 && advancement <= 5 {
			weighted += int32(advancement)
		}
	}
	if maxEndgame == 0 {
		return 0
	}
	return weighted * endgame / maxEndgame
}

func pawnStructureTerm(pos Position, c Color) int32 {
	pawns := pos.ByPiece(c, Pawn)
	var penalty int32
	for file := 0; file < 8; file++ {
		onFile := (pawns & FileBb(file)).Popcnt()
		if onFile == 0 {
			continue
		}
		if onFile > 1 {
			penalty += int32(onFile - 1)
		}
		isolated := true
		if file > 0 && pawns&FileBb(file-1) != 0 {
			isolated = false
		}
		if file < 7 && pawns&FileBb(file+1) != 0 {
			isolated = false
		}
		if isolated {
			penalty++
		}
	}
	return -penalty * weightPawnStructure
}

func knightCentralityTerm(pos Position, c Color) int32 {
	return int32((pos.ByPiece(c, Knight) & knightCenter).Popcnt()) * weightKnightCentrality
}

func bishopPlacementTerm(pos Position, c Color) int32 {
	bishops := pos.ByPiece(c, Bishop)
	top := (bishops & centerTopTier).Popcnt()
	second := (bishops & centerSecondTier).Popcnt()
	return int32(2*top+second) * weightBishopPlacement
}

func rookActivityTerm(pos Position, c Color) int32 {
	rooks := pos.ByPiece(c, Rook)
	allPawns := pos.ByPiece(White, Pawn) | pos.ByPiece(Black, Pawn)
	var score int32
	var ranks, files [8]bool
	var rankCount, fileCount int
	rr := rooks
	for rr != 0 {
		sq := rr.Pop()
		if allPawns&FileBb(sq.File()) == 0 {
			score++
		}
		if !ranks[sq.Rank()] {
			ranks[sq.Rank()] = true
			rankCount++
		}
		if !files[sq.File()] {
			files[sq.File()] = true
			fileCount++
		}
	}
	if rooks.Popcnt() == 2 {
		if rankCount == 1 || fileCount == 1 {
			score++
		}
	}
	return score * weightRookActivity
}

func kingShieldTerm(pos Position, c Color) int32 {
	kingSq := pos.KingSquare(c)
	backRank := 0
	if c == Black {
		backRank = 7
	}
	if kingSq.Rank() != backRank {
		return 0
	}
	near, far := kingShieldTemplates(c, kingSq)
	pawns := pos.ByPiece(c, Pawn)
	count := 2*(pawns&near).Popcnt() + (pawns & far).Popcnt()
	return int32(count) * weightKingShield
}
