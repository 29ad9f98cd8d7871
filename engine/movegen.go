package engine

// movegen.go generates the strictly legal moves of a Position in one
// pass: checkers, pins, discovered checks, en-passant king exposure and
// castling-through-check are all resolved before a move is ever emitted,
// so LegalMoves never needs a second legality filter.

// rayDeltas is rookDeltas followed by bishopDeltas; index < 4 is
// orthogonal, index >= 4 is diagonal.
var rayDeltas = [8][2]int{
	{-1, 0}, {1, 0}, {0, -1}, {0, 1},
	{-1, 1}, {1, 1}, {1, -1}, {-1, -1},
}

// raySquares[sq][dir] lists the squares outward from sq along rayDeltas[dir],
// nearest first, stopping at the board edge.
var raySquares [64][8][]Square

func init() {
	for sq := Square(0); sq < 64; sq++ {
		r, f := sq.Rank(), sq.File()
		for d, delta := range rayDeltas {
			r0, f0 := r, f
			for {
				r0, f0 = r0+delta[0], f0+delta[1]
				if r0 < 0 || r0 >= 8 || f0 < 0 || f0 >= 8 {
					break
				}
				raySquares[sq][d] = append(raySquares[sq][d], RankFile(r0, f0))
			}
		}
	}
}

func isOrthogonal(dir int) bool { return dir < 4 }

// attackersWithOccupancy returns the set of by-colored pieces that attack
// sq, computed against the given occupancy rather than the position's
// actual occupancy (used to probe king safety one square away from its
// own square, which the king is vacating).
func attackersWithOccupancy(pos Position, sq Square, by Color, occ Bitboard) Bitboard {
	var att Bitboard
	att |= KnightAttacks(sq) & pos.ByPiece(by, Knight)
	att |= KingAttacks(sq) & pos.ByPiece(by, King)
	att |= RookAttacks(sq, occ) & (pos.ByPiece(by, Rook) | pos.ByPiece(by, Queen))
	att |= BishopAttacks(sq, occ) & (pos.ByPiece(by, Bishop) | pos.ByPiece(by, Queen))
	att |= PawnAttacks(by.Opposite(), sq) & pos.ByPiece(by, Pawn)
	return att
}

func attackers(pos Position, sq Square, by Color) Bitboard {
	return attackersWithOccupancy(pos, sq, by, pos.Occupied())
}

func isAttacked(pos Position, sq Square, by Color, occ Bitboard) bool {
	return attackersWithOccupancy(pos, sq, by, occ) != 0
}

// castleRequirements returns, for a castle flag, the squares that must be
// empty and the squares the king must not be attacked on (including its
// origin and destination).
func castleRequirements(flag MoveFlag) (empty Bitboard, kingPath [3]Square) {
	switch flag {
	case FlagWhiteKingsideCastle:
		return RankFile(0, 5).Bitboard() | RankFile(0, 6).Bitboard(),
			[3]Square{RankFile(0, 4), RankFile(0, 5), RankFile(0, 6)}
	case FlagWhiteQueensideCastle:
		return RankFile(0, 1).Bitboard() | RankFile(0, 2).Bitboard() | RankFile(0, 3).Bitboard(),
			[3]Square{RankFile(0, 4), RankFile(0, 3), RankFile(0, 2)}
	case FlagBlackKingsideCastle:
		return RankFile(7, 5).Bitboard() | RankFile(7, 6).Bitboard(),
			[3]Square{RankFile(7, 4), RankFile(7, 5), RankFile(7, 6)}
	default: // FlagBlackQueensideCastle
		return RankFile(7, 1).Bitboard() | RankFile(7, 2).Bitboard() | RankFile(7, 3).Bitboard(),
			[3]Square{RankFile(7, 4), RankFile(7, 3), RankFile(7, 2)}
	}
}

var castleRightByFlag = map[MoveFlag]int{
	FlagWhiteKingsideCastle:  CastleWhiteKingside,
	FlagWhiteQueensideCastle: CastleWhiteQueenside,
	FlagBlackKingsideCastle:  CastleBlackKingside,
	FlagBlackQueensideCastle: CastleBlackQueenside,
}

func canCastle(pos Position, flag MoveFlag, them Color, occupied Bitboard) bool {
	if !pos.CanCastle(castleRightByFlag[flag]) {
		return false
	}
	empty, kingPath := castleRequirements(flag)
	if occupied&empty != 0 {
		return false
	}
	for _, sq := range kingPath {
		if isAttacked(pos, sq, them, occupied) {
			return false
		}
	}
	return true
}

// LegalMoves returns every legal move of pos. The result is exact: every
// returned move both is pseudo-legal and leaves the mover's own king out
// of check.
func LegalMoves(pos Position) MoveList {
	var ml MoveList

	us := pos.ToMove()
	them := us.Opposite()
	kingSq := pos.KingSquare(us)
	occupied := pos.Occupied()
	ownPieces := pos.ByColor(us)
	enemyPieces := pos.ByColor(them)

	checkers := attackers(pos, kingSq, them)
	numCheckers := checkers.Popcnt()

	var pinCorridor [64]Bitboard
	for i := range pinCorridor {
		pinCorridor[i] = BbFull
	}
	checkMask := BbFull
	if numCheckers == 1 {
		checkMask = checkers
	}

	for dir := 0; dir < 8; dir++ {
		squares := raySquares[kingSq][dir]
		idx1 := -1
		for i, sq := range squares {
			if occupied.Has(sq) {
				idx1 = i
				break
			}
		}
		if idx1 < 0 {
			continue
		}
		first := squares[idx1]

		if enemyPieces.Has(first) {
			k := pos.Get(first).Kind
			matches := (isOrthogonal(dir) && (k == Rook || k == Queen)) ||
				(!isOrthogonal(dir) && (k == Bishop || k == Queen))
			if matches && numCheckers == 1 {
				var line Bitboard
				for _, sq := range squares[:idx1+1] {
					line |= sq.Bitboard()
				}
				checkMask = line
			}
			continue
		}

		// first is a friendly piece: look for a pinning slider beyond it.
		idx2 := -1
		for i := idx1 + 1; i < len(squares); i++ {
			if occupied.Has(squares[i]) {
				idx2 = i
				break
			}
		}
		if idx2 < 0 {
			continue
		}
		second := squares[idx2]
		if !enemyPieces.Has(second) {
			continue
		}
		k := pos.Get(second).Kind
		matches := (isOrthogonal(dir) && (k == Rook || k == Queen)) ||
			(!isOrthogonal(dir) && (k == Bishop || k == Queen))
		if !matches {
			continue
		}
		var corridor Bitboard
		for _, sq := range squares[:idx2+1] {
			corridor |= sq.Bitboard()
		}
		pinCorridor[first] = corridor
	}

	// King moves: evasions always allowed regardless of checkMask, using
	// occupancy with the king itself removed so that a slider's attack
	// through the king's vacated square is still counted.
	occWithoutKing := occupied &^ kingSq.Bitboard()
	kingTargets := KingAttacks(kingSq) &^ ownPieces
	for kingTargets != 0 {
		to := kingTargets.Pop()
		if !isAttacked(pos, to, them, occWithoutKing) {
			ml.Append(MakeMove(kingSq, to, FlagNone))
		}
	}

	if numCheckers == 0 {
		candidateCastles := [2]MoveFlag{FlagWhiteKingsideCastle, FlagWhiteQueensideCastle}
		if us == Black {
			candidateCastles = [2]MoveFlag{FlagBlackKingsideCastle, FlagBlackQueensideCastle}
		}
		for _, flag := range candidateCastles {
			if canCastle(pos, flag, them, occupied) {
				ml.Append(MakeCastle(flag))
			}
		}
	}

	if numCheckers >= 2 {
		return ml
	}

	generateSliderMoves(pos, &ml, us, Bishop, ownPieces, pinCorridor, checkMask)
	generateSliderMoves(pos, &ml, us, Rook, ownPieces, pinCorridor, checkMask)
	generateSliderMoves(pos, &ml, us, Queen, ownPieces, pinCorridor, checkMask)
	generateKnightMoves(pos, &ml, us, ownPieces, pinCorridor, checkMask)
	generatePawnMoves(pos, &ml, us, occupied, enemyPieces, pinCorridor, checkMask, numCheckers, checkers)

	return ml
}

func generateSliderMoves(pos Position, ml *MoveList, us Color, kind Kind, ownPieces Bitboard, pinCorridor [64]Bitboard, checkMask Bitboard) {
	occupied := pos.Occupied()
	bb := pos.ByPiece(us, kind)
	for bb != 0 {
		sq := bb.Pop()
		var attacks Bitboard
		switch kind {
		case Bishop:
			attacks = BishopAttacks(sq, occupied)
		case Rook:
			attacks = RookAttacks(sq, occupied)
		case Queen:
			attacks = QueenAttacks(sq, occupied)
		}
		targets := attacks &^ ownPieces & pinCorridor[sq] & checkMask
		for targets != 0 {
			to := targets.Pop()
			ml.Append(MakeMove(sq, to, FlagNone))
		}
	}
}

func generateKnightMoves(pos Position, ml *MoveList, us Color, ownPieces Bitboard, pinCorridor [64]Bitboard, checkMask Bitboard) {
	bb := pos.ByPiece(us, Knight)
	for bb != 0 {
		sq := bb.Pop()
		targets := KnightAttacks(sq) &^ ownPieces & pinCorridor[sq] & checkMask
		for targets != 0 {
			to := targets.Pop()
			ml.Append(MakeMove(sq, to, FlagNone))
		}
	}
}

var promotionFlags = [4]MoveFlag{FlagPromoteKnight, FlagPromoteBishop, FlagPromoteRook, FlagPromoteQueen}

func appendPawnMove(ml *MoveList, from, to Square, promoteRank int) {
	if to.Rank() == promoteRank {
		for _, flag := range promotionFlags {
			ml.Append(MakeMove(from, to, flag))
		}
		return
	}
	ml.Append(MakeMove(from, to, FlagNone))
}

func generatePawnMoves(pos Position, ml *MoveList, us Color, occupied, enemyPieces Bitboard, pinCorridor [64]Bitboard, checkMask Bitboard, numCheckers int, checkers Bitboard) {
	them := us.Opposite()
	startRank, promoteRank := 1, 7
	if us == Black {
		startRank, promoteRank = 6, 0
	}

	bb := pos.ByPiece(us, Pawn)
	for bb != 0 {
		sq := bb.Pop()
		corridor := pinCorridor[sq]

		oneStep := Forward(us, sq.Bitboard()) &^ occupied
		if oneStep != 0 {
			to := oneStep.AsSquare()
			if corridor.Has(to) && checkMask.Has(to) {
				appendPawnMove(ml, sq, to, promoteRank)
			}
			if sq.Rank() == startRank {
				twoStep := Forward(us, oneStep) &^ occupied
				if twoStep != 0 {
					to2 := twoStep.AsSquare()
					if corridor.Has(to2) && checkMask.Has(to2) {
						ml.Append(MakeMove(sq, to2, FlagDoublePawnAdvance))
					}
				}
			}
		}

		captures := PawnAttacks(us, sq) & enemyPieces & corridor & checkMask
		for captures != 0 {
			to := captures.Pop()
			appendPawnMove(ml, sq, to, promoteRank)
		}

		if pos.EPSquare() != SquareNone && PawnAttacks(us, sq).Has(pos.EPSquare()) {
			epSquare := pos.EPSquare()
			capturedSq := RankFile(sq.Rank(), epSquare.File())

			if !corridor.Has(epSquare) {
				continue
			}
			if numCheckers == 1 {
				checker := checkers.AsSquare()
				if checker != capturedSq && !checkMask.Has(epSquare) {
					continue
				}
			}

			kingSq := pos.KingSquare(us)
			if kingSq.Rank() == sq.Rank() {
				occ2 := occupied &^ sq.Bitboard() &^ capturedSq.Bitboard() | epSquare.Bitboard()
				rookLike := pos.ByPiece(them, Rook) | pos.ByPiece(them, Queen)
				if RookAttacks(kingSq, occ2)&rookLike != 0 {
					continue
				}
			}

			flag := FlagWhiteEnPassant
			if us == Black {
				flag = FlagBlackEnPassant
			}
			ml.Append(MakeMove(sq, epSquare, flag))
		}
	}
}
