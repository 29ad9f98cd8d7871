package engine

// ordering.go implements the move-promise score used to sort each
// node's children: an MVV-LVA capture term, a placement-delta term, and
// a best-move cache lookup that dominates when it hits.

func pieceValue(k Kind) int32 {
	switch k {
	case Pawn:
		return 100
	case Knight:
		return 300
	case Bishop:
		return 330
	case Rook:
		return 500
	case Queen:
		return 900
	default:
		return 0
	}
}

// placementDelta approximates the positive placement-score change a
// quiet pawn/knight/bishop move contributes, reusing the same placement
// templates the evaluator scores with.
func placementDelta(pos Position, m Move, moving Piece) int32 {
	from, to := m.From(), m.To()
	var before, after int32
	switch moving.Kind {
	case Pawn:
		before = centerScore(from, centerTopTier, centerSecondTier)
		after = centerScore(to, centerTopTier, centerSecondTier)
	case Knight:
		if knightCenter.Has(from) {
			before = 1
		}
		if knightCenter.Has(to) {
			after = 1
		}
	case Bishop:
		before = centerScore(from, centerTopTier, centerSecondTier)
		after = centerScore(to, centerTopTier, centerSecondTier)
	default:
		return 0
	}
	return after - before
}

func centerScore(sq Square, top, second Bitboard) int32 {
	if top.Has(sq) {
		return 2
	}
	if second.Has(sq) {
		return 1
	}
	return 0
}

// movePromise scores m for move ordering at pos, consulting cached as
// the best-move cache entries recorded for this position (nil if none).
func movePromise(pos Position, m Move, cached []cacheEntry) int32 {
	sign := pos.ToMove().Sign()

	for _, entry := range cached {
		if entry.move == m {
			return 3000*sign + entry.score
		}
	}

	var score int32
	moving := pos.Get(m.From())
	if m.IsCastle() {
		score = 10 * sign
	} else {
		switch {
		case m.IsEnPassant():
			score = 20 * sign
		case m.IsDoublePawnAdvance():
			score = 10 * sign
		case m.IsPromotion():
			target := pos.Get(m.To())
			base := int32(90)
			if m.PromotionKind() != Queen {
				base = 20
			}
			if !target.IsNone() {
				base -= pieceValue(target.Kind)
			}
			score = base * sign
		default:
			target := pos.Get(m.To())
			if !target.IsNone() {
				score = (10*pieceValue(target.Kind) - pieceValue(moving.Kind)) * sign
			} else {
				score = placementDelta(pos, m, moving) * sign
			}
		}
	}

	if movingDeliversCheck(pos, m, moving) {
		score += 1000 * sign
	}
	return score
}

// movingDeliversCheck tests whether, after m, the moved piece attacks the
// opposing king square under the position's current pseudo-occupancy.
// This is an approximation for move ordering, not a full legality
// re-check.
func movingDeliversCheck(pos Position, m Move, moving Piece) bool {
	them := pos.ToMove().Opposite()
	kingSq := pos.KingSquare(them)

	to := m.To()
	kind := moving.Kind
	if m.IsPromotion() {
		kind = m.PromotionKind()
	}
	if m.IsCastle() {
		_, rookTo := castleRookSquares(m.Flag())
		kind = Rook
		to = rookTo
	}

	from := m.From()
	if m.IsCastle() {
		from, _ = castleRookSquares(m.Flag())
	}
	occ := (pos.Occupied() &^ from.Bitboard()) | to.Bitboard()

	switch kind {
	case Pawn:
		return PawnAttacks(pos.ToMove(), to).Has(kingSq)
	case Knight:
		return KnightAttacks(to).Has(kingSq)
	case Bishop:
		return BishopAttacks(to, occ).Has(kingSq)
	case Rook:
		return RookAttacks(to, occ).Has(kingSq)
	case Queen:
		return QueenAttacks(to, occ).Has(kingSq)
	case King:
		return KingAttacks(to).Has(kingSq)
	}
	return false
}
