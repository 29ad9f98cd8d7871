package engine

// quiescence.go is the capture-only mini-search that terminates horizon
// effects: a stand-pat bound plus violent-move-only generation, with
// follow-up captures restricted to a single recapture square (see
// DESIGN.md).

const (
	mateScore    = 10000
	mateFadeZone = mateScore - 1000
)

// adjustMateScore nudges a saturated mate score one unit closer to zero
// per ply of propagation, so that shorter mates are preferred.
func adjustMateScore(score int32) int32 {
	if score > mateFadeZone {
		return score - 1
	}
	if score < -mateFadeZone {
		return score + 1
	}
	return score
}

func isCaptureMove(pos Position, m Move) bool {
	if m.IsEnPassant() {
		return true
	}
	if m.IsCastle() {
		return false
	}
	return !pos.Get(m.To()).IsNone()
}

// qSearch is the capture-only search. recapture is SquareNone on the
// initial call; once the first capture is made, recursive calls restrict
// to captures landing on that capture's target square.
func qSearch(pos Position, alpha, beta int32, recapture Square) int32 {
	legal := LegalMoves(pos)
	if legal.Len() == 0 {
		if inCheck(pos, pos.ToMove()) {
			return -mateScore * pos.ToMove().Sign()
		}
		return 0
	}

	standPat := Evaluate(pos)
	min, max := standPat, standPat
	if alpha < min {
		alpha = min
	}

	var captures MoveList
	scores := make([]int32, 0, legal.Len())
	for i := 0; i < legal.Len(); i++ {
		m := legal.At(i)
		if !isCaptureMove(pos, m) {
			continue
		}
		if recapture != SquareNone && m.To() != recapture {
			continue
		}
		captures.Append(m)
		target := pos.Get(m.To())
		moving := pos.Get(m.From())
		targetVal := int32(0)
		if !target.IsNone() {
			targetVal = pieceValue(target.Kind)
		}
		scores = append(scores, targetVal-pieceValue(moving.Kind)/10)
	}

	if pos.ToMove() == White {
		captures.SortByScoreDesc(scores)
	} else {
		captures.SortByScoreDesc(scores) // MVV-LVA order is side-independent
	}

	for i := 0; i < captures.Len(); i++ {
		m := captures.At(i)
		child := pos.ApplyMove(m)
		score := adjustMateScore(qSearch(child, alpha, beta, m.To()))

		if pos.ToMove() == White {
			if score > max {
				max = score
			}
			if max > alpha {
				alpha = max
			}
		} else {
			if score < min {
				min = score
			}
			if min < beta {
				beta = min
			}
		}
		if alpha > beta {
			break
		}
	}

	if pos.ToMove() == White {
		return max
	}
	return min
}

// inCheck reports whether c's king is currently attacked.
func inCheck(pos Position, c Color) bool {
	return attackers(pos, pos.KingSquare(c), c.Opposite()) != 0
}
