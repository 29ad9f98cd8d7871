package engine

// search.go is the main iterative-deepening alpha-beta search: mate/draw
// handling at the leaves, a best-move cache read/write at each node, and
// mate-score ply adjustment. Each node's children are ordered by promise
// using MoveList's SortByScore{Asc,Desc}.

func countHash(history []uint64, hash uint64) int {
	n := 0
	for _, h := range history {
		if h == hash {
			n++
		}
	}
	return n
}

// drawishAndRoughlyEqual reports whether a freshly found score of 0
// should be withheld from the best-move cache: a score of zero is
// withheld when the opposing bound (beta for White, alpha for Black) is
// within 30 centipawns of equal, and recorded when that bound is 30 or
// more away from equal. Nonzero scores are never withheld.
func drawishAndRoughlyEqual(score, opposite int32) bool {
	if score != 0 {
		return false
	}
	if opposite < 0 {
		opposite = -opposite
	}
	return opposite < 30
}

// search is the main iterative-deepening alpha-beta recursion. history
// is mutated (pushed/popped) for the duration of this call and every
// nested call, and is restored to its original contents before
// returning.
func search(pos Position, depth, trueDepth, maxDepth int, alpha, beta int32, history *[]uint64, cache *bestMoveCache, tc *timeControl, nodes *uint64, stopped *bool) (int32, Move) {
	*nodes++

	legal := LegalMoves(pos)
	if legal.Len() == 0 {
		if inCheck(pos, pos.ToMove()) {
			return -mateScore * pos.ToMove().Sign(), NullMove
		}
		return 0, NullMove
	}

	hash := pos.Hash()
	if countHash(*history, hash) >= 2 {
		return 0, NullMove
	}

	*history = append(*history, hash)
	defer func() {
		*history = (*history)[:len(*history)-1]
	}()

	if depth <= 0 || trueDepth >= maxDepth {
		return qSearch(pos, alpha, beta, SquareNone), NullMove
	}

	cached := cache.Get(hash)
	scores := make([]int32, legal.Len())
	for i := 0; i < legal.Len(); i++ {
		scores[i] = movePromise(pos, legal.At(i), cached)
	}
	white := pos.ToMove() == White
	if white {
		legal.SortByScoreDesc(scores)
	} else {
		legal.SortByScoreAsc(scores)
	}
	cache.Reset(hash)

	best := NullMove
	extremum := int32(-mateScore - 1)
	if !white {
		extremum = mateScore + 1
	}

	for i := 0; i < legal.Len(); i++ {
		if tc.Poll() {
			*stopped = true
			break
		}

		m := legal.At(i)
		child := pos.ApplyMove(m)
		childScore, _ := search(child, depth-1, trueDepth+1, maxDepth, alpha, beta, history, cache, tc, nodes, stopped)
		childScore = adjustMateScore(childScore)

		if white {
			if childScore > extremum {
				extremum = childScore
				best = m
				if !drawishAndRoughlyEqual(extremum, beta) {
					cache.Record(hash, m, extremum)
				}
			}
			if extremum > alpha {
				alpha = extremum
			}
		} else {
			if childScore < extremum {
				extremum = childScore
				best = m
				if !drawishAndRoughlyEqual(extremum, alpha) {
					cache.Record(hash, m, extremum)
				}
			}
			if extremum < beta {
				beta = extremum
			}
		}

		if alpha > beta {
			break
		}
	}

	return extremum, best
}
