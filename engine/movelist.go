package engine

// MaxMoves is a safe upper bound on the number of legal moves in any
// reachable chess position.
const MaxMoves = 218

// MoveList is a fixed-capacity, intrusively-ordered list of moves. It
// never allocates: callers declare a MoveList value and Append into it.
type MoveList struct {
	moves [MaxMoves]Move
	n     int
}

// Len returns the number of moves currently stored.
func (ml *MoveList) Len() int { return ml.n }

// Append adds m to the end of the list.
func (ml *MoveList) Append(m Move) {
	ml.moves[ml.n] = m
	ml.n++
}

// At returns the i-th move.
func (ml *MoveList) At(i int) Move {
	return ml.moves[i]
}

// Set overwrites the i-th move.
func (ml *MoveList) Set(i int, m Move) {
	ml.moves[i] = m
}

// Slice returns the live portion of the backing array. The returned
// slice aliases ml; callers must not retain it past ml's next mutation.
func (ml *MoveList) Slice() []Move {
	return ml.moves[:ml.n]
}

// Clear empties the list without releasing its backing array.
func (ml *MoveList) Clear() {
	ml.n = 0
}

// shellSortGaps are the Ciura gap sequence, reused here to sort short
// move lists by a caller-supplied score without allocating.
var shellSortGaps = [...]int{132, 57, 23, 10, 4, 1}

// SortByScoreDesc sorts moves by score descending, scores supplied in
// parallel to the move list (scores[i] is the ordering key for At(i)).
// Both slices are reordered together.
func (ml *MoveList) SortByScoreDesc(scores []int32) {
	sortParallel(ml.moves[:ml.n], scores, func(a, b int32) bool { return a > b })
}

// SortByScoreAsc sorts moves by score ascending (used for Black to move,
// which minimizes).
func (ml *MoveList) SortByScoreAsc(scores []int32) {
	sortParallel(ml.moves[:ml.n], scores, func(a, b int32) bool { return a < b })
}

func sortParallel(moves []Move, scores []int32, less func(a, b int32) bool) {
	for _, gap := range shellSortGaps {
		for i := gap; i < len(scores); i++ {
			j := i
			ts, tm := scores[j], moves[j]
			for ; j >= gap && less(ts, scores[j-gap]); j -= gap {
				scores[j] = scores[j-gap]
				moves[j] = moves[j-gap]
			}
			scores[j], moves[j] = ts, tm
		}
	}
}

// Filter keeps only the moves for which keep returns true, compacting
// the list in place, and returns the new length.
func (ml *MoveList) Filter(keep func(Move) bool) int {
	w := 0
	for r := 0; r < ml.n; r++ {
		if keep(ml.moves[r]) {
			ml.moves[w] = ml.moves[r]
			w++
		}
	}
	ml.n = w
	return w
}
