// Package engine implements the core of the kestrel chess engine: bitboard
// position representation, strictly legal move generation, static
// evaluation, quiescence search and iterative-deepening alpha-beta search
// with a best-move ordering cache.
//
// Position (bitboard.go, position.go) uses:
//
//   - Bitboards for board representation.
//   - Magic bitboards for sliding piece move generation (attack.go).
//
// Move generation (movegen.go) produces exactly the legal moves of a
// position in one pass: checkers, pins, discovered checks, en-passant
// king exposure and castling-through-check are all resolved before a move
// is emitted, so callers never need a second legality filter.
//
// Search (search.go, quiescence.go) features:
//
//   - Iterative deepening negamax-style alpha-beta, no threading.
//   - Quiescence search restricted to capture chains on a single square.
//   - A best-move cache keyed by position hash, feeding move ordering
//     across iterative-deepening iterations (not a transposition table:
//     scores are not reused as search bounds).
//   - Threefold repetition detection against a caller-supplied history.
//   - Cooperative, polling-based wall-clock cancellation.
//
// Evaluation (eval.go) is a small fixed-weight linear evaluator: dynamic
// material, pawn placement and structure, promotion proximity, piece
// activity and king shelter, blended by a material-derived endgame
// factor.
package engine
