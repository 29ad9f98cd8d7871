package engine

// fen.go parses a position-description string (FEN-shaped) permissively:
// unrecognized characters are skipped rather than rejected.

var pieceSymbols = map[byte]Piece{
	'P': {Color: White, Kind: Pawn}, 'N': {Color: White, Kind: Knight},
	'B': {Color: White, Kind: Bishop}, 'R': {Color: White, Kind: Rook},
	'Q': {Color: White, Kind: Queen}, 'K': {Color: White, Kind: King},
	'p': {Color: Black, Kind: Pawn}, 'n': {Color: Black, Kind: Knight},
	'b': {Color: Black, Kind: Bishop}, 'r': {Color: Black, Kind: Rook},
	'q': {Color: Black, Kind: Queen}, 'k': {Color: Black, Kind: King},
}

// PositionFromDescription parses a position-description string (piece
// placement, side to move, castling rights, en-passant square, and
// optionally halfmove/fullmove counters which are accepted and ignored).
// It never returns an error: unrecognized characters and missing fields
// are silently tolerated.
func PositionFromDescription(s string) Position {
	fields := splitFields(s)
	p := EmptyPosition()

	if len(fields) > 0 {
		parsePiecePlacement(&p, fields[0])
	}
	p.toMove = White
	if len(fields) > 1 && len(fields[1]) > 0 && fields[1][0] == 'b' {
		p.toMove = Black
	}
	if len(fields) > 2 {
		parseCastlingRights(&p, fields[2])
	}
	if len(fields) > 3 {
		if sq, err := SquareFromString(fields[3]); err == nil {
			p.epSquare = sq
		}
	}
	return p
}

func splitFields(s string) []string {
	var fields []string
	start := -1
	for i := 0; i <= len(s); i++ {
		if i < len(s) && s[i] != ' ' {
			if start < 0 {
				start = i
			}
			continue
		}
		if start >= 0 {
			fields = append(fields, s[start:i])
			start = -1
		}
	}
	return fields
}

func parsePiecePlacement(p *Position, placement string) {
	rank, file := 7, 0
	for i := 0; i < len(placement); i++ {
		c := placement[i]
		switch {
		case c == '/':
			rank--
			file = 0
		case c >= '1' && c <= '8':
			file += int(c - '0')
		default:
			if piece, ok := pieceSymbols[c]; ok && rank >= 0 && rank < 8 && file < 8 {
				p.Put(piece.Color, piece.Kind, RankFile(rank, file))
				file++
			}
			// Any other character is silently skipped.
		}
	}
}

func parseCastlingRights(p *Position, rights string) {
	for i := 0; i < len(rights); i++ {
		switch rights[i] {
		case 'K':
			p.castling[CastleWhiteKingside] = true
		case 'Q':
			p.castling[CastleWhiteQueenside] = true
		case 'k':
			p.castling[CastleBlackKingside] = true
		case 'q':
			p.castling[CastleBlackQueenside] = true
		}
	}
}
