package chess

// MoveClass categorizes different types of chess moves.
type MoveClass int

const (
	NoMove MoveClass = iota // Annotation token that is not a move
	PawnMove
	PawnMoveWithPromotion
	EnPassantPawnMove
	PieceMove
	KingsideCastle
	QueensideCastle
	NullMove
)

// String returns the string representation of a move class.
func (c MoveClass) String() string {
	names := []string{
		"NoMove", "PawnMove", "PawnMoveWithPromotion", "EnPassantPawnMove",
		"PieceMove", "KingsideCastle", "QueensideCastle", "NullMove",
	}
	if int(c) < len(names) {
		return names[c]
	}
	return "Unknown"
}

// Move is a fully resolved move: the position capability fills in the
// source square, captured piece and move class, so applying a Move
// never needs further disambiguation.
type Move struct {
	Class MoveClass

	// Source square (unset for castles and null moves).
	FromCol  Col
	FromRank Rank

	// Destination square.
	ToCol  Col
	ToRank Rank

	// The piece being moved.
	Piece Piece

	// The piece captured (Empty if no capture).
	Captured Piece

	// The piece promoted to (Empty if not a promotion).
	Promotion Piece
}

// IsNoMove reports whether this is the "not actually a move" sentinel
// produced for pure-annotation tokens.
func (m Move) IsNoMove() bool {
	return m.Class == NoMove
}

// IsNull reports whether this is a null move.
func (m Move) IsNull() bool {
	return m.Class == NullMove
}

// IsCapture reports whether this move captures a piece.
func (m Move) IsCapture() bool {
	return m.Captured != Empty || m.Class == EnPassantPawnMove
}

// IsPromotion reports whether this move is a pawn promotion.
func (m Move) IsPromotion() bool {
	return m.Class == PawnMoveWithPromotion
}

// IsCastle reports whether this move is a castling move.
func (m Move) IsCastle() bool {
	switch m.Class {
	case KingsideCastle, QueensideCastle:
		return true
	default:
		return false
	}
}

// String renders the move in long algebraic form for diagnostics.
func (m Move) String() string {
	switch m.Class {
	case NoMove:
		return "(no move)"
	case NullMove:
		return NullMoveString
	case KingsideCastle:
		return "O-O"
	case QueensideCastle:
		return "O-O-O"
	}
	buf := make([]byte, 0, 8)
	if m.Piece != Pawn && m.Piece != Empty {
		buf = append(buf, m.Piece.Letter())
	}
	buf = append(buf, byte(m.FromCol), byte(m.FromRank))
	if m.IsCapture() {
		buf = append(buf, 'x')
	} else {
		buf = append(buf, '-')
	}
	buf = append(buf, byte(m.ToCol), byte(m.ToRank))
	if m.Promotion != Empty {
		buf = append(buf, '=', m.Promotion.Letter())
	}
	return string(buf)
}
