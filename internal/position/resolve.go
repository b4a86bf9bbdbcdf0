package position

import (
	"github.com/lgbarn/pgn-reader-go/internal/chess"
	"github.com/lgbarn/pgn-reader-go/internal/errors"
)

// PawnMove resolves an abbreviated pawn move for the side to play.
// fromCol is the disambiguating source column for captures (NoCol for
// a straight push), promotion is the promotion piece (Empty for none).
func (p *Position) PawnMove(fromCol chess.Col, toCol chess.Col, toRank chess.Rank, promotion chess.Piece) (chess.Move, error) {
	b := &p.board
	colour := b.toMove
	dir := chess.ColourOffset(colour)

	if !chess.IsCol(byte(toCol)) || !chess.IsRank(byte(toRank)) {
		return chess.Move{}, errors.Wrap(errors.ErrIllegalMove, "pawn move: bad destination square")
	}

	promoRank := chess.Rank('8')
	if colour == chess.Black {
		promoRank = '1'
	}
	switch {
	case toRank == promoRank && promotion == chess.Empty:
		return chess.Move{}, errors.Wrapf(errors.ErrIllegalMove,
			"pawn move to %c%c: missing promotion piece", toCol, toRank)
	case toRank != promoRank && promotion != chess.Empty:
		return chess.Move{}, errors.Wrapf(errors.ErrIllegalMove,
			"pawn move to %c%c: promotion only on the last rank", toCol, toRank)
	case promotion == chess.Pawn || promotion == chess.King:
		return chess.Move{}, errors.Wrapf(errors.ErrIllegalMove,
			"cannot promote to %v", promotion)
	}

	move := chess.Move{
		Class:     chess.PawnMove,
		Piece:     chess.Pawn,
		ToCol:     toCol,
		ToRank:    toRank,
		Promotion: promotion,
	}
	if promotion != chess.Empty {
		move.Class = chess.PawnMoveWithPromotion
	}

	pawn := chess.MakeColouredPiece(colour, chess.Pawn)
	fromRank := chess.Rank(int(toRank) - dir)

	if fromCol != chess.NoCol {
		// Capture with the source column given.
		if abs(int(fromCol)-int(toCol)) != 1 {
			return chess.Move{}, errors.Wrapf(errors.ErrIllegalMove,
				"pawn on file %c cannot capture on %c%c", fromCol, toCol, toRank)
		}
		if b.get(fromCol, fromRank) != pawn {
			return chess.Move{}, errors.Wrapf(errors.ErrIllegalMove,
				"no %v pawn on %c%c", colour, fromCol, fromRank)
		}
		target := b.get(toCol, toRank)
		switch {
		case target != chess.Empty && chess.ExtractColour(target) != colour:
			move.Captured = chess.ExtractPiece(target)
		case target == chess.Empty && b.enPassant && toCol == b.epCol && toRank == b.epRank:
			move.Class = chess.EnPassantPawnMove
			move.Captured = chess.Pawn
		default:
			return chess.Move{}, errors.Wrapf(errors.ErrIllegalMove,
				"nothing to capture on %c%c", toCol, toRank)
		}
		move.FromCol, move.FromRank = fromCol, fromRank
	} else {
		// Straight push: one square, or two from the starting rank.
		if b.get(toCol, toRank) != chess.Empty {
			return chess.Move{}, errors.Wrapf(errors.ErrIllegalMove,
				"%c%c is occupied", toCol, toRank)
		}
		switch {
		case b.get(toCol, fromRank) == pawn:
			move.FromCol, move.FromRank = toCol, fromRank
		case isDoublePushRank(colour, toRank) &&
			b.get(toCol, fromRank) == chess.Empty &&
			b.get(toCol, chess.Rank(int(toRank)-2*dir)) == pawn:
			move.FromCol, move.FromRank = toCol, chess.Rank(int(toRank)-2*dir)
		default:
			return chess.Move{}, errors.Wrapf(errors.ErrIllegalMove,
				"no %v pawn can reach %c%c", colour, toCol, toRank)
		}
	}

	if !leavesKingSafe(b, move, colour) {
		return chess.Move{}, errors.Wrapf(errors.ErrIllegalMove,
			"pawn move to %c%c leaves the king in check", toCol, toRank)
	}
	return move, nil
}

// isDoublePushRank reports whether toRank is the double-push
// destination rank for colour.
func isDoublePushRank(colour chess.Colour, toRank chess.Rank) bool {
	return (colour == chess.White && toRank == '4') ||
		(colour == chess.Black && toRank == '5')
}

// PieceMove resolves an abbreviated non-pawn move for the side to
// play. fromCol and fromRank are the disambiguating source column and
// row, either or both of which may be unset.
func (p *Position) PieceMove(piece chess.Piece, fromCol chess.Col, fromRank chess.Rank, toCol chess.Col, toRank chess.Rank) (chess.Move, error) {
	b := &p.board
	colour := b.toMove

	switch piece {
	case chess.Knight, chess.Bishop, chess.Rook, chess.Queen, chess.King:
	default:
		return chess.Move{}, errors.Wrap(errors.ErrIllegalMove, "unknown piece")
	}
	if !chess.IsCol(byte(toCol)) || !chess.IsRank(byte(toRank)) {
		return chess.Move{}, errors.Wrapf(errors.ErrIllegalMove,
			"%v move: bad destination square", piece)
	}

	target := b.get(toCol, toRank)
	if target != chess.Empty && chess.ExtractColour(target) == colour {
		return chess.Move{}, errors.Wrapf(errors.ErrIllegalMove,
			"%c%c is occupied by an own piece", toCol, toRank)
	}

	wanted := chess.MakeColouredPiece(colour, piece)
	var found []chess.Move
	for col := chess.Col('a'); col <= 'h'; col++ {
		for rank := chess.Rank('1'); rank <= '8'; rank++ {
			if b.get(col, rank) != wanted {
				continue
			}
			if fromCol != chess.NoCol && col != fromCol {
				continue
			}
			if fromRank != chess.NoRank && rank != fromRank {
				continue
			}
			if !canPieceMove(b, piece, col, rank, toCol, toRank) {
				continue
			}
			candidate := chess.Move{
				Class:    chess.PieceMove,
				Piece:    piece,
				FromCol:  col,
				FromRank: rank,
				ToCol:    toCol,
				ToRank:   toRank,
			}
			if target != chess.Empty {
				candidate.Captured = chess.ExtractPiece(target)
			}
			if !leavesKingSafe(b, candidate, colour) {
				continue
			}
			found = append(found, candidate)
		}
	}

	switch len(found) {
	case 0:
		return chess.Move{}, errors.Wrapf(errors.ErrIllegalMove,
			"no %v %v can move to %c%c", colour, piece, toCol, toRank)
	case 1:
		return found[0], nil
	default:
		return chess.Move{}, errors.Wrapf(errors.ErrAmbiguousMove,
			"%d %v moves to %c%c", len(found), piece, toCol, toRank)
	}
}

// Castle returns the castle move of the given length for the side to
// play. The move is shape-only: legality is checked when it is
// applied.
func (p *Position) Castle(long bool) chess.Move {
	class := chess.KingsideCastle
	if long {
		class = chess.QueensideCastle
	}
	return chess.Move{Class: class, Piece: chess.King}
}

// Null returns the null move for the side to play.
func (p *Position) Null() chess.Move {
	return chess.Move{Class: chess.NullMove}
}
