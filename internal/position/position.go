package position

import (
	"fmt"

	"github.com/lgbarn/pgn-reader-go/internal/chess"
	"github.com/lgbarn/pgn-reader-go/internal/errors"
)

// Position is the board state a game tree replays its moves on. Moves
// are applied with DoMove and taken back with UndoMove; every applied
// move pushes a full board snapshot so undo is exact regardless of
// move type.
type Position struct {
	board board
	undo  []board
}

// New returns a position set up with the standard starting placement.
func New() *Position {
	p := &Position{board: newBoard()}
	p.board.setupInitial()
	return p
}

// ToPlay returns the side to move.
func (p *Position) ToPlay() chess.Colour {
	return p.board.toMove
}

// MoveNumber returns the current full-move number.
func (p *Position) MoveNumber() uint {
	return p.board.moveNumber
}

// PieceAt returns the coloured piece on the given square.
func (p *Position) PieceAt(col chess.Col, rank chess.Rank) chess.Piece {
	return p.board.get(col, rank)
}

// PlyDepth returns how many moves have been applied and not undone.
func (p *Position) PlyDepth() int {
	return len(p.undo)
}

// DoMove applies a resolved move. NoMove is rejected; castle moves are
// validated here because castle resolution is shape-only.
func (p *Position) DoMove(m chess.Move) error {
	saved := p.board

	var err error
	switch m.Class {
	case chess.NullMove:
		p.board.toMove = p.board.toMove.Opposite()
		p.board.enPassant = false
	case chess.KingsideCastle:
		err = p.applyCastle(true)
	case chess.QueensideCastle:
		err = p.applyCastle(false)
	case chess.PawnMove, chess.PawnMoveWithPromotion, chess.EnPassantPawnMove:
		err = p.applyPawnMove(m)
	case chess.PieceMove:
		err = p.applyPieceMove(m)
	default:
		err = errors.Wrap(errors.ErrIllegalMove, "not an applicable move")
	}

	if err != nil {
		p.board = saved
		return err
	}
	p.undo = append(p.undo, saved)
	return nil
}

// UndoMove takes back the most recently applied move.
func (p *Position) UndoMove() error {
	if len(p.undo) == 0 {
		return errors.Wrap(errors.ErrIllegalMove, "no move to undo")
	}
	p.board = p.undo[len(p.undo)-1]
	p.undo = p.undo[:len(p.undo)-1]
	return nil
}

// applyCastle validates and applies castling for the side to move.
func (p *Position) applyCastle(kingside bool) error {
	b := &p.board
	colour := b.toMove

	var rank chess.Rank
	var kingFromCol, kingToCol, rookFromCol, rookToCol chess.Col
	if colour == chess.White {
		rank = '1'
		kingFromCol = b.wKingCol
		if kingside {
			kingToCol, rookFromCol, rookToCol = 'g', b.wKingCastle, 'f'
		} else {
			kingToCol, rookFromCol, rookToCol = 'c', b.wQueenCastle, 'd'
		}
	} else {
		rank = '8'
		kingFromCol = b.bKingCol
		if kingside {
			kingToCol, rookFromCol, rookToCol = 'g', b.bKingCastle, 'f'
		} else {
			kingToCol, rookFromCol, rookToCol = 'c', b.bQueenCastle, 'd'
		}
	}

	side := "O-O"
	if !kingside {
		side = "O-O-O"
	}
	if rookFromCol == 0 {
		return errors.Wrapf(errors.ErrIllegalMove, "%s: castling right lost", side)
	}
	if b.get(kingFromCol, rank) != chess.MakeColouredPiece(colour, chess.King) ||
		b.get(rookFromCol, rank) != chess.MakeColouredPiece(colour, chess.Rook) {
		return errors.Wrapf(errors.ErrIllegalMove, "%s: king or rook not in place", side)
	}

	// All squares strictly between king and rook must be empty.
	lo, hi := kingFromCol, rookFromCol
	if lo > hi {
		lo, hi = hi, lo
	}
	for c := lo + 1; c < hi; c++ {
		if b.get(c, rank) != chess.Empty {
			return errors.Wrapf(errors.ErrIllegalMove, "%s: squares not empty", side)
		}
	}

	// The king may not castle out of, through, or into check.
	step := 1
	if kingToCol < kingFromCol {
		step = -1
	}
	for c := kingFromCol; ; c = chess.Col(int(c) + step) {
		if isSquareAttacked(b, c, rank, colour.Opposite()) {
			return errors.Wrapf(errors.ErrIllegalMove, "%s: king passes through check", side)
		}
		if c == kingToCol {
			break
		}
	}

	king := b.get(kingFromCol, rank)
	rook := b.get(rookFromCol, rank)
	b.set(kingFromCol, rank, chess.Empty)
	b.set(rookFromCol, rank, chess.Empty)
	b.set(kingToCol, rank, king)
	b.set(rookToCol, rank, rook)

	if colour == chess.White {
		b.wKingCol, b.wKingRank = kingToCol, rank
		b.wKingCastle, b.wQueenCastle = 0, 0
	} else {
		b.bKingCol, b.bKingRank = kingToCol, rank
		b.bKingCastle, b.bQueenCastle = 0, 0
	}

	b.enPassant = false
	b.halfmoveClock++
	if colour == chess.Black {
		b.moveNumber++
	}
	b.toMove = colour.Opposite()
	return nil
}

// applyPawnMove applies a resolved pawn move.
func (p *Position) applyPawnMove(m chess.Move) error {
	b := &p.board
	colour := b.toMove

	pawn := b.get(m.FromCol, m.FromRank)
	if pawn != chess.MakeColouredPiece(colour, chess.Pawn) {
		return errors.Wrapf(errors.ErrIllegalMove, "no %v pawn on %c%c", colour, m.FromCol, m.FromRank)
	}

	if m.Class == chess.EnPassantPawnMove {
		capturedRank := m.ToRank - chess.Rank(chess.ColourOffset(colour))
		b.set(m.ToCol, capturedRank, chess.Empty)
	}

	b.set(m.FromCol, m.FromRank, chess.Empty)
	if m.Class == chess.PawnMoveWithPromotion {
		b.set(m.ToCol, m.ToRank, chess.MakeColouredPiece(colour, m.Promotion))
	} else {
		b.set(m.ToCol, m.ToRank, pawn)
	}

	// Record the en passant square on a double push.
	b.enPassant = false
	if colour == chess.White && m.FromRank == '2' && m.ToRank == '4' {
		b.enPassant, b.epCol, b.epRank = true, m.ToCol, '3'
	} else if colour == chess.Black && m.FromRank == '7' && m.ToRank == '5' {
		b.enPassant, b.epCol, b.epRank = true, m.ToCol, '6'
	}

	b.halfmoveClock = 0
	if colour == chess.Black {
		b.moveNumber++
	}
	b.toMove = colour.Opposite()
	return nil
}

// applyPieceMove applies a resolved non-pawn move.
func (p *Position) applyPieceMove(m chess.Move) error {
	b := &p.board
	colour := b.toMove

	piece := b.get(m.FromCol, m.FromRank)
	if piece != chess.MakeColouredPiece(colour, m.Piece) {
		return errors.Wrapf(errors.ErrIllegalMove, "no %v %v on %c%c",
			colour, m.Piece, m.FromCol, m.FromRank)
	}
	captured := b.get(m.ToCol, m.ToRank)

	b.set(m.FromCol, m.FromRank, chess.Empty)
	b.set(m.ToCol, m.ToRank, piece)

	if m.Piece == chess.King {
		if colour == chess.White {
			b.wKingCol, b.wKingRank = m.ToCol, m.ToRank
			b.wKingCastle, b.wQueenCastle = 0, 0
		} else {
			b.bKingCol, b.bKingRank = m.ToCol, m.ToRank
			b.bKingCastle, b.bQueenCastle = 0, 0
		}
	}
	if m.Piece == chess.Rook {
		clearRookRights(b, colour, m.FromCol, m.FromRank)
	}
	if captured != chess.Empty && chess.ExtractPiece(captured) == chess.Rook {
		clearRookRights(b, chess.ExtractColour(captured), m.ToCol, m.ToRank)
	}

	b.enPassant = false
	if captured != chess.Empty {
		b.halfmoveClock = 0
	} else {
		b.halfmoveClock++
	}
	if colour == chess.Black {
		b.moveNumber++
	}
	b.toMove = colour.Opposite()
	return nil
}

// clearRookRights removes castling rights tied to a rook square.
func clearRookRights(b *board, colour chess.Colour, col chess.Col, rank chess.Rank) {
	if colour == chess.White && rank == '1' {
		if col == b.wKingCastle {
			b.wKingCastle = 0
		}
		if col == b.wQueenCastle {
			b.wQueenCastle = 0
		}
	} else if colour == chess.Black && rank == '8' {
		if col == b.bKingCastle {
			b.bKingCastle = 0
		}
		if col == b.bQueenCastle {
			b.bQueenCastle = 0
		}
	}
}

// InCheck reports whether the given colour's king is attacked.
func (p *Position) InCheck(colour chess.Colour) bool {
	col, rank := p.board.kingSquare(colour)
	if col == 0 || rank == 0 {
		return false
	}
	return isSquareAttacked(&p.board, col, rank, colour.Opposite())
}

// String renders the board for debugging, rank 8 first.
func (p *Position) String() string {
	out := make([]byte, 0, 9*9)
	for rank := chess.Rank('8'); rank >= '1'; rank-- {
		for col := chess.Col('a'); col <= 'h'; col++ {
			piece := p.board.get(col, rank)
			if piece == chess.Empty {
				out = append(out, '.')
				continue
			}
			letter := chess.ExtractPiece(piece).Letter()
			if chess.ExtractColour(piece) == chess.Black {
				letter += 'a' - 'A'
			}
			out = append(out, letter)
		}
		out = append(out, '\n')
	}
	return fmt.Sprintf("%s%v to move\n", out, p.board.toMove)
}
