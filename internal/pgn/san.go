package pgn

import (
	"fmt"

	"github.com/lgbarn/pgn-reader-go/internal/chess"
)

// tokenAsMove resolves the current identifier token as a move against
// the game's position. Besides SAN it accepts long algebraic pawn
// moves (b2b4, b2-b4, e5xd4), castles written with zeros, null moves
// ("--" and engine-style "Z0") and the single-character annotations
// that some sources drop between moves. For annotation tokens the
// returned move has class NoMove and nothing is played.
func (r *Reader) tokenAsMove() (chess.Move, error) {
	if r.lx.token() != TokIdent {
		return chess.Move{}, r.syntaxError("Move expected")
	}

	buf := r.lx.buf
	n := len(buf)
	last := n - 1
	if buf[last] == '+' || buf[last] == '#' {
		last--
	}
	pos := r.game.Position()

	switch {
	case buf[0] == 'O' || buf[0] == '0':
		if n < 3 || buf[1] != '-' || buf[2] != buf[0] {
			return chess.Move{}, r.syntaxError("Illegal castle move")
		}
		if buf[0] == '0' {
			r.warning("Castles with zeros")
		}
		long := n >= 5 && buf[3] == '-' && buf[4] == buf[0]
		return pos.Castle(long), nil

	case n == 2 && buf[0] == '-' && buf[1] == '-',
		n >= 2 && buf[0] == 'Z' && buf[1] == '0':
		return pos.Null(), nil

	case n == 1 && (buf[0] == 'N' || buf[0] == 'D' || buf[0] == '~' || buf[0] == '='):
		switch buf[0] {
		case 'N':
			// novelty
			r.game.AddNag(chess.NagNovelty)
		case 'D':
			// diagram
			r.game.AddNag(chess.NagDiagram)
		}
		return chess.Move{}, nil

	case n >= 2 && (buf[0] == '+' || buf[0] == '-' || buf[0] == '='):
		// Evaluation glyphs like "+-" or "=+" used in place of NAGs.
		return chess.Move{}, nil
	}

	if buf[0] >= 'a' && buf[0] <= 'h' {
		return r.pawnMoveFromToken(buf, last)
	}
	return r.pieceMoveFromToken(buf, last)
}

// pawnMoveFromToken resolves a pawn move token. last indexes the final
// character before any check or mate suffix.
func (r *Reader) pawnMoveFromToken(buf []byte, last int) (chess.Move, error) {
	col := chess.NoCol
	if last < 1 {
		return chess.Move{}, r.syntaxError("Illegal pawn move")
	}

	next := 0
	switch {
	case last >= 3 && chess.IsRank(buf[1]) && chess.IsCol(buf[2]):
		// long algebraic like b2b4
		next = 2
	case last >= 4 && (buf[2] == '-' || buf[2] == 'x') && chess.IsCol(buf[3]):
		// long algebraic like b2-b4 or e5xd4
		if buf[0] != buf[3] {
			// different columns, so it is a capture
			col = chess.CharToCol(buf[0])
		}
		next = 3
	case buf[1] == 'x':
		col = chess.CharToCol(buf[0])
		next = 2
	}

	if next+1 > last {
		return chess.Move{}, r.syntaxError("Illegal pawn move, no destination square")
	}
	toCol := chess.Col(buf[next])
	toRank := chess.Rank(buf[next+1])
	next += 2

	promo := chess.Empty
	if next <= last {
		if buf[next] == '=' {
			if next < last {
				promo = chess.CharToPiece(buf[next+1])
			}
		} else {
			promo = chess.CharToPiece(buf[next])
		}
	}

	move, err := r.game.Position().PawnMove(col, toCol, toRank, promo)
	if err != nil {
		return chess.Move{}, r.syntaxError(err.Error())
	}
	return move, nil
}

// pieceMoveFromToken resolves a non-pawn move token. Disambiguation
// characters are scanned backwards from the destination square, so
// doubled hints like "Qh4e1" work too.
func (r *Reader) pieceMoveFromToken(buf []byte, last int) (chess.Move, error) {
	piece := chess.CharToPiece(buf[0])
	if last < 2 {
		return chess.Move{}, r.syntaxError("Wrong move, no destination square")
	}
	toCol := chess.Col(buf[last-1])
	toRank := chess.Rank(buf[last])
	last -= 2

	if buf[last] == 'x' {
		last--
	}

	fromCol, fromRank := chess.NoCol, chess.NoRank
	for last >= 1 {
		c := buf[last]
		switch {
		case chess.IsRank(c):
			fromRank = chess.Rank(c)
		case chess.IsCol(c):
			fromCol = chess.Col(c)
		default:
			r.warning(fmt.Sprintf("Unknown char '%c', row / column expected", c))
		}
		last--
	}

	move, err := r.game.Position().PieceMove(piece, fromCol, fromRank, toCol, toRank)
	if err != nil {
		return chess.Move{}, r.syntaxError(err.Error())
	}
	return move, nil
}
