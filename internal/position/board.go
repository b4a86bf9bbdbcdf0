// Package position implements the mutable board model the PGN reader
// replays games on: side to play, legal-move lookup from abbreviated
// SAN information, move application and undo.
package position

import (
	"github.com/lgbarn/pgn-reader-go/internal/chess"
)

// board holds the piece placement and all state needed to apply and
// validate moves. The square array carries a hedge of 2 around the
// playing area so knight-move offsets never index out of range.
type board struct {
	// squares[col][rank] where col and rank are hedged indices.
	squares [chess.Hedge + chess.BoardSize + chess.Hedge][chess.Hedge + chess.BoardSize + chess.Hedge]chess.Piece

	// Who has the next move.
	toMove chess.Colour

	// The current full-move number.
	moveNumber uint

	// Castling rights: rook starting columns, 0 when the right is gone.
	wKingCastle  chess.Col
	wQueenCastle chess.Col
	bKingCastle  chess.Col
	bQueenCastle chess.Col

	// King locations for check detection.
	wKingCol  chess.Col
	wKingRank chess.Rank
	bKingCol  chess.Col
	bKingRank chess.Rank

	// En passant target square, if a capture there is possible.
	enPassant bool
	epCol     chess.Col
	epRank    chess.Rank

	// Half-move clock since the last pawn move or capture.
	halfmoveClock uint
}

// newBoard returns an empty board with hedge squares marked Off.
func newBoard() board {
	var b board
	b.toMove = chess.White
	b.moveNumber = 1
	for col := 0; col < chess.Hedge+chess.BoardSize+chess.Hedge; col++ {
		for rank := 0; rank < chess.Hedge+chess.BoardSize+chess.Hedge; rank++ {
			if col >= chess.Hedge && col < chess.Hedge+chess.BoardSize &&
				rank >= chess.Hedge && rank < chess.Hedge+chess.BoardSize {
				b.squares[col][rank] = chess.Empty
			} else {
				b.squares[col][rank] = chess.Off
			}
		}
	}
	return b
}

// setupInitial places the standard starting position.
func (b *board) setupInitial() {
	for col := chess.Hedge; col < chess.Hedge+chess.BoardSize; col++ {
		for rank := chess.Hedge; rank < chess.Hedge+chess.BoardSize; rank++ {
			b.squares[col][rank] = chess.Empty
		}
	}

	backRank := []chess.Piece{
		chess.Rook, chess.Knight, chess.Bishop, chess.Queen,
		chess.King, chess.Bishop, chess.Knight, chess.Rook,
	}
	for col := 0; col < chess.BoardSize; col++ {
		b.squares[col+chess.Hedge][chess.Hedge] = chess.W(backRank[col])
		b.squares[col+chess.Hedge][chess.Hedge+1] = chess.W(chess.Pawn)
		b.squares[col+chess.Hedge][chess.Hedge+6] = chess.B(chess.Pawn)
		b.squares[col+chess.Hedge][chess.Hedge+7] = chess.B(backRank[col])
	}

	b.wKingCol, b.wKingRank = 'e', '1'
	b.bKingCol, b.bKingRank = 'e', '8'
	b.wKingCastle, b.wQueenCastle = 'h', 'a'
	b.bKingCastle, b.bQueenCastle = 'h', 'a'

	b.toMove = chess.White
	b.moveNumber = 1
	b.enPassant = false
	b.halfmoveClock = 0
}

// get returns the piece at the given character coordinates.
func (b *board) get(col chess.Col, rank chess.Rank) chess.Piece {
	c := chess.ColConvert(col)
	r := chess.RankConvert(rank)
	if c == 0 || r == 0 {
		return chess.Off
	}
	return b.squares[c][r]
}

// set places a piece at the given character coordinates.
func (b *board) set(col chess.Col, rank chess.Rank, piece chess.Piece) {
	c := chess.ColConvert(col)
	r := chess.RankConvert(rank)
	if c != 0 && r != 0 {
		b.squares[c][r] = piece
	}
}

// kingSquare returns the tracked king location for a colour.
func (b *board) kingSquare(colour chess.Colour) (chess.Col, chess.Rank) {
	if colour == chess.White {
		return b.wKingCol, b.wKingRank
	}
	return b.bKingCol, b.bKingRank
}
