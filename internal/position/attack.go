package position

import (
	"github.com/lgbarn/pgn-reader-go/internal/chess"
)

// isSquareAttacked reports whether the square is attacked by byColour.
func isSquareAttacked(b *board, col chess.Col, rank chess.Rank, byColour chess.Colour) bool {
	// Pawn attacks.
	pawn := chess.MakeColouredPiece(byColour, chess.Pawn)
	pawnRank := chess.Rank(int(rank) - chess.ColourOffset(byColour))
	if pawnRank >= '1' && pawnRank <= '8' {
		if col > 'a' && b.get(col-1, pawnRank) == pawn {
			return true
		}
		if col < 'h' && b.get(col+1, pawnRank) == pawn {
			return true
		}
	}

	// Knight attacks.
	knight := chess.MakeColouredPiece(byColour, chess.Knight)
	knightMoves := [][2]int{{-2, -1}, {-2, 1}, {-1, -2}, {-1, 2}, {1, -2}, {1, 2}, {2, -1}, {2, 1}}
	for _, off := range knightMoves {
		c := chess.Col(int(col) + off[0])
		r := chess.Rank(int(rank) + off[1])
		if b.get(c, r) == knight {
			return true
		}
	}

	// King attacks.
	king := chess.MakeColouredPiece(byColour, chess.King)
	for dc := -1; dc <= 1; dc++ {
		for dr := -1; dr <= 1; dr++ {
			if dc == 0 && dr == 0 {
				continue
			}
			if b.get(chess.Col(int(col)+dc), chess.Rank(int(rank)+dr)) == king {
				return true
			}
		}
	}

	// Sliding pieces along diagonals.
	bishop := chess.MakeColouredPiece(byColour, chess.Bishop)
	queen := chess.MakeColouredPiece(byColour, chess.Queen)
	diagonalDirs := [][2]int{{-1, -1}, {-1, 1}, {1, -1}, {1, 1}}
	for _, dir := range diagonalDirs {
		if slideHits(b, col, rank, dir, bishop, queen) {
			return true
		}
	}

	// Sliding pieces along straight lines.
	rook := chess.MakeColouredPiece(byColour, chess.Rook)
	straightDirs := [][2]int{{-1, 0}, {1, 0}, {0, -1}, {0, 1}}
	for _, dir := range straightDirs {
		if slideHits(b, col, rank, dir, rook, queen) {
			return true
		}
	}

	return false
}

// slideHits walks one sliding direction and reports whether the first
// piece encountered is one of the two attackers.
func slideHits(b *board, col chess.Col, rank chess.Rank, dir [2]int, attacker1, attacker2 chess.Piece) bool {
	c := chess.Col(int(col) + dir[0])
	r := chess.Rank(int(rank) + dir[1])
	for c >= 'a' && c <= 'h' && r >= '1' && r <= '8' {
		piece := b.get(c, r)
		if piece != chess.Empty {
			return piece == attacker1 || piece == attacker2
		}
		c = chess.Col(int(c) + dir[0])
		r = chess.Rank(int(r) + dir[1])
	}
	return false
}

// canPieceMove reports whether pieceType could travel from one square
// to another on an otherwise legal board (geometry and path only).
func canPieceMove(b *board, pieceType chess.Piece, fromCol chess.Col, fromRank chess.Rank, toCol chess.Col, toRank chess.Rank) bool {
	colDiff := abs(int(toCol) - int(fromCol))
	rankDiff := abs(int(toRank) - int(fromRank))

	switch pieceType {
	case chess.Knight:
		return (colDiff == 1 && rankDiff == 2) || (colDiff == 2 && rankDiff == 1)

	case chess.Bishop:
		return colDiff == rankDiff && colDiff != 0 &&
			isPathClear(b, fromCol, fromRank, toCol, toRank)

	case chess.Rook:
		return (colDiff == 0) != (rankDiff == 0) &&
			isPathClear(b, fromCol, fromRank, toCol, toRank)

	case chess.Queen:
		if colDiff != rankDiff && colDiff != 0 && rankDiff != 0 {
			return false
		}
		if colDiff == 0 && rankDiff == 0 {
			return false
		}
		return isPathClear(b, fromCol, fromRank, toCol, toRank)

	case chess.King:
		return colDiff <= 1 && rankDiff <= 1 && colDiff+rankDiff > 0
	}

	return false
}

// isPathClear checks that all squares strictly between from and to are
// empty along a straight or diagonal line.
func isPathClear(b *board, fromCol chess.Col, fromRank chess.Rank, toCol chess.Col, toRank chess.Rank) bool {
	colDir := sign(int(toCol) - int(fromCol))
	rankDir := sign(int(toRank) - int(fromRank))

	col := chess.Col(int(fromCol) + colDir)
	rank := chess.Rank(int(fromRank) + rankDir)
	for col != toCol || rank != toRank {
		if b.get(col, rank) != chess.Empty {
			return false
		}
		col = chess.Col(int(col) + colDir)
		rank = chess.Rank(int(rank) + rankDir)
	}
	return true
}

// leavesKingSafe applies a candidate move on a scratch board and
// reports whether the mover's king survives it.
func leavesKingSafe(b *board, m chess.Move, colour chess.Colour) bool {
	test := *b

	piece := test.get(m.FromCol, m.FromRank)
	test.set(m.FromCol, m.FromRank, chess.Empty)
	test.set(m.ToCol, m.ToRank, piece)
	if m.Class == chess.EnPassantPawnMove {
		capturedRank := m.ToRank - chess.Rank(chess.ColourOffset(colour))
		test.set(m.ToCol, capturedRank, chess.Empty)
	}

	kingCol, kingRank := test.kingSquare(colour)
	if chess.ExtractPiece(piece) == chess.King {
		kingCol, kingRank = m.ToCol, m.ToRank
	}
	if kingCol == 0 || kingRank == 0 {
		return true
	}
	return !isSquareAttacked(&test, kingCol, kingRank, colour.Opposite())
}

func abs(x int) int {
	if x < 0 {
		return -x
	}
	return x
}

func sign(x int) int {
	if x > 0 {
		return 1
	}
	if x < 0 {
		return -1
	}
	return 0
}
