package position

import (
	"fmt"
	"strings"
	"unicode"

	"github.com/lgbarn/pgn-reader-go/internal/chess"
	"github.com/lgbarn/pgn-reader-go/internal/errors"
)

// InitialFEN is the FEN string for the standard starting position.
const InitialFEN = "rnbqkbnr/pppppppp/8/8/8/8/PPPPPPPP/RNBQKBNR w KQkq - 0 1"

// fenCharToPiece converts a FEN piece character to a piece type.
func fenCharToPiece(c byte) chess.Piece {
	switch c {
	case 'K', 'k':
		return chess.King
	case 'Q', 'q':
		return chess.Queen
	case 'R', 'r':
		return chess.Rook
	case 'N', 'n':
		return chess.Knight
	case 'B', 'b':
		return chess.Bishop
	case 'P', 'p':
		return chess.Pawn
	default:
		return chess.Empty
	}
}

// NewFromFEN creates a position from a FEN string.
func NewFromFEN(fen string) (*Position, error) {
	p := &Position{board: newBoard()}
	if err := p.SetFEN(fen); err != nil {
		return nil, err
	}
	return p, nil
}

// SetFEN resets the position to the one described by the FEN string.
// Any undo history is discarded.
func (p *Position) SetFEN(fen string) error {
	parts := strings.Fields(fen)
	if len(parts) < 1 {
		return errors.Wrap(errors.ErrInvalidFEN, "empty FEN string")
	}

	b := newBoard()
	if err := parsePiecePositions(&b, parts[0]); err != nil {
		return err
	}
	if err := parseSideToMove(&b, parts); err != nil {
		return err
	}
	parseCastlingRights(&b, parts)
	parseEnPassant(&b, parts)
	parseClocks(&b, parts)

	p.board = b
	p.undo = nil
	return nil
}

// parsePiecePositions parses the piece placement field.
func parsePiecePositions(b *board, positions string) error {
	rank := chess.Rank('8')
	col := chess.Col('a')

	for _, c := range positions {
		switch {
		case c == '/':
			rank--
			col = 'a'
		case c >= '1' && c <= '8':
			col += chess.Col(c - '0')
		default:
			piece := fenCharToPiece(byte(c))
			if piece == chess.Empty {
				return errors.Wrapf(errors.ErrInvalidFEN, "invalid piece character %c", c)
			}
			if col > 'h' || rank < '1' {
				return errors.Wrap(errors.ErrInvalidFEN, "position out of bounds")
			}

			colour := chess.White
			if unicode.IsLower(c) {
				colour = chess.Black
			}
			b.set(col, rank, chess.MakeColouredPiece(colour, piece))

			if piece == chess.King {
				if colour == chess.White {
					b.wKingCol, b.wKingRank = col, rank
				} else {
					b.bKingCol, b.bKingRank = col, rank
				}
			}
			col++
		}
	}
	return nil
}

// parseSideToMove parses the side to move field.
func parseSideToMove(b *board, parts []string) error {
	if len(parts) < 2 {
		return nil
	}
	switch parts[1] {
	case "w":
		b.toMove = chess.White
	case "b":
		b.toMove = chess.Black
	default:
		return errors.Wrapf(errors.ErrInvalidFEN, "invalid side to move %q", parts[1])
	}
	return nil
}

// parseCastlingRights parses the castling availability field,
// including Chess960 column letters.
func parseCastlingRights(b *board, parts []string) {
	b.wKingCastle, b.wQueenCastle = 0, 0
	b.bKingCastle, b.bQueenCastle = 0, 0

	if len(parts) < 3 || parts[2] == "-" {
		return
	}
	for _, c := range parts[2] {
		switch c {
		case 'K':
			b.wKingCastle = 'h'
		case 'Q':
			b.wQueenCastle = 'a'
		case 'k':
			b.bKingCastle = 'h'
		case 'q':
			b.bQueenCastle = 'a'
		default:
			parseCastling960(b, c)
		}
	}
}

// parseCastling960 handles Chess960 castling notation.
func parseCastling960(b *board, c rune) {
	if c >= 'A' && c <= 'H' {
		col := chess.Col(unicode.ToLower(c))
		if col > b.wKingCol {
			b.wKingCastle = col
		} else {
			b.wQueenCastle = col
		}
	} else if c >= 'a' && c <= 'h' {
		col := chess.Col(c)
		if col > b.bKingCol {
			b.bKingCastle = col
		} else {
			b.bQueenCastle = col
		}
	}
}

// parseEnPassant parses the en passant target square field.
func parseEnPassant(b *board, parts []string) {
	b.enPassant = false
	if len(parts) < 4 || parts[3] == "-" || len(parts[3]) != 2 {
		return
	}
	b.enPassant = true
	b.epCol = chess.Col(parts[3][0])
	b.epRank = chess.Rank(parts[3][1])
}

// parseClocks parses the halfmove clock and fullmove number fields.
func parseClocks(b *board, parts []string) {
	if len(parts) >= 5 {
		fmt.Sscanf(parts[4], "%d", &b.halfmoveClock)
	}
	if len(parts) >= 6 {
		fmt.Sscanf(parts[5], "%d", &b.moveNumber)
	}
}

// FEN renders the current position as a FEN string.
func (p *Position) FEN() string {
	var sb strings.Builder
	b := &p.board

	for rank := chess.Rank('8'); rank >= '1'; rank-- {
		emptyCount := 0
		for col := chess.Col('a'); col <= 'h'; col++ {
			piece := b.get(col, rank)
			if piece == chess.Empty {
				emptyCount++
				continue
			}
			if emptyCount > 0 {
				sb.WriteByte(byte('0' + emptyCount))
				emptyCount = 0
			}
			letter := chess.ExtractPiece(piece).Letter()
			if chess.ExtractColour(piece) == chess.Black {
				letter += 'a' - 'A'
			}
			sb.WriteByte(letter)
		}
		if emptyCount > 0 {
			sb.WriteByte(byte('0' + emptyCount))
		}
		if rank > '1' {
			sb.WriteByte('/')
		}
	}

	sb.WriteByte(' ')
	if b.toMove == chess.White {
		sb.WriteByte('w')
	} else {
		sb.WriteByte('b')
	}

	sb.WriteByte(' ')
	hasCastling := false
	if b.wKingCastle != 0 {
		sb.WriteByte('K')
		hasCastling = true
	}
	if b.wQueenCastle != 0 {
		sb.WriteByte('Q')
		hasCastling = true
	}
	if b.bKingCastle != 0 {
		sb.WriteByte('k')
		hasCastling = true
	}
	if b.bQueenCastle != 0 {
		sb.WriteByte('q')
		hasCastling = true
	}
	if !hasCastling {
		sb.WriteByte('-')
	}

	sb.WriteByte(' ')
	if b.enPassant {
		sb.WriteByte(byte(b.epCol))
		sb.WriteByte(byte(b.epRank))
	} else {
		sb.WriteByte('-')
	}

	fmt.Fprintf(&sb, " %d %d", b.halfmoveClock, b.moveNumber)
	return sb.String()
}
