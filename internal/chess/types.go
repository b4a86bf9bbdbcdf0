// Package chess provides the core value types shared by the PGN
// reader: colours, pieces, character-based board coordinates, resolved
// moves, results and numeric annotation glyphs.
package chess

// Colour represents the colour of a piece or player.
type Colour int

const (
	Black Colour = iota
	White
)

// String returns the string representation of a colour.
func (c Colour) String() string {
	if c == White {
		return "White"
	}
	return "Black"
}

// Opposite returns the opposite colour.
func (c Colour) Opposite() Colour {
	if c == White {
		return Black
	}
	return White
}

// Piece represents a chess piece type.
type Piece int

const (
	Off   Piece = iota // Off the board (hedge square)
	Empty              // Empty square
	Pawn
	Knight
	Bishop
	Rook
	Queen
	King
	NumPieceValues
)

// String returns the string representation of a piece.
func (p Piece) String() string {
	names := []string{"Off", "Empty", "Pawn", "Knight", "Bishop", "Rook", "Queen", "King"}
	if int(p) < len(names) {
		return names[p]
	}
	return "Unknown"
}

// Letter returns the single English letter for a piece (uppercase).
func (p Piece) Letter() byte {
	letters := []byte{' ', ' ', 'P', 'N', 'B', 'R', 'Q', 'K'}
	if int(p) < len(letters) {
		return letters[p]
	}
	return '?'
}

// Rank represents a chess rank (row) as its character, '1' to '8'.
// The zero value means "no rank" (unknown / not disambiguated).
type Rank byte

// Col represents a chess file (column) as its character, 'a' to 'h'.
// The zero value means "no column".
type Col byte

// Constants for board dimensions and coordinates.
const (
	BoardSize = 8
	Hedge     = 2 // Hedge size for knight move calculations

	RankBase  = '1'
	ColBase   = 'a'
	FirstRank = RankBase
	LastRank  = RankBase + BoardSize - 1
	FirstCol  = ColBase
	LastCol   = ColBase + BoardSize - 1
)

// NoCol and NoRank are the "not specified" coordinate values used by
// the SAN disambiguation machinery.
const (
	NoCol  Col  = 0
	NoRank Rank = 0
)

// IsCol reports whether c is a valid column character.
func IsCol(c byte) bool {
	return c >= FirstCol && c <= LastCol
}

// IsRank reports whether c is a valid rank character.
func IsRank(c byte) bool {
	return c >= FirstRank && c <= LastRank
}

// CharToCol returns the column for a file letter, or NoCol.
func CharToCol(c byte) Col {
	if IsCol(c) {
		return Col(c)
	}
	return NoCol
}

// CharToRank returns the rank for a rank digit, or NoRank.
func CharToRank(c byte) Rank {
	if IsRank(c) {
		return Rank(c)
	}
	return NoRank
}

// CharToPiece maps an English piece letter to a piece type.
// Lowercase letters are not accepted: in SAN a lowercase letter is a
// file reference, never a piece.
func CharToPiece(c byte) Piece {
	switch c {
	case 'K':
		return King
	case 'Q':
		return Queen
	case 'R':
		return Rook
	case 'B':
		return Bishop
	case 'N':
		return Knight
	default:
		return Empty
	}
}

// RankConvert converts a rank character to a board array index.
func RankConvert(rank Rank) int {
	if rank >= FirstRank && rank <= LastRank {
		return int(rank-RankBase) + Hedge
	}
	return 0
}

// ColConvert converts a column character to a board array index.
func ColConvert(col Col) int {
	if col >= FirstCol && col <= LastCol {
		return int(col-ColBase) + Hedge
	}
	return 0
}

// ToRank converts a board array index back to a rank character.
func ToRank(r int) Rank {
	return Rank(r + int(RankBase) - Hedge)
}

// ToCol converts a board array index back to a column character.
func ToCol(c int) Col {
	return Col(c + int(ColBase) - Hedge)
}

// ColourOffset returns +1 for White, -1 for Black (pawn direction).
func ColourOffset(colour Colour) int {
	if colour == White {
		return 1
	}
	return -1
}

// PieceShift is used for encoding coloured pieces.
const PieceShift = 3

// MakeColouredPiece creates a coloured piece value.
func MakeColouredPiece(colour Colour, piece Piece) Piece {
	return Piece((int(piece) << PieceShift) | int(colour))
}

// W creates a white piece.
func W(piece Piece) Piece {
	return MakeColouredPiece(White, piece)
}

// B creates a black piece.
func B(piece Piece) Piece {
	return MakeColouredPiece(Black, piece)
}

// ExtractColour extracts the colour from a coloured piece.
func ExtractColour(colouredPiece Piece) Colour {
	return Colour(colouredPiece & 0x01)
}

// ExtractPiece extracts the piece type from a coloured piece.
func ExtractPiece(colouredPiece Piece) Piece {
	return Piece(colouredPiece >> PieceShift)
}

// NullMoveString is the PGN representation of a null move.
const NullMoveString = "--"
