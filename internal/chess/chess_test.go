package chess

import (
	"testing"
)

func TestCharToPiece(t *testing.T) {
	tests := []struct {
		char byte
		want Piece
	}{
		{'K', King},
		{'Q', Queen},
		{'R', Rook},
		{'B', Bishop},
		{'N', Knight},
		{'k', Empty}, // lowercase letters are file references, not pieces
		{'b', Empty},
		{'P', Empty},
		{'x', Empty},
	}
	for _, tt := range tests {
		if got := CharToPiece(tt.char); got != tt.want {
			t.Errorf("CharToPiece(%q) = %v, want %v", tt.char, got, tt.want)
		}
	}
}

func TestColouredPieceRoundTrip(t *testing.T) {
	pieces := []Piece{Pawn, Knight, Bishop, Rook, Queen, King}
	for _, colour := range []Colour{White, Black} {
		for _, piece := range pieces {
			cp := MakeColouredPiece(colour, piece)
			if got := ExtractColour(cp); got != colour {
				t.Errorf("ExtractColour(%v %v) = %v", colour, piece, got)
			}
			if got := ExtractPiece(cp); got != piece {
				t.Errorf("ExtractPiece(%v %v) = %v", colour, piece, got)
			}
		}
	}
}

func TestCoordConversion(t *testing.T) {
	if !IsCol('a') || !IsCol('h') || IsCol('i') || IsCol('A') {
		t.Error("IsCol boundaries wrong")
	}
	if !IsRank('1') || !IsRank('8') || IsRank('0') || IsRank('9') {
		t.Error("IsRank boundaries wrong")
	}
	if got := CharToCol('z'); got != NoCol {
		t.Errorf("CharToCol('z') = %v, want NoCol", got)
	}
	if got := ToCol(ColConvert('e')); got != 'e' {
		t.Errorf("ToCol(ColConvert('e')) = %c", got)
	}
	if got := ToRank(RankConvert('4')); got != '4' {
		t.Errorf("ToRank(RankConvert('4')) = %c", got)
	}
}

func TestNagFromGlyphs(t *testing.T) {
	tests := []struct {
		glyphs string
		want   Nag
		ok     bool
	}{
		{"!", NagGoodMove, true},
		{"?", NagPoorMove, true},
		{"!!", NagVeryGoodMove, true},
		{"??", NagVeryPoorMove, true},
		{"!?", NagInterestingMove, true},
		{"?!", NagDubiousMove, true},
		{"!!!", 0, false},
		{"", 0, false},
	}
	for _, tt := range tests {
		got, ok := NagFromGlyphs(tt.glyphs)
		if got != tt.want || ok != tt.ok {
			t.Errorf("NagFromGlyphs(%q) = %v, %v, want %v, %v", tt.glyphs, got, ok, tt.want, tt.ok)
		}
	}
}

func TestResultFromString(t *testing.T) {
	tests := []struct {
		s    string
		want Result
	}{
		{"1-0", WhiteWins},
		{"0-1", BlackWins},
		{"1/2-1/2", Draw},
		{"1/2", Draw},
		{"*", NotFinished},
		{"", NoResult},
		{"2-0", NoResult},
	}
	for _, tt := range tests {
		if got := ResultFromString(tt.s); got != tt.want {
			t.Errorf("ResultFromString(%q) = %v, want %v", tt.s, got, tt.want)
		}
	}
}

func TestMoveString(t *testing.T) {
	tests := []struct {
		move Move
		want string
	}{
		{Move{Class: PawnMove, Piece: Pawn, FromCol: 'e', FromRank: '2', ToCol: 'e', ToRank: '4'}, "e2-e4"},
		{Move{Class: PieceMove, Piece: Knight, FromCol: 'g', FromRank: '1', ToCol: 'f', ToRank: '3'}, "Ng1-f3"},
		{Move{Class: PieceMove, Piece: Bishop, FromCol: 'b', FromRank: '5', ToCol: 'c', ToRank: '6', Captured: Knight}, "Bb5xc6"},
		{Move{Class: PawnMoveWithPromotion, Piece: Pawn, FromCol: 'a', FromRank: '7', ToCol: 'a', ToRank: '8', Promotion: Queen}, "a7-a8=Q"},
		{Move{Class: KingsideCastle, Piece: King}, "O-O"},
		{Move{Class: QueensideCastle, Piece: King}, "O-O-O"},
		{Move{Class: NullMove}, "--"},
		{Move{}, "(no move)"},
	}
	for _, tt := range tests {
		if got := tt.move.String(); got != tt.want {
			t.Errorf("Move.String() = %q, want %q", got, tt.want)
		}
	}
}
