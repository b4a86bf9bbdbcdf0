package position

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/lgbarn/pgn-reader-go/internal/chess"
	"github.com/lgbarn/pgn-reader-go/internal/errors"
)

func TestInitialPosition(t *testing.T) {
	p := New()
	require.Equal(t, chess.White, p.ToPlay())
	require.Equal(t, chess.W(chess.Pawn), p.PieceAt('e', '2'))
	require.Equal(t, chess.B(chess.King), p.PieceAt('e', '8'))
	require.Equal(t, chess.Empty, p.PieceAt('d', '4'))
	require.Equal(t, InitialFEN, p.FEN())
}

func TestPawnMoveResolution(t *testing.T) {
	p := New()

	move, err := p.PawnMove(chess.NoCol, 'e', '4', chess.Empty)
	require.NoError(t, err)
	require.Equal(t, chess.PawnMove, move.Class)
	require.Equal(t, chess.Col('e'), move.FromCol)
	require.Equal(t, chess.Rank('2'), move.FromRank)

	require.NoError(t, p.DoMove(move))
	require.Equal(t, chess.Black, p.ToPlay())
	require.Equal(t, "rnbqkbnr/pppppppp/8/8/4P3/8/PPPP1PPP/RNBQKBNR b KQkq e3 0 1", p.FEN())

	// The square in front of an unmoved pawn is occupied for e3.
	_, err = p.PawnMove(chess.NoCol, 'e', '4', chess.Empty)
	require.ErrorIs(t, err, errors.ErrIllegalMove)
}

func TestPieceMoveDisambiguation(t *testing.T) {
	p, err := NewFromFEN("k7/8/8/8/8/8/1K6/N3N3 w - - 0 1")
	require.NoError(t, err)

	// Both knights reach c2; without a hint the move is ambiguous.
	_, err = p.PieceMove(chess.Knight, chess.NoCol, chess.NoRank, 'c', '2')
	require.ErrorIs(t, err, errors.ErrAmbiguousMove)

	move, err := p.PieceMove(chess.Knight, 'a', chess.NoRank, 'c', '2')
	require.NoError(t, err)
	require.Equal(t, chess.Col('a'), move.FromCol)
	require.Equal(t, chess.Rank('1'), move.FromRank)
}

func TestPinnedPieceCannotMove(t *testing.T) {
	p, err := NewFromFEN("k7/8/8/8/8/4r3/4N3/4K3 w - - 0 1")
	require.NoError(t, err)

	// The e2 knight is pinned against the king by the rook.
	_, err = p.PieceMove(chess.Knight, chess.NoCol, chess.NoRank, 'c', '3')
	require.ErrorIs(t, err, errors.ErrIllegalMove)
}

func TestEnPassant(t *testing.T) {
	p, err := NewFromFEN("k7/8/8/3pP3/8/8/8/K7 w - d6 0 1")
	require.NoError(t, err)

	move, err := p.PawnMove('e', 'd', '6', chess.Empty)
	require.NoError(t, err)
	require.Equal(t, chess.EnPassantPawnMove, move.Class)
	require.Equal(t, chess.Pawn, move.Captured)

	require.NoError(t, p.DoMove(move))
	require.Equal(t, chess.Empty, p.PieceAt('d', '5'))
	require.Equal(t, chess.W(chess.Pawn), p.PieceAt('d', '6'))
}

func TestPromotion(t *testing.T) {
	p, err := NewFromFEN("8/P6k/8/8/8/8/8/K7 w - - 0 1")
	require.NoError(t, err)

	_, err = p.PawnMove(chess.NoCol, 'a', '8', chess.Empty)
	require.ErrorIs(t, err, errors.ErrIllegalMove, "promotion piece is required on the last rank")

	move, err := p.PawnMove(chess.NoCol, 'a', '8', chess.Queen)
	require.NoError(t, err)
	require.Equal(t, chess.PawnMoveWithPromotion, move.Class)

	require.NoError(t, p.DoMove(move))
	require.Equal(t, chess.W(chess.Queen), p.PieceAt('a', '8'))
}

func TestCastling(t *testing.T) {
	t.Run("both sides legal", func(t *testing.T) {
		p, err := NewFromFEN("r3k2r/8/8/8/8/8/8/R3K2R w KQkq - 0 1")
		require.NoError(t, err)

		require.NoError(t, p.DoMove(p.Castle(false)))
		require.Equal(t, chess.W(chess.King), p.PieceAt('c', '1'))
		require.Equal(t, chess.W(chess.Rook), p.PieceAt('d', '1'))

		require.NoError(t, p.DoMove(p.Castle(true)))
		require.Equal(t, chess.B(chess.King), p.PieceAt('g', '8'))
		require.Equal(t, chess.B(chess.Rook), p.PieceAt('f', '8'))
	})

	t.Run("king may not pass through check", func(t *testing.T) {
		p, err := NewFromFEN("4k3/8/8/8/8/5r2/8/R3K2R w KQ - 0 1")
		require.NoError(t, err)

		err = p.DoMove(p.Castle(false))
		require.ErrorIs(t, err, errors.ErrIllegalMove)

		require.NoError(t, p.DoMove(p.Castle(true)))
	})

	t.Run("rights lost after rook move", func(t *testing.T) {
		p, err := NewFromFEN("4k3/8/8/8/8/8/8/R3K3 w Q - 0 1")
		require.NoError(t, err)

		move, err := p.PieceMove(chess.Rook, chess.NoCol, chess.NoRank, 'b', '1')
		require.NoError(t, err)
		require.NoError(t, p.DoMove(move))

		// Shuffle the black king, then move the rook back.
		move, err = p.PieceMove(chess.King, chess.NoCol, chess.NoRank, 'd', '8')
		require.NoError(t, err)
		require.NoError(t, p.DoMove(move))
		move, err = p.PieceMove(chess.Rook, chess.NoCol, chess.NoRank, 'a', '1')
		require.NoError(t, err)
		require.NoError(t, p.DoMove(move))
		move, err = p.PieceMove(chess.King, chess.NoCol, chess.NoRank, 'e', '8')
		require.NoError(t, err)
		require.NoError(t, p.DoMove(move))

		err = p.DoMove(p.Castle(false))
		require.ErrorIs(t, err, errors.ErrIllegalMove)
	})
}

func TestNullMove(t *testing.T) {
	p := New()
	require.NoError(t, p.DoMove(p.Null()))
	require.Equal(t, chess.Black, p.ToPlay())
	require.NoError(t, p.UndoMove())
	require.Equal(t, chess.White, p.ToPlay())
}

func TestUndoRestoresPosition(t *testing.T) {
	p := New()
	before := p.FEN()

	move, err := p.PawnMove(chess.NoCol, 'd', '4', chess.Empty)
	require.NoError(t, err)
	require.NoError(t, p.DoMove(move))
	require.Equal(t, 1, p.PlyDepth())

	require.NoError(t, p.UndoMove())
	require.Equal(t, 0, p.PlyDepth())
	require.Equal(t, before, p.FEN())

	require.Error(t, p.UndoMove(), "undo beyond the start must fail")
}

func TestInCheck(t *testing.T) {
	p, err := NewFromFEN("rnbqkbnr/pppp1ppp/8/4p3/6P1/5P2/PPPPP2P/RNBQKBNR b KQkq - 0 2")
	require.NoError(t, err)

	move, err := p.PieceMove(chess.Queen, chess.NoCol, chess.NoRank, 'h', '4')
	require.NoError(t, err)
	require.NoError(t, p.DoMove(move))
	require.True(t, p.InCheck(chess.White))
	require.False(t, p.InCheck(chess.Black))
}

func TestFENRoundTrip(t *testing.T) {
	fens := []string{
		InitialFEN,
		"k7/8/8/3pP3/8/8/8/K7 w - d6 0 1",
		"r3k2r/8/8/8/8/8/8/R3K2R b KQkq - 3 17",
		"8/P6k/8/8/8/8/8/K7 w - - 12 40",
	}
	for _, fen := range fens {
		p, err := NewFromFEN(fen)
		require.NoError(t, err)
		require.Equal(t, fen, p.FEN())
	}

	_, err := NewFromFEN("not a position")
	require.ErrorIs(t, err, errors.ErrInvalidFEN)
}
