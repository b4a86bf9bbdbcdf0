package gametree

import (
	"testing"

	"github.com/google/go-cmp/cmp"

	"github.com/lgbarn/pgn-reader-go/internal/chess"
	"github.com/lgbarn/pgn-reader-go/internal/errors"
)

// play resolves and plays a pawn push, failing the test on error.
func play(t *testing.T, g *Game, toCol chess.Col, toRank chess.Rank) {
	t.Helper()
	move, err := g.Position().PawnMove(chess.NoCol, toCol, toRank, chess.Empty)
	if err != nil {
		t.Fatalf("PawnMove(%c%c): %v", toCol, toRank, err)
	}
	if err := g.DoMove(move); err != nil {
		t.Fatalf("DoMove(%c%c): %v", toCol, toRank, err)
	}
}

func TestDoMoveAdvancesCursor(t *testing.T) {
	g := New()
	play(t, g, 'e', '4')
	play(t, g, 'e', '5')

	if got := g.PlyCount(); got != 2 {
		t.Errorf("PlyCount = %d, want 2", got)
	}
	if g.CurNode().IsRoot() {
		t.Fatal("cursor still on root after moves")
	}
	if got := g.CurNode().Move().String(); got != "e7-e5" {
		t.Errorf("cursor move = %q, want %q", got, "e7-e5")
	}
	if got := g.Position().ToPlay(); got != chess.White {
		t.Errorf("ToPlay = %v, want White", got)
	}

	if err := g.UndoMove(); err != nil {
		t.Fatalf("UndoMove: %v", err)
	}
	if got := g.CurNode().Move().String(); got != "e2-e4" {
		t.Errorf("cursor after undo = %q, want %q", got, "e2-e4")
	}
}

func TestVariations(t *testing.T) {
	g := New()
	play(t, g, 'e', '4')
	play(t, g, 'e', '5')

	// Take back e5 and play the alternative d5.
	if err := g.UndoMove(); err != nil {
		t.Fatalf("UndoMove: %v", err)
	}
	play(t, g, 'd', '5')

	e4 := g.Root().MainChild()
	if got := e4.NumChildren(); got != 2 {
		t.Fatalf("e4 children = %d, want 2", got)
	}
	if got := e4.MainChild().Move().String(); got != "e7-e5" {
		t.Errorf("main child = %q, want e7-e5", got)
	}
	vars := e4.Variations()
	if len(vars) != 1 || vars[0].Move().String() != "d7-d5" {
		t.Errorf("variations = %v", vars)
	}

	// The cursor stands inside the variation; back out of it.
	g.GoBackToMainLine()
	if g.CurNode() != e4 {
		t.Error("GoBackToMainLine did not stop on the branch point")
	}
	if got := g.Position().PlyDepth(); got != 1 {
		t.Errorf("PlyDepth after GoBackToMainLine = %d, want 1", got)
	}
}

func TestAlwaysAddLine(t *testing.T) {
	g := New()

	play(t, g, 'e', '4')
	if err := g.UndoMove(); err != nil {
		t.Fatal(err)
	}
	play(t, g, 'e', '4')
	if got := g.Root().NumChildren(); got != 1 {
		t.Errorf("children without alwaysAddLine = %d, want 1", got)
	}

	g = New()
	g.SetAlwaysAddLine(true)
	play(t, g, 'e', '4')
	if err := g.UndoMove(); err != nil {
		t.Fatal(err)
	}
	play(t, g, 'e', '4')
	if got := g.Root().NumChildren(); got != 2 {
		t.Errorf("children with alwaysAddLine = %d, want 2", got)
	}
}

func TestGotoNode(t *testing.T) {
	g := New()
	play(t, g, 'e', '4')
	play(t, g, 'e', '5')
	play(t, g, 'd', '4')
	target := g.CurNode()

	if err := g.GotoNode(g.Root()); err != nil {
		t.Fatalf("GotoNode(root): %v", err)
	}
	if g.Position().PlyDepth() != 0 {
		t.Errorf("PlyDepth at root = %d", g.Position().PlyDepth())
	}

	if err := g.GotoNode(target); err != nil {
		t.Fatalf("GotoNode(target): %v", err)
	}
	if g.CurNode() != target {
		t.Error("cursor not on target")
	}
	if got := g.Position().PlyDepth(); got != 3 {
		t.Errorf("PlyDepth = %d, want 3", got)
	}

	other := New()
	play(t, other, 'e', '4')
	if err := g.GotoNode(other.CurNode()); !errors.Is(err, errors.ErrNoSuchNode) {
		t.Errorf("GotoNode(foreign node) = %v, want ErrNoSuchNode", err)
	}
}

func TestTags(t *testing.T) {
	g := New()
	if err := g.SetTag("White", "Kasparov, Garry"); err != nil {
		t.Fatalf("SetTag: %v", err)
	}
	if got := g.Tag("White"); got != "Kasparov, Garry" {
		t.Errorf("Tag(White) = %q", got)
	}
	if err := g.SetTag("Bad Tag", "x"); !errors.Is(err, errors.ErrInvalidTag) {
		t.Errorf("SetTag with space = %v, want ErrInvalidTag", err)
	}

	// A FEN tag before the first move re-seats the position.
	fen := "k7/8/8/3pP3/8/8/8/K7 w - d6 0 1"
	if err := g.SetTag("FEN", fen); err != nil {
		t.Fatalf("SetTag(FEN): %v", err)
	}
	if got := g.Position().FEN(); got != fen {
		t.Errorf("position after FEN tag = %q, want %q", got, fen)
	}
}

func TestComments(t *testing.T) {
	g := New()
	g.AddPostMoveComment("before any move")
	if got := g.PrefixComment(); got != "before any move" {
		t.Errorf("PrefixComment = %q", got)
	}

	play(t, g, 'e', '4')
	g.AddPreMoveComment("first")
	g.AddPreMoveComment("second")
	if got := g.CurNode().PreComment(); got != "first second" {
		t.Errorf("PreComment = %q, want %q", got, "first second")
	}
}

func TestSetResultFillsTag(t *testing.T) {
	g := New()
	g.SetResult(chess.WhiteWins)
	if got := g.Tag("Result"); got != "1-0" {
		t.Errorf("Result tag = %q, want 1-0", got)
	}

	// An explicit tag is left alone.
	g = New()
	if err := g.SetTag("Result", "0-1"); err != nil {
		t.Fatal(err)
	}
	g.SetResult(chess.Draw)
	if got := g.Tag("Result"); got != "0-1" {
		t.Errorf("Result tag = %q, want 0-1", got)
	}
	if got := g.Result(); got != chess.Draw {
		t.Errorf("Result = %v, want Draw", got)
	}
}

// walkRecorder collects traversal events as readable strings.
type walkRecorder struct {
	events []string
}

func (w *walkRecorder) OnMove(move chess.Move, nags []chess.Nag, pre, post string, ply, level int) {
	w.events = append(w.events, move.String())
}

func (w *walkRecorder) OnLineStart(level int) {
	w.events = append(w.events, "(")
}

func (w *walkRecorder) OnLineEnd(level int) {
	w.events = append(w.events, ")")
}

func TestWalkOrder(t *testing.T) {
	g := New()
	play(t, g, 'e', '4')
	play(t, g, 'e', '5')
	if err := g.UndoMove(); err != nil {
		t.Fatal(err)
	}
	play(t, g, 'd', '5')
	play(t, g, 'e', '5') // e4-e5 push inside the variation
	g.GoBackToMainLine()
	if err := g.GotoNode(g.Root().MainChild().MainChild()); err != nil {
		t.Fatal(err)
	}
	play(t, g, 'd', '4') // continue the main line after 1... e5

	rec := &walkRecorder{}
	Walk(g, rec)

	want := []string{"e2-e4", "e7-e5", "(", "d7-d5", "e4-e5", ")", "d2-d4"}
	if diff := cmp.Diff(want, rec.events); diff != "" {
		t.Errorf("Walk order mismatch (-want +got):\n%s", diff)
	}
}
