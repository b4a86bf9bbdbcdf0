package pgn

import (
	"strings"
	"testing"

	"github.com/google/go-cmp/cmp"
)

// lexAll tokenizes the whole input and returns the debug rendering of
// every token.
func lexAll(t *testing.T, input string, movetext bool) []string {
	t.Helper()
	lx := newLexer(strings.NewReader(input), "test")
	lx.inMovetext = movetext
	var out []string
	for {
		kind, err := lx.nextToken()
		if err != nil {
			t.Fatalf("nextToken: %v", err)
		}
		if kind == TokEOF {
			return out
		}
		out = append(out, lx.tokenDebugString())
	}
}

func TestLexTagPair(t *testing.T) {
	got := lexAll(t, `[Event "Test Event"]`, false)
	want := []string{"[", "Event", `"Test Event"`, "]"}
	if diff := cmp.Diff(want, got); diff != "" {
		t.Errorf("token mismatch (-want +got):\n%s", diff)
	}
}

func TestLexMovetext(t *testing.T) {
	got := lexAll(t, "1. e4 {good} (1... e5) $3 !? *", true)
	want := []string{
		"1", ".", "e4", "{good}", "(", "1", ".", ".", ".", "e5", ")",
		"$", "3", "!", "?", "*",
	}
	if diff := cmp.Diff(want, got); diff != "" {
		t.Errorf("token mismatch (-want +got):\n%s", diff)
	}
}

func TestLexStripsEscapeLines(t *testing.T) {
	input := "% escape line\n[Event \"x\"]\n% another one\n1. e4"
	got := lexAll(t, input, false)
	want := []string{"[", "Event", `"x"`, "]", "1", ".", "e4"}
	if diff := cmp.Diff(want, got); diff != "" {
		t.Errorf("token mismatch (-want +got):\n%s", diff)
	}
}

func TestLexSemicolonComment(t *testing.T) {
	// In a movetext section the rest of the line disappears.
	got := lexAll(t, "e4 ; rest of line\ne5", true)
	want := []string{"e4", "e5"}
	if diff := cmp.Diff(want, got); diff != "" {
		t.Errorf("movetext mismatch (-want +got):\n%s", diff)
	}

	// Right after a header identifier the semicolon is data.
	got = lexAll(t, "e4 ; x\ne5", false)
	want = []string{"e4", ";", "x", "e5"}
	if diff := cmp.Diff(want, got); diff != "" {
		t.Errorf("header mismatch (-want +got):\n%s", diff)
	}
}

func TestLexCommentNewlinesBecomeSpaces(t *testing.T) {
	got := lexAll(t, "{line one\nline two\n\nline three}", true)
	want := []string{"{line one line two line three}"}
	if diff := cmp.Diff(want, got); diff != "" {
		t.Errorf("comment mismatch (-want +got):\n%s", diff)
	}
}

func TestLexCommentKeepsEscapeCharacters(t *testing.T) {
	got := lexAll(t, "{50% score; not bad}", true)
	want := []string{"{50% score; not bad}"}
	if diff := cmp.Diff(want, got); diff != "" {
		t.Errorf("comment mismatch (-want +got):\n%s", diff)
	}
}

func TestLexUnfinishedString(t *testing.T) {
	lx := newLexer(strings.NewReader(`"abc`), "test")
	_, err := lx.nextToken()
	syn, ok := err.(*SyntaxError)
	if !ok {
		t.Fatalf("expected *SyntaxError, got %v", err)
	}
	if syn.Msg != "Unfinished string" {
		t.Errorf("Msg = %q, want %q", syn.Msg, "Unfinished string")
	}
}

func TestLexUnfinishedComment(t *testing.T) {
	lx := newLexer(strings.NewReader("\n\n{never closed"), "test")
	_, err := lx.nextToken()
	syn, ok := err.(*SyntaxError)
	if !ok {
		t.Fatalf("expected *SyntaxError, got %v", err)
	}
	if syn.Msg != "Unfinished comment, started at line 3" {
		t.Errorf("Msg = %q", syn.Msg)
	}
}

func TestLexTokenTooLong(t *testing.T) {
	lx := newLexer(strings.NewReader(strings.Repeat("a", maxTokenSize+1)), "test")
	_, err := lx.nextToken()
	syn, ok := err.(*SyntaxError)
	if !ok {
		t.Fatalf("expected *SyntaxError, got %v", err)
	}
	if syn.Msg != "Token too long" {
		t.Errorf("Msg = %q, want %q", syn.Msg, "Token too long")
	}
}

func TestLexLineNumbers(t *testing.T) {
	lx := newLexer(strings.NewReader("one\ntwo\nthree"), "test")
	for i := 0; i < 3; i++ {
		if _, err := lx.nextToken(); err != nil {
			t.Fatal(err)
		}
	}
	if got := lx.lineNumber(); got != 3 {
		t.Errorf("lineNumber = %d, want 3", got)
	}
}

func TestLexLineNumbersCarriageReturns(t *testing.T) {
	// Old Mac '\r' and Windows "\r\n" endings each count as one line.
	lx := newLexer(strings.NewReader("one\rtwo\r\nthree"), "test")
	for i := 0; i < 3; i++ {
		if _, err := lx.nextToken(); err != nil {
			t.Fatal(err)
		}
	}
	if got := lx.lineNumber(); got != 3 {
		t.Errorf("lineNumber = %d, want 3", got)
	}
}

func TestTokenIsInt(t *testing.T) {
	lx := newLexer(strings.NewReader("42 x7 ."), "test")

	if _, err := lx.nextToken(); err != nil {
		t.Fatal(err)
	}
	if !lx.tokenIsInt() || lx.tokenInt() != 42 {
		t.Errorf("token %q: isInt=%v int=%d", lx.tokenText(), lx.tokenIsInt(), lx.tokenInt())
	}

	if _, err := lx.nextToken(); err != nil {
		t.Fatal(err)
	}
	if lx.tokenIsInt() {
		t.Errorf("token %q should not be an int", lx.tokenText())
	}

	// Tokens without text count as integers; the movetext parser
	// depends on that.
	if _, err := lx.nextToken(); err != nil {
		t.Fatal(err)
	}
	if lx.token() != TokPeriod || !lx.tokenIsInt() {
		t.Errorf("empty token text should count as int")
	}
}
