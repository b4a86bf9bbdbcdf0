package pgn

import (
	"errors"
	"fmt"
	"io"

	"github.com/lgbarn/pgn-reader-go/internal/gametree"
)

// Reader parses one PGN source into successive games.
type Reader struct {
	lx      *lexer
	game    *gametree.Game
	handler ErrorHandler
}

// NewReader creates a reader for a PGN character stream. The name
// appears in diagnostics, conventionally the file name.
func NewReader(in io.Reader, name string) *Reader {
	return &Reader{lx: newLexer(in, name)}
}

// SetErrorHandler installs the handler receiving diagnostics.
func (r *Reader) SetErrorHandler(h ErrorHandler) {
	r.handler = h
}

// syntaxError builds an error diagnostic at the current location.
func (r *Reader) syntaxError(msg string) error {
	return &SyntaxError{
		Severity: SeverityError,
		Msg:      msg,
		Source:   r.lx.source,
		Line:     r.lx.lineNumber(),
		Token:    r.lx.tokenDebugString(),
	}
}

// warning reports a warning diagnostic to the handler, if any.
func (r *Reader) warning(msg string) {
	if r.handler == nil {
		return
	}
	r.handler.HandleWarning(&SyntaxError{
		Severity: SeverityWarning,
		Msg:      msg,
		Source:   r.lx.source,
		Line:     r.lx.lineNumber(),
		Token:    r.lx.tokenDebugString(),
	})
}

// ParseGame returns the next game in the stream, or nil when the
// input is exhausted.
//
// Syntax errors inside a game do not stop the reader: the game parsed
// so far is returned with its error flag set and a trailing "-error"
// comment, and the next call resynchronizes on the following tag
// section. A game cut off by end of input is returned as is, without
// the error mark. Only I/O failures and errors hit before any game
// content surface as a non-nil error.
func (r *Reader) ParseGame() (*gametree.Game, error) {
	r.game = nil
	err := r.parseOneGame()
	if err == nil {
		return r.game, nil
	}

	var syn *SyntaxError
	if !errors.As(err, &syn) {
		return nil, err
	}
	if r.handler != nil {
		r.handler.HandleError(syn)
	}
	if r.game == nil {
		return nil, syn
	}
	if syn.Severity == SeverityError && syn.Token != "EOF" {
		r.game.SetError(true)
		r.game.AddPostMoveComment("-error")
		r.game.Pack()
	}
	return r.game, nil
}

// parseOneGame drives header and movetext parsing for a single game.
func (r *Reader) parseOneGame() error {
	found, err := r.findNextGameStart()
	if err != nil || !found {
		return err
	}
	start := r.lx.lineNumber()
	r.game = gametree.New()
	r.game.SetAlwaysAddLine(true)

	r.lx.inMovetext = false
	if err := r.parseTagPairSection(); err != nil {
		return err
	}
	r.lx.inMovetext = true
	if err := r.parseMovetextSection(); err != nil {
		return err
	}
	r.game.SetLineRange(start, r.lx.lineNumber())
	r.game.Pack()
	return nil
}

// ParseAllGames reads games until the input is exhausted.
func (r *Reader) ParseAllGames() ([]*gametree.Game, error) {
	var games []*gametree.Game
	for {
		game, err := r.ParseGame()
		if err != nil {
			return games, err
		}
		if game == nil {
			return games, nil
		}
		games = append(games, game)
	}
}

// DumpTokens writes the raw token stream to w, one token per line.
// It consumes the reader's input; meant for debugging PGN sources.
func (r *Reader) DumpTokens(w io.Writer) error {
	for {
		kind, err := r.lx.nextToken()
		if err != nil {
			return err
		}
		fmt.Fprintln(w, r.lx.tokenDebugString())
		if kind == TokEOF {
			return nil
		}
	}
}
