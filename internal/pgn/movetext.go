package pgn

import (
	"fmt"
	"strings"

	"github.com/lgbarn/pgn-reader-go/internal/chess"
	"github.com/lgbarn/pgn-reader-go/internal/gametree"
)

// parseMovetextSection parses moves, variations, comments and NAGs up
// to the terminating result token.
//
// Comment placement follows common PGN practice: a comment normally
// belongs to the move before it (post-move), but a comment pending
// when a variation opens, or gathered right after one closes, sticks
// to the following move instead (pre-move).
func (r *Reader) parseMovetextSection() error {
	comment := ""
	goneBack := false
	newLine := false
	var lines []*gametree.Node

	for r.tokenAsResult() == chess.NoResult {
		switch {
		case r.lx.token() == TokLineBegin:
			newLine = true
			r.flushPostMoveComment(comment)
			comment = ""
			// Remember the branch point; the variation replaces the
			// move just played.
			lines = append(lines, r.game.CurNode())
			if !r.game.CurNode().IsRoot() {
				if err := r.game.UndoMove(); err != nil {
					return r.syntaxError(err.Error())
				}
			}
			if _, err := r.lx.nextToken(); err != nil {
				return err
			}

		case r.lx.token() == TokLineEnd:
			newLine = false
			r.flushPostMoveComment(comment)
			comment = ""
			if len(lines) == 0 {
				return r.syntaxError("Unexpected variation end")
			}
			branch := lines[len(lines)-1]
			lines = lines[:len(lines)-1]
			r.game.GoBackToMainLine()
			if r.game.CurNode() != branch {
				if err := r.game.GotoNode(branch); err != nil {
					return r.syntaxError(err.Error())
				}
			}
			goneBack = true
			if _, err := r.lx.nextToken(); err != nil {
				return err
			}

		case r.lx.token() == TokComment:
			if comment != "" {
				comment = comment + " " + r.lx.tokenText()
			} else {
				comment = r.lx.tokenText()
			}
			if !newLine && !goneBack {
				r.flushPostMoveComment(comment)
				comment = ""
			}
			goneBack = false
			if _, err := r.lx.nextToken(); err != nil {
				return err
			}

		case isNAGStart(r.lx.token()):
			if err := r.parseNAG(); err != nil {
				return err
			}

		default:
			newLine = false
			if err := r.parseHalfMove(); err != nil {
				return err
			}
			r.flushPreMoveComment(comment)
			comment = ""
			if _, err := r.lx.nextToken(); err != nil {
				return err
			}
		}
	}

	r.flushPostMoveComment(comment)
	r.game.SetResult(r.tokenAsResult())
	if len(lines) != 0 {
		return r.syntaxError(fmt.Sprintf("Unfinished variations in game: %d", len(lines)))
	}
	return nil
}

// tokenAsResult maps the current token to a game result. Only the
// standard terminators count; the abbreviation "1/2" is accepted as a
// draw.
func (r *Reader) tokenAsResult() chess.Result {
	switch r.lx.token() {
	case TokAsterisk:
		return chess.NotFinished
	case TokEOF, TokComment:
		return chess.NoResult
	}
	return chess.ResultFromString(r.lx.tokenText())
}

// isNAGStart reports whether the token starts an annotation.
func isNAGStart(kind TokenKind) bool {
	return kind == TokNAGBegin || kind == TokBang || kind == TokQuery
}

// parseNAG parses a "$n" annotation or a run of direct '!'/'?' glyphs
// and leaves the lexer on the following token.
func (r *Reader) parseNAG() error {
	switch r.lx.token() {
	case TokNAGBegin:
		if _, err := r.lx.nextToken(); err != nil {
			return err
		}
		if !r.lx.tokenIsInt() {
			return r.syntaxError("Illegal NAG: number expected")
		}
		if nag := chess.Nag(r.lx.tokenInt()); nag > 0 {
			r.game.AddNag(nag)
		}
		_, err := r.lx.nextToken()
		return err

	case TokBang, TokQuery:
		var glyphs strings.Builder
		for {
			if r.lx.token() == TokBang {
				glyphs.WriteByte('!')
			} else {
				glyphs.WriteByte('?')
			}
			if _, err := r.lx.nextToken(); err != nil {
				return err
			}
			if r.lx.token() != TokBang && r.lx.token() != TokQuery {
				break
			}
		}
		nag, ok := chess.NagFromGlyphs(glyphs.String())
		if !ok {
			return r.syntaxError(fmt.Sprintf("Illegal direct NAG %s", glyphs.String()))
		}
		r.warning(fmt.Sprintf("Direct NAG used %s -> $%d", glyphs.String(), nag))
		r.game.AddNag(nag)
		return nil

	default:
		return r.syntaxError("NAG begin expected")
	}
}

// parseHalfMove skips a leading move number with its periods, resolves
// the move token and plays it on the game.
func (r *Reader) parseHalfMove() error {
	if r.lx.tokenIsInt() {
		for {
			kind, err := r.lx.nextToken()
			if err != nil {
				return err
			}
			if kind != TokPeriod {
				break
			}
		}
	}
	move, err := r.tokenAsMove()
	if err != nil {
		return err
	}
	if !move.IsNoMove() {
		if err := r.game.DoMove(move); err != nil {
			return r.syntaxError(err.Error())
		}
	}
	return nil
}

// flushPreMoveComment attaches a pending comment to the current move
// as a pre-move comment.
func (r *Reader) flushPreMoveComment(comment string) {
	if text := collapseSpaces(comment); text != "" {
		r.game.AddPreMoveComment(text)
	}
}

// flushPostMoveComment attaches a pending comment to the current move
// as a post-move comment.
func (r *Reader) flushPostMoveComment(comment string) {
	if text := collapseSpaces(comment); text != "" {
		r.game.AddPostMoveComment(text)
	}
}

// collapseSpaces trims a comment and folds whitespace runs into single
// spaces.
func collapseSpaces(s string) string {
	return strings.Join(strings.Fields(s), " ")
}
