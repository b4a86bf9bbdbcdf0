package pgn

import (
	"strings"
)

// findNextGameStart scans forward to the next '[' starting a tag pair
// section. It returns false when the input is exhausted first.
func (r *Reader) findNextGameStart() (bool, error) {
	for {
		switch r.lx.token() {
		case TokEOF:
			return false, nil
		case TokTagBegin:
			return true, nil
		}
		if _, err := r.lx.nextToken(); err != nil {
			return false, err
		}
	}
}

// parseTag parses one tag pair. It returns false without consuming
// anything when the current token does not start a tag.
func (r *Reader) parseTag() (bool, error) {
	if r.lx.token() != TokTagBegin {
		return false, nil
	}

	kind, err := r.lx.nextToken()
	if err != nil {
		return false, err
	}
	if kind != TokIdent {
		return false, r.syntaxError("Tag name expected")
	}
	name := r.lx.tokenText()

	if kind, err = r.lx.nextToken(); err != nil {
		return false, err
	}
	if kind != TokString {
		return false, r.syntaxError("Tag value expected")
	}
	value := r.lx.tokenText()

	// Tag values sometimes contain unescaped quotes (ChessBase emits
	// these); glue the pieces back together until the closing bracket.
	for {
		if kind, err = r.lx.nextToken(); err != nil {
			return false, err
		}
		if kind == TokTagEnd {
			break
		}
		if kind == TokEOF {
			return false, r.syntaxError("']' expected")
		}
		value = value + " " + r.lx.tokenText()
	}

	if err := r.game.SetTag(name, strings.TrimSpace(value)); err != nil {
		return false, r.syntaxError(err.Error())
	}
	return true, nil
}

// parseTagPairSection parses all consecutive tag pairs of a game.
func (r *Reader) parseTagPairSection() error {
	if _, err := r.findNextGameStart(); err != nil {
		return err
	}
	for {
		ok, err := r.parseTag()
		if err != nil {
			return err
		}
		if !ok {
			return nil
		}
		if _, err := r.lx.nextToken(); err != nil {
			return err
		}
	}
}
