package pgn

import (
	"bufio"
	"fmt"
	"io"
)

// maxTokenSize bounds a single token. Tokens this long only occur in
// broken input, so the lexer gives up rather than buffer them.
const maxTokenSize = 16384

// charEOF marks end of input in the character stream.
const charEOF = -1

// lexer produces PGN tokens from a character stream. Newlines collapse
// into plain whitespace, '%' escape lines and ';' line comments vanish
// before tokenization, and a one-character pushback provides all the
// lookahead the grammar needs.
type lexer struct {
	in     *bufio.Reader
	source string
	line   uint // newlines consumed so far

	lastChar   int
	pushedBack bool
	prevRaw    byte

	kind TokenKind
	buf  []byte
	ch   byte // the character of a single-character token

	// inMovetext relaxes line stripping: inside a movetext section
	// '%' and ';' lines are removed even right after an identifier,
	// while in the header section identifiers keep them intact.
	inMovetext bool
}

func newLexer(in io.Reader, source string) *lexer {
	return &lexer{
		in:     bufio.NewReader(in),
		source: source,
		kind:   TokEOL,
		buf:    make([]byte, 0, 64),
	}
}

// lineNumber returns the current line number, first line being 1.
func (lx *lexer) lineNumber() uint {
	return lx.line + 1
}

// get reads the next raw character, counting lines. A line ends at
// '\n', '\r' or "\r\n", each counting once.
func (lx *lexer) get() (int, error) {
	b, err := lx.in.ReadByte()
	if err == io.EOF {
		return charEOF, nil
	}
	if err != nil {
		return charEOF, err
	}
	if b == '\r' || (b == '\n' && lx.prevRaw != '\r') {
		lx.line++
	}
	lx.prevRaw = b
	return int(b), nil
}

// getChar returns the next character of the cleaned stream: any run of
// line breaks and stripped lines collapses into a single '\n'.
func (lx *lexer) getChar() (int, error) {
	if lx.pushedBack {
		lx.pushedBack = false
		return lx.lastChar, nil
	}
	ch, err := lx.get()
	if err != nil {
		return ch, err
	}
	for ch == '\n' || ch == '\r' || ((ch == '%' || ch == ';') && lx.stripsLines()) {
		for (ch == '\n' || ch == '\r') && ch >= 0 {
			if ch, err = lx.get(); err != nil {
				return ch, err
			}
		}
		if (ch == '%' || ch == ';') && lx.kind != TokComment {
			for ch != '\n' && ch != '\r' && ch >= 0 {
				if ch, err = lx.get(); err != nil {
					return ch, err
				}
			}
		} else {
			lx.pushedBack = true
			lx.lastChar = ch
			return '\n', nil
		}
	}
	lx.lastChar = ch
	return ch, nil
}

// stripsLines reports whether '%' escape lines and ';' comments are
// being removed from the stream at this point. They survive inside
// brace comments, and in the header section right after an identifier
// so that tag data is left alone.
func (lx *lexer) stripsLines() bool {
	return lx.kind != TokComment && (lx.inMovetext || lx.kind != TokIdent)
}

// skipWhitespace returns the next character above the whitespace
// range, or charEOF.
func (lx *lexer) skipWhitespace() (int, error) {
	for {
		ch, err := lx.getChar()
		if err != nil || ch < 0 || ch > ' ' {
			return ch, err
		}
	}
}

// nextToken advances to the next token and returns its kind.
func (lx *lexer) nextToken() (TokenKind, error) {
	lx.buf = lx.buf[:0]
	lx.ch = 0

	ch, err := lx.skipWhitespace()
	if err != nil {
		return TokNone, err
	}

	switch {
	case ch == charEOF:
		lx.kind = TokEOF

	case ch == '"':
		for {
			if ch, err = lx.getChar(); err != nil {
				return TokNone, err
			}
			if ch == '"' {
				break
			}
			if ch < 0 {
				return TokNone, lx.syntaxErrorf("Unfinished string")
			}
			if len(lx.buf) >= maxTokenSize {
				return TokNone, lx.syntaxErrorf("Token too long")
			}
			lx.buf = append(lx.buf, byte(ch))
		}
		lx.kind = TokString

	case ch == '{':
		// Set the kind up front so line stripping stays off while the
		// comment body is gathered.
		lx.kind = TokComment
		start := lx.lineNumber()
		for {
			if ch, err = lx.getChar(); err != nil {
				return TokNone, err
			}
			if ch == '}' {
				break
			}
			if ch == charEOF {
				return TokNone, lx.syntaxErrorf("Unfinished comment, started at line %d", start)
			}
			if ch == '\n' {
				ch = ' '
			}
			if len(lx.buf) >= maxTokenSize {
				return TokNone, lx.syntaxErrorf("Token too long")
			}
			lx.buf = append(lx.buf, byte(ch))
		}

	case isTokenChar(ch):
		lx.kind = charKind[ch]
		lx.ch = byte(ch)

	default:
		for {
			if len(lx.buf) >= maxTokenSize {
				return TokNone, lx.syntaxErrorf("Token too long")
			}
			lx.buf = append(lx.buf, byte(ch))
			if ch, err = lx.getChar(); err != nil {
				return TokNone, err
			}
			if ch < 0 || isTokenChar(ch) {
				break
			}
		}
		lx.pushedBack = true
		lx.lastChar = ch
		lx.kind = TokIdent
	}
	return lx.kind, nil
}

// token returns the kind of the last token read.
func (lx *lexer) token() TokenKind {
	return lx.kind
}

// tokenText returns the text of the last token. Only identifier,
// string and comment tokens carry text.
func (lx *lexer) tokenText() string {
	return string(lx.buf)
}

// tokenIsInt reports whether every character of the token text is a
// digit. Empty text counts: the movetext parser relies on that for
// tokens that carry no text at all.
func (lx *lexer) tokenIsInt() bool {
	for _, c := range lx.buf {
		if c < '0' || c > '9' {
			return false
		}
	}
	return true
}

// tokenInt returns the token text as a non-negative integer. Call only
// after tokenIsInt.
func (lx *lexer) tokenInt() int {
	v := 0
	for _, c := range lx.buf {
		v = 10*v + int(c-'0')
	}
	return v
}

// tokenDebugString renders the last token for diagnostics.
func (lx *lexer) tokenDebugString() string {
	switch lx.kind {
	case TokEOF:
		return "EOF"
	case TokEOL:
		return "EOL"
	case TokNone:
		return "NO_TOKEN"
	case TokIdent:
		return lx.tokenText()
	case TokComment:
		return "{" + lx.tokenText() + "}"
	case TokString:
		return "\"" + lx.tokenText() + "\""
	default:
		return string(lx.ch)
	}
}

// syntaxErrorf builds an error diagnostic at the current location.
func (lx *lexer) syntaxErrorf(format string, args ...interface{}) error {
	return &SyntaxError{
		Severity: SeverityError,
		Msg:      fmt.Sprintf(format, args...),
		Source:   lx.source,
		Line:     lx.lineNumber(),
		Token:    lx.tokenDebugString(),
	}
}
