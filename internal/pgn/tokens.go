// Package pgn reads PGN files into game trees. The reader follows the
// import-format side of the PGN standard: it tokenizes the raw
// character stream, parses tag pair sections and movetext sections,
// resolves SAN moves against a live position and reports diagnostics
// through a pluggable error handler.
package pgn

// TokenKind classifies the last token the lexer produced.
type TokenKind int

const (
	// TokNone is the zero kind, before any token has been read.
	TokNone TokenKind = iota
	TokEOF
	// TokEOL is the initial kind of a fresh lexer. Newlines are
	// whitespace and never surface as tokens, but the initial kind
	// matters for escape-line stripping before the first token.
	TokEOL
	TokIdent
	TokString
	TokComment

	// Single-character tokens.
	TokAsterisk
	TokCommentEnd
	TokTagBegin
	TokTagEnd
	TokLineBegin
	TokLineEnd
	TokNAGBegin
	TokPeriod
	TokBang
	TokQuery
	// TokReserved covers '<' and '>', reserved by the PGN standard for
	// future expansion. They terminate tokens but have no meaning.
	TokReserved

	// tokWhitespace and tokQuote are classification-only kinds used by
	// the character table; they never become the lexer's token kind.
	tokWhitespace
	tokQuote
)

// tokenKindNames maps token kinds to their string representations.
var tokenKindNames = [...]string{
	TokNone:       "NO_TOKEN",
	TokEOF:        "EOF",
	TokEOL:        "EOL",
	TokIdent:      "IDENT",
	TokString:     "STRING",
	TokComment:    "COMMENT",
	TokAsterisk:   "ASTERISK",
	TokCommentEnd: "COMMENT_END",
	TokTagBegin:   "TAG_BEGIN",
	TokTagEnd:     "TAG_END",
	TokLineBegin:  "LINE_BEGIN",
	TokLineEnd:    "LINE_END",
	TokNAGBegin:   "NAG_BEGIN",
	TokPeriod:     "PERIOD",
	TokBang:       "BANG",
	TokQuery:      "QUERY",
	TokReserved:   "RESERVED",
	tokWhitespace: "WHITESPACE",
	tokQuote:      "QUOTE",
}

// String returns the string representation of a token kind.
func (k TokenKind) String() string {
	if int(k) < len(tokenKindNames) {
		return tokenKindNames[k]
	}
	return "UNKNOWN"
}

// charKind classifies single characters: whitespace, the characters
// that form one-character tokens, and the string quote. Everything
// else (charKind zero, TokNone) is an identifier character.
var charKind [256]TokenKind

func init() {
	initCharTable()
}

// initCharTable fills the character classification table.
func initCharTable() {
	for c := 0; c <= ' '; c++ {
		charKind[c] = tokWhitespace
	}
	charKind['"'] = tokQuote
	charKind['*'] = TokAsterisk
	charKind['}'] = TokCommentEnd
	charKind['['] = TokTagBegin
	charKind[']'] = TokTagEnd
	charKind['('] = TokLineBegin
	charKind[')'] = TokLineEnd
	charKind['$'] = TokNAGBegin
	charKind['.'] = TokPeriod
	charKind['!'] = TokBang
	charKind['?'] = TokQuery
	charKind['<'] = TokReserved
	charKind['>'] = TokReserved
	// '{' starts a comment token and is handled directly by the lexer,
	// but it must still terminate a running identifier.
	charKind['{'] = TokComment
}

// isTokenChar reports whether ch terminates an identifier.
func isTokenChar(ch int) bool {
	return ch >= 0 && ch < len(charKind) && charKind[ch] != TokNone
}
