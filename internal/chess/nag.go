package chess

import "fmt"

// Nag is a Numeric Annotation Glyph code as defined by the PGN
// standard ($1 = good move, $2 = poor move, ...).
type Nag int

// Standard NAG codes used by the reader.
const (
	NagGoodMove        Nag = 1 // !
	NagPoorMove        Nag = 2 // ?
	NagVeryGoodMove    Nag = 3 // !!
	NagVeryPoorMove    Nag = 4 // ??
	NagInterestingMove Nag = 5 // !?
	NagDubiousMove     Nag = 6 // ?!
	NagNovelty         Nag = 146
	NagDiagram         Nag = 201
)

// String returns the $-prefixed rendering of a NAG.
func (n Nag) String() string {
	return fmt.Sprintf("$%d", int(n))
}

// nagOfGlyphs maps direct annotation glyph runs to their numeric form.
// Direct glyphs are a non-standard PGN extension; only these six runs
// are defined.
var nagOfGlyphs = map[string]Nag{
	"!":  NagGoodMove,
	"?":  NagPoorMove,
	"!!": NagVeryGoodMove,
	"??": NagVeryPoorMove,
	"!?": NagInterestingMove,
	"?!": NagDubiousMove,
}

// NagFromGlyphs maps a run of '!'/'?' characters to its numeric
// annotation. The second result is false for unmapped runs.
func NagFromGlyphs(glyphs string) (Nag, bool) {
	nag, ok := nagOfGlyphs[glyphs]
	return nag, ok
}
