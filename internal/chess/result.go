package chess

// Result represents the outcome recorded for a game.
type Result int

const (
	NoResult Result = iota
	WhiteWins
	BlackWins
	Draw
	NotFinished
)

// String returns the PGN rendering of a result.
func (r Result) String() string {
	switch r {
	case WhiteWins:
		return "1-0"
	case BlackWins:
		return "0-1"
	case Draw:
		return "1/2-1/2"
	case NotFinished:
		return "*"
	default:
		return "?"
	}
}

// ResultFromString parses a PGN result string. Anything that is not
// one of the four standard renderings maps to NoResult.
func ResultFromString(s string) Result {
	switch s {
	case "1-0":
		return WhiteWins
	case "0-1":
		return BlackWins
	case "1/2-1/2", "1/2":
		return Draw
	case "*":
		return NotFinished
	default:
		return NoResult
	}
}
