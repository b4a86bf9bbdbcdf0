package pgn

import (
	"fmt"
	"io"
)

// Severity distinguishes recoverable warnings from errors that abort
// the current game.
type Severity int

const (
	SeverityWarning Severity = iota
	SeverityError
)

// String returns the string representation of a severity.
func (s Severity) String() string {
	if s == SeverityError {
		return "error"
	}
	return "warning"
}

// SyntaxError describes a diagnostic raised while reading PGN. It
// carries the source name, the line number (1-based) and a rendering
// of the token the reader stood on.
type SyntaxError struct {
	Severity Severity
	Msg      string
	Source   string
	Line     uint
	Token    string
}

// Error implements the error interface.
func (e *SyntaxError) Error() string {
	return fmt.Sprintf("%s:%d: %s: %s near %s", e.Source, e.Line, e.Severity, e.Msg, e.Token)
}

// ErrorHandler receives diagnostics as they are raised. An error also
// marks the game it occurred in; warnings are only reported here.
type ErrorHandler interface {
	HandleError(err *SyntaxError)
	HandleWarning(err *SyntaxError)
}

// SimpleErrorHandler writes each diagnostic to an io.Writer, one per
// line.
type SimpleErrorHandler struct {
	W io.Writer
}

// NewSimpleErrorHandler creates a handler writing to w.
func NewSimpleErrorHandler(w io.Writer) *SimpleErrorHandler {
	return &SimpleErrorHandler{W: w}
}

// HandleError writes an error diagnostic.
func (h *SimpleErrorHandler) HandleError(err *SyntaxError) {
	fmt.Fprintln(h.W, err.Error())
}

// HandleWarning writes a warning diagnostic.
func (h *SimpleErrorHandler) HandleWarning(err *SyntaxError) {
	fmt.Fprintln(h.W, err.Error())
}
