// Package errors provides sentinel errors and helpers for the
// pgn-reader module. It defines the common failure conditions of the
// position and game-tree collaborators so callers can inspect them
// with errors.Is() and errors.As().
package errors

import (
	"errors"
	"fmt"
)

// Sentinel errors for common failure conditions.
var (
	// ErrIllegalMove indicates a move the current position cannot play.
	ErrIllegalMove = errors.New("illegal move")

	// ErrAmbiguousMove indicates a SAN move that matches more than one
	// legal move in the current position.
	ErrAmbiguousMove = errors.New("ambiguous move")

	// ErrInvalidFEN indicates a malformed FEN string.
	ErrInvalidFEN = errors.New("invalid FEN string")

	// ErrInvalidTag indicates a malformed PGN tag name.
	ErrInvalidTag = errors.New("invalid tag name")

	// ErrNoSuchNode indicates a game-tree navigation target that does
	// not belong to the game.
	ErrNoSuchNode = errors.New("node not in game")

	// ErrUnsupportedFormat indicates an input file whose extension maps
	// to no known PGN source type.
	ErrUnsupportedFormat = errors.New("unsupported file format")
)

// Is reports whether any error in err's chain matches target.
func Is(err, target error) bool {
	return errors.Is(err, target)
}

// As finds the first error in err's chain matching target's type.
func As(err error, target interface{}) bool {
	return errors.As(err, target)
}

// Wrap adds context to an error while preserving the underlying error
// for inspection with errors.Is() and errors.As().
func Wrap(err error, context string) error {
	if err == nil {
		return nil
	}
	return fmt.Errorf("%s: %w", context, err)
}

// Wrapf adds formatted context to an error while preserving the
// underlying error.
func Wrapf(err error, format string, args ...interface{}) error {
	if err == nil {
		return nil
	}
	return Wrap(err, fmt.Sprintf(format, args...))
}
