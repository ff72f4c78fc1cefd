// Package errors provides sentinel errors and error types for the chess engine.
// It defines common error conditions and structured error types that preserve
// context while allowing error inspection with errors.Is() and errors.As().
package errors

import (
	"errors"
	"fmt"
	"strings"

	pkgerrors "github.com/pkg/errors"
)

// Sentinel errors for common failure conditions.
// Use these with errors.Is() to check for specific error types.
var (
	// ErrIllegalMove indicates a move that no rule of the piece allows.
	ErrIllegalMove = errors.New("illegal move")

	// ErrKingExposed indicates a move that would leave the mover's king in check.
	ErrKingExposed = errors.New("move would leave the king in check")

	// ErrNoPiece indicates there is no piece on the selected square.
	ErrNoPiece = errors.New("no piece on that square")

	// ErrNotYourPiece indicates the selected piece belongs to the other team.
	ErrNotYourPiece = errors.New("not your piece")

	// ErrCastleRefused indicates castling preconditions were not met.
	ErrCastleRefused = errors.New("castling not allowed")

	// ErrGameOver indicates a command was issued after the game ended.
	ErrGameOver = errors.New("game is over")

	// ErrRetrievePawn indicates a player tried to retrieve a pawn.
	ErrRetrievePawn = errors.New("pawns cannot be retrieved")

	// ErrNothingToRetrieve indicates no captured piece matches the request.
	ErrNothingToRetrieve = errors.New("no captured piece of that kind")

	// ErrRetrievalAborted indicates the prompt gave up before a valid choice.
	ErrRetrievalAborted = errors.New("retrieval aborted")

	// ErrParseFailure indicates a command could not be parsed.
	ErrParseFailure = errors.New("parse failure")

	// ErrInvalidConfig indicates invalid configuration values.
	ErrInvalidConfig = errors.New("invalid configuration")

	// ErrGameNotFound indicates an unknown game id.
	ErrGameNotFound = errors.New("game not found")
)

// PlyError wraps errors with game context, including the game id,
// ply number and the command that failed. It implements the error interface
// and supports unwrapping via errors.Is() and errors.As().
type PlyError struct {
	Err     error  // The underlying error
	GameID  string // Game identifier (if known)
	PlyNum  int    // 1-based ply where the error occurred (0 if not applicable)
	Command string // The command text that caused the error (if applicable)
	File    string // Script file name (if replaying)
	Line    int    // Line number in the script (if replaying)
}

// Error returns a formatted error message including all available context.
func (e *PlyError) Error() string {
	var parts []string

	if e.File != "" {
		if e.Line > 0 {
			parts = append(parts, fmt.Sprintf("%s:%d", e.File, e.Line))
		} else {
			parts = append(parts, e.File)
		}
	}

	if e.GameID != "" {
		parts = append(parts, fmt.Sprintf("game %s", e.GameID))
	}

	if e.PlyNum > 0 {
		parts = append(parts, fmt.Sprintf("ply %d", e.PlyNum))
	}

	if e.Command != "" {
		parts = append(parts, fmt.Sprintf("command %q", e.Command))
	}

	context := strings.Join(parts, ", ")

	if e.Err != nil {
		if context == "" {
			return e.Err.Error()
		}
		return fmt.Sprintf("%s: %v", context, e.Err)
	}
	return context
}

// Unwrap returns the underlying error, enabling errors.Is() and errors.As()
// to work through the PlyError wrapper.
func (e *PlyError) Unwrap() error {
	return e.Err
}

// ParseError represents a command parsing error with location context.
type ParseError struct {
	Err      error  // The underlying error
	File     string // Source file name
	Line     int    // Line number (1-based)
	Column   int    // Column number (1-based)
	Expected string // What was expected (for syntax errors)
	Got      string // What was found instead
}

// Error returns a formatted error message with location and context.
func (e *ParseError) Error() string {
	var parts []string

	if e.File != "" {
		loc := e.File
		if e.Line > 0 {
			loc += fmt.Sprintf(":%d", e.Line)
			if e.Column > 0 {
				loc += fmt.Sprintf(":%d", e.Column)
			}
		}
		parts = append(parts, loc)
	}

	if e.Expected != "" && e.Got != "" {
		parts = append(parts, fmt.Sprintf("expected %s, got %s", e.Expected, e.Got))
	} else if e.Expected != "" {
		parts = append(parts, fmt.Sprintf("expected %s", e.Expected))
	} else if e.Got != "" {
		parts = append(parts, fmt.Sprintf("unexpected %s", e.Got))
	}

	if e.Err != nil {
		if len(parts) > 0 {
			return fmt.Sprintf("%s: %v", strings.Join(parts, ": "), e.Err)
		}
		return e.Err.Error()
	}

	if len(parts) > 0 {
		return strings.Join(parts, ": ")
	}
	return "parse error"
}

// Unwrap returns the underlying error.
func (e *ParseError) Unwrap() error {
	return e.Err
}

// PreconditionError signals a broken caller contract or engine invariant.
// It is never returned; it is raised with Assert or Failf.
type PreconditionError struct {
	Op     string
	Reason string
}

func (e *PreconditionError) Error() string {
	return fmt.Sprintf("%s: precondition violated: %s", e.Op, e.Reason)
}

// Assert panics with a stack-carrying PreconditionError when cond is false.
func Assert(cond bool, op, format string, args ...interface{}) {
	if !cond {
		Failf(op, format, args...)
	}
}

// Failf panics with a stack-carrying PreconditionError.
func Failf(op, format string, args ...interface{}) {
	panic(pkgerrors.WithStack(&PreconditionError{Op: op, Reason: fmt.Sprintf(format, args...)}))
}

// Invariant panics with err, annotated with op and a stack trace, when err is
// non-nil.
func Invariant(err error, op string) {
	if err != nil {
		panic(pkgerrors.WithStack(&PreconditionError{Op: op, Reason: err.Error()}))
	}
}

// AsPrecondition extracts a PreconditionError from a recovered panic value.
func AsPrecondition(v interface{}) (*PreconditionError, bool) {
	err, ok := v.(error)
	if !ok {
		return nil, false
	}
	var pe *PreconditionError
	if errors.As(err, &pe) {
		return pe, true
	}
	return nil, false
}

// Wrap adds context to an error while preserving the underlying error
// for inspection with errors.Is() and errors.As().
func Wrap(err error, context string) error {
	if err == nil {
		return nil
	}
	return fmt.Errorf("%s: %w", context, err)
}

// Wrapf adds formatted context to an error while preserving the underlying
// error for inspection with errors.Is() and errors.As().
func Wrapf(err error, format string, args ...interface{}) error {
	if err == nil {
		return nil
	}
	return Wrap(err, fmt.Sprintf(format, args...))
}

// Is reports whether any error in err's chain matches target.
func Is(err, target error) bool {
	return errors.Is(err, target)
}

// As finds the first error in err's chain that matches target.
func As(err error, target interface{}) bool {
	return errors.As(err, target)
}
