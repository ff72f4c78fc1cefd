// Package engine implements move legality, check detection, checkmate
// verification, castling and pawn retrieval on top of a chess.Board.
//
// Every legality query physically executes the move, recomputes check state and,
// when required, undoes the move again. An Engine therefore owns its board
// exclusively and must only be used from one goroutine at a time.
package engine

import (
	"github.com/lgbarn/rst-chess-go/internal/chess"
	"github.com/lgbarn/rst-chess-go/internal/errors"
)

// CaptureEvent describes a committed capture.
type CaptureEvent struct {
	Capturer *chess.Piece
	Captured *chess.Piece
	At       chess.Square
}

// Notifier receives engine events. The engine never formats text itself.
type Notifier interface {
	PieceCaptured(ev CaptureEvent)
}

// NotifierFunc adapts a function to the Notifier interface.
type NotifierFunc func(ev CaptureEvent)

// PieceCaptured calls f(ev).
func (f NotifierFunc) PieceCaptured(ev CaptureEvent) { f(ev) }

// RetrievalPrompt asks a player which captured piece to bring back when one of
// their pawns reaches the far rank.
type RetrievalPrompt interface {
	// ChooseRetrieval offers the team's captured non-pawn pieces. Returning
	// false declines the retrieval.
	ChooseRetrieval(team chess.Team, captured []*chess.Piece) (chess.Archetype, bool)

	// RetrievalRejected reports why the last choice was refused; the prompt is
	// then asked again.
	RetrievalRejected(err error)
}

// Engine applies the movement rules to one board.
type Engine struct {
	board    *chess.Board
	notifier Notifier
}

// Option configures an Engine.
type Option func(*Engine)

// WithNotifier sets the receiver of capture events.
func WithNotifier(n Notifier) Option {
	return func(e *Engine) {
		e.notifier = n
	}
}

// New creates an engine for board and computes its initial check state.
func New(board *chess.Board, opts ...Option) *Engine {
	e := &Engine{board: board}
	for _, opt := range opts {
		opt(e)
	}
	e.UpdateChecks()
	return e
}

// Board returns the board the engine operates on.
func (e *Engine) Board() *chess.Board {
	return e.board
}

// CheckInvariants panics if the board is in an inconsistent state.
func (e *Engine) CheckInvariants() {
	errors.Invariant(e.board.Validate(), "engine.CheckInvariants")
}

func (e *Engine) notify(ev CaptureEvent) {
	if e.notifier != nil {
		e.notifier.PieceCaptured(ev)
	}
}
