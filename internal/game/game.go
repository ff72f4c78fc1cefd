// Package game wraps the rules engine in a turn-taking session and keeps a
// registry of concurrent sessions.
package game

import (
	"fmt"
	"io"
	"log"
	"sync"
	"time"

	"github.com/google/uuid"

	"github.com/lgbarn/rst-chess-go/internal/chess"
	"github.com/lgbarn/rst-chess-go/internal/config"
	"github.com/lgbarn/rst-chess-go/internal/engine"
	"github.com/lgbarn/rst-chess-go/internal/errors"
)

// Status is the state of a game as a whole.
type Status int

const (
	Ongoing Status = iota
	Check
	Checkmate
	Resigned
)

func (s Status) String() string {
	switch s {
	case Check:
		return "Check"
	case Checkmate:
		return "Checkmate"
	case Resigned:
		return "Resigned"
	}
	return "Ongoing"
}

// MarshalText implements encoding.TextMarshaler.
func (s Status) MarshalText() ([]byte, error) {
	return []byte(s.String()), nil
}

// Over reports whether no further moves are accepted.
func (s Status) Over() bool {
	return s == Checkmate || s == Resigned
}

// Game is a single two-player session. Its methods are safe for concurrent use,
// but commands are applied strictly one at a time.
type Game struct {
	mu sync.Mutex

	id        string
	board     *chess.Board
	eng       *engine.Engine
	turn      chess.Team
	status    Status
	winner    chess.Team
	ply       int
	createdAt time.Time
	updatedAt time.Time

	prompt           engine.RetrievalPrompt
	logger           *log.Logger
	verbosity        int
	suppressCaptures bool
}

// Option configures a Game.
type Option func(*Game)

// WithConfig applies the logging and capture-message settings of cfg.
func WithConfig(cfg *config.Config) Option {
	return func(g *Game) {
		g.verbosity = cfg.Verbosity
		g.suppressCaptures = cfg.Game.SuppressCaptureMessages
		if cfg.LogFile != nil {
			g.logger = log.New(cfg.LogFile, "", 0)
		}
	}
}

// WithLogger sets the logger that receives capture and status messages.
func WithLogger(l *log.Logger) Option {
	return func(g *Game) {
		g.logger = l
	}
}

// WithPrompt sets who is asked when a pawn reaches the far rank. Without one
// the pawn is simply removed.
func WithPrompt(p engine.RetrievalPrompt) Option {
	return func(g *Game) {
		g.prompt = p
	}
}

// WithBoard starts the game from b instead of the initial position.
func WithBoard(b *chess.Board) Option {
	return func(g *Game) {
		g.board = b
	}
}

// WithTurn sets the side to move first.
func WithTurn(t chess.Team) Option {
	return func(g *Game) {
		g.turn = t
	}
}

// WithID sets the game id instead of generating one.
func WithID(id string) Option {
	return func(g *Game) {
		g.id = id
	}
}

// New creates a game. By default it starts from the initial position with
// White to move, a random id and logging discarded.
func New(opts ...Option) *Game {
	g := &Game{
		turn:      chess.White,
		verbosity: 1,
		logger:    log.New(io.Discard, "", 0),
		createdAt: time.Now(),
	}
	for _, opt := range opts {
		opt(g)
	}
	if g.id == "" {
		g.id = uuid.NewString()
	}
	if g.board == nil {
		g.board = chess.NewInitialBoard()
	}
	g.updatedAt = g.createdAt
	g.eng = engine.New(g.board, engine.WithNotifier(engine.NotifierFunc(g.logCapture)))
	g.refreshStatus()
	return g
}

// ID returns the game id.
func (g *Game) ID() string {
	return g.id
}

// Turn returns the side to move.
func (g *Game) Turn() chess.Team {
	g.mu.Lock()
	defer g.mu.Unlock()
	return g.turn
}

// Status returns the current game status.
func (g *Game) Status() Status {
	g.mu.Lock()
	defer g.mu.Unlock()
	return g.status
}

// Winner returns the winning team once the game is over.
func (g *Game) Winner() (chess.Team, bool) {
	g.mu.Lock()
	defer g.mu.Unlock()
	return g.winner, g.status.Over()
}

// Ply returns the number of completed plies.
func (g *Game) Ply() int {
	g.mu.Lock()
	defer g.mu.Unlock()
	return g.ply
}

// UpdatedAt returns when the last ply completed.
func (g *Game) UpdatedAt() time.Time {
	g.mu.Lock()
	defer g.mu.Unlock()
	return g.updatedAt
}

// View returns a snapshot of the board for rendering.
func (g *Game) View() chess.BoardView {
	g.mu.Lock()
	defer g.mu.Unlock()
	return g.board.View()
}

// Move moves the side to move's piece on from to to.
func (g *Game) Move(from, to chess.Square) (engine.PlyResult, error) {
	g.mu.Lock()
	defer g.mu.Unlock()

	cmd := fmt.Sprintf("move %s %s", from, to)
	p, err := g.selectPiece(from)
	if err != nil {
		return engine.PlyResult{}, g.plyError(err, cmd)
	}
	errors.Assert(to.InBounds(), "game.Move", "target (%s) is off the board", to)

	res, err := g.eng.Play(p, to, g.prompt)
	if err != nil {
		return res, g.plyError(err, cmd)
	}
	if res.Removed {
		g.logRetrieval(p, res.Retrieved)
	}
	g.endPly()
	return res, nil
}

// Castle castles the side to move towards d.
func (g *Game) Castle(d engine.Direction) error {
	g.mu.Lock()
	defer g.mu.Unlock()

	cmd := fmt.Sprintf("castle %s", d)
	if g.status.Over() {
		return g.plyError(errors.ErrGameOver, cmd)
	}
	g.eng.CheckInvariants()

	if err := g.eng.Castle(g.turn, d, g.eng.CastlingRook(g.turn, d)); err != nil {
		return g.plyError(err, cmd)
	}
	g.endPly()
	return nil
}

// Resign ends the game in favour of the side not to move.
func (g *Game) Resign() error {
	g.mu.Lock()
	defer g.mu.Unlock()

	if g.status.Over() {
		return g.plyError(errors.ErrGameOver, "surrender")
	}
	g.status = Resigned
	g.winner = g.turn.Opposite()
	g.updatedAt = time.Now()
	g.logf(1, "%s surrenders. %s wins.", g.turn, g.winner)
	return nil
}

// LegalTargets lists the squares the piece on from may move to.
func (g *Game) LegalTargets(from chess.Square) ([]chess.Square, error) {
	g.mu.Lock()
	defer g.mu.Unlock()

	p, err := g.selectPiece(from)
	if err != nil {
		return nil, err
	}
	return g.eng.LegalTargets(p), nil
}

func (g *Game) selectPiece(from chess.Square) (*chess.Piece, error) {
	if g.status.Over() {
		return nil, errors.ErrGameOver
	}
	errors.Assert(from.InBounds(), "game.selectPiece", "square (%s) is off the board", from)
	g.eng.CheckInvariants()

	p := g.board.PieceAt(from)
	if p == nil {
		return nil, errors.ErrNoPiece
	}
	if p.Team != g.turn {
		return nil, errors.ErrNotYourPiece
	}
	return p, nil
}

func (g *Game) endPly() {
	g.ply++
	g.turn = g.turn.Opposite()
	g.updatedAt = time.Now()
	g.refreshStatus()

	switch g.status {
	case Checkmate:
		g.logf(1, "Checkmate. %s wins.", g.winner)
	case Check:
		g.logf(1, "%s is in check.", g.turn)
	}
}

func (g *Game) refreshStatus() {
	switch g.eng.StatusOf(g.turn) {
	case engine.Checkmate:
		g.status = Checkmate
		g.winner = g.turn.Opposite()
	case engine.Check:
		g.status = Check
	default:
		g.status = Ongoing
	}
}

func (g *Game) plyError(err error, cmd string) error {
	return &errors.PlyError{Err: err, GameID: g.id, PlyNum: g.ply + 1, Command: cmd}
}

func (g *Game) logCapture(ev engine.CaptureEvent) {
	if g.suppressCaptures {
		return
	}
	g.logf(1, "%s has captured an enemy %s.", ev.Capturer.Name(), ev.Captured.Archetype)
}

func (g *Game) logRetrieval(pawn, restored *chess.Piece) {
	if restored == nil {
		g.logf(2, "%s reached the far rank and left the board.", pawn.Name())
		return
	}
	g.logf(1, "%s retrieved at (%s).", restored.Name(), restored.Position)
}

func (g *Game) logf(level int, format string, args ...interface{}) {
	if g.verbosity >= level {
		g.logger.Printf(format, args...)
	}
}
