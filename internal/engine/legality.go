package engine

import (
	"github.com/lgbarn/rst-chess-go/internal/chess"
	"github.com/lgbarn/rst-chess-go/internal/errors"
)

// Move executes p's move to target and keeps it only if p's own king is safe
// afterwards. With verifyOnly set the move is always undone, so the call only
// answers whether the move is legal.
//
// It returns errors.ErrIllegalMove when no rule allows the move and
// errors.ErrKingExposed when the move would leave the king in check. In both
// cases, and whenever verifyOnly is set, the board is left exactly as it was.
func (e *Engine) Move(p *chess.Piece, target chess.Square, verifyOnly bool) error {
	origin := p.Position
	moved := p.MovedEver

	victim, ok := e.tryMove(p, target, false)
	if !ok {
		return errors.ErrIllegalMove
	}
	e.UpdateChecks()

	exposed := e.InCheck(p.Team)
	if exposed || verifyOnly {
		e.revert(p, origin, moved, victim)
	}
	if exposed {
		return errors.ErrKingExposed
	}
	if !verifyOnly && victim != nil {
		e.notify(CaptureEvent{Capturer: p, Captured: victim, At: target})
	}
	return nil
}

// MovePiece is Move reduced to a yes/no answer.
func (e *Engine) MovePiece(p *chess.Piece, target chess.Square, verifyOnly bool) bool {
	return e.Move(p, target, verifyOnly) == nil
}

// revert undoes a move made by tryMove. Pawns cannot move backwards under their
// own rules, so the piece is relocated directly.
func (e *Engine) revert(p *chess.Piece, origin chess.Square, moved bool, victim *chess.Piece) {
	e.board.Relocate(p, origin)
	p.MovedEver = moved
	p.SyncPawnRules()
	if victim != nil {
		victim.Captured = false
	}
	e.UpdateChecks()
}

// LegalTargets returns every square p may legally move to right now.
func (e *Engine) LegalTargets(p *chess.Piece) []chess.Square {
	if p.Captured {
		return nil
	}
	var out []chess.Square
	for rank := chess.FirstRank; rank <= chess.LastRank; rank++ {
		for file := chess.FirstFile; file <= chess.LastFile; file++ {
			sq := chess.Sq(file, rank)
			if sq == p.Position {
				continue
			}
			if e.MovePiece(p, sq, true) {
				out = append(out, sq)
			}
		}
	}
	return out
}

// HasLegalMove reports whether any piece of team has a legal move.
func (e *Engine) HasLegalMove(team chess.Team) bool {
	for _, p := range e.board.ActivePieces(team) {
		if len(e.LegalTargets(p)) > 0 {
			return true
		}
	}
	return false
}
