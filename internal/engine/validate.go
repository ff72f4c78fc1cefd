package engine

import (
	"github.com/lgbarn/rst-chess-go/internal/chess"
	"github.com/lgbarn/rst-chess-go/internal/errors"
)

// TryMove reports whether any of p's rules takes it to target, ignoring the
// safety of p's own king. Unless verifyOnly is set the move is executed:
// an enemy on target is captured (with a CaptureEvent unless suppress is set),
// p is moved and marked as having moved.
//
// target must lie on the board.
func (e *Engine) TryMove(p *chess.Piece, target chess.Square, verifyOnly, suppress bool) bool {
	victim, ok := e.tryMove(p, target, verifyOnly)
	if ok && !verifyOnly && victim != nil && !suppress {
		e.notify(CaptureEvent{Capturer: p, Captured: victim, At: target})
	}
	return ok
}

// tryMove is TryMove without notification; it returns the captured piece.
func (e *Engine) tryMove(p *chess.Piece, target chess.Square, verifyOnly bool) (*chess.Piece, bool) {
	errors.Assert(target.InBounds(), "engine.TryMove", "target (%s) is off the board", target)

	if p.Captured || target == p.Position {
		return nil, false
	}

	occupant := e.board.PieceAt(target)
	if occupant != nil && (occupant.Team == p.Team || occupant.IsKing()) {
		// Kings are never captured; check and checkmate end the game instead.
		return nil, false
	}

	for _, rule := range p.Rules {
		if !e.ruleReaches(p, target, rule, occupant) {
			continue
		}
		if !verifyOnly {
			e.execute(p, target, occupant)
		}
		return occupant, true
	}
	return nil, false
}

func (e *Engine) ruleReaches(p *chess.Piece, target chess.Square, rule chess.MoveRule, occupant *chess.Piece) bool {
	if !rule.OneShot {
		return e.Resolve(p, target, rule, false).Outcome != Blocked
	}
	if p.Position.Offset(rule.DX, rule.DY) != target {
		return false
	}
	if rule.Attack {
		return occupant != nil
	}
	if occupant != nil {
		return false
	}
	if p.Archetype == chess.Pawn && abs(rule.DY) == 2 {
		// The double step cannot jump over a piece.
		return !e.board.Occupied(p.Position.Offset(0, sign(rule.DY)))
	}
	return true
}

func (e *Engine) execute(p *chess.Piece, target chess.Square, victim *chess.Piece) {
	if victim != nil {
		victim.Captured = true
	}
	p.Position = target
	p.MovedEver = true
	p.SyncPawnRules()
}
