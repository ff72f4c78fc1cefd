package engine

import "github.com/lgbarn/rst-chess-go/internal/chess"

// UpdateChecks recomputes which kings are in check and which pieces give check.
// It must run after every mutation of the board, including trial reverts.
func (e *Engine) UpdateChecks() {
	pieces := e.board.Pieces()
	for _, p := range pieces {
		p.ResetCheckState()
		p.SyncPawnRules()
		if p.IsKing() {
			p.InCheck = false
		}
	}

	for _, p := range pieces {
		if p.Captured {
			continue
		}
		king := e.board.King(p.Team.Opposite())
		if king == nil || king.Captured {
			continue
		}
		for _, rule := range p.Rules {
			if !rule.Attack || !e.attacks(p, king.Position, rule) {
				continue
			}
			king.InCheck = true
			p.CheckingOpponentKing = true
			break
		}
	}
}

func (e *Engine) attacks(p *chess.Piece, sq chess.Square, rule chess.MoveRule) bool {
	if rule.OneShot {
		return p.Position.Offset(rule.DX, rule.DY) == sq
	}
	return e.Resolve(p, sq, rule, true).Outcome != Blocked
}

// InCheck reports whether team's king is currently in check.
func (e *Engine) InCheck(team chess.Team) bool {
	king := e.board.King(team)
	return king != nil && king.InCheck
}

// Checkers returns the pieces currently giving check to team's king.
func (e *Engine) Checkers(team chess.Team) []*chess.Piece {
	var out []*chess.Piece
	for _, p := range e.board.ActivePieces(team.Opposite()) {
		if p.CheckingOpponentKing {
			out = append(out, p)
		}
	}
	return out
}
