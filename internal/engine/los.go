package engine

import (
	"github.com/lgbarn/rst-chess-go/internal/chess"
	"github.com/lgbarn/rst-chess-go/internal/errors"
)

// Outcome classifies a sliding rule aimed at a target square.
type Outcome int

const (
	// Blocked means the target cannot be reached with this rule.
	Blocked Outcome = iota
	// ClearMove means the target is empty and reachable by a move rule.
	ClearMove
	// ClearCapture means an enemy stands on the target and an attack rule reaches it.
	ClearCapture
)

func (o Outcome) String() string {
	switch o {
	case ClearMove:
		return "ClearMove"
	case ClearCapture:
		return "ClearCapture"
	}
	return "Blocked"
}

// Resolution is the result of a line-of-sight walk. At is only set for
// ClearCapture.
type Resolution struct {
	Outcome Outcome
	At      chess.Square
}

// Resolve walks rule's direction from p towards target. Any active piece met
// before target blocks the line; the target itself must be empty for a move
// rule and hold an enemy for an attack rule.
//
// When record is true and the target is reachable, the squares strictly between
// p and target are appended to p.Interpositions in walk order.
func (e *Engine) Resolve(p *chess.Piece, target chess.Square, rule chess.MoveRule, record bool) Resolution {
	errors.Assert(!rule.OneShot, "engine.Resolve", "rule %+v is not a sliding rule", rule)
	errors.Assert(rule.DX != 0 || rule.DY != 0, "engine.Resolve", "zero step vector")

	var path []chess.Square
	for sq := p.Position.Offset(rule.DX, rule.DY); sq.InBounds(); sq = sq.Offset(rule.DX, rule.DY) {
		occupant := e.board.PieceAt(sq)
		if sq != target {
			if occupant != nil {
				return Resolution{Outcome: Blocked}
			}
			path = append(path, sq)
			continue
		}

		var res Resolution
		switch {
		case occupant == nil && !rule.Attack:
			res = Resolution{Outcome: ClearMove}
		case occupant != nil && rule.Attack && occupant.Team != p.Team:
			res = Resolution{Outcome: ClearCapture, At: sq}
		default:
			return Resolution{Outcome: Blocked}
		}
		if record {
			p.Interpositions = append(p.Interpositions, path...)
		}
		return res
	}
	return Resolution{Outcome: Blocked}
}
