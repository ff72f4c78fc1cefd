package engine

import (
	"golang.org/x/exp/slices"

	"github.com/lgbarn/rst-chess-go/internal/chess"
	"github.com/lgbarn/rst-chess-go/internal/errors"
)

// IsCheckmate reports whether team's king, which must currently be in check,
// has no way out.
//
// The king's own steps are tried first. If none is safe and more than one piece
// gives check the position is mate. Against a single checker every friendly
// piece is tried on each square between the checker and the king and on the
// checker's own square.
func (e *Engine) IsCheckmate(team chess.Team) bool {
	king := e.board.King(team)
	errors.Assert(king != nil, "engine.IsCheckmate", "%s has no king", team)
	errors.Assert(king.InCheck, "engine.IsCheckmate", "%s king is not in check", team)

	for _, rule := range king.Rules {
		sq := king.Position.Offset(rule.DX, rule.DY)
		if !sq.InBounds() {
			continue
		}
		if e.MovePiece(king, sq, true) {
			return false
		}
	}

	checkers := e.Checkers(team)
	errors.Assert(len(checkers) > 0, "engine.IsCheckmate", "%s king in check without a checking piece", team)
	if len(checkers) > 1 {
		return true
	}

	checker := checkers[0]
	// Trial moves rebuild Interpositions, so work on a copy.
	squares := append(slices.Clone(checker.Interpositions), checker.Position)
	for _, defender := range e.board.ActivePieces(team) {
		for _, sq := range squares {
			if e.MovePiece(defender, sq, true) {
				return false
			}
		}
	}
	return true
}

// Status is the state of one side at the start of its ply.
type Status int

const (
	Ongoing Status = iota
	Check
	Checkmate
)

func (s Status) String() string {
	switch s {
	case Check:
		return "Check"
	case Checkmate:
		return "Checkmate"
	}
	return "Ongoing"
}

// StatusOf evaluates team's position. Stalemate is not detected.
func (e *Engine) StatusOf(team chess.Team) Status {
	if !e.InCheck(team) {
		return Ongoing
	}
	if e.IsCheckmate(team) {
		return Checkmate
	}
	return Check
}
