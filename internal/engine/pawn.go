package engine

import (
	"github.com/lgbarn/rst-chess-go/internal/chess"
	"github.com/lgbarn/rst-chess-go/internal/errors"
)

// ArrivedAtFarRank reports whether p is an active pawn standing on the rank
// farthest from its own side.
func (e *Engine) ArrivedAtFarRank(p *chess.Piece) bool {
	return p.Archetype == chess.Pawn && !p.Captured && p.Position.Rank == p.Team.FarRank()
}

// Retrievable returns team's captured pieces that may be brought back.
func (e *Engine) Retrievable(team chess.Team) []*chess.Piece {
	var out []*chess.Piece
	for _, p := range e.board.CapturedPool(team) {
		if p.Archetype != chess.Pawn {
			out = append(out, p)
		}
	}
	return out
}

// Retrieve removes a pawn that reached the far rank and lets its owner bring
// back one of their captured pieces on the pawn's square. The prompt is asked
// until it declines or names a retrievable archetype. It returns the restored
// piece, or nil if nothing was restored.
func (e *Engine) Retrieve(pawn *chess.Piece, prompt RetrievalPrompt) *chess.Piece {
	errors.Assert(e.ArrivedAtFarRank(pawn), "engine.Retrieve", "%s has not reached the far rank", pawn)

	arrival := pawn.Position
	pawn.Captured = true
	defer e.UpdateChecks()

	if prompt == nil {
		return nil
	}
	for {
		offer := e.Retrievable(pawn.Team)
		if len(offer) == 0 {
			return nil
		}
		a, ok := prompt.ChooseRetrieval(pawn.Team, offer)
		if !ok {
			return nil
		}
		p, err := e.findRetrievable(pawn.Team, a)
		if err != nil {
			prompt.RetrievalRejected(err)
			continue
		}
		p.Captured = false
		e.board.Relocate(p, arrival)
		return p
	}
}

func (e *Engine) findRetrievable(team chess.Team, a chess.Archetype) (*chess.Piece, error) {
	if a == chess.Pawn {
		return nil, errors.ErrRetrievePawn
	}
	for _, p := range e.board.CapturedPool(team) {
		if p.Archetype == a {
			return p, nil
		}
	}
	return nil, errors.Wrapf(errors.ErrNothingToRetrieve, "no captured %s %s", team, a)
}

// PlyResult summarises a committed move.
type PlyResult struct {
	Captured  *chess.Piece
	Removed   bool         // the moving pawn reached the far rank and left the board
	Retrieved *chess.Piece // restored in place of the pawn, if any
}

// Play commits p's move to target and runs the retrieval mechanic if p is a
// pawn that arrived on the far rank.
func (e *Engine) Play(p *chess.Piece, target chess.Square, prompt RetrievalPrompt) (PlyResult, error) {
	var res PlyResult
	victim := e.board.PieceAt(target)
	if err := e.Move(p, target, false); err != nil {
		return res, err
	}
	res.Captured = victim
	if e.ArrivedAtFarRank(p) {
		res.Removed = true
		res.Retrieved = e.Retrieve(p, prompt)
	}
	return res, nil
}
