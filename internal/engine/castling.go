package engine

import (
	"github.com/lgbarn/rst-chess-go/internal/chess"
	"github.com/lgbarn/rst-chess-go/internal/errors"
)

// Direction is the side of the board a castle heads to, as seen from White.
type Direction int

const (
	// Left castles towards file 1.
	Left Direction = iota
	// Right castles towards file 8.
	Right
)

func (d Direction) String() string {
	if d == Right {
		return "Right"
	}
	return "Left"
}

func (d Direction) step() int {
	if d == Right {
		return 1
	}
	return -1
}

func (d Direction) cornerFile() int {
	if d == Right {
		return chess.LastFile
	}
	return chess.FirstFile
}

// CastlingRook returns team's rook in the home-rank corner on side d, or nil.
func (e *Engine) CastlingRook(team chess.Team, d Direction) *chess.Piece {
	p := e.board.PieceAt(chess.Sq(d.cornerFile(), team.HomeRank()))
	if p == nil || p.Team != team || p.Archetype != chess.Rook {
		return nil
	}
	return p
}

// Castle moves team's king two squares towards rook, one legal step at a time,
// and then puts rook on the square the king passed over. On refusal the board is
// unchanged and the error wraps errors.ErrCastleRefused.
func (e *Engine) Castle(team chess.Team, d Direction, rook *chess.Piece) error {
	king := e.board.King(team)
	if king == nil {
		return errors.Wrap(errors.ErrCastleRefused, "no king")
	}
	if rook == nil || rook.Captured || rook.Team != team || rook.Archetype != chess.Rook {
		return errors.Wrap(errors.ErrCastleRefused, "no rook on that side")
	}

	switch {
	case king.InCheck:
		return errors.Wrap(errors.ErrCastleRefused, "king is in check")
	case king.Position.Rank != rook.Position.Rank:
		return errors.Wrap(errors.ErrCastleRefused, "king and rook are not on the same rank")
	case king.Position.Rank != team.HomeRank():
		return errors.Wrap(errors.ErrCastleRefused, "not on the home rank")
	case king.MovedEver:
		return errors.Wrap(errors.ErrCastleRefused, "king has moved")
	case rook.MovedEver:
		return errors.Wrap(errors.ErrCastleRefused, "rook has moved")
	}

	step := d.step()
	if sign(rook.Position.File-king.Position.File) != step {
		return errors.Wrapf(errors.ErrCastleRefused, "rook is not to the %s of the king", d)
	}
	for f := king.Position.File + step; f != rook.Position.File; f += step {
		if e.board.Occupied(chess.Sq(f, king.Position.Rank)) {
			return errors.Wrap(errors.ErrCastleRefused, "pieces between king and rook")
		}
	}

	origin := king.Position
	first := origin.Offset(step, 0)
	if err := e.Move(king, first, false); err != nil {
		return errors.Wrapf(errors.ErrCastleRefused, "king cannot pass (%s): %v", first, err)
	}
	second := first.Offset(step, 0)
	if err := e.Move(king, second, false); err != nil {
		// Only the second step was undone by Move; take back the first.
		e.board.Relocate(king, origin)
		king.MovedEver = false
		e.UpdateChecks()
		return errors.Wrapf(errors.ErrCastleRefused, "king cannot land on (%s): %v", second, err)
	}

	e.board.Relocate(rook, first)
	rook.MovedEver = true
	e.UpdateChecks()
	return nil
}
