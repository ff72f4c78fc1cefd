package chess

import "fmt"

// Piece is a single chess piece. Pieces are created once at game start and
// never destroyed; capture only flips Captured.
type Piece struct {
	// ID is the piece's index in its board's piece list.
	ID        int
	Archetype Archetype
	Team      Team
	Position  Square

	// Captured pieces take no part in occupancy or movement.
	Captured bool

	// MovedEver is set by the first executed move and gates castling and the
	// pawn double step.
	MovedEver bool

	// InCheck is only meaningful for kings.
	InCheck bool

	// CheckingOpponentKing and Interpositions are rebuilt on every check
	// update. Interpositions lists, in walk order, the squares strictly between
	// this piece and the enemy king; it is only consulted while
	// CheckingOpponentKing is true.
	CheckingOpponentKing bool
	Interpositions       []Square

	Rules []MoveRule

	// Pawn is non-nil exactly when Archetype == Pawn.
	Pawn *PawnState
}

// PawnState is the payload carried only by pawns.
type PawnState struct {
	// DoubleStepSpent is true once the pawn's first-move forward-two rule has
	// been narrowed to a single step.
	DoubleStepSpent bool
}

// NewPiece creates a piece with its archetype's rule set.
func NewPiece(id int, a Archetype, team Team, at Square) *Piece {
	p := &Piece{
		ID:        id,
		Archetype: a,
		Team:      team,
		Position:  at,
		Rules:     RulesFor(a, team),
	}
	if a == Pawn {
		p.Pawn = &PawnState{}
	}
	return p
}

// Active reports whether the piece is still on the board.
func (p *Piece) Active() bool {
	return !p.Captured
}

// IsKing reports whether the piece is a king.
func (p *Piece) IsKing() bool {
	return p.Archetype == King
}

// Name returns e.g. "White Rook".
func (p *Piece) Name() string {
	return fmt.Sprintf("%s %s", p.Team, p.Archetype)
}

// String implements fmt.Stringer.
func (p *Piece) String() string {
	if p.Captured {
		return p.Name() + " (captured)"
	}
	return fmt.Sprintf("%s at %s", p.Name(), p.Position)
}

// SyncPawnRules narrows the pawn's forward-two rule to forward-one once the pawn
// has moved, and restores it if a trial move is reverted. It is a no-op for
// other archetypes.
func (p *Piece) SyncPawnRules() {
	if p.Pawn == nil || len(p.Rules) == 0 {
		return
	}
	fwd := p.Team.Forward()
	if p.MovedEver {
		p.Rules[0].DY = fwd
	} else {
		p.Rules[0].DY = 2 * fwd
	}
	p.Pawn.DoubleStepSpent = p.MovedEver
}

// IsDoubleStep reports whether moving to target would be the pawn's two-square
// first move.
func (p *Piece) IsDoubleStep(target Square) bool {
	return p.Pawn != nil && !p.Pawn.DoubleStepSpent &&
		target.File == p.Position.File && target.Rank == p.Position.Rank+2*p.Team.Forward()
}

// ResetCheckState clears the per-ply check bookkeeping.
func (p *Piece) ResetCheckState() {
	p.CheckingOpponentKing = false
	p.Interpositions = p.Interpositions[:0]
}
