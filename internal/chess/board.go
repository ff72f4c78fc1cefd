package chess

import (
	"fmt"

	"github.com/hashicorp/go-multierror"
	"golang.org/x/exp/slices"
)

// Board owns every piece of a game. Occupancy is always derived from the
// pieces themselves; there is no cached grid.
type Board struct {
	pieces []*Piece
	kings  [2]*Piece
}

// NewBoard creates a new empty board.
func NewBoard() *Board {
	return &Board{pieces: make([]*Piece, 0, PiecesPerGame)}
}

// NewInitialBoard creates a board set up in the standard starting position.
func NewInitialBoard() *Board {
	b := NewBoard()
	b.SetupInitialPosition()
	return b
}

// SetupInitialPosition places all 32 pieces on their starting squares,
// discarding any pieces already on the board.
func (b *Board) SetupInitialPosition() {
	b.pieces = b.pieces[:0]
	b.kings = [2]*Piece{}

	// Kings first, so ids 0 and 1 are always the kings.
	b.Place(King, White, Sq(5, FirstRank))
	b.Place(King, Black, Sq(5, LastRank))

	backRank := []Archetype{Rook, Knight, Bishop, Queen, NoArchetype, Bishop, Knight, Rook}
	for _, team := range []Team{White, Black} {
		home := team.HomeRank()
		for file := FirstFile; file <= LastFile; file++ {
			if a := backRank[file-1]; a != NoArchetype {
				b.Place(a, team, Sq(file, home))
			}
		}
		for file := FirstFile; file <= LastFile; file++ {
			b.Place(Pawn, team, Sq(file, home+team.Forward()))
		}
	}
}

// Place adds a new active piece to the board and returns it. It is used for
// the initial setup and for building positions in tests; during play pieces are
// never added.
func (b *Board) Place(a Archetype, team Team, at Square) *Piece {
	p := NewPiece(len(b.pieces), a, team, at)
	b.pieces = append(b.pieces, p)
	if a == King && b.kings[team] == nil {
		b.kings[team] = p
	}
	return p
}

// Pieces returns every piece, captured or not, in creation order.
func (b *Board) Pieces() []*Piece {
	return b.pieces
}

// Piece returns the piece with the given id, or nil.
func (b *Board) Piece(id int) *Piece {
	if id < 0 || id >= len(b.pieces) {
		return nil
	}
	return b.pieces[id]
}

// King returns the team's king, or nil on a board that has none.
func (b *Board) King(team Team) *Piece {
	return b.kings[team]
}

// PieceAt returns the active piece occupying sq, or nil.
func (b *Board) PieceAt(sq Square) *Piece {
	i := slices.IndexFunc(b.pieces, func(p *Piece) bool {
		return !p.Captured && p.Position == sq
	})
	if i < 0 {
		return nil
	}
	return b.pieces[i]
}

// Occupied reports whether an active piece stands on sq.
func (b *Board) Occupied(sq Square) bool {
	return b.PieceAt(sq) != nil
}

// ActivePieces returns the team's pieces that are still on the board.
func (b *Board) ActivePieces(team Team) []*Piece {
	var out []*Piece
	for _, p := range b.pieces {
		if p.Team == team && !p.Captured {
			out = append(out, p)
		}
	}
	return out
}

// CapturedPool returns the team's captured pieces in creation order.
func (b *Board) CapturedPool(team Team) []*Piece {
	var out []*Piece
	for _, p := range b.pieces {
		if p.Team == team && p.Captured {
			out = append(out, p)
		}
	}
	return out
}

// Relocate moves p to sq without consulting any movement rule. Only castling's
// rook jump, trial reverts and retrieval use it.
func (b *Board) Relocate(p *Piece, sq Square) {
	p.Position = sq
}

// PieceState is the mutable part of a piece captured by Snapshot.
type PieceState struct {
	ID        int
	Position  Square
	Captured  bool
	MovedEver bool
}

// Snapshot captures the position, captured and moved flags of every piece.
func (b *Board) Snapshot() []PieceState {
	out := make([]PieceState, len(b.pieces))
	for i, p := range b.pieces {
		out[i] = PieceState{ID: p.ID, Position: p.Position, Captured: p.Captured, MovedEver: p.MovedEver}
	}
	return out
}

// Restore puts every piece back into a previously captured state.
func (b *Board) Restore(states []PieceState) {
	for _, s := range states {
		p := b.Piece(s.ID)
		if p == nil {
			continue
		}
		p.Position = s.Position
		p.Captured = s.Captured
		p.MovedEver = s.MovedEver
		p.SyncPawnRules()
	}
}

// Validate checks the board invariants and reports every violation found.
// A non-nil result means the engine has a bug, not that a player erred.
func (b *Board) Validate() error {
	var result *multierror.Error

	occupied := make(map[Square]*Piece, len(b.pieces))
	kings := [2]int{}
	for i, p := range b.pieces {
		if p == nil {
			result = multierror.Append(result, fmt.Errorf("piece %d is nil", i))
			continue
		}
		if p.ID != i {
			result = multierror.Append(result, fmt.Errorf("%s has id %d at index %d", p.Name(), p.ID, i))
		}
		if len(p.Rules) == 0 {
			result = multierror.Append(result, fmt.Errorf("%s has no movement rules", p.Name()))
		}
		if (p.Archetype == Pawn) != (p.Pawn != nil) {
			result = multierror.Append(result, fmt.Errorf("%s has inconsistent pawn state", p.Name()))
		}
		if p.IsKing() {
			kings[p.Team]++
			if p.Captured {
				result = multierror.Append(result, fmt.Errorf("%s is marked captured", p.Name()))
			}
		}
		if p.Captured {
			continue
		}
		if !p.Position.InBounds() {
			result = multierror.Append(result, fmt.Errorf("%s is off the board at (%s)", p.Name(), p.Position))
			continue
		}
		if other, ok := occupied[p.Position]; ok {
			result = multierror.Append(result, fmt.Errorf("%s and %s both occupy (%s)", other.Name(), p.Name(), p.Position))
			continue
		}
		occupied[p.Position] = p
	}
	for _, team := range []Team{White, Black} {
		if kings[team] != 1 {
			result = multierror.Append(result, fmt.Errorf("%s has %d kings", team, kings[team]))
		}
	}

	return result.ErrorOrNil()
}
