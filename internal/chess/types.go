// Package chess provides the core board, piece and movement-rule types.
package chess

import "fmt"

// Team represents the side a piece plays for.
type Team int

const (
	White Team = iota
	Black
)

// String returns the string representation of a team.
func (t Team) String() string {
	if t == Black {
		return "Black"
	}
	return "White"
}

// MarshalText implements encoding.TextMarshaler.
func (t Team) MarshalText() ([]byte, error) {
	return []byte(t.String()), nil
}

// Opposite returns the opposing team.
func (t Team) Opposite() Team {
	if t == White {
		return Black
	}
	return White
}

// Forward returns +1 for White, -1 for Black (the rank direction pawns advance in).
func (t Team) Forward() int {
	if t == White {
		return 1
	}
	return -1
}

// HomeRank returns the rank the team's king and rooks start on.
func (t Team) HomeRank() int {
	if t == White {
		return FirstRank
	}
	return LastRank
}

// FarRank returns the rank farthest from the team's own side.
func (t Team) FarRank() int {
	return t.Opposite().HomeRank()
}

// Archetype represents the kind of a piece.
type Archetype int

const (
	NoArchetype Archetype = iota
	King
	Queen
	Rook
	Bishop
	Knight
	Pawn
)

var archetypeNames = []string{"None", "King", "Queen", "Rook", "Bishop", "Knight", "Pawn"}

// String returns the string representation of an archetype.
func (a Archetype) String() string {
	if int(a) < len(archetypeNames) {
		return archetypeNames[a]
	}
	return "Unknown"
}

// MarshalText implements encoding.TextMarshaler.
func (a Archetype) MarshalText() ([]byte, error) {
	return []byte(a.String()), nil
}

// Letter returns the letter used on the rendered board.
// Knights are drawn as 'H' (horse).
func (a Archetype) Letter() byte {
	letters := []byte{' ', 'K', 'Q', 'R', 'B', 'H', 'P'}
	if int(a) < len(letters) {
		return letters[a]
	}
	return '?'
}

// ParseArchetype maps a piece name ("Queen", "queen", "Q", "H") to its archetype.
func ParseArchetype(name string) (Archetype, bool) {
	for a := King; a <= Pawn; a++ {
		if equalFold(name, a.String()) {
			return a, true
		}
	}
	if len(name) == 1 {
		c := name[0] &^ 0x20 // upper-case ASCII
		if c == 'N' {
			return Knight, true
		}
		for a := King; a <= Pawn; a++ {
			if a.Letter() == c {
				return a, true
			}
		}
	}
	return NoArchetype, false
}

func equalFold(a, b string) bool {
	if len(a) != len(b) {
		return false
	}
	for i := 0; i < len(a); i++ {
		if a[i]|0x20 != b[i]|0x20 {
			return false
		}
	}
	return true
}

// Constants for board dimensions. Files and ranks are both numbered 1..8.
const (
	BoardSize = 8

	FirstFile = 1
	LastFile  = BoardSize
	FirstRank = 1
	LastRank  = BoardSize

	// PiecesPerGame is the number of pieces created at game start.
	PiecesPerGame = 32
)

// Square is a (file, rank) pair, each in [1,8].
type Square struct {
	File int
	Rank int
}

// Sq is shorthand for Square{file, rank}.
func Sq(file, rank int) Square {
	return Square{File: file, Rank: rank}
}

// InBounds reports whether the square lies on the board.
func (s Square) InBounds() bool {
	return s.File >= FirstFile && s.File <= LastFile &&
		s.Rank >= FirstRank && s.Rank <= LastRank
}

// Offset returns the square displaced by (dx, dy). The result may be off the board.
func (s Square) Offset(dx, dy int) Square {
	return Square{File: s.File + dx, Rank: s.Rank + dy}
}

// String returns the square in the "x y" form players type.
func (s Square) String() string {
	return fmt.Sprintf("%d %d", s.File, s.Rank)
}
