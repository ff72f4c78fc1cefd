package testutil

import (
	"fmt"
	"strings"
	"testing"

	"github.com/lgbarn/rst-chess-go/internal/chess"
)

// ParsePlacement decodes a compact piece description such as "WK51" (White King
// on file 5, rank 1) or "BR58". A trailing "*" marks the piece as having moved.
func ParsePlacement(s string) (chess.Archetype, chess.Team, chess.Square, bool, error) {
	moved := strings.HasSuffix(s, "*")
	s = strings.TrimSuffix(s, "*")
	if len(s) != 4 {
		return 0, 0, chess.Square{}, false, fmt.Errorf("placement %q: want 4 characters", s)
	}

	var team chess.Team
	switch s[0] {
	case 'W', 'w':
		team = chess.White
	case 'B', 'b':
		team = chess.Black
	default:
		return 0, 0, chess.Square{}, false, fmt.Errorf("placement %q: unknown team %q", s, s[0])
	}

	a, ok := chess.ParseArchetype(s[1:2])
	if !ok {
		return 0, 0, chess.Square{}, false, fmt.Errorf("placement %q: unknown piece %q", s, s[1])
	}

	sq := chess.Sq(int(s[2]-'0'), int(s[3]-'0'))
	if !sq.InBounds() {
		return 0, 0, chess.Square{}, false, fmt.Errorf("placement %q: square off the board", s)
	}
	return a, team, sq, moved, nil
}

// NewBoard builds a sparse board from placements like "WK51". Kings are not
// added implicitly.
func NewBoard(t testing.TB, placements ...string) *chess.Board {
	t.Helper()
	b := chess.NewBoard()
	for _, s := range placements {
		a, team, sq, moved, err := ParsePlacement(s)
		if err != nil {
			t.Fatalf("NewBoard: %v", err)
		}
		if b.Occupied(sq) {
			t.Fatalf("NewBoard: square (%s) used twice", sq)
		}
		p := b.Place(a, team, sq)
		p.MovedEver = moved
		p.SyncPawnRules()
	}
	return b
}

// MustPieceAt returns the active piece on (file, rank) or fails the test.
func MustPieceAt(t testing.TB, b *chess.Board, file, rank int) *chess.Piece {
	t.Helper()
	p := b.PieceAt(chess.Sq(file, rank))
	if p == nil {
		t.Fatalf("no piece at (%d %d)", file, rank)
	}
	return p
}

// Occupancy lists the active pieces as placements, rank 8 first. It is a
// convenient value to compare with AssertEqual before and after an operation.
func Occupancy(b *chess.Board) []string {
	var out []string
	for rank := chess.LastRank; rank >= chess.FirstRank; rank-- {
		for file := chess.FirstFile; file <= chess.LastFile; file++ {
			p := b.PieceAt(chess.Sq(file, rank))
			if p == nil {
				continue
			}
			team := "W"
			if p.Team == chess.Black {
				team = "B"
			}
			out = append(out, fmt.Sprintf("%s%c%d%d", team, p.Archetype.Letter(), file, rank))
		}
	}
	return out
}
