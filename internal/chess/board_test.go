package chess

import (
	"strings"
	"testing"
)

func TestNewBoard(t *testing.T) {
	b := NewBoard()

	t.Run("no pieces", func(t *testing.T) {
		if got := len(b.Pieces()); got != 0 {
			t.Errorf("len(Pieces()) = %d; want 0", got)
		}
	})

	t.Run("all squares empty", func(t *testing.T) {
		for file := FirstFile; file <= LastFile; file++ {
			for rank := FirstRank; rank <= LastRank; rank++ {
				if got := b.PieceAt(Sq(file, rank)); got != nil {
					t.Errorf("PieceAt(%d, %d) = %v; want nil", file, rank, got)
				}
			}
		}
	})

	t.Run("no kings", func(t *testing.T) {
		if b.King(White) != nil || b.King(Black) != nil {
			t.Error("empty board has a king")
		}
	})
}

func TestSetupInitialPosition(t *testing.T) {
	b := NewInitialBoard()

	tests := []struct {
		name      string
		sq        Square
		archetype Archetype
		team      Team
	}{
		// White back rank
		{"white rook 1 1", Sq(1, 1), Rook, White},
		{"white knight 2 1", Sq(2, 1), Knight, White},
		{"white bishop 3 1", Sq(3, 1), Bishop, White},
		{"white queen 4 1", Sq(4, 1), Queen, White},
		{"white king 5 1", Sq(5, 1), King, White},
		{"white bishop 6 1", Sq(6, 1), Bishop, White},
		{"white knight 7 1", Sq(7, 1), Knight, White},
		{"white rook 8 1", Sq(8, 1), Rook, White},
		// Pawns
		{"white pawn 1 2", Sq(1, 2), Pawn, White},
		{"white pawn 5 2", Sq(5, 2), Pawn, White},
		{"black pawn 1 7", Sq(1, 7), Pawn, Black},
		{"black pawn 8 7", Sq(8, 7), Pawn, Black},
		// Black back rank
		{"black rook 1 8", Sq(1, 8), Rook, Black},
		{"black knight 2 8", Sq(2, 8), Knight, Black},
		{"black queen 4 8", Sq(4, 8), Queen, Black},
		{"black king 5 8", Sq(5, 8), King, Black},
		{"black rook 8 8", Sq(8, 8), Rook, Black},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := b.PieceAt(tt.sq)
			if got == nil {
				t.Fatalf("PieceAt(%s) = nil; want %s %s", tt.sq, tt.team, tt.archetype)
			}
			if got.Archetype != tt.archetype || got.Team != tt.team {
				t.Errorf("PieceAt(%s) = %s; want %s %s", tt.sq, got.Name(), tt.team, tt.archetype)
			}
		})
	}

	t.Run("empty middle", func(t *testing.T) {
		for rank := 3; rank <= 6; rank++ {
			for file := FirstFile; file <= LastFile; file++ {
				if p := b.PieceAt(Sq(file, rank)); p != nil {
					t.Errorf("PieceAt(%d, %d) = %s; want nil", file, rank, p)
				}
			}
		}
	})

	t.Run("piece count and ids", func(t *testing.T) {
		pieces := b.Pieces()
		if len(pieces) != PiecesPerGame {
			t.Fatalf("len(Pieces()) = %d; want %d", len(pieces), PiecesPerGame)
		}
		for i, p := range pieces {
			if p.ID != i {
				t.Errorf("pieces[%d].ID = %d", i, p.ID)
			}
		}
		if !pieces[0].IsKing() || pieces[0].Team != White {
			t.Errorf("pieces[0] = %s; want White King", pieces[0].Name())
		}
		if !pieces[1].IsKing() || pieces[1].Team != Black {
			t.Errorf("pieces[1] = %s; want Black King", pieces[1].Name())
		}
	})

	t.Run("kings", func(t *testing.T) {
		if k := b.King(White); k == nil || k.Position != Sq(5, 1) {
			t.Errorf("King(White) = %v; want at 5 1", k)
		}
		if k := b.King(Black); k == nil || k.Position != Sq(5, 8) {
			t.Errorf("King(Black) = %v; want at 5 8", k)
		}
	})

	t.Run("valid", func(t *testing.T) {
		if err := b.Validate(); err != nil {
			t.Errorf("Validate() = %v; want nil", err)
		}
	})

	t.Run("setup twice resets", func(t *testing.T) {
		b.SetupInitialPosition()
		if got := len(b.Pieces()); got != PiecesPerGame {
			t.Errorf("len(Pieces()) = %d after second setup; want %d", got, PiecesPerGame)
		}
	})
}

func TestPieceAtIgnoresCaptured(t *testing.T) {
	b := NewBoard()
	p := b.Place(Rook, White, Sq(1, 1))
	p.Captured = true

	if got := b.PieceAt(Sq(1, 1)); got != nil {
		t.Errorf("PieceAt(1 1) = %v; want nil for captured piece", got)
	}
	if b.Occupied(Sq(1, 1)) {
		t.Error("Occupied(1 1) = true; want false")
	}
	if got := b.CapturedPool(White); len(got) != 1 || got[0] != p {
		t.Errorf("CapturedPool(White) = %v; want [%v]", got, p)
	}
	if got := b.ActivePieces(White); len(got) != 0 {
		t.Errorf("ActivePieces(White) = %v; want empty", got)
	}
}

func TestSnapshotRestore(t *testing.T) {
	b := NewInitialBoard()
	before := b.Snapshot()

	pawn := b.PieceAt(Sq(5, 2))
	pawn.Position = Sq(5, 4)
	pawn.MovedEver = true
	pawn.SyncPawnRules()
	victim := b.PieceAt(Sq(4, 7))
	victim.Captured = true

	b.Restore(before)

	if pawn.Position != Sq(5, 2) || pawn.MovedEver {
		t.Errorf("pawn = %v moved=%v; want at 5 2 unmoved", pawn, pawn.MovedEver)
	}
	if pawn.Rules[0].DY != 2 || pawn.Pawn.DoubleStepSpent {
		t.Errorf("pawn double step not restored: rule %+v spent=%v", pawn.Rules[0], pawn.Pawn.DoubleStepSpent)
	}
	if victim.Captured {
		t.Error("victim still captured after Restore")
	}
}

func TestValidate(t *testing.T) {
	tests := []struct {
		name    string
		build   func() *Board
		wantErr []string
	}{
		{
			name: "two kings on a sparse board",
			build: func() *Board {
				b := NewBoard()
				b.Place(King, White, Sq(1, 1))
				b.Place(King, Black, Sq(8, 8))
				return b
			},
		},
		{
			name: "missing kings",
			build: func() *Board {
				b := NewBoard()
				b.Place(Rook, White, Sq(1, 1))
				return b
			},
			wantErr: []string{"White has 0 kings", "Black has 0 kings"},
		},
		{
			name: "shared square",
			build: func() *Board {
				b := NewBoard()
				b.Place(King, White, Sq(1, 1))
				b.Place(King, Black, Sq(8, 8))
				b.Place(Rook, White, Sq(4, 4))
				b.Place(Bishop, Black, Sq(4, 4))
				return b
			},
			wantErr: []string{"both occupy (4 4)"},
		},
		{
			name: "captured king",
			build: func() *Board {
				b := NewBoard()
				b.Place(King, White, Sq(1, 1)).Captured = true
				b.Place(King, Black, Sq(8, 8))
				return b
			},
			wantErr: []string{"White King is marked captured"},
		},
		{
			name: "off board",
			build: func() *Board {
				b := NewBoard()
				b.Place(King, White, Sq(1, 1))
				b.Place(King, Black, Sq(8, 8))
				b.Place(Knight, White, Sq(9, 1))
				return b
			},
			wantErr: []string{"off the board"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := tt.build().Validate()
			if len(tt.wantErr) == 0 {
				if err != nil {
					t.Errorf("Validate() = %v; want nil", err)
				}
				return
			}
			if err == nil {
				t.Fatal("Validate() = nil; want error")
			}
			for _, want := range tt.wantErr {
				if !strings.Contains(err.Error(), want) {
					t.Errorf("Validate() = %q; want it to mention %q", err, want)
				}
			}
		})
	}
}

func TestView(t *testing.T) {
	b := NewInitialBoard()
	b.PieceAt(Sq(4, 8)).Captured = true
	b.King(White).InCheck = true

	v := b.View()

	if sv := v.At(Sq(2, 1)); !sv.Occupied || sv.Archetype != Knight || sv.Team != White {
		t.Errorf("At(2 1) = %+v; want White Knight", sv)
	}
	if sv := v.At(Sq(4, 8)); sv.Occupied {
		t.Errorf("At(4 8) = %+v; want empty", sv)
	}
	if got := v.Captured[Black]; len(got) != 1 || got[0] != Queen {
		t.Errorf("Captured[Black] = %v; want [Queen]", got)
	}
	if len(v.Captured[White]) != 0 {
		t.Errorf("Captured[White] = %v; want empty", v.Captured[White])
	}
	if !v.InCheck[White] || v.InCheck[Black] {
		t.Errorf("InCheck = %v; want only White", v.InCheck)
	}
}
