package engine

import (
	"testing"

	"github.com/lgbarn/rst-chess-go/internal/chess"
	"github.com/lgbarn/rst-chess-go/internal/errors"
	"github.com/lgbarn/rst-chess-go/internal/testutil"
)

func TestMove(t *testing.T) {
	tests := []struct {
		name    string
		pieces  []string
		from    chess.Square
		to      chess.Square
		wantErr error
	}{
		{"pinned rook leaves the file", []string{"WK51", "WR52", "BR58", "BK18"}, chess.Sq(5, 2), chess.Sq(4, 2), errors.ErrKingExposed},
		{"pinned rook slides along the file", []string{"WK51", "WR52", "BR58", "BK18"}, chess.Sq(5, 2), chess.Sq(5, 5), nil},
		{"pinned rook captures the pinner", []string{"WK51", "WR52", "BR58", "BK18"}, chess.Sq(5, 2), chess.Sq(5, 8), nil},
		{"pinned bishop captures off the line", []string{"WK51", "WB52", "BR58", "BH63", "BK18"}, chess.Sq(5, 2), chess.Sq(6, 3), errors.ErrKingExposed},
		{"king steps into a rook file", []string{"WK51", "BR68", "BK18"}, chess.Sq(5, 1), chess.Sq(6, 2), errors.ErrKingExposed},
		{"king steps aside", []string{"WK51", "BR68", "BK18"}, chess.Sq(5, 1), chess.Sq(4, 2), nil},
		{"block a check", []string{"WK51", "BR58", "WR14", "BK18"}, chess.Sq(1, 4), chess.Sq(5, 4), nil},
		{"ignore a check", []string{"WK51", "BR58", "WR14", "BK18"}, chess.Sq(1, 4), chess.Sq(1, 7), errors.ErrKingExposed},
		{"no rule allows it", []string{"WK51", "WR14", "BK18"}, chess.Sq(1, 4), chess.Sq(2, 5), errors.ErrIllegalMove},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			b := testutil.NewBoard(t, tt.pieces...)
			e := New(b)
			p := b.PieceAt(tt.from)
			before := b.Snapshot()
			beforeCheck := e.InCheck(p.Team)

			err := e.Move(p, tt.to, false)

			if tt.wantErr != nil {
				if !errors.Is(err, tt.wantErr) {
					t.Fatalf("Move(%s -> %s) = %v, want %v", tt.from, tt.to, err, tt.wantErr)
				}
				testutil.AssertEqual(t, b.Snapshot(), before, "refused move must be undone exactly")
				testutil.AssertEqual(t, e.InCheck(p.Team), beforeCheck, "check state recomputed after revert")
				return
			}
			testutil.AssertNoError(t, err)
			testutil.AssertEqual(t, p.Position, tt.to)
			testutil.AssertFalse(t, e.InCheck(p.Team), "mover's king is safe")
		})
	}
}

func TestMoveVerifyOnlyAlwaysReverts(t *testing.T) {
	b := testutil.NewBoard(t, "WK51", "WR52", "BR58", "BK18")
	e := New(b)
	rook := testutil.MustPieceAt(t, b, 5, 2)
	before := b.Snapshot()

	testutil.AssertNoError(t, e.Move(rook, chess.Sq(5, 8), true))
	testutil.AssertEqual(t, b.Snapshot(), before)
	testutil.AssertTrue(t, e.MovePiece(rook, chess.Sq(5, 8), true))
	testutil.AssertFalse(t, e.MovePiece(rook, chess.Sq(4, 2), true))
	testutil.AssertEqual(t, b.Snapshot(), before)
}

func TestMoveRestoresPawnDoubleStep(t *testing.T) {
	b := chess.NewInitialBoard()
	e := New(b)
	pawn := testutil.MustPieceAt(t, b, 5, 2)

	testutil.AssertTrue(t, e.MovePiece(pawn, chess.Sq(5, 4), true))
	testutil.AssertFalse(t, pawn.MovedEver, "probe does not mark the pawn as moved")
	testutil.AssertEqual(t, pawn.Rules[0].DY, 2)
	testutil.AssertTrue(t, e.MovePiece(pawn, chess.Sq(5, 4), true), "double step still available")
}

func TestMoveNotifiesOnlyCommittedCaptures(t *testing.T) {
	t.Run("refused capture", func(t *testing.T) {
		b := testutil.NewBoard(t, "WK51", "WB52", "BR58", "BH63", "BK18")
		log := &captureLog{}
		e := New(b, WithNotifier(log))
		bishop := testutil.MustPieceAt(t, b, 5, 2)

		testutil.AssertError(t, e.Move(bishop, chess.Sq(6, 3), false))
		testutil.AssertError(t, e.Move(bishop, chess.Sq(6, 3), true))
		testutil.AssertEqual(t, len(log.events), 0)
	})

	t.Run("probe then commit", func(t *testing.T) {
		b := testutil.NewBoard(t, "WK51", "BK18", "WR31", "BH37")
		log := &captureLog{}
		e := New(b, WithNotifier(log))
		rook := testutil.MustPieceAt(t, b, 3, 1)

		testutil.AssertNoError(t, e.Move(rook, chess.Sq(3, 7), true))
		testutil.AssertEqual(t, len(log.events), 0, "probes are silent")

		testutil.AssertNoError(t, e.Move(rook, chess.Sq(3, 7), false))
		testutil.AssertEqual(t, len(log.events), 1)
		testutil.AssertEqual(t, log.events[0].Captured.Archetype, chess.Knight)
		testutil.AssertEqual(t, log.events[0].Capturer, rook)
	})
}

func TestLegalTargets(t *testing.T) {
	tests := []struct {
		name   string
		pieces []string
		from   chess.Square
		want   []chess.Square
	}{
		{"king in the corner", []string{"WK11", "BK88"}, chess.Sq(1, 1),
			[]chess.Square{chess.Sq(2, 1), chess.Sq(1, 2), chess.Sq(2, 2)}},
		{"king next to a rook file", []string{"WK11", "BK88", "BR28"}, chess.Sq(1, 1),
			[]chess.Square{chess.Sq(1, 2)}},
		{"pinned knight", []string{"WK11", "WH12", "BR18", "BK88"}, chess.Sq(1, 2), nil},
		{"pawn at the start", []string{"WK11", "BK88", "WP52"}, chess.Sq(5, 2),
			[]chess.Square{chess.Sq(5, 3), chess.Sq(5, 4)}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			b := testutil.NewBoard(t, tt.pieces...)
			e := New(b)
			before := b.Snapshot()

			got := e.LegalTargets(b.PieceAt(tt.from))

			testutil.AssertEqual(t, got, tt.want)
			testutil.AssertEqual(t, b.Snapshot(), before)
		})
	}
}
