package chess

// SquareView describes what stands on one square.
type SquareView struct {
	Occupied  bool      `json:"occupied"`
	Archetype Archetype `json:"archetype,omitempty"`
	Team      Team      `json:"team"`
}

// BoardView is a read-only snapshot of the board, sufficient to draw it.
// Squares is indexed [file-1][rank-1].
type BoardView struct {
	Squares  [BoardSize][BoardSize]SquareView `json:"squares"`
	Captured map[Team][]Archetype             `json:"captured"`
	InCheck  map[Team]bool                    `json:"in_check"`
}

// At returns the view of a single square.
func (v *BoardView) At(sq Square) SquareView {
	return v.Squares[sq.File-1][sq.Rank-1]
}

// View derives a BoardView from the current piece state.
func (b *Board) View() BoardView {
	v := BoardView{
		Captured: map[Team][]Archetype{White: {}, Black: {}},
		InCheck:  map[Team]bool{White: false, Black: false},
	}
	for _, p := range b.pieces {
		if p.Captured {
			v.Captured[p.Team] = append(v.Captured[p.Team], p.Archetype)
			continue
		}
		if !p.Position.InBounds() {
			continue
		}
		v.Squares[p.Position.File-1][p.Position.Rank-1] = SquareView{
			Occupied:  true,
			Archetype: p.Archetype,
			Team:      p.Team,
		}
	}
	for _, team := range []Team{White, Black} {
		if k := b.King(team); k != nil {
			v.InCheck[team] = k.InCheck
		}
	}
	return v
}
