package chess

// MoveRule is a displacement vector a piece may move or attack along.
//
// OneShot rules (king, knight, pawn) move by exactly (DX, DY). Sliding rules
// (queen, rook, bishop) move any positive multiple of (DX, DY) subject to line of
// sight. Attack rules apply only when capturing; move rules only when the target
// square is empty.
type MoveRule struct {
	DX      int
	DY      int
	OneShot bool
	Attack  bool
}

var (
	orthogonal = [][2]int{{1, 0}, {0, 1}, {-1, 0}, {0, -1}}
	diagonal   = [][2]int{{1, 1}, {-1, 1}, {-1, -1}, {1, -1}}
	allEight   = [][2]int{{1, 0}, {1, 1}, {0, 1}, {-1, 1}, {-1, 0}, {-1, -1}, {0, -1}, {1, -1}}
	knightJump = [][2]int{{2, 1}, {-2, 1}, {2, -1}, {-2, -1}, {1, 2}, {-1, 2}, {1, -2}, {-1, -2}}
)

// RulesFor builds the rule set of a freshly created piece. Move rules come first,
// followed by the matching attack rules, so a rule set is the union of both.
func RulesFor(a Archetype, team Team) []MoveRule {
	switch a {
	case King:
		return symmetricRules(allEight, true)
	case Queen:
		return symmetricRules(allEight, false)
	case Rook:
		return symmetricRules(orthogonal, false)
	case Bishop:
		return symmetricRules(diagonal, false)
	case Knight:
		return symmetricRules(knightJump, true)
	case Pawn:
		fwd := team.Forward()
		return []MoveRule{
			{DX: 0, DY: 2 * fwd, OneShot: true},
			{DX: 0, DY: fwd, OneShot: true},
			{DX: 1, DY: fwd, OneShot: true, Attack: true},
			{DX: -1, DY: fwd, OneShot: true, Attack: true},
		}
	}
	return nil
}

func symmetricRules(dirs [][2]int, oneShot bool) []MoveRule {
	rules := make([]MoveRule, 0, 2*len(dirs))
	for _, attack := range []bool{false, true} {
		for _, d := range dirs {
			rules = append(rules, MoveRule{DX: d[0], DY: d[1], OneShot: oneShot, Attack: attack})
		}
	}
	return rules
}
