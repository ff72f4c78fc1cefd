package output

import (
	"strings"

	"github.com/lgbarn/rst-chess-go/internal/chess"
)

// JSONFrame represents a frame in JSON format.
type JSONFrame struct {
	GameID   string              `json:"gameId,omitempty"`
	Ply      int                 `json:"ply"`
	Turn     string              `json:"turn"`
	Status   string              `json:"status"`
	Winner   string              `json:"winner,omitempty"`
	Ranks    []string            `json:"ranks"` // rank 1 first, files left to right
	Captured map[string][]string `json:"captured"`
	InCheck  []string            `json:"inCheck,omitempty"`
}

// JSONOutput holds multiple frames for array output.
type JSONOutput struct {
	Frames []*JSONFrame `json:"frames"`
}

// FrameToJSON converts a frame to its JSON representation.
func FrameToJSON(f Frame) *JSONFrame {
	jf := &JSONFrame{
		GameID: f.GameID,
		Ply:    f.Ply,
		Turn:   f.Turn.String(),
		Status: f.Status,
		Winner: f.Winner,
		Ranks:  make([]string, 0, chess.BoardSize),
		Captured: map[string][]string{
			chess.White.String(): {},
			chess.Black.String(): {},
		},
	}

	for rank := chess.FirstRank; rank <= chess.LastRank; rank++ {
		cells := make([]string, 0, chess.BoardSize)
		for file := chess.FirstFile; file <= chess.LastFile; file++ {
			cells = append(cells, squareCode(f.Board.At(chess.Sq(file, rank)), ".."))
		}
		jf.Ranks = append(jf.Ranks, strings.Join(cells, " "))
	}

	for _, team := range []chess.Team{chess.White, chess.Black} {
		for _, a := range f.Board.Captured[team] {
			jf.Captured[team.String()] = append(jf.Captured[team.String()], a.String())
		}
		if f.Board.InCheck[team] {
			jf.InCheck = append(jf.InCheck, team.String())
		}
	}
	return jf
}

// squareCode returns the two-letter code of a square, e.g. "WK" or "BH",
// or empty for an unoccupied square.
func squareCode(sq chess.SquareView, empty string) string {
	if !sq.Occupied {
		return empty
	}
	return pieceCode(sq.Team, sq.Archetype)
}

func pieceCode(team chess.Team, a chess.Archetype) string {
	return string([]byte{team.String()[0], a.Letter()})
}
