package output

import (
	"fmt"
	"io"
	"strings"

	"github.com/lgbarn/rst-chess-go/internal/chess"
	"github.com/lgbarn/rst-chess-go/internal/config"
)

const rowRule = "-------------------------"

// TextRenderer draws the console board: file numbers across the top, rank
// numbers down the right, rank 1 first.
type TextRenderer struct {
	w            io.Writer
	clearLines   int
	showCaptured bool
}

// NewTextRenderer creates a text renderer using the output settings of cfg.
func NewTextRenderer(w io.Writer, cfg *config.Config) *TextRenderer {
	return &TextRenderer{
		w:            w,
		clearLines:   cfg.Output.ClearLines,
		showCaptured: cfg.Output.ShowCaptured,
	}
}

// Render writes a frame.
func (tr *TextRenderer) Render(f Frame) error {
	var sb strings.Builder
	sb.WriteString(strings.Repeat("\n", tr.clearLines))
	writeGrid(&sb, &f.Board)

	if tr.showCaptured {
		for _, team := range []chess.Team{chess.White, chess.Black} {
			fmt.Fprintf(&sb, "Captured %s pieces: %s\n", team, capturedList(team, f.Board.Captured[team]))
		}
	}

	switch {
	case f.Winner != "":
		fmt.Fprintf(&sb, "%s. %s wins.\n", f.Status, f.Winner)
	case f.Status == "Check":
		fmt.Fprintf(&sb, "%s to move, in check.\n", f.Turn)
	default:
		fmt.Fprintf(&sb, "%s to move.\n", f.Turn)
	}

	_, err := io.WriteString(tr.w, sb.String())
	return err
}

// Flush is a no-op; text is written immediately.
func (tr *TextRenderer) Flush() error {
	return nil
}

// Close closes the text renderer.
func (tr *TextRenderer) Close() error {
	return nil
}

// FormatBoard returns the grid alone.
func FormatBoard(v chess.BoardView) string {
	var sb strings.Builder
	writeGrid(&sb, &v)
	return sb.String()
}

func writeGrid(sb *strings.Builder, v *chess.BoardView) {
	for file := chess.FirstFile; file <= chess.LastFile; file++ {
		fmt.Fprintf(sb, " %d ", file)
	}
	sb.WriteString("\n")

	for rank := chess.FirstRank; rank <= chess.LastRank; rank++ {
		sb.WriteString(rowRule + "\n")
		for file := chess.FirstFile; file <= chess.LastFile; file++ {
			sb.WriteString("|")
			sb.WriteString(squareCode(v.At(chess.Sq(file, rank)), "  "))
		}
		fmt.Fprintf(sb, "| %d\n", rank)
	}
	sb.WriteString(rowRule + "\n")
}

func capturedList(team chess.Team, pool []chess.Archetype) string {
	if len(pool) == 0 {
		return "none"
	}
	codes := make([]string, len(pool))
	for i, a := range pool {
		codes[i] = pieceCode(team, a)
	}
	return strings.Join(codes, " ")
}
