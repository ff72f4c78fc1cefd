package main

import (
	"bytes"
	"strings"
	"testing"

	"github.com/lgbarn/rst-chess-go/internal/chess"
	"github.com/lgbarn/rst-chess-go/internal/parser"
)

func TestConsolePrompt(t *testing.T) {
	offer := []*chess.Piece{chess.NewPiece(9, chess.Queen, chess.White, chess.Sq(4, 1))}

	tests := []struct {
		name        string
		input       string
		maxAttempts int
		rejections  int
		want        chess.Archetype
		wantOK      bool
		wantOut     string
	}{
		{"retrieve", "retrieve queen\n", 0, 0, chess.Queen, true, "Captured pieces: Queen"},
		{"decline", "decline\n", 0, 0, chess.NoArchetype, false, "decline"},
		{"end of input", "", 0, 0, chess.NoArchetype, false, "far rank"},
		{"retry after noise", "move 1 1 1 2\nretrieve dragon\nretrieve Q\n", 0, 0, chess.Queen, true, "Expected retrieve or decline"},
		{"cap reached", "help\nhelp\nretrieve queen\n", 2, 0, chess.NoArchetype, false, "retrieval aborted"},
		{"cap counts rejections", "retrieve queen\n", 1, 1, chess.NoArchetype, false, "retrieval aborted"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var out bytes.Buffer
			p := newConsolePrompt(parser.NewReader(strings.NewReader(tt.input), ""), &out, tt.maxAttempts)
			for i := 0; i < tt.rejections; i++ {
				p.RetrievalRejected(assertErr)
			}

			got, ok := p.ChooseRetrieval(chess.White, offer)
			if got != tt.want || ok != tt.wantOK {
				t.Errorf("ChooseRetrieval = %v, %v; want %v, %v", got, ok, tt.want, tt.wantOK)
			}
			if !strings.Contains(out.String(), tt.wantOut) {
				t.Errorf("output %q missing %q", out.String(), tt.wantOut)
			}
		})
	}
}

func TestConsolePromptReset(t *testing.T) {
	var out bytes.Buffer
	p := newConsolePrompt(parser.NewReader(strings.NewReader("retrieve rook\n"), ""), &out, 1)
	p.RetrievalRejected(assertErr)
	if !p.exhausted() {
		t.Fatal("one rejection should exhaust a cap of 1")
	}
	p.reset()
	if p.exhausted() {
		t.Error("reset should clear the attempt count")
	}
	if a, ok := p.ChooseRetrieval(chess.Black, nil); !ok || a != chess.Rook {
		t.Errorf("ChooseRetrieval = %v, %v; want Rook", a, ok)
	}
}

var assertErr = errString("rejected")

type errString string

func (e errString) Error() string { return string(e) }
