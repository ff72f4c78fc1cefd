package main

import (
	"fmt"
	"io"
	"strings"

	"github.com/lgbarn/rst-chess-go/internal/chess"
	"github.com/lgbarn/rst-chess-go/internal/errors"
	"github.com/lgbarn/rst-chess-go/internal/parser"
)

// consolePrompt asks the player at the console which captured piece to bring
// back. After maxAttempts invalid answers (0 = no limit) it gives up and the
// pawn is simply removed.
type consolePrompt struct {
	in          *parser.Reader
	out         io.Writer
	maxAttempts int
	attempts    int
}

func newConsolePrompt(in *parser.Reader, out io.Writer, maxAttempts int) *consolePrompt {
	return &consolePrompt{in: in, out: out, maxAttempts: maxAttempts}
}

// ChooseRetrieval implements engine.RetrievalPrompt.
func (p *consolePrompt) ChooseRetrieval(team chess.Team, captured []*chess.Piece) (chess.Archetype, bool) {
	for {
		if p.exhausted() {
			fmt.Fprintf(p.out, "%v. The pawn is removed.\n", errors.ErrRetrievalAborted)
			return chess.NoArchetype, false
		}

		fmt.Fprintf(p.out, "%s pawn reached the far rank. Captured pieces: %s\n", team, offerList(captured))
		fmt.Fprintln(p.out, `Type "retrieve NAME" to bring one back or "decline".`)

		cmd, err := p.in.Next()
		if err == io.EOF {
			return chess.NoArchetype, false
		}
		if err != nil {
			fmt.Fprintf(p.out, "%v\n", err)
			p.attempts++
			continue
		}

		switch cmd.Kind {
		case parser.Retrieve:
			return cmd.Archetype, true
		case parser.Decline:
			return chess.NoArchetype, false
		}
		fmt.Fprintf(p.out, "Expected retrieve or decline, got %q.\n", cmd.String())
		p.attempts++
	}
}

// RetrievalRejected implements engine.RetrievalPrompt.
func (p *consolePrompt) RetrievalRejected(err error) {
	fmt.Fprintf(p.out, "%v\n", err)
	p.attempts++
}

// reset starts a fresh attempt count; called before every move.
func (p *consolePrompt) reset() {
	p.attempts = 0
}

func (p *consolePrompt) exhausted() bool {
	return p.maxAttempts > 0 && p.attempts >= p.maxAttempts
}

func offerList(captured []*chess.Piece) string {
	names := make([]string, len(captured))
	for i, c := range captured {
		names[i] = c.Archetype.String()
	}
	return strings.Join(names, ", ")
}
