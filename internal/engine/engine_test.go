package engine

import (
	"github.com/lgbarn/rst-chess-go/internal/chess"
)

// captureLog records capture events.
type captureLog struct {
	events []CaptureEvent
}

func (l *captureLog) PieceCaptured(ev CaptureEvent) {
	l.events = append(l.events, ev)
}

// scriptedPrompt answers retrieval prompts from a fixed list. NoArchetype
// declines; an exhausted script declines as well.
type scriptedPrompt struct {
	answers  []chess.Archetype
	offered  [][]chess.Archetype
	rejected []error
}

func (s *scriptedPrompt) ChooseRetrieval(team chess.Team, captured []*chess.Piece) (chess.Archetype, bool) {
	var offer []chess.Archetype
	for _, p := range captured {
		offer = append(offer, p.Archetype)
	}
	s.offered = append(s.offered, offer)

	if len(s.answers) == 0 {
		return chess.NoArchetype, false
	}
	a := s.answers[0]
	s.answers = s.answers[1:]
	return a, a != chess.NoArchetype
}

func (s *scriptedPrompt) RetrievalRejected(err error) {
	s.rejected = append(s.rejected, err)
}
