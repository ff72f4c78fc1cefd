package worker

import (
	"github.com/hashicorp/go-multierror"

	"github.com/lgbarn/rst-chess-go/internal/chess"
	"github.com/lgbarn/rst-chess-go/internal/config"
	"github.com/lgbarn/rst-chess-go/internal/errors"
	"github.com/lgbarn/rst-chess-go/internal/game"
	"github.com/lgbarn/rst-chess-go/internal/parser"
)

// ReplayFunc returns a ProcessFunc that plays each script in a new game
// registered with m. With cfg.Game.StopOnError the first refused command ends
// the script; otherwise refused commands are collected and skipped.
func ReplayFunc(m *game.Manager, cfg *config.Config) ProcessFunc {
	return func(item WorkItem) ProcessResult {
		return replay(m, cfg, item)
	}
}

func replay(m *game.Manager, cfg *config.Config, item WorkItem) ProcessResult {
	script := &scriptPrompt{cmds: item.Commands}
	g := m.NewGame(game.WithPrompt(script))
	res := ProcessResult{Name: item.Name, Index: item.Index, GameID: g.ID()}

	var errs *multierror.Error
	for script.pos < len(script.cmds) {
		cmd := script.cmds[script.pos]
		script.pos++

		if err := apply(g, cmd); err != nil {
			errs = multierror.Append(errs, locate(err, item.Name, cmd.Line))
			if cfg.Game.StopOnError {
				res.Stopped = script.pos < len(script.cmds)
				break
			}
			continue
		}
		res.Applied++
		for _, rejected := range script.rejected {
			errs = multierror.Append(errs, locate(rejected, item.Name, cmd.Line))
		}
		script.rejected = script.rejected[:0]
	}

	res.Status = g.Status()
	res.Turn = g.Turn()
	res.Winner, res.HasWinner = g.Winner()
	res.Plies = g.Ply()
	res.View = g.View()
	res.Error = errs.ErrorOrNil()
	return res
}

func apply(g *game.Game, cmd parser.Command) error {
	switch cmd.Kind {
	case parser.Help:
		return nil
	case parser.Surrender:
		return g.Resign()
	case parser.Move:
		if !cmd.Complete {
			return errors.Wrap(errors.ErrParseFailure, "move without coordinates")
		}
		_, err := g.Move(cmd.From, cmd.To)
		return err
	case parser.Castle:
		return g.Castle(cmd.Direction)
	}
	return errors.Wrapf(errors.ErrParseFailure, "unexpected %q outside a retrieval", cmd.String())
}

// locate attaches the script position to err.
func locate(err error, file string, line int) error {
	var pe *errors.PlyError
	if errors.As(err, &pe) {
		pe.File, pe.Line = file, line
		return pe
	}
	return &errors.PlyError{Err: err, File: file, Line: line}
}

// scriptPrompt answers retrieval prompts from the retrieve and decline
// commands that follow the move in the script. Anything else declines without
// consuming a command.
type scriptPrompt struct {
	cmds     []parser.Command
	pos      int
	rejected []error
}

func (s *scriptPrompt) ChooseRetrieval(chess.Team, []*chess.Piece) (chess.Archetype, bool) {
	if s.pos >= len(s.cmds) {
		return chess.NoArchetype, false
	}
	switch cmd := s.cmds[s.pos]; cmd.Kind {
	case parser.Retrieve:
		s.pos++
		return cmd.Archetype, true
	case parser.Decline:
		s.pos++
	}
	return chess.NoArchetype, false
}

func (s *scriptPrompt) RetrievalRejected(err error) {
	s.rejected = append(s.rejected, err)
}
