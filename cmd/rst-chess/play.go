package main

import (
	"fmt"
	"io"

	"github.com/lgbarn/rst-chess-go/internal/chess"
	"github.com/lgbarn/rst-chess-go/internal/config"
	"github.com/lgbarn/rst-chess-go/internal/errors"
	"github.com/lgbarn/rst-chess-go/internal/game"
	"github.com/lgbarn/rst-chess-go/internal/output"
	"github.com/lgbarn/rst-chess-go/internal/parser"
)

const helpText = `Commands:
  move X Y X Y   move the piece on (X Y) to (X Y); "move" alone asks for both squares
  castle L|R     castle towards file 1 (L) or file 8 (R)
  surrender      give up the game
  help           show this list
Coordinates are file then rank, each from 1 to 8. White starts on rank 1.`

// session is one interactive game at the console.
type session struct {
	in       *parser.Reader
	out      io.Writer
	renderer output.Renderer
	prompt   *consolePrompt
	game     *game.Game
}

func newSession(cfg *config.Config, in io.Reader, opts ...game.Option) *session {
	r := parser.NewReader(in, "")
	s := &session{
		in:       r,
		out:      cfg.OutputFile,
		renderer: output.NewRenderer(cfg.OutputFile, cfg),
		prompt:   newConsolePrompt(r, cfg.OutputFile, cfg.Game.MaxRetrievalAttempts),
	}
	opts = append([]game.Option{game.WithConfig(cfg), game.WithPrompt(s.prompt)}, opts...)
	s.game = game.New(opts...)
	return s
}

// run plays until the game ends or the input is exhausted.
func (s *session) run() error {
	if err := s.render(); err != nil {
		return err
	}
	for !s.game.Status().Over() {
		fmt.Fprintf(s.out, "%s's turn. Enter a command (help for a list):\n", s.game.Turn())
		cmd, err := s.in.Next()
		if err == io.EOF {
			break
		}
		if err != nil {
			fmt.Fprintln(s.out, err)
			continue
		}

		done, err := s.execute(cmd)
		if err == io.EOF {
			break
		}
		if err != nil {
			fmt.Fprintln(s.out, describe(err))
			continue
		}
		if done {
			if err := s.render(); err != nil {
				return err
			}
		}
	}
	return s.renderer.Close()
}

// execute applies one command. done reports whether the board changed.
func (s *session) execute(cmd parser.Command) (done bool, err error) {
	switch cmd.Kind {
	case parser.Help:
		fmt.Fprintln(s.out, helpText)
		return false, nil

	case parser.Surrender:
		return true, s.game.Resign()

	case parser.Move:
		from, to := cmd.From, cmd.To
		if !cmd.Complete {
			if from, err = s.askSquare("Enter the coordinates of the piece to move (X Y):"); err != nil {
				return false, err
			}
			if to, err = s.askSquare("Enter the coordinates of the destination (X Y):"); err != nil {
				return false, err
			}
		}
		s.prompt.reset()
		_, err = s.game.Move(from, to)
		return err == nil, err

	case parser.Castle:
		err = s.game.Castle(cmd.Direction)
		return err == nil, err
	}
	return false, errors.Wrapf(errors.ErrParseFailure, "%q is not a command here", cmd.String())
}

// askSquare reads coordinates, asking again after a bad line.
func (s *session) askSquare(question string) (chess.Square, error) {
	for {
		fmt.Fprintln(s.out, question)
		cmd, err := s.in.Next()
		if err == io.EOF {
			return chess.Square{}, err
		}
		if err != nil {
			fmt.Fprintln(s.out, err)
			continue
		}
		if cmd.Kind == parser.Coordinates {
			return cmd.Square, nil
		}
		fmt.Fprintln(s.out, "Expected two numbers from 1 to 8.")
	}
}

func (s *session) render() error {
	f := output.Frame{
		GameID: s.game.ID(),
		Ply:    s.game.Ply(),
		Turn:   s.game.Turn(),
		Status: s.game.Status().String(),
		Board:  s.game.View(),
	}
	if w, over := s.game.Winner(); over {
		f.Winner = w.String()
	}
	return s.renderer.Render(f)
}

// describe drops the game id and ply from errors shown to the player.
func describe(err error) string {
	var pe *errors.PlyError
	if errors.As(err, &pe) {
		return pe.Err.Error()
	}
	return err.Error()
}
