// Package parser reads the text command language used by the interactive
// player and by replay scripts.
package parser

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/lgbarn/rst-chess-go/internal/chess"
	"github.com/lgbarn/rst-chess-go/internal/engine"
	"github.com/lgbarn/rst-chess-go/internal/errors"
)

// Kind identifies a command.
type Kind int

const (
	Unknown Kind = iota
	Help
	Surrender
	Move
	Castle
	Retrieve
	Decline
	Coordinates
)

var kindNames = [...]string{
	Unknown:     "UNKNOWN",
	Help:        "HELP",
	Surrender:   "SURRENDER",
	Move:        "MOVE",
	Castle:      "CASTLE",
	Retrieve:    "RETRIEVE",
	Decline:     "DECLINE",
	Coordinates: "COORDINATES",
}

// String returns the string representation of a command kind.
func (k Kind) String() string {
	if int(k) < len(kindNames) {
		return kindNames[k]
	}
	return "UNKNOWN"
}

// Command is one parsed line.
type Command struct {
	Kind Kind

	// From and To are set for a Move with inline coordinates.
	From, To chess.Square
	// Complete is false for a bare "move"; the coordinates follow as
	// Coordinates commands.
	Complete bool

	// Square is set for Coordinates.
	Square chess.Square

	Direction engine.Direction // Castle
	Archetype chess.Archetype  // Retrieve

	Raw  string
	Line int
}

// String renders the command back in canonical form.
func (c Command) String() string {
	switch c.Kind {
	case Help:
		return "help"
	case Surrender:
		return "surrender"
	case Move:
		if !c.Complete {
			return "move"
		}
		return fmt.Sprintf("move %s %s", c.From, c.To)
	case Castle:
		if c.Direction == engine.Right {
			return "castle R"
		}
		return "castle L"
	case Retrieve:
		return "retrieve " + strings.ToLower(c.Archetype.String())
	case Decline:
		return "decline"
	case Coordinates:
		return c.Square.String()
	}
	return c.Raw
}

// ParseCommand parses a single command line. Keywords are case-insensitive.
// Coordinates must lie in 1..8.
func ParseCommand(line string) (Command, error) {
	cmd := Command{Raw: line}
	fields := strings.Fields(line)
	if len(fields) == 0 {
		return cmd, syntaxError(line, "a command", "")
	}

	head := strings.ToLower(fields[0])
	args := fields[1:]
	switch head {
	case "help", "?":
		cmd.Kind = Help
		return cmd, noArgs(line, args)

	case "surrender", "resign":
		cmd.Kind = Surrender
		return cmd, noArgs(line, args)

	case "decline", "none":
		cmd.Kind = Decline
		return cmd, noArgs(line, args)

	case "move":
		cmd.Kind = Move
		switch len(args) {
		case 0:
			return cmd, nil
		case 4:
			sq, err := parseSquares(args, 2)
			if err != nil {
				return cmd, err
			}
			cmd.From, cmd.To, cmd.Complete = sq[0], sq[1], true
			return cmd, nil
		}
		return cmd, syntaxError(line, "four coordinates", strings.Join(args, " "))

	case "castle":
		cmd.Kind = Castle
		if len(args) != 1 {
			return cmd, syntaxError(line, "L or R", strings.Join(args, " "))
		}
		switch strings.ToUpper(args[0]) {
		case "L", "LEFT":
			cmd.Direction = engine.Left
		case "R", "RIGHT":
			cmd.Direction = engine.Right
		default:
			return cmd, syntaxError(line, "L or R", args[0])
		}
		return cmd, nil

	case "retrieve":
		cmd.Kind = Retrieve
		if len(args) != 1 {
			return cmd, syntaxError(line, "a piece name", strings.Join(args, " "))
		}
		a, ok := chess.ParseArchetype(args[0])
		if !ok {
			return cmd, syntaxError(line, "a piece name", args[0])
		}
		cmd.Archetype = a
		return cmd, nil
	}

	if len(fields) == 2 {
		sq, err := parseSquares(fields, 1)
		if err != nil {
			return cmd, err
		}
		cmd.Kind = Coordinates
		cmd.Square = sq[0]
		return cmd, nil
	}
	return cmd, syntaxError(line, "a command", fields[0])
}

// parseSquares reads n coordinate pairs from fields.
func parseSquares(fields []string, n int) ([]chess.Square, error) {
	out := make([]chess.Square, 0, n)
	for i := 0; i < n; i++ {
		x, err := parseCoordinate(fields[2*i])
		if err != nil {
			return nil, err
		}
		y, err := parseCoordinate(fields[2*i+1])
		if err != nil {
			return nil, err
		}
		out = append(out, chess.Sq(x, y))
	}
	return out, nil
}

func parseCoordinate(s string) (int, error) {
	v, err := strconv.Atoi(s)
	if err != nil || v < chess.FirstFile || v > chess.LastFile {
		return 0, &errors.ParseError{
			Err:      errors.ErrParseFailure,
			Expected: fmt.Sprintf("a coordinate from %d to %d", chess.FirstFile, chess.LastFile),
			Got:      s,
		}
	}
	return v, nil
}

func noArgs(line string, args []string) error {
	if len(args) == 0 {
		return nil
	}
	return syntaxError(line, "end of line", args[0])
}

// syntaxError reports got at its column in line, or at the end of line when
// got is empty.
func syntaxError(line, expected, got string) error {
	col := len(line) + 1
	if got != "" {
		col = strings.LastIndex(line, got) + 1
	} else {
		got = "end of line"
	}
	return &errors.ParseError{
		Err:      errors.ErrParseFailure,
		Column:   col,
		Expected: expected,
		Got:      got,
	}
}
