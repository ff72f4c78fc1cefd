package parser

import (
	"bufio"
	"io"
	"strings"

	"github.com/lgbarn/rst-chess-go/internal/errors"
)

// Reader reads commands line by line. Blank lines and lines starting with '#'
// are skipped.
type Reader struct {
	scanner *bufio.Scanner
	file    string
	lineNum int

	// JoinMoves folds a bare "move" and the two coordinate lines after it
	// into one complete Move command.
	JoinMoves bool
}

// NewReader creates a reader. file is used in error locations and may be empty.
func NewReader(r io.Reader, file string) *Reader {
	return &Reader{scanner: bufio.NewScanner(r), file: file}
}

// LineNumber returns the number of the last line read.
func (r *Reader) LineNumber() int {
	return r.lineNum
}

// Next returns the next command, or io.EOF when the input is exhausted.
// Parse errors are *errors.ParseError with file and line filled in.
func (r *Reader) Next() (Command, error) {
	cmd, err := r.next()
	if err != nil || !r.JoinMoves || cmd.Kind != Move || cmd.Complete {
		return cmd, err
	}

	from, err := r.expectCoordinates()
	if err != nil {
		return cmd, err
	}
	to, err := r.expectCoordinates()
	if err != nil {
		return cmd, err
	}
	cmd.From, cmd.To, cmd.Complete = from.Square, to.Square, true
	return cmd, nil
}

func (r *Reader) expectCoordinates() (Command, error) {
	c, err := r.next()
	if err == io.EOF {
		return c, r.locate(&errors.ParseError{
			Err:      errors.ErrParseFailure,
			Expected: "coordinates",
			Got:      "end of input",
		})
	}
	if err != nil {
		return c, err
	}
	if c.Kind != Coordinates {
		return c, r.locate(&errors.ParseError{
			Err:      errors.ErrParseFailure,
			Column:   1,
			Expected: "coordinates",
			Got:      strings.TrimSpace(c.Raw),
		})
	}
	return c, nil
}

func (r *Reader) next() (Command, error) {
	for r.scanner.Scan() {
		r.lineNum++
		line := r.scanner.Text()
		trimmed := strings.TrimSpace(line)
		if trimmed == "" || strings.HasPrefix(trimmed, "#") {
			continue
		}
		cmd, err := ParseCommand(line)
		cmd.Line = r.lineNum
		if err != nil {
			return cmd, r.locate(err)
		}
		return cmd, nil
	}
	if err := r.scanner.Err(); err != nil {
		return Command{}, errors.Wrapf(err, "reading %s", r.describe())
	}
	return Command{}, io.EOF
}

func (r *Reader) locate(err error) error {
	var pe *errors.ParseError
	if errors.As(err, &pe) {
		pe.File = r.describe()
		pe.Line = r.lineNum
	}
	return err
}

func (r *Reader) describe() string {
	if r.file == "" {
		return "input"
	}
	return r.file
}

// ReadAll parses every command in r.
func ReadAll(r io.Reader, file string) ([]Command, error) {
	rd := NewReader(r, file)
	rd.JoinMoves = true
	var cmds []Command
	for {
		cmd, err := rd.Next()
		if err == io.EOF {
			return cmds, nil
		}
		if err != nil {
			return cmds, err
		}
		cmds = append(cmds, cmd)
	}
}
