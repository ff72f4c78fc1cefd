package config

import (
	"fmt"

	"github.com/lgbarn/rst-chess-go/internal/errors"
)

// OutputConfig holds settings related to board rendering.
type OutputConfig struct {
	// JSONFormat renders boards as JSON instead of the text grid
	JSONFormat bool

	// ClearLines is the number of blank lines printed before each board,
	// pushing the previous one off a console
	ClearLines int

	// ShowCaptured lists each team's captured pieces under the board
	ShowCaptured bool
}

// NewOutputConfig creates an OutputConfig with default values.
func NewOutputConfig() *OutputConfig {
	return &OutputConfig{
		ShowCaptured: true,
	}
}

// Validate checks that the output configuration is valid.
func (o *OutputConfig) Validate() error {
	if o.ClearLines < 0 {
		return fmt.Errorf("clear lines %d is negative: %w", o.ClearLines, errors.ErrInvalidConfig)
	}
	return nil
}
