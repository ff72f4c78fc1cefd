package config

import (
	"fmt"

	"github.com/lgbarn/rst-chess-go/internal/errors"
)

// GameConfig holds settings that shape how a game session behaves.
type GameConfig struct {
	// SuppressCaptureMessages silences the "has captured" log lines
	SuppressCaptureMessages bool

	// MaxRetrievalAttempts bounds how often a player is asked again after an
	// invalid retrieval choice. Zero means no bound.
	MaxRetrievalAttempts int

	// StopOnError ends a replayed script at its first refused command
	StopOnError bool
}

// NewGameConfig creates a GameConfig with default values.
func NewGameConfig() *GameConfig {
	return &GameConfig{}
}

// Validate checks that the game configuration is valid.
func (g *GameConfig) Validate() error {
	if g.MaxRetrievalAttempts < 0 {
		return fmt.Errorf("max retrieval attempts %d is negative: %w",
			g.MaxRetrievalAttempts, errors.ErrInvalidConfig)
	}
	return nil
}
