package main

import (
	"testing"

	"github.com/lgbarn/rst-chess-go/internal/config"
)

// saveRestoreBool sets a bool flag pointer and returns a restore func.
// Usage: defer saveRestoreBool(jsonOutput, true)()
func saveRestoreBool(ptr *bool, val bool) func() {
	old := *ptr
	*ptr = val
	return func() { *ptr = old }
}

func saveRestoreInt(ptr *int, val int) func() {
	old := *ptr
	*ptr = val
	return func() { *ptr = old }
}

func TestApplyOutputFlags(t *testing.T) {
	t.Run("defaults", func(t *testing.T) {
		cfg := config.NewConfig()
		applyOutputFlags(cfg)
		if cfg.Output.JSONFormat || cfg.Output.ClearLines != 0 || !cfg.Output.ShowCaptured {
			t.Errorf("Output = %+v; want defaults", cfg.Output)
		}
	})

	t.Run("all set", func(t *testing.T) {
		defer saveRestoreBool(jsonOutput, true)()
		defer saveRestoreInt(clearLines, 30)()
		defer saveRestoreBool(noCaptured, true)()

		cfg := config.NewConfig()
		applyOutputFlags(cfg)
		if !cfg.Output.JSONFormat {
			t.Error("JSONFormat should be true")
		}
		if cfg.Output.ClearLines != 30 {
			t.Errorf("ClearLines = %d; want 30", cfg.Output.ClearLines)
		}
		if cfg.Output.ShowCaptured {
			t.Error("ShowCaptured should be false")
		}
	})
}

func TestApplyGameFlags(t *testing.T) {
	defer saveRestoreBool(quietCaptures, true)()
	defer saveRestoreInt(retrievalAttempts, 3)()
	defer saveRestoreBool(stopOnError, true)()

	cfg := config.NewConfig()
	applyGameFlags(cfg)
	if !cfg.Game.SuppressCaptureMessages {
		t.Error("SuppressCaptureMessages should be true")
	}
	if cfg.Game.MaxRetrievalAttempts != 3 {
		t.Errorf("MaxRetrievalAttempts = %d; want 3", cfg.Game.MaxRetrievalAttempts)
	}
	if !cfg.Game.StopOnError {
		t.Error("StopOnError should be true")
	}
}

func TestApplyFlagsVerbosity(t *testing.T) {
	tests := []struct {
		name      string
		verbose   int
		quiet     bool
		workers   int
		wantLevel int
	}{
		{"default", 1, false, 0, 1},
		{"chatty", 2, false, 4, 2},
		{"quiet wins", 2, true, 0, 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			defer saveRestoreInt(verbosity, tt.verbose)()
			defer saveRestoreBool(quiet, tt.quiet)()
			defer saveRestoreInt(workers, tt.workers)()

			cfg := config.NewConfig()
			applyFlags(cfg)
			if cfg.Verbosity != tt.wantLevel {
				t.Errorf("Verbosity = %d; want %d", cfg.Verbosity, tt.wantLevel)
			}
			if cfg.Workers != tt.workers {
				t.Errorf("Workers = %d; want %d", cfg.Workers, tt.workers)
			}
		})
	}
}
