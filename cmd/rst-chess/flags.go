// flags.go - Command-line flag definitions and configuration
package main

import (
	"flag"

	"github.com/lgbarn/rst-chess-go/internal/config"
)

var (
	// Output options
	outputFile   = flag.String("o", "", "Output file for board renders (default: stdout)")
	appendOutput = flag.Bool("a", false, "Append to output file instead of overwrite")
	jsonOutput   = flag.Bool("J", false, "Render boards as JSON")
	clearLines   = flag.Int("clear", 0, "Blank lines printed before each board")
	noCaptured   = flag.Bool("nocaptured", false, "Don't show captured pieces under the board")

	// Game options
	quietCaptures     = flag.Bool("quietcaptures", false, "Don't announce captures")
	retrievalAttempts = flag.Int("attempts", 0, "Give up a retrieval after N invalid answers (0 = never)")

	// Replay options
	replayMode  = flag.Bool("replay", false, "Replay the command scripts named as arguments")
	stopOnError = flag.Bool("stoponerror", false, "Stop a replay at its first refused command")
	workers     = flag.Int("workers", 0, "Number of replay workers (0 = one per CPU core)")

	// Logging
	logFile   = flag.String("l", "", "Write game messages to log file")
	appendLog = flag.String("L", "", "Append game messages to log file")
	verbosity = flag.Int("verbose", 1, "Message level: 0 silent, 1 normal, 2 chatty")

	// Other options
	quiet   = flag.Bool("s", false, "Silent mode (same as -verbose 0)")
	help    = flag.Bool("h", false, "Show help")
	version = flag.Bool("version", false, "Show version")
)

// applyFlags applies command-line flags to the configuration.
func applyFlags(cfg *config.Config) {
	applyOutputFlags(cfg)
	applyGameFlags(cfg)

	cfg.Verbosity = *verbosity
	if *quiet {
		cfg.Verbosity = 0
	}
	cfg.Workers = *workers
}

// applyOutputFlags configures board rendering.
func applyOutputFlags(cfg *config.Config) {
	cfg.Output.JSONFormat = *jsonOutput
	cfg.Output.ClearLines = *clearLines
	cfg.Output.ShowCaptured = !*noCaptured
}

// applyGameFlags configures game and replay behaviour.
func applyGameFlags(cfg *config.Config) {
	cfg.Game.SuppressCaptureMessages = *quietCaptures
	cfg.Game.MaxRetrievalAttempts = *retrievalAttempts
	cfg.Game.StopOnError = *stopOnError
}
