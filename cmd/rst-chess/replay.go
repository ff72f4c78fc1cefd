package main

import (
	"context"
	"fmt"
	"log"
	"os"
	"runtime"

	"golang.org/x/sync/errgroup"

	"github.com/lgbarn/rst-chess-go/internal/config"
	"github.com/lgbarn/rst-chess-go/internal/game"
	"github.com/lgbarn/rst-chess-go/internal/hashing"
	"github.com/lgbarn/rst-chess-go/internal/output"
	"github.com/lgbarn/rst-chess-go/internal/parser"
	"github.com/lgbarn/rst-chess-go/internal/worker"
)

// loadScripts parses the script files concurrently into work items, in
// argument order.
func loadScripts(ctx context.Context, files []string) ([]worker.WorkItem, error) {
	items := make([]worker.WorkItem, len(files))
	g, ctx := errgroup.WithContext(ctx)
	g.SetLimit(runtime.NumCPU())
	for i, name := range files {
		i, name := i, name
		g.Go(func() error {
			if err := ctx.Err(); err != nil {
				return err
			}
			f, err := os.Open(name) //nolint:gosec // G304: script paths come from the command line
			if err != nil {
				return err
			}
			defer f.Close()
			cmds, err := parser.ReadAll(f, name)
			if err != nil {
				return err
			}
			items[i] = worker.WorkItem{Name: name, Commands: cmds, Index: i}
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}
	return items, nil
}

// runReplay replays the scripts in parallel and renders each final position.
// It returns the number of scripts that had refused commands.
func runReplay(ctx context.Context, cfg *config.Config, files []string) (int, error) {
	items, err := loadScripts(ctx, files)
	if err != nil {
		return 0, err
	}

	numWorkers := cfg.Workers
	if numWorkers == 0 {
		numWorkers = runtime.NumCPU()
	}

	// One logger for all games so concurrent lines don't interleave.
	logger := log.New(cfg.LogFile, "", 0)
	m := game.NewManager(game.WithConfig(cfg), game.WithLogger(logger))
	results, err := worker.Run(ctx, items, worker.ReplayFunc(m, cfg),
		worker.WithWorkers(numWorkers), worker.WithBufferSize(len(items)+1))
	if err != nil {
		return 0, err
	}

	renderer := output.NewRenderer(cfg.OutputFile, cfg)
	detector := hashing.NewDuplicateDetector(false)
	failed := 0
	for _, r := range results {
		sig := hashing.Signature{
			Hash:     hashing.PositionHash(r.View, r.Turn),
			WeakHash: hashing.WeakHash(r.View),
			Plies:    r.Plies,
			Name:     r.Name,
		}
		if first, dup := detector.CheckAndAdd(sig); dup && cfg.Verbosity > 0 {
			fmt.Fprintf(cfg.LogFile, "%s: same final position as %s\n", r.Name, first.Name)
		}

		if cfg.Verbosity > 0 && !cfg.Output.JSONFormat {
			fmt.Fprintf(cfg.OutputFile, "%s: %s after %d plies\n", r.Name, r.Status, r.Plies)
		}
		f := output.Frame{GameID: r.GameID, Ply: r.Plies, Turn: r.Turn, Status: r.Status.String(), Board: r.View}
		if r.HasWinner {
			f.Winner = r.Winner.String()
		}
		if err := renderer.Render(f); err != nil {
			return failed, err
		}
		if r.Error != nil {
			failed++
			fmt.Fprintf(cfg.LogFile, "%v\n", r.Error)
		}
	}
	return failed, renderer.Close()
}
