package main

import (
	"bytes"
	"context"
	"encoding/json"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/lgbarn/rst-chess-go/internal/config"
	"github.com/lgbarn/rst-chess-go/internal/errors"
	"github.com/lgbarn/rst-chess-go/internal/output"
)

func writeScript(t *testing.T, dir, name, content string) string {
	t.Helper()
	path := filepath.Join(dir, name)
	if err := os.WriteFile(path, []byte(content), 0644); err != nil {
		t.Fatal(err)
	}
	return path
}

func TestRunReplay(t *testing.T) {
	dir := t.TempDir()
	mate := writeScript(t, dir, "mate.txt", "move 6 2 6 3\nmove 5 7 5 5\nmove 7 2 7 4\nmove 4 8 8 4\n")
	bad := writeScript(t, dir, "bad.txt", "move 1 1 1 5\nmove 1 2 1 4\n")

	t.Run("text", func(t *testing.T) {
		var out, log bytes.Buffer
		cfg := config.NewConfigBuilder().WithOutput(&out).WithLog(&log).WithWorkers(2).Build()

		failed, err := runReplay(context.Background(), cfg, []string{mate, bad})
		if err != nil {
			t.Fatalf("runReplay: %v", err)
		}
		if failed != 1 {
			t.Errorf("failed = %d; want 1", failed)
		}
		got := out.String()
		if !strings.Contains(got, mate+": Checkmate after 4 plies") {
			t.Errorf("missing mate summary:\n%s", got)
		}
		if !strings.Contains(got, bad+": Ongoing after 1 plies") {
			t.Errorf("missing bad summary:\n%s", got)
		}
		if strings.Index(got, mate) > strings.Index(got, bad) {
			t.Error("results should follow argument order")
		}
		if !strings.Contains(log.String(), "illegal move") {
			t.Errorf("log = %q", log.String())
		}
	})

	t.Run("duplicates", func(t *testing.T) {
		var out, log bytes.Buffer
		cfg := config.NewConfigBuilder().WithOutput(&out).WithLog(&log).Build()
		again := writeScript(t, dir, "again.txt", "move 7 2 7 4\nmove 5 7 5 5\nmove 6 2 6 3\nmove 4 8 8 4\n")

		if _, err := runReplay(context.Background(), cfg, []string{mate, again}); err != nil {
			t.Fatalf("runReplay: %v", err)
		}
		if !strings.Contains(log.String(), again+": same final position as "+mate) {
			t.Errorf("log = %q", log.String())
		}
	})

	t.Run("json", func(t *testing.T) {
		var out, log bytes.Buffer
		cfg := config.NewConfigBuilder().WithOutput(&out).WithLog(&log).WithJSONOutput(true).Build()

		if _, err := runReplay(context.Background(), cfg, []string{mate}); err != nil {
			t.Fatalf("runReplay: %v", err)
		}
		var jf output.JSONFrame
		if err := json.Unmarshal(out.Bytes(), &jf); err != nil {
			t.Fatalf("output is not one JSON frame: %v\n%s", err, out.String())
		}
		if jf.Status != "Checkmate" || jf.Winner != "Black" || jf.Ply != 4 {
			t.Errorf("frame = %+v", jf)
		}
	})
}

func TestRunReplayBadScript(t *testing.T) {
	dir := t.TempDir()
	broken := writeScript(t, dir, "broken.txt", "move 9 9 1 1\n")
	cfg := config.NewConfigBuilder().WithOutput(&bytes.Buffer{}).WithLog(&bytes.Buffer{}).Build()

	_, err := runReplay(context.Background(), cfg, []string{broken})
	if !errors.Is(err, errors.ErrParseFailure) {
		t.Errorf("runReplay = %v; want ErrParseFailure", err)
	}

	_, err = runReplay(context.Background(), cfg, []string{filepath.Join(dir, "missing.txt")})
	if !os.IsNotExist(err) {
		t.Errorf("runReplay = %v; want a not-exist error", err)
	}
}
