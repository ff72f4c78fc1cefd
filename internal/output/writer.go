// Package output renders board frames as text or JSON.
package output

import (
	"encoding/json"
	"io"

	"github.com/lgbarn/rst-chess-go/internal/chess"
	"github.com/lgbarn/rst-chess-go/internal/config"
)

// Frame is one renderable moment of a game.
type Frame struct {
	GameID string
	Ply    int
	Turn   chess.Team
	Status string
	Winner string // empty while the game is running
	Board  chess.BoardView
}

// Renderer is the interface for writing frames to output.
type Renderer interface {
	// Render writes a single frame.
	Render(f Frame) error

	// Flush flushes any buffered data to the underlying writer.
	Flush() error

	// Close closes the renderer. Batch renderers write pending output here.
	Close() error
}

// NewRenderer picks the renderer selected by cfg.
func NewRenderer(w io.Writer, cfg *config.Config) Renderer {
	if cfg.Output.JSONFormat {
		return NewJSONRendererSingle(w)
	}
	return NewTextRenderer(w, cfg)
}

// JSONRenderer writes frames in JSON format.
// It buffers frames and writes them as a JSON array on Close or Flush.
type JSONRenderer struct {
	w      io.Writer
	frames []Frame
	single bool // If true, write each frame immediately instead of batching
}

// NewJSONRenderer creates a JSON renderer that batches frames into an array.
func NewJSONRenderer(w io.Writer) *JSONRenderer {
	return &JSONRenderer{w: w}
}

// NewJSONRendererSingle creates a JSON renderer that writes each frame immediately.
func NewJSONRendererSingle(w io.Writer) *JSONRenderer {
	return &JSONRenderer{w: w, single: true}
}

// Render buffers a frame (or writes it immediately in single mode).
func (jr *JSONRenderer) Render(f Frame) error {
	if jr.single {
		return encode(jr.w, FrameToJSON(f))
	}
	jr.frames = append(jr.frames, f)
	return nil
}

// Flush writes all buffered frames as a JSON array.
func (jr *JSONRenderer) Flush() error {
	if jr.single || len(jr.frames) == 0 {
		return nil
	}

	out := &JSONOutput{Frames: make([]*JSONFrame, 0, len(jr.frames))}
	for _, f := range jr.frames {
		out.Frames = append(out.Frames, FrameToJSON(f))
	}
	err := encode(jr.w, out)

	jr.frames = jr.frames[:0]
	return err
}

// Close flushes the JSON renderer.
func (jr *JSONRenderer) Close() error {
	return jr.Flush()
}

func encode(w io.Writer, v interface{}) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	return enc.Encode(v)
}
