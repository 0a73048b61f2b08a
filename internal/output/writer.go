package output

import (
	"encoding/json"
	"fmt"
	"io"
)

// GameWriter is the interface for writing game records to output.
type GameWriter interface {
	// WriteGame writes a single game record to the output.
	WriteGame(rec *GameRecord) error

	// Flush flushes any buffered data to the underlying writer.
	Flush() error

	// Close closes the writer and releases any resources.
	// For batch writers (like JSON), this also writes any pending output.
	Close() error
}

// NewGameWriter returns a JSON writer when asJSON is set and a text move
// list writer otherwise.
func NewGameWriter(w io.Writer, asJSON bool, maxLineLength int) GameWriter {
	if asJSON {
		return NewJSONWriter(w)
	}
	return NewTextWriter(w, maxLineLength)
}

// TextWriter writes games as numbered move lists, one game per paragraph.
type TextWriter struct {
	w             io.Writer
	maxLineLength int
	written       int
}

// NewTextWriter creates a new text writer.
func NewTextWriter(w io.Writer, maxLineLength int) *TextWriter {
	return &TextWriter{
		w:             w,
		maxLineLength: maxLineLength,
	}
}

// WriteGame writes a game immediately.
func (tw *TextWriter) WriteGame(rec *GameRecord) error {
	if tw.written > 0 {
		if _, err := fmt.Fprintln(tw.w); err != nil {
			return err
		}
	}
	writeMoveList(rec, NewOutputWriter(tw.w, tw.maxLineLength))
	tw.written++
	return nil
}

// Flush flushes the text writer (no-op as it writes immediately).
func (tw *TextWriter) Flush() error {
	return nil
}

// Close closes the text writer.
func (tw *TextWriter) Close() error {
	return nil
}

// JSONOutput holds multiple games for array output.
type JSONOutput struct {
	Games []*GameRecord `json:"games"`
}

// JSONWriter buffers games and writes them as a JSON array on Close or Flush.
type JSONWriter struct {
	w     io.Writer
	games []*GameRecord
}

// NewJSONWriter creates a new JSON writer.
func NewJSONWriter(w io.Writer) *JSONWriter {
	return &JSONWriter{
		w:     w,
		games: make([]*GameRecord, 0),
	}
}

// WriteGame buffers a game for JSON output.
func (jw *JSONWriter) WriteGame(rec *GameRecord) error {
	jw.games = append(jw.games, rec)
	return nil
}

// Flush writes all buffered games as a JSON array.
func (jw *JSONWriter) Flush() error {
	if len(jw.games) == 0 {
		return nil
	}

	enc := json.NewEncoder(jw.w)
	enc.SetIndent("", "  ")
	err := enc.Encode(&JSONOutput{Games: jw.games})

	// Clear buffer after writing
	jw.games = jw.games[:0]

	return err
}

// Close flushes and closes the JSON writer.
func (jw *JSONWriter) Close() error {
	return jw.Flush()
}
