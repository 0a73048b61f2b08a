// Package output writes records of played games as text move lists or JSON.
package output

import (
	"fmt"
	"io"
	"strconv"
)

// OutputWriter handles formatted output with line length control.
type OutputWriter struct {
	w             io.Writer
	lineLength    int
	maxLineLength int
	needsSpace    bool
}

// NewOutputWriter creates a new output writer.
func NewOutputWriter(w io.Writer, maxLineLength int) *OutputWriter {
	if maxLineLength <= 0 {
		maxLineLength = 80
	}
	return &OutputWriter{
		w:             w,
		maxLineLength: maxLineLength,
	}
}

// Write writes a string, adding a space separator if needed.
func (o *OutputWriter) Write(s string) {
	if o.needsSpace && len(s) > 0 {
		// Check if we need a new line
		if o.lineLength+1+len(s) > o.maxLineLength {
			fmt.Fprintln(o.w)
			o.lineLength = 0
			o.needsSpace = false
		} else {
			fmt.Fprint(o.w, " ")
			o.lineLength++
		}
	}

	fmt.Fprint(o.w, s)
	o.lineLength += len(s)
	o.needsSpace = true
}

// NewLine starts a new line.
func (o *OutputWriter) NewLine() {
	fmt.Fprintln(o.w)
	o.lineLength = 0
	o.needsSpace = false
}

// writeMoveList writes the record as numbered coordinate moves followed by
// the result, e.g. "1. f2-f3 e7-e5 2. g2-g4 d8-h4 0-1".
func writeMoveList(rec *GameRecord, ow *OutputWriter) {
	for i, m := range rec.Moves {
		if i%2 == 0 {
			ow.Write(strconv.FormatUint(uint64(m.MoveNumber), 10) + ".")
		}
		ow.Write(m.Move)
	}
	ow.Write(rec.Result)
	ow.NewLine()
}
