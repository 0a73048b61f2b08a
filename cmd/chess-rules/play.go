package main

import (
	"bufio"
	"context"
	"errors"
	"fmt"
	"io"
	"strings"

	"github.com/lgbarn/chessrules-go/internal/chess"
	"github.com/lgbarn/chessrules-go/internal/config"
	"github.com/lgbarn/chessrules-go/internal/engine"
	chesserrors "github.com/lgbarn/chessrules-go/internal/errors"
	"github.com/lgbarn/chessrules-go/internal/game"
	"github.com/lgbarn/chessrules-go/internal/output"
	"github.com/lgbarn/chessrules-go/internal/trace"
)

const moveFormatHelp = "Move entry should be of the form a2-a4 where a2 is the start square and a4 is the end square"

// play runs the move prompt until the input ends, the user quits or the game
// is decided. Every game with at least one move is written to the record
// file, if one is configured.
func play(ctx context.Context, cfg *config.Config) (err error) {
	session := game.NewSession(game.WithLogger(trace.FromContext(ctx)))
	out := cfg.OutputFile

	rec := newRecorder(cfg)
	defer func() {
		if cerr := rec.finish(session); err == nil {
			err = cerr
		}
	}()
	scanner := bufio.NewScanner(cfg.Input)

	showBoard := cfg.ShowBoard
	for {
		if showBoard {
			fmt.Fprintln(out, session.Snapshot())
		}
		showBoard = cfg.ShowBoard

		fmt.Fprintf(out, "Enter move for %s: ", session.ToMove())
		if !scanner.Scan() {
			fmt.Fprintln(out)
			return scanner.Err()
		}
		line := strings.TrimSpace(scanner.Text())

		switch strings.ToLower(line) {
		case "":
			showBoard = false
			continue
		case "quit", "exit":
			return nil
		case "board":
			showBoard = true
			continue
		case "moves":
			printLegalMoves(out, session.LegalMoves())
			showBoard = false
			continue
		case "new":
			if err := rec.record(session); err != nil {
				return err
			}
			session.Reset()
			fmt.Fprintln(out, "New game")
			continue
		}

		if _, err := session.MoveText(ctx, line); err != nil {
			reportRejection(out, err)
			showBoard = false
			continue
		}

		if status := session.Status(); status.IsOver() {
			fmt.Fprintln(out, session.Snapshot())
			fmt.Fprintln(out, resultLine(status, session.ToMove()))
			return nil
		}
		if session.InCheck() {
			fmt.Fprintln(out, "Check!")
		}
	}
}

// reportRejection explains why a line was not played.
func reportRejection(out io.Writer, err error) {
	switch {
	case errors.Is(err, chesserrors.ErrParseFailure):
		fmt.Fprintln(out, moveFormatHelp)
	case errors.Is(err, chesserrors.ErrInvalidSquare), errors.Is(err, chesserrors.ErrMoveRejected):
		fmt.Fprintf(out, "Illegal move: %v\n", err)
	default:
		fmt.Fprintf(out, "Error: %v\n", err)
	}
}

// resultLine describes how the game ended. toMove is the side that could
// not continue.
func resultLine(status engine.GameStatus, toMove chess.Colour) string {
	if status == engine.Checkmate {
		return fmt.Sprintf("Checkmate: %s wins", toMove.Opposite())
	}
	return fmt.Sprintf("%s: draw", status)
}

func printLegalMoves(out io.Writer, moves []chess.Move) {
	names := make([]string, len(moves))
	for i, m := range moves {
		names[i] = m.String()
	}
	fmt.Fprintf(out, "%d legal moves: %s\n", len(moves), strings.Join(names, " "))
}

// recorder writes finished and abandoned games to the record file.
type recorder struct {
	w output.GameWriter
}

func newRecorder(cfg *config.Config) *recorder {
	if cfg.RecordFile == nil {
		return &recorder{}
	}
	return &recorder{w: output.NewGameWriter(cfg.RecordFile, cfg.RecordJSON, cfg.MaxLineLength)}
}

// record writes the session's game unless recording is off or no move has
// been played.
func (r *recorder) record(session *game.Session) error {
	if r.w == nil {
		return nil
	}
	history := session.History()
	if len(history) == 0 {
		return nil
	}
	return r.w.WriteGame(output.NewGameRecord(history, session.Status(), session.ToMove()))
}

// finish records the last game and closes the writer.
func (r *recorder) finish(session *game.Session) error {
	if r.w == nil {
		return nil
	}
	if err := r.record(session); err != nil {
		return err
	}
	return r.w.Close()
}
