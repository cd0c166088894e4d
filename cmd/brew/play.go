package main

import (
	"bufio"
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"time"

	"github.com/fatih/color"
	"github.com/spf13/cobra"

	"github.com/napolitain/solver-brew/internal/converter"
	"github.com/napolitain/solver-brew/internal/loader"
	"github.com/napolitain/solver-brew/internal/models"
	"github.com/napolitain/solver-brew/internal/replay"
	"github.com/napolitain/solver-brew/internal/solver/brew"
)

func runPlay(cmd *cobra.Command, args []string) {
	config, err := loadConfig()
	if err != nil {
		fail(err)
	}

	var diag io.Writer = os.Stderr
	if quiet {
		diag = io.Discard
	}

	if err := play(os.Stdin, os.Stdout, diag, config, recordFile); err != nil {
		fail(err)
	}
}

// play runs the game loop: one turn in, one move line out
func play(in io.Reader, out io.Writer, diag io.Writer, config models.PlannerConfig, recordPath string) (err error) {
	infoColor := color.New(color.FgYellow)
	dimColor := color.New(color.FgHiBlack)
	warnColor := color.New(color.FgRed)

	var rec *replay.Recorder
	if recordPath != "" {
		rec, err = replay.NewRecorder(recordPath)
		if err != nil {
			return err
		}
		defer func() {
			if cerr := rec.Close(); cerr != nil && err == nil {
				err = fmt.Errorf("failed to close replay: %w", cerr)
			}
		}()
	}

	planner := brew.NewPlannerWithConfig(config)
	turns := loader.NewTurnReader(in)
	w := bufio.NewWriter(out)

	for {
		state, err := turns.ReadTurn()
		if errors.Is(err, io.EOF) {
			return nil
		}
		if err != nil {
			return err
		}

		start := time.Now()
		d := planner.Plan(context.Background(), state)
		elapsed := time.Since(start)

		if _, err := fmt.Fprintln(w, converter.MoveLine(d.Move, moveMessage(d))); err != nil {
			return err
		}
		if err := w.Flush(); err != nil {
			return err
		}

		infoColor.Fprintf(diag, "turn %d: %s\n", state.Turn, d)
		dimColor.Fprintf(diag, "   planned in %s, inventory %s, %d rupees\n",
			elapsed.Round(time.Microsecond), state.Me().Inventory, state.Me().Rupees)
		if d.Truncated {
			warnColor.Fprintf(diag, "   deadline of %s cut the search short\n", config.Deadline)
		}

		if rec != nil {
			err := rec.Write(replay.Record{
				Turn:          state.Turn,
				Snapshot:      converter.SnapshotFromState(state),
				Move:          converter.MoveLine(d.Move, ""),
				TurnsToPayoff: d.TurnsToPayoff,
				Reward:        d.Reward,
				ElapsedMicros: elapsed.Microseconds(),
				Truncated:     d.Truncated,
			})
			if err != nil {
				return err
			}
		}
	}
}

// moveMessage is the short note shown next to the move in the game viewer
func moveMessage(d brew.Decision) string {
	if _, ok := d.Move.(models.Brew); ok || !d.Reached() {
		return ""
	}
	return fmt.Sprintf("#%d in %d", d.OrderID, d.TurnsToPayoff)
}
