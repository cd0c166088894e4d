package main

import (
	"context"
	"fmt"
	"os"
	"strconv"
	"time"

	"github.com/fatih/color"
	"github.com/olekukonko/tablewriter"
	"github.com/spf13/cobra"

	"github.com/napolitain/solver-brew/internal/converter"
	"github.com/napolitain/solver-brew/internal/models"
	"github.com/napolitain/solver-brew/internal/replay"
	"github.com/napolitain/solver-brew/internal/solver/brew"
)

// replayedTurn compares a recorded move with a fresh plan of the same snapshot
type replayedTurn struct {
	Turn      int
	Recorded  string
	Replanned string
	Decision  brew.Decision
	Elapsed   time.Duration
	Truncated bool // the recorded search was cut by its deadline
}

func (r replayedTurn) Match() bool {
	return r.Recorded == r.Replanned
}

func runReplay(cmd *cobra.Command, args []string) {
	successColor := color.New(color.FgGreen, color.Bold)
	warnColor := color.New(color.FgRed, color.Bold)

	config, err := loadConfig()
	if err != nil {
		fail(err)
	}

	turns, err := replayGame(args[0], config)
	if err != nil {
		fail(err)
	}

	if showTable {
		printReplay(turns)
	}

	matches, truncated := 0, 0
	var recorded time.Duration
	for _, t := range turns {
		if t.Match() {
			matches++
		}
		if t.Truncated {
			truncated++
		}
		recorded += t.Elapsed
	}

	if len(turns) == 0 {
		fmt.Println("Replay is empty")
		return
	}

	summary := fmt.Sprintf("%d/%d turns replanned identically, %s average recorded planning time",
		matches, len(turns), (recorded / time.Duration(len(turns))).Round(time.Microsecond))
	if truncated > 0 {
		summary += fmt.Sprintf(", %d recorded turns cut by the deadline", truncated)
	}
	if matches == len(turns) {
		successColor.Printf("✓ %s\n", summary)
	} else {
		warnColor.Printf("✗ %s\n", summary)
	}
}

// replayConfig disables the deadline so re-planning does not depend on
// machine load
func replayConfig(config models.PlannerConfig) models.PlannerConfig {
	config.Deadline = 0
	return config
}

// replayGame re-plans every recorded snapshot without a deadline
func replayGame(path string, config models.PlannerConfig) ([]replayedTurn, error) {
	planner := brew.NewPlannerWithConfig(replayConfig(config))

	var turns []replayedTurn
	err := replay.Read(path, func(rec replay.Record) error {
		d := planner.Plan(context.Background(), rec.Snapshot.ToGameState())
		turns = append(turns, replayedTurn{
			Turn:      rec.Turn,
			Recorded:  rec.Move,
			Replanned: converter.MoveLine(d.Move, ""),
			Decision:  d,
			Elapsed:   time.Duration(rec.ElapsedMicros) * time.Microsecond,
			Truncated: rec.Truncated,
		})
		return nil
	})
	return turns, err
}

func printReplay(turns []replayedTurn) {
	table := tablewriter.NewTable(os.Stdout,
		tablewriter.WithHeader([]string{"Turn", "Recorded", "Replanned", "Match", "Turns", "Reward", "Recorded Time"}),
	)

	for _, t := range turns {
		match := "✓"
		if !t.Match() {
			match = "✗"
		}
		if t.Truncated {
			match += " (cut)"
		}
		turnsToPayoff := "-"
		if t.Decision.Reached() {
			turnsToPayoff = strconv.Itoa(t.Decision.TurnsToPayoff)
		}
		row := []string{
			strconv.Itoa(t.Turn),
			t.Recorded,
			t.Replanned,
			match,
			turnsToPayoff,
			strconv.Itoa(t.Decision.Reward),
			t.Elapsed.String(),
		}
		_ = table.Append(row)
	}

	_ = table.Render()
	fmt.Println()
}
