package main

import (
	"fmt"
	"os"

	"github.com/fatih/color"
	"github.com/spf13/cobra"

	"github.com/napolitain/solver-brew/internal/models"
)

var (
	configFile string
	recordFile string
	quiet      bool
	showTable  bool
)

func main() {
	rootCmd := &cobra.Command{
		Use:   "brew",
		Short: "Witches brew turn planner",
		Long: `A bounded greedy planner for the witches brew crafting game.
Without a subcommand it plays: one turn is read from stdin and one
move is written to stdout until the feed ends.`,
		Run: runPlay,
	}

	rootCmd.PersistentFlags().StringVarP(&configFile, "config", "c", "", "Path to YAML planner config")
	rootCmd.PersistentFlags().BoolVarP(&quiet, "quiet", "q", false, "No diagnostics on stderr")
	rootCmd.Flags().StringVarP(&recordFile, "record", "r", "", "Record every turn to a .jsonl.zst replay file")

	playCmd := &cobra.Command{
		Use:   "play",
		Short: "Play from the game feed on stdin",
		Args:  cobra.NoArgs,
		Run:   runPlay,
	}
	playCmd.Flags().StringVarP(&recordFile, "record", "r", "", "Record every turn to a .jsonl.zst replay file")

	planCmd := &cobra.Command{
		Use:   "plan <snapshot.json>",
		Short: "Rank every candidate move for one JSON snapshot",
		Args:  cobra.ExactArgs(1),
		Run:   runPlan,
	}

	replayCmd := &cobra.Command{
		Use:   "replay <game.jsonl.zst>",
		Short: "Re-plan a recorded game and compare moves",
		Args:  cobra.ExactArgs(1),
		Run:   runReplay,
	}
	replayCmd.Flags().BoolVarP(&showTable, "table", "t", false, "Show one row per turn")

	rootCmd.AddCommand(playCmd, planCmd, replayCmd)

	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

// loadConfig returns the default tuning or the one from --config
func loadConfig() (models.PlannerConfig, error) {
	if configFile == "" {
		return models.DefaultPlannerConfig(), nil
	}
	config, err := models.LoadPlannerConfig(configFile)
	if err != nil {
		return config, fmt.Errorf("error loading config: %w", err)
	}
	if err := models.ValidatePlannerConfig(config); err != nil {
		return config, fmt.Errorf("invalid config: %w", err)
	}
	return config, nil
}

func fail(err error) {
	color.New(color.FgRed).Fprintln(os.Stderr, err)
	os.Exit(1)
}
