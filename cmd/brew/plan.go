package main

import (
	"context"
	"fmt"
	"os"
	"strconv"

	"github.com/charmbracelet/lipgloss"
	"github.com/fatih/color"
	"github.com/olekukonko/tablewriter"
	"github.com/spf13/cobra"

	"github.com/napolitain/solver-brew/internal/converter"
	"github.com/napolitain/solver-brew/internal/loader"
	"github.com/napolitain/solver-brew/internal/models"
	"github.com/napolitain/solver-brew/internal/solver/brew"
)

var bannerStyle = lipgloss.NewStyle().
	Bold(true).
	Foreground(lipgloss.Color("86")).
	Border(lipgloss.RoundedBorder()).
	BorderForeground(lipgloss.Color("63")).
	Padding(0, 2)

func runPlan(cmd *cobra.Command, args []string) {
	successColor := color.New(color.FgGreen, color.Bold)
	infoColor := color.New(color.FgYellow)

	config, err := loadConfig()
	if err != nil {
		fail(err)
	}

	state, err := loader.LoadSnapshot(args[0])
	if err != nil {
		fail(err)
	}

	if !quiet {
		fmt.Println(bannerStyle.Render("Witches Brew\nTurn Planner"))
		fmt.Println()
		printState(state)
	}

	candidates := brew.NewPlannerWithConfig(config).Evaluate(context.Background(), state)
	if len(candidates) == 0 {
		infoColor.Println("No candidate move, waiting")
		fmt.Println(converter.MoveLine(models.Wait{}, ""))
		return
	}

	if !quiet {
		printCandidates(candidates)
	}

	successColor.Printf("✓ %s\n", converter.MoveLine(candidates[0].Move, ""))
}

func printState(state *models.GameState) {
	infoColor := color.New(color.FgYellow)

	me := state.Me()
	infoColor.Printf("📊 Turn %d\n", state.Turn)
	fmt.Printf("   Inventory: %s (%d free)\n", me.Inventory, me.Inventory.Left())
	fmt.Printf("   Rupees: %d, spells: %d (%d exhausted)\n", me.Rupees, len(me.Spells), me.Exhausted())
	fmt.Printf("   Orders: %d, tome: %d\n", len(state.Market.Orders), len(state.Tome.Spells))
	fmt.Println()
}

func printCandidates(candidates []brew.Decision) {
	table := tablewriter.NewTable(os.Stdout,
		tablewriter.WithHeader([]string{"#", "Move", "Turns", "Order", "Reward", "Shortfall"}),
	)

	for i, d := range candidates {
		turns, order := "-", "-"
		if d.Reached() {
			turns = strconv.Itoa(d.TurnsToPayoff)
			order = strconv.Itoa(d.OrderID)
		}
		row := []string{
			strconv.Itoa(i + 1),
			converter.MoveLine(d.Move, ""),
			turns,
			order,
			strconv.Itoa(d.Reward),
			strconv.Itoa(d.Shortfall),
		}
		_ = table.Append(row)
	}

	_ = table.Render()
	fmt.Println()
}
