package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/tui-tetris/internal/config"
)

var rulesCmd = &cobra.Command{
	Use:   "rules",
	Short: "List built-in rulesets",
	Long:  `Shows the built-in rulesets and how each one scores and speeds up.`,
	Args:  cobra.NoArgs,
	Run:   runRules,
}

func runRules(cmd *cobra.Command, args []string) {
	names := config.Rulesets()

	fmt.Println("Available rulesets:")
	fmt.Println()

	// Calculate column widths
	maxNameLen := 4 // "Name" header
	for _, n := range names {
		if len(n) > maxNameLen {
			maxNameLen = len(n)
		}
	}

	// Print header
	fmt.Printf("  %-*s  %-10s  %-8s  %-13s  %s\n", maxNameLen, "Name", "Kicks", "Scoring", "Ramp", "Summary")
	fmt.Printf("  %-*s  %-10s  %-8s  %-13s  %s\n", maxNameLen, "----", "-----", "-------", "----", "-------")

	for _, n := range names {
		rs, err := config.Default(n)
		if err != nil {
			fmt.Fprintf(os.Stderr, "Error: %v\n", err)
			os.Exit(1)
		}
		fmt.Printf("  %-*s  %-10s  %-8s  %-13s  %s\n", maxNameLen, n,
			rs.Rotation.Kicks, rs.Scoring.Policy, rs.Speed.Ramp, rs.Summary)
		fmt.Printf("  %-*s  gravity %dms -> %dms after 10 single clears, floor %dms\n",
			maxNameLen, "", rs.Speed.InitialMs, rs.Speed.IntervalAfter(10, 100), rs.Speed.FloorMs)
	}

	fmt.Println()
	fmt.Println("Run 'tetris play --ruleset <name>' to play a ruleset.")
}
