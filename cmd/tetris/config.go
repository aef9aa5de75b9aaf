package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/tui-tetris/internal/config"
)

var configCmd = &cobra.Command{
	Use:   "config [ruleset]",
	Short: "Print a ruleset's default YAML",
	Long: `Print the embedded default YAML for a ruleset (default: --ruleset).

Save the output to ~/.tetris/configs/<ruleset>.yaml or ./configs/<ruleset>.yaml
and edit it to change the rules without passing --config.`,
	Args: cobra.MaximumNArgs(1),
	Run:  runConfig,
}

func runConfig(cmd *cobra.Command, args []string) {
	name := flagRuleset
	if len(args) == 1 {
		name = args[0]
	}

	data, err := config.DefaultYAML(name)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		fmt.Fprintln(os.Stderr, "Run 'tetris rules' to see available rulesets.")
		os.Exit(1)
	}
	fmt.Print(string(data))
}
