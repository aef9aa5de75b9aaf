// tetris is a falling-block puzzle game for the terminal.
//
// Usage:
//
//	tetris play              - Play in the terminal
//	tetris sim --script ...  - Replay a command script headlessly
//	tetris rules             - List built-in rulesets
//	tetris config [ruleset]  - Print a ruleset's default YAML
//
// Global flags:
//
//	--seed <value>        - Set RNG seed for reproducible games
//	--ruleset <name>      - standard or classic (default: standard)
//	--config <path>       - Custom ruleset YAML
//	--difficulty <preset> - easy, normal, hard, fixed
//	--log-file <path>     - Write logs to a file
//	--debug               - Log every lock
package main

import (
	"fmt"
	"io"
	"os"
	"time"

	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"

	"github.com/vovakirdan/tui-tetris/internal/config"
)

var (
	// Global flags
	flagSeed       int64
	flagRuleset    string
	flagConfig     string
	flagDifficulty string
	flagLogFile    string
	flagDebug      bool
)

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

var rootCmd = &cobra.Command{
	Use:   "tetris",
	Short: "Tetris - stack falling blocks in your terminal",
	Long: `Tetris is a terminal falling-block puzzle game with configurable
rulesets, deterministic seeds and a headless simulator.

Available commands:
  play     - Play interactively
  sim      - Run a command script without a terminal UI
  rules    - Show built-in rulesets
  config   - Print a ruleset's default YAML

Examples:
  tetris play
  tetris play --ruleset classic --difficulty hard
  tetris sim --seed 42 --script "2l h 3r c h"
  tetris config classic > ~/.tetris/configs/classic.yaml`,
}

func init() {
	// Global persistent flags
	rootCmd.PersistentFlags().Int64Var(&flagSeed, "seed", 0, "RNG seed (0 = random based on time)")
	rootCmd.PersistentFlags().StringVar(&flagRuleset, "ruleset", config.RulesetStandard, "Ruleset: standard, classic")
	rootCmd.PersistentFlags().StringVar(&flagConfig, "config", "", "Path to custom ruleset YAML")
	rootCmd.PersistentFlags().StringVar(&flagDifficulty, "difficulty", "", "Difficulty preset: easy, normal, hard, fixed")
	rootCmd.PersistentFlags().StringVar(&flagLogFile, "log-file", "", "Write logs to this file")
	rootCmd.PersistentFlags().BoolVar(&flagDebug, "debug", false, "Enable debug logging")

	// Add subcommands
	rootCmd.AddCommand(playCmd)
	rootCmd.AddCommand(simCmd)
	rootCmd.AddCommand(rulesCmd)
	rootCmd.AddCommand(configCmd)
}

// loadRuleset resolves --ruleset, --config and --difficulty into a validated
// ruleset.
func loadRuleset() (config.RulesetConfig, error) {
	preset, err := config.ParseDifficulty(flagDifficulty)
	if err != nil {
		return config.RulesetConfig{}, err
	}
	rs, err := config.Load(flagConfig, flagRuleset)
	if err != nil {
		return config.RulesetConfig{}, err
	}
	if preset != "" {
		config.ApplyPreset(&rs, preset)
	}
	if err := rs.Validate(); err != nil {
		return config.RulesetConfig{}, err
	}
	return rs, nil
}

// newLogger builds the CLI logger. When --log-file is set logs go there;
// otherwise they go to fallback. The returned closer releases the file.
func newLogger(fallback io.Writer) (*log.Logger, func(), error) {
	w, closer := fallback, func() {}
	if flagLogFile != "" {
		f, err := os.OpenFile(flagLogFile, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o600)
		if err != nil {
			return nil, nil, fmt.Errorf("failed to open log file %s: %w", flagLogFile, err)
		}
		w, closer = f, func() { f.Close() }
	}

	logger := log.NewWithOptions(w, log.Options{
		ReportTimestamp: true,
		Prefix:          "tetris",
	})
	if flagDebug {
		logger.SetLevel(log.DebugLevel)
	}
	return logger, closer, nil
}

// resolveSeed returns seed, or a clock-based seed when it is 0.
func resolveSeed(seed int64) int64 {
	if seed == 0 {
		return time.Now().UnixNano()
	}
	return seed
}
