package main

import (
	"fmt"
	"io"
	"os"

	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/vovakirdan/tui-tetris/internal/core"
	"github.com/vovakirdan/tui-tetris/internal/platform/tui"
)

var playCmd = &cobra.Command{
	Use:   "play",
	Short: "Play a game",
	Long: `Start an interactive game in the terminal.

Controls:
  Left/H, Right/L  - Move
  Up/K             - Rotate (direction set by controls.up_rotates)
  X / Z            - Rotate clockwise / counter-clockwise
  Down/J           - Soft drop
  Space            - Hard drop
  P/Esc            - Pause
  R                - Restart (after game over)
  ?                - More keys
  Q/Ctrl+C         - Quit

Difficulty options:
  easy   - Slower start, speeds up at half rate
  normal - Ruleset as configured
  hard   - Starts at 60% of the configured interval
  fixed  - Never speeds up

Examples:
  tetris play
  tetris play --ruleset classic
  tetris play --difficulty hard --seed 7
  tetris play --config ./my-rules.yaml --log-file tetris.log --debug`,
	Args: cobra.NoArgs,
	Run:  runPlay,
}

func runPlay(cmd *cobra.Command, args []string) {
	rs, err := loadRuleset()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}

	// The TUI owns the terminal, so logs are dropped unless --log-file is set.
	logger, closeLog, err := newLogger(io.Discard)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}

	width, height := 80, 24 // Defaults
	if w, h, termErr := term.GetSize(int(os.Stdout.Fd())); termErr == nil {
		width = w
		height = h
	}

	cfg := core.RuntimeConfig{
		ScreenW: width,
		ScreenH: height,
		Seed:    flagSeed,
	}

	runErr := tui.Run(rs, cfg, logger)
	closeLog()

	if runErr != nil {
		fmt.Fprintf(os.Stderr, "Error running game: %v\n", runErr)
		os.Exit(1)
	}
}
