package main

import (
	"fmt"
	"io"
	"os"
	"time"

	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/vovakirdan/platformer/internal/core"
	"github.com/vovakirdan/platformer/internal/games/platformer"
	"github.com/vovakirdan/platformer/internal/platform/tui"
)

var playCmd = &cobra.Command{
	Use:   "play",
	Short: "Play in this terminal",
	Long: `Play the platformer in this terminal.

Controls:
  A/D, Left/Right  - Run
  W/Up/Space       - Jump
  P/Esc            - Pause
  R                - Restart
  Ctrl+S           - Screenshot
  Q/Ctrl+C         - Quit

Terminals do not report key releases, so a run key counts as held while
it auto-repeats and for a short moment after.

Examples:
  platformer play
  platformer play --config ./my-level.yaml
  platformer play --log-file play.log --log-level debug`,
	Args: cobra.NoArgs,
	Run:  runPlay,
}

func runPlay(_ *cobra.Command, _ []string) {
	// Logging to the terminal would tear the game screen.
	logger, closeLog := newLogger("platformer", io.Discard)
	defer closeLog()

	cfg := loadConfig(logger)

	// Get terminal size
	width, height := 80, 24 // Defaults
	if w, h, err := term.GetSize(int(os.Stdout.Fd())); err == nil {
		width = w
		height = h
	}

	runtime := core.RuntimeConfig{
		ScreenW:  width,
		ScreenH:  height,
		TickRate: cfg.Input.TickRate,
	}

	err := tui.Run(platformer.New(cfg), runtime, tui.Options{
		Hold:   time.Duration(cfg.Input.HoldMS) * time.Millisecond,
		Logger: logger,
	})
	if err != nil {
		closeLog()
		fmt.Fprintf(os.Stderr, "Error running game: %v\n", err)
		os.Exit(1)
	}
}
