package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/platformer/internal/games/platformer"
	"github.com/vovakirdan/platformer/internal/platform/gui"
)

var (
	flagAssets string
	flagScale  float64
)

var guiCmd = &cobra.Command{
	Use:   "gui",
	Short: "Play in a window",
	Long: `Open a window and play with the sprite sheets from the assets directory.
Images that cannot be loaded are drawn as flat placeholders.

Controls:
  A/D, Left/Right  - Run
  W/Up/Space       - Jump
  P/Esc            - Pause
  R                - Restart
  Q                - Quit

Examples:
  platformer gui
  platformer gui --assets ./assets --scale 0.75`,
	Args: cobra.NoArgs,
	Run:  runGUI,
}

func init() {
	guiCmd.Flags().StringVar(&flagAssets, "assets", "assets", "Directory asset paths are relative to")
	guiCmd.Flags().Float64Var(&flagScale, "scale", 1, "Window scale factor")
}

func runGUI(_ *cobra.Command, _ []string) {
	logger, closeLog := newLogger("platformer-gui", os.Stderr)
	defer closeLog()

	cfg := loadConfig(logger)

	err := gui.Run(platformer.New(cfg), cfg, gui.Options{
		Assets: os.DirFS(flagAssets),
		Scale:  flagScale,
		Logger: logger,
	})
	if err != nil {
		closeLog()
		fmt.Fprintf(os.Stderr, "Error running game: %v\n", err)
		os.Exit(1)
	}
}
