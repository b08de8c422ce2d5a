package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/platformer/internal/platform/web"
)

var (
	flagWebAddr   string
	flagWebAssets string
)

var webCmd = &cobra.Command{
	Use:   "web",
	Short: "Serve the game to browsers",
	Long: `Start an HTTP server with a canvas page. Each browser tab plays its
own game; the simulation runs on the server and frames stream over a
WebSocket.

Examples:
  platformer web                      # Listen on :8080
  platformer web --addr :9000
  platformer web --assets ./assets    # Serve the sprite sheets`,
	Args: cobra.NoArgs,
	Run:  runWeb,
}

func init() {
	webCmd.Flags().StringVar(&flagWebAddr, "addr", ":8080", "HTTP server address (host:port)")
	webCmd.Flags().StringVar(&flagWebAssets, "assets", "assets", "Directory asset paths are relative to")
}

func runWeb(_ *cobra.Command, _ []string) {
	logger, closeLog := newLogger("platformer-web", os.Stderr)
	defer closeLog()

	cfg := loadConfig(logger)

	srvCfg := web.DefaultServerConfig()
	srvCfg.Address = flagWebAddr
	if info, err := os.Stat(flagWebAssets); err == nil && info.IsDir() {
		srvCfg.Assets = os.DirFS(flagWebAssets)
	} else {
		logger.Warn("assets directory not found, drawing placeholders", "path", flagWebAssets)
	}

	server := web.NewServer(srvCfg, cfg, logger)

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	fmt.Printf("Open http://localhost%s in a browser\n", server.Addr())
	fmt.Println("Press Ctrl+C to stop")

	if err := server.ListenAndServe(ctx); err != nil {
		closeLog()
		fmt.Fprintf(os.Stderr, "Server error: %v\n", err)
		os.Exit(1)
	}
}
