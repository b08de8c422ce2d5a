// platformer is a side-scrolling platformer that runs in a terminal, a
// window, a browser, or over SSH.
//
// Usage:
//
//	platformer play              - Play in this terminal
//	platformer gui               - Play in a window
//	platformer web               - Serve the game to browsers
//	platformer serve             - Start SSH server for remote play
//	platformer simulate          - Run the simulation headless
//	platformer config            - Print the effective configuration
//
// Global flags:
//
//	--config <path>     - Game config file (YAML or TOML)
//	--log-level <level> - debug, info, warn, error (default: info)
//	--log-file <path>   - Write logs to a file
//
// Flags fall back to PLATFORMER_* environment variables, which may also be
// set in a .env file in the working directory.
package main

import (
	"fmt"
	"io"
	"os"

	"github.com/charmbracelet/log"
	"github.com/joho/godotenv"
	"github.com/spf13/cobra"
	"github.com/spf13/pflag"

	"github.com/vovakirdan/platformer/internal/config"
)

var (
	// Global flags
	flagConfig   string
	flagLogLevel string
	flagLogFile  string
)

// envFlags maps flag names to the environment variables that default them.
var envFlags = map[string]string{
	"config":    "PLATFORMER_CONFIG",
	"log-level": "PLATFORMER_LOG_LEVEL",
	"log-file":  "PLATFORMER_LOG_FILE",
	"addr":      "PLATFORMER_ADDR",
	"ssh":       "PLATFORMER_SSH_ADDR",
	"assets":    "PLATFORMER_ASSETS",
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

var rootCmd = &cobra.Command{
	Use:   "platformer",
	Short: "Platformer - run and jump across a scrolling world",
	Long: `Platformer is a side-scrolling platformer. Run right across the
platforms without falling into the gaps to reach the end of the level.

Available commands:
  play      - Play in this terminal
  gui       - Play in a window with the real sprites
  web       - Serve the game to browsers
  serve     - Start SSH server for remote play
  simulate  - Run the simulation headless with scripted input
  config    - Print the effective configuration

Examples:
  platformer play
  platformer gui --assets ./assets
  platformer web --addr :8080
  platformer serve --ssh :2222
  platformer simulate --ticks 600 --script 0:down:right
  platformer config --format toml > platformer.toml`,
	PersistentPreRun: func(cmd *cobra.Command, _ []string) {
		// A missing .env is fine.
		_ = godotenv.Load()
		applyEnv(cmd.Flags())
	},
}

func init() {
	rootCmd.PersistentFlags().StringVar(&flagConfig, "config", "", "Path to game config (YAML or TOML)")
	rootCmd.PersistentFlags().StringVar(&flagLogLevel, "log-level", "info", "Log level: debug, info, warn, error")
	rootCmd.PersistentFlags().StringVar(&flagLogFile, "log-file", "", "Write logs to this file")

	rootCmd.AddCommand(playCmd)
	rootCmd.AddCommand(guiCmd)
	rootCmd.AddCommand(webCmd)
	rootCmd.AddCommand(serveCmd)
	rootCmd.AddCommand(simulateCmd)
	rootCmd.AddCommand(configCmd)
}

// applyEnv fills flags not given on the command line from the environment.
func applyEnv(flags *pflag.FlagSet) {
	for name, key := range envFlags {
		f := flags.Lookup(name)
		if f == nil || f.Changed {
			continue
		}
		if v, ok := os.LookupEnv(key); ok && v != "" {
			_ = flags.Set(name, v)
		}
	}
}

// loadConfig loads the game config or exits.
func loadConfig(logger *log.Logger) config.PlatformerConfig {
	cfg, source, err := config.Load(flagConfig)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
	logger.Debug("config loaded", "source", source)
	return cfg
}

// newLogger builds the logger for a command. Logs go to --log-file when
// set, otherwise to fallback. The returned close func releases the file.
func newLogger(prefix string, fallback io.Writer) (*log.Logger, func()) {
	out := fallback
	closeFn := func() {}
	if flagLogFile != "" {
		f, err := os.OpenFile(flagLogFile, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o644)
		if err != nil {
			fmt.Fprintf(os.Stderr, "Error: cannot open log file: %v\n", err)
			os.Exit(1)
		}
		out = f
		closeFn = func() { f.Close() }
	}

	logger := log.NewWithOptions(out, log.Options{
		ReportTimestamp: true,
		Prefix:          prefix,
	})

	level, err := log.ParseLevel(flagLogLevel)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
	logger.SetLevel(level)
	return logger, closeFn
}
