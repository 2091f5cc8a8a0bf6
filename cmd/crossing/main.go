// crossing is a road-crossing arcade game for the terminal.
//
// Usage:
//
//	crossing list              - List available variants
//	crossing play [variant]    - Play a variant (default: crossing)
//	crossing menu              - Pick a variant interactively
//	crossing levels [variant]  - Show the per-level difficulty table
//
// Global flags:
//
//	--fps <rate>          - Set tick rate (default: 60)
//	--seed <value>        - Set RNG seed for reproducible gameplay
//	--config <path>       - Use a custom YAML config
//	--log-file <path>     - Write logs to a rotating file ("-" for stderr)
//	--log-level <level>   - debug, info, warn or error
package main

import (
	"fmt"
	"io"
	"os"

	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/vovakirdan/tui-crossing/internal/config"
	"github.com/vovakirdan/tui-crossing/internal/core"
	"github.com/vovakirdan/tui-crossing/internal/games/crossing"
	"github.com/vovakirdan/tui-crossing/internal/logging"
)

var (
	// Global flags
	flagFPS      int
	flagSeed     int64
	flagConfig   string
	flagLogFile  string
	flagLogLevel string

	logger    = log.New(io.Discard)
	logCloser io.Closer
)

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

var rootCmd = &cobra.Command{
	Use:   "crossing",
	Short: "Road Crossing - hop across the traffic in your terminal",
	Long: `Road Crossing is a terminal arcade game: guide the frog across lanes of
traffic to the goal at the top, level after level, before you run out of lives.

Available commands:
  list     - Show all variants
  play     - Play a variant directly
  menu     - Interactive variant picker
  levels   - Show the per-level difficulty table

Examples:
  crossing play
  crossing play crossing_classic
  crossing menu --fps 30
  crossing play --config ./my-crossing.yaml --log-file crossing.log --log-level debug`,
	SilenceUsage:       true,
	PersistentPreRunE:  setup,
	PersistentPostRunE: teardown,
}

func init() {
	rootCmd.PersistentFlags().IntVar(&flagFPS, "fps", 60, "Tick rate (frames per second)")
	rootCmd.PersistentFlags().Int64Var(&flagSeed, "seed", 0, "RNG seed (0 = random based on time)")
	rootCmd.PersistentFlags().StringVar(&flagConfig, "config", "", "Path to custom crossing config YAML")
	rootCmd.PersistentFlags().StringVar(&flagLogFile, "log-file", "", `Log file path ("-" for stderr, empty to disable)`)
	rootCmd.PersistentFlags().StringVar(&flagLogLevel, "log-level", "info", "Log level: debug, info, warn, error")

	rootCmd.AddCommand(listCmd)
	rootCmd.AddCommand(playCmd)
	rootCmd.AddCommand(menuCmd)
	rootCmd.AddCommand(levelsCmd)
}

// setup builds the logger and loads the game configuration. An invalid
// configuration stops the command before any screen is drawn.
func setup(_ *cobra.Command, _ []string) error {
	if flagFPS <= 0 {
		return fmt.Errorf("--fps must be positive, got %d", flagFPS)
	}

	opts := logging.DefaultOptions()
	opts.File = flagLogFile
	opts.Level = flagLogLevel
	l, closer, err := logging.New(opts)
	if err != nil {
		return err
	}
	logger, logCloser = l, closer

	cfg, err := config.LoadCrossing(flagConfig)
	if err != nil {
		return err
	}
	if err := crossing.SetConfig(cfg); err != nil {
		return err
	}
	crossing.SetLogger(logger)

	logger.Info("config loaded", "path", flagConfig, "levels", cfg.Round.MaxLevel, "lanes", len(cfg.Playfield.Lanes))
	return nil
}

func teardown(_ *cobra.Command, _ []string) error {
	if logCloser == nil {
		return nil
	}
	return logCloser.Close()
}

// runtimeConfig sizes the game to the current terminal.
func runtimeConfig() core.RuntimeConfig {
	width, height := 80, 24
	if w, h, err := term.GetSize(int(os.Stdout.Fd())); err == nil {
		width, height = w, h
	}
	return core.RuntimeConfig{
		ScreenW:  width,
		ScreenH:  height,
		TickRate: flagFPS,
		Seed:     flagSeed,
	}
}
