package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/tui-crossing/internal/games/crossing"
	"github.com/vovakirdan/tui-crossing/internal/platform/tui"
	"github.com/vovakirdan/tui-crossing/internal/registry"
)

var playCmd = &cobra.Command{
	Use:   "play [variant]",
	Short: "Play a variant",
	Long: `Start playing the given variant (default: crossing).

Controls:
  Arrows/WASD  - Hop one cell
  Enter        - Skip the level-cleared banner
  P/Esc        - Pause
  R            - Restart after game over or the final board
  Ctrl+S       - Save a text screenshot
  Q/Ctrl+C     - Quit

Examples:
  crossing play
  crossing play crossing_classic
  crossing play --seed 42
  crossing play --config ./my-crossing.yaml`,
	Args: cobra.MaximumNArgs(1),
	RunE: runPlay,
}

func runPlay(_ *cobra.Command, args []string) error {
	gameID := crossing.VariantStandard
	if len(args) == 1 {
		gameID = args[0]
	}
	if !registry.Exists(gameID) {
		return fmt.Errorf("unknown variant %q (run 'crossing list' to see variants)", gameID)
	}

	game, err := registry.Create(gameID)
	if err != nil {
		return err
	}
	if err := tui.Run(game, runtimeConfig(), logger); err != nil {
		return fmt.Errorf("running %s: %w", gameID, err)
	}
	return nil
}
