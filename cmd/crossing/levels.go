package main

import (
	"fmt"

	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/lipgloss/table"
	"github.com/spf13/cobra"

	"github.com/vovakirdan/tui-crossing/internal/games/crossing"
	"github.com/vovakirdan/tui-crossing/internal/platform/tui"
	"github.com/vovakirdan/tui-crossing/internal/registry"
)

var flagInteractive bool

var levelsCmd = &cobra.Command{
	Use:   "levels [variant]",
	Short: "Show the per-level difficulty table",
	Long: `Print obstacle speed, spacing and cars per lane for every level of a
variant, using the loaded configuration.

Examples:
  crossing levels
  crossing levels crossing_classic
  crossing levels --config ./my-crossing.yaml
  crossing levels -i`,
	Args: cobra.MaximumNArgs(1),
	RunE: runLevels,
}

func init() {
	levelsCmd.Flags().BoolVarP(&flagInteractive, "interactive", "i", false, "Browse all variants in a full-screen table")
}

func runLevels(cmd *cobra.Command, args []string) error {
	if flagInteractive {
		cfg := runtimeConfig()
		_, err := tui.RunLevels(levelSheets(), cfg.ScreenW, cfg.ScreenH)
		return err
	}

	variant := crossing.VariantStandard
	if len(args) == 1 {
		variant = args[0]
	}
	if !registry.Exists(variant) {
		return fmt.Errorf("unknown variant %q (run 'crossing list' to see variants)", variant)
	}

	fmt.Fprintln(cmd.OutOrStdout(), levelTable(variant))
	return nil
}

var (
	headerStyle = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("229")).Padding(0, 1)
	cellStyle   = lipgloss.NewStyle().Padding(0, 1)
)

// levelTable renders a variant's level table for plain output.
func levelTable(variant string) string {
	t := table.New().
		Border(lipgloss.RoundedBorder()).
		BorderStyle(lipgloss.NewStyle().Foreground(lipgloss.Color("240"))).
		Headers("Level", "Speed px/tick", "Spacing px", "Cars/lane").
		StyleFunc(func(row, _ int) lipgloss.Style {
			if row == table.HeaderRow {
				return headerStyle
			}
			return cellStyle
		})

	for _, l := range crossing.ConfigFor(variant).LevelTable() {
		t.Row(tui.LevelRow(l)...)
	}
	return t.String()
}

// levelSheets collects the level tables of every registered variant.
func levelSheets() []tui.LevelSheet {
	games := registry.List()
	sheets := make([]tui.LevelSheet, 0, len(games))
	for _, g := range games {
		sheets = append(sheets, tui.LevelSheet{
			ID:     g.ID,
			Title:  g.Title,
			Levels: crossing.ConfigFor(g.ID).LevelTable(),
		})
	}
	return sheets
}
