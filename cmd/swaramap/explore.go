package main

import (
	"fmt"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/spf13/cobra"

	"github.com/swaramap/swaramap/pkg/explore"
)

var exploreCmd = &cobra.Command{
	Use:   "explore",
	Short: "Interactively explore the musical map",
	Long: `Launch an interactive TUI to query and browse the regions.

Features:
  - Instrument query with autocomplete
  - Rhythm token cycling (t / T)
  - Regions list with full, dimmed and neutral emphasis
  - Region details with the reason each region matched
  - Vi-style navigation and sortable regions list`,
	Args: cobra.NoArgs,
	RunE: runExplore,
}

func runExplore(cmd *cobra.Command, args []string) error {
	env, err := openEnv(commandContext(cmd), nil)
	if err != nil {
		return err
	}
	defer env.Close()

	p := tea.NewProgram(explore.New(env.core), tea.WithAltScreen())
	if _, err := p.Run(); err != nil {
		return fmt.Errorf("running explore TUI: %w", err)
	}

	return nil
}
