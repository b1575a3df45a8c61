// Package cli provides the command-line interface for stardust.
package cli

import (
	tea "github.com/charmbracelet/bubbletea"
	"github.com/spf13/cobra"

	"github.com/stardustlabs/stardust/internal/app"
	"github.com/stardustlabs/stardust/internal/tui"
)

// launchTUIFunc is a function variable for launching the TUI, allowing it to
// be mocked in tests.
var launchTUIFunc = launchTUI

// NewRootCommand creates the root command for stardust.
// It receives the container for dependency injection and version for display.
func NewRootCommand(c *app.Container, version string) *cobra.Command {
	root := &cobra.Command{
		Use:   "stardust",
		Short: "A personal task tracker drawn as a night sky",
		Long: `stardust keeps your tasks as stars in an interactive night sky.

Each task is a star: its color is the task's category, its size the
difficulty. Stars can be dragged around the sky, filtered by time scope
(today, this week, this month), and overdue tasks streak past as meteors.

Run without arguments to open the interactive sky. Subcommands manage
tasks directly from the shell.`,
		Version: version,
		// SilenceUsage prevents usage from being printed on errors
		SilenceUsage: true,
		// SilenceErrors prevents Cobra from printing errors (we handle it in main)
		SilenceErrors: true,
		RunE: func(_ *cobra.Command, _ []string) error {
			return launchTUIFunc(c)
		},
	}

	root.AddCommand(
		newAddCommand(c),
		newListCommand(c),
		newDoneCommand(c),
		newRmCommand(c),
		newExportCommand(c),
		newImportCommand(c),
	)

	return root
}

// launchTUI opens the interactive star field in the alternate screen with
// full mouse reporting so stars can be dragged.
func launchTUI(c *app.Container) error {
	p := tea.NewProgram(tui.New(c), tea.WithAltScreen(), tea.WithMouseAllMotion())
	_, err := p.Run()
	return err
}
