package system

import (
	tea "github.com/charmbracelet/bubbletea"

	"github.com/julianstephens/daydial/internal/cli"
	"github.com/julianstephens/daydial/internal/tui"
)

type TuiCmd struct{}

func (c *TuiCmd) Run(ctx *cli.Context) error {
	// Perform automatic backup on TUI startup (after successful load)
	ctx.PerformAutomaticBackup()

	p := tea.NewProgram(tui.NewModel(ctx.Store, ctx.Planner()), tea.WithAltScreen())
	_, err := p.Run()
	return err
}
