package cli

import (
	"fmt"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/julianstephens/daynotes/internal/notebook"
	"github.com/julianstephens/daynotes/internal/tui"
)

type TuiCmd struct{}

func (c *TuiCmd) Run(ctx *Context) error {
	// Perform automatic backup on TUI startup (after successful load)
	ctx.PerformAutomaticBackup()

	m, err := tui.New(ctx.Store, notebook.WithClock(ctx.now))
	if err != nil {
		return err
	}

	p := tea.NewProgram(m, tea.WithAltScreen())
	final, err := p.Run()
	if err != nil {
		return fmt.Errorf("tui exited with error: %w", err)
	}

	// Last chance for changes whose save failed during the session
	if fm, ok := final.(tui.Model); ok && fm.Controller().Unsaved() {
		if err := fm.Controller().Flush(); err != nil {
			return fmt.Errorf("some changes could not be saved: %w", err)
		}
	}
	return nil
}
