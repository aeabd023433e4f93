package tui

import (
	"context"
	"fmt"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/balkashynov/slidegym/internal/session"
)

// RunWeekTUI starts the interactive week view. bubbletea's own log output
// goes to logFile when it is set.
func RunWeekTUI(ctx context.Context, ctrl *session.Controller, logFile string) error {
	if logFile != "" {
		f, err := tea.LogToFile(logFile, "tui")
		if err != nil {
			return fmt.Errorf("open tui log: %w", err)
		}
		defer f.Close()
	}

	updates, unsubscribe := ctrl.Subscribe()
	defer unsubscribe()

	model := NewWeekModel(ctx, ctrl, updates)

	p := tea.NewProgram(model, tea.WithAltScreen(), tea.WithContext(ctx))
	finalModel, err := p.Run()
	if err != nil {
		return err
	}

	// Handle exit messages after TUI closes
	if m, ok := finalModel.(WeekModel); ok && m.Err() != nil {
		fmt.Printf("❌ Last error: %v\n", m.Err())
	}

	return nil
}
