package tui

import (
	"context"
	"fmt"

	tea "github.com/charmbracelet/bubbletea"
)

// Run starts the live input and blocks until the user quits or ctx is done.
// The returned Model holds the confirmed lines.
func Run(ctx context.Context, cfg Config) (Model, error) {
	program := tea.NewProgram(NewModel(cfg), tea.WithContext(ctx))
	final, err := program.Run()
	if err != nil {
		return Model{}, fmt.Errorf("live input failed: %w", err)
	}
	m, ok := final.(Model)
	if !ok {
		return Model{}, fmt.Errorf("live input returned unexpected model %T", final)
	}
	return m, nil
}
