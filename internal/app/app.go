// Package app wires configuration, the dataset and the UI together.
package app

import (
	"context"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/Kamisorara/ImageViewer/internal/config"
	"github.com/Kamisorara/ImageViewer/internal/ui"
)

// Run executes the Bubble Tea program until the user quits or ctx ends.
func Run(ctx context.Context, cfg *config.AppConfig) error {
	state, err := LoadInitialState(cfg)
	if err != nil {
		return err
	}
	return runProgram(ctx, state)
}

func runProgram(ctx context.Context, state ui.State) error {
	opts := []tea.ProgramOption{tea.WithAltScreen(), tea.WithContext(ctx)}
	if state.Mouse {
		opts = append(opts, tea.WithMouseCellMotion())
	}
	program := tea.NewProgram(ui.NewModel(state), opts...)
	_, err := program.Run()
	return err
}
