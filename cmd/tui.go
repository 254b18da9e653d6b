package main

import (
	"context"
	"fmt"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/desertthunder/contenthub/internal/shared"
	"github.com/desertthunder/contenthub/internal/ui"
	"github.com/urfave/cli/v3"
)

// Browse runs the article browser full screen. Log output moves to --log-file for the
// duration, keeping the current level.
func (r *Runner) Browse(ctx context.Context, cmd *cli.Command) error {
	path := cmd.String("log-file")
	fileLogger, err := shared.NewFileLogger(path)
	if err != nil {
		return fmt.Errorf("browse: %w", err)
	}
	fileLogger.SetLevel(r.logger.GetLevel())
	r.SetLogger(fileLogger)

	svc, err := r.service()
	if err != nil {
		return err
	}
	r.logger.Info("browser started", "backend", svc.Backend(), "log", path)

	model := ui.NewModel(ctx, svc)
	if _, err := tea.NewProgram(model, tea.WithAltScreen(), tea.WithContext(ctx)).Run(); err != nil {
		return fmt.Errorf("browse: %w", err)
	}
	r.logger.Info("browser closed", "filters", model.State().Active())
	return nil
}
