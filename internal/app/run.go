package app

import (
	"context"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/rileyhilliard/imgdeck/internal/errors"
)

// Run starts the shell in the alternate screen and blocks until the user
// quits or ctx is cancelled. The terminal background is read when m is
// built, so nothing queries the tty once the program owns it.
func Run(ctx context.Context, m *Model, opts ...tea.ProgramOption) error {
	opts = append([]tea.ProgramOption{
		tea.WithAltScreen(),
		tea.WithContext(ctx),
	}, opts...)

	if _, err := tea.NewProgram(m, opts...).Run(); err != nil {
		if ctx.Err() != nil {
			return nil
		}
		return errors.WrapWithCode(err, errors.ErrUI,
			"The terminal UI stopped unexpectedly",
			"Run with --verbose and check the log file")
	}
	return nil
}
