package dashboard

import (
	"context"
	"fmt"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/solflow/dcadash/internal/common"
)

// Run starts the dashboard and blocks until the user quits or the context
// is canceled.
func Run(ctx context.Context, cfg Config) error {
	if cfg.Source == nil {
		return fmt.Errorf("%w: dashboard requires an order source", common.ErrInvalidConfig)
	}

	p := tea.NewProgram(
		newModel(cfg),
		tea.WithAltScreen(),
		tea.WithContext(ctx),
	)

	if _, err := p.Run(); err != nil {
		return fmt.Errorf("running dashboard: %w", err)
	}

	return nil
}
