package dashboard

import (
	"context"
	"fmt"
	"time"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/solflow/dcadash/internal/common"
	"github.com/solflow/dcadash/internal/model"
	"github.com/solflow/dcadash/internal/source"
)

// fetchOrders fetches the working set in the background. The sequence number
// travels with the result so stale completions can be discarded.
func (m Model) fetchOrders(seq int) tea.Cmd {
	src := m.config.Source
	timeout := m.config.FetchTimeout
	req := source.FilterRequest{
		Search:     m.criteria.Search,
		User:       m.criteria.User,
		InputMint:  m.criteria.InputMint,
		OutputMint: m.criteria.OutputMint,
	}

	return func() tea.Msg {
		ctx, cancel := context.WithTimeout(context.Background(), timeout)
		defer cancel()

		var orders []model.Order
		err := common.WithRetry(ctx, func() error {
			var fetchErr error
			orders, fetchErr = src.Fetch(ctx, req)
			return fetchErr
		}, common.RetryOptions{MaxAttempts: 2, InitialDelay: 250 * time.Millisecond})
		if err != nil {
			return ordersLoadedMsg{
				seq: seq,
				err: fmt.Errorf("%w: %v", common.ErrDataSource, err),
			}
		}

		return ordersLoadedMsg{seq: seq, orders: orders}
	}
}

// armDebounce schedules the quiet-period expiry for the given edit sequence.
func armDebounce(seq int, quiet time.Duration) tea.Cmd {
	return tea.Tick(quiet, func(time.Time) tea.Msg {
		return debounceFiredMsg{seq: seq}
	})
}

// armRefresh schedules the next periodic aggregate recomputation. The timer
// dies with the program's command loop, so teardown releases it.
func armRefresh(every time.Duration) tea.Cmd {
	return tea.Tick(every, func(time.Time) tea.Msg {
		return refreshTickMsg{}
	})
}
