package dashboard

import "github.com/solflow/dcadash/internal/model"

// ordersLoadedMsg carries a completed fetch. seq identifies which fetch this
// result belongs to; completions for superseded fetches are dropped so an
// older fetch can never overwrite a newer one.
type ordersLoadedMsg struct {
	err    error
	orders []model.Order
	seq    int
}

// debounceFiredMsg fires after the filter-input quiet period. Only the
// message matching the latest debounce sequence commits the pending edits.
type debounceFiredMsg struct {
	seq int
}

// refreshTickMsg triggers the periodic aggregate recomputation.
type refreshTickMsg struct{}
