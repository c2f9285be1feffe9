// Package source provides the order data sources behind the dashboard: a
// seeded in-memory generator and a sqlite-backed store, both behind the same
// fetch contract so a real backend can slot in later.
package source

import (
	"context"

	"github.com/solflow/dcadash/internal/model"
)

// FilterRequest mirrors the dashboard's filter criteria. The local sources
// ignore it, but a real backend may use it for server-side filtering.
// Client-side filtering stays authoritative either way.
type FilterRequest struct {
	Search     string
	User       string
	InputMint  string
	OutputMint string
}

// Source fetches the working set of orders matching the request. A failed
// fetch wraps common.ErrDataSource; sources are read-only, so callers may
// retry safely.
type Source interface {
	Fetch(ctx context.Context, req FilterRequest) ([]model.Order, error)
}
