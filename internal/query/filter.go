// Package query implements the pure view-model pipeline over a fetched order
// set: time-window partitioning, multi-field filtering, field sorting, and
// time-bucketed aggregation. Functions in this package never mutate their
// input slices; they return fresh views over the same records.
package query

import (
	"strings"

	"github.com/solflow/dcadash/internal/model"
)

// Criteria holds the independent filter predicates. Blank values mean
// "no constraint".
type Criteria struct {
	Search     string
	User       string
	InputMint  string
	OutputMint string
}

// IsZero reports whether no predicate is set.
func (c Criteria) IsZero() bool {
	return c.Search == "" && c.User == "" && c.InputMint == "" && c.OutputMint == ""
}

// Filter returns the orders satisfying every predicate in c. The free-text
// search is an independent constraint AND-ed with the per-field filters, not
// an OR replacement for them: an order whose user fails the dedicated user
// filter is excluded even if it would match the search string.
func Filter(orders []model.Order, c Criteria) []model.Order {
	if c.IsZero() {
		return orders
	}

	user := strings.ToLower(c.User)
	search := strings.ToLower(c.Search)

	filtered := make([]model.Order, 0, len(orders))
	for _, o := range orders {
		if user != "" && !strings.Contains(strings.ToLower(o.User), user) {
			continue
		}
		if c.InputMint != "" && o.InputMint != c.InputMint {
			continue
		}
		if c.OutputMint != "" && o.OutputMint != c.OutputMint {
			continue
		}
		if search != "" && !matchesSearch(o, search) {
			continue
		}
		filtered = append(filtered, o)
	}

	return filtered
}

// matchesSearch reports whether the lowercased search term is a substring of
// at least one of the order's searchable fields.
func matchesSearch(o model.Order, search string) bool {
	return strings.Contains(strings.ToLower(o.User), search) ||
		strings.Contains(strings.ToLower(o.InputMint), search) ||
		strings.Contains(strings.ToLower(o.OutputMint), search)
}
