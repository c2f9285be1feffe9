package query

import (
	"testing"

	"github.com/solflow/dcadash/internal/model"
	"github.com/stretchr/testify/assert"
)

func testOrders() []model.Order {
	return []model.Order{
		{ID: "1", User: "u1", InputMint: "SOL", OutputMint: "BTC", Amount: 100},
		{ID: "2", User: "u2", InputMint: "USDC", OutputMint: "RAY", Amount: 50},
		{ID: "3", User: "whale7", InputMint: "USDC", OutputMint: "SOL", Amount: 2500},
		{ID: "4", User: "u1", InputMint: "USDC", OutputMint: "BONK", Amount: 10},
	}
}

func TestFilter(t *testing.T) {
	tests := []struct {
		name     string
		criteria Criteria
		wantIDs  []string
	}{
		{
			name:     "empty criteria keeps everything",
			criteria: Criteria{},
			wantIDs:  []string{"1", "2", "3", "4"},
		},
		{
			name:     "search matches mint case-insensitively",
			criteria: Criteria{Search: "sol"},
			wantIDs:  []string{"1", "3"},
		},
		{
			name:     "user filter is a substring match",
			criteria: Criteria{User: "u"},
			wantIDs:  []string{"1", "2", "4"},
		},
		{
			name:     "input mint is an exact match",
			criteria: Criteria{InputMint: "USDC"},
			wantIDs:  []string{"2", "3", "4"},
		},
		{
			name:     "output mint is an exact match",
			criteria: Criteria{OutputMint: "BTC"},
			wantIDs:  []string{"1"},
		},
		{
			name:     "lowercase mint selector does not match exactly",
			criteria: Criteria{InputMint: "usdc"},
			wantIDs:  []string{},
		},
		{
			name:     "search and user filter are both required",
			criteria: Criteria{Search: "sol", User: "whale"},
			wantIDs:  []string{"3"},
		},
		{
			name:     "user filter excludes even when search would match",
			criteria: Criteria{Search: "sol", User: "u2"},
			wantIDs:  []string{},
		},
		{
			name:     "all predicates combined",
			criteria: Criteria{Search: "usdc", User: "u", InputMint: "USDC", OutputMint: "RAY"},
			wantIDs:  []string{"2"},
		},
		{
			name:     "no matches is an empty result, not an error",
			criteria: Criteria{Search: "doge"},
			wantIDs:  []string{},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := Filter(testOrders(), tt.criteria)
			assert.Equal(t, tt.wantIDs, ids(got))
		})
	}
}

func TestFilter_Idempotent(t *testing.T) {
	criteria := Criteria{Search: "usdc", User: "u"}

	once := Filter(testOrders(), criteria)
	twice := Filter(once, criteria)

	assert.Equal(t, once, twice)
}

func TestFilter_DoesNotMutateInput(t *testing.T) {
	orders := testOrders()
	Filter(orders, Criteria{Search: "sol"})

	assert.Equal(t, testOrders(), orders)
}

func TestCriteria_IsZero(t *testing.T) {
	assert.True(t, Criteria{}.IsZero())
	assert.False(t, Criteria{Search: "x"}.IsZero())
	assert.False(t, Criteria{OutputMint: "SOL"}.IsZero())
}

func ids(orders []model.Order) []string {
	out := make([]string, 0, len(orders))
	for _, o := range orders {
		out = append(out, o.ID)
	}
	return out
}
