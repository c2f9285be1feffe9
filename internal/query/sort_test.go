package query

import (
	"testing"
	"time"

	"github.com/solflow/dcadash/internal/model"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func sortFixture() []model.Order {
	base := time.Date(2026, 3, 1, 0, 0, 0, 0, time.UTC)
	return []model.Order{
		{ID: "1", User: "carol", InputMint: "USDC", OutputMint: "SOL", Frequency: "weekly", Amount: 250, CreatedAt: base.Add(48 * time.Hour), ExecuteAt: base.Add(72 * time.Hour)},
		{ID: "2", User: "alice", InputMint: "SOL", OutputMint: "BTC", Frequency: "daily", Amount: 100, CreatedAt: base, ExecuteAt: base.Add(96 * time.Hour)},
		{ID: "3", User: "bob", InputMint: "ETH", OutputMint: "RAY", Frequency: "monthly", Amount: 50, CreatedAt: base.Add(24 * time.Hour), ExecuteAt: base.Add(12 * time.Hour)},
	}
}

func TestSort(t *testing.T) {
	tests := []struct {
		name    string
		cfg     SortConfig
		wantIDs []string
	}{
		{
			name:    "unset direction keeps fetch order",
			cfg:     SortConfig{Field: FieldAmount},
			wantIDs: []string{"1", "2", "3"},
		},
		{
			name:    "unknown field is a no-op",
			cfg:     SortConfig{Field: Field("bogus"), Direction: DirectionAsc},
			wantIDs: []string{"1", "2", "3"},
		},
		{
			name:    "amount ascending is numeric",
			cfg:     SortConfig{Field: FieldAmount, Direction: DirectionAsc},
			wantIDs: []string{"3", "2", "1"},
		},
		{
			name:    "amount descending",
			cfg:     SortConfig{Field: FieldAmount, Direction: DirectionDesc},
			wantIDs: []string{"1", "2", "3"},
		},
		{
			name:    "user ascending is lexicographic",
			cfg:     SortConfig{Field: FieldUser, Direction: DirectionAsc},
			wantIDs: []string{"2", "3", "1"},
		},
		{
			name:    "created at compares as instants",
			cfg:     SortConfig{Field: FieldCreatedAt, Direction: DirectionAsc},
			wantIDs: []string{"2", "3", "1"},
		},
		{
			name:    "execute at descending",
			cfg:     SortConfig{Field: FieldExecuteAt, Direction: DirectionDesc},
			wantIDs: []string{"2", "1", "3"},
		},
		{
			name: "token pair is derived from both mints",
			// Pairs: SOL-USDC, BTC-SOL, RAY-ETH.
			cfg:     SortConfig{Field: FieldTokenPair, Direction: DirectionAsc},
			wantIDs: []string{"2", "3", "1"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := Sort(sortFixture(), tt.cfg)
			assert.Equal(t, tt.wantIDs, ids(got))
		})
	}
}

func TestSort_AscendingReversedEqualsDescending(t *testing.T) {
	fields := []Field{
		FieldUser, FieldInputMint, FieldOutputMint, FieldAmount,
		FieldFrequency, FieldCreatedAt, FieldExecuteAt, FieldTokenPair,
	}

	for _, f := range fields {
		t.Run(string(f), func(t *testing.T) {
			asc := Sort(sortFixture(), SortConfig{Field: f, Direction: DirectionAsc})
			desc := Sort(sortFixture(), SortConfig{Field: f, Direction: DirectionDesc})

			reversed := make([]model.Order, len(asc))
			for i, o := range asc {
				reversed[len(asc)-1-i] = o
			}
			assert.Equal(t, ids(desc), ids(reversed))
		})
	}
}

func TestSort_OutputIsPermutation(t *testing.T) {
	orders := sortFixture()
	got := Sort(orders, SortConfig{Field: FieldAmount, Direction: DirectionAsc})

	require.Len(t, got, len(orders))
	assert.ElementsMatch(t, ids(orders), ids(got))
	// Input order must survive the sort untouched.
	assert.Equal(t, []string{"1", "2", "3"}, ids(orders))
}

func TestSort_StableOnTies(t *testing.T) {
	orders := []model.Order{
		{ID: "a", Amount: 10},
		{ID: "b", Amount: 10},
		{ID: "c", Amount: 5},
		{ID: "d", Amount: 10},
	}

	got := Sort(orders, SortConfig{Field: FieldAmount, Direction: DirectionAsc})
	assert.Equal(t, []string{"c", "a", "b", "d"}, ids(got))
}
