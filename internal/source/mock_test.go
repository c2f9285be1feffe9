package source

import (
	"context"
	"math/rand"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestGenerateOrders(t *testing.T) {
	now := time.Date(2026, 3, 14, 12, 0, 0, 0, time.UTC)
	orders := GenerateOrders(200, rand.New(rand.NewSource(1)), now)

	require.Len(t, orders, 200)

	seen := make(map[string]bool)
	for _, o := range orders {
		assert.False(t, seen[o.ID], "duplicate ID %s", o.ID)
		seen[o.ID] = true

		assert.NotEmpty(t, o.User)
		assert.NotEmpty(t, o.InputMint)
		assert.NotEmpty(t, o.OutputMint)
		assert.NotEqual(t, o.InputMint, o.OutputMint)
		assert.NotEmpty(t, o.Frequency)
		assert.GreaterOrEqual(t, o.Amount, 0.0)

		assert.False(t, o.ExecuteAt.Before(now.Add(-6*time.Hour)))
		assert.True(t, o.ExecuteAt.Before(now.Add(24*time.Hour)))
		assert.False(t, o.CreatedAt.After(now))
	}
}

func TestGenerateOrders_CoversEveryTab(t *testing.T) {
	now := time.Date(2026, 3, 14, 12, 0, 0, 0, time.UTC)
	orders := GenerateOrders(500, rand.New(rand.NewSource(7)), now)

	var nextHour, pastDue int
	for _, o := range orders {
		if o.ExecuteAt.After(now) && !o.ExecuteAt.After(now.Add(time.Hour)) {
			nextHour++
		}
		if !o.ExecuteAt.After(now) {
			pastDue++
		}
	}

	assert.Positive(t, nextHour, "expected some orders due within the hour")
	assert.Positive(t, pastDue, "expected some past-due orders")
}

func TestMockSource_Fetch(t *testing.T) {
	now := time.Date(2026, 3, 14, 12, 0, 0, 0, time.UTC)
	src := NewMockSource(50, 42, now)

	first, err := src.Fetch(context.Background(), FilterRequest{})
	require.NoError(t, err)
	require.Len(t, first, 50)

	// A second fetch serves the same set; the request is ignored.
	second, err := src.Fetch(context.Background(), FilterRequest{Search: "ignored"})
	require.NoError(t, err)
	assert.Equal(t, first, second)

	// Callers own their copy.
	second[0].User = "mutated"
	third, err := src.Fetch(context.Background(), FilterRequest{})
	require.NoError(t, err)
	assert.Equal(t, first[0].User, third[0].User)
}

func TestMockSource_FetchCanceledContext(t *testing.T) {
	src := NewMockSource(5, 1, time.Now())

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	_, err := src.Fetch(ctx, FilterRequest{})
	assert.ErrorIs(t, err, context.Canceled)
}
