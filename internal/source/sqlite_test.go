package source

import (
	"context"
	"math/rand"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/solflow/dcadash/internal/common"
	"github.com/solflow/dcadash/internal/model"
)

func newTestDB(t *testing.T) *SQLiteSource {
	t.Helper()

	src, err := NewSQLiteSource(filepath.Join(t.TempDir(), "orders.db"))
	require.NoError(t, err)
	t.Cleanup(func() { _ = src.Close() })

	return src
}

func TestSQLiteSource_RoundTrip(t *testing.T) {
	src := newTestDB(t)
	ctx := context.Background()

	now := time.Date(2026, 3, 14, 12, 0, 0, 0, time.UTC)
	orders := GenerateOrders(25, rand.New(rand.NewSource(3)), now)

	require.NoError(t, src.SaveOrders(ctx, orders))

	got, err := src.Fetch(ctx, FilterRequest{})
	require.NoError(t, err)
	require.Len(t, got, 25)

	byID := make(map[string]model.Order, len(got))
	for _, o := range got {
		byID[o.ID] = o
	}
	for _, want := range orders {
		stored, ok := byID[want.ID]
		require.True(t, ok, "order %s not returned", want.ID)
		assert.Equal(t, want.User, stored.User)
		assert.Equal(t, want.InputMint, stored.InputMint)
		assert.Equal(t, want.OutputMint, stored.OutputMint)
		assert.InDelta(t, want.Amount, stored.Amount, 1e-9)
		assert.Equal(t, want.Frequency, stored.Frequency)
		assert.True(t, want.ExecuteAt.Equal(stored.ExecuteAt))
		assert.True(t, want.CreatedAt.Equal(stored.CreatedAt))
	}
}

func TestSQLiteSource_FetchEmpty(t *testing.T) {
	src := newTestDB(t)

	got, err := src.Fetch(context.Background(), FilterRequest{})
	require.NoError(t, err)
	assert.Empty(t, got)
}

func TestSQLiteSource_SaveReplacesByID(t *testing.T) {
	src := newTestDB(t)
	ctx := context.Background()

	now := time.Date(2026, 3, 14, 12, 0, 0, 0, time.UTC)
	order := model.Order{
		ID: "ord-1", User: "u1", InputMint: "USDC", OutputMint: "SOL",
		Amount: 100, Frequency: "daily", CreatedAt: now, ExecuteAt: now.Add(time.Hour),
	}

	require.NoError(t, src.SaveOrders(ctx, []model.Order{order}))

	order.Amount = 250
	require.NoError(t, src.SaveOrders(ctx, []model.Order{order}))

	got, err := src.Fetch(ctx, FilterRequest{})
	require.NoError(t, err)
	require.Len(t, got, 1)
	assert.InDelta(t, 250.0, got[0].Amount, 1e-9)

	count, err := src.Count(ctx)
	require.NoError(t, err)
	assert.Equal(t, 1, count)
}

func TestNewSQLiteSource_EmptyPath(t *testing.T) {
	_, err := NewSQLiteSource("")
	assert.ErrorIs(t, err, common.ErrInvalidConfig)
}
