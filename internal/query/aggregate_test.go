package query

import (
	"testing"
	"time"

	"github.com/solflow/dcadash/internal/model"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func isUSDC(o model.Order) bool { return o.InputMint == "USDC" }

func TestAggregate_MintFilteredBuckets(t *testing.T) {
	now := time.Date(2026, 3, 14, 12, 0, 0, 0, time.UTC)
	orders := []model.Order{
		{User: "u1", InputMint: "SOL", OutputMint: "BTC", Amount: 100, ExecuteAt: now.Add(30 * time.Minute)},
		{User: "u2", InputMint: "USDC", OutputMint: "RAY", Amount: 50, ExecuteAt: now.Add(2 * time.Hour)},
	}

	series := Aggregate(orders, now, time.Hour, 2, isUSDC)

	require.Len(t, series.Values, 2)
	assert.Equal(t, []float64{0, 50}, series.Values)
}

func TestAggregate_EmptyBucketCompleteness(t *testing.T) {
	now := time.Date(2026, 3, 14, 12, 0, 0, 0, time.UTC)

	tests := []struct {
		name    string
		orders  []model.Order
		buckets int
	}{
		{name: "no orders at all", orders: nil, buckets: 24},
		{name: "nothing matches the asset filter", orders: []model.Order{{InputMint: "SOL", Amount: 9, ExecuteAt: now.Add(time.Minute)}}, buckets: 6},
		{name: "single bucket", orders: nil, buckets: 1},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			series := Aggregate(tt.orders, now, time.Hour, tt.buckets, isUSDC)

			assert.Len(t, series.Labels, tt.buckets)
			assert.Len(t, series.Values, tt.buckets)
			assert.Zero(t, series.Total())
		})
	}
}

func TestAggregate_Conservation(t *testing.T) {
	start := time.Date(2026, 3, 13, 12, 0, 0, 0, time.UTC)
	width := time.Hour
	buckets := 24
	end := start.Add(time.Duration(buckets) * width)

	orders := []model.Order{
		{InputMint: "USDC", Amount: 10, ExecuteAt: start},                      // first instant
		{InputMint: "USDC", Amount: 20, ExecuteAt: start.Add(width)},           // interior boundary
		{InputMint: "USDC", Amount: 30, ExecuteAt: start.Add(90 * time.Minute)},
		{InputMint: "USDC", Amount: 40, ExecuteAt: end},                        // range-end instant
		{InputMint: "USDC", Amount: 99, ExecuteAt: end.Add(time.Second)},       // outside
		{InputMint: "USDC", Amount: 77, ExecuteAt: start.Add(-time.Second)},    // outside
		{InputMint: "SOL", Amount: 55, ExecuteAt: start.Add(2 * width)},        // filtered
	}

	series := Aggregate(orders, start, width, buckets, isUSDC)

	assert.InDelta(t, 100.0, series.Total(), 1e-9)
	// Boundary instants land exactly once: 10 in bucket 0, 20+30 in bucket 1,
	// 40 clamped into the final bucket.
	assert.Equal(t, 10.0, series.Values[0])
	assert.Equal(t, 50.0, series.Values[1])
	assert.Equal(t, 40.0, series.Values[buckets-1])
}

func TestAggregate_NilPredicateKeepsEverything(t *testing.T) {
	start := time.Date(2026, 3, 14, 0, 0, 0, 0, time.UTC)
	orders := []model.Order{
		{InputMint: "SOL", Amount: 1, ExecuteAt: start.Add(time.Minute)},
		{InputMint: "USDC", Amount: 2, ExecuteAt: start.Add(time.Minute)},
	}

	series := Aggregate(orders, start, time.Hour, 2, nil)
	assert.InDelta(t, 3.0, series.Total(), 1e-9)
}

func TestAggregate_DegenerateConfig(t *testing.T) {
	series := Aggregate(nil, time.Now(), time.Hour, 0, nil)
	assert.Empty(t, series.Labels)
	assert.Empty(t, series.Values)

	series = Aggregate(nil, time.Now(), 0, 4, nil)
	assert.Empty(t, series.Values)
}

func TestAggregate_Labels(t *testing.T) {
	start := time.Date(2026, 3, 14, 9, 30, 0, 0, time.UTC)

	hourly := Aggregate(nil, start, time.Hour, 3, nil)
	assert.Equal(t, []string{"09:30", "10:30", "11:30"}, hourly.Labels)

	daily := Aggregate(nil, start, 24*time.Hour, 2, nil)
	assert.Equal(t, []string{"Mar 14", "Mar 15"}, daily.Labels)
}
