package source

import (
	"context"
	"math/rand"
	"time"

	"github.com/google/uuid"

	"github.com/solflow/dcadash/internal/model"
)

// mintProfiles pairs each tradable input asset with a typical per-execution
// amount range, so generated data looks like real DCA flow.
var mintProfiles = []struct {
	mint   string
	minAmt float64
	maxAmt float64
}{
	{"USDC", 10, 2500},
	{"USDT", 10, 1000},
	{"SOL", 0.1, 50},
	{"ETH", 0.01, 5},
	{"BTC", 0.001, 0.5},
}

var outputMints = []string{"SOL", "BTC", "ETH", "RAY", "JUP", "BONK", "WIF"}

var frequencies = []string{"hourly", "daily", "weekly", "monthly"}

// Wallets that own the generated orders. A small fixed pool keeps the user
// filter useful against generated data.
var wallets = []string{
	"9wFFyRfZBsuAha4vcRmBDnFN2Pnf3nzFnmXDAbUyQFJS",
	"4Nd1mYcquFL3JZtqXybK15QEvjh7pXWC4Z2jQkK9g8aR",
	"7xKXtg2CW87d97TXJSDpbD5jBkheTqA83TZRuJosgAsU",
	"BQWWFhzBdw2vKKBUX17NHeFbCoFQHfRARpdztPE2tDJ",
	"F5tf6yM8Xyyo6cJCtfvomwDkPqQdJTph9AhZsDWa8dcx",
	"HN7cABqLq46Es1jh92dQQisAq662SmxELLLsHHe4YWrH",
	"3emsAVdmGKERbHjmGfQ6oZ1e35dkf5iYcS6U4CPKFVaa",
	"6VzWGL51jLcRodQCC8wWW3cqw6hVgWevvHHBH6AdW6UT",
}

// GenerateOrders produces n plausible orders with unique IDs. Execution
// times spread from a few hours in the past through the next day so every
// dashboard tab and the volume chart have data; creation times trail up to
// thirty days. The rng controls everything except IDs, which are always
// fresh UUIDs.
func GenerateOrders(n int, rng *rand.Rand, now time.Time) []model.Order {
	orders := make([]model.Order, 0, n)
	for i := 0; i < n; i++ {
		profile := mintProfiles[rng.Intn(len(mintProfiles))]

		out := outputMints[rng.Intn(len(outputMints))]
		for out == profile.mint {
			out = outputMints[rng.Intn(len(outputMints))]
		}

		amount := profile.minAmt + rng.Float64()*(profile.maxAmt-profile.minAmt)
		executeAt := now.Add(time.Duration(rng.Int63n(int64(30*time.Hour))) - 6*time.Hour)
		createdAt := now.Add(-time.Duration(rng.Int63n(int64(30 * 24 * time.Hour))))

		orders = append(orders, model.Order{
			ID:         uuid.NewString(),
			User:       wallets[rng.Intn(len(wallets))],
			InputMint:  profile.mint,
			OutputMint: out,
			Amount:     amount,
			Frequency:  frequencies[rng.Intn(len(frequencies))],
			CreatedAt:  createdAt,
			ExecuteAt:  executeAt,
		})
	}

	return orders
}

// MockSource serves generated orders in place of a network call. The order
// set is generated once and then served unchanged, matching the lifecycle of
// a fetched backend result.
type MockSource struct {
	orders []model.Order
}

// NewMockSource generates count orders seeded with seed.
func NewMockSource(count int, seed int64, now time.Time) *MockSource {
	rng := rand.New(rand.NewSource(seed))
	return &MockSource{orders: GenerateOrders(count, rng, now)}
}

// Fetch returns a copy of the generated order set. The request is accepted
// for interface compatibility and ignored; filtering happens client-side.
func (s *MockSource) Fetch(ctx context.Context, _ FilterRequest) ([]model.Order, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	orders := make([]model.Order, len(s.orders))
	copy(orders, s.orders)
	return orders, nil
}
