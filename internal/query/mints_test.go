package query

import (
	"testing"

	"github.com/solflow/dcadash/internal/model"
	"github.com/stretchr/testify/assert"
)

func TestDistinctMints(t *testing.T) {
	orders := []model.Order{
		{InputMint: "USDC", OutputMint: "SOL"},
		{InputMint: "SOL", OutputMint: "BTC"},
		{InputMint: "USDC", OutputMint: "RAY"},
		{InputMint: "USDC", OutputMint: "SOL"},
		{InputMint: "", OutputMint: ""},
	}

	inputs, outputs := DistinctMints(orders)

	assert.Equal(t, []string{"SOL", "USDC"}, inputs)
	assert.Equal(t, []string{"BTC", "RAY", "SOL"}, outputs)
}

func TestDistinctMints_Empty(t *testing.T) {
	inputs, outputs := DistinctMints(nil)
	assert.Empty(t, inputs)
	assert.Empty(t, outputs)
}
