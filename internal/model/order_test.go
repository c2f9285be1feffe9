package model

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestOrder_TokenPair(t *testing.T) {
	tests := []struct {
		name  string
		order Order
		want  string
	}{
		{
			name:  "standard pair",
			order: Order{InputMint: "USDC", OutputMint: "SOL"},
			want:  "SOL-USDC",
		},
		{
			name:  "reversed mints produce a different pair",
			order: Order{InputMint: "SOL", OutputMint: "USDC"},
			want:  "USDC-SOL",
		},
		{
			name:  "empty mints",
			order: Order{},
			want:  "-",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, tt.order.TokenPair())
		})
	}
}
