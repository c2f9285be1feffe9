// Package model defines the core domain types shared across the application.
package model

import "time"

// Order represents a single scheduled recurring trade instruction (a DCA
// order). Orders are immutable once fetched; every view over them is derived.
type Order struct {
	CreatedAt  time.Time
	ExecuteAt  time.Time // next scheduled execution
	ID         string
	User       string // owner wallet address
	InputMint  string
	OutputMint string
	Frequency  string // display-only recurrence descriptor
	Amount     float64
}

// TokenPair returns the derived pair label combining the traded assets.
// It is computed on demand rather than stored so it can never go stale.
func (o Order) TokenPair() string {
	return o.OutputMint + "-" + o.InputMint
}
