package query

import (
	"sort"
	"strings"

	"github.com/solflow/dcadash/internal/model"
)

// Field selects the order attribute to sort by. FieldTokenPair is derived
// from the two mints at comparison time rather than read from the record.
type Field string

// Sortable fields.
const (
	FieldUser       Field = "user"
	FieldInputMint  Field = "inputMint"
	FieldOutputMint Field = "outputMint"
	FieldAmount     Field = "amount"
	FieldFrequency  Field = "frequency"
	FieldCreatedAt  Field = "createdAt"
	FieldExecuteAt  Field = "executeAt"
	FieldTokenPair  Field = "tokenPair"
)

// Direction is the sort direction. DirectionNone means "no reordering, keep
// natural fetch order".
type Direction int

// Sort directions.
const (
	DirectionNone Direction = iota
	DirectionAsc
	DirectionDesc
)

// SortConfig pairs a field with a direction.
type SortConfig struct {
	Field     Field
	Direction Direction
}

// comparatorFor resolves a field name to a three-way comparison over orders.
// Timestamps compare as instants, never as formatted strings.
func comparatorFor(f Field) (func(a, b model.Order) int, bool) {
	switch f {
	case FieldUser:
		return func(a, b model.Order) int { return strings.Compare(a.User, b.User) }, true
	case FieldInputMint:
		return func(a, b model.Order) int { return strings.Compare(a.InputMint, b.InputMint) }, true
	case FieldOutputMint:
		return func(a, b model.Order) int { return strings.Compare(a.OutputMint, b.OutputMint) }, true
	case FieldAmount:
		return func(a, b model.Order) int {
			switch {
			case a.Amount < b.Amount:
				return -1
			case a.Amount > b.Amount:
				return 1
			default:
				return 0
			}
		}, true
	case FieldFrequency:
		return func(a, b model.Order) int { return strings.Compare(a.Frequency, b.Frequency) }, true
	case FieldCreatedAt:
		return func(a, b model.Order) int { return a.CreatedAt.Compare(b.CreatedAt) }, true
	case FieldExecuteAt:
		return func(a, b model.Order) int { return a.ExecuteAt.Compare(b.ExecuteAt) }, true
	case FieldTokenPair:
		return func(a, b model.Order) int { return strings.Compare(a.TokenPair(), b.TokenPair()) }, true
	default:
		return nil, false
	}
}

// Sort returns the orders arranged per cfg. An unset direction or an unknown
// field is a no-op that returns the input unchanged. Otherwise the result is
// a stably sorted copy; ties keep their relative fetch order.
func Sort(orders []model.Order, cfg SortConfig) []model.Order {
	if cfg.Direction == DirectionNone {
		return orders
	}

	cmp, ok := comparatorFor(cfg.Field)
	if !ok {
		return orders
	}

	sorted := make([]model.Order, len(orders))
	copy(sorted, orders)

	sort.SliceStable(sorted, func(i, j int) bool {
		c := cmp(sorted[i], sorted[j])
		if cfg.Direction == DirectionDesc {
			return c > 0
		}
		return c < 0
	})

	return sorted
}
