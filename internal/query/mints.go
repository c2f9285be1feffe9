package query

import (
	"sort"

	"github.com/solflow/dcadash/internal/model"
)

// DistinctMints returns the sorted distinct input and output mints observed
// in the order set. The dashboard derives these once per fetch to populate
// its filter selectors.
func DistinctMints(orders []model.Order) (inputs, outputs []string) {
	inSet := make(map[string]struct{})
	outSet := make(map[string]struct{})
	for _, o := range orders {
		if o.InputMint != "" {
			inSet[o.InputMint] = struct{}{}
		}
		if o.OutputMint != "" {
			outSet[o.OutputMint] = struct{}{}
		}
	}

	inputs = make([]string, 0, len(inSet))
	for m := range inSet {
		inputs = append(inputs, m)
	}
	outputs = make([]string, 0, len(outSet))
	for m := range outSet {
		outputs = append(outputs, m)
	}

	sort.Strings(inputs)
	sort.Strings(outputs)
	return inputs, outputs
}
