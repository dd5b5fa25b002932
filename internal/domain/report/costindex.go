package report

import (
	"profitline/internal/core/id"
	"profitline/internal/core/types"
	"profitline/internal/domain/catalog"
)

// CostBasisIndex maps item identifiers to their unit cost basis.
// Built once per report run and never mutated afterwards, so it is safe to
// share across any number of concurrent readers.
type CostBasisIndex struct {
	costs map[id.ID]types.Money
}

// BuildCostBasisIndex constructs the index from a catalog snapshot.
// Items with an unset cost basis are omitted; lookups for them return zero.
func BuildCostBasisIndex(items []catalog.Item) *CostBasisIndex {
	costs := make(map[id.ID]types.Money, len(items))
	for _, item := range items {
		if item.UnitCost != nil {
			costs[item.ID] = *item.UnitCost
		}
	}
	return &CostBasisIndex{costs: costs}
}

// CostOf returns the unit cost basis for an item, or zero when the item is
// unknown or carries no cost basis.
func (x *CostBasisIndex) CostOf(itemID id.ID) types.Money {
	if cost, ok := x.costs[itemID]; ok {
		return cost
	}
	return types.Zero()
}

// Len returns the number of items with a known cost basis.
func (x *CostBasisIndex) Len() int {
	return len(x.costs)
}
