// Package catalog provides the catalog item read model.
// Items carry the unit cost basis used to compute cost of goods sold.
package catalog

import (
	"context"

	"profitline/internal/core/apperror"
	"profitline/internal/core/id"
	"profitline/internal/core/types"
)

// Item represents a catalog item snapshot.
// Immutable for the duration of a report run; the engine holds read-only references.
type Item struct {
	ID id.ID `db:"id" json:"id"`

	// SKU is the item article
	SKU string `db:"sku" json:"sku"`

	Name string `db:"name" json:"name"`

	// UnitCost is the per-unit cost basis. Nil means the cost basis is unset;
	// consumers treat it as zero.
	UnitCost *types.Money `db:"unit_cost" json:"unitCost,omitempty"`

	// StockQuantity is the on-hand quantity, never negative.
	StockQuantity int64 `db:"stock_quantity" json:"stockQuantity"`
}

// Validate implements basic invariant checks.
func (i *Item) Validate(ctx context.Context) error {
	if i.Name == "" {
		return apperror.NewValidation("item name is required").
			WithDetail("field", "name")
	}
	if i.StockQuantity < 0 {
		return apperror.NewValidation("stock quantity cannot be negative").
			WithDetail("field", "stockQuantity").
			WithDetail("value", i.StockQuantity)
	}
	if i.UnitCost != nil && i.UnitCost.IsNegative() {
		return apperror.NewValidation("unit cost cannot be negative").
			WithDetail("field", "unitCost")
	}
	return nil
}

// CostBasis returns the unit cost, treating an unset cost as zero.
func (i *Item) CostBasis() types.Money {
	if i.UnitCost == nil {
		return types.Zero()
	}
	return *i.UnitCost
}
