// Package sales provides the sales order and return read models.
package sales

import (
	"time"

	"profitline/internal/core/id"
	"profitline/internal/core/types"
)

// OrderLine is a single line of a sales order.
type OrderLine struct {
	ItemID id.ID `db:"item_id" json:"itemId"`

	// Quantity is always positive on well-formed input.
	Quantity int64 `db:"quantity" json:"quantity"`

	UnitPrice types.Money `db:"unit_price" json:"unitPrice"`
}

// Order represents a sales order with its line items.
// CreatedAt is the sole time-bucketing key.
type Order struct {
	ID        id.ID       `db:"id" json:"id"`
	CreatedAt time.Time   `db:"created_at" json:"createdAt"`
	Total     types.Money `db:"total" json:"total"`
	Lines     []OrderLine `json:"lines"`
}

// ReturnLine is a single line of a return.
type ReturnLine struct {
	ItemID   id.ID `db:"item_id" json:"itemId"`
	Quantity int64 `db:"quantity" json:"quantity"`
}

// Return represents a customer return with its line items.
// Refund is what was paid back to the customer and is independent of the
// line-item cost basis; nil means no refund was recorded and counts as zero.
type Return struct {
	ID        id.ID        `db:"id" json:"id"`
	CreatedAt time.Time    `db:"created_at" json:"createdAt"`
	Refund    *types.Money `db:"refund" json:"refund,omitempty"`
	Lines     []ReturnLine `json:"lines"`
}

// RefundAmount returns the refunded amount, treating an absent refund as zero.
func (r *Return) RefundAmount() types.Money {
	if r.Refund == nil {
		return types.Zero()
	}
	return *r.Refund
}
