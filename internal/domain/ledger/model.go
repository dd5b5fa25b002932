// Package ledger provides the accounting transaction read model.
package ledger

import (
	"time"

	"profitline/internal/core/id"
	"profitline/internal/core/types"
)

// Category classifies a ledger transaction.
type Category string

const (
	CategorySale       Category = "sale"
	CategoryPurchase   Category = "purchase"
	CategoryReturn     Category = "return"
	CategoryRefund     Category = "refund"
	CategoryAdjustment Category = "adjustment"
)

// IsValid reports whether the category is one of the known values.
func (c Category) IsValid() bool {
	switch c {
	case CategorySale, CategoryPurchase, CategoryReturn, CategoryRefund, CategoryAdjustment:
		return true
	}
	return false
}

// Transaction is an accounting entry with a pre-computed signed profit value.
// Positive Profit is profit, negative is loss, zero contributes to neither.
type Transaction struct {
	ID         id.ID       `db:"id" json:"id"`
	OccurredAt time.Time   `db:"occurred_at" json:"occurredAt"`
	Category   Category    `db:"category" json:"category"`
	Profit     types.Money `db:"profit" json:"profit"`
}
