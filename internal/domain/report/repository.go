package report

import (
	"context"
	"time"

	"profitline/internal/domain/catalog"
	"profitline/internal/domain/ledger"
	"profitline/internal/domain/sales"
)

// Repository defines the data access the report service depends on.
// Implementations return fully materialized collections; orders and returns
// come with their line items embedded.
type Repository interface {
	// Catalog returns the full catalog snapshot.
	Catalog(ctx context.Context) ([]catalog.Item, error)

	// Orders returns sales orders created in [from, to).
	Orders(ctx context.Context, from, to time.Time) ([]sales.Order, error)

	// Returns returns customer returns created in [from, to).
	Returns(ctx context.Context, from, to time.Time) ([]sales.Return, error)

	// LedgerTransactions returns ledger entries occurring in [from, to).
	LedgerTransactions(ctx context.Context, from, to time.Time) ([]ledger.Transaction, error)
}
