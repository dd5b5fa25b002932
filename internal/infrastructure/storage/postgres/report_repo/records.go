// Package report_repo provides PostgreSQL access to the four record streams
// the report engine consumes. All queries are reads; the tables are written
// by upstream systems.
package report_repo

import (
	"context"
	"fmt"
	"time"

	"github.com/Masterminds/squirrel"
	"github.com/georgysavva/scany/v2/pgxscan"

	"profitline/internal/core/id"
	"profitline/internal/core/types"
	"profitline/internal/domain/catalog"
	"profitline/internal/domain/ledger"
	"profitline/internal/domain/sales"
	"profitline/internal/infrastructure/storage/postgres"
)

// RecordRepo implements report.Repository.
type RecordRepo struct {
	pool    *postgres.Pool
	builder squirrel.StatementBuilderType
}

// NewRecordRepo creates a new record repository.
func NewRecordRepo(pool *postgres.Pool) *RecordRepo {
	return &RecordRepo{
		pool:    pool,
		builder: squirrel.StatementBuilder.PlaceholderFormat(squirrel.Dollar),
	}
}

// Catalog returns the full catalog snapshot.
func (r *RecordRepo) Catalog(ctx context.Context) ([]catalog.Item, error) {
	sql, args, err := r.builder.
		Select("id", "sku", "name", "unit_cost", "stock_quantity").
		From("catalog_items").
		OrderBy("sku").
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("build catalog query: %w", err)
	}

	var items []catalog.Item
	if err := pgxscan.Select(ctx, r.pool, &items, sql, args...); err != nil {
		return nil, fmt.Errorf("select catalog items: %w", err)
	}
	return items, nil
}

type orderRow struct {
	ID        id.ID       `db:"id"`
	CreatedAt time.Time   `db:"created_at"`
	Total     types.Money `db:"total"`
}

type orderLineRow struct {
	OrderID   id.ID       `db:"order_id"`
	ItemID    id.ID       `db:"item_id"`
	Quantity  int64       `db:"quantity"`
	UnitPrice types.Money `db:"unit_price"`
}

// Orders returns sales orders created in [from, to) with lines embedded.
func (r *RecordRepo) Orders(ctx context.Context, from, to time.Time) ([]sales.Order, error) {
	sql, args, err := r.builder.
		Select("id", "created_at", "total").
		From("sales_orders").
		Where(squirrel.GtOrEq{"created_at": from}).
		Where(squirrel.Lt{"created_at": to}).
		OrderBy("created_at", "id").
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("build orders query: %w", err)
	}

	var headers []orderRow
	if err := pgxscan.Select(ctx, r.pool, &headers, sql, args...); err != nil {
		return nil, fmt.Errorf("select sales orders: %w", err)
	}
	if len(headers) == 0 {
		return nil, nil
	}

	sql, args, err = r.builder.
		Select("l.order_id", "l.item_id", "l.quantity", "l.unit_price").
		From("sales_order_lines l").
		Join("sales_orders o ON o.id = l.order_id").
		Where(squirrel.GtOrEq{"o.created_at": from}).
		Where(squirrel.Lt{"o.created_at": to}).
		OrderBy("l.order_id", "l.line_no").
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("build order lines query: %w", err)
	}

	var lineRows []orderLineRow
	if err := pgxscan.Select(ctx, r.pool, &lineRows, sql, args...); err != nil {
		return nil, fmt.Errorf("select order lines: %w", err)
	}

	linesByOrder := make(map[id.ID][]sales.OrderLine, len(headers))
	for _, row := range lineRows {
		linesByOrder[row.OrderID] = append(linesByOrder[row.OrderID], sales.OrderLine{
			ItemID:    row.ItemID,
			Quantity:  row.Quantity,
			UnitPrice: row.UnitPrice,
		})
	}

	orders := make([]sales.Order, len(headers))
	for i, h := range headers {
		orders[i] = sales.Order{
			ID:        h.ID,
			CreatedAt: h.CreatedAt,
			Total:     h.Total,
			Lines:     linesByOrder[h.ID],
		}
	}
	return orders, nil
}

type returnRow struct {
	ID        id.ID        `db:"id"`
	CreatedAt time.Time    `db:"created_at"`
	Refund    *types.Money `db:"refund"`
}

type returnLineRow struct {
	ReturnID id.ID `db:"return_id"`
	ItemID   id.ID `db:"item_id"`
	Quantity int64 `db:"quantity"`
}

// Returns returns customer returns created in [from, to) with lines embedded.
func (r *RecordRepo) Returns(ctx context.Context, from, to time.Time) ([]sales.Return, error) {
	sql, args, err := r.builder.
		Select("id", "created_at", "refund").
		From("sales_returns").
		Where(squirrel.GtOrEq{"created_at": from}).
		Where(squirrel.Lt{"created_at": to}).
		OrderBy("created_at", "id").
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("build returns query: %w", err)
	}

	var headers []returnRow
	if err := pgxscan.Select(ctx, r.pool, &headers, sql, args...); err != nil {
		return nil, fmt.Errorf("select returns: %w", err)
	}
	if len(headers) == 0 {
		return nil, nil
	}

	sql, args, err = r.builder.
		Select("l.return_id", "l.item_id", "l.quantity").
		From("sales_return_lines l").
		Join("sales_returns ret ON ret.id = l.return_id").
		Where(squirrel.GtOrEq{"ret.created_at": from}).
		Where(squirrel.Lt{"ret.created_at": to}).
		OrderBy("l.return_id", "l.line_no").
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("build return lines query: %w", err)
	}

	var lineRows []returnLineRow
	if err := pgxscan.Select(ctx, r.pool, &lineRows, sql, args...); err != nil {
		return nil, fmt.Errorf("select return lines: %w", err)
	}

	linesByReturn := make(map[id.ID][]sales.ReturnLine, len(headers))
	for _, row := range lineRows {
		linesByReturn[row.ReturnID] = append(linesByReturn[row.ReturnID], sales.ReturnLine{
			ItemID:   row.ItemID,
			Quantity: row.Quantity,
		})
	}

	returns := make([]sales.Return, len(headers))
	for i, h := range headers {
		returns[i] = sales.Return{
			ID:        h.ID,
			CreatedAt: h.CreatedAt,
			Refund:    h.Refund,
			Lines:     linesByReturn[h.ID],
		}
	}
	return returns, nil
}

// LedgerTransactions returns ledger entries occurring in [from, to).
func (r *RecordRepo) LedgerTransactions(ctx context.Context, from, to time.Time) ([]ledger.Transaction, error) {
	sql, args, err := r.builder.
		Select("id", "occurred_at", "category", "profit").
		From("ledger_transactions").
		Where(squirrel.GtOrEq{"occurred_at": from}).
		Where(squirrel.Lt{"occurred_at": to}).
		OrderBy("occurred_at", "id").
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("build ledger query: %w", err)
	}

	var txs []ledger.Transaction
	if err := pgxscan.Select(ctx, r.pool, &txs, sql, args...); err != nil {
		return nil, fmt.Errorf("select ledger transactions: %w", err)
	}
	return txs, nil
}
