// Package main provides a CLI tool for seeding the database with demo data.
package main

import (
	"context"
	"fmt"
	"os"
	"time"

	"profitline/internal/core/id"
	"profitline/internal/core/types"
	"profitline/internal/infrastructure/storage/postgres"
	"profitline/pkg/logger"
)

func main() {
	log, err := logger.New(logger.Config{
		Level:       "info",
		Development: true,
	})
	if err != nil {
		fmt.Printf("failed to create logger: %v\n", err)
		os.Exit(1)
	}

	ctx := context.Background()

	dbURL := os.Getenv("DATABASE_URL")
	if dbURL == "" {
		log.Fatal("DATABASE_URL environment variable is required")
	}

	poolCfg := postgres.DefaultPoolConfig(dbURL)
	pool, err := postgres.NewPool(ctx, poolCfg)
	if err != nil {
		log.Fatalw("failed to connect to database", "error", err)
	}
	defer pool.Close()

	log.Info("connected to database")

	if err := seedDemoData(ctx, pool); err != nil {
		log.Fatalw("failed to seed demo data", "error", err)
	}

	log.Info("demo data seeded")
}

type demoItem struct {
	id    id.ID
	sku   string
	name  string
	cost  string
	stock int64
}

func seedDemoData(ctx context.Context, pool *postgres.Pool) error {
	items := []demoItem{
		{id.New(), "SKU-001", "Standing Desk", "180.00", 12},
		{id.New(), "SKU-002", "Office Chair", "75.50", 40},
		{id.New(), "SKU-003", "Monitor Arm", "22.99", 150},
		{id.New(), "SKU-004", "Desk Lamp", "", 30}, // no cost basis on purpose
	}

	for _, item := range items {
		var cost *types.Money
		if item.cost != "" {
			c := types.MustMoney(item.cost)
			cost = &c
		}
		_, err := pool.Exec(ctx, `
			INSERT INTO catalog_items (id, sku, name, unit_cost, stock_quantity)
			VALUES ($1, $2, $3, $4, $5)
			ON CONFLICT (sku) DO NOTHING`,
			item.id, item.sku, item.name, cost, item.stock,
		)
		if err != nil {
			return fmt.Errorf("insert catalog item %s: %w", item.sku, err)
		}
	}

	now := time.Now()

	// A handful of orders spread over the last week.
	for day := 0; day < 7; day++ {
		orderID := id.New()
		createdAt := now.AddDate(0, 0, -day).Add(-2 * time.Hour)
		_, err := pool.Exec(ctx, `
			INSERT INTO sales_orders (id, created_at, total)
			VALUES ($1, $2, $3)`,
			orderID, createdAt, types.MustMoney("450.00"),
		)
		if err != nil {
			return fmt.Errorf("insert order: %w", err)
		}
		_, err = pool.Exec(ctx, `
			INSERT INTO sales_order_lines (order_id, line_no, item_id, quantity, unit_price)
			VALUES ($1, 1, $2, 1, $3), ($1, 2, $4, 2, $5)`,
			orderID, items[0].id, types.MustMoney("300.00"),
			items[1].id, types.MustMoney("75.00"),
		)
		if err != nil {
			return fmt.Errorf("insert order lines: %w", err)
		}
	}

	// One return with a refund.
	returnID := id.New()
	_, err := pool.Exec(ctx, `
		INSERT INTO sales_returns (id, created_at, refund)
		VALUES ($1, $2, $3)`,
		returnID, now.AddDate(0, 0, -1), types.MustMoney("75.00"),
	)
	if err != nil {
		return fmt.Errorf("insert return: %w", err)
	}
	_, err = pool.Exec(ctx, `
		INSERT INTO sales_return_lines (return_id, line_no, item_id, quantity)
		VALUES ($1, 1, $2, 1)`,
		returnID, items[1].id,
	)
	if err != nil {
		return fmt.Errorf("insert return lines: %w", err)
	}

	// Purchase-side ledger entries, one profit and one loss.
	_, err = pool.Exec(ctx, `
		INSERT INTO ledger_transactions (id, occurred_at, category, profit)
		VALUES ($1, $2, 'purchase', $3), ($4, $5, 'purchase', $6)`,
		id.New(), now.AddDate(0, 0, -2), types.MustMoney("120.00"),
		id.New(), now.AddDate(0, 0, -3), types.MustMoney("-45.25"),
	)
	if err != nil {
		return fmt.Errorf("insert ledger transactions: %w", err)
	}

	return nil
}
