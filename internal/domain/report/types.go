// Package report implements the periodized profit & loss aggregation engine.
//
// The engine buckets four independently-timestamped record streams (catalog
// items, sales orders, returns, ledger transactions) into aligned time
// windows, computes per-window profit/loss split by source, nets returns
// against sales, and rolls the per-window results into summary figures.
package report

import (
	"time"

	"profitline/internal/core/types"
	"profitline/internal/domain/catalog"
	"profitline/internal/domain/ledger"
	"profitline/internal/domain/sales"
)

// Input is the materialized snapshot a report run consumes.
// The engine never mutates it.
type Input struct {
	Catalog []catalog.Item
	Orders  []sales.Order
	Returns []sales.Return
	Ledger  []ledger.Transaction
}

// PeriodResult holds the profit/loss breakdown for one window.
//
// All monetary fields are finalized to two fractional digits. By
// construction at most one of {SalesProfit, SalesLoss} is nonzero, likewise
// for {PurchaseProfit, PurchaseLoss}, and the totals are exact sums of the
// already-rounded components.
type PeriodResult struct {
	Window TimeWindow `json:"window"`

	PurchaseProfit types.Money `json:"purchaseProfit"`
	PurchaseLoss   types.Money `json:"purchaseLoss"`
	SalesProfit    types.Money `json:"salesProfit"`
	SalesLoss      types.Money `json:"salesLoss"`
	TotalProfit    types.Money `json:"totalProfit"`
	TotalLoss      types.Money `json:"totalLoss"`

	// NetRevenue is gross order revenue minus refunds.
	NetRevenue types.Money `json:"netRevenue"`
	// NetCost is gross COGS minus the cost of returned goods.
	NetCost types.Money `json:"netCost"`

	OrderCount  int `json:"orderCount"`
	ReturnCount int `json:"returnCount"`
}

// Summary aggregates all period results plus the catalog snapshot.
// Fields carry full decimal precision; display rounding belongs to callers.
type Summary struct {
	TotalProfit  types.Money `json:"totalProfit"`
	TotalLoss    types.Money `json:"totalLoss"`
	NetProfit    types.Money `json:"netProfit"`
	TotalRevenue types.Money `json:"totalRevenue"`

	// ProfitMargin is NetProfit / TotalRevenue * 100, zero when there is no revenue.
	ProfitMargin types.Money `json:"profitMargin"`

	// InventoryValuation is the sum of unit cost basis times stock quantity
	// over the catalog, unset cost counting as zero.
	InventoryValuation types.Money `json:"inventoryValuation"`

	TotalOrders  int `json:"totalOrders"`
	TotalReturns int `json:"totalReturns"`

	// ReturnRate is TotalReturns / TotalOrders * 100, zero when there are no orders.
	ReturnRate types.Money `json:"returnRate"`
}

// Report is the complete output of one report run.
type Report struct {
	Granularity Granularity    `json:"granularity"`
	Reference   time.Time      `json:"reference"`
	Periods     []PeriodResult `json:"periods"`
	Summary     Summary        `json:"summary"`
}
