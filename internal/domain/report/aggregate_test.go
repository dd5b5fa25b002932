package report

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"

	"profitline/internal/core/id"
	"profitline/internal/core/types"
	"profitline/internal/domain/catalog"
	"profitline/internal/domain/ledger"
	"profitline/internal/domain/sales"
)

func dayWindow(t *testing.T) TimeWindow {
	t.Helper()
	start := time.Date(2024, 6, 15, 0, 0, 0, 0, time.UTC)
	return TimeWindow{Start: start, End: start.AddDate(0, 0, 1), Label: "Jun 15"}
}

func itemWithCost(cost string) catalog.Item {
	c := types.MustMoney(cost)
	return catalog.Item{ID: id.New(), SKU: "X", Name: "Item X", UnitCost: &c, StockQuantity: 10}
}

// Scenario A: one order, no returns, no ledger entries.
func TestAggregateWindow_SalesProfit(t *testing.T) {
	w := dayWindow(t)
	item := itemWithCost("10.00")

	in := Input{
		Catalog: []catalog.Item{item},
		Orders: []sales.Order{{
			ID:        id.New(),
			CreatedAt: w.Start.Add(3 * time.Hour),
			Total:     types.MustMoney("100.00"),
			Lines:     []sales.OrderLine{{ItemID: item.ID, Quantity: 2, UnitPrice: types.MustMoney("50.00")}},
		}},
	}

	got := aggregateWindow(w, in, BuildCostBasisIndex(in.Catalog))

	assert.Equal(t, "80.00", got.SalesProfit.StringFixed(2))
	assert.True(t, got.SalesLoss.IsZero())
	assert.True(t, got.PurchaseProfit.IsZero())
	assert.True(t, got.PurchaseLoss.IsZero())
	assert.Equal(t, "80.00", got.TotalProfit.StringFixed(2))
	assert.Equal(t, "100.00", got.NetRevenue.StringFixed(2))
	assert.Equal(t, "20.00", got.NetCost.StringFixed(2))
	assert.Equal(t, 1, got.OrderCount)
	assert.Equal(t, 0, got.ReturnCount)
}

// Scenario B: the same order fully reversed by a return in the same window.
func TestAggregateWindow_ReturnNetsOutSale(t *testing.T) {
	w := dayWindow(t)
	item := itemWithCost("10.00")
	refund := types.MustMoney("100.00")

	in := Input{
		Catalog: []catalog.Item{item},
		Orders: []sales.Order{{
			ID:        id.New(),
			CreatedAt: w.Start.Add(3 * time.Hour),
			Total:     types.MustMoney("100.00"),
			Lines:     []sales.OrderLine{{ItemID: item.ID, Quantity: 2, UnitPrice: types.MustMoney("50.00")}},
		}},
		Returns: []sales.Return{{
			ID:        id.New(),
			CreatedAt: w.Start.Add(8 * time.Hour),
			Refund:    &refund,
			Lines:     []sales.ReturnLine{{ItemID: item.ID, Quantity: 2}},
		}},
	}

	got := aggregateWindow(w, in, BuildCostBasisIndex(in.Catalog))

	assert.True(t, got.NetRevenue.IsZero())
	assert.True(t, got.NetCost.IsZero())
	assert.True(t, got.SalesProfit.IsZero())
	assert.True(t, got.SalesLoss.IsZero())
	assert.Equal(t, 1, got.OrderCount)
	assert.Equal(t, 1, got.ReturnCount)
}

// Returns can flip a window from profit to loss: refund exceeds the margin.
func TestAggregateWindow_ReturnFlipsToLoss(t *testing.T) {
	w := dayWindow(t)
	item := itemWithCost("40.00")
	refund := types.MustMoney("90.00")

	in := Input{
		Catalog: []catalog.Item{item},
		Orders: []sales.Order{{
			ID:        id.New(),
			CreatedAt: w.Start.Add(time.Hour),
			Total:     types.MustMoney("100.00"),
			Lines:     []sales.OrderLine{{ItemID: item.ID, Quantity: 1, UnitPrice: types.MustMoney("100.00")}},
		}},
		Returns: []sales.Return{{
			ID:        id.New(),
			CreatedAt: w.Start.Add(2 * time.Hour),
			Refund:    &refund,
			// Goods not restocked at cost: no return lines.
		}},
	}

	got := aggregateWindow(w, in, BuildCostBasisIndex(in.Catalog))

	// net revenue 10.00, net cost 40.00 -> loss 30.00
	assert.True(t, got.SalesProfit.IsZero())
	assert.Equal(t, "30.00", got.SalesLoss.StringFixed(2))
	assert.Equal(t, "30.00", got.TotalLoss.StringFixed(2))
}

// Scenario C: ledger purchase loss passes through.
func TestAggregateWindow_PurchaseLoss(t *testing.T) {
	w := dayWindow(t)

	in := Input{
		Ledger: []ledger.Transaction{{
			ID:         id.New(),
			OccurredAt: w.Start.Add(time.Hour),
			Category:   ledger.CategoryPurchase,
			Profit:     types.MustMoney("-25.00"),
		}},
	}

	got := aggregateWindow(w, in, BuildCostBasisIndex(nil))

	assert.Equal(t, "25.00", got.PurchaseLoss.StringFixed(2))
	assert.True(t, got.PurchaseProfit.IsZero())
	assert.Equal(t, "25.00", got.TotalLoss.StringFixed(2))
	assert.True(t, got.TotalProfit.IsZero())
}

func TestAggregateWindow_IgnoresNonPurchaseLedger(t *testing.T) {
	w := dayWindow(t)

	in := Input{
		Ledger: []ledger.Transaction{
			{ID: id.New(), OccurredAt: w.Start, Category: ledger.CategorySale, Profit: types.MustMoney("500.00")},
			{ID: id.New(), OccurredAt: w.Start, Category: ledger.CategoryAdjustment, Profit: types.MustMoney("-500.00")},
			{ID: id.New(), OccurredAt: w.Start, Category: ledger.CategoryPurchase, Profit: types.MustMoney("0.00")},
		},
	}

	got := aggregateWindow(w, in, BuildCostBasisIndex(nil))

	assert.True(t, got.PurchaseProfit.IsZero(), "zero-profit purchase contributes to neither side")
	assert.True(t, got.PurchaseLoss.IsZero())
}

func TestAggregateWindow_HalfOpenFilter(t *testing.T) {
	w := dayWindow(t)

	in := Input{
		Orders: []sales.Order{
			{ID: id.New(), CreatedAt: w.Start, Total: types.MustMoney("10.00")},
			{ID: id.New(), CreatedAt: w.End, Total: types.MustMoney("20.00")},
			{ID: id.New(), CreatedAt: w.End.Add(-time.Nanosecond), Total: types.MustMoney("30.00")},
		},
	}

	got := aggregateWindow(w, in, BuildCostBasisIndex(nil))

	assert.Equal(t, 2, got.OrderCount, "instant equal to End belongs to the next window")
	assert.Equal(t, "40.00", got.NetRevenue.StringFixed(2))
}

func TestAggregateWindow_MissingCostBasisCountsAsZero(t *testing.T) {
	w := dayWindow(t)

	in := Input{
		Orders: []sales.Order{{
			ID:        id.New(),
			CreatedAt: w.Start.Add(time.Hour),
			Total:     types.MustMoney("50.00"),
			Lines:     []sales.OrderLine{{ItemID: id.New(), Quantity: 5, UnitPrice: types.MustMoney("10.00")}},
		}},
	}

	got := aggregateWindow(w, in, BuildCostBasisIndex(nil))

	assert.True(t, got.NetCost.IsZero())
	assert.Equal(t, "50.00", got.SalesProfit.StringFixed(2))
}

func TestAggregateWindow_RoundsOnceAtFinalization(t *testing.T) {
	w := dayWindow(t)
	item := itemWithCost("0.333")

	in := Input{
		Catalog: []catalog.Item{item},
		Orders: []sales.Order{{
			ID:        id.New(),
			CreatedAt: w.Start.Add(time.Hour),
			Total:     types.MustMoney("10.00"),
			Lines:     []sales.OrderLine{{ItemID: item.ID, Quantity: 10, UnitPrice: types.MustMoney("1.00")}},
		}},
	}

	got := aggregateWindow(w, in, BuildCostBasisIndex(in.Catalog))

	// net cost 3.33, net diff 6.67: rounded from the full-precision
	// difference, not from pre-rounded intermediates.
	assert.Equal(t, "3.33", got.NetCost.StringFixed(2))
	assert.Equal(t, "6.67", got.SalesProfit.StringFixed(2))
	assert.True(t, got.TotalProfit.Equal(got.PurchaseProfit.Add(got.SalesProfit)))
}
