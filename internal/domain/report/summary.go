package report

import (
	"profitline/internal/core/types"
	"profitline/internal/domain/catalog"
)

var hundred = types.MustMoney("100")

// Summarize reduces the per-window results plus the catalog snapshot into
// headline totals. Division by zero is guarded: margin is zero without
// revenue, return rate is zero without orders.
func Summarize(periods []PeriodResult, items []catalog.Item) Summary {
	s := Summary{
		TotalProfit:        types.Zero(),
		TotalLoss:          types.Zero(),
		NetProfit:          types.Zero(),
		TotalRevenue:       types.Zero(),
		ProfitMargin:       types.Zero(),
		InventoryValuation: types.Zero(),
		ReturnRate:         types.Zero(),
	}

	for _, p := range periods {
		s.TotalProfit = s.TotalProfit.Add(p.TotalProfit)
		s.TotalLoss = s.TotalLoss.Add(p.TotalLoss)
		s.TotalRevenue = s.TotalRevenue.Add(p.NetRevenue)
		s.TotalOrders += p.OrderCount
		s.TotalReturns += p.ReturnCount
	}

	s.NetProfit = s.TotalProfit.Sub(s.TotalLoss)

	if s.TotalRevenue.IsPositive() {
		s.ProfitMargin = s.NetProfit.Div(s.TotalRevenue).Mul(hundred)
	}

	for _, item := range items {
		valuation := item.CostBasis().Mul(types.MoneyFromInt(item.StockQuantity))
		s.InventoryValuation = s.InventoryValuation.Add(valuation)
	}

	if s.TotalOrders > 0 {
		s.ReturnRate = types.MoneyFromInt(int64(s.TotalReturns)).
			Div(types.MoneyFromInt(int64(s.TotalOrders))).
			Mul(hundred)
	}

	return s
}
