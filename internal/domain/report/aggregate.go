package report

import (
	"profitline/internal/core/types"
	"profitline/internal/domain/ledger"
)

// aggregateWindow computes the profit/loss breakdown for one window.
//
// The purchase side passes through pre-computed ledger signals split by
// sign. The sales side nets refunds against gross revenue and returned
// goods against gross COGS before the sign split, so a window with heavy
// returns can flip from profit to loss. Monetary outputs are rounded once,
// here, never on intermediate sums.
func aggregateWindow(w TimeWindow, in Input, costs *CostBasisIndex) PeriodResult {
	// Purchase-side pass-through of ledger signals.
	purchaseProfit := types.Zero()
	purchaseLoss := types.Zero()
	for _, tx := range in.Ledger {
		if tx.Category != ledger.CategoryPurchase || !w.Contains(tx.OccurredAt) {
			continue
		}
		switch {
		case tx.Profit.IsPositive():
			purchaseProfit = purchaseProfit.Add(tx.Profit)
		case tx.Profit.IsNegative():
			purchaseLoss = purchaseLoss.Add(tx.Profit.Abs())
		}
	}

	// Gross sales revenue and cost of goods sold.
	grossRevenue := types.Zero()
	grossCost := types.Zero()
	orderCount := 0
	for _, order := range in.Orders {
		if !w.Contains(order.CreatedAt) {
			continue
		}
		orderCount++
		grossRevenue = grossRevenue.Add(order.Total)
		for _, line := range order.Lines {
			lineCost := costs.CostOf(line.ItemID).Mul(types.MoneyFromInt(line.Quantity))
			grossCost = grossCost.Add(lineCost)
		}
	}

	// Refunds and the cost of goods that came back.
	refundTotal := types.Zero()
	returnedCost := types.Zero()
	returnCount := 0
	for _, ret := range in.Returns {
		if !w.Contains(ret.CreatedAt) {
			continue
		}
		returnCount++
		refundTotal = refundTotal.Add(ret.RefundAmount())
		for _, line := range ret.Lines {
			lineCost := costs.CostOf(line.ItemID).Mul(types.MoneyFromInt(line.Quantity))
			returnedCost = returnedCost.Add(lineCost)
		}
	}

	// Net the returns against sales, then split the difference by sign.
	netRevenue := grossRevenue.Sub(refundTotal)
	netCost := grossCost.Sub(returnedCost)
	netDiff := netRevenue.Sub(netCost)

	salesProfit := types.Zero()
	salesLoss := types.Zero()
	switch {
	case netDiff.IsPositive():
		salesProfit = netDiff
	case netDiff.IsNegative():
		salesLoss = netDiff.Abs()
	}

	// Finalize: round each component once, then derive totals from the
	// rounded components so the post-rounding invariants hold exactly.
	purchaseProfit = types.RoundMoney(purchaseProfit)
	purchaseLoss = types.RoundMoney(purchaseLoss)
	salesProfit = types.RoundMoney(salesProfit)
	salesLoss = types.RoundMoney(salesLoss)

	return PeriodResult{
		Window:         w,
		PurchaseProfit: purchaseProfit,
		PurchaseLoss:   purchaseLoss,
		SalesProfit:    salesProfit,
		SalesLoss:      salesLoss,
		TotalProfit:    purchaseProfit.Add(salesProfit),
		TotalLoss:      purchaseLoss.Add(salesLoss),
		NetRevenue:     types.RoundMoney(netRevenue),
		NetCost:        types.RoundMoney(netCost),
		OrderCount:     orderCount,
		ReturnCount:    returnCount,
	}
}
